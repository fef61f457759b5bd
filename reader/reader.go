// Package reader defines computations that read a shared, read-only
// environment.
//
// Example:
//
//	port := reader.Asks(func(cfg Config) int { return cfg.Port })
//	addr := reader.Map(port, func(p int) string { return fmt.Sprintf(":%d", p) })
//	fmt.Println(addr.Run(cfg))
package reader

import (
	"code.hybscloud.com/kont"

	"github.com/charmingruby/arrows/pair"
)

// Reader is a computation producing an A from an environment R.
//
// Example:
//
//	var timeout reader.Reader[Config, time.Duration] = func(cfg Config) time.Duration {
//		return cfg.Timeout
//	}
type Reader[R any, A any] func(env R) A

// Run supplies the environment. A nil Reader yields the zero A.
func (r Reader[R, A]) Run(env R) A {
	if r == nil {
		var zero A
		return zero
	}
	return r(env)
}

// Pure ignores the environment and returns value.
func Pure[R any, A any](value A) Reader[R, A] {
	return func(R) A {
		return value
	}
}

// Ask returns the environment itself.
func Ask[R any]() Reader[R, R] {
	return func(env R) R {
		return env
	}
}

// Asks projects a value out of the environment.
//
// Example:
//
//	region := reader.Asks(func(cfg Config) string { return cfg.Region })
func Asks[R any, A any](fn func(R) A) Reader[R, A] {
	return Reader[R, A](fn)
}

// Local runs r against an environment modified by fn.
func Local[R any, A any](r Reader[R, A], fn func(R) R) Reader[R, A] {
	return func(env R) A {
		return r.Run(fn(env))
	}
}

// Map transforms the result of r.
func Map[R any, A any, B any](r Reader[R, A], fn func(A) B) Reader[R, B] {
	return func(env R) B {
		return fn(r.Run(env))
	}
}

// FlatMap chains two readers sharing the same environment.
//
// Example:
//
//	user := reader.FlatMap(currentID, func(id int) reader.Reader[Deps, User] {
//		return loadUser(id)
//	})
func FlatMap[R any, A any, B any](r Reader[R, A], fn func(A) Reader[R, B]) Reader[R, B] {
	return func(env R) B {
		return fn(r.Run(env)).Run(env)
	}
}

// Zip runs both readers against the same environment and pairs the results.
func Zip[R any, A any, B any](ra Reader[R, A], rb Reader[R, B]) Reader[R, pair.Pair[A, B]] {
	return func(env R) pair.Pair[A, B] {
		return pair.Of(ra.Run(env), rb.Run(env))
	}
}

// Ap applies the function produced by rf to the value produced by ra.
func Ap[R any, A any, B any](rf Reader[R, func(A) B], ra Reader[R, A]) Reader[R, B] {
	return func(env R) B {
		return rf.Run(env)(ra.Run(env))
	}
}

// FromCont turns a kont computation performing kont.Ask[R] effects into a
// Reader. Every Run installs a fresh reader handler for the supplied
// environment.
//
// Example:
//
//	double := reader.FromCont[int](kont.AskReader(func(n int) kont.Eff[int] {
//		return kont.Pure(n * 2)
//	}))
//	fmt.Println(double.Run(21)) // 42
func FromCont[R any, A any](m kont.Eff[A]) Reader[R, A] {
	return func(env R) A {
		return kont.RunReader[R, A](env, m)
	}
}
