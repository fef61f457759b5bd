// Package fp holds plain-function helpers. Its combinators are the pure
// function instance of the arrow algebra and serve as the reference the
// effectful arrow packages are checked against: Lift(fp.Then(f, g)) must
// behave like Postcompose(Lift(f), Lift(g)).
//
// Example:
//
//	slug := fp.Then(strings.TrimSpace, strings.ToLower)
//	both := fp.FanOut(slug, utf8.RuneCountInString)
package fp

import (
	"github.com/charmingruby/arrows/either"
	"github.com/charmingruby/arrows/pair"
)

// Identity returns v.
func Identity[T any](v T) T {
	return v
}

// Const returns a function that ignores its argument and returns v.
//
// Example:
//
//	zero := fp.Const[string](0)
func Const[A any, T any](v T) func(A) T {
	return func(A) T {
		return v
	}
}

// Then composes left to right: Then(f, g)(x) == g(f(x)).
func Then[A any, B any, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Compose composes same-typed functions right to left.
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		for i := len(fns) - 1; i >= 0; i-- {
			v = fns[i](v)
		}
		return v
	}
}

// Pipe feeds v through fns in order.
//
// Example:
//
//	n := fp.Pipe(2, double, increment) // 5
func Pipe[T any](v T, fns ...func(T) T) T {
	for _, fn := range fns {
		v = fn(v)
	}
	return v
}

// Curry turns a binary function into a chain of unary ones.
func Curry[A any, B any, C any](fn func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return fn(a, b)
		}
	}
}

// Uncurry inverts Curry.
func Uncurry[A any, B any, C any](fn func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C {
		return fn(a)(b)
	}
}

// First applies f to the first component of a pair.
func First[C any, A any, B any](f func(A) B) func(pair.Pair[A, C]) pair.Pair[B, C] {
	return func(p pair.Pair[A, C]) pair.Pair[B, C] {
		return pair.Of(f(p.First), p.Second)
	}
}

// Split applies f and g to the two components of a pair.
func Split[A any, B any, C any, D any](f func(A) B, g func(C) D) func(pair.Pair[A, C]) pair.Pair[B, D] {
	return func(p pair.Pair[A, C]) pair.Pair[B, D] {
		return pair.Of(f(p.First), g(p.Second))
	}
}

// FanOut applies f and g to the same input.
func FanOut[A any, B any, C any](f func(A) B, g func(A) C) func(A) pair.Pair[B, C] {
	return func(a A) pair.Pair[B, C] {
		return pair.Of(f(a), g(a))
	}
}

// Choose applies f to a Left and g to a Right, keeping the case.
func Choose[A any, B any, C any, D any](f func(A) B, g func(C) D) func(either.Either[A, C]) either.Either[B, D] {
	return func(e either.Either[A, C]) either.Either[B, D] {
		return either.Fold(e,
			func(a A) either.Either[B, D] { return either.Left[B, D](f(a)) },
			func(c C) either.Either[B, D] { return either.Right[B](g(c)) },
		)
	}
}

// FanIn merges both cases of an Either into one result.
func FanIn[A any, B any, C any](f func(A) C, g func(B) C) func(either.Either[A, B]) C {
	return func(e either.Either[A, B]) C {
		return either.Fold(e, f, g)
	}
}
