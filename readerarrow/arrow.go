// Package readerarrow implements Kleisli arrows over reader.Reader: functions
// whose output depends on a read-only environment R. Composed arrows never
// read the environment themselves; it is supplied once, at the outermost Run.
//
// Example:
//
//	greet := readerarrow.Arrow[Config, string, string](func(name string) reader.Reader[Config, string] {
//		return reader.Asks(func(c Config) string { return c.Greeting + ", " + name })
//	})
//	fmt.Println(greet.Run("ada").Run(cfg))
package readerarrow

import (
	"code.hybscloud.com/kont"

	"github.com/charmingruby/arrows/either"
	"github.com/charmingruby/arrows/pair"
	"github.com/charmingruby/arrows/reader"
	"github.com/charmingruby/arrows/validate"
)

// Arrow maps an A to a computation of B over the environment R.
type Arrow[R any, A any, B any] func(A) reader.Reader[R, B]

// Run applies the arrow to a. The result still awaits its environment.
func (f Arrow[R, A, B]) Run(a A) reader.Reader[R, B] {
	return f(a)
}

// ID returns the identity arrow.
func ID[R any, A any]() Arrow[R, A, A] {
	return reader.Pure[R, A]
}

// Lift wraps a total function that ignores the environment.
func Lift[R any, A any, B any](fn func(A) B) Arrow[R, A, B] {
	validate.NotNil("fn", fn)
	return func(a A) reader.Reader[R, B] {
		return reader.Pure[R](fn(a))
	}
}

// FromCont lifts a function returning kont computations that perform
// kont.Ask[R] effects.
//
// Example:
//
//	scale := readerarrow.FromCont[float64](func(x float64) kont.Eff[float64] {
//		return kont.AskReader(func(factor float64) kont.Eff[float64] {
//			return kont.Pure(x * factor)
//		})
//	})
func FromCont[R any, A any, B any](fn func(A) kont.Eff[B]) Arrow[R, A, B] {
	validate.NotNil("fn", fn)
	return func(a A) reader.Reader[R, B] {
		return reader.FromCont[R](fn(a))
	}
}

// Postcompose runs f, then g, both against the same environment.
func Postcompose[R any, A any, B any, C any](f Arrow[R, A, B], g Arrow[R, B, C]) Arrow[R, A, C] {
	validate.NotNil("f", f)
	validate.NotNil("g", g)
	return func(a A) reader.Reader[R, C] {
		return reader.FlatMap(f(a), g)
	}
}

// PostcomposeFunc runs f, then applies fn to its result.
func PostcomposeFunc[R any, A any, B any, C any](f Arrow[R, A, B], fn func(B) C) Arrow[R, A, C] {
	return Postcompose(f, Lift[R](fn))
}

// Precompose runs g, then f.
func Precompose[R any, A any, B any, C any](f Arrow[R, B, C], g Arrow[R, A, B]) Arrow[R, A, C] {
	return Postcompose(g, f)
}

// PrecomposeFunc applies fn to the input before running f.
func PrecomposeFunc[R any, A any, B any, C any](f Arrow[R, B, C], fn func(A) B) Arrow[R, A, C] {
	return Precompose(f, Lift[R](fn))
}

// First runs f on the first component of a pair.
func First[C any, R any, A any, B any](f Arrow[R, A, B]) Arrow[R, pair.Pair[A, C], pair.Pair[B, C]] {
	validate.NotNil("f", f)
	return func(p pair.Pair[A, C]) reader.Reader[R, pair.Pair[B, C]] {
		return reader.Zip(f(p.First), reader.Pure[R](p.Second))
	}
}

// Second runs f on the second component of a pair.
func Second[C any, R any, A any, B any](f Arrow[R, A, B]) Arrow[R, pair.Pair[C, A], pair.Pair[C, B]] {
	validate.NotNil("f", f)
	return func(p pair.Pair[C, A]) reader.Reader[R, pair.Pair[C, B]] {
		return reader.Zip(reader.Pure[R](p.First), f(p.Second))
	}
}

// Left runs f on the Left case and passes the Right case through.
func Left[C any, R any, A any, B any](f Arrow[R, A, B]) Arrow[R, either.Either[A, C], either.Either[B, C]] {
	return Sum(f, ID[R, C]())
}

// Right runs f on the Right case and passes the Left case through.
func Right[C any, R any, A any, B any](f Arrow[R, A, B]) Arrow[R, either.Either[C, A], either.Either[C, B]] {
	return Sum(ID[R, C](), f)
}

// Product runs f and g on the two components against the same environment.
func Product[R any, A any, B any, C any, D any](f Arrow[R, A, B], g Arrow[R, C, D]) Arrow[R, pair.Pair[A, C], pair.Pair[B, D]] {
	validate.NotNil("f", f)
	validate.NotNil("g", g)
	return func(p pair.Pair[A, C]) reader.Reader[R, pair.Pair[B, D]] {
		return reader.Zip(f(p.First), g(p.Second))
	}
}

// Sum dispatches on the input case and tags the result with the same case.
func Sum[R any, A any, B any, C any, D any](f Arrow[R, A, B], g Arrow[R, C, D]) Arrow[R, either.Either[A, C], either.Either[B, D]] {
	validate.NotNil("f", f)
	validate.NotNil("g", g)
	return func(in either.Either[A, C]) reader.Reader[R, either.Either[B, D]] {
		return either.Fold(in,
			func(a A) reader.Reader[R, either.Either[B, D]] {
				return reader.Map(f(a), either.Left[B, D])
			},
			func(c C) reader.Reader[R, either.Either[B, D]] {
				return reader.Map(g(c), either.Right[B, D])
			},
		)
	}
}

// FanIn runs f on Left inputs and g on Right inputs.
func FanIn[R any, A any, B any, C any](f Arrow[R, A, C], g Arrow[R, B, C]) Arrow[R, either.Either[A, B], C] {
	validate.NotNil("f", f)
	validate.NotNil("g", g)
	return func(in either.Either[A, B]) reader.Reader[R, C] {
		return either.Fold[A, B, reader.Reader[R, C]](in, f, g)
	}
}

// FanOut runs f and g on the same input and environment.
func FanOut[R any, A any, B any, C any](f Arrow[R, A, B], g Arrow[R, A, C]) Arrow[R, A, pair.Pair[B, C]] {
	validate.NotNil("f", f)
	validate.NotNil("g", g)
	return func(a A) reader.Reader[R, pair.Pair[B, C]] {
		return reader.Zip(f(a), g(a))
	}
}

// Apply returns the evaluator arrow over (arrow, input) pairs.
func Apply[R any, A any, B any]() Arrow[R, pair.Pair[Arrow[R, A, B], A], B] {
	return func(p pair.Pair[Arrow[R, A, B], A]) reader.Reader[R, B] {
		validate.NotNil("arrow", p.First)
		return p.First(p.Second)
	}
}
