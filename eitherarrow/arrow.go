// Package eitherarrow implements Kleisli arrows over either.Either: functions
// that either fail with an E or succeed with an output. Composition stops at
// the first Left and propagates its value unchanged.
//
// Example:
//
//	parse := eitherarrow.Arrow[error, string, int](func(s string) either.Either[error, int] {
//		return either.FromTuple(strconv.Atoi(s))
//	})
//	positive := eitherarrow.Arrow[error, int, int](func(n int) either.Either[error, int] {
//		if n <= 0 {
//			return either.Left[error, int](errNotPositive)
//		}
//		return either.Right[error](n)
//	})
//	quantity := eitherarrow.Postcompose(parse, positive)
package eitherarrow

import (
	"github.com/charmingruby/arrows/either"
	"github.com/charmingruby/arrows/pair"
	"github.com/charmingruby/arrows/validate"
)

// Arrow maps an A to either a failure E or a B.
type Arrow[E any, A any, B any] func(A) either.Either[E, B]

// Run applies the arrow to a.
func (f Arrow[E, A, B]) Run(a A) either.Either[E, B] {
	return f(a)
}

// ID returns the identity arrow.
func ID[E any, A any]() Arrow[E, A, A] {
	return either.Right[E, A]
}

// Lift wraps a total function; the resulting arrow always returns Right.
func Lift[E any, A any, B any](fn func(A) B) Arrow[E, A, B] {
	validate.NotNil("fn", fn)
	return func(a A) either.Either[E, B] {
		return either.Right[E](fn(a))
	}
}

// Postcompose runs f, then g on a Right result.
func Postcompose[E any, A any, B any, C any](f Arrow[E, A, B], g Arrow[E, B, C]) Arrow[E, A, C] {
	validate.NotNil("f", f)
	validate.NotNil("g", g)
	return func(a A) either.Either[E, C] {
		return either.FlatMap(f(a), g)
	}
}

// PostcomposeFunc runs f, then applies fn to a Right result.
func PostcomposeFunc[E any, A any, B any, C any](f Arrow[E, A, B], fn func(B) C) Arrow[E, A, C] {
	return Postcompose(f, Lift[E](fn))
}

// Precompose runs g, then f on a Right result.
func Precompose[E any, A any, B any, C any](f Arrow[E, B, C], g Arrow[E, A, B]) Arrow[E, A, C] {
	return Postcompose(g, f)
}

// PrecomposeFunc applies fn to the input before running f.
func PrecomposeFunc[E any, A any, B any, C any](f Arrow[E, B, C], fn func(A) B) Arrow[E, A, C] {
	return Precompose(f, Lift[E](fn))
}

// First runs f on the first component of a pair.
func First[C any, E any, A any, B any](f Arrow[E, A, B]) Arrow[E, pair.Pair[A, C], pair.Pair[B, C]] {
	validate.NotNil("f", f)
	return func(p pair.Pair[A, C]) either.Either[E, pair.Pair[B, C]] {
		return either.Zip(f(p.First), either.Right[E](p.Second))
	}
}

// Second runs f on the second component of a pair.
func Second[C any, E any, A any, B any](f Arrow[E, A, B]) Arrow[E, pair.Pair[C, A], pair.Pair[C, B]] {
	validate.NotNil("f", f)
	return func(p pair.Pair[C, A]) either.Either[E, pair.Pair[C, B]] {
		return either.Zip(either.Right[E](p.First), f(p.Second))
	}
}

// Left runs f on the Left case of the input choice; the Right case succeeds
// unchanged.
//
// Example:
//
//	eitherarrow.Left[int](eitherarrow.ID[string, int]()).Run(either.Left[int, int](7))
//	// Right(Left(7))
func Left[C any, E any, A any, B any](f Arrow[E, A, B]) Arrow[E, either.Either[A, C], either.Either[B, C]] {
	return Sum(f, ID[E, C]())
}

// Right runs f on the Right case of the input choice.
func Right[C any, E any, A any, B any](f Arrow[E, A, B]) Arrow[E, either.Either[C, A], either.Either[C, B]] {
	return Sum(ID[E, C](), f)
}

// Product runs f and g on the two components. f's failure wins when both
// fail.
func Product[E any, A any, B any, C any, D any](f Arrow[E, A, B], g Arrow[E, C, D]) Arrow[E, pair.Pair[A, C], pair.Pair[B, D]] {
	validate.NotNil("f", f)
	validate.NotNil("g", g)
	return func(p pair.Pair[A, C]) either.Either[E, pair.Pair[B, D]] {
		return either.Zip(f(p.First), g(p.Second))
	}
}

// Sum dispatches on the input case and tags the result with the same case.
func Sum[E any, A any, B any, C any, D any](f Arrow[E, A, B], g Arrow[E, C, D]) Arrow[E, either.Either[A, C], either.Either[B, D]] {
	validate.NotNil("f", f)
	validate.NotNil("g", g)
	return func(in either.Either[A, C]) either.Either[E, either.Either[B, D]] {
		return either.Fold(in,
			func(a A) either.Either[E, either.Either[B, D]] {
				return either.Map(f(a), either.Left[B, D])
			},
			func(c C) either.Either[E, either.Either[B, D]] {
				return either.Map(g(c), either.Right[B, D])
			},
		)
	}
}

// FanIn runs f on Left inputs and g on Right inputs.
func FanIn[E any, A any, B any, C any](f Arrow[E, A, C], g Arrow[E, B, C]) Arrow[E, either.Either[A, B], C] {
	validate.NotNil("f", f)
	validate.NotNil("g", g)
	return func(in either.Either[A, B]) either.Either[E, C] {
		return either.Fold[A, B, either.Either[E, C]](in, f, g)
	}
}

// FanOut runs f and g on the same input and pairs the results.
func FanOut[E any, A any, B any, C any](f Arrow[E, A, B], g Arrow[E, A, C]) Arrow[E, A, pair.Pair[B, C]] {
	validate.NotNil("f", f)
	validate.NotNil("g", g)
	return func(a A) either.Either[E, pair.Pair[B, C]] {
		return either.Zip(f(a), g(a))
	}
}

// Apply returns the evaluator arrow over (arrow, input) pairs.
func Apply[E any, A any, B any]() Arrow[E, pair.Pair[Arrow[E, A, B], A], B] {
	return func(p pair.Pair[Arrow[E, A, B], A]) either.Either[E, B] {
		validate.NotNil("arrow", p.First)
		return p.First(p.Second)
	}
}
