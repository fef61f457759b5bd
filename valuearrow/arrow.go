// Package valuearrow implements Kleisli arrows over value.Value. Composed
// arrows build deferred computations: nothing downstream of the input runs
// until the resulting Value is extracted.
package valuearrow

import (
	"github.com/charmingruby/arrows/either"
	"github.com/charmingruby/arrows/pair"
	"github.com/charmingruby/arrows/validate"
	"github.com/charmingruby/arrows/value"
)

// Arrow maps an A to a context focused on a B.
type Arrow[A any, B any] func(A) value.Value[B]

// Run applies the arrow to a.
func (f Arrow[A, B]) Run(a A) value.Value[B] {
	return f(a)
}

// ID returns the identity arrow.
func ID[A any]() Arrow[A, A] {
	return value.Now[A]
}

// Lift wraps a total function. fn runs eagerly, when the arrow is applied.
func Lift[A any, B any](fn func(A) B) Arrow[A, B] {
	validate.NotNil("fn", fn)
	return func(a A) value.Value[B] {
		return value.Now(fn(a))
	}
}

// Lazy wraps fn so that it runs on the first Extract of each result and is
// cached afterwards.
func Lazy[A any, B any](fn func(A) B) Arrow[A, B] {
	validate.NotNil("fn", fn)
	return func(a A) value.Value[B] {
		return value.Later(func() B { return fn(a) })
	}
}

// Postcompose runs f, then g.
func Postcompose[A any, B any, C any](f Arrow[A, B], g Arrow[B, C]) Arrow[A, C] {
	validate.NotNil("f", f)
	validate.NotNil("g", g)
	return func(a A) value.Value[C] {
		return value.FlatMap(f(a), g)
	}
}

// PostcomposeFunc runs f, then applies fn to its result.
func PostcomposeFunc[A any, B any, C any](f Arrow[A, B], fn func(B) C) Arrow[A, C] {
	return Postcompose(f, Lift(fn))
}

// Precompose runs g, then f.
func Precompose[A any, B any, C any](f Arrow[B, C], g Arrow[A, B]) Arrow[A, C] {
	return Postcompose(g, f)
}

// PrecomposeFunc applies fn to the input before running f.
func PrecomposeFunc[A any, B any, C any](f Arrow[B, C], fn func(A) B) Arrow[A, C] {
	return Precompose(f, Lift(fn))
}

// First runs f on the first component of a pair.
func First[C any, A any, B any](f Arrow[A, B]) Arrow[pair.Pair[A, C], pair.Pair[B, C]] {
	validate.NotNil("f", f)
	return func(p pair.Pair[A, C]) value.Value[pair.Pair[B, C]] {
		return value.Zip(f(p.First), value.Now(p.Second))
	}
}

// Second runs f on the second component of a pair.
func Second[C any, A any, B any](f Arrow[A, B]) Arrow[pair.Pair[C, A], pair.Pair[C, B]] {
	validate.NotNil("f", f)
	return func(p pair.Pair[C, A]) value.Value[pair.Pair[C, B]] {
		return value.Zip(value.Now(p.First), f(p.Second))
	}
}

// Left runs f on the Left case and passes the Right case through.
func Left[C any, A any, B any](f Arrow[A, B]) Arrow[either.Either[A, C], either.Either[B, C]] {
	return Sum(f, ID[C]())
}

// Right runs f on the Right case and passes the Left case through.
func Right[C any, A any, B any](f Arrow[A, B]) Arrow[either.Either[C, A], either.Either[C, B]] {
	return Sum(ID[C](), f)
}

// Product runs f on the first component and g on the second.
func Product[A any, B any, C any, D any](f Arrow[A, B], g Arrow[C, D]) Arrow[pair.Pair[A, C], pair.Pair[B, D]] {
	validate.NotNil("f", f)
	validate.NotNil("g", g)
	return func(p pair.Pair[A, C]) value.Value[pair.Pair[B, D]] {
		return value.Zip(f(p.First), g(p.Second))
	}
}

// Sum dispatches on the input case and tags the result with the same case.
func Sum[A any, B any, C any, D any](f Arrow[A, B], g Arrow[C, D]) Arrow[either.Either[A, C], either.Either[B, D]] {
	validate.NotNil("f", f)
	validate.NotNil("g", g)
	return func(in either.Either[A, C]) value.Value[either.Either[B, D]] {
		return either.Fold(in,
			func(a A) value.Value[either.Either[B, D]] {
				return value.Map(f(a), either.Left[B, D])
			},
			func(c C) value.Value[either.Either[B, D]] {
				return value.Map(g(c), either.Right[B, D])
			},
		)
	}
}

// FanIn runs f on Left inputs and g on Right inputs.
func FanIn[A any, B any, C any](f Arrow[A, C], g Arrow[B, C]) Arrow[either.Either[A, B], C] {
	validate.NotNil("f", f)
	validate.NotNil("g", g)
	return func(in either.Either[A, B]) value.Value[C] {
		return either.Fold[A, B, value.Value[C]](in, f, g)
	}
}

// FanOut runs f and g on the same input and pairs the results.
func FanOut[A any, B any, C any](f Arrow[A, B], g Arrow[A, C]) Arrow[A, pair.Pair[B, C]] {
	validate.NotNil("f", f)
	validate.NotNil("g", g)
	return func(a A) value.Value[pair.Pair[B, C]] {
		return value.Zip(f(a), g(a))
	}
}

// Apply returns the evaluator arrow over (arrow, input) pairs.
func Apply[A any, B any]() Arrow[pair.Pair[Arrow[A, B], A], B] {
	return func(p pair.Pair[Arrow[A, B], A]) value.Value[B] {
		validate.NotNil("arrow", p.First)
		return p.First(p.Second)
	}
}
