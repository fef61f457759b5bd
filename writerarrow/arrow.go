// Package writerarrow implements Kleisli arrows over writer.Writer. Every
// combinator appends logs in evaluation order: the upstream arrow's entries
// come before the downstream arrow's, and the left operand's before the
// right's.
package writerarrow

import (
	"code.hybscloud.com/kont"

	"github.com/charmingruby/arrows/either"
	"github.com/charmingruby/arrows/pair"
	"github.com/charmingruby/arrows/validate"
	"github.com/charmingruby/arrows/writer"
)

// Arrow maps an A to a B together with a log of type W.
type Arrow[W writer.Monoid[W], A any, B any] func(A) writer.Writer[W, B]

// Run applies the arrow to a.
func (f Arrow[W, A, B]) Run(a A) writer.Writer[W, B] {
	return f(a)
}

// ID returns the identity arrow. It logs nothing.
func ID[W writer.Monoid[W], A any]() Arrow[W, A, A] {
	return writer.Pure[W, A]
}

// Lift wraps a total function. The resulting arrow logs nothing.
func Lift[W writer.Monoid[W], A any, B any](fn func(A) B) Arrow[W, A, B] {
	validate.NotNil("fn", fn)
	return func(a A) writer.Writer[W, B] {
		return writer.Pure[W](fn(a))
	}
}

// Traced wraps fn and records trace(input, output) for every call.
//
// Example:
//
//	double := writerarrow.Traced(func(n int) int { return n * 2 },
//		func(in, out int) writer.Log[string] { return writer.Log[string]{fmt.Sprintf("%d->%d", in, out)} })
func Traced[W writer.Monoid[W], A any, B any](fn func(A) B, trace func(A, B) W) Arrow[W, A, B] {
	validate.NotNil("fn", fn)
	validate.NotNil("trace", trace)
	return func(a A) writer.Writer[W, B] {
		b := fn(a)
		return writer.New(b, trace(a, b))
	}
}

// FromCont lifts a function returning kont computations that perform
// kont.Tell[T] effects. Told values become Log entries.
func FromCont[T any, A any, B any](fn func(A) kont.Eff[B]) Arrow[writer.Log[T], A, B] {
	validate.NotNil("fn", fn)
	return func(a A) writer.Writer[writer.Log[T], B] {
		return writer.FromCont[T](fn(a))
	}
}

// Postcompose runs f, then g, and appends g's log after f's.
func Postcompose[W writer.Monoid[W], A any, B any, C any](f Arrow[W, A, B], g Arrow[W, B, C]) Arrow[W, A, C] {
	validate.NotNil("f", f)
	validate.NotNil("g", g)
	return func(a A) writer.Writer[W, C] {
		return writer.FlatMap(f(a), g)
	}
}

// PostcomposeFunc runs f, then applies fn to its result.
func PostcomposeFunc[W writer.Monoid[W], A any, B any, C any](f Arrow[W, A, B], fn func(B) C) Arrow[W, A, C] {
	return Postcompose(f, Lift[W](fn))
}

// Precompose runs g, then f.
func Precompose[W writer.Monoid[W], A any, B any, C any](f Arrow[W, B, C], g Arrow[W, A, B]) Arrow[W, A, C] {
	return Postcompose(g, f)
}

// PrecomposeFunc applies fn to the input before running f.
func PrecomposeFunc[W writer.Monoid[W], A any, B any, C any](f Arrow[W, B, C], fn func(A) B) Arrow[W, A, C] {
	return Precompose(f, Lift[W](fn))
}

// First runs f on the first component of a pair.
func First[C any, W writer.Monoid[W], A any, B any](f Arrow[W, A, B]) Arrow[W, pair.Pair[A, C], pair.Pair[B, C]] {
	validate.NotNil("f", f)
	return func(p pair.Pair[A, C]) writer.Writer[W, pair.Pair[B, C]] {
		return writer.Zip(f(p.First), writer.Pure[W](p.Second))
	}
}

// Second runs f on the second component of a pair.
func Second[C any, W writer.Monoid[W], A any, B any](f Arrow[W, A, B]) Arrow[W, pair.Pair[C, A], pair.Pair[C, B]] {
	validate.NotNil("f", f)
	return func(p pair.Pair[C, A]) writer.Writer[W, pair.Pair[C, B]] {
		return writer.Zip(writer.Pure[W](p.First), f(p.Second))
	}
}

// Left runs f on the Left case and passes the Right case through with an
// empty log.
func Left[C any, W writer.Monoid[W], A any, B any](f Arrow[W, A, B]) Arrow[W, either.Either[A, C], either.Either[B, C]] {
	return Sum(f, ID[W, C]())
}

// Right runs f on the Right case and passes the Left case through.
func Right[C any, W writer.Monoid[W], A any, B any](f Arrow[W, A, B]) Arrow[W, either.Either[C, A], either.Either[C, B]] {
	return Sum(ID[W, C](), f)
}

// Product runs f on the first component and g on the second. f's log comes
// first.
func Product[W writer.Monoid[W], A any, B any, C any, D any](f Arrow[W, A, B], g Arrow[W, C, D]) Arrow[W, pair.Pair[A, C], pair.Pair[B, D]] {
	validate.NotNil("f", f)
	validate.NotNil("g", g)
	return func(p pair.Pair[A, C]) writer.Writer[W, pair.Pair[B, D]] {
		return writer.Zip(f(p.First), g(p.Second))
	}
}

// Sum dispatches on the input case and tags the result with the same case.
func Sum[W writer.Monoid[W], A any, B any, C any, D any](f Arrow[W, A, B], g Arrow[W, C, D]) Arrow[W, either.Either[A, C], either.Either[B, D]] {
	validate.NotNil("f", f)
	validate.NotNil("g", g)
	return func(in either.Either[A, C]) writer.Writer[W, either.Either[B, D]] {
		return either.Fold(in,
			func(a A) writer.Writer[W, either.Either[B, D]] {
				return writer.Map(f(a), either.Left[B, D])
			},
			func(c C) writer.Writer[W, either.Either[B, D]] {
				return writer.Map(g(c), either.Right[B, D])
			},
		)
	}
}

// FanIn runs f on Left inputs and g on Right inputs.
func FanIn[W writer.Monoid[W], A any, B any, C any](f Arrow[W, A, C], g Arrow[W, B, C]) Arrow[W, either.Either[A, B], C] {
	validate.NotNil("f", f)
	validate.NotNil("g", g)
	return func(in either.Either[A, B]) writer.Writer[W, C] {
		return either.Fold[A, B, writer.Writer[W, C]](in, f, g)
	}
}

// FanOut runs f and g on the same input. f's log comes first.
func FanOut[W writer.Monoid[W], A any, B any, C any](f Arrow[W, A, B], g Arrow[W, A, C]) Arrow[W, A, pair.Pair[B, C]] {
	validate.NotNil("f", f)
	validate.NotNil("g", g)
	return func(a A) writer.Writer[W, pair.Pair[B, C]] {
		return writer.Zip(f(a), g(a))
	}
}

// Apply returns the evaluator arrow over (arrow, input) pairs.
func Apply[W writer.Monoid[W], A any, B any]() Arrow[W, pair.Pair[Arrow[W, A, B], A], B] {
	return func(p pair.Pair[Arrow[W, A, B], A]) writer.Writer[W, B] {
		validate.NotNil("arrow", p.First)
		return p.First(p.Second)
	}
}
