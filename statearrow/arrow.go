// Package statearrow implements Kleisli arrows over state.State. State is
// threaded strictly in sequence: the left operand's state transition is
// complete before the right operand sees the state.
package statearrow

import (
	"code.hybscloud.com/kont"

	"github.com/charmingruby/arrows/either"
	"github.com/charmingruby/arrows/pair"
	"github.com/charmingruby/arrows/state"
	"github.com/charmingruby/arrows/validate"
)

// Arrow maps an A to a state transition over S producing a B.
type Arrow[S any, A any, B any] func(A) state.State[S, B]

// Run applies the arrow to a. The result still awaits its initial state.
func (f Arrow[S, A, B]) Run(a A) state.State[S, B] {
	return f(a)
}

// ID returns the identity arrow; it leaves the state untouched.
func ID[S any, A any]() Arrow[S, A, A] {
	return state.Pure[S, A]
}

// Lift wraps a total function that does not touch the state.
func Lift[S any, A any, B any](fn func(A) B) Arrow[S, A, B] {
	validate.NotNil("fn", fn)
	return func(a A) state.State[S, B] {
		return state.Pure[S](fn(a))
	}
}

// FromCont lifts a function returning kont computations that perform
// kont.Get/Put/Modify effects on S.
func FromCont[S any, A any, B any](fn func(A) kont.Eff[B]) Arrow[S, A, B] {
	validate.NotNil("fn", fn)
	return func(a A) state.State[S, B] {
		return state.FromCont[S](fn(a))
	}
}

// Postcompose runs f, then g from the state f left behind.
func Postcompose[S any, A any, B any, C any](f Arrow[S, A, B], g Arrow[S, B, C]) Arrow[S, A, C] {
	validate.NotNil("f", f)
	validate.NotNil("g", g)
	return func(a A) state.State[S, C] {
		return state.FlatMap(f(a), g)
	}
}

// PostcomposeFunc runs f, then applies fn to its result.
func PostcomposeFunc[S any, A any, B any, C any](f Arrow[S, A, B], fn func(B) C) Arrow[S, A, C] {
	return Postcompose(f, Lift[S](fn))
}

// Precompose runs g, then f.
func Precompose[S any, A any, B any, C any](f Arrow[S, B, C], g Arrow[S, A, B]) Arrow[S, A, C] {
	return Postcompose(g, f)
}

// PrecomposeFunc applies fn to the input before running f.
func PrecomposeFunc[S any, A any, B any, C any](f Arrow[S, B, C], fn func(A) B) Arrow[S, A, C] {
	return Precompose(f, Lift[S](fn))
}

// First runs f on the first component of a pair; the second component is
// carried through while the state threads forward.
func First[C any, S any, A any, B any](f Arrow[S, A, B]) Arrow[S, pair.Pair[A, C], pair.Pair[B, C]] {
	validate.NotNil("f", f)
	return func(p pair.Pair[A, C]) state.State[S, pair.Pair[B, C]] {
		return state.Zip(f(p.First), state.Pure[S](p.Second))
	}
}

// Second runs f on the second component of a pair.
func Second[C any, S any, A any, B any](f Arrow[S, A, B]) Arrow[S, pair.Pair[C, A], pair.Pair[C, B]] {
	validate.NotNil("f", f)
	return func(p pair.Pair[C, A]) state.State[S, pair.Pair[C, B]] {
		return state.Zip(state.Pure[S](p.First), f(p.Second))
	}
}

// Left runs f on the Left case and passes the Right case through.
func Left[C any, S any, A any, B any](f Arrow[S, A, B]) Arrow[S, either.Either[A, C], either.Either[B, C]] {
	return Sum(f, ID[S, C]())
}

// Right runs f on the Right case and passes the Left case through.
func Right[C any, S any, A any, B any](f Arrow[S, A, B]) Arrow[S, either.Either[C, A], either.Either[C, B]] {
	return Sum(ID[S, C](), f)
}

// Product runs f on the first component, then g on the second.
func Product[S any, A any, B any, C any, D any](f Arrow[S, A, B], g Arrow[S, C, D]) Arrow[S, pair.Pair[A, C], pair.Pair[B, D]] {
	validate.NotNil("f", f)
	validate.NotNil("g", g)
	return func(p pair.Pair[A, C]) state.State[S, pair.Pair[B, D]] {
		return state.Zip(f(p.First), g(p.Second))
	}
}

// Sum dispatches on the input case and tags the result with the same case.
func Sum[S any, A any, B any, C any, D any](f Arrow[S, A, B], g Arrow[S, C, D]) Arrow[S, either.Either[A, C], either.Either[B, D]] {
	validate.NotNil("f", f)
	validate.NotNil("g", g)
	return func(in either.Either[A, C]) state.State[S, either.Either[B, D]] {
		return either.Fold(in,
			func(a A) state.State[S, either.Either[B, D]] {
				return state.Map(f(a), either.Left[B, D])
			},
			func(c C) state.State[S, either.Either[B, D]] {
				return state.Map(g(c), either.Right[B, D])
			},
		)
	}
}

// FanIn runs f on Left inputs and g on Right inputs.
func FanIn[S any, A any, B any, C any](f Arrow[S, A, C], g Arrow[S, B, C]) Arrow[S, either.Either[A, B], C] {
	validate.NotNil("f", f)
	validate.NotNil("g", g)
	return func(in either.Either[A, B]) state.State[S, C] {
		return either.Fold[A, B, state.State[S, C]](in, f, g)
	}
}

// FanOut runs f, then g, on the same input and pairs the results.
func FanOut[S any, A any, B any, C any](f Arrow[S, A, B], g Arrow[S, A, C]) Arrow[S, A, pair.Pair[B, C]] {
	validate.NotNil("f", f)
	validate.NotNil("g", g)
	return func(a A) state.State[S, pair.Pair[B, C]] {
		return state.Zip(f(a), g(a))
	}
}

// Apply returns the evaluator arrow over (arrow, input) pairs.
func Apply[S any, A any, B any]() Arrow[S, pair.Pair[Arrow[S, A, B], A], B] {
	return func(p pair.Pair[Arrow[S, A, B], A]) state.State[S, B] {
		validate.NotNil("arrow", p.First)
		return p.First(p.Second)
	}
}
