// Package optionarrow implements Kleisli arrows over option.Option: functions
// whose output may be absent. Composition short-circuits on the first None.
//
// Example:
//
//	inc := optionarrow.Lift(func(x int) int { return x + 1 })
//	half := optionarrow.Arrow[int, int](func(x int) option.Option[int] {
//		if x%2 != 0 {
//			return option.None[int]()
//		}
//		return option.Some(x / 2)
//	})
//	fmt.Println(optionarrow.Postcompose(inc, half).Run(5)) // Some(3)
//
// Every combinator panics with a *validate.ArgumentError when handed a nil
// arrow or function. The arrows satisfy the category, arrow and arrow-choice
// laws (see laws_optionarrow_test.go).
package optionarrow

import (
	"github.com/charmingruby/arrows/either"
	"github.com/charmingruby/arrows/option"
	"github.com/charmingruby/arrows/pair"
	"github.com/charmingruby/arrows/validate"
)

// Arrow maps an A to an optional B.
type Arrow[A any, B any] func(A) option.Option[B]

// Run applies the arrow to a.
func (f Arrow[A, B]) Run(a A) option.Option[B] {
	return f(a)
}

// ID returns the identity arrow, the neutral element of composition.
func ID[A any]() Arrow[A, A] {
	return option.Some[A]
}

// Lift wraps a total function. The resulting arrow never returns None.
//
// Example:
//
//	length := optionarrow.Lift(func(s string) int { return len(s) })
func Lift[A any, B any](fn func(A) B) Arrow[A, B] {
	validate.NotNil("fn", fn)
	return func(a A) option.Option[B] {
		return option.Some(fn(a))
	}
}

// Postcompose runs f, then feeds a present result to g.
func Postcompose[A any, B any, C any](f Arrow[A, B], g Arrow[B, C]) Arrow[A, C] {
	validate.NotNil("f", f)
	validate.NotNil("g", g)
	return func(a A) option.Option[C] {
		return option.FlatMap(f(a), g)
	}
}

// PostcomposeFunc runs f, then applies fn to a present result.
func PostcomposeFunc[A any, B any, C any](f Arrow[A, B], fn func(B) C) Arrow[A, C] {
	return Postcompose(f, Lift(fn))
}

// Precompose runs g, then feeds a present result to f.
func Precompose[A any, B any, C any](f Arrow[B, C], g Arrow[A, B]) Arrow[A, C] {
	return Postcompose(g, f)
}

// PrecomposeFunc applies fn to the input before running f.
func PrecomposeFunc[A any, B any, C any](f Arrow[B, C], fn func(A) B) Arrow[A, C] {
	return Precompose(f, Lift(fn))
}

// First runs f on the first component of a pair and carries the second
// component through.
func First[C any, A any, B any](f Arrow[A, B]) Arrow[pair.Pair[A, C], pair.Pair[B, C]] {
	validate.NotNil("f", f)
	return func(p pair.Pair[A, C]) option.Option[pair.Pair[B, C]] {
		return option.Zip(f(p.First), option.Some(p.Second))
	}
}

// Second runs f on the second component of a pair.
func Second[C any, A any, B any](f Arrow[A, B]) Arrow[pair.Pair[C, A], pair.Pair[C, B]] {
	validate.NotNil("f", f)
	return func(p pair.Pair[C, A]) option.Option[pair.Pair[C, B]] {
		return option.Zip(option.Some(p.First), f(p.Second))
	}
}

// Left runs f on the Left case and passes the Right case through as present.
func Left[C any, A any, B any](f Arrow[A, B]) Arrow[either.Either[A, C], either.Either[B, C]] {
	return Sum(f, ID[C]())
}

// Right runs f on the Right case and passes the Left case through as present.
func Right[C any, A any, B any](f Arrow[A, B]) Arrow[either.Either[C, A], either.Either[C, B]] {
	return Sum(ID[C](), f)
}

// Product runs f on the first component and g on the second. The result is
// None when either side is None.
func Product[A any, B any, C any, D any](f Arrow[A, B], g Arrow[C, D]) Arrow[pair.Pair[A, C], pair.Pair[B, D]] {
	validate.NotNil("f", f)
	validate.NotNil("g", g)
	return func(p pair.Pair[A, C]) option.Option[pair.Pair[B, D]] {
		return option.Zip(f(p.First), g(p.Second))
	}
}

// Sum dispatches Left inputs to f and Right inputs to g, keeping the case tag.
func Sum[A any, B any, C any, D any](f Arrow[A, B], g Arrow[C, D]) Arrow[either.Either[A, C], either.Either[B, D]] {
	validate.NotNil("f", f)
	validate.NotNil("g", g)
	return func(e either.Either[A, C]) option.Option[either.Either[B, D]] {
		return either.Fold(e,
			func(a A) option.Option[either.Either[B, D]] {
				return option.Map(f(a), either.Left[B, D])
			},
			func(c C) option.Option[either.Either[B, D]] {
				return option.Map(g(c), either.Right[B, D])
			},
		)
	}
}

// FanIn runs f on Left inputs and g on Right inputs.
func FanIn[A any, B any, C any](f Arrow[A, C], g Arrow[B, C]) Arrow[either.Either[A, B], C] {
	validate.NotNil("f", f)
	validate.NotNil("g", g)
	return func(e either.Either[A, B]) option.Option[C] {
		return either.Fold[A, B, option.Option[C]](e, f, g)
	}
}

// FanOut runs f and g on the same input and pairs the results.
//
// Example:
//
//	stats := optionarrow.FanOut(minOf, maxOf)
//	fmt.Println(stats.Run(samples)) // Some((1, 9))
func FanOut[A any, B any, C any](f Arrow[A, B], g Arrow[A, C]) Arrow[A, pair.Pair[B, C]] {
	validate.NotNil("f", f)
	validate.NotNil("g", g)
	return func(a A) option.Option[pair.Pair[B, C]] {
		return option.Zip(f(a), g(a))
	}
}

// Apply returns the evaluator arrow: it runs the paired arrow on the paired
// input.
func Apply[A any, B any]() Arrow[pair.Pair[Arrow[A, B], A], B] {
	return func(p pair.Pair[Arrow[A, B], A]) option.Option[B] {
		validate.NotNil("arrow", p.First)
		return p.First(p.Second)
	}
}
