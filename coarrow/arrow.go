// Package coarrow implements co-Kleisli arrows over value.Value: functions
// that consume a whole value context rather than a bare input. The context's
// evaluation policy (eager, lazy memoized, or always re-evaluated) is visible
// to every arrow in a composition, which lets an arrow decide when, and how
// often, to force its input.
//
// Example:
//
//	settings := value.Later(loadSettings)
//	port := coarrow.Lift(func(s Settings) int { return s.Port })
//	addr := coarrow.PostcomposeFunc(port, func(p int) string { return fmt.Sprintf(":%d", p) })
//	fmt.Println(addr.Run(settings)) // loadSettings runs here
package coarrow

import (
	"github.com/charmingruby/arrows/either"
	"github.com/charmingruby/arrows/pair"
	"github.com/charmingruby/arrows/validate"
	"github.com/charmingruby/arrows/value"
)

// Arrow consumes a context focused on an A and produces a B.
type Arrow[A any, B any] func(value.Value[A]) B

// Run applies the arrow to the context w.
func (f Arrow[A, B]) Run(w value.Value[A]) B {
	return f(w)
}

// ID returns the arrow that extracts the focused value.
func ID[A any]() Arrow[A, A] {
	return func(w value.Value[A]) A {
		return w.Extract()
	}
}

// Lift wraps a plain function. The resulting arrow extracts its context
// exactly once.
func Lift[A any, B any](fn func(A) B) Arrow[A, B] {
	validate.NotNil("fn", fn)
	return func(w value.Value[A]) B {
		return fn(w.Extract())
	}
}

// Postcompose runs f, then g. g receives a context focused on f's result;
// f runs only when g extracts it.
func Postcompose[A any, B any, C any](f Arrow[A, B], g Arrow[B, C]) Arrow[A, C] {
	validate.NotNil("f", f)
	validate.NotNil("g", g)
	return func(w value.Value[A]) C {
		return g(value.Extend(w, f))
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

// PrecomposeFunc applies fn to the focused value before running f.
func PrecomposeFunc[A any, B any, C any](f Arrow[B, C], fn func(A) B) Arrow[A, C] {
	return Precompose(f, Lift(fn))
}

// First runs f on the context projected to the first component and carries
// the second component through.
func First[C any, A any, B any](f Arrow[A, B]) Arrow[pair.Pair[A, C], pair.Pair[B, C]] {
	validate.NotNil("f", f)
	return func(w value.Value[pair.Pair[A, C]]) pair.Pair[B, C] {
		return pair.Of(f(value.Map(w, pair.First[A, C])), w.Extract().Second)
	}
}

// Second runs f on the context projected to the second component.
func Second[C any, A any, B any](f Arrow[A, B]) Arrow[pair.Pair[C, A], pair.Pair[C, B]] {
	validate.NotNil("f", f)
	return func(w value.Value[pair.Pair[C, A]]) pair.Pair[C, B] {
		return pair.Of(w.Extract().First, f(value.Map(w, pair.Second[C, A])))
	}
}

// Left runs f when the focused value is a Left and passes a Right through.
func Left[C any, A any, B any](f Arrow[A, B]) Arrow[either.Either[A, C], either.Either[B, C]] {
	return Sum(f, ID[C]())
}

// Right runs f when the focused value is a Right and passes a Left through.
func Right[C any, A any, B any](f Arrow[A, B]) Arrow[either.Either[C, A], either.Either[C, B]] {
	return Sum(ID[C](), f)
}

// Product runs f and g on the context projected to each component.
func Product[A any, B any, C any, D any](f Arrow[A, B], g Arrow[C, D]) Arrow[pair.Pair[A, C], pair.Pair[B, D]] {
	validate.NotNil("f", f)
	validate.NotNil("g", g)
	return func(w value.Value[pair.Pair[A, C]]) pair.Pair[B, D] {
		return pair.Of(f(value.Map(w, pair.First[A, C])), g(value.Map(w, pair.Second[A, C])))
	}
}

// Sum extracts the focused case once to dispatch, then runs f or g on the
// context narrowed to that case.
func Sum[A any, B any, C any, D any](f Arrow[A, B], g Arrow[C, D]) Arrow[either.Either[A, C], either.Either[B, D]] {
	validate.NotNil("f", f)
	validate.NotNil("g", g)
	return func(w value.Value[either.Either[A, C]]) either.Either[B, D] {
		return either.Fold(w.Extract(),
			func(a A) either.Either[B, D] {
				return either.Left[B, D](f(narrowLeft(w, a)))
			},
			func(c C) either.Either[B, D] {
				return either.Right[B](g(narrowRight(w, c)))
			},
		)
	}
}

// FanIn runs f when the focused value is a Left and g when it is a Right.
func FanIn[A any, B any, C any](f Arrow[A, C], g Arrow[B, C]) Arrow[either.Either[A, B], C] {
	validate.NotNil("f", f)
	validate.NotNil("g", g)
	return func(w value.Value[either.Either[A, B]]) C {
		return either.Fold(w.Extract(),
			func(a A) C { return f(narrowLeft(w, a)) },
			func(b B) C { return g(narrowRight(w, b)) },
		)
	}
}

// FanOut runs f and g on the same context and pairs the results.
func FanOut[A any, B any, C any](f Arrow[A, B], g Arrow[A, C]) Arrow[A, pair.Pair[B, C]] {
	validate.NotNil("f", f)
	validate.NotNil("g", g)
	return func(w value.Value[A]) pair.Pair[B, C] {
		return pair.Of(f(w), g(w))
	}
}

// Apply returns the evaluator arrow: it extracts the paired arrow and runs it
// on the context projected to the paired input.
func Apply[A any, B any]() Arrow[pair.Pair[Arrow[A, B], A], B] {
	return func(w value.Value[pair.Pair[Arrow[A, B], A]]) B {
		p := w.Extract()
		validate.NotNil("arrow", p.First)
		return p.First(value.Map(w, pair.Second[Arrow[A, B], A]))
	}
}

// narrowLeft focuses w on its Left value. If a re-evaluating context later
// yields a Right, the case observed at dispatch is used instead.
func narrowLeft[A any, C any](w value.Value[either.Either[A, C]], observed A) value.Value[A] {
	return value.Map(w, func(e either.Either[A, C]) A {
		if a, ok := e.GetLeft(); ok {
			return a
		}
		return observed
	})
}

func narrowRight[A any, C any](w value.Value[either.Either[A, C]], observed C) value.Value[C] {
	return value.Map(w, func(e either.Either[A, C]) C {
		return e.UnwrapOr(observed)
	})
}
