// Package state defines computations that thread a state value strictly in
// sequence.
//
// Example:
//
//	next := state.FlatMap(state.Get[int](), func(n int) state.State[int, int] {
//		return state.Map(state.Put(n+1), func(struct{}) int { return n })
//	})
//	id, counter := next.Run(41)
package state

import (
	"code.hybscloud.com/kont"

	"github.com/charmingruby/arrows/pair"
)

// State is a computation that reads a state S and returns a result A together
// with the successor state.
type State[S any, A any] func(s S) (A, S)

// Run executes the computation from the initial state. A nil State yields the
// zero A and leaves the state untouched.
func (m State[S, A]) Run(initial S) (A, S) {
	if m == nil {
		var zero A
		return zero, initial
	}
	return m(initial)
}

// Eval runs the computation and returns only the result.
func (m State[S, A]) Eval(initial S) A {
	a, _ := m.Run(initial)
	return a
}

// Exec runs the computation and returns only the final state.
func (m State[S, A]) Exec(initial S) S {
	_, s := m.Run(initial)
	return s
}

// Pure returns value and leaves the state untouched.
func Pure[S any, A any](value A) State[S, A] {
	return func(s S) (A, S) {
		return value, s
	}
}

// Get returns the current state as the result.
func Get[S any]() State[S, S] {
	return func(s S) (S, S) {
		return s, s
	}
}

// Gets projects a value out of the current state.
func Gets[S any, A any](fn func(S) A) State[S, A] {
	return func(s S) (A, S) {
		return fn(s), s
	}
}

// Put replaces the state.
func Put[S any](next S) State[S, struct{}] {
	return func(S) (struct{}, S) {
		return struct{}{}, next
	}
}

// Modify applies fn to the state and returns the new state.
func Modify[S any](fn func(S) S) State[S, S] {
	return func(s S) (S, S) {
		next := fn(s)
		return next, next
	}
}

// Map transforms the result, leaving the state threading untouched.
func Map[S any, A any, B any](m State[S, A], fn func(A) B) State[S, B] {
	return func(s S) (B, S) {
		a, next := m.Run(s)
		return fn(a), next
	}
}

// FlatMap runs m, then the computation chosen by fn from m's result, feeding
// it m's final state.
func FlatMap[S any, A any, B any](m State[S, A], fn func(A) State[S, B]) State[S, B] {
	return func(s S) (B, S) {
		a, next := m.Run(s)
		return fn(a).Run(next)
	}
}

// Zip runs ma, then mb on the state ma produced, and pairs the results.
func Zip[S any, A any, B any](ma State[S, A], mb State[S, B]) State[S, pair.Pair[A, B]] {
	return func(s S) (pair.Pair[A, B], S) {
		a, mid := ma.Run(s)
		b, next := mb.Run(mid)
		return pair.Of(a, b), next
	}
}

// Ap runs mf, then ma, and applies the produced function to the produced
// value.
func Ap[S any, A any, B any](mf State[S, func(A) B], ma State[S, A]) State[S, B] {
	return func(s S) (B, S) {
		fn, mid := mf.Run(s)
		a, next := ma.Run(mid)
		return fn(a), next
	}
}

// FromCont turns a kont computation performing kont.Get/Put/Modify effects
// on S into a State.
//
// Example:
//
//	incr := state.FromCont[int](kont.ModifyState(func(n int) int { return n + 1 },
//		func(n int) kont.Eff[int] { return kont.Pure(n) }))
//	n, s := incr.Run(1) // 2, 2
func FromCont[S any, A any](m kont.Eff[A]) State[S, A] {
	return func(s S) (A, S) {
		return kont.RunState[S, A](s, m)
	}
}
