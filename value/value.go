// Package value defines a generic value context: a single focused value whose
// evaluation policy (eager, lazy memoized, or re-evaluated on every access)
// is chosen at construction and stays opaque to the combinators.
//
// Value is both a monad (Pure, Map, FlatMap) and a comonad (Extract, Extend).
//
// Example:
//
//	config := value.Later(loadConfig)
//	port := value.Map(config, func(c Config) int { return c.Port })
//	fmt.Println(port.Extract()) // loadConfig runs here, once
package value

import (
	"fmt"
	"sync"

	"github.com/charmingruby/arrows/pair"
)

// Value wraps a computation of a single A. The zero Value extracts the zero A.
//
// Example:
//
//	var v value.Value[int] = value.Now(42)
type Value[A any] struct {
	get func() A
}

// Now wraps an already computed value.
//
// Example:
//
//	ready := value.Now("ready")
func Now[A any](a A) Value[A] {
	return Value[A]{get: func() A { return a }}
}

// Pure is Now under its monadic name.
func Pure[A any](a A) Value[A] {
	return Now(a)
}

// Later defers fn until the first Extract and caches its result. Concurrent
// extractions evaluate fn at most once.
//
// Example:
//
//	settings := value.Later(func() Settings { return parse(os.Args) })
func Later[A any](fn func() A) Value[A] {
	return Value[A]{get: sync.OnceValue(fn)}
}

// Always defers fn and re-evaluates it on every Extract.
//
// Example:
//
//	now := value.Always(time.Now)
func Always[A any](fn func() A) Value[A] {
	return Value[A]{get: fn}
}

// Extract evaluates the context and returns its focused value.
func (v Value[A]) Extract() A {
	if v.get == nil {
		var zero A
		return zero
	}
	return v.get()
}

// String implements fmt.Stringer. It forces evaluation.
func (v Value[A]) String() string {
	return fmt.Sprintf("Value(%v)", v.Extract())
}

// Memoize returns a context that evaluates v at most once.
func Memoize[A any](v Value[A]) Value[A] {
	return Later(v.Extract)
}

// Map transforms the focused value. The result is deferred: fn runs when the
// returned context is extracted, under v's own policy for the input.
//
// Example:
//
//	name := value.Map(user, func(u User) string { return u.Name })
func Map[A any, B any](v Value[A], fn func(A) B) Value[B] {
	return Value[B]{get: func() B {
		return fn(v.Extract())
	}}
}

// FlatMap chains a context-producing function.
func FlatMap[A any, B any](v Value[A], fn func(A) Value[B]) Value[B] {
	return Value[B]{get: func() B {
		return fn(v.Extract()).Extract()
	}}
}

// Zip pairs the focused values of two contexts, evaluating a before b.
func Zip[A any, B any](a Value[A], b Value[B]) Value[pair.Pair[A, B]] {
	return Value[pair.Pair[A, B]]{get: func() pair.Pair[A, B] {
		first := a.Extract()
		return pair.Of(first, b.Extract())
	}}
}

// Unzip splits a context of pairs into two contexts, one per component.
func Unzip[A any, B any](v Value[pair.Pair[A, B]]) (Value[A], Value[B]) {
	return Map(v, pair.First[A, B]), Map(v, pair.Second[A, B])
}

// Extend lifts a context-consuming function into a context-producing one:
// the result focuses on fn applied to the whole of v.
//
// Example:
//
//	described := value.Extend(v, func(c value.Value[int]) string {
//		return fmt.Sprintf("n=%d", c.Extract())
//	})
func Extend[A any, B any](v Value[A], fn func(Value[A]) B) Value[B] {
	return Value[B]{get: func() B {
		return fn(v)
	}}
}

// Duplicate nests v inside another context.
func Duplicate[A any](v Value[A]) Value[Value[A]] {
	return Extend(v, func(inner Value[A]) Value[A] { return inner })
}
