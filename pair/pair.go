// Package pair provides the product type used by arrow strength combinators.
//
// Example:
//
//	p := pair.Of("id", 42)
//	name, n := p.Unpack()
package pair

import (
	"fmt"

	"code.hybscloud.com/kont"
)

// Pair holds two values.
//
// Example:
//
//	p := pair.Pair[int, string]{First: 1, Second: "a"}
type Pair[A any, B any] struct {
	First  A
	Second B
}

// Of constructs a Pair.
func Of[A any, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Unpack returns both components as multiple return values.
//
// Example:
//
//	key, value := p.Unpack()
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// Swap exchanges the components.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{First: p.Second, Second: p.First}
}

// String implements fmt.Stringer for debugging.
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// First projects the first component. Useful as a function value, e.g.
// option.Map(opt, pair.First[int, string]).
func First[A any, B any](p Pair[A, B]) A {
	return p.First
}

// Second projects the second component.
func Second[A any, B any](p Pair[A, B]) B {
	return p.Second
}

// MapFirst applies fn to the first component.
func MapFirst[A any, B any, C any](p Pair[A, C], fn func(A) B) Pair[B, C] {
	return Pair[B, C]{First: fn(p.First), Second: p.Second}
}

// MapSecond applies fn to the second component.
func MapSecond[A any, B any, C any](p Pair[C, A], fn func(A) B) Pair[C, B] {
	return Pair[C, B]{First: p.First, Second: fn(p.Second)}
}

// FromKont converts a kont.Pair, as returned by kont's Listen operation.
func FromKont[A any, B any](p kont.Pair[A, B]) Pair[A, B] {
	return Pair[A, B]{First: p.Fst, Second: p.Snd}
}

// ToKont converts the Pair into a kont.Pair.
func (p Pair[A, B]) ToKont() kont.Pair[A, B] {
	return kont.Pair[A, B]{Fst: p.First, Snd: p.Second}
}
