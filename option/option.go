// Package option is the presence/absence effect. An absent value is data: it
// flows through FlatMap, Zip and Traverse, and every step after the first
// None is skipped.
//
// Example:
//
//	port := option.FlatMap(option.FromOk(os.LookupEnv("PORT")), parsePort)
//	fmt.Println(port.GetOrElse(8080))
package option

import (
	"fmt"

	"github.com/charmingruby/arrows/either"
	"github.com/charmingruby/arrows/pair"
)

// Option holds a T or nothing. The zero Option is None. Some(nil) is present.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None returns the absent Option of T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk adapts the comma-ok idiom.
//
// Example:
//
//	user := option.FromOk(sessions.Load(id))
func FromOk[T any](value T, ok bool) Option[T] {
	if ok {
		return Some(value)
	}
	return None[T]()
}

// FromPtr dereferences ptr, mapping nil to None.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// FromEither keeps the Right value and drops a Left.
func FromEither[L any, T any](e either.Either[L, T]) Option[T] {
	return FromOk(e.GetRight())
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// UnsafeGet returns the value and panics on None.
func (o Option[T]) UnsafeGet() T {
	if !o.ok {
		panic("option: UnsafeGet on None")
	}
	return o.value
}

// GetOrElse returns the value, or fallback on None.
func (o Option[T]) GetOrElse(fallback T) T {
	if !o.ok {
		return fallback
	}
	return o.value
}

// OrElse returns o when present and other otherwise.
func (o Option[T]) OrElse(other Option[T]) Option[T] {
	if !o.ok {
		return other
	}
	return o
}

// ToPtr returns a pointer to a copy of the value, or nil on None.
func (o Option[T]) ToPtr() *T {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}

// Filter turns a present value that fails predicate into None.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if !o.ok || !predicate(o.value) {
		return None[T]()
	}
	return o
}

// String implements fmt.Stringer for debugging.
func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Fold eliminates the Option.
func Fold[T any, U any](o Option[T], onNone func() U, onSome func(T) U) U {
	if !o.ok {
		return onNone()
	}
	return onSome(o.value)
}

// Map applies fn to a present value.
func Map[T any, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(fn(o.value))
}

// FlatMap binds o to fn. fn is not called on None.
func FlatMap[T any, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return fn(o.value)
}

// Zip pairs two present values. Either side being None yields None.
func Zip[A any, B any](a Option[A], b Option[B]) Option[pair.Pair[A, B]] {
	if !a.ok || !b.ok {
		return None[pair.Pair[A, B]]()
	}
	return Some(pair.Of(a.value, b.value))
}

// Sequence collects the values of items, or returns None if any is absent.
func Sequence[T any](items []Option[T]) Option[[]T] {
	return Traverse(items, func(o Option[T]) Option[T] { return o })
}

// Traverse applies fn to each item and collects the results. It stops at the
// first None.
//
// Example:
//
//	ports := option.Traverse(names, lookupPort)
func Traverse[A any, B any](items []A, fn func(A) Option[B]) Option[[]B] {
	out := make([]B, 0, len(items))
	for _, item := range items {
		next := fn(item)
		if !next.ok {
			return None[[]B]()
		}
		out = append(out, next.value)
	}
	return Some(out)
}

// Tap calls fn with a present value and returns o unchanged.
func Tap[T any](o Option[T], fn func(T)) Option[T] {
	if o.ok {
		fn(o.value)
	}
	return o
}

// ToEither maps Some to Right and None to Left(onNone()).
//
// Example:
//
//	user := option.ToEither(find(id), func() error { return ErrNotFound })
func ToEither[L any, T any](o Option[T], onNone func() L) either.Either[L, T] {
	if !o.ok {
		return either.Left[L, T](onNone())
	}
	return either.Right[L](o.value)
}
