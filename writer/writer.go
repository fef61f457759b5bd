// Package writer defines computations that accumulate a log alongside their
// result. Logs are combined with a Monoid, in evaluation order.
//
// Example:
//
//	step := writer.New(42, writer.Log[string]{"loaded"})
//	next := writer.FlatMap(step, func(n int) writer.Writer[writer.Log[string], int] {
//		return writer.New(n+1, writer.Log[string]{"incremented"})
//	})
//	value, log := next.Run() // 43, [loaded incremented]
package writer

import (
	"fmt"

	"code.hybscloud.com/kont"

	"github.com/charmingruby/arrows/pair"
)

// Monoid is the F-bounded constraint for log types. Empty must be callable on
// the zero value and Combine must be associative with Empty as its identity.
type Monoid[W any] interface {
	Empty() W
	Combine(other W) W
}

// Writer pairs a result with the log produced while computing it.
type Writer[W Monoid[W], A any] struct {
	value A
	log   W
}

// New constructs a Writer from a result and its log.
func New[W Monoid[W], A any](value A, log W) Writer[W, A] {
	return Writer[W, A]{value: value, log: log}
}

// Pure wraps value with an empty log.
func Pure[W Monoid[W], A any](value A) Writer[W, A] {
	return Writer[W, A]{value: value, log: empty[W]()}
}

// Tell records entry without producing a meaningful result.
//
// Example:
//
//	audit := writer.Tell(writer.Log[string]{"user.created"})
func Tell[W Monoid[W]](entry W) Writer[W, struct{}] {
	return Writer[W, struct{}]{log: entry}
}

// Run returns the result and the accumulated log.
func (w Writer[W, A]) Run() (A, W) {
	return w.value, w.log
}

// Value returns the result, discarding the log.
func (w Writer[W, A]) Value() A {
	return w.value
}

// Output returns the accumulated log.
func (w Writer[W, A]) Output() W {
	return w.log
}

// String implements fmt.Stringer for debugging.
func (w Writer[W, A]) String() string {
	return fmt.Sprintf("Writer(%v, %v)", w.value, w.log)
}

// Map transforms the result and keeps the log.
func Map[W Monoid[W], A any, B any](w Writer[W, A], fn func(A) B) Writer[W, B] {
	return Writer[W, B]{value: fn(w.value), log: w.log}
}

// FlatMap chains two writers, appending the second log after the first.
func FlatMap[W Monoid[W], A any, B any](w Writer[W, A], fn func(A) Writer[W, B]) Writer[W, B] {
	next := fn(w.value)
	return Writer[W, B]{value: next.value, log: w.log.Combine(next.log)}
}

// Zip pairs two results and combines their logs left to right.
func Zip[W Monoid[W], A any, B any](wa Writer[W, A], wb Writer[W, B]) Writer[W, pair.Pair[A, B]] {
	return Writer[W, pair.Pair[A, B]]{value: pair.Of(wa.value, wb.value), log: wa.log.Combine(wb.log)}
}

// Listen exposes the log as part of the result.
func Listen[W Monoid[W], A any](w Writer[W, A]) Writer[W, pair.Pair[A, W]] {
	return Writer[W, pair.Pair[A, W]]{value: pair.Of(w.value, w.log), log: w.log}
}

// Censor rewrites the log with fn.
func Censor[W Monoid[W], A any](w Writer[W, A], fn func(W) W) Writer[W, A] {
	return Writer[W, A]{value: w.value, log: fn(w.log)}
}

// FromCont runs a kont computation performing kont.Tell[T] effects and
// collects its output as a Log.
//
// Example:
//
//	traced := writer.FromCont[string](kont.TellWriter("start", kont.Pure(1)))
//	n, log := traced.Run() // 1, [start]
func FromCont[T any, A any](m kont.Eff[A]) Writer[Log[T], A] {
	value, output := kont.RunWriter[T, A](m)
	return Writer[Log[T], A]{value: value, log: Log[T](output)}
}

func empty[W Monoid[W]]() W {
	var zero W
	return zero.Empty()
}
