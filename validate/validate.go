// Package validate hosts the fail-fast argument guard shared by every arrow
// constructor and combinator.
//
// Example:
//
//	func Lift[A, B any](fn func(A) B) Arrow[A, B] {
//		validate.NotNil("fn", fn)
//		...
//	}
package validate

import (
	"errors"
	"reflect"
)

// ErrNilArgument is the sentinel wrapped by every ArgumentError.
var ErrNilArgument = errors.New("nil argument")

// ArgumentError describes a missing argument passed to a combinator.
type ArgumentError struct {
	Name string
}

func (e *ArgumentError) Error() string {
	return "validate: " + ErrNilArgument.Error() + " " + e.Name
}

// Unwrap exposes ErrNilArgument to errors.Is.
func (e *ArgumentError) Unwrap() error {
	return ErrNilArgument
}

// NotNil panics with an *ArgumentError when v is nil. Typed nil funcs,
// pointers, maps, slices, channels and interfaces count as nil.
//
// Example:
//
//	validate.NotNil("arrow", f)
func NotNil(name string, v any) {
	if IsNil(v) {
		panic(&ArgumentError{Name: name})
	}
}

// IsNil reports whether v is nil or a typed nil of a nilable kind.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
