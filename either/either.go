// Package either provides a two-case choice type. Right carries success and
// Left carries failure, so FlatMap short-circuits on the first Left.
//
// Example:
//
//	parsed := either.FromTuple(strconv.Atoi("42"))
//	doubled := either.Map(parsed, func(n int) int { return n * 2 })
//
// Either combinators uphold Functor/Monad laws (see laws_either_test.go).
package either

import (
	"fmt"

	"code.hybscloud.com/kont"

	"github.com/charmingruby/arrows/pair"
)

// Either holds either a Left value of type L or a Right value of type R. The
// zero value is Left holding the zero L.
//
// Example:
//
//	var e either.Either[string, int] = either.Right[string](10)
//	fmt.Println(e.IsRight()) // true
type Either[L any, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left constructs the Left case.
//
// Example:
//
//	e := either.Left[string, int]("not found")
func Left[L any, R any](value L) Either[L, R] {
	return Either[L, R]{left: value}
}

// Right constructs the Right case.
//
// Example:
//
//	e := either.Right[string](200)
func Right[L any, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

// FromTuple converts a standard Go (value, error) pair to an Either.
//
// Example:
//
//	e := either.FromTuple(repo.Load())
func FromTuple[T any](value T, err error) Either[error, T] {
	if err != nil {
		return Left[error, T](err)
	}
	return Right[error](value)
}

// ToTuple converts an Either carrying errors back into Go's (value, error)
// convention.
//
// Example:
//
//	value, err := either.ToTuple(e)
//	if err != nil {
//		return err
//	}
func ToTuple[T any](e Either[error, T]) (T, error) {
	if e.isRight {
		return e.right, nil
	}
	var zero T
	return zero, e.left
}

// IsLeft reports whether the Either holds a Left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight reports whether the Either holds a Right value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// GetLeft returns the Left value and true, or the zero L and false.
func (e Either[L, R]) GetLeft() (L, bool) {
	if e.isRight {
		var zero L
		return zero, false
	}
	return e.left, true
}

// GetRight returns the Right value and true, or the zero R and false.
func (e Either[L, R]) GetRight() (R, bool) {
	if !e.isRight {
		var zero R
		return zero, false
	}
	return e.right, true
}

// UnsafeGetRight returns the Right value or panics on Left.
func (e Either[L, R]) UnsafeGetRight() R {
	if !e.isRight {
		panic(fmt.Sprintf("either: UnsafeGetRight on Left(%v)", e.left))
	}
	return e.right
}

// UnwrapOr returns the Right value, otherwise fallback.
//
// Example:
//
//	code := e.UnwrapOr(http.StatusInternalServerError)
func (e Either[L, R]) UnwrapOr(fallback R) R {
	if e.isRight {
		return e.right
	}
	return fallback
}

// Swap exchanges the cases.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R](e.left)
}

// String implements fmt.Stringer for debugging.
func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// Fold collapses the Either by branching on its case.
//
// Example:
//
//	message := either.Fold(e,
//		func(err error) string { return "failed: " + err.Error() },
//		func(v string) string { return "ok: " + v },
//	)
func Fold[L any, R any, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// Map transforms the Right value.
//
// Example:
//
//	length := either.Map(e, func(s string) int { return len(s) })
func Map[L any, R any, U any](e Either[L, R], fn func(R) U) Either[L, U] {
	if e.isRight {
		return Right[L](fn(e.right))
	}
	return Left[L, U](e.left)
}

// MapLeft transforms the Left value.
//
// Example:
//
//	wrapped := either.MapLeft(e, func(err error) error {
//		return fmt.Errorf("load: %w", err)
//	})
func MapLeft[L any, R any, M any](e Either[L, R], fn func(L) M) Either[M, R] {
	if e.isRight {
		return Right[M](e.right)
	}
	return Left[M, R](fn(e.left))
}

// FlatMap chains computations, propagating the first Left unchanged.
//
// Example:
//
//	e := either.FlatMap(loadUser(), fetchProfile)
func FlatMap[L any, R any, U any](e Either[L, R], fn func(R) Either[L, U]) Either[L, U] {
	if e.isRight {
		return fn(e.right)
	}
	return Left[L, U](e.left)
}

// Tap executes fn when the Either is Right and returns it unchanged.
func Tap[L any, R any](e Either[L, R], fn func(R)) Either[L, R] {
	if e.isRight {
		fn(e.right)
	}
	return e
}

// Zip combines two Eithers into a Pair, returning the first Left encountered.
//
// Example:
//
//	both := either.Zip(loadUser(), loadProfile())
func Zip[L any, A any, B any](ea Either[L, A], eb Either[L, B]) Either[L, pair.Pair[A, B]] {
	if !ea.isRight {
		return Left[L, pair.Pair[A, B]](ea.left)
	}
	if !eb.isRight {
		return Left[L, pair.Pair[A, B]](eb.left)
	}
	return Right[L](pair.Of(ea.right, eb.right))
}

// Sequence converts a slice of Eithers into an Either of a slice, failing
// fast on the first Left.
//
// Example:
//
//	e := either.Sequence([]either.Either[error, int]{loadA(), loadB()})
func Sequence[L any, R any](items []Either[L, R]) Either[L, []R] {
	values := make([]R, 0, len(items))
	for _, item := range items {
		if !item.isRight {
			return Left[L, []R](item.left)
		}
		values = append(values, item.right)
	}
	return Right[L](values)
}

// Traverse maps items to Eithers and sequences them.
//
// Example:
//
//	users := either.Traverse(ids, loadUser)
func Traverse[L any, A any, B any](items []A, fn func(A) Either[L, B]) Either[L, []B] {
	values := make([]B, 0, len(items))
	for _, item := range items {
		res := fn(item)
		if !res.isRight {
			return Left[L, []B](res.left)
		}
		values = append(values, res.right)
	}
	return Right[L](values)
}

// FromKont converts the result of kont.RunError into an Either.
//
// Example:
//
//	e := either.FromKont(kont.RunError[string, int](comp))
func FromKont[L any, R any](e kont.Either[L, R]) Either[L, R] {
	return kont.MatchEither(e,
		func(l L) Either[L, R] { return Left[L, R](l) },
		func(r R) Either[L, R] { return Right[L](r) },
	)
}

// ToKont converts the Either into a kont.Either.
func (e Either[L, R]) ToKont() kont.Either[L, R] {
	if e.isRight {
		return kont.Right[L](e.right)
	}
	return kont.Left[L, R](e.left)
}
