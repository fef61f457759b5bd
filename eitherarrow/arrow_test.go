package eitherarrow_test

import (
	"errors"
	"testing"
	"testing/quick"

	"github.com/charmingruby/arrows/either"
	"github.com/charmingruby/arrows/eitherarrow"
	"github.com/charmingruby/arrows/fp"
	"github.com/charmingruby/arrows/pair"
	"github.com/charmingruby/arrows/validate"
)

type arrow = eitherarrow.Arrow[string, int, int]

var (
	inc      = eitherarrow.Lift[string](func(x int) int { return x + 1 })
	evenHalf = arrow(func(x int) either.Either[string, int] {
		if x%2 != 0 {
			return either.Left[string, int]("odd")
		}
		return either.Right[string](x / 2)
	})
	nonNeg = arrow(func(x int) either.Either[string, int] {
		if x < 0 {
			return either.Left[string, int]("negative")
		}
		return either.Right[string](x)
	})
)

func TestIdentityLeftPassesThroughAsRight(t *testing.T) {
	got := eitherarrow.Left[int](eitherarrow.ID[string, int]()).Run(either.Left[int, int](7))
	want := either.Right[string](either.Left[int, int](7))
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFailurePropagatesUnchanged(t *testing.T) {
	calls := 0
	spy := arrow(func(x int) either.Either[string, int] {
		calls++
		return either.Right[string](x)
	})
	got := eitherarrow.Postcompose(eitherarrow.Postcompose(nonNeg, spy), evenHalf).Run(-4)
	if l, ok := got.GetLeft(); !ok || l != "negative" {
		t.Fatalf("expected Left(negative), got %v", got)
	}
	if calls != 0 {
		t.Fatalf("downstream arrow ran after failure")
	}
	product := eitherarrow.Product(nonNeg, evenHalf).Run(pair.Of(-1, 3))
	if l, _ := product.GetLeft(); l != "negative" {
		t.Fatalf("first failure should win, got %v", product)
	}
}

func TestCombinators(t *testing.T) {
	if got := eitherarrow.FanOut(inc, evenHalf).Run(4); got != either.Right[string](pair.Of(5, 2)) {
		t.Fatalf("unexpected fan out %v", got)
	}
	merge := eitherarrow.FanIn(inc, eitherarrow.Lift[string](func(s string) int { return len(s) }))
	if got := merge.Run(either.Right[int]("four")); got != either.Right[string](4) {
		t.Fatalf("unexpected fan in %v", got)
	}
	sum := eitherarrow.Sum(evenHalf, inc)
	if got := sum.Run(either.Right[int](1)); got != either.Right[string](either.Right[int](2)) {
		t.Fatalf("unexpected sum %v", got)
	}
	second := eitherarrow.Second[string](evenHalf)
	if got := second.Run(pair.Of("k", 8)); got != either.Right[string](pair.Of("k", 4)) {
		t.Fatalf("unexpected second %v", got)
	}
	right := eitherarrow.Right[bool](evenHalf)
	if got := right.Run(either.Left[bool, int](true)); got != either.Right[string](either.Left[bool, int](true)) {
		t.Fatalf("right should pass left case through, got %v", got)
	}
	render := eitherarrow.PostcomposeFunc(evenHalf, func(n int) bool { return n > 1 })
	if got := render.Run(4); got != either.Right[string](true) {
		t.Fatalf("unexpected postcompose func %v", got)
	}
	pre := eitherarrow.PrecomposeFunc(evenHalf, func(s string) int { return len(s) })
	if got := pre.Run("abc"); got.IsRight() {
		t.Fatalf("expected odd failure, got %v", got)
	}
}

func TestArrowLaws(t *testing.T) {
	id := eitherarrow.ID[string, int]()
	f := func(x int) int { return x * 5 }
	check := func(x int, c bool) bool {
		category := eitherarrow.Postcompose(id, evenHalf).Run(x) == evenHalf.Run(x) &&
			eitherarrow.Postcompose(evenHalf, id).Run(x) == evenHalf.Run(x) &&
			eitherarrow.Postcompose(eitherarrow.Postcompose(nonNeg, evenHalf), inc).Run(x) ==
				eitherarrow.Postcompose(nonNeg, eitherarrow.Postcompose(evenHalf, inc)).Run(x)
		lift := eitherarrow.Lift[string](fp.Identity[int]).Run(x) == id.Run(x) &&
			eitherarrow.Lift[string](fp.Then(f, f)).Run(x) ==
				eitherarrow.Postcompose(eitherarrow.Lift[string](f), eitherarrow.Lift[string](f)).Run(x)
		strength := eitherarrow.First[bool](evenHalf).Run(pair.Of(x, c)) ==
			either.Map(evenHalf.Run(x), func(b int) pair.Pair[int, bool] { return pair.Of(b, c) })
		left := eitherarrow.Left[bool](evenHalf)
		choice := left.Run(either.Left[int, bool](x)) == either.Map(evenHalf.Run(x), either.Left[int, bool]) &&
			left.Run(either.Right[int](c)) == either.Right[string](either.Right[int](c))
		fans := eitherarrow.FanOut(evenHalf, nonNeg).Run(x) == either.Zip(evenHalf.Run(x), nonNeg.Run(x)) &&
			eitherarrow.FanIn(evenHalf, nonNeg).Run(either.Left[int, int](x)) == evenHalf.Run(x) &&
			eitherarrow.FanIn(evenHalf, nonNeg).Run(either.Right[int](x)) == nonNeg.Run(x)
		apply := eitherarrow.Apply[string, int, int]().Run(pair.Of(evenHalf, x)) == evenHalf.Run(x)
		return category && lift && strength && choice && fans && apply
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("arrow laws failed: %v", err)
	}
}

func TestNilArgumentsPanic(t *testing.T) {
	var nilArrow arrow
	var nilFn func(int) int
	cases := map[string]func(){
		"Lift":            func() { eitherarrow.Lift[string](nilFn) },
		"Postcompose":     func() { eitherarrow.Postcompose(inc, nilArrow) },
		"PostcomposeFunc": func() { eitherarrow.PostcomposeFunc(inc, nilFn) },
		"Precompose":      func() { eitherarrow.Precompose(inc, nilArrow) },
		"PrecomposeFunc":  func() { eitherarrow.PrecomposeFunc(inc, nilFn) },
		"First":           func() { eitherarrow.First[int](nilArrow) },
		"Second":          func() { eitherarrow.Second[int](nilArrow) },
		"Left":            func() { eitherarrow.Left[int](nilArrow) },
		"Right":           func() { eitherarrow.Right[int](nilArrow) },
		"Product":         func() { eitherarrow.Product(nilArrow, inc) },
		"Sum":             func() { eitherarrow.Sum(inc, nilArrow) },
		"FanIn":           func() { eitherarrow.FanIn(nilArrow, inc) },
		"FanOut":          func() { eitherarrow.FanOut(inc, nilArrow) },
		"Apply": func() {
			eitherarrow.Apply[string, int, int]().Run(pair.Of(nilArrow, 1))
		},
	}
	for name, build := range cases {
		if err := capturePanic(build); !errors.Is(err, validate.ErrNilArgument) {
			t.Fatalf("%s: expected ErrNilArgument, got %v", name, err)
		}
	}
}

func capturePanic(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()
	fn()
	return nil
}
