package optionarrow_test

import (
	"errors"
	"testing"

	"github.com/charmingruby/arrows/either"
	"github.com/charmingruby/arrows/option"
	"github.com/charmingruby/arrows/optionarrow"
	"github.com/charmingruby/arrows/pair"
	"github.com/charmingruby/arrows/validate"
)

var (
	inc = optionarrow.Lift(func(x int) int { return x + 1 })
	// doubles non-negative inputs, absent otherwise
	dbl = optionarrow.Arrow[int, int](func(x int) option.Option[int] {
		if x < 0 {
			return option.None[int]()
		}
		return option.Some(x * 2)
	})
)

func TestComposeScenarios(t *testing.T) {
	if got := optionarrow.Postcompose(inc, dbl).Run(5); !equalOption(got, option.Some(12)) {
		t.Fatalf("expected Some(12), got %v", got)
	}
	if got := optionarrow.Postcompose(dbl, inc).Run(-3); got.IsSome() {
		t.Fatalf("expected None, got %v", got)
	}
	if got := optionarrow.Precompose(dbl, inc).Run(5); !equalOption(got, option.Some(12)) {
		t.Fatalf("precompose should run upstream first, got %v", got)
	}
}

func TestFuncComposition(t *testing.T) {
	render := optionarrow.PostcomposeFunc(dbl, func(n int) string { return string(rune('a' + n)) })
	if got := render.Run(1); !equalOption(got, option.Some("c")) {
		t.Fatalf("unexpected postcompose func %v", got)
	}
	length := optionarrow.PrecomposeFunc(dbl, func(s string) int { return len(s) - 2 })
	if got := length.Run("x"); got.IsSome() {
		t.Fatalf("expected None for negative length, got %v", got)
	}
}

func TestShortCircuitSkipsDownstream(t *testing.T) {
	calls := 0
	spy := optionarrow.Arrow[int, int](func(x int) option.Option[int] {
		calls++
		return option.Some(x)
	})
	if got := optionarrow.Postcompose(dbl, spy).Run(-1); got.IsSome() {
		t.Fatalf("expected None, got %v", got)
	}
	if calls != 0 {
		t.Fatalf("downstream arrow ran %d times", calls)
	}
}

func TestFanOutFanIn(t *testing.T) {
	if got := optionarrow.FanOut(inc, inc).Run(10); !equalOption(got, option.Some(pair.Of(11, 11))) {
		t.Fatalf("expected Some((11, 11)), got %v", got)
	}
	if got := optionarrow.FanOut(inc, dbl).Run(-5); got.IsSome() {
		t.Fatalf("fan out should be None when one side is None, got %v", got)
	}
	merge := optionarrow.FanIn(inc, optionarrow.Lift(func(s string) int { return len(s) }))
	if got := merge.Run(either.Left[int, string](1)); !equalOption(got, option.Some(2)) {
		t.Fatalf("unexpected left fan in %v", got)
	}
	if got := merge.Run(either.Right[int]("abc")); !equalOption(got, option.Some(3)) {
		t.Fatalf("unexpected right fan in %v", got)
	}
}

func TestChoice(t *testing.T) {
	left := optionarrow.Left[string](dbl)
	if got := left.Run(either.Left[int, string](4)); !equalOption(got, option.Some(either.Left[int, string](8))) {
		t.Fatalf("unexpected left case %v", got)
	}
	if got := left.Run(either.Right[int]("keep")); !equalOption(got, option.Some(either.Right[int]("keep"))) {
		t.Fatalf("right case should pass through, got %v", got)
	}
	if got := left.Run(either.Left[int, string](-4)); got.IsSome() {
		t.Fatalf("absent left result should propagate, got %v", got)
	}
	right := optionarrow.Right[string](dbl)
	if got := right.Run(either.Right[string](3)); !equalOption(got, option.Some(either.Right[string](6))) {
		t.Fatalf("unexpected right case %v", got)
	}
	sum := optionarrow.Sum(dbl, optionarrow.Lift(func(s string) bool { return s != "" }))
	if got := sum.Run(either.Right[int]("x")); !equalOption(got, option.Some(either.Right[int](true))) {
		t.Fatalf("unexpected sum %v", got)
	}
}

func TestStrength(t *testing.T) {
	first := optionarrow.First[string](dbl)
	if got := first.Run(pair.Of(2, "c")); !equalOption(got, option.Some(pair.Of(4, "c"))) {
		t.Fatalf("unexpected first %v", got)
	}
	second := optionarrow.Second[string](dbl)
	if got := second.Run(pair.Of("c", -2)); got.IsSome() {
		t.Fatalf("expected None, got %v", got)
	}
	product := optionarrow.Product(inc, dbl)
	if got := product.Run(pair.Of(1, 2)); !equalOption(got, option.Some(pair.Of(2, 4))) {
		t.Fatalf("unexpected product %v", got)
	}
}

func TestApply(t *testing.T) {
	eval := optionarrow.Apply[int, int]()
	if got := eval.Run(pair.Of(inc, 5)); !equalOption(got, option.Some(6)) {
		t.Fatalf("expected Some(6), got %v", got)
	}
	if !errors.Is(capturePanic(func() { eval.Run(pair.Of[optionarrow.Arrow[int, int]](nil, 1)) }), validate.ErrNilArgument) {
		t.Fatalf("apply should reject a nil paired arrow")
	}
}

func TestNilArgumentsPanic(t *testing.T) {
	var nilArrow optionarrow.Arrow[int, int]
	var nilFn func(int) int
	cases := map[string]func(){
		"Lift":            func() { optionarrow.Lift(nilFn) },
		"Postcompose":     func() { optionarrow.Postcompose(inc, nilArrow) },
		"PostcomposeRecv": func() { optionarrow.Postcompose(nilArrow, inc) },
		"PostcomposeFunc": func() { optionarrow.PostcomposeFunc(inc, nilFn) },
		"Precompose":      func() { optionarrow.Precompose(inc, nilArrow) },
		"PrecomposeFunc":  func() { optionarrow.PrecomposeFunc(inc, nilFn) },
		"First":           func() { optionarrow.First[int](nilArrow) },
		"Second":          func() { optionarrow.Second[int](nilArrow) },
		"Left":            func() { optionarrow.Left[int](nilArrow) },
		"Right":           func() { optionarrow.Right[int](nilArrow) },
		"Product":         func() { optionarrow.Product(inc, nilArrow) },
		"Sum":             func() { optionarrow.Sum(inc, nilArrow) },
		"FanIn":           func() { optionarrow.FanIn(inc, nilArrow) },
		"FanOut":          func() { optionarrow.FanOut(inc, nilArrow) },
	}
	for name, build := range cases {
		if err := capturePanic(build); !errors.Is(err, validate.ErrNilArgument) {
			t.Fatalf("%s: expected ErrNilArgument, got %v", name, err)
		}
	}
}

func equalOption[T comparable](a, b option.Option[T]) bool {
	av, aok := a.Get()
	bv, bok := b.Get()
	if aok != bok {
		return false
	}
	return !aok || av == bv
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
