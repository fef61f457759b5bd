package option_test

import (
	"testing"
	"testing/quick"

	"github.com/charmingruby/arrows/option"
)

func build(v int, present bool) option.Option[int] {
	return option.FromOk(v, present)
}

func TestOptionFunctorLaws(t *testing.T) {
	inc := func(x int) int { return x + 1 }
	dbl := func(x int) int { return x * 2 }
	check := func(v int, present bool) bool {
		o := build(v, present)
		identity := option.Map(o, func(x int) int { return x }) == o
		composed := option.Map(option.Map(o, inc), dbl) == option.Map(o, func(x int) int { return dbl(inc(x)) })
		return identity && composed
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("functor laws failed: %v", err)
	}
}

func TestOptionMonadLaws(t *testing.T) {
	half := func(x int) option.Option[int] {
		return option.FromOk(x/2, x%2 == 0)
	}
	plus := func(x int) option.Option[int] { return option.Some(x + 3) }
	check := func(v int, present bool) bool {
		o := build(v, present)
		left := option.FlatMap(option.Some(v), half) == half(v)
		right := option.FlatMap(o, option.Some[int]) == o
		assoc := option.FlatMap(option.FlatMap(o, half), plus) ==
			option.FlatMap(o, func(x int) option.Option[int] { return option.FlatMap(half(x), plus) })
		return left && right && assoc
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("monad laws failed: %v", err)
	}
}
