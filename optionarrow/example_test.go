package optionarrow_test

import (
	"fmt"
	"strconv"

	"github.com/charmingruby/arrows/option"
	"github.com/charmingruby/arrows/optionarrow"
	"github.com/charmingruby/arrows/pair"
)

func ExampleFanOut() {
	parse := optionarrow.Arrow[string, int](func(s string) option.Option[int] {
		n, err := strconv.Atoi(s)
		return option.FromOk(n, err == nil)
	})
	square := optionarrow.PostcomposeFunc(parse, func(n int) int { return n * n })
	both := optionarrow.FanOut(parse, square)
	fmt.Println(both.Run("12"))
	fmt.Println(both.Run("twelve"))
	// Output:
	// Some((12, 144))
	// None
}

func ExampleApply() {
	inc := optionarrow.Lift(func(x int) int { return x + 1 })
	fmt.Println(optionarrow.Apply[int, int]().Run(pair.Of(inc, 5)))
	// Output:
	// Some(6)
}
