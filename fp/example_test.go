package fp_test

import (
	"fmt"
	"strings"

	"github.com/charmingruby/arrows/fp"
)

func ExampleThen() {
	length := fp.Then(strings.TrimSpace, func(s string) int { return len(s) })
	fmt.Println(length("  arrow  "))
	// Output:
	// 5
}

func ExampleFanOut() {
	stats := fp.FanOut(strings.ToUpper, func(s string) int { return strings.Count(s, "o") })
	fmt.Println(stats("kleisli or cokleisli"))
	// Output:
	// (KLEISLI OR COKLEISLI, 2)
}
