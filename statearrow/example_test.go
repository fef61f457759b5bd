package statearrow_test

import (
	"fmt"

	"github.com/charmingruby/arrows/pair"
	"github.com/charmingruby/arrows/state"
	"github.com/charmingruby/arrows/statearrow"
)

func ExampleProduct() {
	label := statearrow.Arrow[int, string, string](func(name string) state.State[int, string] {
		return func(seq int) (string, int) {
			return fmt.Sprintf("%s#%d", name, seq), seq + 1
		}
	})
	labels, next := statearrow.Product(label, label).Run(pair.Of("a", "b")).Run(1)
	fmt.Println(labels, next)
	// Output:
	// (a#1, b#2) 3
}
