package coarrow_test

import (
	"fmt"

	"github.com/charmingruby/arrows/coarrow"
	"github.com/charmingruby/arrows/value"
)

func ExamplePostcompose() {
	loads := 0
	port := value.Later(func() int {
		loads++
		return 8080
	})
	addr := coarrow.PostcomposeFunc(coarrow.ID[int](), func(p int) string { return fmt.Sprintf(":%d", p) })
	health := coarrow.PostcomposeFunc(addr, func(a string) string { return a + "/healthz" })
	first := health.Run(port)
	second := health.Run(port)
	fmt.Println(first, second, loads)
	// Output:
	// :8080/healthz :8080/healthz 1
}
