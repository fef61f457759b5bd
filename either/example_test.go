package either_test

import (
	"errors"
	"fmt"

	"github.com/charmingruby/arrows/either"
)

func ExampleTraverse() {
	ids := []int{1, 2, 3}
	op := either.Traverse(ids, func(id int) either.Either[error, string] {
		if id == 2 {
			return either.Left[error, string](errors.New("downstream unavailable"))
		}
		return either.Right[error](fmt.Sprintf("user-%d", id))
	})
	fmt.Println(either.Fold(op,
		func(err error) string { return err.Error() },
		func(users []string) string { return fmt.Sprint(users) },
	))
	// Output:
	// downstream unavailable
}
