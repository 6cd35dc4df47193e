package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/concurrency/matrix"
)

// ExampleMultiply shows the serial reference product and the display format.
func ExampleMultiply() {
	a, _ := matrix.New([]int{1, 2, 3, 4, 5, 6}, 2, 3)
	b, _ := matrix.New([]int{10, 11, 20, 21, 30, 31}, 3, 2)

	c, err := matrix.Multiply(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(c)
	// Output:
	// | 140 146 |
	// | 320 335 |
}

// ExampleDotProduct shows the dimension check.
func ExampleDotProduct() {
	_, err := matrix.DotProduct(matrix.NewVector([]int{1, 2, 3}), matrix.NewVector([]int{4, 5}))
	fmt.Println(err)
	// Output:
	// DotProduct: ValidateSameLen: 3 != 2: matrix: dimension mismatch
}
