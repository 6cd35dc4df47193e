package parallel_test

import (
	"fmt"

	"github.com/katalvlaran/concurrency/matrix"
	"github.com/katalvlaran/concurrency/parallel"
)

// ExampleMultiply multiplies on a pool of four workers.
func ExampleMultiply() {
	a, _ := matrix.New([]int{1, 2, 3, 4, 5, 6}, 2, 3)
	b, _ := matrix.New([]int{10, 11, 20, 21, 30, 31}, 3, 2)

	c, err := parallel.Multiply(a, b, parallel.WithWorkers(4))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(c)
	// Output:
	// | 140 146 |
	// | 320 335 |
}

// ExampleMultiply_mismatch shows the shape error raised before any worker starts.
func ExampleMultiply_mismatch() {
	a, _ := matrix.New([]int{1, 2, 3, 4, 5, 6}, 2, 3)
	b, _ := matrix.New([]int{1, 2, 3, 4}, 2, 2)

	_, err := parallel.Multiply(a, b)
	fmt.Println(err)
	// Output:
	// parallel.Multiply: ValidateMulCompatible: 2×3 · 2×2: matrix: dimension mismatch
}
