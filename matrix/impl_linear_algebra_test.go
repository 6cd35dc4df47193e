// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/concurrency/matrix"
	"github.com/stretchr/testify/require"
)

// TestMultiplyScenario checks the 2×3 · 3×2 reference product.
func TestMultiplyScenario(t *testing.T) {
	a := mustNew(t, []int{1, 2, 3, 4, 5, 6}, 2, 3)
	b := mustNew(t, []int{10, 11, 20, 21, 30, 31}, 3, 2)

	got, err := matrix.Multiply(a, b)
	require.NoError(t, err)
	require.Equal(t, []int{140, 146, 320, 335}, got.Data())
	require.Equal(t, 2, got.Rows())
	require.Equal(t, 2, got.Cols())
}

// TestMultiplyAllOnes checks that 100×10 · 10×100 of ones yields 10 everywhere.
func TestMultiplyAllOnes(t *testing.T) {
	a := mustFill(t, 100, 10, func(_, _ int) int { return 1 })
	b := mustFill(t, 10, 100, func(_, _ int) int { return 1 })

	got, err := matrix.Multiply(a, b)
	require.NoError(t, err)
	for _, v := range got.Data() {
		require.Equal(t, 10, v)
	}
}

// TestMultiplyDimensionMismatch checks the inner-dimension guard and nil guard.
func TestMultiplyDimensionMismatch(t *testing.T) {
	a := mustNew(t, []int{1, 2, 3, 4, 5, 6}, 2, 3)
	b := mustNew(t, []int{1, 2, 3, 4}, 2, 2)

	_, err := matrix.Multiply(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Multiply(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMultiplyIdentity verifies A·I == A and I·A == A on float data.
func TestMultiplyIdentity(t *testing.T) {
	a := randFloat(t, 5, 7, 42)

	i7, err := matrix.Identity[float64](7)
	require.NoError(t, err)
	got, err := matrix.Product(a, i7)
	require.NoError(t, err)
	require.True(t, a.Equal(got))

	i5, err := matrix.Identity[float64](5)
	require.NoError(t, err)
	got, err = matrix.Multiply(i5, a)
	require.NoError(t, err)
	require.True(t, a.Equal(got))
}

// TestMultiplyMatchesDotProduct cross-checks each serial cell against DotProduct.
func TestMultiplyMatchesDotProduct(t *testing.T) {
	a := randFloat(t, 4, 6, 1)
	b := randFloat(t, 6, 3, 2)

	got, err := matrix.Multiply(a, b)
	require.NoError(t, err)
	for i := 0; i < a.Rows(); i++ {
		row, err := a.Row(i)
		require.NoError(t, err)
		for j := 0; j < b.Cols(); j++ {
			col, err := b.Column(j)
			require.NoError(t, err)
			want, err := matrix.DotProduct(matrix.NewVector(row), matrix.NewVector(col))
			require.NoError(t, err)
			v, _ := got.At(i, j)
			require.Equal(t, want, v) // bit-identical: same accumulation order
		}
	}
}

// TestZerosLike checks the shape-preserving facade.
func TestZerosLike(t *testing.T) {
	a := mustNew(t, []int{1, 2, 3, 4, 5, 6}, 3, 2)
	z, err := matrix.ZerosLike(a)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 0, 0, 0, 0}, z.Data())
	r, c := z.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)

	_, err = matrix.ZerosLike[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestFacades checks ZerosLike and the Product alias.
func TestFacades(t *testing.T) {
	a := mustNew(t, []int{1, 2, 3, 4, 5, 6}, 2, 3)
	z, err := matrix.ZerosLike(a)
	require.NoError(t, err)
	r, c := z.Shape()
	require.Equal(t, [2]int{2, 3}, [2]int{r, c})
	require.Equal(t, make([]int, 6), z.Data())

	_, err = matrix.ZerosLike[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	b := mustNew(t, []int{7, 8, 9, 10, 11, 12}, 3, 2)
	p, err := matrix.Product(a, b)
	require.NoError(t, err)
	want, err := matrix.Multiply(a, b)
	require.NoError(t, err)
	require.True(t, p.Equal(want))
}
