// SPDX-License-Identifier: MIT
// Package matrix - serial linear algebra kernels.
//
// Purpose:
//   - Provide the reference (single goroutine) matrix product used as the
//     correctness oracle for the parallel engine.
//
// Determinism & Policy:
//   - Fixed loop orders (i→j→k); each output cell is accumulated exactly the
//     way DotProduct accumulates one row·column pair, so serial and parallel
//     products are bit-identical for every Number type.
//   - No in-place mutation of inputs.

package matrix

// Operation tags used in error wrappers.
const (
	opMul = "Multiply"
	opDot = "DotProduct"
)

// Multiply returns the matrix product a × b (shape a.Rows() × b.Cols()).
// MAIN DESCRIPTION:
//   - Standard triple-nested loop over the flat buffers.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (nil + inner dimension).
//   - Stage 2: allocate the result via Zeros.
//   - Stage 3: for every (i,j) accumulate Σ_k a[i,k]*b[k,j] left to right,
//     seeded with the zero value, then store once.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Multiply").
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Multiply[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := Zeros[T](a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k    int // loop iterators
		rowA, rowR int // row offsets in a and res
		sum        T
	)
	for i = 0; i < a.r; i++ {
		rowA = i * a.c
		rowR = i * b.c
		for j = 0; j < b.c; j++ {
			sum = 0
			for k = 0; k < a.c; k++ {
				sum += a.data[rowA+k] * b.data[k*b.c+j] // b walks column j with stride b.c
			}
			res.data[rowR+j] = sum
		}
	}

	return res, nil
}
