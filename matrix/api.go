// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common constructions.
//   - Avoid logic duplication; each facade delegates to the canonical implementation.

package matrix

// ZerosLike returns a new zero matrix with the same shape as m.
// Handy to preallocate output buffers.
func ZerosLike[T Number](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return Zeros[T](m.r, m.c)
}

// Identity returns the n×n identity (ones on the diagonal, zeros elsewhere).
func Identity[T Number](n int) (*Matrix[T], error) {
	I, err := Zeros[T](n, n)
	if err != nil {
		return nil, matrixErrorf("Identity", err)
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// Product is an alias for Multiply: serial matrix product a × b.
func Product[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return Multiply(a, b) }
