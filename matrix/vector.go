// SPDX-License-Identifier: MIT

// Package matrix - Vector, the read-only unit of dot-product input.

package matrix

import "fmt"

// Vector is a read-only sequence of T. It owns a private copy of its values,
// so a Vector built on one goroutine may be consumed on another without any
// aliasing with the slice it was created from.
type Vector[T Number] struct {
	data []T
}

// NewVector copies values into a new Vector.
// Complexity: O(n).
func NewVector[T Number](values []T) Vector[T] {
	buf := make([]T, len(values))
	copy(buf, values)

	return Vector[T]{data: buf}
}

// Len returns the number of elements.
func (v Vector[T]) Len() int { return len(v.data) }

// At returns the i-th element or ErrOutOfRange.
func (v Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, fmt.Errorf("Vector.At(%d): %w", i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Values returns an owned copy of the elements.
func (v Vector[T]) Values() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// DotProduct returns Σ a[i]*b[i].
// MAIN DESCRIPTION:
//   - Single left-to-right pass seeded with the zero value of T.
//
// Errors:
//   - ErrDimensionMismatch (wrapped with "DotProduct") when a.Len() != b.Len().
//
// Determinism:
//   - Fixed i order; bit-identical results for equal inputs, including floats.
//
// Complexity:
//   - Time O(n), Space O(1).
func DotProduct[T Number](a, b Vector[T]) (T, error) {
	var sum T
	if err := ValidateSameLen(a.Len(), b.Len()); err != nil {
		return sum, matrixErrorf(opDot, err)
	}
	for i := range a.data {
		sum += a.data[i] * b.data[i]
	}

	return sum, nil
}
