// SPDX-License-Identifier: MIT

// Package matrix: element type constraint shared by Matrix, Vector and the
// multiplication kernels.
package matrix

// Number is the set of element types a Matrix may hold.
// Every member supports multiplication, additive accumulation (+=) and has a
// well-defined zero value, which seeds every accumulation in this package.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}
