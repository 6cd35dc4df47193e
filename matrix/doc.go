// Package matrix provides a generic dense row-major Matrix, a read-only Vector,
// the DotProduct kernel and the serial reference Multiply.
//
// The matrix package provides:
//
//   - Matrix[T]: rows×cols over a flat slice; Row/Column return owned copies,
//     RowView exposes the backing row for in-place writes.
//   - Vector[T]: an owned, read-only copy of a sequence, the unit of
//     dot-product input.
//   - DotProduct and Multiply, both failing with ErrDimensionMismatch on
//     incompatible shapes.
//   - String renders a matrix as "| 1 2 3 |\n| 4 5 6 |\n".
//
// Element types are constrained by Number (integers, floats, complex).
// All errors are sentinels from errors.go; match them with errors.Is.
//
// See package parallel for the worker-pool product built on these kernels.
package matrix
