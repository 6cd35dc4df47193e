// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row/Column return errors instead of panicking.
//   - Row and Column always return owned copies, so results may cross goroutines freely.
//   - RowView is the single mutable window into the backing slice.
//
// Complexity quicksheet:
//   - New: O(r*c) copy; Zeros: O(r*c) zero-init; At/Set: O(1);
//     Row: O(c); Column: O(r) strided read; Clone/Data: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxFlat     = "SetFlat"  // method tag used in error wrappers
	ctxRow      = "Row"      // method tag used in error wrappers
	ctxColumn   = "Column"   // method tag used in error wrappers
	ctxNew      = "New"      // ctor tag
	ctxZeros    = "Zeros"    // ctor tag
	ctxFromRows = "FromRows" // ctor tag
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "| "
	_fmtRowClose = "|\n"
	_fmtSep      = " "
)

// Matrix is a concrete row-major matrix of T.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Matrix[T Number] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[int])(nil)

// New wraps a copy of data as a rows×cols matrix.
// MAIN DESCRIPTION:
//   - Public constructor from an existing flat row-major sequence.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 and rows*cols fits in int; else ErrInvalidDimensions.
//   - Stage 2: validate len(data) == rows*cols; else ErrBadShape.
//   - Stage 3: copy data into a fresh buffer (caller keeps ownership of its slice).
//
// Errors:
//   - ErrInvalidDimensions, ErrBadShape (both wrapped with "New").
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Number](data []T, rows, cols int) (*Matrix[T], error) {
	if err := validDims(rows, cols); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s: len(data)=%d, want %d×%d: %w", ctxNew, len(data), rows, cols, ErrBadShape)
	}
	buf := make([]T, len(data))
	copy(buf, data)

	return &Matrix[T]{r: rows, c: cols, data: buf}, nil
}

// validDims rejects non-positive shapes and shapes whose element count
// does not fit in int.
func validDims(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrInvalidDimensions
	}
	if rows > math.MaxInt/cols {
		return fmt.Errorf("%d×%d overflows int: %w", rows, cols, ErrInvalidDimensions)
	}

	return nil
}

// Zeros creates a rows×cols matrix filled with the zero value of T.
// Errors: ErrInvalidDimensions when rows<=0, cols<=0 or rows*cols overflows int.
// Complexity: O(r*c) zero-init by the runtime.
func Zeros[T Number](rows, cols int) (*Matrix[T], error) {
	if err := validDims(rows, cols); err != nil {
		return nil, matrixErrorf(ctxZeros, err)
	}

	return &Matrix[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// FromRows builds a matrix from a rectangular slice of rows (copied).
// Errors: ErrInvalidDimensions for an empty input, ErrBadShape for ragged rows.
func FromRows[T Number](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(ctxFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	buf := make([]T, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxFromRows, i, len(row), c, ErrBadShape)
		}
		buf = append(buf, row...)
	}

	return &Matrix[T]{r: r, c: c, data: buf}, nil
}

// Rows returns the row count. No side effects.
func (m *Matrix[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Matrix[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Matrix[T]) Shape() (rows, cols int) { return m.r, m.c }

// Len returns the number of stored elements (rows*cols).
func (m *Matrix[T]) Len() int { return len(m.data) }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Matrix[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// SetFlat stores v at the flat row-major offset idx (idx = i*Cols()+j).
// Errors: ErrOutOfRange when idx ∉ [0, Len()).
func (m *Matrix[T]) SetFlat(idx int, v T) error {
	if idx < 0 || idx >= len(m.data) {
		return fmt.Errorf("Matrix.%s(%d): %w", ctxFlat, idx, ErrOutOfRange)
	}
	m.data[idx] = v

	return nil
}

// Row returns an owned copy of the i-th row (length Cols()).
// MAIN DESCRIPTION:
//   - Contiguous copy of data[i*c:(i+1)*c].
//
// Behavior highlights:
//   - The result never aliases the backing buffer; it is safe to hand to
//     another goroutine while the matrix is mutated.
//
// Errors:
//   - ErrOutOfRange when i ∉ [0, Rows()).
//
// Complexity:
//   - Time O(c), Space O(c).
func (m *Matrix[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Column returns an owned copy of the j-th column (length Rows()).
// MAIN DESCRIPTION:
//   - Strided extraction: data[j], data[j+c], data[j+2c], ...
//
// Errors:
//   - ErrOutOfRange when j ∉ [0, Cols()).
//
// Complexity:
//   - Time O(r), Space O(r).
func (m *Matrix[T]) Column(j int) ([]T, error) {
	if j < 0 || j >= m.c {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxColumn, j, ErrOutOfRange)
	}
	out := make([]T, m.r)
	var i, off int
	for i, off = 0, j; i < m.r; i, off = i+1, off+m.c { // stride = cols
		out[i] = m.data[off]
	}

	return out, nil
}

// RowView returns the i-th row as a slice sharing the backing buffer.
// Writes through the returned slice mutate the matrix.
// Out-of-range i is a programmer error and panics like slice indexing.
func (m *Matrix[T]) RowView(i int) []T {
	if i < 0 || i >= m.r {
		panic(fmt.Sprintf("matrix: RowView(%d) out of range [0,%d)", i, m.r))
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c]
}

// Data returns an owned copy of the flat row-major sequence.
func (m *Matrix[T]) Data() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy (new buffer).
// Complexity: O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Matrix[T]{r: m.r, c: m.c, data: cp}
}

// Equal reports whether m and other have the same shape and identical elements.
// Two nil matrices are equal; nil and non-nil are not.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for k := range m.data {
		if m.data[k] != other.data[k] {
			return false
		}
	}

	return true
}

// String renders one line per row as "| v1 v2 ... |\n" for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write each value with %v followed by a single space.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			b.WriteString(_fmtSep)
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
