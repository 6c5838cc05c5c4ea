// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (jagged row-major) & safe accessors.
//
// Purpose:
//   - Provide the caller-owned 2-level buffer the routines read and write.
//   - Each row is its own allocation; nothing assumes one flat block.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//
// AI-Hints:
//   - Build fixtures with Allocate(rows, cols, flat) (row-major initializer).
//   - Routines index rows directly; keep the descriptor within the real shape
//     or enable WithBoundsCheck.
//
// Complexity quicksheet:
//   - NewDense/Allocate: O(r*c); At/Set/Row: O(1); Clone/Equal: O(r*c).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxRow      = "Row"      // method tag used in error wrappers
	ctxAllocate = "Allocate" // ctor tag
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a caller-owned rows×cols buffer of int32 cells.
//   - r,c hold the real dimensions (what the buffer can hold).
//   - data holds r independently allocated rows of length c.
//
// The routines never consult r and c except under WithBoundsCheck; they trust
// the Dims descriptor passed alongside.
type Dense struct {
	r, c int       // real row and column counts (>= 0)
	data [][]int32 // one slice per row, len(data[i]) == c
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with shape validation; every row is a separate slice.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate the row table, then each row.
//
// Behavior highlights:
//   - Zero-sized shapes are legal (0×k, k×0): the routines accept empty
//     overlap regions, so their buffers must be constructible.
//
// Errors:
//   - ErrInvalidDimensions on negative inputs.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	data := make([][]int32, rows)
	for i := range data {
		data[i] = make([]int32, cols) // separate allocation per row
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// Allocate builds a rows×cols matrix populated from a flat row-major
// initializer: cell (i,j) = values[i*cols+j].
// MAIN DESCRIPTION:
//   - Caller-side allocation helper for the routines' operands.
//
// Implementation:
//   - Stage 1: validate shape (ErrInvalidDimensions) and len(values)==rows*cols (ErrBadShape).
//   - Stage 2: allocate via NewDense and copy each row slice.
//
// Inputs:
//   - rows, cols: non-negative dimensions.
//   - values: exactly rows*cols cells; nil is accepted only for empty shapes.
//
// Returns:
//   - *Dense owning copies of the values (the initializer is not retained).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Allocate(rows, cols int, values []int32) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxAllocate, rows, cols, ErrInvalidDimensions)
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("%s(%d,%d): %d values: %w", ctxAllocate, rows, cols, len(values), ErrBadShape)
	}
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		copy(m.data[i], values[i*cols:(i+1)*cols])
	}

	return m, nil
}

// Release frees every row and then the row table of m. rows is the row count
// the caller allocated m with; rows beyond the real table are ignored.
// The handle must not be used afterwards (its shape becomes 0×0).
// A nil m is a no-op.
func Release(rows int, m *Dense) {
	if m == nil {
		return
	}
	if rows > len(m.data) {
		rows = len(m.data)
	}
	for i := 0; i < rows; i++ {
		m.data[i] = nil // drop the row allocation
	}
	m.data = nil
	m.r, m.c = 0, 0
}

// Release frees all rows of m. Equivalent to Release(m.Rows(), m).
func (m *Dense) Release() { Release(m.r, m) }

// Rows returns the real row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the real column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// inBounds reports whether (row, col) addresses a real cell.
func (m *Dense) inBounds(row, col int) bool {
	return row >= 0 && row < m.r && col >= 0 && col < m.c
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on bad indices.
func (m *Dense) At(row, col int) (int32, error) {
	if !m.inBounds(row, col) {
		return 0, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[row][col], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (m *Dense) Set(row, col int, v int32) error {
	if !m.inBounds(row, col) {
		return denseErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	m.data[row][col] = v

	return nil
}

// Row returns the backing slice of row i (writes go through to m).
func (m *Dense) Row(i int) ([]int32, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return m.data[i], nil
}

// Clone returns a deep copy with fresh row allocations.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([][]int32, m.r)
	for i := range cp {
		cp[i] = append([]int32(nil), m.data[i]...)
	}

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports whether m and o have the same shape and cells.
// Two nil matrices are equal.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if m.data[i][j] != o.data[i][j] {
				return false
			}
		}
	}

	return true
}

// Flat returns the cells in row-major order (the Allocate initializer form).
func (m *Dense) Flat() []int32 {
	out := make([]int32, 0, m.r*m.c)
	for i := 0; i < m.r; i++ {
		out = append(out, m.data[i]...)
	}

	return out
}

// Data returns a deep copy of the cells as [][]int32 (for reports and tests).
func (m *Dense) Data() [][]int32 {
	return m.Clone().data
}

// String renders rows as lines with comma-separated values, e.g.
// "[1, 2]\n[3, 4]\n". Intended for diagnostics.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			b.WriteString(strconv.FormatInt(int64(m.data[i][j]), 10))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
