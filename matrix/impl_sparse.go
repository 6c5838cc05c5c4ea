// SPDX-License-Identifier: MIT
// Package matrix - SparseMatrix: dense → sparse coordinate form.

package matrix

import "fmt"

// Sparse buffer row layout.
const (
	SparseRowIndex = 0 // row 0: row indices
	SparseColIndex = 1 // row 1: column indices
	SparseValue    = 2 // row 2: values
)

// SparseMatrix scans the declared rows×cols region of m in row-major order and
// appends one (row, col, value) column to s for every non-zero cell, starting
// at column 0. Descriptor: d = [rows, cols].
//
// Implementation:
//   - Stage 1: validate operands and descriptor.
//   - Stage 2: count non-zero cells; compare with the bound max(rows, cols+1).
//   - Stage 3: if within bound, write the triples in scan order.
//
// Behavior highlights:
//   - The bound is a heuristic derived from the descriptor; it is NOT the
//     capacity of s. A count under the bound that exceeds len(s row) is a
//     caller contract violation (index panic) unless WithBoundsCheck is on.
//   - Over the bound: returns (SparseErrorCode, ErrSparseCapacity) and s is
//     left exactly as it was.
//   - An all-zero region returns (0, nil) and writes nothing.
//
// Errors:
//   - ErrNilMatrix, ErrDescriptorLength, ErrNegativeDimension, ErrSparseBuffer,
//     ErrDescriptorOverstates (bounds check only), ErrSparseCapacity.
//
// Complexity:
//   - Time O(rows*cols) (two passes), Space O(1).
func SparseMatrix(m, s *Dense, d Dims, opts ...Option) (int, error) {
	o := gatherOptions(opts...)
	if err := validateOperands(OpSparse, d, o, m); err != nil {
		return 0, matrixErrorf(opSparse, err)
	}
	if err := ValidateNotNil(s); err != nil {
		return 0, matrixErrorf(opSparse, err)
	}
	if err := ValidateSparseBuffer(s); err != nil {
		return 0, matrixErrorf(opSparse, err)
	}

	rows, cols := d.pair(0)
	bound := sparseBound(rows, cols)

	var row, col int
	nonzero := 0
	for row = 0; row < rows; row++ {
		for col = 0; col < cols; col++ {
			if m.data[row][col] != 0 {
				nonzero++
			}
		}
	}
	if nonzero > bound {
		return SparseErrorCode, matrixErrorf(opSparse, fmt.Errorf("%d non-zero > bound %d: %w", nonzero, bound, ErrSparseCapacity))
	}
	if o.boundsCheck && s.c < nonzero {
		return 0, matrixErrorf(opSparse, fmt.Errorf("sparse buffer holds %d of %d triples: %w", s.c, nonzero, ErrDescriptorOverstates))
	}

	spot := 0
	ri, ci, vi := s.data[SparseRowIndex], s.data[SparseColIndex], s.data[SparseValue]
	for row = 0; row < rows; row++ {
		for col = 0; col < cols; col++ {
			v := m.data[row][col]
			if v == 0 {
				continue
			}
			ri[spot] = int32(row)
			ci[spot] = int32(col)
			vi[spot] = v
			spot++
		}
	}

	return spot, nil
}
