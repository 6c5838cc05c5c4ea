// SPDX-License-Identifier: MIT
// Package matrix - Transpose: AT := Aᵗ over the overlap region.

package matrix

// Transpose copies cell (row, col) of A to cell (col, row) of AT for every
// index inside the overlap box, then classifies the declared shapes.
// Descriptor: d = [A.rows, A.cols, AT.rows, AT.cols].
//
// Overlap: rows = min(A.r, AT.c), cols = min(A.c, AT.r).
//
// Classification:
//   - AT.r == A.c && AT.c == A.r → StatusExact         (1)
//   - A.r < AT.c && A.c < AT.r   → StatusOutputLarger  (2)
//   - anything else              → StatusOutputSmaller (-1)
//
// The last branch covers both "AT too small" and mixed relationships (one
// axis larger, the other smaller); it is not refined further.
//
// Complexity: Time O(rows*cols), Space O(1).
func Transpose(a, at *Dense, d Dims, opts ...Option) (Status, error) {
	o := gatherOptions(opts...)
	if err := validateOperands(OpTranspose, d, o, a, at); err != nil {
		return StatusUnknown, matrixErrorf(opTranspose, err)
	}

	rowA, colA := d.pair(0)
	rowAT, colAT := d.pair(1)

	rows, cols := min(rowA, colAT), min(colA, rowAT)

	var row, col int
	var src []int32
	for row = 0; row < rows; row++ {
		src = a.data[row]
		for col = 0; col < cols; col++ {
			at.data[col][row] = src[col]
		}
	}

	switch {
	case rowA == colAT && colA == rowAT:
		return StatusExact, nil
	case rowA < colAT && colA < rowAT:
		return StatusOutputLarger, nil
	default:
		return StatusOutputSmaller, nil
	}
}
