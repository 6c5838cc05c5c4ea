// SPDX-License-Identifier: MIT
// Package matrix - Addition: A := M + N over the overlap region.

package matrix

// Addition computes A[i][j] = M[i][j] + N[i][j] for every cell inside the
// overlap box, then classifies the declared shapes.
// Descriptor: d = [M.rows, M.cols, N.rows, N.cols, A.rows, A.cols].
//
// Implementation:
//   - Stage 1: validate operands and descriptor.
//   - Stage 2: rows = min(M.r, N.r, A.r), cols = min(M.c, N.c, A.c);
//     fixed i→j loop writes the sums. Cells of A outside the box keep their value.
//   - Stage 3: classify.
//
// Classification:
//   - M and N have identical dims:
//     A smaller than M in either axis     → StatusOutputSmaller   (-3)
//     else A larger than M in either axis → StatusOutputLarger    (2)
//     else                                → StatusExact           (1)
//   - M and N differ:
//     A.r >= min(M.r,N.r) && A.c >= min(M.c,N.c) → StatusIncompatibleFits     (-1)
//     else                                       → StatusIncompatibleTooSmall (-2)
//
// Notes:
//   - The mismatched branch only distinguishes two outcomes; geometrically
//     different situations share StatusIncompatibleTooSmall.
//   - Sums wrap on int32 overflow.
//
// Complexity:
//   - Time O(rows*cols), Space O(1).
func Addition(m, n, a *Dense, d Dims, opts ...Option) (Status, error) {
	o := gatherOptions(opts...)
	if err := validateOperands(OpAddition, d, o, m, n, a); err != nil {
		return StatusUnknown, matrixErrorf(opAddition, err)
	}

	rowM, colM := d.pair(0)
	rowN, colN := d.pair(1)
	rowA, colA := d.pair(2)

	// Smallest envelope of M and N, then of MN and A.
	rowMN, colMN := min(rowM, rowN), min(colM, colN)
	rows, cols := min3(rowM, rowN, rowA), min3(colM, colN, colA)

	var i, j int
	var mr, nr, ar []int32
	for i = 0; i < rows; i++ {
		mr, nr, ar = m.data[i], n.data[i], a.data[i]
		for j = 0; j < cols; j++ {
			ar[j] = mr[j] + nr[j]
		}
	}

	if rowM == rowN && colM == colN {
		switch {
		case colA < colM || rowA < rowM:
			return StatusOutputSmaller, nil
		case colA > colM || rowA > rowM:
			return StatusOutputLarger, nil
		default:
			return StatusExact, nil
		}
	}
	if colA >= colMN && rowA >= rowMN {
		return StatusIncompatibleFits, nil
	}

	return StatusIncompatibleTooSmall, nil
}
