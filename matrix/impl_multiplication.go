// SPDX-License-Identifier: MIT
// Package matrix - Multiplication: A := M × N over the overlap region.

package matrix

// Multiplication computes the row·column dot products of M and N into the
// overlap box of A, then classifies the declared shapes.
// Descriptor: d = [M.rows, M.cols, N.rows, N.cols, A.rows, A.cols].
//
// Implementation:
//   - Stage 1: validate operands and descriptor.
//   - Stage 2: combo = min(M.c, N.r) is the inner length actually summed, so
//     the call proceeds even when M.c != N.r.
//   - Stage 3: rows = min(A.r, M.r), cols = min(A.c, N.c); fixed i→j→k loops,
//     one int32 accumulator per cell reset to zero.
//   - Stage 4: classify.
//
// Classification:
//   - M.c == N.r (compatible):
//     A is exactly M.r×N.c                → StatusExact         (1)
//     A.r > M.r && A.c > N.c              → StatusOutputLarger  (2)
//     otherwise                           → StatusOutputSmaller (-3)
//   - M.c != N.r:
//     A.r >= M.r && A.c >= N.c            → StatusIncompatibleFits     (-1)
//     otherwise                           → StatusIncompatibleTooSmall (-2)
//
// Notes:
//   - Products and sums wrap on int32 overflow; nothing is detected.
//   - Unlike a general-purpose Mul there is no zero-skip and no reordering.
//
// Complexity:
//   - Time O(rows*cols*combo), Space O(1).
func Multiplication(m, n, a *Dense, d Dims, opts ...Option) (Status, error) {
	o := gatherOptions(opts...)
	if err := validateOperands(OpMultiplication, d, o, m, n, a); err != nil {
		return StatusUnknown, matrixErrorf(opMultiplication, err)
	}

	rowM, colM := d.pair(0)
	rowN, colN := d.pair(1)
	rowA, colA := d.pair(2)

	combo := min(colM, rowN)
	rows, cols := min(rowA, rowM), min(colA, colN)

	var i, j, k int
	var sum int32
	var mr, ar []int32
	for i = 0; i < rows; i++ {
		mr, ar = m.data[i], a.data[i]
		for j = 0; j < cols; j++ {
			sum = 0
			for k = 0; k < combo; k++ {
				sum += mr[k] * n.data[k][j]
			}
			ar[j] = sum
		}
	}

	if colM == rowN {
		switch {
		case rowA == rowM && colA == colN:
			return StatusExact, nil
		case rowA > rowM && colA > colN:
			return StatusOutputLarger, nil
		default:
			return StatusOutputSmaller, nil
		}
	}
	if rowA >= rowM && colA >= colN {
		return StatusIncompatibleFits, nil
	}

	return StatusIncompatibleTooSmall, nil
}
