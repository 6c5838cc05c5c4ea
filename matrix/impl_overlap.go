// SPDX-License-Identifier: MIT
// Package matrix - overlap policy shared by the routines.
//
// Purpose:
//   - Each routine writes only the overlap region: the sub-box of indices valid
//     for every operand as DECLARED by the descriptor.
//   - The classification that follows is computed from the descriptor alone,
//     independently of (but consistent with) the written region.
//
// Notes:
//   - The helpers here are tiny on purpose; each routine still spells out its
//     own overlap formula so the policy can be read off the routine.

package matrix

import "fmt"

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// min3 returns the smallest of three ints.
func min3(a, b, c int) int {
	return min(a, min(b, c))
}

// sparseBound is the SparseMatrix capacity heuristic max(rows, cols+1).
// It is derived from the descriptor only, never from the sparse buffer.
func sparseBound(rows, cols int) int {
	return max(rows, cols+1)
}
