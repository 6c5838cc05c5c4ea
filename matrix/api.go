// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide allocate-and-call entry points for callers that do not manage
//     output buffers themselves.
//   - Avoid any logic duplication: each facade derives a descriptor from the
//     real operand shapes and delegates to the canonical routine.
//
// Determinism & Policy:
//   - Facades never change loop orders or the classification of the routines.
//   - Because the descriptor is derived from real shapes, facades can never
//     overstate a buffer.

package matrix

import "fmt"

// Operation tags for facade error wrapping.
const (
	opToSparse     = "ToSparse"
	opSum          = "Sum"
	opProduct      = "Product"
	opT            = "T"
	opTriplets     = "Triplets"
	opFromTriplets = "FromTriplets"
)

// ToSparse converts m into a freshly allocated 3×max(rows, cols+1) sparse
// buffer and returns it with the number of triples written.
// On ErrSparseCapacity the buffer is nil and the count is SparseErrorCode.
func ToSparse(m *Dense) (*Dense, int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, 0, matrixErrorf(opToSparse, err)
	}
	s, err := NewDense(3, sparseBound(m.r, m.c))
	if err != nil {
		return nil, 0, matrixErrorf(opToSparse, err)
	}
	count, err := SparseMatrix(m, s, SparseDims(m.r, m.c))
	if err != nil {
		return nil, count, matrixErrorf(opToSparse, err)
	}

	return s, count, nil
}

// Sum allocates A with the smallest envelope of M and N and runs Addition
// with the real shapes. Equal shapes yield StatusExact; differing shapes
// yield StatusIncompatibleFits with only the common box summed.
func Sum(m, n *Dense) (*Dense, Status, error) {
	if err := ValidateNotNil(m, n); err != nil {
		return nil, StatusUnknown, matrixErrorf(opSum, err)
	}
	a, err := NewDense(min(m.r, n.r), min(m.c, n.c))
	if err != nil {
		return nil, StatusUnknown, matrixErrorf(opSum, err)
	}
	st, err := Addition(m, n, a, ShapeDims(m, n, a))
	if err != nil {
		return nil, StatusUnknown, matrixErrorf(opSum, err)
	}

	return a, st, nil
}

// Product allocates A as M.rows×N.cols and runs Multiplication with the real
// shapes. When M.cols != N.rows the product is truncated to the shorter inner
// length and the status is StatusIncompatibleFits.
func Product(m, n *Dense) (*Dense, Status, error) {
	if err := ValidateNotNil(m, n); err != nil {
		return nil, StatusUnknown, matrixErrorf(opProduct, err)
	}
	a, err := NewDense(m.r, n.c)
	if err != nil {
		return nil, StatusUnknown, matrixErrorf(opProduct, err)
	}
	st, err := Multiplication(m, n, a, ShapeDims(m, n, a))
	if err != nil {
		return nil, StatusUnknown, matrixErrorf(opProduct, err)
	}

	return a, st, nil
}

// T allocates Aᵗ and runs Transpose; the status is always StatusExact.
func T(a *Dense) (*Dense, Status, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, StatusUnknown, matrixErrorf(opT, err)
	}
	at, err := NewDense(a.c, a.r)
	if err != nil {
		return nil, StatusUnknown, matrixErrorf(opT, err)
	}
	st, err := Transpose(a, at, ShapeDims(a, at))
	if err != nil {
		return nil, StatusUnknown, matrixErrorf(opT, err)
	}

	return at, st, nil
}

// Triplets replays the first count columns of a sparse buffer written by
// SparseMatrix, in the order they were written.
//
// Errors: ErrNilMatrix, ErrSparseBuffer, ErrOutOfRange (count < 0 or beyond
// the buffer's columns).
func Triplets(s *Dense, count int) ([]Triplet, error) {
	if err := ValidateNotNil(s); err != nil {
		return nil, matrixErrorf(opTriplets, err)
	}
	if err := ValidateSparseBuffer(s); err != nil {
		return nil, matrixErrorf(opTriplets, err)
	}
	if count < 0 || count > s.c {
		return nil, matrixErrorf(opTriplets, fmt.Errorf("count %d of %d: %w", count, s.c, ErrOutOfRange))
	}
	out := make([]Triplet, count)
	for k := 0; k < count; k++ {
		out[k] = Triplet{
			Row:   int(s.data[SparseRowIndex][k]),
			Col:   int(s.data[SparseColIndex][k]),
			Value: s.data[SparseValue][k],
		}
	}

	return out, nil
}

// FromTriplets builds a rows×cols matrix with zeros everywhere except the
// given triples. Later triples overwrite earlier ones at the same cell.
func FromTriplets(rows, cols int, ts []Triplet) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opFromTriplets, err)
	}
	for _, t := range ts {
		if err = m.Set(t.Row, t.Col, t.Value); err != nil {
			return nil, matrixErrorf(opFromTriplets, err)
		}
	}

	return m, nil
}
