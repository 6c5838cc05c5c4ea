// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for the routines' guards.
//  - Return plain sentinel errors wrapped with a validator tag so call sites
//    can add the operation tag uniformly.
//
// Determinism & Performance:
//  - All checks are pure, O(1) or O(operands), and allocate nothing on success.
//
// Note:
//  - None of these checks reconciles a descriptor with the buffers unless the
//    caller asked for it (ValidateCovers is only used under WithBoundsCheck).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures every operand reference is non-nil.
// Returns ErrNilMatrix naming the first nil position (0-based).
func ValidateNotNil(operands ...*Dense) error {
	for k, m := range operands {
		if m == nil {
			return validatorErrorf(fmt.Sprintf("ValidateNotNil: operand %d", k), ErrNilMatrix)
		}
	}

	return nil
}

// ValidateDescriptor checks that d has exactly op.DescriptorLen() fields and
// that none is negative.
//
// Errors: ErrUnknownOp, ErrDescriptorLength, ErrNegativeDimension.
func ValidateDescriptor(op Op, d Dims) error {
	want := op.DescriptorLen()
	if want == 0 {
		return validatorErrorf("ValidateDescriptor", ErrUnknownOp)
	}
	if len(d) != want {
		return validatorErrorf(fmt.Sprintf("ValidateDescriptor: %s wants %d fields, got %d", op, want, len(d)), ErrDescriptorLength)
	}
	for k, v := range d {
		if v < 0 {
			return validatorErrorf(fmt.Sprintf("ValidateDescriptor: field %d = %d", k, v), ErrNegativeDimension)
		}
	}

	return nil
}

// ValidateCovers ensures m really holds at least rows×cols cells.
// Assumes m is non-nil.
func ValidateCovers(m *Dense, rows, cols int) error {
	if rows > m.r || cols > m.c {
		return validatorErrorf(fmt.Sprintf("ValidateCovers: declared %dx%d, buffer %dx%d", rows, cols, m.r, m.c), ErrDescriptorOverstates)
	}

	return nil
}

// ValidateSparseBuffer ensures s has (at least) the three coordinate rows.
// Its column capacity is not checked here. Assumes s is non-nil.
func ValidateSparseBuffer(s *Dense) error {
	if s.r < 3 {
		return validatorErrorf("ValidateSparseBuffer", ErrSparseBuffer)
	}

	return nil
}

// validateOperands is the composite guard every routine runs first:
// NotNil → Descriptor → (optional) Covers for each operand/pair.
// operands[k] is checked against the k-th descriptor pair.
func validateOperands(op Op, d Dims, o Options, operands ...*Dense) error {
	if err := ValidateNotNil(operands...); err != nil {
		return err
	}
	if err := ValidateDescriptor(op, d); err != nil {
		return err
	}
	if !o.boundsCheck {
		return nil
	}
	for k, m := range operands {
		rows, cols := d.pair(k)
		if err := ValidateCovers(m, rows, cols); err != nil {
			return validatorErrorf(fmt.Sprintf("operand %d", k), err)
		}
	}

	return nil
}
