// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Routines return these
// sentinels (optionally wrapped with an operation tag) and tests match them
// via errors.Is.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for grep-ability. Routines wrap
// with matrixErrorf(op, ErrX) at the detection site; callers still use
// errors.Is to match.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> descriptor length -> negative dimension -> sparse buffer
// shape -> descriptor overstates (bounds-check option only) -> sparse capacity.

var (
	// ErrBadShape is returned when a flat initializer does not hold rows*cols values.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Dense was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDescriptorLength indicates a Dims value with the wrong number of fields
	// for the routine it was passed to.
	ErrDescriptorLength = errors.New("matrix: descriptor has wrong length")

	// ErrNegativeDimension indicates a negative rows/cols field in a descriptor.
	ErrNegativeDimension = errors.New("matrix: negative dimension in descriptor")

	// ErrDescriptorOverstates is reported only under WithBoundsCheck(true): a
	// descriptor declares more rows or columns than an operand actually holds.
	ErrDescriptorOverstates = errors.New("matrix: descriptor overstates operand")

	// ErrSparseCapacity is the SparseMatrix precondition rejection: the number of
	// non-zero cells exceeds max(rows, cols+1). Nothing is written.
	ErrSparseCapacity = errors.New("matrix: non-zero count exceeds sparse bound")

	// ErrSparseBuffer indicates a sparse output buffer without the three
	// coordinate rows (row indices, column indices, values).
	ErrSparseBuffer = errors.New("matrix: sparse buffer must have 3 rows")

	// ErrUnknownOp indicates an operation name that does not parse.
	ErrUnknownOp = errors.New("matrix: unknown operation")
)

// SparseErrorCode is the legacy integer SparseMatrix reported in place of a
// count when ErrSparseCapacity applies.
const SparseErrorCode = -1
