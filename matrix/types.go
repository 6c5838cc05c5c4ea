// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the four routines.
// This file contains ONLY domain-facing types (operation tags, the status
// enumeration, the dimension descriptor and sparse triplets). Errors and
// options live in dedicated files (errors.go, options.go).
package matrix

import (
	"fmt"
	"strings"
)

// ---------- Operation tags ----------

// Op identifies one of the four routines. It selects the descriptor layout
// and the legacy status-code table.
type Op uint8

const (
	// OpSparse is SparseMatrix (descriptor [rows, cols]).
	OpSparse Op = iota + 1
	// OpAddition is Addition (descriptor [Mr, Mc, Nr, Nc, Ar, Ac]).
	OpAddition
	// OpMultiplication is Multiplication (descriptor [Mr, Mc, Nr, Nc, Ar, Ac]).
	OpMultiplication
	// OpTranspose is Transpose (descriptor [Ar, Ac, ATr, ATc]).
	OpTranspose
)

// Operation name constants for unified error wrapping and parsing.
const (
	opSparse         = "SparseMatrix"
	opAddition       = "Addition"
	opMultiplication = "Multiplication"
	opTranspose      = "Transpose"
)

// Ops lists every routine in a fixed order (used by CLIs and tests).
var Ops = []Op{OpSparse, OpAddition, OpMultiplication, OpTranspose}

// String returns the routine name (e.g. "Addition").
func (op Op) String() string {
	switch op {
	case OpSparse:
		return opSparse
	case OpAddition:
		return opAddition
	case OpMultiplication:
		return opMultiplication
	case OpTranspose:
		return opTranspose
	default:
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
}

// DescriptorLen returns the number of fields the routine's Dims must carry,
// or 0 for an unknown op.
func (op Op) DescriptorLen() int {
	switch op {
	case OpSparse:
		return 2
	case OpAddition, OpMultiplication:
		return 6
	case OpTranspose:
		return 4
	default:
		return 0
	}
}

// DescriptorLayout names the descriptor fields of op in order, e.g.
// ["A.rows", "A.cols", "AT.rows", "AT.cols"] for OpTranspose.
func (op Op) DescriptorLayout() []string {
	switch op {
	case OpSparse:
		return []string{"rows", "cols"}
	case OpAddition, OpMultiplication:
		return []string{"M.rows", "M.cols", "N.rows", "N.cols", "A.rows", "A.cols"}
	case OpTranspose:
		return []string{"A.rows", "A.cols", "AT.rows", "AT.cols"}
	default:
		return nil
	}
}

// ParseOp accepts the routine name or a short alias, case-insensitively:
// sparse, add|addition, mul|multiplication, t|transpose.
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sparse", "sparsematrix":
		return OpSparse, nil
	case "add", "addition":
		return OpAddition, nil
	case "mul", "multiplication":
		return OpMultiplication, nil
	case "t", "transpose":
		return OpTranspose, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownOp)
}

// ---------- Status enumeration ----------

// Status classifies the dimensional relationship a routine observed among
// its operands. The zero value StatusUnknown only accompanies an error.
//
// Each routine reaches a subset:
//
//	Addition, Multiplication: all five
//	Transpose:                StatusExact, StatusOutputLarger, StatusOutputSmaller
//
// The classification is deliberately not an exhaustive geometric partition:
// StatusOutputSmaller on Transpose, and StatusIncompatibleTooSmall on
// Addition, absorb mixed relationships (one axis larger, one smaller).
type Status uint8

const (
	// StatusUnknown is returned together with a non-nil error.
	StatusUnknown Status = iota
	// StatusExact: operands compatible and the output shape is exactly the
	// expected result shape.
	StatusExact
	// StatusOutputLarger: operands compatible and the output is larger than
	// needed; the surplus cells were left untouched.
	StatusOutputLarger
	// StatusOutputSmaller: operands compatible but the output cannot hold the
	// whole result; only the overlap was written.
	StatusOutputSmaller
	// StatusIncompatibleFits: operands are not compatible, but the output
	// covers the envelope the routine computed over.
	StatusIncompatibleFits
	// StatusIncompatibleTooSmall: operands are not compatible and the output
	// is also too small for that envelope.
	StatusIncompatibleTooSmall
)

var statusNames = [...]string{
	StatusUnknown:              "Unknown",
	StatusExact:                "Exact",
	StatusOutputLarger:         "OutputLarger",
	StatusOutputSmaller:        "OutputSmaller",
	StatusIncompatibleFits:     "IncompatibleFits",
	StatusIncompatibleTooSmall: "IncompatibleTooSmall",
}

// String returns the status name without the "Status" prefix.
func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}

	return fmt.Sprintf("Status(%d)", uint8(s))
}

// Complete reports whether the written output can be treated as the full,
// mathematically meaningful result (the positive legacy codes).
func (s Status) Complete() bool {
	return s == StatusExact || s == StatusOutputLarger
}

// Code returns the legacy signed integer the routine op reports for s.
// Transpose folds StatusOutputSmaller into -1; an unreachable combination
// (or StatusUnknown) yields 0.
//
//	Status                      Addition  Multiplication  Transpose
//	StatusExact                    1           1              1
//	StatusOutputLarger             2           2              2
//	StatusOutputSmaller           -3          -3             -1
//	StatusIncompatibleFits        -1          -1              -
//	StatusIncompatibleTooSmall    -2          -2              -
func (s Status) Code(op Op) int {
	switch s {
	case StatusExact:
		return 1
	case StatusOutputLarger:
		return 2
	case StatusOutputSmaller:
		if op == OpTranspose {
			return -1
		}
		return -3
	case StatusIncompatibleFits:
		if op == OpTranspose {
			return 0
		}
		return -1
	case StatusIncompatibleTooSmall:
		if op == OpTranspose {
			return 0
		}
		return -2
	default:
		return 0
	}
}

// StatusFromCode is the inverse of Status.Code for routine op.
// It returns StatusUnknown for codes the routine never reports.
func StatusFromCode(op Op, code int) Status {
	for s := StatusExact; s <= StatusIncompatibleTooSmall; s++ {
		if c := s.Code(op); c != 0 && c == code {
			return s
		}
	}

	return StatusUnknown
}

// ---------- Dimension descriptor ----------

// Dims is the dimension descriptor: (rows, cols) pairs, one per operand, in
// the routine-specific order documented on each routine. Values are trusted;
// they are not re-derived from the buffers.
type Dims []int

// SparseDims builds the SparseMatrix descriptor [rows, cols].
func SparseDims(rows, cols int) Dims { return Dims{rows, cols} }

// BinaryDims builds the Addition/Multiplication descriptor
// [M.rows, M.cols, N.rows, N.cols, A.rows, A.cols].
func BinaryDims(mRows, mCols, nRows, nCols, aRows, aCols int) Dims {
	return Dims{mRows, mCols, nRows, nCols, aRows, aCols}
}

// TransposeDims builds the Transpose descriptor [A.rows, A.cols, AT.rows, AT.cols].
func TransposeDims(aRows, aCols, tRows, tCols int) Dims {
	return Dims{aRows, aCols, tRows, tCols}
}

// ShapeDims builds a descriptor from the real shapes of the given operands,
// in argument order. Nil operands contribute (0, 0).
func ShapeDims(operands ...*Dense) Dims {
	d := make(Dims, 0, 2*len(operands))
	for _, m := range operands {
		if m == nil {
			d = append(d, 0, 0)
			continue
		}
		d = append(d, m.r, m.c)
	}

	return d
}

// pair returns the k-th (rows, cols) pair. Caller validated the length.
func (d Dims) pair(k int) (rows, cols int) { return d[2*k], d[2*k+1] }

// ---------- Sparse coordinate form ----------

// Triplet is one non-zero cell in sparse coordinate form.
type Triplet struct {
	Row, Col int
	Value    int32
}
