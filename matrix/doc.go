// Package matrix implements four integer matrix routines over caller-owned,
// row-major jagged buffers: sparse coordinate conversion, addition,
// multiplication and transpose.
//
// What makes the routines unusual is the dimension policy. Every call takes a
// dimension descriptor (Dims) listing (rows, cols) for each operand in a fixed
// order. The routine trusts the descriptor, writes a best-effort result into
// the overlap region of all operands, and returns a Status classifying how the
// declared shapes relate:
//
//	M 2×3, N 3×2, A 2×2  → Multiplication writes A = M×N, StatusExact (code 1)
//	M 3×3, N 3×3, A 2×2  → Addition writes A[0:2][0:2], StatusOutputSmaller (code -3)
//	A 2×3, AT 3×2        → Transpose writes AT, StatusExact (code 1)
//
// Cells outside the overlap region are never written (they are not zeroed).
// A Status with Complete()==false means the written output is partial or the
// operands were not mathematically compatible.
//
// Descriptor layouts (the order is a contract):
//
//	SparseMatrix:   [rows, cols]
//	Addition:       [M.rows, M.cols, N.rows, N.cols, A.rows, A.cols]
//	Multiplication: [M.rows, M.cols, N.rows, N.cols, A.rows, A.cols]
//	Transpose:      [A.rows, A.cols, AT.rows, AT.cols]
//
// The descriptor is not reconciled with the real buffer extent. A descriptor
// that overstates a buffer makes the routine index past it, which panics at
// runtime. Pass WithBoundsCheck(true) to turn that into ErrDescriptorOverstates
// before any cell is touched.
//
// Cells are int32 and arithmetic wraps on overflow.
//
// The routines do not allocate, log, or keep state between calls. Disjoint
// buffers can be processed from several goroutines; aliased buffers cannot.
// Callers that would rather not manage buffers can use the facades in api.go
// (ToSparse, Sum, Product, T).
package matrix
