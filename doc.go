// Package intmat is a small library of integer dense-matrix routines with
// explicit dimension descriptors and a status code for every shape mismatch.
//
// What is in here?
//
//	matrix/       - Dense buffers, SparseMatrix, Addition, Multiplication,
//	                Transpose, Allocate/Release and the status codes
//	scenario/     - YAML scenario files run against the routines, with text
//	                and JSON reports
//	cmd/intmat    - the command-line front end (run, validate, ops)
//
// The routines never refuse to work on mismatched shapes: each one writes the
// overlap region of its operands and reports how the declared shapes relate
// (exact, output larger, output smaller, incompatible). See package matrix.
//
// Quick example:
//
//	a, _ := matrix.Allocate(2, 3, []int32{1, 2, 3, 4, 5, 6})
//	at, _ := matrix.NewDense(3, 2)
//	st, err := matrix.Transpose(a, at, matrix.ShapeDims(a, at))
//	// st == matrix.StatusExact, st.Code(matrix.OpTranspose) == 1
package intmat
