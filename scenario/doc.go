// Package scenario runs YAML-described cases against the matrix routines and
// reports what each one wrote and returned.
//
// A scenario file names the routine, the operand shapes and contents, an
// optional explicit dimension descriptor (to model declared shapes that
// disagree with the buffers), and optional expectations:
//
//	name: smoke
//	run_id: fixed-id
//	cases:
//	  - name: add exact
//	    op: addition
//	    m:   {rows: 2, cols: 2, values: [1, 2, 3, 4]}
//	    n:   {rows: 2, cols: 2, values: [5, 6, 7, 8]}
//	    out: {rows: 2, cols: 2}
//	    expect: {code: 1, output: [[6, 8], [10, 12]]}
//
// Operand roles per routine:
//
//	sparse:         m = source, out = sparse buffer (defaults to 3×max(rows, cols+1))
//	addition:       m, n, out = A
//	multiplication: m, n, out = A
//	transpose:      m = A, out = AT
//
// The runner always enables matrix.WithBoundsCheck so a descriptor that
// overstates a buffer is reported as a case error instead of a panic.
package scenario
