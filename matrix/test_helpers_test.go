// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the routines.
//   • Keep shapes and values explicit so expected outputs can be read off the test.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/intmat/matrix"
)

// MustAllocate BUILDS an r×c *Dense from a row-major flat slice or fails the test.
func MustAllocate(t testing.TB, r, c int, vals ...int32) *matrix.Dense {
	t.Helper()
	m, err := matrix.Allocate(r, c, vals)
	if err != nil {
		t.Fatalf("Allocate(%d,%d): %v", r, c, err)
	}

	return m
}

// MustDense ALLOCATES an r×c zero *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// Filled ALLOCATES an r×c *Dense with every cell set to v (a sentinel used to
// prove that cells outside the overlap region are never written).
func Filled(t testing.TB, r, c int, v int32) *matrix.Dense {
	t.Helper()
	vals := make([]int32, r*c)
	for k := range vals {
		vals[k] = v
	}

	return MustAllocate(t, r, c, vals...)
}

// Seq ALLOCATES an r×c *Dense holding 1, 2, 3, ... in row-major order.
func Seq(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	vals := make([]int32, r*c)
	for k := range vals {
		vals[k] = int32(k + 1)
	}

	return MustAllocate(t, r, c, vals...)
}

// MustAt READS m(i,j) or fails the test.
func MustAt(t testing.TB, m *matrix.Dense, i, j int) int32 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact ASSERTS m holds exactly want (shape and every cell).
func CompareExact(t testing.TB, want [][]int32, m *matrix.Dense) {
	t.Helper()
	if m.Rows() != len(want) {
		t.Fatalf("rows: want %d, got %d", len(want), m.Rows())
	}
	var i, j int
	for i = 0; i < len(want); i++ {
		if m.Cols() != len(want[i]) {
			t.Fatalf("cols of row %d: want %d, got %d", i, len(want[i]), m.Cols())
		}
		for j = 0; j < len(want[i]); j++ {
			if got := MustAt(t, m, i, j); got != want[i][j] {
				t.Fatalf("[%d,%d]: want %d, got %d\n%s", i, j, want[i][j], got, m)
			}
		}
	}
}
