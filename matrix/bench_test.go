// Package matrix_test provides benchmarks for the four routines,
// using deterministic fills on square operands.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/intmat/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{32, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkS matrix.Status
	sinkN int
)

// randDense fills an n×n matrix from a fixed seed.
func randDense(b *testing.B, n int, seed int64) *matrix.Dense {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]int32, n*n)
	for k := range vals {
		vals[k] = int32(rng.Intn(201) - 100)
	}

	return MustAllocate(b, n, n, vals...)
}

func BenchmarkAddition(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m, o := randDense(b, n, 1), randDense(b, n, 2)
			a := MustDense(b, n, n)
			d := matrix.BinaryDims(n, n, n, n, n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				st, err := matrix.Addition(m, o, a, d)
				if err != nil {
					b.Fatal(err)
				}
				sinkS = st
			}
		})
	}
}

func BenchmarkMultiplication(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m, o := randDense(b, n, 3), randDense(b, n, 4)
			a := MustDense(b, n, n)
			d := matrix.BinaryDims(n, n, n, n, n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				st, err := matrix.Multiplication(m, o, a, d)
				if err != nil {
					b.Fatal(err)
				}
				sinkS = st
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := randDense(b, n, 5)
			at := MustDense(b, n, n)
			d := matrix.TransposeDims(n, n, n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				st, err := matrix.Transpose(m, at, d)
				if err != nil {
					b.Fatal(err)
				}
				sinkS = st
			}
		})
	}
}

func BenchmarkSparseMatrix(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			// Diagonal: n non-zero cells, within max(n, n+1).
			m := MustDense(b, n, n)
			for i := 0; i < n; i++ {
				_ = m.Set(i, i, int32(i+1))
			}
			s := MustDense(b, 3, n+1)
			d := matrix.SparseDims(n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c, err := matrix.SparseMatrix(m, s, d)
				if err != nil {
					b.Fatal(err)
				}
				sinkN = c
			}
		})
	}
}
