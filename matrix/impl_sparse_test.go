package matrix_test

import (
	"testing"

	"github.com/katalvlaran/intmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestSparseMatrix_RoundTrip replays the triples and rebuilds the source.
func TestSparseMatrix_RoundTrip(t *testing.T) {
	t.Parallel()

	m := MustAllocate(t, 3, 3,
		0, 5, 0,
		7, 0, 0,
		0, 0, -2,
	)
	s := MustDense(t, 3, 4) // bound max(3, 3+1) = 4

	count, err := matrix.SparseMatrix(m, s, matrix.SparseDims(3, 3))
	require.NoError(t, err)
	require.Equal(t, 3, count)

	ts, err := matrix.Triplets(s, count)
	require.NoError(t, err)
	require.Equal(t, []matrix.Triplet{
		{Row: 0, Col: 1, Value: 5},
		{Row: 1, Col: 0, Value: 7},
		{Row: 2, Col: 2, Value: -2},
	}, ts)

	back, err := matrix.FromTriplets(3, 3, ts)
	require.NoError(t, err)
	require.True(t, m.Equal(back), "round trip mismatch:\n%s", back)

	// Column 3 of the buffer was never needed and stays zero.
	CompareExact(t, [][]int32{
		{0, 1, 2, 0},
		{1, 0, 2, 0},
		{5, 7, -2, 0},
	}, s)
}

// TestSparseMatrix_OverCapacity leaves the buffer untouched and returns the sentinel.
func TestSparseMatrix_OverCapacity(t *testing.T) {
	t.Parallel()

	m := MustAllocate(t, 2, 2, 1, 1, 1, 1) // 4 non-zero > max(2, 3)
	s := Filled(t, 3, 8, 9)
	before := s.Clone()

	count, err := matrix.SparseMatrix(m, s, matrix.SparseDims(2, 2))
	require.ErrorIs(t, err, matrix.ErrSparseCapacity)
	require.Equal(t, matrix.SparseErrorCode, count)
	require.True(t, before.Equal(s), "sparse buffer must not be written on rejection")
}

// TestSparseMatrix_Bound exercises both arms of max(rows, cols+1).
func TestSparseMatrix_Bound(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		rows, cols int
		vals       []int32
		want       int
		wantErr    error
	}{
		{"wide uses cols+1", 1, 3, []int32{1, 2, 3}, 3, nil},
		{"tall uses rows", 3, 1, []int32{1, 2, 3}, 3, nil},
		{"exactly at bound", 2, 2, []int32{1, 1, 1, 0}, 3, nil},
		{"tall at bound", 2, 1, []int32{1, 1}, 2, nil},
		{"square full", 3, 3, []int32{1, 1, 1, 1, 1, 1, 1, 1, 1}, matrix.SparseErrorCode, matrix.ErrSparseCapacity},
		{"all zero", 2, 3, []int32{0, 0, 0, 0, 0, 0}, 0, nil},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m := MustAllocate(t, tc.rows, tc.cols, tc.vals...)
			s := MustDense(t, 3, 9)
			got, err := matrix.SparseMatrix(m, s, matrix.SparseDims(tc.rows, tc.cols))
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tc.want, got)
		})
	}
}

// TestSparseMatrix_AllZeroWritesNothing checks the buffer after a zero count.
func TestSparseMatrix_AllZeroWritesNothing(t *testing.T) {
	m := MustDense(t, 2, 2)
	s := Filled(t, 3, 3, -1)
	count, err := matrix.SparseMatrix(m, s, matrix.SparseDims(2, 2))
	require.NoError(t, err)
	require.Zero(t, count)
	require.True(t, Filled(t, 3, 3, -1).Equal(s))
}

// TestSparseMatrix_DescriptorSmallerThanBuffer scans only the declared region.
func TestSparseMatrix_DescriptorSmallerThanBuffer(t *testing.T) {
	m := Filled(t, 3, 3, 4)
	s := MustDense(t, 3, 4)
	count, err := matrix.SparseMatrix(m, s, matrix.SparseDims(1, 2))
	require.NoError(t, err)
	require.Equal(t, 2, count)

	ts, err := matrix.Triplets(s, count)
	require.NoError(t, err)
	require.Equal(t, []matrix.Triplet{{Row: 0, Col: 0, Value: 4}, {Row: 0, Col: 1, Value: 4}}, ts)
}

// TestSparseMatrix_Errors walks the validation priority.
func TestSparseMatrix_Errors(t *testing.T) {
	m := Seq(t, 2, 2)
	s := MustDense(t, 3, 3)

	_, err := matrix.SparseMatrix(nil, s, matrix.SparseDims(2, 2))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.SparseMatrix(m, nil, matrix.SparseDims(2, 2))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.SparseMatrix(m, s, matrix.Dims{2})
	require.ErrorIs(t, err, matrix.ErrDescriptorLength)

	_, err = matrix.SparseMatrix(m, s, matrix.SparseDims(-1, 2))
	require.ErrorIs(t, err, matrix.ErrNegativeDimension)

	_, err = matrix.SparseMatrix(m, MustDense(t, 2, 3), matrix.SparseDims(2, 2))
	require.ErrorIs(t, err, matrix.ErrSparseBuffer)
	require.Contains(t, err.Error(), "SparseMatrix: ")
}

// TestSparseMatrix_TrustedDescriptor contrasts the default contract with the
// opt-in bounds check.
func TestSparseMatrix_TrustedDescriptor(t *testing.T) {
	m := Seq(t, 2, 2)
	s := MustDense(t, 3, 5)

	_, err := matrix.SparseMatrix(m, s, matrix.SparseDims(3, 2), matrix.WithBoundsCheck(true))
	require.ErrorIs(t, err, matrix.ErrDescriptorOverstates)

	require.Panics(t, func() {
		_, _ = matrix.SparseMatrix(m, s, matrix.SparseDims(3, 2))
	})

	// Count under the heuristic bound but beyond the buffer's real columns.
	small := MustDense(t, 3, 2)
	three := MustAllocate(t, 2, 2, 1, 2, 3, 0)
	_, err = matrix.SparseMatrix(three, small, matrix.SparseDims(2, 2), matrix.WithBoundsCheck(true))
	require.ErrorIs(t, err, matrix.ErrDescriptorOverstates)
	require.True(t, MustDense(t, 3, 2).Equal(small))

	require.Panics(t, func() {
		_, _ = matrix.SparseMatrix(three, small, matrix.SparseDims(2, 2))
	})
}

// TestSparseMatrix_Idempotent reruns on a fresh buffer.
func TestSparseMatrix_Idempotent(t *testing.T) {
	m := MustAllocate(t, 2, 3, 0, 1, 0, 2, 0, 3)
	s1, s2 := MustDense(t, 3, 4), MustDense(t, 3, 4)
	c1, err1 := matrix.SparseMatrix(m, s1, matrix.SparseDims(2, 3))
	c2, err2 := matrix.SparseMatrix(m, s2, matrix.SparseDims(2, 3))
	require.NoError(t, err1)
	require.NoError(t, err2)
	require.Equal(t, c1, c2)
	require.True(t, s1.Equal(s2))
}
