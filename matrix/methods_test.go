// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Add, Scale, Multiply and Transpose.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalg/matrix"
)

func TestAdd(t *testing.T) {
	t.Parallel()

	a := MustRat(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	b := MustRat(t, [][]int64{{6, 5, 4}, {-4, 2, 1}})

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.True(t, sum.Equal(MustRat(t, [][]int64{{7, 7, 7}, {0, 7, 7}})))
	// 4 + (-4) is pruned
	assert.Equal(t, 5, sum.Len())

	_, err = a.Add(MustRat(t, [][]int64{{1, 2}, {3, 4}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.Add(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAdd_NonZeroDefaultFallback(t *testing.T) {
	t.Parallel()

	a, err := matrix.New[float64](flt, 2, 2, 1)
	require.NoError(t, err)
	b := MustFloat(t, [][]float64{{1, 0}, {2, 3}})

	sum, err := matrix.Sum(a, b)
	require.NoError(t, err)
	require.True(t, sum.Equal(MustFloat(t, [][]float64{{2, 1}, {3, 4}})))
}

func TestScale(t *testing.T) {
	t.Parallel()

	m := MustRat(t, [][]int64{{1, 0}, {-2, 4}})
	half, err := m.Scale(R(t, 1, 2))
	require.NoError(t, err)
	RequireRat(t, half, 0, 0, R(t, 1, 2))
	RequireRat(t, half, 1, 0, rat.FromInt(-1))
	RequireRat(t, half, 1, 1, rat.FromInt(2))

	zero, err := m.Scale(rat.Zero())
	require.NoError(t, err)
	assert.Equal(t, 0, zero.Len())
}

func TestMultiply(t *testing.T) {
	t.Parallel()

	a := MustRat(t, [][]int64{{1, 2}, {3, 4}})
	b := MustRat(t, [][]int64{{5, 6}, {7, 8}})

	p, err := a.Multiply(b)
	require.NoError(t, err)
	require.True(t, p.Equal(MustRat(t, [][]int64{{19, 22}, {43, 50}})))

	p, err = matrix.Product(b, a)
	require.NoError(t, err)
	require.True(t, p.Equal(MustRat(t, [][]int64{{23, 34}, {31, 46}})))

	_, err = a.Multiply(MustRat(t, [][]int64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMultiply_SparseMatchesFallback(t *testing.T) {
	t.Parallel()

	rows := [][]float64{
		{1, 0, 0, 2},
		{0, 0, 3, 0},
		{4, 0, 0, 0},
	}
	sparseA := MustFloat(t, rows)
	sparseB := MustFloat(t, [][]float64{{0, 1}, {2, 0}, {0, 0}, {5, 6}})

	// identical logical values, non-zero default forces the triple loop
	denseA, err := matrix.New[float64](flt, 3, 4, 9)
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			_, err = denseA.Set(i, j, v)
			require.NoError(t, err)
		}
	}

	fast, err := sparseA.Multiply(sparseB)
	require.NoError(t, err)
	slow, err := denseA.Multiply(sparseB)
	require.NoError(t, err)
	assert.True(t, fast.Equal(slow))
	assert.True(t, fast.Equal(MustFloat(t, [][]float64{{10, 13}, {0, 0}, {0, 4}})))
}

func TestMultiply_Identity(t *testing.T) {
	t.Parallel()

	m := MustRat(t, [][]int64{{2, -1, 0}, {0, 3, 7}, {1, 1, 1}})
	id, err := matrix.Identity(rat, 3, rat.Zero())
	require.NoError(t, err)

	left, err := id.Multiply(m)
	require.NoError(t, err)
	right, err := m.Multiply(id)
	require.NoError(t, err)
	assert.True(t, left.Equal(m))
	assert.True(t, right.Equal(m))
}

func TestMultiplyTolerant(t *testing.T) {
	t.Parallel()

	a := MustFloat(t, [][]float64{{1, 2, 3}, {4, 5, 6}}) // 2×3
	b := MustFloat(t, [][]float64{{1, 0}, {0, 1}})       // 2×2

	// a×b does not align, b×a does
	p, err := a.MultiplyTolerant(b)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Rows())
	assert.Equal(t, 3, p.Cols())
	assert.True(t, p.Equal(a))

	_, err = a.MultiplyTolerant(MustFloat(t, [][]float64{{1}, {2}, {3}, {4}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	m := MustRat(t, [][]int64{{1, 2, 3}, {0, 5, 0}})
	tr, err := matrix.T(m)
	require.NoError(t, err)
	assert.Equal(t, 3, tr.Rows())
	assert.Equal(t, 2, tr.Cols())
	assert.True(t, tr.Equal(MustRat(t, [][]int64{{1, 0}, {2, 5}, {3, 0}})))
	assert.Equal(t, m.Len(), tr.Len())

	back, err := tr.Transpose()
	require.NoError(t, err)
	assert.True(t, back.Equal(m))
}
