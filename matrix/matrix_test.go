// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for sparse storage and constructors.
package matrix_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalg/matrix"
)

func TestNew_ShapeValidation(t *testing.T) {
	t.Parallel()

	_, err := matrix.New[float64](flt, -1, 2, 0)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.New[float64](flt, 2, -1, 0)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.New[float64](flt, math.MaxInt, 2, 0)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.New[float64](nil, 2, 2, 0)
	require.ErrorIs(t, err, matrix.ErrNilArithmetic)

	m, err := matrix.New[float64](flt, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Size())
	assert.True(t, m.IsSquare())
}

func TestSet_PrunesDefault(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewZero[*big.Rat](rat, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())

	prev, err := m.Set(1, 2, rat.FromInt(5))
	require.NoError(t, err)
	assert.True(t, rat.IsZero(prev))
	assert.Equal(t, 1, m.Len())

	// writing the default removes the entry
	prev, err = m.Set(1, 2, rat.Zero())
	require.NoError(t, err)
	assert.Equal(t, "5", rat.Format(prev))
	assert.Equal(t, 0, m.Len())

	_, err = m.SetIndex(4, rat.One())
	require.NoError(t, err)
	RequireRat(t, m, 1, 1, rat.One())

	prev, err = m.Remove(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "1", rat.Format(prev))
	assert.Equal(t, 0, m.Len())
}

func TestAccessors_OutOfRange(t *testing.T) {
	t.Parallel()

	m := MustFloat(t, [][]float64{{1, 2}, {3, 4}})

	_, err := m.Get(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Get(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.GetIndex(4)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Set(-1, 0, 9)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	// failed writes leave the matrix untouched
	v, err := m.Get(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	var nilM *matrix.Matrix[float64]
	_, err = nilM.Get(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestNonZeroDefault(t *testing.T) {
	t.Parallel()

	m, err := matrix.New[float64](flt, 2, 2, 7)
	require.NoError(t, err)

	v, err := m.Get(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	_, err = m.Set(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Len())

	_, err = m.Set(0, 0, 7)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	byRows, err := matrix.OfValuesByRows[float64](flt, 0, 2, 1, 2, 3, 4, 5, 6)
	require.NoError(t, err)
	assert.Equal(t, 2, byRows.Rows())
	assert.Equal(t, 3, byRows.Cols())
	row, err := byRows.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, row)

	byCols, err := matrix.OfValuesByCols[float64](flt, 0, 3, 1, 2, 3, 4, 5, 6)
	require.NoError(t, err)
	assert.Equal(t, 2, byCols.Rows())
	assert.Equal(t, 3, byCols.Cols())
	row, err = byCols.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 5}, row)
	col, err := byCols.Col(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 6}, col)

	_, err = matrix.OfValuesByRows[float64](flt, 0, 2, 1, 2, 3)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.OfValuesByCols[float64](flt, 0, 0, 1)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.FromRows[float64](flt, 0, [][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	id, err := matrix.Identity[float64](flt, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, id.Len())
	assert.True(t, id.IsDiagonal())

	diag, err := matrix.Diagonal[float64](flt, 0, 2, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, diag.Len())
	v, err := diag.Get(2, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
}

func TestEach_AscendingOrder(t *testing.T) {
	t.Parallel()

	m := MustFloat(t, [][]float64{
		{0, 1, 0},
		{2, 0, 3},
	})
	var got [][3]float64
	m.Each(func(r, c int, v float64) {
		got = append(got, [3]float64{float64(r), float64(c), v})
	})
	assert.Equal(t, [][3]float64{{0, 1, 1}, {1, 0, 2}, {1, 2, 3}}, got)
}

func TestClone_Independent(t *testing.T) {
	t.Parallel()

	m := MustRat(t, [][]int64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.True(t, m.Equal(c))

	_, err := c.Set(0, 0, rat.FromInt(9))
	require.NoError(t, err)
	RequireRat(t, m, 0, 0, rat.FromInt(1))
	assert.False(t, m.Equal(c))
}

func TestEqual_DifferentDefaults(t *testing.T) {
	t.Parallel()

	a := MustFloat(t, [][]float64{{1, 1}, {1, 0}})
	b, err := matrix.New[float64](flt, 2, 2, 1)
	require.NoError(t, err)
	_, err = b.Set(1, 1, 0)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 1, b.Len())

	c := MustFloat(t, [][]float64{{1, 1}})
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestString(t *testing.T) {
	t.Parallel()

	m := MustRat(t, [][]int64{{1, 0}, {-3, 4}})
	_, err := m.Set(0, 1, R(t, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, "[1, 1/2]\n[-3, 4]\n", m.String())
}
