// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures over exact (rational, integer)
//     and float arithmetics.
//   • Keep fixture construction fatal on error so tests read as data.

package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalg/arith"
	"github.com/katalvlaran/lvalg/matrix"
)

var (
	rat = arith.NewRational()
	flt = arith.NewFloat64()
	bi  = arith.NewBigInt()
)

// MustRat builds a rational matrix from integer rows, default zero.
func MustRat(t *testing.T, rows [][]int64) *matrix.Matrix[*big.Rat] {
	t.Helper()
	vals := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		vals[i] = make([]*big.Rat, len(row))
		for j, v := range row {
			vals[i][j] = rat.FromInt(v)
		}
	}
	m, err := matrix.FromRows[*big.Rat](rat, rat.Zero(), vals)
	require.NoError(t, err)

	return m
}

// MustFloat builds a float64 matrix from rows, default zero.
func MustFloat(t *testing.T, rows [][]float64) *matrix.Matrix[float64] {
	t.Helper()
	m, err := matrix.FromRows[float64](flt, 0, rows)
	require.NoError(t, err)

	return m
}

// MustBigInt builds a big.Int matrix from integer rows, default zero.
func MustBigInt(t *testing.T, rows [][]int64) *matrix.Matrix[*big.Int] {
	t.Helper()
	vals := make([][]*big.Int, len(rows))
	for i, row := range rows {
		vals[i] = make([]*big.Int, len(row))
		for j, v := range row {
			vals[i][j] = big.NewInt(v)
		}
	}
	m, err := matrix.FromRows[*big.Int](bi, bi.Zero(), vals)
	require.NoError(t, err)

	return m
}

// R is shorthand for a rational num/den.
func R(t *testing.T, num, den int64) *big.Rat {
	t.Helper()
	v, err := rat.Frac(num, den)
	require.NoError(t, err)

	return v
}

// RequireRat asserts that cell (i,j) equals want exactly.
func RequireRat(t *testing.T, m *matrix.Matrix[*big.Rat], i, j int, want *big.Rat) {
	t.Helper()
	got, err := m.Get(i, j)
	require.NoError(t, err)
	require.Zerof(t, got.Cmp(want), "cell (%d,%d): got %s want %s", i, j, got.RatString(), want.RatString())
}
