// SPDX-License-Identifier: MIT
package linear_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalg/arith"
	"github.com/katalvlaran/lvalg/linear"
	"github.com/katalvlaran/lvalg/matrix"
)

var rat = arith.NewRational()

// ratMatrix builds a rational matrix from integer rows.
func ratMatrix(t *testing.T, rows [][]int64) *matrix.Matrix[*big.Rat] {
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

// ratSystem builds a system from augmented integer rows.
func ratSystem(t *testing.T, rows [][]int64) *linear.System[*big.Rat] {
	t.Helper()
	s, err := linear.OfAugmented(ratMatrix(t, rows))
	require.NoError(t, err)

	return s
}

// ratStrings formats values with RatString.
func ratStrings(values []*big.Rat) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.RatString()
	}

	return out
}
