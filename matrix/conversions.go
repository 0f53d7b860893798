// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Bridge float64 matrices to gonum.org/v1/gonum/mat so callers can hand
//     results to gonum (decompositions, BLAS) and tests can cross-check
//     determinants and inverses.

package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvalg/arith"
)

// ToGonum copies m into a new *mat.Dense.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrBadShape for an empty matrix (gonum has no 0-sized Dense).
func ToGonum(m *Matrix[float64]) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	if m.rows == 0 || m.cols == 0 {
		return nil, matrixErrorf(opToGonum, ErrBadShape)
	}

	data := make([]float64, m.Size())
	for idx := range data {
		data[idx] = m.at(idx)
	}

	return mat.NewDense(m.rows, m.cols, data), nil
}

// FromGonum copies src into a new Matrix over a with default def; cells
// equal to def are not stored.
func FromGonum(a arith.Arithmetic[float64], src mat.Matrix, def float64) (*Matrix[float64], error) {
	if a == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilArithmetic)
	}
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}

	r, c := src.Dims()
	res := newUnchecked(a, r, c, def)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			res.put(i*c+j, src.At(i, j))
		}
	}

	return res, nil
}
