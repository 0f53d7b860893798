// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise re-expression of a matrix over another numeric type:
//     Map for arbitrary conversions, Lift for a ResultArithmetic (integers
//     solved as fractions, integers as big floats).
//
// Determinism:
//   - Stored entries are converted in ascending linear-index order, so the
//     first conversion error reported is always the same one.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvalg/arith"
)

// Map converts every cell of m with fn into a matrix over target. The new
// default is fn(m.Default()); only stored entries are converted otherwise.
//
// Errors:
//   - ErrNilMatrix, ErrNilArithmetic.
//   - The first error returned by fn, annotated with the cell coordinates.
func Map[T, R any](m *Matrix[T], target arith.Arithmetic[R], fn func(T) (R, error)) (*Matrix[R], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMap, err)
	}
	if target == nil {
		return nil, matrixErrorf(opMap, ErrNilArithmetic)
	}

	def, err := fn(m.def)
	if err != nil {
		return nil, matrixErrorf(opMap, fmt.Errorf("default: %w", err))
	}
	res := newUnchecked(target, m.rows, m.cols, def)
	var v R
	for _, idx := range m.indices() {
		if v, err = fn(m.entries[idx]); err != nil {
			return nil, matrixErrorf(opMap, fmt.Errorf("cell (%d,%d): %w", idx/m.cols, idx%m.cols, err))
		}
		res.put(idx, v)
	}

	return res, nil
}

// Lift re-expresses m over the output arithmetic of ra using ra.Lift.
func Lift[T, R any](m *Matrix[T], ra arith.ResultArithmetic[T, R]) (*Matrix[R], error) {
	if ra == nil {
		return nil, matrixErrorf(opLift, ErrNilArithmetic)
	}
	res, err := Map(m, ra.Output(), func(v T) (R, error) { return ra.Lift(v), nil })
	if err != nil {
		return nil, matrixErrorf(opLift, err)
	}

	return res, nil
}
