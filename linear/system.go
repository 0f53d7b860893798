// SPDX-License-Identifier: MIT
// Package linear: System, the augmented-matrix form of A·x = b.

package linear

import (
	"github.com/katalvlaran/lvalg/arith"
	"github.com/katalvlaran/lvalg/matrix"
)

const (
	opOfAugmented = "OfAugmented"
	opOf          = "Of"
	opSolve       = "Solve"
	opReduce      = "Reduce"
	opNewSolver   = "NewGaussSolver"

	opCoefficients   = "Coefficients"
	opSolutionColumn = "SolutionColumn"
)

// System is an immutable linear equation system stored as one augmented
// matrix of shape equations × (unknowns+1); the last column holds b.
type System[T any] struct {
	aug *matrix.Matrix[T]
}

// OfAugmented wraps a copy of an already augmented matrix.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil matrix.
//   - ErrNoSolutionColumn when aug has no columns.
func OfAugmented[T any](aug *matrix.Matrix[T]) (*System[T], error) {
	if err := matrix.ValidateNotNil(aug); err != nil {
		return nil, linearErrorf(opOfAugmented, err)
	}
	if aug.Cols() == 0 {
		return nil, linearErrorf(opOfAugmented, ErrNoSolutionColumn)
	}

	return &System[T]{aug: aug.Clone()}, nil
}

// Of builds [coefficients | column]. column must be a single column with
// the same number of rows as coefficients.
//
// Errors:
//   - matrix.ErrNilMatrix for nil operands.
//   - matrix.ErrDimensionMismatch when row counts differ or column has more
//     than one column.
func Of[T any](coefficients, column *matrix.Matrix[T]) (*System[T], error) {
	if err := matrix.ValidateNotNil(coefficients); err != nil {
		return nil, linearErrorf(opOf, err)
	}
	if err := matrix.ValidateNotNil(column); err != nil {
		return nil, linearErrorf(opOf, err)
	}
	if column.Cols() != 1 {
		return nil, linearErrorf(opOf, matrix.ErrDimensionMismatch)
	}
	aug, err := coefficients.AppendCol(column)
	if err != nil {
		return nil, linearErrorf(opOf, err)
	}

	return &System[T]{aug: aug}, nil
}

// Augmented returns a copy of the augmented matrix.
func (s *System[T]) Augmented() *matrix.Matrix[T] { return s.aug.Clone() }

// Arithmetic returns the arithmetic of the underlying matrix.
func (s *System[T]) Arithmetic() arith.Arithmetic[T] { return s.aug.Arithmetic() }

// Equations returns the number of rows.
func (s *System[T]) Equations() int { return s.aug.Rows() }

// Unknowns returns the number of coefficient columns.
func (s *System[T]) Unknowns() int { return s.aug.Cols() - 1 }

// Coefficients returns A as a new equations × unknowns matrix.
func (s *System[T]) Coefficients() (*matrix.Matrix[T], error) {
	return s.slice(opCoefficients, 0, s.Unknowns())
}

// SolutionColumn returns b as a new equations × 1 matrix.
func (s *System[T]) SolutionColumn() (*matrix.Matrix[T], error) {
	return s.slice(opSolutionColumn, s.Unknowns(), 1)
}

// slice copies the column range [from, from+n) of the augmented matrix.
func (s *System[T]) slice(op string, from, n int) (*matrix.Matrix[T], error) {
	out, err := matrix.New(s.aug.Arithmetic(), s.aug.Rows(), n, s.aug.Default())
	if err != nil {
		return nil, linearErrorf(op, err)
	}
	s.aug.Each(func(r, c int, v T) {
		if err != nil || c < from || c >= from+n {
			return
		}
		_, err = out.Set(r, c-from, v)
	})
	if err != nil {
		return nil, linearErrorf(op, err)
	}

	return out, nil
}

// Equal reports whether both systems have logically equal augmented matrices.
func (s *System[T]) Equal(o *System[T]) bool {
	if s == nil || o == nil {
		return s == o
	}

	return s.aug.Equal(o.aug)
}

// String renders the augmented matrix.
func (s *System[T]) String() string { return s.aug.String() }
