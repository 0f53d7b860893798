// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (possibly wrapped) and
// tests MUST check them via errors.Is. No operation panics on user-triggered
// error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Operations
// wrap the sentinel with their tag ("Multiply: matrix: dimension mismatch");
// callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver/argument -> shape -> index -> dimension mismatch.
// "No inverse" and degenerate systems are NOT errors.

var (
	// ErrBadShape is returned when requested dimensions are negative or when
	// rows*cols would overflow the linear index space.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row, column or linear index is outside
	// [0,rows)×[0,cols) (or [0,rows*cols)).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add with different shapes, or Multiply where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required. It wraps
	// ErrDimensionMismatch so both sentinels match.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrDimensionMismatch)

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilArithmetic indicates that a matrix was requested without an arithmetic.
	ErrNilArithmetic = errors.New("matrix: nil arithmetic")
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
