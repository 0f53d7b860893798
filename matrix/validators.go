// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep operations minimal by delegating shape/nil/index checks here.
//   - Return sentinel errors tagged with the validator name so call sites can
//     wrap uniformly with their own operation tag.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil[T any](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// Complexity: O(1).
func ValidateSameShape[T any](a, b *Matrix[T]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare[T any](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.rows != m.cols {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMultipliable checks a.Cols == b.Rows (both non-nil).
// Complexity: O(1).
func ValidateMultipliable[T any](a, b *Matrix[T]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMultipliable", ErrNilMatrix)
	}
	if a.cols != b.rows {
		return validatorErrorf("ValidateMultipliable", ErrDimensionMismatch)
	}

	return nil
}

// validateShape checks that rows and cols are non-negative and that the
// linear index rows*cols fits in an int.
func validateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("validateShape", ErrBadShape)
	}
	if cols > 0 && rows > maxInt/cols {
		return validatorErrorf("validateShape: overflow", ErrBadShape)
	}

	return nil
}

// validateCell checks 0 <= row < rows and 0 <= col < cols.
func (m *Matrix[T]) validateCell(row, col int) error {
	if m == nil {
		return ErrNilMatrix
	}
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return fmt.Errorf("(%d,%d) in %dx%d: %w", row, col, m.rows, m.cols, ErrOutOfRange)
	}

	return nil
}

// validateRow checks 0 <= row < rows.
func (m *Matrix[T]) validateRow(row int) error {
	if m == nil {
		return ErrNilMatrix
	}
	if row < 0 || row >= m.rows {
		return fmt.Errorf("row %d in %dx%d: %w", row, m.rows, m.cols, ErrOutOfRange)
	}

	return nil
}

// validateCol checks 0 <= col < cols.
func (m *Matrix[T]) validateCol(col int) error {
	if m == nil {
		return ErrNilMatrix
	}
	if col < 0 || col >= m.cols {
		return fmt.Errorf("col %d in %dx%d: %w", col, m.rows, m.cols, ErrOutOfRange)
	}

	return nil
}

// validateIndex checks 0 <= index < rows*cols.
func (m *Matrix[T]) validateIndex(index int) error {
	if m == nil {
		return ErrNilMatrix
	}
	if index < 0 || index >= m.rows*m.cols {
		return fmt.Errorf("index %d in %dx%d: %w", index, m.rows, m.cols, ErrOutOfRange)
	}

	return nil
}
