// SPDX-License-Identifier: MIT
// Constructors beyond New.
//
// Purpose:
//   - Identity / Diagonal for neutral elements and tests.
//   - OfValuesByRows / OfValuesByCols to build from a flat value list.
//   - FromRows for the common [][]T literal form.
//
// All constructors prune values Equal to the default while filling, so the
// resulting sparse map is already minimal.

package matrix

import (
	"github.com/katalvlaran/lvalg/arith"
)

// Identity returns the size×size matrix with the arithmetic's one on the
// diagonal; every other cell holds def.
// Complexity: O(size).
func Identity[T any](a arith.Arithmetic[T], size int, def T) (*Matrix[T], error) {
	m, err := New(a, size, size, def)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	one := a.One()
	for i := 0; i < size; i++ {
		m.put(i*size+i, one)
	}

	return m, nil
}

// Diagonal returns the len(values)×len(values) matrix with values on the
// diagonal and def elsewhere.
func Diagonal[T any](a arith.Arithmetic[T], def T, values ...T) (*Matrix[T], error) {
	n := len(values)
	m, err := New(a, n, n, def)
	if err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}
	for i, v := range values {
		m.put(i*n+i, v)
	}

	return m, nil
}

// OfValuesByRows fills a matrix with `rows` rows in row-major order:
// values[0..cols) is row 0, and so on, with cols = len(values)/rows.
//
// Errors:
//   - ErrBadShape if rows <= 0 while values is non-empty, or rows < 0.
//   - ErrDimensionMismatch if len(values) % rows != 0.
func OfValuesByRows[T any](a arith.Arithmetic[T], def T, rows int, values ...T) (*Matrix[T], error) {
	cols, err := splitCount(rows, len(values))
	if err != nil {
		return nil, matrixErrorf(opOfValuesByRows, err)
	}
	m, err := New(a, rows, cols, def)
	if err != nil {
		return nil, matrixErrorf(opOfValuesByRows, err)
	}
	for idx, v := range values {
		m.put(idx, v)
	}

	return m, nil
}

// OfValuesByCols fills a matrix with `cols` columns in column-major order:
// values[0..rows) is column 0, and so on, with rows = len(values)/cols.
//
// Errors: as OfValuesByRows.
func OfValuesByCols[T any](a arith.Arithmetic[T], def T, cols int, values ...T) (*Matrix[T], error) {
	rows, err := splitCount(cols, len(values))
	if err != nil {
		return nil, matrixErrorf(opOfValuesByCols, err)
	}
	m, err := New(a, rows, cols, def)
	if err != nil {
		return nil, matrixErrorf(opOfValuesByCols, err)
	}
	for k, v := range values {
		// k = col*rows + row
		m.put((k%rows)*cols+k/rows, v)
	}

	return m, nil
}

// FromRows builds a matrix from row slices; every row must have the same
// length. A nil or empty slice yields a 0×0 matrix.
func FromRows[T any](a arith.Arithmetic[T], def T, rows [][]T) (*Matrix[T], error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m, err := New(a, len(rows), cols, def)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, matrixErrorf(opFromRows, ErrDimensionMismatch)
		}
		for j, v := range row {
			m.put(i*cols+j, v)
		}
	}

	return m, nil
}

// splitCount returns n/parts after validating that parts divides n.
func splitCount(parts, n int) (int, error) {
	if parts < 0 {
		return 0, ErrBadShape
	}
	if parts == 0 {
		if n == 0 {
			return 0, nil
		}
		return 0, ErrBadShape
	}
	if n%parts != 0 {
		return 0, ErrDimensionMismatch
	}

	return n / parts, nil
}
