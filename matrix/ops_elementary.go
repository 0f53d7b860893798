// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Elementary row/column operators used by elimination solvers.
//   - Every operator is copy-on-write: the receiver is never mutated and a
//     fresh matrix is returned, so solvers chain them explicitly.
//
// Determinism & Performance:
//   - Row operators touch only the affected rows; cost is O(cols) per call
//     plus one O(nnz) clone of the sparse map.
//   - Results written through put(), so values that become the default are
//     pruned immediately (eliminated cells disappear from the map).

package matrix

// SwapRows returns a copy of m with rows r1 and r2 exchanged.
// Swapping a row with itself yields an equal copy.
func (m *Matrix[T]) SwapRows(r1, r2 int) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSwapRows, err)
	}
	if err := m.validateRow(r1); err != nil {
		return nil, matrixErrorf(opSwapRows, err)
	}
	if err := m.validateRow(r2); err != nil {
		return nil, matrixErrorf(opSwapRows, err)
	}

	res := m.Clone()
	if r1 == r2 {
		return res, nil
	}
	var a, b int
	for j := 0; j < m.cols; j++ {
		a, b = r1*m.cols+j, r2*m.cols+j
		res.put(a, m.at(b))
		res.put(b, m.at(a))
	}

	return res, nil
}

// SwapCols returns a copy of m with columns c1 and c2 exchanged.
func (m *Matrix[T]) SwapCols(c1, c2 int) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSwapCols, err)
	}
	if err := m.validateCol(c1); err != nil {
		return nil, matrixErrorf(opSwapCols, err)
	}
	if err := m.validateCol(c2); err != nil {
		return nil, matrixErrorf(opSwapCols, err)
	}

	res := m.Clone()
	if c1 == c2 {
		return res, nil
	}
	var a, b int
	for i := 0; i < m.rows; i++ {
		a, b = i*m.cols+c1, i*m.cols+c2
		res.put(a, m.at(b))
		res.put(b, m.at(a))
	}

	return res, nil
}

// MultiplyRow returns a copy of m with every cell of row multiplied by
// factor. A zero factor zeroes the row, a factor of one returns a plain copy.
func (m *Matrix[T]) MultiplyRow(row int, factor T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMultiplyRow, err)
	}
	if err := m.validateRow(row); err != nil {
		return nil, matrixErrorf(opMultiplyRow, err)
	}

	res := m.Clone()
	switch {
	case m.a.IsZero(factor):
		zero := m.a.Zero()
		for j := 0; j < m.cols; j++ {
			res.put(row*m.cols+j, zero)
		}
	case m.a.Equal(factor, m.a.One()):
		// copy only
	default:
		var idx int
		for j := 0; j < m.cols; j++ {
			idx = row*m.cols + j
			res.put(idx, m.a.Product(m.at(idx), factor))
		}
	}

	return res, nil
}

// AddRowMultipleTimes returns a copy of m where target += source·factor.
// When target == source the row is scaled by (1 + factor).
func (m *Matrix[T]) AddRowMultipleTimes(target, source int, factor T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAddRowMultiple, err)
	}
	if err := m.validateRow(target); err != nil {
		return nil, matrixErrorf(opAddRowMultiple, err)
	}
	if err := m.validateRow(source); err != nil {
		return nil, matrixErrorf(opAddRowMultiple, err)
	}
	if target == source {
		return m.MultiplyRow(target, m.a.Sum(m.a.One(), factor))
	}

	res := m.Clone()
	if m.a.IsZero(factor) {
		return res, nil
	}
	var src, dst int
	for j := 0; j < m.cols; j++ {
		src, dst = source*m.cols+j, target*m.cols+j
		res.put(dst, m.a.Sum(m.at(dst), m.a.Product(m.at(src), factor)))
	}

	return res, nil
}

// AppendCol returns [m | column]: a rows×(cols+c) matrix where c is the
// column count of column (normally 1). Row counts must match.
func (m *Matrix[T]) AppendCol(column *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAppendCols, err)
	}
	if err := ValidateNotNil(column); err != nil {
		return nil, matrixErrorf(opAppendCols, err)
	}
	if m.rows != column.rows {
		return nil, matrixErrorf(opAppendCols, ErrDimensionMismatch)
	}
	if err := validateShape(m.rows, m.cols+column.cols); err != nil {
		return nil, matrixErrorf(opAppendCols, err)
	}

	cols := m.cols + column.cols
	res := newUnchecked(m.a, m.rows, cols, m.def)
	for idx, v := range m.entries {
		res.entries[(idx/m.cols)*cols+idx%m.cols] = v
	}
	var i, j int
	for i = 0; i < column.rows; i++ {
		for j = 0; j < column.cols; j++ {
			res.put(i*cols+m.cols+j, column.at(i*column.cols+j))
		}
	}

	return res, nil
}
