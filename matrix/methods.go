// SPDX-License-Identifier: MIT
// Package matrix provides the algebraic operations on Matrix: element-wise
// addition, scalar scaling, matrix multiplication and transpose. All
// operations perform strict fail-fast validation, never mutate their
// operands, and return clear errors on dimension mismatches.
//
// Every element operation goes through the matrix arithmetic; the additive
// identity used to seed sums is arithmetic.Zero(), never a literal 0.

package matrix

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew              = "New"
	opIdentity         = "Identity"
	opDiagonal         = "Diagonal"
	opOfValuesByRows   = "OfValuesByRows"
	opOfValuesByCols   = "OfValuesByCols"
	opFromRows         = "FromRows"
	opAdd              = "Add"
	opScale            = "Scale"
	opMultiply         = "Multiply"
	opMultiplyTolerant = "MultiplyTolerant"
	opTranspose        = "Transpose"
	opDeterminant      = "Determinant"
	opCofactor         = "Cofactor"
	opSubMatrix        = "SubMatrix"
	opInverse          = "Inverse"
	opSwapRows         = "SwapRows"
	opSwapCols         = "SwapCols"
	opMultiplyRow      = "MultiplyRow"
	opAddRowMultiple   = "AddRowMultipleTimes"
	opAppendCols       = "AppendCol"
	opMap              = "Map"
	opLift             = "Lift"
	opToGonum          = "ToGonum"
	opFromGonum        = "FromGonum"
)

// Add returns a new matrix holding the cell-wise sum m + o.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Prepare): allocate the result with m's default.
// Stage 3 (Execute): sparse path over the union of stored indices when both
// defaults are zero, full cell loop otherwise.
// Stage 4 (Finalize): sums equal to the default are pruned by put.
// Complexity: O(nnz(m)+nnz(o)) sparse, O(r·c) otherwise.
func (m *Matrix[T]) Add(o *Matrix[T]) (*Matrix[T], error) {
	// Stage 1: Validate
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	if err := ValidateSameShape(m, o); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	// Stage 2: Allocate result
	res := newUnchecked(m.a, m.rows, m.cols, m.def)

	// Stage 3: Sparse fast-path
	if m.zeroDefault() && o.zeroDefault() {
		for idx, v := range m.entries {
			res.put(idx, m.a.Sum(v, o.at(idx)))
		}
		for idx, v := range o.entries {
			if _, seen := m.entries[idx]; seen {
				continue
			}
			res.put(idx, m.a.Sum(m.at(idx), v))
		}

		return res, nil
	}

	// Fallback: every cell
	for idx := 0; idx < m.Size(); idx++ {
		res.put(idx, m.a.Sum(m.at(idx), o.at(idx)))
	}

	// Stage 4: Return result
	return res, nil
}

// Scale returns a new matrix where every cell is multiplied by s.
// Complexity: O(nnz) when the default is zero, O(r·c) otherwise.
func (m *Matrix[T]) Scale(s T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := newUnchecked(m.a, m.rows, m.cols, m.def)
	if m.zeroDefault() {
		for idx, v := range m.entries {
			res.put(idx, m.a.Product(v, s))
		}
		return res, nil
	}
	for idx := 0; idx < m.Size(); idx++ {
		res.put(idx, m.a.Product(m.at(idx), s))
	}

	return res, nil
}

// Multiply performs the matrix product m × o.
// Stage 1 (Validate): nil-check and inner-dimension match (m.Cols == o.Rows).
// Stage 2 (Prepare): allocate the rows(m)×cols(o) result with m's default.
// Stage 3 (Execute): when both defaults are zero, only pairs of stored
// entries contribute (row-bucketed o); otherwise the i-j-k triple loop.
// Every accumulator is seeded with arithmetic.Zero().
// Complexity: O(nnz(m)·avgRowNNZ(o)) sparse, O(r·n·c) otherwise.
func (m *Matrix[T]) Multiply(o *Matrix[T]) (*Matrix[T], error) {
	// Stage 1: Validate
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	if err := ValidateMultipliable(m, o); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	// Stage 2: Allocate result
	res := newUnchecked(m.a, m.rows, o.cols, m.def)

	// Stage 3: Sparse fast-path
	if m.zeroDefault() && o.zeroDefault() {
		type cell struct {
			col int
			v   T
		}
		// bucket o's stored entries by row, columns ascending
		byRow := make(map[int][]cell, o.rows)
		for _, idx := range o.indices() {
			k := idx / o.cols
			byRow[k] = append(byRow[k], cell{col: idx % o.cols, v: o.entries[idx]})
		}
		acc := make(map[int]T)
		for _, idx := range m.indices() {
			i, k := idx/m.cols, idx%m.cols
			av := m.entries[idx]
			for _, bc := range byRow[k] {
				r := i*o.cols + bc.col
				cur, ok := acc[r]
				if !ok {
					cur = m.a.Zero()
				}
				acc[r] = m.a.Sum(cur, m.a.Product(av, bc.v))
			}
		}
		for r, v := range acc {
			res.put(r, v)
		}

		return res, nil
	}

	// Fallback: generic i-j-k triple loop
	var i, j, k int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < o.cols; j++ {
			sum := m.a.Zero()
			for k = 0; k < m.cols; k++ {
				sum = m.a.Sum(sum, m.a.Product(m.at(i*m.cols+k), o.at(k*o.cols+j)))
			}
			res.put(i*o.cols+j, sum)
		}
	}

	// Stage 4: Return result
	return res, nil
}

// MultiplyTolerant computes m × o when the shapes align, otherwise o × m.
// It fails with ErrDimensionMismatch only if neither order aligns. Useful
// for vectors stored as 1×n or n×1 matrices when the orientation is unknown.
func (m *Matrix[T]) MultiplyTolerant(o *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMultiplyTolerant, err)
	}
	if err := ValidateNotNil(o); err != nil {
		return nil, matrixErrorf(opMultiplyTolerant, err)
	}
	switch {
	case m.cols == o.rows:
		return m.Multiply(o)
	case o.cols == m.rows:
		return o.Multiply(m)
	default:
		return nil, matrixErrorf(opMultiplyTolerant, ErrDimensionMismatch)
	}
}

// Transpose returns a new cols×rows matrix with cell(c,r) = m.cell(r,c).
// Only stored entries move; the default is shared.
// Complexity: O(nnz).
func (m *Matrix[T]) Transpose() (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res := newUnchecked(m.a, m.cols, m.rows, m.def)
	for idx, v := range m.entries {
		r, c := idx/m.cols, idx%m.cols
		res.entries[c*m.rows+r] = v
	}

	return res, nil
}
