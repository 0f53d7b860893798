// SPDX-License-Identifier: MIT

// Package matrix - exact linear algebra kernels: determinant, cofactors,
// inverse (adjugate / determinant) and diagonal checks.
//
// Purpose:
//   - Compute determinants and inverses purely through the arithmetic, so
//     exact arithmetics (rationals, integers) yield exact results.
//   - Exploit structural zeros: the recursive determinant expands along the
//     row or column with the most zeros and skips zero cells entirely.
//
// Determinism & Policy:
//   - Closed forms for sizes 1, 2 and 3 (Leibniz, 6 terms for 3×3).
//   - Size >= 4 uses sparsity-aware cofactor expansion; ties favor rows and
//     then the lowest index.
//   - Zero detection uses Arithmetic.IsZero everywhere.
//   - A singular matrix has no inverse: Inverse reports ok == false, not an error.
//
// Complexity:
//   - Determinant: O(n!) worst case for dense n >= 4 (no asymptotic gain on
//     dense input); each all-zero axis short-circuits a whole subtree.
//   - Inverse: n² cofactors, each an (n-1)-size determinant.

package matrix

// Determinant returns det(m).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (matches ErrDimensionMismatch).
//
// A 0×0 matrix yields the matrix default value.
func (m *Matrix[T]) Determinant() (T, error) {
	if err := ValidateSquare(m); err != nil {
		var zero T
		return zero, matrixErrorf(opDeterminant, err)
	}

	return m.determinant(), nil
}

// determinant dispatches on size; m must be square.
func (m *Matrix[T]) determinant() T {
	a := m.a
	switch m.rows {
	case 0:
		return m.def
	case 1:
		return m.at(0)
	case 2:
		// ad - bc
		return a.Difference(
			a.Product(m.at(0), m.at(3)),
			a.Product(m.at(1), m.at(2)),
		)
	case 3:
		// | a b c |
		// | d e f |  = aei + bfg + cdh - ceg - bdi - afh
		// | g h i |
		av, bv, cv := m.at(0), m.at(1), m.at(2)
		dv, ev, fv := m.at(3), m.at(4), m.at(5)
		gv, hv, iv := m.at(6), m.at(7), m.at(8)
		plus := a.Sum3(a.Product3(av, ev, iv), a.Product3(bv, fv, gv), a.Product3(cv, dv, hv))
		minus := a.Sum3(a.Product3(cv, ev, gv), a.Product3(bv, dv, iv), a.Product3(av, fv, hv))
		return a.Difference(plus, minus)
	default:
		return m.determinantRecursive()
	}
}

// determinantRecursive performs Laplace expansion along the axis (row or
// column) holding the most zero cells and only over that axis' non-zero cells.
// Stage 1: count zero cells per row and per column.
// Stage 2: pick the best row and the best column; the row wins ties.
// Stage 3: an all-zero axis means det == 0 (no recursion).
// Stage 4: sum value·cofactor over the non-zero cells of the axis.
func (m *Matrix[T]) determinantRecursive() T {
	a := m.a
	n := m.rows

	// Stage 1: zero histograms
	zeroRows := make([]int, n)
	zeroCols := make([]int, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if a.IsZero(m.at(i*n + j)) {
				zeroRows[i]++
				zeroCols[j]++
			}
		}
	}

	// Stage 2: best axis (first maximum wins)
	bestRow, bestCol := 0, 0
	for i = 1; i < n; i++ {
		if zeroRows[i] > zeroRows[bestRow] {
			bestRow = i
		}
		if zeroCols[i] > zeroCols[bestCol] {
			bestCol = i
		}
	}
	byRow := zeroRows[bestRow] >= zeroCols[bestCol]

	// Stage 3: all-zero axis
	if (byRow && zeroRows[bestRow] == n) || (!byRow && zeroCols[bestCol] == n) {
		return a.Zero()
	}

	// Stage 4: expansion over non-zero cells
	det := a.Zero()
	var row, col int
	for k := 0; k < n; k++ {
		if byRow {
			row, col = bestRow, k
		} else {
			row, col = k, bestCol
		}
		v := m.at(row*n + col)
		if a.IsZero(v) {
			continue
		}
		det = a.Sum(det, a.Product(v, m.cofactor(row, col)))
	}

	return det
}

// Cofactor returns (-1)^(row+col) · det(SubMatrix(row, col)).
// The cofactor of a 1×1 matrix is the arithmetic's one.
func (m *Matrix[T]) Cofactor(row, col int) (T, error) {
	var zero T
	if err := ValidateSquare(m); err != nil {
		return zero, matrixErrorf(opCofactor, err)
	}
	if err := m.validateCell(row, col); err != nil {
		return zero, matrixErrorf(opCofactor, err)
	}

	return m.cofactor(row, col), nil
}

// cofactor assumes a square m and a valid cell.
func (m *Matrix[T]) cofactor(row, col int) T {
	var minor T
	if m.rows == 1 {
		minor = m.a.One()
	} else {
		minor = m.subMatrix(row, col).determinant()
	}
	if (row+col)%2 == 1 {
		return m.a.Negate(minor)
	}

	return minor
}

// SubMatrix returns m without the given row and column; the remaining
// cells are reindexed contiguously.
func (m *Matrix[T]) SubMatrix(row, col int) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSubMatrix, err)
	}
	if err := m.validateCell(row, col); err != nil {
		return nil, matrixErrorf(opSubMatrix, err)
	}

	return m.subMatrix(row, col), nil
}

// subMatrix assumes a valid cell.
func (m *Matrix[T]) subMatrix(row, col int) *Matrix[T] {
	cols := m.cols - 1
	res := newUnchecked(m.a, m.rows-1, cols, m.def)
	for idx, v := range m.entries {
		r, c := idx/m.cols, idx%m.cols
		if r == row || c == col {
			continue
		}
		if r > row {
			r--
		}
		if c > col {
			c--
		}
		res.entries[r*cols+c] = v
	}

	return res
}

// Inverse returns m⁻¹ = adj(m) / det(m), where adj(m) is the transposed
// matrix of cofactors.
// Stage 1 (Validate): non-nil and square.
// Stage 2 (Determinant): a zero determinant means no inverse (ok == false).
// Stage 3 (Cofactors): cofactor(r,c) for every cell.
// Stage 4 (Adjugate): transpose, then scale by Quotient(one, det).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - The arithmetic's Quotient error (e.g. arith.ErrUnsupported).
func (m *Matrix[T]) Inverse() (*Matrix[T], bool, error) {
	// Stage 1: Validate
	if err := ValidateSquare(m); err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}

	// Stage 2: Determinant
	det := m.determinant()
	if m.a.IsZero(det) {
		return nil, false, nil
	}
	invDet, err := m.a.Quotient(m.a.One(), det)
	if err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}

	// Stage 3: Cofactor matrix
	n := m.rows
	cof := newUnchecked(m.a, n, n, m.def)
	var r, c int
	for r = 0; r < n; r++ {
		for c = 0; c < n; c++ {
			cof.put(r*n+c, m.cofactor(r, c))
		}
	}

	// Stage 4: Adjugate scaled by 1/det
	adj, err := cof.Transpose()
	if err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}
	inv, err := adj.Scale(invDet)
	if err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}

	return inv, true, nil
}

// IsDiagonal reports whether m is square and every off-diagonal cell is zero
// under the arithmetic.
func (m *Matrix[T]) IsDiagonal() bool {
	if m == nil || m.rows != m.cols {
		return false
	}
	if m.zeroDefault() {
		for idx, v := range m.entries {
			if idx/m.cols != idx%m.cols && !m.a.IsZero(v) {
				return false
			}
		}
		return true
	}
	n := m.rows
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && !m.a.IsZero(m.at(i*n+j)) {
				return false
			}
		}
	}

	return true
}
