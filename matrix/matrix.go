// SPDX-License-Identifier: MIT

// Package matrix - sparse storage (linear index → value) & safe accessors.
//
// Purpose:
//   - Store only cells that differ from the matrix default; every absent
//     linear index (row*cols + col, row-major, zero-based) logically holds
//     the default value.
//   - Keep the map minimal: a write of the default value REMOVES the entry.
//     The Gauss solver zeroes cells constantly and the determinant's
//     zero-axis search relies on cheap sparsity.
//   - Guarantee safety at the public surface: accessors return errors
//     instead of panicking and validate before writing.
//   - Keep determinism: iteration is always in ascending linear index.
//
// Complexity quicksheet:
//   - New: O(1); Get/Set/Remove: O(1) average; Clone: O(nnz); Each: O(nnz log nnz).

package matrix

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/katalvlaran/lvalg/arith"
)

// maxInt bounds rows*cols so linear indices never overflow.
const maxInt = math.MaxInt

// ---------- error context tags ----------

const (
	ctxGet      = "Get"
	ctxSet      = "Set"
	ctxRemove   = "Remove"
	ctxGetIndex = "GetIndex"
	ctxSetIndex = "SetIndex"
	ctxRow      = "Row"
	ctxCol      = "Col"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is a sparse rows×cols matrix over the numeric type T.
//   - rows, cols are fixed at construction (>= 0, rows*cols fits in int).
//   - def is the logical value of every cell absent from entries.
//   - entries maps linear index → value and never holds a value Equal to def.
//   - a is the arithmetic used for every element operation.
//
// Structural operations (Add, Multiply, Transpose, Inverse, the elementary
// row/column operators) always return a new Matrix. Only Set, SetIndex and
// Remove mutate the receiver.
type Matrix[T any] struct {
	rows, cols int
	def        T
	a          arith.Arithmetic[T]
	entries    map[int]T
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)

// New creates a rows×cols matrix whose cells all hold def.
//
// Errors:
//   - ErrNilArithmetic if a is nil.
//   - ErrBadShape if rows < 0, cols < 0, or rows*cols overflows.
//
// Complexity: O(1).
func New[T any](a arith.Arithmetic[T], rows, cols int, def T) (*Matrix[T], error) {
	if a == nil {
		return nil, matrixErrorf(opNew, ErrNilArithmetic)
	}
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return newUnchecked(a, rows, cols, def), nil
}

// NewZero creates a rows×cols matrix defaulting to the arithmetic's zero.
func NewZero[T any](a arith.Arithmetic[T], rows, cols int) (*Matrix[T], error) {
	if a == nil {
		return nil, matrixErrorf(opNew, ErrNilArithmetic)
	}

	return New(a, rows, cols, a.Zero())
}

// newUnchecked skips validation; callers guarantee a valid shape.
func newUnchecked[T any](a arith.Arithmetic[T], rows, cols int, def T) *Matrix[T] {
	return &Matrix[T]{
		rows:    rows,
		cols:    cols,
		def:     def,
		a:       a,
		entries: make(map[int]T),
	}
}

// Clone returns an independent copy. Only the sparse map is copied: element
// values are treated as immutable numbers.
// Complexity: O(nnz).
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{
		rows:    m.rows,
		cols:    m.cols,
		def:     m.def,
		a:       m.a,
		entries: maps.Clone(m.entries),
	}
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

// Size returns rows*cols.
func (m *Matrix[T]) Size() int { return m.rows * m.cols }

// Default returns the value of every unset cell.
func (m *Matrix[T]) Default() T { return m.def }

// Arithmetic returns the arithmetic the matrix computes with.
func (m *Matrix[T]) Arithmetic() arith.Arithmetic[T] { return m.a }

// Len returns the number of stored (non-default) entries.
func (m *Matrix[T]) Len() int { return len(m.entries) }

// IsSquare reports Rows == Cols.
func (m *Matrix[T]) IsSquare() bool { return m.rows == m.cols }

// Get returns the value at (row, col), or ErrOutOfRange.
func (m *Matrix[T]) Get(row, col int) (T, error) {
	if err := m.validateCell(row, col); err != nil {
		var zero T
		return zero, matrixErrorf(ctxGet, err)
	}

	return m.at(row*m.cols + col), nil
}

// GetIndex returns the value at the row-major linear index.
func (m *Matrix[T]) GetIndex(index int) (T, error) {
	if err := m.validateIndex(index); err != nil {
		var zero T
		return zero, matrixErrorf(ctxGetIndex, err)
	}

	return m.at(index), nil
}

// Set stores v at (row, col) and returns the previous logical value.
// Storing a value Equal to the default removes the entry.
func (m *Matrix[T]) Set(row, col int, v T) (T, error) {
	if err := m.validateCell(row, col); err != nil {
		var zero T
		return zero, matrixErrorf(ctxSet, err)
	}
	idx := row*m.cols + col
	prev := m.at(idx)
	m.put(idx, v)

	return prev, nil
}

// SetIndex is Set addressed by linear index.
func (m *Matrix[T]) SetIndex(index int, v T) (T, error) {
	if err := m.validateIndex(index); err != nil {
		var zero T
		return zero, matrixErrorf(ctxSetIndex, err)
	}
	prev := m.at(index)
	m.put(index, v)

	return prev, nil
}

// Remove resets (row, col) to the default and returns the previous value.
func (m *Matrix[T]) Remove(row, col int) (T, error) {
	if err := m.validateCell(row, col); err != nil {
		var zero T
		return zero, matrixErrorf(ctxRemove, err)
	}
	idx := row*m.cols + col
	prev := m.at(idx)
	delete(m.entries, idx)

	return prev, nil
}

// Row returns a copy of row i as a slice of logical values.
func (m *Matrix[T]) Row(i int) ([]T, error) {
	if err := m.validateRow(i); err != nil {
		return nil, matrixErrorf(ctxRow, err)
	}
	out := make([]T, m.cols)
	for j := range out {
		out[j] = m.at(i*m.cols + j)
	}

	return out, nil
}

// Col returns a copy of column j as a slice of logical values.
func (m *Matrix[T]) Col(j int) ([]T, error) {
	if err := m.validateCol(j); err != nil {
		return nil, matrixErrorf(ctxCol, err)
	}
	out := make([]T, m.rows)
	for i := range out {
		out[i] = m.at(i*m.cols + j)
	}

	return out, nil
}

// Each calls fn for every stored entry in ascending linear-index order.
// Cells holding the default are not visited.
func (m *Matrix[T]) Each(fn func(row, col int, v T)) {
	for _, idx := range m.indices() {
		fn(idx/m.cols, idx%m.cols, m.entries[idx])
	}
}

// Equal reports whether m and o have the same shape and logically equal
// cells under m's arithmetic. Defaults may differ as long as every cell
// agrees.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	if m.a.Equal(m.def, o.def) {
		// Cells absent from both agree; compare the union of stored indices.
		for idx := range m.entries {
			if !m.a.Equal(m.at(idx), o.at(idx)) {
				return false
			}
		}
		for idx := range o.entries {
			if !m.a.Equal(m.at(idx), o.at(idx)) {
				return false
			}
		}
		return true
	}
	for idx := 0; idx < m.Size(); idx++ {
		if !m.a.Equal(m.at(idx), o.at(idx)) {
			return false
		}
	}

	return true
}

// String renders the matrix row by row using the arithmetic's Format.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(m.a.Format(m.at(i*m.cols + j)))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// ---------- internal accessors (no bounds checks) ----------

// at returns the logical value at a valid linear index.
func (m *Matrix[T]) at(idx int) T {
	if v, ok := m.entries[idx]; ok {
		return v
	}

	return m.def
}

// put stores v at a valid linear index, pruning default values.
func (m *Matrix[T]) put(idx int, v T) {
	if m.a.Equal(v, m.def) {
		delete(m.entries, idx)
		return
	}
	m.entries[idx] = v
}

// indices returns the stored linear indices in ascending order.
func (m *Matrix[T]) indices() []int {
	return slices.Sorted(maps.Keys(m.entries))
}

// zeroDefault reports whether absent cells are the arithmetic's zero, which
// enables the sparse fast paths.
func (m *Matrix[T]) zeroDefault() bool {
	return m.a.IsZero(m.def)
}
