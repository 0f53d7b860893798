// SPDX-License-Identifier: MIT
// Package linear: Gauss-Jordan solver.
//
// Phases (each logged at Debug):
//   1. prepare          - per pivot i: swap a non-zero entry into (i,i) (rows
//                         first, then columns, recording column swaps),
//                         normalize the pivot to one, eliminate below; then
//                         move all-zero rows to the bottom.
//   2. sort             - stable sort of rows by leading coefficient column.
//   3. solve-bottom-up  - from the last pivot row up, eliminate each pivot
//                         column from the rows above it.
//   4. restore-columns  - pop the column-swap stack, undoing every swap.
//   5. classify         - Unsolvable, Infinite or Single.
//
// Determinism:
//   - Pivot searches scan in ascending order; sorts are stable.
//   - All elementary steps are copy-on-write matrix operators on a private
//     working copy; the System is never touched.
//
// Complexity: O(min(r,c) · r) row operations, each O(c + nnz).

package linear

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvalg/arith"
	"github.com/katalvlaran/lvalg/matrix"
)

// Phase names used in log records.
const (
	phasePrepare        = "prepare"
	phaseSort           = "sort"
	phaseSolveBottomUp  = "solve-bottom-up"
	phaseRestoreColumns = "restore-columns"
	phaseClassify       = "classify"
)

// GaussSolver solves one System by Gauss-Jordan elimination.
type GaussSolver[T any] struct {
	system *System[T]
	log    *zap.Logger
}

// NewGaussSolver binds a solver to system.
func NewGaussSolver[T any](system *System[T], opts ...Option) (*GaussSolver[T], error) {
	if system == nil {
		return nil, linearErrorf(opNewSolver, ErrNilSystem)
	}
	o := gatherOptions(opts...)

	return &GaussSolver[T]{system: system, log: o.logger}, nil
}

// Solve runs every phase on a fresh working copy and classifies the result.
// Degenerate systems are reported through Solution.Kind; the error is
// non-nil only when the arithmetic fails (e.g. arith.ErrUnsupported).
func (s *GaussSolver[T]) Solve() (Solution[T], error) {
	g := s.reduce()
	if g.err != nil {
		return Solution[T]{}, linearErrorf(opSolve, g.err)
	}
	sol, err := g.classify(s.system)
	if err != nil {
		return Solution[T]{}, linearErrorf(opSolve, err)
	}
	s.log.Debug("gauss phase",
		zap.String("phase", phaseClassify),
		zap.Stringer("kind", sol.Kind()),
	)

	return sol, nil
}

// Reduce returns the fully reduced augmented matrix with the original
// column order restored (phases 1 through 4).
func (s *GaussSolver[T]) Reduce() (*matrix.Matrix[T], error) {
	g := s.reduce()
	if g.err != nil {
		return nil, linearErrorf(opReduce, g.err)
	}

	return g.w, nil
}

// Solve is NewGaussSolver(system, opts...).Solve().
func Solve[T any](system *System[T], opts ...Option) (Solution[T], error) {
	gs, err := NewGaussSolver(system, opts...)
	if err != nil {
		return Solution[T]{}, err
	}

	return gs.Solve()
}

// reduce runs phases 1-4 and returns the working state.
func (s *GaussSolver[T]) reduce() *gaussRun[T] {
	aug := s.system.Augmented()
	g := &gaussRun[T]{
		a:    aug.Arithmetic(),
		w:    aug,
		rows: aug.Rows(),
		cols: aug.Cols(),
	}
	steps := []struct {
		name string
		run  func()
	}{
		{phasePrepare, g.prepare},
		{phaseSort, g.sortByLeading},
		{phaseSolveBottomUp, g.solveBottomUp},
		{phaseRestoreColumns, g.restoreColumns},
	}
	for _, st := range steps {
		st.run()
		if g.err != nil {
			s.log.Debug("gauss phase failed", zap.String("phase", st.name), zap.Error(g.err))
			return g
		}
		s.log.Debug("gauss phase",
			zap.String("phase", st.name),
			zap.Int("rows", g.rows),
			zap.Int("cols", g.cols),
			zap.Int("swaps", len(g.swaps)),
			zap.Int("nnz", g.w.Len()),
		)
	}

	return g
}

// colSwap is one entry of the column-swap undo stack.
type colSwap struct{ c1, c2 int }

// gaussRun is the per-call working state. The first failing step sets err
// and turns every later step into a no-op.
type gaussRun[T any] struct {
	a          arith.Arithmetic[T]
	w          *matrix.Matrix[T]
	rows, cols int
	swaps      []colSwap
	err        error
}

// at reads a working cell; indices are bounded by the working shape.
func (g *gaussRun[T]) at(r, c int) T {
	v, _ := g.w.Get(r, c)
	return v
}

// apply installs the result of an elementary operator.
func (g *gaussRun[T]) apply(w *matrix.Matrix[T], err error) {
	if g.err != nil {
		return
	}
	if err != nil {
		g.err = err
		return
	}
	g.w = w
}

// unknowns is the coefficient column count.
func (g *gaussRun[T]) unknowns() int { return g.cols - 1 }

// leading returns the first non-zero coefficient column of row r, or -1.
func (g *gaussRun[T]) leading(r int) int {
	for c := 0; c < g.unknowns(); c++ {
		if !g.a.IsZero(g.at(r, c)) {
			return c
		}
	}

	return -1
}

// isZeroRow reports whether every cell of row r, b included, is zero.
func (g *gaussRun[T]) isZeroRow(r int) bool {
	return g.leading(r) < 0 && g.a.IsZero(g.at(r, g.unknowns()))
}

// normalize scales row r so that (r,c) becomes one.
func (g *gaussRun[T]) normalize(r, c int) {
	p := g.at(r, c)
	if g.a.Equal(p, g.a.One()) {
		return
	}
	inv, err := g.a.Quotient(g.a.One(), p)
	if err != nil {
		g.err = err
		return
	}
	if g.a.IsZero(g.a.Product(p, inv)) {
		// truncating division (e.g. big.Int) collapsed the reciprocal;
		// lift to rationals first
		g.err = fmt.Errorf("%s: inexact reciprocal of pivot %v: %w", arithName(g.a), p, arith.ErrUnsupported)
		return
	}
	g.apply(g.w.MultiplyRow(r, inv))
}

// arithName returns the adapter name when a exposes one, else its type.
func arithName[T any](a arith.Arithmetic[T]) string {
	if n, ok := a.(interface{ Name() string }); ok {
		return n.Name()
	}

	return fmt.Sprintf("%T", a)
}

// eliminate zeroes (r,c) using pivot row p, whose (p,c) is one.
func (g *gaussRun[T]) eliminate(r, p, c int) {
	v := g.at(r, c)
	if g.a.IsZero(v) {
		return
	}
	g.apply(g.w.AddRowMultipleTimes(r, p, g.a.Negate(v)))
}

// prepare is phase 1.
func (g *gaussRun[T]) prepare() {
	pivots := min(g.rows, g.unknowns())
	for i := 0; i < pivots && g.err == nil; i++ {
		if g.a.IsZero(g.at(i, i)) {
			g.swapToNonZero(i)
		}
		if g.a.IsZero(g.at(i, i)) {
			// genuine zero row, left for classification
			continue
		}
		g.normalize(i, i)
		for r := i + 1; r < g.rows && g.err == nil; r++ {
			g.eliminate(r, i, i)
		}
	}

	g.stableSortRows(func(r int) int {
		if g.isZeroRow(r) {
			return 1
		}
		return 0
	})
}

// swapToNonZero brings a non-zero entry to (i,i): first from a row below,
// otherwise from a column to the right (pushed on the swap stack).
func (g *gaussRun[T]) swapToNonZero(i int) {
	for r := i + 1; r < g.rows; r++ {
		if !g.a.IsZero(g.at(r, i)) {
			g.apply(g.w.SwapRows(i, r))
			return
		}
	}
	for c := i + 1; c < g.unknowns(); c++ {
		if !g.a.IsZero(g.at(i, c)) {
			g.apply(g.w.SwapCols(i, c))
			g.swaps = append(g.swaps, colSwap{c1: i, c2: c})
			return
		}
	}
}

// sortByLeading is phase 2. Rows without coefficients sort after all pivot
// rows; of those, rows with a non-zero b come before all-zero rows.
func (g *gaussRun[T]) sortByLeading() {
	g.stableSortRows(func(r int) int {
		if lc := g.leading(r); lc >= 0 {
			return lc
		}
		if g.isZeroRow(r) {
			return g.cols
		}
		return g.unknowns()
	})
}

// stableSortRows orders rows by key with adjacent swaps (insertion sort),
// keeping the relative order of equal keys.
func (g *gaussRun[T]) stableSortRows(key func(r int) int) {
	keys := make([]int, g.rows)
	for r := range keys {
		keys[r] = key(r)
	}
	for i := 1; i < g.rows && g.err == nil; i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
			g.apply(g.w.SwapRows(j-1, j))
		}
	}
}

// solveBottomUp is phase 3.
func (g *gaussRun[T]) solveBottomUp() {
	for p := g.rows - 1; p >= 0 && g.err == nil; p-- {
		lc := g.leading(p)
		if lc < 0 {
			continue
		}
		g.normalize(p, lc)
		for r := p - 1; r >= 0 && g.err == nil; r-- {
			g.eliminate(r, p, lc)
		}
	}
}

// restoreColumns is phase 4: pop the swap stack.
func (g *gaussRun[T]) restoreColumns() {
	for k := len(g.swaps) - 1; k >= 0 && g.err == nil; k-- {
		sw := g.swaps[k]
		g.apply(g.w.SwapCols(sw.c1, sw.c2))
	}
	g.swaps = g.swaps[:0]
}

// classify is phase 5.
func (g *gaussRun[T]) classify(system *System[T]) (Solution[T], error) {
	n := g.unknowns()
	rank := 0
	unique := true
	// pivotRow[c] is the row whose only non-zero coefficient is column c.
	pivotRow := make([]int, n)
	for c := range pivotRow {
		pivotRow[c] = -1
	}

	for r := 0; r < g.rows; r++ {
		nonZero, last := 0, -1
		for c := 0; c < n; c++ {
			if !g.a.IsZero(g.at(r, c)) {
				nonZero++
				last = c
			}
		}
		if nonZero == 0 {
			if !g.a.IsZero(g.at(r, n)) {
				return NoSolution(system), nil
			}
			continue
		}
		rank++
		if nonZero > 1 || pivotRow[last] >= 0 {
			unique = false
			continue
		}
		pivotRow[last] = r
	}

	if rank < n || !unique {
		return InfiniteSolutions(system), nil
	}

	values := make([]T, n)
	for c, r := range pivotRow {
		if r < 0 {
			return InfiniteSolutions(system), nil
		}
		v, err := g.a.Quotient(g.at(r, n), g.at(r, c))
		if err != nil {
			return Solution[T]{}, err
		}
		values[c] = v
	}

	return SingleSolution(system, values), nil
}
