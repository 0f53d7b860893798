// SPDX-License-Identifier: MIT
package linear_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvalg/arith"
	"github.com/katalvlaran/lvalg/linear"
	"github.com/katalvlaran/lvalg/matrix"
)

func TestGauss_Classification(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		rows   [][]int64
		kind   linear.Kind
		values []string
	}{
		{
			name:   "single 3x3",
			rows:   [][]int64{{1, 2, 3, 2}, {1, 1, 1, 2}, {3, 3, 1, 0}},
			kind:   linear.Single,
			values: []string{"5", "-6", "3"},
		},
		{
			name: "infinite dependent rows",
			rows: [][]int64{{1, -2, 3, 0}, {-2, 4, -6, 0}, {-1, 2, -3, 0}},
			kind: linear.Infinite,
		},
		{
			name: "unsolvable overdetermined",
			rows: [][]int64{{3, 2, -1}, {4, 1, -2}, {6, 4, 3}},
			kind: linear.Unsolvable,
		},
		{
			name: "fewer rows than unknowns",
			rows: [][]int64{{1, 0, 0, 1}},
			kind: linear.Infinite,
		},
		{
			name:   "row swap needed",
			rows:   [][]int64{{0, 1, 2}, {1, 0, 3}},
			kind:   linear.Single,
			values: []string{"3", "2"},
		},
		{
			name:   "fractional result",
			rows:   [][]int64{{2, 1, 3}, {1, 3, 5}},
			kind:   linear.Single,
			values: []string{"4/5", "7/5"},
		},
		{
			name:   "overdetermined consistent",
			rows:   [][]int64{{1, 1, 3}, {1, -1, 1}, {2, 0, 4}},
			kind:   linear.Single,
			values: []string{"2", "1"},
		},
		{
			name: "zero row in the middle",
			rows: [][]int64{{1, 1, 2}, {0, 0, 0}, {0, 0, 5}},
			kind: linear.Unsolvable,
		},
		{
			name: "column swap",
			rows: [][]int64{{1, 1, 1, 6}, {0, 0, 1, 3}, {0, 0, 2, 6}},
			kind: linear.Infinite,
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			system := ratSystem(t, tc.rows)
			sol, err := linear.Solve(system)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, sol.Kind(), sol.String())
			if tc.kind == linear.Single {
				assert.Equal(t, tc.values, ratStrings(sol.Values()))
			}
			assert.Same(t, system, sol.System())
		})
	}
}

func TestGauss_Idempotent(t *testing.T) {
	t.Parallel()

	system := ratSystem(t, [][]int64{{1, 2, 3, 2}, {1, 1, 1, 2}, {3, 3, 1, 0}})
	before := system.Augmented()

	first, err := linear.Solve(system)
	require.NoError(t, err)
	second, err := linear.Solve(system)
	require.NoError(t, err)
	assert.True(t, first.Equal(second))

	gs, err := linear.NewGaussSolver(system)
	require.NoError(t, err)
	third, err := gs.Solve()
	require.NoError(t, err)
	fourth, err := gs.Solve()
	require.NoError(t, err)
	assert.True(t, third.Equal(fourth))
	assert.True(t, first.Equal(fourth))

	// the system itself is never reduced in place
	assert.True(t, system.Augmented().Equal(before))
}

func TestGauss_ColumnSwapRestoresOrder(t *testing.T) {
	t.Parallel()

	system := ratSystem(t, [][]int64{{1, 1, 1, 6}, {0, 0, 1, 3}, {0, 0, 2, 6}})
	gs, err := linear.NewGaussSolver(system)
	require.NoError(t, err)

	reduced, err := gs.Reduce()
	require.NoError(t, err)
	// x0 + x1 = 3 and x2 = 3, in the original variable order
	assert.True(t, reduced.Equal(ratMatrix(t, [][]int64{{1, 1, 0, 3}, {0, 0, 1, 3}, {0, 0, 0, 0}})),
		reduced.String())
}

func TestGauss_ReduceIsReducedEchelon(t *testing.T) {
	t.Parallel()

	system := ratSystem(t, [][]int64{{0, 2, 4}, {3, 0, 6}, {0, 0, 0}})
	gs, err := linear.NewGaussSolver(system)
	require.NoError(t, err)

	reduced, err := gs.Reduce()
	require.NoError(t, err)
	assert.True(t, reduced.Equal(ratMatrix(t, [][]int64{{1, 0, 2}, {0, 1, 2}, {0, 0, 0}})), reduced.String())
}

func TestGauss_Float64WithTolerance(t *testing.T) {
	t.Parallel()

	f := arith.NewFloat64(arith.WithTolerance(1e-12))
	m, err := matrix.FromRows[float64](f, 0, [][]float64{
		{0.1, 0.2, 0.3},
		{0.3, 0.4, 0.7},
	})
	require.NoError(t, err)
	system, err := linear.OfAugmented(m)
	require.NoError(t, err)

	sol, err := linear.Solve(system)
	require.NoError(t, err)
	require.Equal(t, linear.Single, sol.Kind())
	vals := sol.Values()
	assert.InDelta(t, 1.0, vals[0], 1e-9)
	assert.InDelta(t, 1.0, vals[1], 1e-9)

	// a dependent float system collapses to Infinite thanks to the tolerance
	dep, err := matrix.FromRows[float64](f, 0, [][]float64{
		{0.1, 0.3, 0.5},
		{0.2, 0.6, 1.0},
	})
	require.NoError(t, err)
	depSystem, err := linear.OfAugmented(dep)
	require.NoError(t, err)
	sol, err = linear.Solve(depSystem)
	require.NoError(t, err)
	assert.Equal(t, linear.Infinite, sol.Kind())
}

func TestGauss_Complex(t *testing.T) {
	t.Parallel()

	c := arith.NewComplex()
	m, err := matrix.FromRows[complex128](c, 0, [][]complex128{
		{1, 1i, 1 + 1i},
		{1i, 1, 1 + 1i},
	})
	require.NoError(t, err)
	system, err := linear.OfAugmented(m)
	require.NoError(t, err)

	sol, err := linear.Solve(system)
	require.NoError(t, err)
	require.Equal(t, linear.Single, sol.Kind())
	for _, v := range sol.Values() {
		assert.InDelta(t, 1.0, real(v), 1e-12)
		assert.InDelta(t, 0.0, imag(v), 1e-12)
	}
}

func TestGauss_IntegersLiftedToRationals(t *testing.T) {
	t.Parallel()

	ints := arith.NewBigInt()
	m, err := matrix.FromRows[*big.Int](ints, ints.Zero(), [][]*big.Int{
		{big.NewInt(2), big.NewInt(1), big.NewInt(3)},
		{big.NewInt(1), big.NewInt(3), big.NewInt(5)},
	})
	require.NoError(t, err)
	lifted, err := matrix.Lift(m, arith.NewIntToRational())
	require.NoError(t, err)
	system, err := linear.OfAugmented(lifted)
	require.NoError(t, err)

	sol, err := linear.Solve(system)
	require.NoError(t, err)
	require.Equal(t, linear.Single, sol.Kind())
	assert.Equal(t, []string{"4/5", "7/5"}, ratStrings(sol.Values()))
}

// noQuotient is a rational arithmetic that cannot divide.
type noQuotient struct{ *arith.Rational }

func (noQuotient) Quotient(_, _ *big.Rat) (*big.Rat, error) { return nil, arith.ErrUnsupported }

func TestGauss_PropagatesUnsupported(t *testing.T) {
	t.Parallel()

	a := noQuotient{arith.NewRational()}
	m, err := matrix.FromRows[*big.Rat](a, a.Zero(), [][]*big.Rat{
		{big.NewRat(2, 1), big.NewRat(1, 1), big.NewRat(3, 1)},
		{big.NewRat(1, 1), big.NewRat(3, 1), big.NewRat(5, 1)},
	})
	require.NoError(t, err)
	system, err := linear.OfAugmented(m)
	require.NoError(t, err)

	_, err = linear.Solve(system)
	require.ErrorIs(t, err, arith.ErrUnsupported)

	gs, err := linear.NewGaussSolver(system)
	require.NoError(t, err)
	_, err = gs.Reduce()
	require.ErrorIs(t, err, arith.ErrUnsupported)
}

func TestGauss_BigIntDirectRejected(t *testing.T) {
	t.Parallel()

	ints := arith.NewBigInt()
	m, err := matrix.FromRows[*big.Int](ints, ints.Zero(), [][]*big.Int{
		{big.NewInt(2), big.NewInt(1), big.NewInt(3)},
		{big.NewInt(1), big.NewInt(3), big.NewInt(5)},
	})
	require.NoError(t, err)
	system, err := linear.OfAugmented(m)
	require.NoError(t, err)

	_, err = linear.Solve(system)
	require.ErrorIs(t, err, arith.ErrUnsupported)
	assert.Contains(t, err.Error(), "BigInt")

	// rounding division is not truncation
	flt := arith.NewFloat64()
	fm, err := matrix.FromRows[float64](flt, 0, [][]float64{{49, 0, 49}, {0, 3, 1}})
	require.NoError(t, err)
	fs, err := linear.OfAugmented(fm)
	require.NoError(t, err)
	fsol, err := linear.Solve(fs)
	require.NoError(t, err)
	require.Equal(t, linear.Single, fsol.Kind())
	assert.InDelta(t, 1.0, fsol.Values()[0], 1e-12)
	assert.InDelta(t, 1.0/3, fsol.Values()[1], 1e-12)

	// unit pivots divide exactly, so integer arithmetic still works there
	unit, err := matrix.FromRows[*big.Int](ints, ints.Zero(), [][]*big.Int{
		{big.NewInt(1), big.NewInt(1), big.NewInt(3)},
		{big.NewInt(0), big.NewInt(-1), big.NewInt(-1)},
	})
	require.NoError(t, err)
	system, err = linear.OfAugmented(unit)
	require.NoError(t, err)

	sol, err := linear.Solve(system)
	require.NoError(t, err)
	require.Equal(t, linear.Single, sol.Kind())
	got := make([]string, 0, len(sol.Values()))
	for _, v := range sol.Values() {
		got = append(got, v.String())
	}
	assert.Equal(t, []string{"2", "1"}, got)
}

func TestGauss_NilSystem(t *testing.T) {
	t.Parallel()

	_, err := linear.NewGaussSolver[*big.Rat](nil)
	require.ErrorIs(t, err, linear.ErrNilSystem)
	_, err = linear.Solve[*big.Rat](nil)
	require.ErrorIs(t, err, linear.ErrNilSystem)
}

func TestGauss_LogsPhases(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	system := ratSystem(t, [][]int64{{1, 2, 3, 2}, {1, 1, 1, 2}, {3, 3, 1, 0}})

	sol, err := linear.Solve(system, linear.WithLogger(zap.New(core)))
	require.NoError(t, err)
	require.Equal(t, linear.Single, sol.Kind())

	entries := logs.FilterMessage("gauss phase").All()
	require.Len(t, entries, 5)
	var phases []string
	for _, e := range entries {
		phases = append(phases, e.ContextMap()["phase"].(string))
	}
	assert.Equal(t, []string{"prepare", "sort", "solve-bottom-up", "restore-columns", "classify"}, phases)
	assert.Equal(t, "single", entries[4].ContextMap()["kind"])
	assert.EqualValues(t, 3, entries[0].ContextMap()["rows"])
}

func TestGauss_WithTestLogger(t *testing.T) {
	t.Parallel()

	system := ratSystem(t, [][]int64{{1, -2, 3, 0}, {-2, 4, -6, 0}, {-1, 2, -3, 0}})
	sol, err := linear.Solve(system,
		linear.WithLogger(zaptest.NewLogger(t, zaptest.Level(zapcore.DebugLevel))),
		linear.WithLogger(nil),
	)
	require.NoError(t, err)
	assert.Equal(t, linear.Infinite, sol.Kind())
}
