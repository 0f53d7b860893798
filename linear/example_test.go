// SPDX-License-Identifier: MIT
package linear_test

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvalg/arith"
	"github.com/katalvlaran/lvalg/linear"
	"github.com/katalvlaran/lvalg/matrix"
)

// ExampleSolve solves x + 2y + 3z = 2, x + y + z = 2, 3x + 3y + z = 0 exactly.
func ExampleSolve() {
	q := arith.NewRational()
	n := func(i int64) *big.Rat { return q.FromInt(i) }

	coeffs, _ := matrix.OfValuesByRows(q, q.Zero(), 3,
		n(1), n(2), n(3),
		n(1), n(1), n(1),
		n(3), n(3), n(1),
	)
	column, _ := matrix.OfValuesByRows(q, q.Zero(), 3, n(2), n(2), n(0))
	system, _ := linear.Of(coeffs, column)

	sol, _ := linear.Solve(system)
	switch sol.Kind() {
	case linear.Single:
		fmt.Println(sol)
	case linear.Infinite, linear.Unsolvable:
		fmt.Println("no unique solution:", sol.Kind())
	}
	// Output:
	// single(5, -6, 3)
}
