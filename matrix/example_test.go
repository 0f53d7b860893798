// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvalg/arith"
	"github.com/katalvlaran/lvalg/matrix"
)

// ExampleMatrix_Inverse inverts a matrix exactly over rationals.
func ExampleMatrix_Inverse() {
	q := arith.NewRational()
	m, _ := matrix.OfValuesByRows[*big.Rat](q, q.Zero(), 2,
		q.FromInt(4), q.FromInt(7),
		q.FromInt(2), q.FromInt(6),
	)

	det, _ := m.Determinant()
	inv, ok, _ := m.Inverse()
	fmt.Println("det =", q.Format(det))
	fmt.Println("invertible:", ok)
	fmt.Print(inv)
	// Output:
	// det = 10
	// invertible: true
	// [3/5, -7/10]
	// [-1/5, 2/5]
}

// ExampleMatrix_Len shows that cells equal to the default are not stored.
func ExampleMatrix_Len() {
	f := arith.NewFloat64()
	m, _ := matrix.NewZero[float64](f, 1000, 1000)
	_, _ = m.Set(3, 4, 2.5)
	_, _ = m.Set(999, 0, 1)
	fmt.Println(m.Len())

	_, _ = m.Set(3, 4, 0)
	fmt.Println(m.Len())
	// Output:
	// 2
	// 1
}
