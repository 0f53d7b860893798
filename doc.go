// SPDX-License-Identifier: MIT

// Package lvalg is exact-when-you-want-it linear algebra over any numeric
// type: the same matrix engine and Gauss-Jordan solver run on float64,
// big.Float, big.Int, big.Rat or complex128.
//
// What is inside:
//
//	arith/        Arithmetic[T]: the numeric contract plus adapters
//	                (Float64, BigFloat, BigInt, Rational, Complex) and
//	                ResultArithmetic for int → rational lifting
//	matrix/       sparse Matrix[T]: algebra, determinant, inverse,
//	                elementary row operators, gonum bridge
//	linear/       System[T], Solution[T] and the GaussSolver
//	cmd/linsolve/ solve a YAML system document from the shell
//	examples/     runnable scenarios (mesh currents, Hilbert inverses)
//
// Quick example:
//
//	q := arith.NewRational()
//	m, _ := matrix.OfValuesByRows(q, q.Zero(), 2, q.FromInt(4), q.FromInt(7), q.FromInt(2), q.FromInt(6))
//	inv, ok, _ := m.Inverse() // [3/5, -7/10] [-1/5, 2/5], ok == true
//
// Degenerate outcomes are values, not errors: a singular matrix has no
// inverse (ok == false) and a system may be Single, Infinite or Unsolvable.
//
//	go get github.com/katalvlaran/lvalg
package lvalg
