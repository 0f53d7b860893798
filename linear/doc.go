// SPDX-License-Identifier: MIT

// Package linear solves systems of linear equations A·x = b over any numeric
// type supplied through an arith.Arithmetic.
//
// A System is an immutable augmented matrix [A | b]. A GaussSolver reduces a
// private working copy with Gauss-Jordan elimination (row pivoting, column
// swaps recorded on an undo stack, bottom-up back substitution) and
// classifies the outcome as a Solution:
//
//   - Single: exactly one solution; Values holds one value per unknown in the
//     original column order.
//   - Infinite: the system is consistent but under-determined.
//   - Unsolvable: some equation reduces to 0 = c with c != 0.
//
// Degenerate systems are results, not errors. Errors are reserved for
// construction misuse (ErrNilSystem, matrix.ErrDimensionMismatch) and for
// arithmetic failures such as arith.ErrUnsupported or arith.ErrDivisionByZero
// surfacing from pivot normalization.
//
// Exact arithmetics (arith.Rational, or integers lifted with
// matrix.Lift(m, arith.NewIntToRational())) give exact solutions. Float
// arithmetics should carry a tolerance (arith.WithTolerance) so that
// elimination residue is treated as zero.
//
// A GaussSolver holds no state between calls: every Solve or Reduce starts
// from a fresh copy of the system, so one solver may be used from several
// goroutines.
package linear
