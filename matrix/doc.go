// SPDX-License-Identifier: MIT

// Package matrix provides a generic sparse matrix engine over any numeric
// type supplied through an arith.Arithmetic.
//
// The matrix package provides:
//
//   - Matrix[T]: rows×cols storage keeping only cells that differ from the
//     matrix default (usually the arithmetic's zero). Writing the default
//     removes the entry, so elimination keeps the map small.
//   - Algebra: Add, Scale, Multiply, MultiplyTolerant, Transpose.
//   - Exact kernels: Determinant (closed forms up to 3×3, sparsity-aware
//     cofactor expansion beyond), Cofactor, SubMatrix and Inverse via the
//     adjugate. A singular matrix reports ok == false instead of an error.
//   - Elementary operators for solvers: SwapRows, SwapCols, MultiplyRow,
//     AddRowMultipleTimes, AppendCol. All are copy-on-write.
//   - Conversions: Map, Lift (through arith.ResultArithmetic) and the
//     gonum bridge ToGonum / FromGonum.
//
// Errors are package sentinels (ErrBadShape, ErrOutOfRange,
// ErrDimensionMismatch, ErrNonSquare, ErrNilMatrix, ErrNilArithmetic)
// wrapped with the operation name; match them with errors.Is.
//
// A Matrix is not safe for concurrent mutation. Operations that return a
// new Matrix only read their operands and may run concurrently with other
// readers.
package matrix
