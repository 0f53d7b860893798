// SPDX-License-Identifier: MIT

// Package arith defines the pluggable arithmetic used by every numeric
// structure in lvalg.
//
// An Arithmetic[T] is a strategy object: matrices, linear systems and the
// Gauss solver never apply Go operators to their elements, they ask the
// injected arithmetic instead. That lets the same algorithms run over
// float64, arbitrary-precision decimals (*big.Float), integers (*big.Int),
// exact fractions (*big.Rat) and complex128.
//
// Contract overview:
//   - Zero() == FromInt(0), One() == FromInt(1).
//   - Derived operations (Sum3, Product3, Negate, Absolute, IsZero, Modulo,
//     Lcm, Root2, trigonometry) are expressed only through primitives; the
//     embeddable Defaults[T] provides them for adapters.
//   - Operations that make no sense for a representation (Gcd over floats,
//     Compare over complex numbers, ...) fail with ErrUnsupported.
//
// Adapters:
//
//	NewFloat64(opts...)     float64, optional tolerance-based equality
//	NewBigFloat(prec)       *big.Float with a fixed mantissa precision
//	NewBigInt()             *big.Int, truncated division
//	NewRational()           *big.Rat, exact
//	NewComplex(opts...)     complex128
//
// A ResultArithmetic[T, R] pairs an input arithmetic with a result
// arithmetic for operations whose natural result type differs from the
// operand type, e.g. integer division producing an exact fraction.
//
// All adapters are immutable after construction and safe for concurrent use.
package arith
