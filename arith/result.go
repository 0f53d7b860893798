// SPDX-License-Identifier: MIT

package arith

import (
	"math/big"
)

// ResultArithmetic pairs an input arithmetic T with a result arithmetic R
// for operations whose natural result type differs from the operand type,
// e.g. integer operands whose quotient must be an exact fraction.
type ResultArithmetic[T, R any] interface {
	// Input is the arithmetic of the operands.
	Input() Arithmetic[T]
	// Output is the arithmetic of the results.
	Output() Arithmetic[R]
	// Lift converts an operand into the result domain without loss.
	Lift(a T) R
	// Quotient divides in the result domain.
	Quotient(a, b T) (R, error)
	// Root takes the n-th root in the result domain.
	Root(a T, n int) (R, error)
}

// resultArithmetic is the generic ResultArithmetic built from two adapters
// and a lossless lift.
type resultArithmetic[T, R any] struct {
	in   Arithmetic[T]
	out  Arithmetic[R]
	lift func(T) R
}

func (r resultArithmetic[T, R]) Input() Arithmetic[T] { return r.in }

func (r resultArithmetic[T, R]) Output() Arithmetic[R] { return r.out }

func (r resultArithmetic[T, R]) Lift(a T) R { return r.lift(a) }

func (r resultArithmetic[T, R]) Quotient(a, b T) (R, error) {
	return r.out.Quotient(r.lift(a), r.lift(b))
}

func (r resultArithmetic[T, R]) Root(a T, n int) (R, error) {
	return r.out.Root(r.lift(a), n)
}

// NewResultArithmetic builds a ResultArithmetic from in, out and lift.
// lift must be lossless for every value of T.
func NewResultArithmetic[T, R any](in Arithmetic[T], out Arithmetic[R], lift func(T) R) ResultArithmetic[T, R] {
	return resultArithmetic[T, R]{in: in, out: out, lift: lift}
}

// NewIntToRational lifts *big.Int operands into exact *big.Rat results.
func NewIntToRational() ResultArithmetic[*big.Int, *big.Rat] {
	return NewResultArithmetic[*big.Int, *big.Rat](NewBigInt(), NewRational(), func(a *big.Int) *big.Rat {
		return new(big.Rat).SetInt(a)
	})
}

// NewIntToBigFloat lifts *big.Int operands into *big.Float results with prec
// bits of mantissa (0 selects DefaultBigFloatPrecision). The lift is exact
// while the integer fits in the mantissa.
func NewIntToBigFloat(prec uint) ResultArithmetic[*big.Int, *big.Float] {
	out := NewBigFloat(prec)
	return NewResultArithmetic[*big.Int, *big.Float](NewBigInt(), out, func(a *big.Int) *big.Float {
		return new(big.Float).SetPrec(out.Precision()).SetInt(a)
	})
}
