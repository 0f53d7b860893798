// SPDX-License-Identifier: MIT

package arith

import (
	"math"
	"math/big"
	"strings"
)

// DefaultBigFloatPrecision is the mantissa precision (bits) used when
// NewBigFloat is called with prec == 0.
const DefaultBigFloatPrecision uint = 256

// BigFloat is an arbitrary-precision decimal arithmetic over *big.Float.
// All results are rounded to the configured precision with ToNearestEven.
type BigFloat struct {
	Defaults[*big.Float]
	prec uint
}

var _ Arithmetic[*big.Float] = (*BigFloat)(nil)

// NewBigFloat returns a *big.Float arithmetic with prec bits of mantissa.
func NewBigFloat(prec uint) *BigFloat {
	if prec == 0 {
		prec = DefaultBigFloatPrecision
	}
	b := &BigFloat{prec: prec}
	b.Defaults = NewDefaults[*big.Float]("BigFloat", b)

	return b
}

// Precision returns the mantissa precision in bits.
func (b *BigFloat) Precision() uint { return b.prec }

func (b *BigFloat) newFloat() *big.Float {
	return new(big.Float).SetPrec(b.prec)
}

func (b *BigFloat) FromInt(i int64) *big.Float { return b.newFloat().SetInt64(i) }

func (b *BigFloat) FromFloat64(f float64) (*big.Float, error) {
	if math.IsNaN(f) {
		return nil, arithErrorf("BigFloat", "FromFloat64", ErrNotFinite)
	}

	return b.newFloat().SetFloat64(f), nil
}

func (b *BigFloat) Float64(a *big.Float) (float64, error) {
	f, _ := a.Float64()
	return f, nil
}

func (b *BigFloat) Parse(s string) (*big.Float, error) {
	v, ok := b.newFloat().SetString(strings.TrimSpace(s))
	if !ok {
		return nil, arithErrorf("BigFloat", "Parse", ErrParse)
	}

	return v, nil
}

func (b *BigFloat) Format(a *big.Float) string { return a.Text('g', -1) }

func (b *BigFloat) Signum(a *big.Float) (float64, error) {
	if a.Sign() == 0 && a.Signbit() {
		return math.Copysign(0, -1), nil
	}

	return signOf(a.Sign()), nil
}

func (b *BigFloat) Equal(x, y *big.Float) bool { return x.Cmp(y) == 0 }

func (b *BigFloat) IsZero(a *big.Float) bool { return a.Sign() == 0 }

func (b *BigFloat) Compare(x, y *big.Float) (int, error) { return x.Cmp(y), nil }

func (b *BigFloat) Negate(a *big.Float) *big.Float { return b.newFloat().Neg(a) }

func (b *BigFloat) Absolute(a *big.Float) (*big.Float, error) { return b.newFloat().Abs(a), nil }

func (b *BigFloat) Sum(x, y *big.Float) *big.Float { return b.newFloat().Add(x, y) }

func (b *BigFloat) Difference(x, y *big.Float) *big.Float { return b.newFloat().Sub(x, y) }

func (b *BigFloat) Product(x, y *big.Float) *big.Float { return b.newFloat().Mul(x, y) }

// Quotient follows big.Float semantics for finite operands; 0/0 and Inf/Inf
// (which big.Float panics on) are reported as ErrDivisionByZero.
func (b *BigFloat) Quotient(x, y *big.Float) (*big.Float, error) {
	if (x.Sign() == 0 && y.Sign() == 0) || (x.IsInf() && y.IsInf()) {
		return nil, arithErrorf("BigFloat", "Quotient", ErrDivisionByZero)
	}

	return b.newFloat().Quo(x, y), nil
}

func (b *BigFloat) Root2(a *big.Float) (*big.Float, error) {
	if a.Sign() < 0 {
		return nil, arithErrorf("BigFloat", "Root2", ErrDomain)
	}

	return b.newFloat().Sqrt(a), nil
}

func (b *BigFloat) IsFinite(a *big.Float) bool { return !a.IsInf() }

func (b *BigFloat) IsInfinite(a *big.Float) bool { return a.IsInf() }

// IsNaN is always false: big.Float has no NaN.
func (b *BigFloat) IsNaN(*big.Float) bool { return false }
