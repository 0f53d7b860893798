// SPDX-License-Identifier: MIT

package arith

import (
	"math"
	"math/big"
	"strings"
)

// Rational is the exact fraction arithmetic over *big.Rat. It is the
// natural choice for the Gauss solver: every elimination step is exact, so
// classification never depends on round-off.
type Rational struct {
	Defaults[*big.Rat]
}

var _ Arithmetic[*big.Rat] = (*Rational)(nil)

// NewRational returns a *big.Rat arithmetic.
func NewRational() *Rational {
	r := &Rational{}
	r.Defaults = NewDefaults[*big.Rat]("Rational", r)

	return r
}

// Frac is a convenience constructor for num/den. den must not be zero.
func (r *Rational) Frac(num, den int64) (*big.Rat, error) {
	if den == 0 {
		return nil, arithErrorf("Rational", "Frac", ErrDivisionByZero)
	}

	return big.NewRat(num, den), nil
}

func (r *Rational) FromInt(i int64) *big.Rat { return new(big.Rat).SetInt64(i) }

// FromFloat64 converts f exactly (every finite float64 is a dyadic fraction).
func (r *Rational) FromFloat64(f float64) (*big.Rat, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, arithErrorf("Rational", "FromFloat64", ErrNotFinite)
	}

	return new(big.Rat).SetFloat64(f), nil
}

func (r *Rational) Float64(a *big.Rat) (float64, error) {
	f, _ := a.Float64()
	return f, nil
}

// Parse accepts "a/b", integers and decimal or exponent notation.
func (r *Rational) Parse(s string) (*big.Rat, error) {
	v, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return nil, arithErrorf("Rational", "Parse", ErrParse)
	}

	return v, nil
}

// Format prints integers without the "/1" suffix.
func (r *Rational) Format(a *big.Rat) string { return a.RatString() }

func (r *Rational) Signum(a *big.Rat) (float64, error) { return signOf(a.Sign()), nil }

func (r *Rational) Equal(x, y *big.Rat) bool { return x.Cmp(y) == 0 }

func (r *Rational) IsZero(a *big.Rat) bool { return a.Sign() == 0 }

func (r *Rational) Compare(x, y *big.Rat) (int, error) { return x.Cmp(y), nil }

func (r *Rational) Negate(a *big.Rat) *big.Rat { return new(big.Rat).Neg(a) }

func (r *Rational) Absolute(a *big.Rat) (*big.Rat, error) { return new(big.Rat).Abs(a), nil }

func (r *Rational) Sum(x, y *big.Rat) *big.Rat { return new(big.Rat).Add(x, y) }

func (r *Rational) Difference(x, y *big.Rat) *big.Rat { return new(big.Rat).Sub(x, y) }

func (r *Rational) Product(x, y *big.Rat) *big.Rat { return new(big.Rat).Mul(x, y) }

func (r *Rational) Quotient(x, y *big.Rat) (*big.Rat, error) {
	if y.Sign() == 0 {
		return nil, arithErrorf("Rational", "Quotient", ErrDivisionByZero)
	}

	return new(big.Rat).Quo(x, y), nil
}

func (r *Rational) IsFinite(*big.Rat) bool { return true }

func (r *Rational) IsInfinite(*big.Rat) bool { return false }

func (r *Rational) IsNaN(*big.Rat) bool { return false }
