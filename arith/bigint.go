// SPDX-License-Identifier: MIT

package arith

import (
	"math"
	"math/big"
	"strings"
)

// BigInt is the arbitrary-precision integer arithmetic over *big.Int.
//
// Quotient truncates toward zero (Go's big.Int.Quo), so Modulo is the
// matching truncated remainder. Integers have no infinities, so IsFinite is
// always true. Use a ResultArithmetic (NewIntToRational) when divisions must
// stay exact.
type BigInt struct {
	Defaults[*big.Int]
}

var _ Arithmetic[*big.Int] = (*BigInt)(nil)

// NewBigInt returns a *big.Int arithmetic.
func NewBigInt() *BigInt {
	b := &BigInt{}
	b.Defaults = NewDefaults[*big.Int]("BigInt", b)

	return b
}

func (b *BigInt) FromInt(i int64) *big.Int { return big.NewInt(i) }

// FromFloat64 truncates f toward zero.
func (b *BigInt) FromFloat64(f float64) (*big.Int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, arithErrorf("BigInt", "FromFloat64", ErrNotFinite)
	}
	i, _ := big.NewFloat(math.Trunc(f)).Int(nil)

	return i, nil
}

func (b *BigInt) Float64(a *big.Int) (float64, error) {
	f, _ := new(big.Float).SetInt(a).Float64()
	return f, nil
}

func (b *BigInt) Parse(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return nil, arithErrorf("BigInt", "Parse", ErrParse)
	}

	return v, nil
}

func (b *BigInt) Format(a *big.Int) string { return a.String() }

func (b *BigInt) Signum(a *big.Int) (float64, error) { return signOf(a.Sign()), nil }

func (b *BigInt) Equal(x, y *big.Int) bool { return x.Cmp(y) == 0 }

func (b *BigInt) IsZero(a *big.Int) bool { return a.Sign() == 0 }

func (b *BigInt) Compare(x, y *big.Int) (int, error) { return x.Cmp(y), nil }

func (b *BigInt) Negate(a *big.Int) *big.Int { return new(big.Int).Neg(a) }

func (b *BigInt) Absolute(a *big.Int) (*big.Int, error) { return new(big.Int).Abs(a), nil }

func (b *BigInt) Sum(x, y *big.Int) *big.Int { return new(big.Int).Add(x, y) }

func (b *BigInt) Difference(x, y *big.Int) *big.Int { return new(big.Int).Sub(x, y) }

func (b *BigInt) Product(x, y *big.Int) *big.Int { return new(big.Int).Mul(x, y) }

func (b *BigInt) Quotient(x, y *big.Int) (*big.Int, error) {
	if y.Sign() == 0 {
		return nil, arithErrorf("BigInt", "Quotient", ErrDivisionByZero)
	}

	return new(big.Int).Quo(x, y), nil
}

func (b *BigInt) Modulo(x, y *big.Int) (*big.Int, error) {
	if y.Sign() == 0 {
		return nil, arithErrorf("BigInt", "Modulo", ErrDivisionByZero)
	}

	return new(big.Int).Rem(x, y), nil
}

// Power rejects negative exponents except for the units ±1, whose inverse
// is still an integer.
func (b *BigInt) Power(a *big.Int, n int) (*big.Int, error) {
	if n < 0 {
		if a.CmpAbs(big.NewInt(1)) != 0 {
			return nil, arithErrorf("BigInt", "Power", ErrDomain)
		}
		n = -n
	}

	return new(big.Int).Exp(a, big.NewInt(int64(n)), nil), nil
}

// Root2 is the floor square root.
func (b *BigInt) Root2(a *big.Int) (*big.Int, error) {
	if a.Sign() < 0 {
		return nil, arithErrorf("BigInt", "Root2", ErrDomain)
	}

	return new(big.Int).Sqrt(a), nil
}

// Root returns the integer n-th root (floor for positive radicands) using
// Newton iteration on integers, avoiding the float64 projection for large values.
func (b *BigInt) Root(a *big.Int, n int) (*big.Int, error) {
	switch {
	case n <= 0:
		return nil, arithErrorf("BigInt", "Root", ErrDomain)
	case n == 1:
		return new(big.Int).Set(a), nil
	case n == 2:
		return b.Root2(a)
	}
	if a.Sign() < 0 {
		if n%2 == 0 {
			return nil, arithErrorf("BigInt", "Root", ErrDomain)
		}
		r, err := b.Root(new(big.Int).Neg(a), n)
		if err != nil {
			return nil, err
		}
		return r.Neg(r), nil
	}
	if a.Sign() == 0 {
		return new(big.Int), nil
	}

	// x_{k+1} = ((n-1)x_k + a / x_k^(n-1)) / n, starting above the root.
	bn := big.NewInt(int64(n))
	bn1 := big.NewInt(int64(n - 1))
	x := new(big.Int).Lsh(big.NewInt(1), uint(a.BitLen()/n+1))
	for {
		pow := new(big.Int).Exp(x, bn1, nil)
		next := new(big.Int).Quo(a, pow)
		next.Add(next, new(big.Int).Mul(bn1, x))
		next.Quo(next, bn)
		if next.Cmp(x) >= 0 {
			return x, nil
		}
		x = next
	}
}

func (b *BigInt) IsFinite(*big.Int) bool { return true }

func (b *BigInt) IsInfinite(*big.Int) bool { return false }

func (b *BigInt) IsNaN(*big.Int) bool { return false }

// Gcd is always non-negative; Gcd(0, 0) is 0.
func (b *BigInt) Gcd(x, y *big.Int) (*big.Int, error) {
	return new(big.Int).GCD(nil, nil, new(big.Int).Abs(x), new(big.Int).Abs(y)), nil
}

// Lcm returns |x*y| / Gcd(x, y); Lcm with a zero operand is 0.
func (b *BigInt) Lcm(x, y *big.Int) (*big.Int, error) {
	if x.Sign() == 0 || y.Sign() == 0 {
		return new(big.Int), nil
	}

	return b.Defaults.Lcm(x, y)
}
