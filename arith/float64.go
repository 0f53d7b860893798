// SPDX-License-Identifier: MIT

package arith

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

// Float64 is the IEEE-754 double precision arithmetic.
//
// Division by zero follows float semantics (±Inf or NaN), not an error.
// With WithTolerance(eps) Equal accepts |a-b| <= eps, which keeps the Gauss
// solver from treating round-off residue as a genuine non-zero.
type Float64 struct {
	Defaults[float64]
	tol float64
}

var _ Arithmetic[float64] = (*Float64)(nil)

// NewFloat64 returns a float64 arithmetic.
func NewFloat64(opts ...Option) *Float64 {
	o := gatherOptions(opts...)
	f := &Float64{tol: o.tolerance}
	f.Defaults = NewDefaults[float64]("Float64", f)

	return f
}

// Tolerance returns the configured absolute tolerance.
func (f *Float64) Tolerance() float64 { return f.tol }

func (f *Float64) FromInt(i int64) float64 { return float64(i) }

func (f *Float64) FromFloat64(v float64) (float64, error) { return v, nil }

func (f *Float64) Float64(a float64) (float64, error) { return a, nil }

func (f *Float64) Parse(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, arithErrorf("Float64", "Parse", ErrParse)
	}

	return v, nil
}

func (f *Float64) Format(a float64) string {
	return strconv.FormatFloat(a, 'g', -1, 64)
}

// Signum keeps the sign bit of a zero, so Signum(-0.0) is -0.0.
func (f *Float64) Signum(a float64) (float64, error) {
	switch {
	case math.IsNaN(a):
		return a, nil
	case a > 0:
		return 1, nil
	case a < 0:
		return -1, nil
	default:
		return a, nil
	}
}

func (f *Float64) Equal(a, b float64) bool {
	if f.tol > 0 {
		return scalar.EqualWithinAbs(a, b, f.tol)
	}

	return a == b
}

func (f *Float64) IsZero(a float64) bool { return f.Equal(0, math.Abs(a)) }

func (f *Float64) Negate(a float64) float64 { return -a }

func (f *Float64) Absolute(a float64) (float64, error) { return math.Abs(a), nil }

func (f *Float64) Sum(a, b float64) float64 { return a + b }

func (f *Float64) Difference(a, b float64) float64 { return a - b }

func (f *Float64) Product(a, b float64) float64 { return a * b }

func (f *Float64) Quotient(a, b float64) (float64, error) { return a / b, nil }

func (f *Float64) Modulo(a, b float64) (float64, error) { return math.Mod(a, b), nil }

func (f *Float64) Power(a float64, n int) (float64, error) {
	return math.Pow(a, float64(n)), nil
}

func (f *Float64) Root(a float64, n int) (float64, error) {
	r, err := realRoot(a, n)
	if err != nil {
		return 0, arithErrorf("Float64", "Root", err)
	}

	return r, nil
}

func (f *Float64) Root2(a float64) (float64, error) {
	if a < 0 {
		return 0, arithErrorf("Float64", "Root2", ErrDomain)
	}

	return math.Sqrt(a), nil
}

func (f *Float64) IsFinite(a float64) bool { return !math.IsInf(a, 0) && !math.IsNaN(a) }

func (f *Float64) IsInfinite(a float64) bool { return math.IsInf(a, 0) }

func (f *Float64) IsNaN(a float64) bool { return math.IsNaN(a) }
