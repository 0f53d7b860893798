// SPDX-License-Identifier: MIT

package arith

import (
	"math/cmplx"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

// Complex is the complex128 arithmetic.
//
// Complex numbers carry no total order, so Signum, Compare, Absolute (as a
// complex-valued order-preserving operation) and Gcd fail with
// ErrUnsupported. IsZero is therefore overridden to compare against zero
// directly (componentwise within the configured tolerance). Use Modulus for
// |z| as a float64.
type Complex struct {
	Defaults[complex128]
	tol float64
}

var _ Arithmetic[complex128] = (*Complex)(nil)

// NewComplex returns a complex128 arithmetic.
func NewComplex(opts ...Option) *Complex {
	o := gatherOptions(opts...)
	c := &Complex{tol: o.tolerance}
	c.Defaults = NewDefaults[complex128]("Complex", c)

	return c
}

// Modulus returns |z|.
func (c *Complex) Modulus(z complex128) float64 { return cmplx.Abs(z) }

func (c *Complex) FromInt(i int64) complex128 { return complex(float64(i), 0) }

func (c *Complex) FromFloat64(f float64) (complex128, error) { return complex(f, 0), nil }

// Float64 projects purely real values; anything with an imaginary part has
// no float64 projection.
func (c *Complex) Float64(z complex128) (float64, error) {
	if imag(z) != 0 {
		return 0, arithErrorf("Complex", "Float64", ErrUnsupported)
	}

	return real(z), nil
}

func (c *Complex) Parse(s string) (complex128, error) {
	z, err := strconv.ParseComplex(strings.TrimSpace(s), 128)
	if err != nil {
		return 0, arithErrorf("Complex", "Parse", ErrParse)
	}

	return z, nil
}

func (c *Complex) Format(z complex128) string {
	return strconv.FormatComplex(z, 'g', -1, 128)
}

func (c *Complex) Signum(complex128) (float64, error) {
	return 0, arithErrorf("Complex", "Signum", ErrUnsupported)
}

func (c *Complex) Compare(_, _ complex128) (int, error) {
	return 0, arithErrorf("Complex", "Compare", ErrUnsupported)
}

func (c *Complex) Absolute(complex128) (complex128, error) {
	return 0, arithErrorf("Complex", "Absolute", ErrUnsupported)
}

func (c *Complex) Equal(a, b complex128) bool {
	if c.tol > 0 {
		return scalar.EqualWithinAbs(real(a), real(b), c.tol) &&
			scalar.EqualWithinAbs(imag(a), imag(b), c.tol)
	}

	return a == b
}

func (c *Complex) IsZero(z complex128) bool { return c.Equal(0, z) }

func (c *Complex) Negate(z complex128) complex128 { return -z }

func (c *Complex) Sum(a, b complex128) complex128 { return a + b }

func (c *Complex) Difference(a, b complex128) complex128 { return a - b }

func (c *Complex) Product(a, b complex128) complex128 { return a * b }

func (c *Complex) Quotient(a, b complex128) (complex128, error) { return a / b, nil }

func (c *Complex) Power(z complex128, n int) (complex128, error) {
	return cmplx.Pow(z, complex(float64(n), 0)), nil
}

// Root returns the principal n-th root.
func (c *Complex) Root(z complex128, n int) (complex128, error) {
	if n == 0 {
		return 0, arithErrorf("Complex", "Root", ErrDomain)
	}

	return cmplx.Pow(z, complex(1/float64(n), 0)), nil
}

func (c *Complex) Root2(z complex128) (complex128, error) { return cmplx.Sqrt(z), nil }

func (c *Complex) IsFinite(z complex128) bool {
	return !cmplx.IsInf(z) && !cmplx.IsNaN(z)
}

func (c *Complex) IsInfinite(z complex128) bool { return cmplx.IsInf(z) }

func (c *Complex) IsNaN(z complex128) bool { return cmplx.IsNaN(z) }

func (c *Complex) Sin(z complex128) (complex128, error)  { return cmplx.Sin(z), nil }
func (c *Complex) Cos(z complex128) (complex128, error)  { return cmplx.Cos(z), nil }
func (c *Complex) Tan(z complex128) (complex128, error)  { return cmplx.Tan(z), nil }
func (c *Complex) Asin(z complex128) (complex128, error) { return cmplx.Asin(z), nil }
func (c *Complex) Acos(z complex128) (complex128, error) { return cmplx.Acos(z), nil }
func (c *Complex) Atan(z complex128) (complex128, error) { return cmplx.Atan(z), nil }
func (c *Complex) Sinh(z complex128) (complex128, error) { return cmplx.Sinh(z), nil }
func (c *Complex) Cosh(z complex128) (complex128, error) { return cmplx.Cosh(z), nil }
func (c *Complex) Tanh(z complex128) (complex128, error) { return cmplx.Tanh(z), nil }

// Modulo is undefined without an ordering of the quotient.
func (c *Complex) Modulo(_, _ complex128) (complex128, error) {
	return 0, arithErrorf("Complex", "Modulo", ErrUnsupported)
}

