// SPDX-License-Identifier: MIT

package arith

import (
	"math"
)

// Arithmetic is the strategy contract every numeric representation satisfies.
//
// Primitives (implemented by each adapter):
//
//	FromInt, FromFloat64, Float64, Signum, Equal,
//	Sum, Difference, Product, Quotient, Parse, Format
//
// Everything else has a default in Defaults[T] built only from those
// primitives; adapters override a default when the representation offers a
// native (faster or more precise) version or when the default is undefined.
//
// Values passed to an Arithmetic are never mutated, and every returned value
// is safe to retain.
type Arithmetic[T any] interface {
	// Zero returns FromInt(0).
	Zero() T
	// One returns FromInt(1).
	One() T
	// FromInt converts a primitive integer.
	FromInt(i int64) T
	// FromFloat64 converts a primitive float. Exact adapters reject NaN/±Inf.
	FromFloat64(f float64) (T, error)
	// Float64 projects a onto float64 (possibly lossy).
	Float64(a T) (float64, error)
	// Parse decodes the textual form produced by Format (and common variants).
	Parse(s string) (T, error)
	// Format renders a for humans.
	Format(a T) string

	// Signum returns -1, 0 or +1 as a float64 (a negative zero stays negative).
	Signum(a T) (float64, error)
	// Compare returns -1, 0, +1 ordering a against b.
	Compare(a, b T) (int, error)
	// Equal reports logical equality inside this arithmetic.
	Equal(a, b T) bool
	// IsZero reports Equal(Zero(), Absolute(a)).
	IsZero(a T) bool

	Negate(a T) T
	Absolute(a T) (T, error)

	Sum(a, b T) T
	Sum3(a, b, c T) T
	Difference(a, b T) T
	Product(a, b T) T
	Product3(a, b, c T) T
	Quotient(a, b T) (T, error)
	Modulo(a, b T) (T, error)

	Power(a T, n int) (T, error)
	Root(a T, n int) (T, error)
	Root2(a T) (T, error)

	IsFinite(a T) bool
	IsInfinite(a T) bool
	IsNaN(a T) bool

	Gcd(a, b T) (T, error)
	Lcm(a, b T) (T, error)

	Sin(a T) (T, error)
	Cos(a T) (T, error)
	Tan(a T) (T, error)
	Asin(a T) (T, error)
	Acos(a T) (T, error)
	Atan(a T) (T, error)
	Sinh(a T) (T, error)
	Cosh(a T) (T, error)
	Tanh(a T) (T, error)
}

// Defaults implements every derived operation of Arithmetic through the
// owner's own method set. Adapters embed it and wire the owner in their
// constructor:
//
//	r := &Rational{}
//	r.Defaults = NewDefaults[*big.Rat]("Rational", r)
//
// Because calls go through owner, an adapter overriding Gcd automatically
// changes Lcm, and one overriding Absolute changes IsZero.
type Defaults[T any] struct {
	name  string
	owner Arithmetic[T]
}

// NewDefaults binds the derived operations to owner. name tags errors.
func NewDefaults[T any](name string, owner Arithmetic[T]) Defaults[T] {
	return Defaults[T]{name: name, owner: owner}
}

// Name returns the adapter name used in error tags.
func (d Defaults[T]) Name() string { return d.name }

func (d Defaults[T]) Zero() T { return d.owner.FromInt(0) }

func (d Defaults[T]) One() T { return d.owner.FromInt(1) }

// Negate returns a * (-1).
func (d Defaults[T]) Negate(a T) T {
	return d.owner.Product(a, d.owner.FromInt(-1))
}

// Absolute negates a when its signum is negative, including a negative zero.
func (d Defaults[T]) Absolute(a T) (T, error) {
	s, err := d.owner.Signum(a)
	if err != nil {
		var zero T
		return zero, arithErrorf(d.name, "Absolute", err)
	}
	if s < 0 || math.Signbit(s) {
		return d.owner.Negate(a), nil
	}

	return a, nil
}

// IsZero compares the absolute value against Zero. Representations without
// an absolute value fall back to a direct comparison with Zero.
func (d Defaults[T]) IsZero(a T) bool {
	abs, err := d.owner.Absolute(a)
	if err != nil {
		return d.owner.Equal(d.owner.Zero(), a)
	}

	return d.owner.Equal(d.owner.Zero(), abs)
}

// Compare orders a and b by the signum of their difference.
func (d Defaults[T]) Compare(a, b T) (int, error) {
	s, err := d.owner.Signum(d.owner.Difference(a, b))
	if err != nil {
		return 0, arithErrorf(d.name, "Compare", err)
	}
	switch {
	case s < 0:
		return -1, nil
	case s > 0:
		return 1, nil
	default:
		return 0, nil
	}
}

func (d Defaults[T]) Sum3(a, b, c T) T {
	return d.owner.Sum(d.owner.Sum(a, b), c)
}

func (d Defaults[T]) Product3(a, b, c T) T {
	return d.owner.Product(d.owner.Product(a, b), c)
}

// Modulo returns a - Quotient(a, b) * b.
func (d Defaults[T]) Modulo(a, b T) (T, error) {
	q, err := d.owner.Quotient(a, b)
	if err != nil {
		var zero T
		return zero, arithErrorf(d.name, "Modulo", err)
	}

	return d.owner.Difference(a, d.owner.Product(q, b)), nil
}

// Power raises a to the integer power n by repeated squaring. Negative
// exponents go through Quotient(One, a^-n).
func (d Defaults[T]) Power(a T, n int) (T, error) {
	if n == math.MinInt {
		var zero T
		return zero, arithErrorf(d.name, "Power", ErrDomain)
	}
	if n < 0 {
		p, err := d.owner.Power(a, -n)
		if err != nil {
			return p, err
		}
		q, err := d.owner.Quotient(d.owner.One(), p)
		if err != nil {
			var zero T
			return zero, arithErrorf(d.name, "Power", err)
		}

		return q, nil
	}

	result, base := d.owner.One(), a
	for n > 0 {
		if n&1 == 1 {
			result = d.owner.Product(result, base)
		}
		n >>= 1
		if n > 0 {
			base = d.owner.Product(base, base)
		}
	}

	return result, nil
}

// Root computes the real n-th root through the float64 projection.
// Odd roots of negative numbers are negative; even roots of negative
// numbers fail with ErrDomain.
func (d Defaults[T]) Root(a T, n int) (T, error) {
	var zero T
	if n == 0 {
		return zero, arithErrorf(d.name, "Root", ErrDomain)
	}
	f, err := d.owner.Float64(a)
	if err != nil {
		return zero, arithErrorf(d.name, "Root", err)
	}
	r, err := realRoot(f, n)
	if err != nil {
		return zero, arithErrorf(d.name, "Root", err)
	}

	return d.owner.FromFloat64(r)
}

func (d Defaults[T]) Root2(a T) (T, error) { return d.owner.Root(a, 2) }

// IsFinite checks the float64 projection. Values without a projection are
// treated as finite.
func (d Defaults[T]) IsFinite(a T) bool {
	f, err := d.owner.Float64(a)
	if err != nil {
		return true
	}

	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

func (d Defaults[T]) IsInfinite(a T) bool {
	f, err := d.owner.Float64(a)
	if err != nil {
		return false
	}

	return math.IsInf(f, 0)
}

func (d Defaults[T]) IsNaN(a T) bool {
	f, err := d.owner.Float64(a)
	if err != nil {
		return false
	}

	return math.IsNaN(f)
}

// Gcd is undefined unless the adapter provides one.
func (d Defaults[T]) Gcd(_, _ T) (T, error) {
	var zero T
	return zero, arithErrorf(d.name, "Gcd", ErrUnsupported)
}

// Lcm returns |a*b| / Gcd(a, b).
func (d Defaults[T]) Lcm(a, b T) (T, error) {
	var zero T
	g, err := d.owner.Gcd(a, b)
	if err != nil {
		return zero, arithErrorf(d.name, "Lcm", err)
	}
	abs, err := d.owner.Absolute(d.owner.Product(a, b))
	if err != nil {
		return zero, arithErrorf(d.name, "Lcm", err)
	}

	return d.owner.Quotient(abs, g)
}

func (d Defaults[T]) Sin(a T) (T, error)  { return d.viaFloat64("Sin", a, math.Sin) }
func (d Defaults[T]) Cos(a T) (T, error)  { return d.viaFloat64("Cos", a, math.Cos) }
func (d Defaults[T]) Tan(a T) (T, error)  { return d.viaFloat64("Tan", a, math.Tan) }
func (d Defaults[T]) Asin(a T) (T, error) { return d.viaFloat64("Asin", a, math.Asin) }
func (d Defaults[T]) Acos(a T) (T, error) { return d.viaFloat64("Acos", a, math.Acos) }
func (d Defaults[T]) Atan(a T) (T, error) { return d.viaFloat64("Atan", a, math.Atan) }
func (d Defaults[T]) Sinh(a T) (T, error) { return d.viaFloat64("Sinh", a, math.Sinh) }
func (d Defaults[T]) Cosh(a T) (T, error) { return d.viaFloat64("Cosh", a, math.Cosh) }
func (d Defaults[T]) Tanh(a T) (T, error) { return d.viaFloat64("Tanh", a, math.Tanh) }

// viaFloat64 evaluates fn on the float64 projection of a and converts back.
func (d Defaults[T]) viaFloat64(op string, a T, fn func(float64) float64) (T, error) {
	var zero T
	f, err := d.owner.Float64(a)
	if err != nil {
		return zero, arithErrorf(d.name, op, err)
	}
	r, err := d.owner.FromFloat64(fn(f))
	if err != nil {
		return zero, arithErrorf(d.name, op, err)
	}

	return r, nil
}

// realRoot returns the real n-th root of f (n may be negative).
func realRoot(f float64, n int) (float64, error) {
	if n == 0 {
		return 0, ErrDomain
	}
	if f < 0 {
		if n%2 == 0 {
			return 0, ErrDomain
		}
		return -math.Pow(-f, 1/float64(n)), nil
	}

	return math.Pow(f, 1/float64(n)), nil
}

// signOf maps an int sign to the float64 signum convention.
func signOf(s int) float64 {
	switch {
	case s < 0:
		return -1
	case s > 0:
		return 1
	default:
		return 0
	}
}
