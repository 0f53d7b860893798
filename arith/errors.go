// SPDX-License-Identifier: MIT
// Package arith: sentinel error set.
//
// Every adapter returns these sentinels wrapped with "<Adapter>.<Op>: %w" so
// callers can both read the origin and match with errors.Is.

package arith

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported is returned when a primitive has no valid definition for
	// the concrete numeric representation (e.g. Gcd over float64, Compare over
	// complex128). It is never silently approximated.
	ErrUnsupported = errors.New("arith: unsupported operation")

	// ErrDivisionByZero is returned by exact adapters when the divisor is the
	// arithmetic's zero. IEEE-754 adapters follow float semantics instead.
	ErrDivisionByZero = errors.New("arith: division by zero")

	// ErrNotFinite signals NaN or ±Inf where an exact representation is needed.
	ErrNotFinite = errors.New("arith: value is not finite")

	// ErrDomain signals an argument outside the mathematical domain of the
	// operation (negative radicand for an integer root, root of degree 0, ...).
	ErrDomain = errors.New("arith: argument outside of domain")

	// ErrParse is returned when a textual value cannot be decoded.
	ErrParse = errors.New("arith: cannot parse value")
)

// arithErrorf tags err with the adapter and operation names.
func arithErrorf(adapter, op string, err error) error {
	return fmt.Errorf("%s.%s: %w", adapter, op, err)
}
