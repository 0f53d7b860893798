// SPDX-License-Identifier: MIT

package arith

import "math"

// DefaultTolerance is exact equality: floats compare with ==.
const DefaultTolerance = 0.0

const panicToleranceInvalid = "arith: WithTolerance: tol must be finite, non-negative"

// Option configures an adapter. Safe to apply repeatedly; the last one wins.
type Option func(*Options)

// Options holds adapter configuration. Fields are unexported; use Option.
type Options struct {
	tolerance float64
}

// WithTolerance makes Equal and IsZero of float adapters accept an absolute
// difference up to tol. It panics on a negative or non-finite tol.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tol }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{tolerance: DefaultTolerance}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
