// SPDX-License-Identifier: MIT
// Package linear: functional options for GaussSolver.

package linear

import "go.uber.org/zap"

// Option configures a GaussSolver.
type Option func(*Options)

// Options holds solver configuration; build it with Option values.
type Options struct {
	logger *zap.Logger
}

// WithLogger routes the solver's phase records (Debug level) to l.
// A nil logger keeps the default no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
