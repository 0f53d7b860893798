// SPDX-License-Identifier: MIT

// Package config loads linsolve settings from LINSOLVE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/kelseyhightower/envconfig"

	"github.com/katalvlaran/lvalg/internal/logging"
)

// Prefix is the environment variable prefix.
const Prefix = "LINSOLVE"

// Arithmetic names accepted by Config.Arithmetic.
const (
	ArithFloat64  = "float64"
	ArithBigFloat = "bigfloat"
	ArithBigInt   = "bigint"
	ArithRational = "rational"
	ArithComplex  = "complex"
)

// ErrInvalid reports a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all linsolve configuration.
type Config struct {
	Arithmetic     string  `envconfig:"ARITHMETIC" default:"rational"`
	Precision      uint    `envconfig:"PRECISION" default:"256"`
	Tolerance      float64 `envconfig:"TOLERANCE" default:"1e-12"`
	LogLevel       string  `envconfig:"LOG_LEVEL" default:"info"`
	LogDevelopment bool    `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Arithmetic: ArithRational,
		Precision:  256,
		Tolerance:  1e-12,
		LogLevel:   "info",
	}
}

// Validate checks every field against its domain.
func (c *Config) Validate() error {
	switch c.Arithmetic {
	case ArithFloat64, ArithBigFloat, ArithBigInt, ArithRational, ArithComplex:
	default:
		return fmt.Errorf("%w: arithmetic %q", ErrInvalid, c.Arithmetic)
	}
	if c.Precision == 0 {
		return fmt.Errorf("%w: precision must be positive", ErrInvalid)
	}
	if c.Tolerance < 0 || math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) {
		return fmt.Errorf("%w: tolerance %v", ErrInvalid, c.Tolerance)
	}
	return nil
}

// Logging returns the logger configuration.
func (c *Config) Logging() logging.Config {
	return logging.Config{Level: c.LogLevel, Development: c.LogDevelopment}
}
