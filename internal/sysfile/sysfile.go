// SPDX-License-Identifier: MIT

// Package sysfile reads linear systems from YAML documents and writes
// solutions back as YAML.
//
// A document gives either the augmented rows or the coefficients plus a
// solution column. Cells may be YAML numbers or strings understood by the
// selected arithmetic's Parse ("1/3" for rationals, "1+2i" for complex):
//
//	arithmetic: rational   # optional, overrides LINSOLVE_ARITHMETIC
//	rows:
//	  - [1, 2, 3, 2]
//	  - [1, 1, 1, 2]
//	  - [3, 3, "1", 0]
package sysfile

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/lvalg/arith"
	"github.com/katalvlaran/lvalg/linear"
	"github.com/katalvlaran/lvalg/matrix"
)

var (
	// ErrNoEquations reports a document with neither rows nor coefficients.
	ErrNoEquations = errors.New("sysfile: no equations")

	// ErrAmbiguous reports a document with both rows and coefficients.
	ErrAmbiguous = errors.New("sysfile: both rows and coefficients given")
)

// Document is the YAML form of a linear system.
type Document struct {
	Arithmetic   string   `yaml:"arithmetic,omitempty"`
	Precision    uint     `yaml:"precision,omitempty"`
	Tolerance    *float64 `yaml:"tolerance,omitempty"`
	Rows         [][]any  `yaml:"rows,omitempty"`
	Coefficients [][]any  `yaml:"coefficients,omitempty"`
	Solution     []any    `yaml:"solution,omitempty"`
}

// Result is the YAML form of a solution.
type Result struct {
	Kind   string   `yaml:"kind"`
	Values []string `yaml:"values,omitempty"`
}

// Decode parses a document; unknown keys are rejected.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("sysfile: decode: %w", err)
	}
	if len(doc.Rows) == 0 && len(doc.Coefficients) == 0 {
		return nil, ErrNoEquations
	}
	if len(doc.Rows) > 0 && (len(doc.Coefficients) > 0 || len(doc.Solution) > 0) {
		return nil, ErrAmbiguous
	}
	return &doc, nil
}

// System parses every cell with a and builds the linear system.
func System[T any](doc *Document, a arith.Arithmetic[T]) (*linear.System[T], error) {
	if len(doc.Rows) > 0 {
		aug, err := build(a, doc.Rows)
		if err != nil {
			return nil, err
		}
		return linear.OfAugmented(aug)
	}

	coeffs, err := build(a, doc.Coefficients)
	if err != nil {
		return nil, err
	}
	column := make([][]any, len(doc.Solution))
	for i, v := range doc.Solution {
		column[i] = []any{v}
	}
	col, err := build(a, column)
	if err != nil {
		return nil, err
	}
	return linear.Of(coeffs, col)
}

// build parses a grid of YAML scalars into a matrix defaulting to zero.
func build[T any](a arith.Arithmetic[T], grid [][]any) (*matrix.Matrix[T], error) {
	rows := make([][]T, len(grid))
	for i, row := range grid {
		rows[i] = make([]T, len(row))
		for j, cell := range row {
			v, err := a.Parse(fmt.Sprint(cell))
			if err != nil {
				return nil, fmt.Errorf("sysfile: cell (%d,%d): %w", i, j, err)
			}
			rows[i][j] = v
		}
	}
	m, err := matrix.FromRows(a, a.Zero(), rows)
	if err != nil {
		return nil, fmt.Errorf("sysfile: %w", err)
	}
	return m, nil
}

// NewResult formats sol with a.
func NewResult[T any](sol linear.Solution[T], a arith.Arithmetic[T]) Result {
	res := Result{Kind: sol.Kind().String()}
	for _, v := range sol.Values() {
		res.Values = append(res.Values, a.Format(v))
	}
	return res
}

// Encode marshals a result.
func Encode(res Result) ([]byte, error) {
	out, err := yaml.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("sysfile: encode: %w", err)
	}
	return out, nil
}
