// SPDX-License-Identifier: MIT
// Package linear: sentinel error set.

package linear

import (
	"errors"
	"fmt"
)

var (
	// ErrNilSystem indicates that a nil *System was used.
	ErrNilSystem = errors.New("linear: nil system")

	// ErrNoSolutionColumn indicates an augmented matrix with zero columns.
	ErrNoSolutionColumn = errors.New("linear: augmented matrix has no solution column")
)

// linearErrorf wraps an underlying error with the given tag.
func linearErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
