// SPDX-License-Identifier: MIT
// Package linear: Solution, the tagged outcome of solving a System.

package linear

import (
	"strings"
)

// Kind tags a Solution.
type Kind uint8

const (
	// Unsolvable: some equation reduces to 0 = c, c != 0.
	Unsolvable Kind = iota
	// Infinite: consistent with at least one free unknown.
	Infinite
	// Single: exactly one solution.
	Single
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Unsolvable:
		return "unsolvable"
	case Infinite:
		return "infinite"
	case Single:
		return "single"
	default:
		return "unknown"
	}
}

// Solution is the immutable result of solving a System. It keeps a
// reference to the system it was produced from.
type Solution[T any] struct {
	kind   Kind
	values []T
	system *System[T]
}

// SingleSolution returns a Single solution holding a copy of values, one
// per unknown in column order.
func SingleSolution[T any](system *System[T], values []T) Solution[T] {
	return Solution[T]{kind: Single, values: append([]T(nil), values...), system: system}
}

// InfiniteSolutions returns an Infinite solution for system.
func InfiniteSolutions[T any](system *System[T]) Solution[T] {
	return Solution[T]{kind: Infinite, system: system}
}

// NoSolution returns an Unsolvable solution for system.
func NoSolution[T any](system *System[T]) Solution[T] {
	return Solution[T]{kind: Unsolvable, system: system}
}

// Kind returns the solution tag.
func (s Solution[T]) Kind() Kind { return s.kind }

// Values returns a copy of the solution vector; nil unless Kind is Single.
func (s Solution[T]) Values() []T {
	if s.kind != Single {
		return nil
	}

	return append([]T(nil), s.values...)
}

// System returns the originating system.
func (s Solution[T]) System() *System[T] { return s.system }

// Equal compares tag, system and (for Single) the values under the
// system's arithmetic.
func (s Solution[T]) Equal(o Solution[T]) bool {
	if s.kind != o.kind || !s.system.Equal(o.system) {
		return false
	}
	if s.kind != Single {
		return true
	}
	if len(s.values) != len(o.values) {
		return false
	}
	if s.system == nil {
		return len(s.values) == 0
	}
	a := s.system.Arithmetic()
	for i := range s.values {
		if !a.Equal(s.values[i], o.values[i]) {
			return false
		}
	}

	return true
}

// String renders "single(v1, v2, ...)", "infinite" or "unsolvable".
func (s Solution[T]) String() string {
	if s.kind != Single || s.system == nil {
		return s.kind.String()
	}
	a := s.system.Arithmetic()
	var sb strings.Builder
	sb.WriteString(s.kind.String())
	sb.WriteByte('(')
	for i, v := range s.values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.Format(v))
	}
	sb.WriteByte(')')

	return sb.String()
}
