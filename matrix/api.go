// SPDX-License-Identifier: MIT
// Public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points mirroring the method set
//     (Sum/Product/T/Det/InverseOf) for callers that prefer function style.
//   - Avoid any logic duplication: each facade delegates to the canonical method.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only forward.

package matrix

// Sum returns a + b. See (*Matrix).Add.
func Sum[T any](a, b *Matrix[T]) (*Matrix[T], error) {
	return a.Add(b)
}

// Product returns a × b. See (*Matrix).Multiply.
func Product[T any](a, b *Matrix[T]) (*Matrix[T], error) {
	return a.Multiply(b)
}

// T returns the transpose of m. See (*Matrix).Transpose.
func T[E any](m *Matrix[E]) (*Matrix[E], error) {
	return m.Transpose()
}

// Det returns det(m). See (*Matrix).Determinant.
func Det[T any](m *Matrix[T]) (T, error) {
	return m.Determinant()
}

// InverseOf returns m⁻¹ and whether it exists. See (*Matrix).Inverse.
func InverseOf[T any](m *Matrix[T]) (*Matrix[T], bool, error) {
	return m.Inverse()
}
