// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels and the ingestion pipeline minimal by delegating shape/nil/finite checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can match via errors.Is.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; only ValidateFinite scans values (O(r*c)).
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape → Values).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed-nil *Dense stored in the interface is treated as nil too.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateRows ensures m is non-nil and has exactly n rows.
// The message names both counts so a failed ingestion is self-explanatory.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateRows(m Matrix, n int) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateRows", err)
	}
	if m.Rows() != n {
		return fmt.Errorf("ValidateRows: got %d rows, want %d: %w", m.Rows(), n, ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse the sentinel for "nil argument"
	}
	if len(x) != n {
		return fmt.Errorf("ValidateVecLen: got %d values, want %d: %w", len(x), n, ErrDimensionMismatch)
	}

	return nil
}

// VectorLen returns the number of entries of a 1×N or N×1 matrix.
// A 1×1 matrix has length 1. Any other shape is ErrNotVector.
//
// Errors: ErrNilMatrix, ErrNotVector.
// Complexity: O(1).
func VectorLen(m Matrix) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, validatorErrorf("VectorLen", err)
	}
	switch {
	case m.Rows() == 1:
		return m.Cols(), nil
	case m.Cols() == 1:
		return m.Rows(), nil
	default:
		return 0, fmt.Errorf("VectorLen: shape %dx%d: %w", m.Rows(), m.Cols(), ErrNotVector)
	}
}

// VectorValues copies the entries of a 1×N or N×1 matrix in storage order.
//
// Errors: as VectorLen, plus wrapped At errors on non-Dense inputs.
// Complexity: O(n).
func VectorValues(m Matrix) ([]float64, error) {
	n, err := VectorLen(m)
	if err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d.Values(), nil // row-major order of a vector is its natural order
	}
	out := make([]float64, n)
	var v float64
	for k := 0; k < n; k++ {
		if m.Rows() == 1 {
			v, err = m.At(0, k)
		} else {
			v, err = m.At(k, 0)
		}
		if err != nil {
			return nil, validatorErrorf("VectorValues", err)
		}
		out[k] = v
	}

	return out, nil
}

// ValidateFinite scans m and reports the first NaN or ±Inf in row-major order.
//
// Errors: ErrNilMatrix, ErrNaNInf (with coordinates).
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	var bad error
	visit := func(i, j int, v float64) bool {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			bad = fmt.Errorf("ValidateFinite: value %g at (%d,%d): %w", v, i, j, ErrNaNInf)
			return false
		}
		return true
	}
	if d, ok := m.(*Dense); ok {
		d.Do(visit)
		return bad
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if !visit(i, j, v) {
				return bad
			}
		}
	}

	return nil
}
