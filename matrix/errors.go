// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors, accessors and kernels return these sentinels (possibly
// wrapped with a call-site tag); tests check them via errors.Is.
// No exported function panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so it is easy to grep in logs.
// Call sites wrap with fmt.Errorf("%s: %w", tag, ErrX); callers still match
// with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row/Col) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions, e.g. a row count
	// that differs from the required one or a vector of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotVector signals that a 1×N or N×1 shape was required.
	ErrNotVector = errors.New("matrix: matrix is not a vector")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
