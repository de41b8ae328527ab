// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column statistics over event-major feature matrices (one column per ring).
//
// Exposed API:
//   - ColumnMeans(X)   -> means  // Σ_i X[i,j] / r
//   - ColumnStdDevs(X) -> (stds, means) // sample std, Σ_i (X[i,j]-mean_j)² / (r-1)
//
// Determinism & Performance:
//   - Fixed i→j traversal; Dense fast-path walks the flat buffer.

package matrix

import "math"

// ColumnMeans returns the per-column arithmetic mean (len = Cols(X)).
//
// Errors: ErrNilMatrix; wrapped At errors on the generic path.
// Complexity: Time O(r*c), Space O(c).
func ColumnMeans(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	sums, err := columnSums(X, nil)
	if err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	inv := 1.0 / float64(X.Rows())
	for j := range sums {
		sums[j] *= inv
	}

	return sums, nil
}

// ColumnStdDevs returns per-column sample standard deviations and means.
// A single observation (r == 1) has no spread: stds are all zero.
//
// Errors: ErrNilMatrix; wrapped At errors on the generic path.
// Complexity: Time O(r*c), Space O(c).
//
// AI-Hints:
//   - A zero std flags a dead ring (constant signal) before any fit is attempted.
func ColumnStdDevs(X Matrix) ([]float64, []float64, error) {
	means, err := ColumnMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opColumnStdDevs, err)
	}
	r := X.Rows()
	stds := make([]float64, X.Cols())
	if r < 2 {
		return stds, means, nil
	}
	sumsq, err := columnSums(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opColumnStdDevs, err)
	}
	inv := 1.0 / float64(r-1)
	for j := range stds {
		stds[j] = math.Sqrt(sumsq[j] * inv)
	}

	return stds, means, nil
}

// columnSums accumulates Σ_i X[i,j] when center is nil, otherwise
// Σ_i (X[i,j]-center[j])².
func columnSums(X Matrix, center []float64) ([]float64, error) {
	r, c := X.Rows(), X.Cols()
	out := make([]float64, c)
	acc := func(j int, v float64) {
		if center == nil {
			out[j] += v
			return
		}
		d := v - center[j]
		out[j] += d * d
	}

	var i, j int
	if d, ok := X.(*Dense); ok {
		var base int
		for i = 0; i < r; i++ {
			base = i * c
			for j = 0; j < c; j++ {
				acc(j, d.data[base+j])
			}
		}
		return out, nil
	}

	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, err
			}
			acc(j, v)
		}
	}

	return out, nil
}
