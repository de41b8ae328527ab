// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opTranspose     = "Transpose"
	opColumnMeans   = "ColumnMeans"
	opColumnStdDevs = "ColumnStdDevs"
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Transpose returns a new matrix res with res[j,i] = m[i,j].
// The result never shares storage with m and keeps m's numeric policy.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: if *Dense, copy flat slices in one pass (data[i*cols+j] → res.data[j*rows+i]);
//     else use the generic At/Set loop.
//
// Behavior highlights:
//   - Deterministic i→j traversal; exactly one allocation for the result.
//
// Errors:
//   - ErrNilMatrix; wrapped At/Set errors on the generic path.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Turning ring-major detector tables (rings×events) into event-major
//     feature rows (events×rings) is exactly one Transpose.
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	var opts []Option
	if dm, ok := m.(*Dense); ok && !dm.validateNaNInf {
		opts = append(opts, WithNoValidateNaNInf())
	}
	res, err := NewDense(cols, rows, opts...) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	// Fallback: generic interface loop.
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return res, nil
}
