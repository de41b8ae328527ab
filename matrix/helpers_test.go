// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the Dense, validator,
//     transpose and statistics tests.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/epdcentrality/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic (non *Dense) branches of kernels and validators.
type hide struct{ matrix.Matrix }

// mustRows builds a *Dense from literal rows or fails the test.
func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// ringMajor returns a rings×events matrix whose cell (r,e) encodes both
// indices as r*100+e, so a transposed cell is easy to verify.
func ringMajor(t *testing.T, rings, events int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rings, events)
	require.NoError(t, err)
	for r := 0; r < rings; r++ {
		for e := 0; e < events; e++ {
			require.NoError(t, m.Set(r, e, float64(r*100+e)))
		}
	}

	return m
}
