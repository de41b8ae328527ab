// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/epdcentrality/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var typed *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(typed), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateNotNil(mustRows(t, [][]float64{{1}})))
}

// TestValidateRows covers the 16-ring requirement with 15/16/17 rows.
func TestValidateRows(t *testing.T) {
	for _, rows := range []int{15, 17} {
		m := ringMajor(t, rows, 3)
		err := matrix.ValidateRows(m, 16)
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
		require.Contains(t, err.Error(), "want 16")
	}
	require.NoError(t, matrix.ValidateRows(ringMajor(t, 16, 3), 16))
	require.ErrorIs(t, matrix.ValidateRows(nil, 16), matrix.ErrNilMatrix)
}

func TestValidateVecLen(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 3), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1, 2}, 3), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2, 3}, 3))
}

// TestVectorLen accepts both orientations and rejects true 2D shapes.
func TestVectorLen(t *testing.T) {
	row := mustRows(t, [][]float64{{1, 2, 3}})
	n, err := matrix.VectorLen(row)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	col := mustRows(t, [][]float64{{1}, {2}, {3}, {4}})
	n, err = matrix.VectorLen(col)
	require.NoError(t, err)
	require.Equal(t, 4, n)

	_, err = matrix.VectorLen(mustRows(t, [][]float64{{1, 2}, {3, 4}}))
	require.ErrorIs(t, err, matrix.ErrNotVector)
}

// TestVectorValues checks fast-path and generic path give identical values.
func TestVectorValues(t *testing.T) {
	col := mustRows(t, [][]float64{{5}, {6}, {7}})

	fast, err := matrix.VectorValues(col)
	require.NoError(t, err)
	slow, err := matrix.VectorValues(hide{col})
	require.NoError(t, err)

	require.Equal(t, []float64{5, 6, 7}, fast)
	require.Equal(t, fast, slow)
}

func TestValidateFinite(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {math.Inf(1), 4}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	err = matrix.ValidateFinite(m)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "(1,0)")

	require.ErrorIs(t, matrix.ValidateFinite(hide{m}), matrix.ErrNaNInf)
	require.NoError(t, matrix.ValidateFinite(mustRows(t, [][]float64{{1, 2}})))
}
