// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epdcentrality/matrix"
)

// 1) NewMatrixOptions() equals the documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewMatrixOptions()
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
}

// 2) Toggles apply left to right; the last writer wins.
func TestValidateNaNInfToggles_LastWriterWins(t *testing.T) {
	require.False(t, matrix.NewMatrixOptions(matrix.WithNoValidateNaNInf()).ValidateNaNInf())
	require.True(t, matrix.NewMatrixOptions(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf()).ValidateNaNInf())
	require.False(t, matrix.NewMatrixOptions(matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf()).ValidateNaNInf())
}

// 3) Nil options are skipped.
func TestNilOptionIgnored(t *testing.T) {
	require.True(t, matrix.NewMatrixOptions(nil).ValidateNaNInf())
}

// 4) The policy reaches Dense: Set accepts NaN only when validation is off.
func TestOptionsReachDense(t *testing.T) {
	strict, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	lax, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, lax.Set(0, 0, math.Inf(-1)))
	require.False(t, lax.ValidatesNaNInf())
}
