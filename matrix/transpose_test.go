// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/epdcentrality/matrix"
	"github.com/stretchr/testify/require"
)

// TestTransposeRingMajor verifies res[e][r] == src[r][e] for a 16×5 ring table.
func TestTransposeRingMajor(t *testing.T) {
	src := ringMajor(t, 16, 5)

	res, err := matrix.Transpose(src)
	require.NoError(t, err)
	require.Equal(t, 5, res.Rows())
	require.Equal(t, 16, res.Cols())

	for e := 0; e < 5; e++ {
		for r := 0; r < 16; r++ {
			v, err := res.At(e, r)
			require.NoError(t, err)
			require.Equal(t, float64(r*100+e), v)
		}
	}
}

// TestTransposeFallbackMatchesFastPath forces the generic branch via hide{}.
func TestTransposeFallbackMatchesFastPath(t *testing.T) {
	src := ringMajor(t, 3, 7)

	fast, err := matrix.Transpose(src)
	require.NoError(t, err)
	slow, err := matrix.Transpose(hide{src})
	require.NoError(t, err)

	require.Equal(t, fast.Values(), slow.Values())
}

// TestTransposeIndependentStorage ensures the result never aliases the source.
func TestTransposeIndependentStorage(t *testing.T) {
	src := ringMajor(t, 2, 2)
	res, err := matrix.Transpose(src)
	require.NoError(t, err)

	require.NoError(t, src.Set(0, 1, -5))
	v, err := res.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v) // still the original src[0][1]
}

func TestTransposeNil(t *testing.T) {
	_, err := matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestTransposeKeepsPolicy checks a lax source yields a lax result.
func TestTransposeKeepsPolicy(t *testing.T) {
	src, err := matrix.NewDense(2, 3, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	res, err := matrix.Transpose(src)
	require.NoError(t, err)
	require.False(t, res.ValidatesNaNInf())
}
