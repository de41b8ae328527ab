// SPDX-License-Identifier: MIT

package container_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/epdcentrality/matrix"
	"github.com/stretchr/testify/require"
)

// sampleTables returns a 16×3 ring table and two 1×3 vectors.
func sampleTables(t *testing.T) map[string]*matrix.Dense {
	t.Helper()
	rings, err := matrix.NewDense(16, 3)
	require.NoError(t, err)
	for r := 0; r < 16; r++ {
		for e := 0; e < 3; e++ {
			require.NoError(t, rings.Set(r, e, float64(r)+float64(e)/10))
		}
	}
	b, err := matrix.NewDenseFromRows([][]float64{{1.5, 7.25, 12}})
	require.NoError(t, err)
	mult, err := matrix.NewDenseFromRows([][]float64{{310}, {95}, {4}}) // column vector, as TVectorD
	require.NoError(t, err)

	return map[string]*matrix.Dense{
		"ring_sums":        rings,
		"impact_parameter": b,
		"tpc_multiplicity": mult,
	}
}

// requireSameTables compares every table value by value.
func requireSameTables(t *testing.T, want map[string]*matrix.Dense, get func(context.Context, string) (*matrix.Dense, error)) {
	t.Helper()
	for name, w := range want {
		g, err := get(context.Background(), name)
		require.NoError(t, err, name)
		require.Equal(t, w.Rows(), g.Rows(), name)
		require.Equal(t, w.Cols(), g.Cols(), name)
		require.Equal(t, w.Values(), g.Values(), name)
	}
}
