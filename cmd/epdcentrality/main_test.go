// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epdcentrality/centrality"
	"github.com/katalvlaran/epdcentrality/container"
	"github.com/katalvlaran/epdcentrality/matrix"
)

// writeSource stores a three-event simulated container at path.
func writeSource(t *testing.T, path string) {
	t.Helper()
	rings, err := matrix.NewDense(centrality.RingCount, 3)
	require.NoError(t, err)
	require.NoError(t, rings.Apply(func(r, e int, _ float64) float64 { return float64(r*10 + e) }))
	b, err := matrix.NewDenseFromRows([][]float64{{2, 4, 9}})
	require.NoError(t, err)
	mult, err := matrix.NewDenseFromRows([][]float64{{300, 120, 8}})
	require.NoError(t, err)
	require.NoError(t, container.Write(context.Background(), path, map[string]*matrix.Dense{
		centrality.TableRingSums:        rings,
		centrality.TableImpactParameter: b,
		centrality.TableTPCMultiplicity: mult,
	}))
}

// run executes the CLI with a config path that does not exist.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestIngestCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.parquet")
	writeSource(t, path)

	out, err := run(t, "ingest", "--simulated", path)
	require.NoError(t, err)
	require.Contains(t, out, "events:     3")
	require.Contains(t, out, "impact_parameter min=2 max=9 mean=5")
	require.Contains(t, out, "tpc_multiplicity min=8 max=300")

	out, err = run(t, "ingest", path)
	require.NoError(t, err)
	require.Contains(t, out, "evaluation: (target)")
}

func TestIngestCommandErrors(t *testing.T) {
	_, err := run(t, "ingest")
	require.ErrorContains(t, err, "no source")

	path := filepath.Join(t.TempDir(), "short.db")
	rings, err := matrix.NewDense(15, 2)
	require.NoError(t, err)
	mult, err := matrix.NewDenseFromRows([][]float64{{1, 2}})
	require.NoError(t, err)
	require.NoError(t, container.Write(context.Background(), path, map[string]*matrix.Dense{
		centrality.TableRingSums:        rings,
		centrality.TableTPCMultiplicity: mult,
	}))
	_, err = run(t, "ingest", path)
	require.ErrorIs(t, err, centrality.ErrShapeMismatch)
}

func TestInspectCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.db")
	writeSource(t, path)

	out, err := run(t, "inspect", path)
	require.NoError(t, err)
	require.Contains(t, out, "ring_sums")
	require.Regexp(t, `impact_parameter\s+1\s+3`, out)
	require.Regexp(t, `ring_sums\s+16\s+3`, out)
}

func TestConfigSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "real.pq")
	writeSource(t, path)
	t.Setenv("EPDC_SOURCE", path)

	out, err := run(t, "ingest")
	require.NoError(t, err)
	require.Contains(t, out, "(real)")
}
