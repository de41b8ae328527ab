// SPDX-License-Identifier: MIT

package centrality_test

import (
	"context"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/epdcentrality/centrality"
	"github.com/katalvlaran/epdcentrality/container"
)

// TestIngestFromFiles ingests both on-disk backends with the default opener.
func TestIngestFromFiles(t *testing.T) {
	ctx := context.Background()
	for _, name := range []string{"sim.parquet", "sim.db"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, container.Write(ctx, path, wellFormedTables(t)))

			ds, err := centrality.New(true).Ingest(ctx, path)
			require.NoError(t, err)
			require.Equal(t, 3, ds.Events())
			require.Equal(t, impactValues, ds.Target())
			require.Equal(t, multValues, ds.Evaluation())
			v, err := ds.Feature(2, 15)
			require.NoError(t, err)
			require.Equal(t, 1502.0, v)
		})
	}
}

func TestIngestMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.db")
	_, err := centrality.New(false).Ingest(context.Background(), path)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestIngestLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	_, open := trackedOpener(wellFormedTables(t))
	m := centrality.New(true, centrality.WithOpener(open), centrality.WithLogger(zap.New(core)))

	_, err := m.Ingest(context.Background(), "x.pq")
	require.NoError(t, err)
	require.Equal(t, 1, logs.FilterMessage("dataset ingested").Len())
	summary := logs.FilterMessage("dataset summary").All()
	require.Len(t, summary, 1)
	require.Contains(t, summary[0].ContextMap(), "summary")
}
