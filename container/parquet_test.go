// SPDX-License-Identifier: MIT

package container_test

import (
	"context"
	"io/fs"
	"math"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/epdcentrality/container"
	"github.com/katalvlaran/epdcentrality/matrix"
	"github.com/stretchr/testify/require"
)

func TestParquetRoundTrip(t *testing.T) {
	ctx := context.Background()
	tables := sampleTables(t)
	path := filepath.Join(t.TempDir(), "simulated_data.parquet")
	require.NoError(t, container.WriteParquet(path, tables))

	p, err := container.OpenParquet(ctx, path)
	require.NoError(t, err)
	defer p.Close()

	require.Equal(t, int64(16*3+3+3), p.NumRows())
	requireSameTables(t, tables, p.Table)

	_, err = p.Table(ctx, "refmult")
	require.ErrorIs(t, err, container.ErrTableNotFound)
}

// TestParquetKeepsNonFinite stores NaN/Inf verbatim; policy is the reader's business.
func TestParquetKeepsNonFinite(t *testing.T) {
	raw, err := matrix.NewDenseFromRows([][]float64{{math.NaN(), math.Inf(1)}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "raw.parquet")
	require.NoError(t, container.WriteParquet(path, map[string]*matrix.Dense{"raw": raw}))

	ctx := context.Background()
	p, err := container.OpenParquet(ctx, path)
	require.NoError(t, err)
	defer p.Close()

	got, err := p.Table(ctx, "raw")
	require.NoError(t, err)
	vals := got.Values()
	require.True(t, math.IsNaN(vals[0]))
	require.True(t, math.IsInf(vals[1], 1))
}

func TestParquetClosed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.parquet")
	require.NoError(t, container.WriteParquet(path, sampleTables(t)))

	ctx := context.Background()
	p, err := container.OpenParquet(ctx, path)
	require.NoError(t, err)
	require.NoError(t, p.Close())
	require.NoError(t, p.Close()) // idempotent

	_, err = p.Table(ctx, "ring_sums")
	require.ErrorIs(t, err, container.ErrClosed)
	_, err = p.Names(ctx)
	require.ErrorIs(t, err, container.ErrClosed)
}

func TestParquetOpenMissing(t *testing.T) {
	_, err := container.OpenParquet(context.Background(), filepath.Join(t.TempDir(), "nope.parquet"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestParquetOpenCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := container.OpenParquet(ctx, "whatever.parquet")
	require.ErrorIs(t, err, context.Canceled)
}

// TestParquetReadCanceled honors the ctx of the call that triggers the decode.
func TestParquetReadCanceled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.parquet")
	require.NoError(t, container.WriteParquet(path, sampleTables(t)))

	p, err := container.OpenParquet(context.Background(), path)
	require.NoError(t, err)
	defer p.Close()

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Table(canceled, "ring_sums")
	require.ErrorIs(t, err, context.Canceled)

	// A later call with a live ctx still decodes the file.
	m, err := p.Table(context.Background(), "ring_sums")
	require.NoError(t, err)
	require.Equal(t, 16, m.Rows())
}
