// SPDX-License-Identifier: MIT

package centrality_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epdcentrality/centrality"
	"github.com/katalvlaran/epdcentrality/container"
	"github.com/katalvlaran/epdcentrality/matrix"
)

// ringSums builds a rings×events table with cell (r,e) = r*100 + e.
func ringSums(t *testing.T, rings, events int) *matrix.Dense {
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

// rowVec builds a 1×N table.
func rowVec(t *testing.T, v ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows([][]float64{v})
	require.NoError(t, err)

	return m
}

// colVec builds an N×1 table, the TVectorD orientation.
func colVec(t *testing.T, v ...float64) *matrix.Dense {
	t.Helper()
	rows := make([][]float64, len(v))
	for i, x := range v {
		rows[i] = []float64{x}
	}
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

var (
	impactValues = []float64{1.5, 7.25, 12}
	multValues   = []float64{310, 95, 4}
)

// wellFormedTables is the well-formed three-event source.
func wellFormedTables(t *testing.T) map[string]*matrix.Dense {
	t.Helper()

	return map[string]*matrix.Dense{
		centrality.TableRingSums:        ringSums(t, centrality.RingCount, 3),
		centrality.TableImpactParameter: rowVec(t, impactValues...),
		centrality.TableTPCMultiplicity: rowVec(t, multValues...),
	}
}

// tracked records table lookups and Close calls of an inner container.
type tracked struct {
	container.Container
	mu      sync.Mutex
	fetched []string
	closes  int
	failOn  error // returned by Close when set
}

func (c *tracked) Table(ctx context.Context, name string) (*matrix.Dense, error) {
	c.mu.Lock()
	c.fetched = append(c.fetched, name)
	c.mu.Unlock()

	return c.Container.Table(ctx, name)
}

func (c *tracked) Close() error {
	c.mu.Lock()
	c.closes++
	c.mu.Unlock()
	if err := c.Container.Close(); err != nil {
		return err
	}

	return c.failOn
}

// trackedOpener serves tables from memory through a tracked container.
func trackedOpener(tables map[string]*matrix.Dense) (*tracked, centrality.Opener) {
	c := &tracked{Container: container.NewMemory(tables)}

	return c, func(context.Context, string) (container.Container, error) {
		return c, nil
	}
}

var errBoom = errors.New("boom")
