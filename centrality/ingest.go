// SPDX-License-Identifier: MIT

package centrality

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/epdcentrality/container"
	"github.com/katalvlaran/epdcentrality/matrix"
)

// readDataset runs the validation pipeline over an open container.
//
// Implementation:
//   - Stage 1: ring_sums must have RingCount rows; its column count is the event count.
//   - Stage 2: transpose ring-major → event-major into fresh storage.
//   - Stage 3: target vector from Provenance.TargetTable, length == events.
//   - Stage 4: simulated only: evaluation vector from tpc_multiplicity, length == events.
//
// Stage 1 fails before any target/evaluation table is fetched.
func readDataset(ctx context.Context, c container.Container, p Provenance, allowNonFinite bool) (*Dataset, error) {
	rings, err := fetch(ctx, c, TableRingSums)
	if err != nil {
		return nil, err
	}
	if err = matrix.ValidateRows(rings, RingCount); err != nil {
		return nil, shapeErrorf(err, "%s has %d rows, want %d rings", TableRingSums, rings.Rows(), RingCount)
	}
	if !allowNonFinite {
		if err = matrix.ValidateFinite(rings); err != nil {
			return nil, nonFiniteErrorf(TableRingSums, err)
		}
	}
	events := rings.Cols()

	features, err := matrix.Transpose(rings)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", TableRingSums, err)
	}

	target, err := readVector(ctx, c, p.TargetTable(), events, allowNonFinite)
	if err != nil {
		return nil, err
	}

	var evaluation []float64
	if name := p.EvaluationTable(); name != "" {
		if evaluation, err = readVector(ctx, c, name, events, allowNonFinite); err != nil {
			return nil, err
		}
	}

	return &Dataset{
		provenance: p,
		features:   features,
		target:     target,
		evaluation: evaluation,
	}, nil
}

// readVector fetches a 1×N or N×1 table and checks N against the event count.
func readVector(ctx context.Context, c container.Container, name string, events int, allowNonFinite bool) ([]float64, error) {
	t, err := fetch(ctx, c, name)
	if err != nil {
		return nil, err
	}
	n, err := matrix.VectorLen(t)
	if err != nil {
		return nil, shapeErrorf(err, "%s is %dx%d, want a vector of %d events", name, t.Rows(), t.Cols(), events)
	}
	if n != events {
		return nil, shapeErrorf(nil, "%s has %d events, %s has %d", name, n, TableRingSums, events)
	}
	if !allowNonFinite {
		if err = matrix.ValidateFinite(t); err != nil {
			return nil, nonFiniteErrorf(name, err)
		}
	}

	return matrix.VectorValues(t)
}

// fetch looks a table up, folding "not found" into ErrMissingTable.
func fetch(ctx context.Context, c container.Container, name string) (*matrix.Dense, error) {
	t, err := c.Table(ctx, name)
	if errors.Is(err, container.ErrTableNotFound) {
		return nil, fmt.Errorf("%s: %w: %w", name, ErrMissingTable, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return t, nil
}

func nonFiniteErrorf(name string, cause error) error {
	return fmt.Errorf("%s: %w: %w", name, ErrNonFinite, cause)
}
