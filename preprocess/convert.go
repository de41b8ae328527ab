// SPDX-License-Identifier: MIT

package preprocess

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/epdcentrality/centrality"
	"github.com/katalvlaran/epdcentrality/container"
	"github.com/katalvlaran/epdcentrality/matrix"
)

// Convert reads the ntuple at in and writes the ring-major container to out.
//
// Implementation:
//   - Stage 1: decode the ntuple; require at least one event.
//   - Stage 2: build tables (see Tables).
//   - Stage 3: write with the backend selected by out's extension.
//
// Errors:
//   - ErrNoEvents, ErrMissingColumn, ErrColumnType.
//   - container.ErrUnsupportedFormat for an unknown output extension.
//   - I/O errors wrapped with %w.
func Convert(ctx context.Context, in, out string, opts ...Option) error {
	o := gatherOptions(opts...)
	if container.DetectFormat(out) == container.FormatUnknown {
		return fmt.Errorf("Convert(%q): %w", out, container.ErrUnsupportedFormat)
	}

	nt, err := readNtuple(ctx, in)
	if err != nil {
		return fmt.Errorf("Convert(%q): %w", in, err)
	}
	tables, err := nt.tables(o.simulated)
	if err != nil {
		return fmt.Errorf("Convert(%q): %w", in, err)
	}
	if err = container.Write(ctx, out, tables); err != nil {
		return fmt.Errorf("Convert: %w", err)
	}

	o.logger.Info("ntuple converted",
		zap.String("in", in),
		zap.String("out", out),
		zap.Int("events", nt.events),
		zap.Int("tables", len(tables)),
	)

	return nil
}

// tables lays the event-per-row columns out ring-major.
func (n *ntuple) tables(simulated bool) (map[string]*matrix.Dense, error) {
	if n.events == 0 {
		return nil, ErrNoEvents
	}

	rings, err := matrix.NewDense(centrality.RingCount, n.events, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	for r := 0; r < centrality.RingCount; r++ {
		vals, err := n.column(RingColumn(r))
		if err != nil {
			return nil, err
		}
		for e, v := range vals {
			if err = rings.Set(r, e, v); err != nil {
				return nil, err
			}
		}
	}

	out := map[string]*matrix.Dense{centrality.TableRingSums: rings}

	mult, err := n.column(ColMultiplicity)
	if err != nil {
		return nil, err
	}
	if out[centrality.TableTPCMultiplicity], err = rowVector(mult); err != nil {
		return nil, err
	}

	b, err := n.column(ColImpact)
	switch {
	case err == nil:
		if out[centrality.TableImpactParameter], err = rowVector(b); err != nil {
			return nil, err
		}
	case simulated:
		return nil, err
	}

	return out, nil
}

func rowVector(v []float64) (*matrix.Dense, error) {
	return matrix.NewDenseFromRows([][]float64{v}, matrix.WithNoValidateNaNInf())
}
