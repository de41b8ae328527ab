// SPDX-License-Identifier: MIT

package centrality

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Model is the per-run context: it fixes the data provenance at construction
// and holds the Dataset once ingestion succeeds.
//
// The transition Unpopulated → Populated happens at most once and only on a
// fully validated ingestion; a failed Ingest leaves the Model Unpopulated.
type Model struct {
	mu         sync.Mutex
	runID      uuid.UUID
	provenance Provenance
	opts       options
	dataset    *Dataset
}

// New creates an Unpopulated Model. simulated selects the impact parameter
// as target (true) or the TPC multiplicity (false).
func New(simulated bool, opts ...Option) *Model {
	return &Model{
		runID:      uuid.New(),
		provenance: ProvenanceOf(simulated),
		opts:       gatherOptions(opts...),
	}
}

// RunID identifies this analysis run; the Dataset carries the same id.
func (m *Model) RunID() uuid.UUID { return m.runID }

// Provenance reports the data provenance fixed at construction.
func (m *Model) Provenance() Provenance { return m.provenance }

// State reports whether the Model holds a Dataset.
func (m *Model) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dataset == nil {
		return Unpopulated
	}

	return Populated
}

// Dataset returns the ingested Dataset or ErrNotPopulated.
func (m *Model) Dataset() (*Dataset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dataset == nil {
		return nil, ErrNotPopulated
	}

	return m.dataset, nil
}

// Ingest opens source, validates and reorganizes its tables, and populates
// the Model.
//
// Implementation:
//   - Stage 1: refuse a second ingestion (ErrAlreadyPopulated).
//   - Stage 2: open the container; open errors are returned wrapped.
//   - Stage 3: read and validate ring sums, target and evaluation tables.
//   - Stage 4: close the container (deferred, runs on every path).
//   - Stage 5: publish the Dataset.
//
// Errors:
//   - ErrShapeMismatch / ErrMissingTable / ErrNonFinite on validation failures.
//   - Storage errors (open, read, close) wrapped with %w.
//   - ctx.Err() when ctx is done before the source is opened.
func (m *Model) Ingest(ctx context.Context, source string) (*Dataset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dataset != nil {
		return nil, ingestErrorf(source, ErrAlreadyPopulated)
	}

	log := m.opts.logger.With(
		zap.String("run_id", m.runID.String()),
		zap.Stringer("provenance", m.provenance),
		zap.String("source", source),
	)
	ds, err := m.load(ctx, source, log)
	if err != nil {
		log.Debug("ingestion failed", zap.Error(err))
		return nil, err
	}
	m.dataset = ds

	log.Info("dataset ingested", zap.Int("events", ds.Events()))
	if ce := log.Check(zap.DebugLevel, "dataset summary"); ce != nil {
		if sum, serr := Summarize(ds); serr == nil {
			ce.Write(zap.Object("summary", sum))
		}
	}

	return ds, nil
}

// load owns the container for the duration of one ingestion.
func (m *Model) load(ctx context.Context, source string, log *zap.Logger) (ds *Dataset, err error) {
	if err = ctx.Err(); err != nil {
		return nil, ingestErrorf(source, err)
	}
	log.Debug("opening source")
	c, err := m.opts.opener(ctx, source)
	if err != nil {
		return nil, ingestErrorf(source, err)
	}
	defer func() {
		if cerr := c.Close(); cerr != nil && err == nil {
			ds, err = nil, ingestErrorf(source, fmt.Errorf("close: %w", cerr))
		}
	}()

	ds, err = readDataset(ctx, c, m.provenance, m.opts.allowNonFinite)
	if err != nil {
		return nil, ingestErrorf(source, err)
	}
	ds.runID = m.runID
	ds.source = source

	return ds, nil
}
