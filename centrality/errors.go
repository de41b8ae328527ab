// SPDX-License-Identifier: MIT

package centrality

import (
	"errors"
	"fmt"
)

// Sentinel errors. Match with errors.Is; messages are prefixed "centrality:".
var (
	// ErrShapeMismatch reports a table whose shape disagrees with the
	// ingestion contract (16 rings, one event count shared by all tables).
	ErrShapeMismatch = errors.New("centrality: shape mismatch")

	// ErrNonFinite reports a NaN or ±Inf value in an ingested table.
	ErrNonFinite = errors.New("centrality: non-finite value")

	// ErrAlreadyPopulated is returned by Ingest on a Model that already holds a Dataset.
	ErrAlreadyPopulated = errors.New("centrality: model already populated")

	// ErrNotPopulated is returned when a Dataset is requested before a successful Ingest.
	ErrNotPopulated = errors.New("centrality: model not populated")

	// ErrNilModel is returned by Run when no Model is supplied.
	ErrNilModel = errors.New("centrality: nil model")

	// ErrNoStages is returned by Run when no modeling stages are supplied.
	ErrNoStages = errors.New("centrality: no modeling stages")

	// ErrEstimateLength is returned by Run when an Estimator yields a number
	// of estimates different from the event count.
	ErrEstimateLength = errors.New("centrality: estimate count mismatch")
)

// ErrMissingTable reports a required table absent from the source.
// It wraps ErrShapeMismatch so callers get one validation surface; the storage
// layer's not-found error is wrapped alongside it.
var ErrMissingTable = fmt.Errorf("%w: missing table", ErrShapeMismatch)

// ingestErrorf tags an error with the source being ingested.
func ingestErrorf(source string, err error) error {
	return fmt.Errorf("Ingest(%q): %w", source, err)
}

// shapeErrorf builds an ErrShapeMismatch carrying a description of the
// failed comparison and, when non-nil, the underlying cause.
func shapeErrorf(cause error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if cause == nil {
		return fmt.Errorf("%s: %w", msg, ErrShapeMismatch)
	}

	return fmt.Errorf("%s: %w: %w", msg, ErrShapeMismatch, cause)
}
