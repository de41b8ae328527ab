// SPDX-License-Identifier: MIT

package centrality

import (
	"context"
	"fmt"

	"github.com/katalvlaran/epdcentrality/matrix"
)

// Builder fits a centrality estimator on a populated Dataset, using the
// feature matrix against the target vector.
type Builder interface {
	Build(ctx context.Context, ds *Dataset) (Estimator, error)
}

// Estimator produces one centrality estimate per event of a Dataset.
type Estimator interface {
	Apply(ctx context.Context, ds *Dataset) ([]float64, error)
}

// Evaluator compares estimates against the Dataset's evaluation vector.
type Evaluator interface {
	Evaluate(ctx context.Context, ds *Dataset, estimates []float64) error
}

// Stages is the full modeling surface a caller supplies to Run.
// There is no default implementation.
type Stages interface {
	Builder
	Evaluator
}

// Run executes one analysis: Ingest → Build → Apply → Evaluate.
// It returns the estimates handed to the Evaluator.
//
// Errors:
//   - ErrNilModel, ErrNoStages for missing collaborators (checked before any I/O).
//   - Ingest errors unchanged.
//   - Stage errors wrapped with the stage name.
//   - ErrEstimateLength when Apply does not return one estimate per event.
func Run(ctx context.Context, m *Model, source string, s Stages) ([]float64, error) {
	if m == nil {
		return nil, fmt.Errorf("Run: %w", ErrNilModel)
	}
	if s == nil {
		return nil, fmt.Errorf("Run: %w", ErrNoStages)
	}

	ds, err := m.Ingest(ctx, source)
	if err != nil {
		return nil, err
	}

	est, err := s.Build(ctx, ds)
	if err != nil {
		return nil, fmt.Errorf("Run: build: %w", err)
	}
	if est == nil {
		return nil, fmt.Errorf("Run: build returned no estimator: %w", ErrNoStages)
	}

	estimates, err := est.Apply(ctx, ds)
	if err != nil {
		return nil, fmt.Errorf("Run: apply: %w", err)
	}
	if err = matrix.ValidateVecLen(estimates, ds.Events()); err != nil {
		return nil, fmt.Errorf("Run: apply: %w: %w", ErrEstimateLength, err)
	}

	if err = s.Evaluate(ctx, ds, estimates); err != nil {
		return nil, fmt.Errorf("Run: evaluate: %w", err)
	}

	return estimates, nil
}
