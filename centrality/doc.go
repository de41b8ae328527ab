// SPDX-License-Identifier: MIT

// Package centrality ingests Event Plane Detector (EPD) summary data and
// materializes the per-event arrays a centrality-estimation model is fit on.
//
// What & Why:
//
//	A source container holds a ring-major "ring_sums" table (16 EPD rings ×
//	N events) plus the per-event target: the impact parameter for simulated
//	data, the TPC multiplicity for real data. Ingestion validates that every
//	table agrees on N, transposes the rings into event-major feature rows and
//	returns an immutable Dataset.
//
// Lifecycle:
//
//	m := centrality.New(simulated)          // Unpopulated
//	ds, err := m.Ingest(ctx, "sim.parquet") // Populated on success only
//
// A Model is populated at most once; ingest another source with a new Model.
// The container is closed on every exit path, including validation failures.
//
// Evaluation vector:
//
//	Simulated data evaluates against the measured TPC multiplicity, an
//	independent table. Real data has no ground truth, so its evaluation
//	vector is the target itself (Dataset.EvaluationAliasesTarget).
//
// Modeling stages (Builder, Estimator, Evaluator) are interfaces only; no
// fitting happens in this package.
//
// Errors:
//
//	ErrShapeMismatch  ring count ≠ 16, event-count disagreement, non-vector target
//	ErrMissingTable   required table absent (also matches ErrShapeMismatch)
//	ErrNonFinite      NaN/±Inf in an ingested table
//
// Open failures of the source are returned wrapped, unmodified in kind.
package centrality
