// Package epdcentrality ingests Event Plane Detector (EPD) summary data for
// centrality estimation: 16 ring sums per event, plus the impact parameter
// (simulation) or the TPC reference multiplicity (real data).
//
// 🚀 What does it do?
//
//	Opens a columnar table container, checks that every table agrees on the
//	ring and event counts, transposes the ring-major detector layout into
//	event-major feature rows, and hands an immutable Dataset to the modeling
//	stages a caller supplies.
//
// Under the hood, everything is organized in subpackages:
//
//	matrix/        dense row-major storage, validators, transpose, column statistics
//	container/     named-table containers: Parquet, SQLite, in-memory
//	centrality/    Model, Ingest, Dataset, stage interfaces, Run, Summarize
//	preprocess/    event-per-row ntuple → ring-major container
//	config/        YAML configuration with EPDC_* overrides
//	logging/       zap logger construction
//	cmd/epdcentrality  the CLI (ingest, inspect, preprocess)
//
// Quick example:
//
//	m := centrality.New(true, centrality.WithLogger(logger))
//	ds, err := m.Ingest(ctx, "sim.parquet")
//	if err != nil {
//		return err // errors.Is(err, centrality.ErrShapeMismatch), ...
//	}
//	x := ds.Features() // events × 16
//	y := ds.Target()   // impact parameter
//
// See DESIGN.md for the layout of the on-disk containers.
package epdcentrality
