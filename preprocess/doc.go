// SPDX-License-Identifier: MIT

// Package preprocess turns an event-per-row EPD ntuple into a ring-major
// table container that centrality.Model can ingest.
//
// Input is a Parquet file with one row per event and the columns
//
//	r01 … r16   ring sums (one column per EPD ring)
//	RefMult1    TPC reference multiplicity
//	b           impact parameter (simulation only, optional)
//
// Numeric columns may be float32, float64, int32 or int64.
//
// Output tables:
//
//	ring_sums         16×N  (row r = ring r+1, column e = event e)
//	tpc_multiplicity   1×N
//	impact_parameter   1×N  (when b is present)
//
// The output format follows the extension of the destination path (see
// container.Write).
package preprocess
