// SPDX-License-Identifier: MIT

// Package container reads and writes the columnar table containers that hold
// EPD summary data.
//
// A container exposes named two-dimensional float64 tables ("ring_sums",
// "impact_parameter", "tpc_multiplicity", ...). On disk every backend stores
// the same long layout, one record per cell:
//
//	table  string   // table name
//	row    int64    // zero-based row index
//	col    int64    // zero-based column index
//	value  float64  // cell value
//
// A table's shape is (max row + 1) × (max col + 1) and every cell must be
// present exactly once.
//
// Backends:
//
//   - Parquet (.parquet, .pq) via Apache Arrow (parquet/file + parquet/pqarrow).
//   - SQLite (.db, .sqlite, .sqlite3) via database/sql and modernc.org/sqlite.
//   - Memory, for tests and tools that already hold *matrix.Dense tables.
//
// A Container is a scoped resource: always Close it, typically with defer.
package container
