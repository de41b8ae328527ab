// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric storage behind every per-event
// array in epdcentrality.
//
// What & Why:
//
//	Detector summaries arrive ring-major (one row per EPD ring, one column per
//	event). Model stages want event-major rows. Dense is a flat row-major
//	float64 buffer with safe accessors, and Transpose turns one layout into the
//	other in a single pass over fresh storage.
//
// The package provides:
//
//   - Dense: row-major storage with bounds-checked At/Set and an optional
//     finite-only numeric policy.
//   - Validators: the single source of truth for nil/shape/vector/finite checks.
//   - Transpose: ring-major → event-major conversion (flat fast-path for *Dense).
//   - Column statistics (ColumnMeans, ColumnStdDevs) used by dataset summaries.
//
// Errors:
//
//	Every failure is reported through the sentinels in errors.go and wrapped
//	with a call-site tag; match them with errors.Is.
//
// Complexity:
//
//	At/Set are O(1). Clone, Transpose and the column statistics are O(r*c).
package matrix
