// SPDX-License-Identifier: MIT

package preprocess

import "errors"

var (
	// ErrMissingColumn is returned when a required ntuple column is absent.
	ErrMissingColumn = errors.New("preprocess: missing column")

	// ErrNoEvents is returned for an ntuple without rows.
	ErrNoEvents = errors.New("preprocess: no events")

	// ErrColumnType is returned for a column that is not numeric or holds nulls.
	ErrColumnType = errors.New("preprocess: unsupported column")
)
