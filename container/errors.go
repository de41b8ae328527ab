// SPDX-License-Identifier: MIT

package container

import "errors"

// Sentinel errors. Messages are prefixed with "container:"; wrap with
// fmt.Errorf("%s: %w", tag, ErrX) and match with errors.Is.
var (
	// ErrTableNotFound is returned by Table when the container has no table with the given name.
	ErrTableNotFound = errors.New("container: table not found")

	// ErrCorruptTable indicates a table whose cells do not form a complete
	// rectangle (missing, duplicate, negative-index or null cells).
	ErrCorruptTable = errors.New("container: corrupt table")

	// ErrUnsupportedFormat is returned when the path extension or the file
	// layout is not a known container format.
	ErrUnsupportedFormat = errors.New("container: unsupported format")

	// ErrClosed is returned by any call on a closed container.
	ErrClosed = errors.New("container: closed")

	// ErrEmptyName rejects tables written without a name.
	ErrEmptyName = errors.New("container: empty table name")
)
