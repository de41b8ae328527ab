// SPDX-License-Identifier: MIT

package container

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/katalvlaran/epdcentrality/matrix"
)

// Container is a read-only collection of named tables.
//
// Table returns a fresh copy that the caller owns; mutating it never affects
// the container. Names lists table names in ascending order. ctx bounds the
// storage reads of that one call.
type Container interface {
	Table(ctx context.Context, name string) (*matrix.Dense, error)
	Names(ctx context.Context) ([]string, error)
	Close() error
}

// Format identifies an on-disk container backend.
type Format uint8

const (
	// FormatUnknown is the zero value; no backend handles it.
	FormatUnknown Format = iota
	// FormatParquet is an Apache Parquet file in the long cell layout.
	FormatParquet
	// FormatSQLite is a SQLite database with a "cells" table.
	FormatSQLite
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case FormatParquet:
		return "parquet"
	case FormatSQLite:
		return "sqlite"
	default:
		return "unknown"
	}
}

// DetectFormat maps a path's extension (case-insensitive) to a Format.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet", ".pq":
		return FormatParquet
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatUnknown
	}
}

// Open opens the container at path, choosing the backend by extension.
// The path is not checked beforehand; open failures of the backend are
// returned wrapped with %w so os errors (fs.ErrNotExist, ...) still match.
func Open(ctx context.Context, path string) (Container, error) {
	switch DetectFormat(path) {
	case FormatParquet:
		return OpenParquet(ctx, path)
	case FormatSQLite:
		return OpenSQLite(ctx, path)
	default:
		return nil, fmt.Errorf("Open(%q): %w", path, ErrUnsupportedFormat)
	}
}

// Write stores tables at path, choosing the backend by extension.
// An existing file at path is replaced.
func Write(ctx context.Context, path string, tables map[string]*matrix.Dense) error {
	switch DetectFormat(path) {
	case FormatParquet:
		return WriteParquet(path, tables)
	case FormatSQLite:
		return WriteSQLite(ctx, path, tables)
	default:
		return fmt.Errorf("Write(%q): %w", path, ErrUnsupportedFormat)
	}
}

// Cell is one stored table value in the long layout.
type Cell struct {
	Table string
	Row   int64
	Col   int64
	Value float64
}

// Cells flattens tables into cells in deterministic (table, row, col) order.
// Every table must be non-nil and carry a non-empty name.
func Cells(tables map[string]*matrix.Dense) ([]Cell, error) {
	names := make([]string, 0, len(tables))
	total := 0
	for name, m := range tables {
		if name == "" {
			return nil, fmt.Errorf("Cells: %w", ErrEmptyName)
		}
		if err := matrix.ValidateNotNil(m); err != nil {
			return nil, fmt.Errorf("Cells(%q): %w", name, err)
		}
		names = append(names, name)
		total += m.Rows() * m.Cols()
	}
	sort.Strings(names)

	out := make([]Cell, 0, total)
	for _, name := range names {
		tables[name].Do(func(i, j int, v float64) bool {
			out = append(out, Cell{Table: name, Row: int64(i), Col: int64(j), Value: v})
			return true
		})
	}

	return out, nil
}

// assemble rebuilds one table from its cells.
//
// Implementation:
//   - Stage 1: find the max row/col; reject negative indices and indices
//     beyond the cell count (so rows*cols cannot overflow).
//   - Stage 2: require exactly rows*cols cells.
//   - Stage 3: write each cell once; a repeated coordinate is corruption.
//
// The returned Dense stores values verbatim (no NaN/Inf policy); deciding what
// to do with non-finite cells belongs to the consumer.
func assemble(name string, cells []Cell) (*matrix.Dense, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("table %q: %w", name, ErrTableNotFound)
	}
	var maxRow, maxCol int64
	n := int64(len(cells))
	for _, c := range cells {
		if c.Row < 0 || c.Col < 0 {
			return nil, fmt.Errorf("table %q: negative index (%d,%d): %w", name, c.Row, c.Col, ErrCorruptTable)
		}
		// A complete table has no index at or beyond its cell count.
		if c.Row >= n || c.Col >= n {
			return nil, fmt.Errorf("table %q: index (%d,%d) beyond %d cells: %w", name, c.Row, c.Col, n, ErrCorruptTable)
		}
		if c.Row > maxRow {
			maxRow = c.Row
		}
		if c.Col > maxCol {
			maxCol = c.Col
		}
	}
	rows, cols := int(maxRow+1), int(maxCol+1)
	if int64(rows)*int64(cols) != int64(len(cells)) {
		return nil, fmt.Errorf("table %q: %d cells for shape %dx%d: %w",
			name, len(cells), rows, cols, ErrCorruptTable)
	}

	m, err := matrix.NewDense(rows, cols, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("table %q: %w", name, err)
	}
	seen := make([]bool, rows*cols)
	var off int
	for _, c := range cells {
		off = int(c.Row)*cols + int(c.Col)
		if seen[off] {
			return nil, fmt.Errorf("table %q: duplicate cell (%d,%d): %w", name, c.Row, c.Col, ErrCorruptTable)
		}
		seen[off] = true
		if err = m.Set(int(c.Row), int(c.Col), c.Value); err != nil {
			return nil, fmt.Errorf("table %q: %w", name, err)
		}
	}

	return m, nil
}

// group splits cells by table name, keeping per-table order.
func group(cells []Cell) map[string][]Cell {
	out := make(map[string][]Cell)
	for _, c := range cells {
		out[c.Table] = append(out[c.Table], c)
	}

	return out
}
