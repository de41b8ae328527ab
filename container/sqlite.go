// SPDX-License-Identifier: MIT

package container

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/katalvlaran/epdcentrality/matrix"
)

const sqliteDriver = "sqlite"

const (
	sqlCreateCells = `CREATE TABLE cells (
	name    TEXT    NOT NULL,
	row_idx INTEGER NOT NULL,
	col_idx INTEGER NOT NULL,
	value   REAL    NOT NULL,
	PRIMARY KEY (name, row_idx, col_idx)
)`
	sqlInsertCell  = `INSERT INTO cells (name, row_idx, col_idx, value) VALUES (?, ?, ?, ?)`
	sqlSelectTable = `SELECT row_idx, col_idx, value FROM cells WHERE name = ? ORDER BY row_idx, col_idx`
	sqlSelectNames = `SELECT DISTINCT name FROM cells ORDER BY name`
	sqlHasCells    = `SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'cells'`
)

// SQLite is a Container backed by a SQLite database holding a "cells" table.
type SQLite struct {
	mu     sync.Mutex
	path   string
	db     *sql.DB
	closed bool
}

var _ Container = (*SQLite)(nil)

// OpenSQLite opens an existing SQLite container.
// A missing file is reported as the os error (fs.ErrNotExist) rather than
// silently creating an empty database.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("OpenSQLite(%q): %w", path, err)
	}
	db, err := sql.Open(sqliteDriver, path)
	if err != nil {
		return nil, fmt.Errorf("OpenSQLite(%q): %w", path, err)
	}
	var n int
	if err = db.QueryRowContext(ctx, sqlHasCells).Scan(&n); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("OpenSQLite(%q): %w", path, err)
	}
	if n == 0 {
		_ = db.Close()
		return nil, fmt.Errorf("OpenSQLite(%q): no cells table: %w", path, ErrUnsupportedFormat)
	}

	return &SQLite{path: path, db: db}, nil
}

// Table returns a copy of the named table.
func (s *SQLite) Table(ctx context.Context, name string) (*matrix.Dense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, fmt.Errorf("SQLite.Table(%q): %w", name, ErrClosed)
	}

	rows, err := s.db.QueryContext(ctx, sqlSelectTable, name)
	if err != nil {
		return nil, fmt.Errorf("SQLite.Table(%q): %w", name, err)
	}
	defer rows.Close()

	var cells []Cell
	for rows.Next() {
		c := Cell{Table: name}
		if err = rows.Scan(&c.Row, &c.Col, &c.Value); err != nil {
			return nil, fmt.Errorf("SQLite.Table(%q): %w", name, err)
		}
		cells = append(cells, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("SQLite.Table(%q): %w", name, err)
	}

	m, err := assemble(name, cells)
	if err != nil {
		return nil, fmt.Errorf("SQLite.Table: %w", err)
	}

	return m, nil
}

// Names lists table names in ascending order.
func (s *SQLite) Names(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, fmt.Errorf("SQLite.Names: %w", ErrClosed)
	}

	rows, err := s.db.QueryContext(ctx, sqlSelectNames)
	if err != nil {
		return nil, fmt.Errorf("SQLite.Names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("SQLite.Names: %w", err)
		}
		names = append(names, name)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("SQLite.Names: %w", err)
	}

	return names, nil
}

// Close closes the database handle. It is idempotent.
func (s *SQLite) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("SQLite.Close(%q): %w", s.path, err)
	}

	return nil
}

// WriteSQLite stores tables at path, replacing any existing file.
// All cells are inserted in one transaction. SQLite has no NaN: a NaN cell
// fails the NOT NULL constraint, so sanitize such tables or use Parquet.
func WriteSQLite(ctx context.Context, path string, tables map[string]*matrix.Dense) (err error) {
	cells, err := Cells(tables)
	if err != nil {
		return fmt.Errorf("WriteSQLite(%q): %w", path, err)
	}
	if err = os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("WriteSQLite(%q): %w", path, err)
	}

	db, err := sql.Open(sqliteDriver, path)
	if err != nil {
		return fmt.Errorf("WriteSQLite(%q): %w", path, err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("WriteSQLite(%q): %w", path, cerr)
		}
	}()

	if _, err = db.ExecContext(ctx, sqlCreateCells); err != nil {
		return fmt.Errorf("WriteSQLite(%q): %w", path, err)
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("WriteSQLite(%q): %w", path, err)
	}
	stmt, err := tx.PrepareContext(ctx, sqlInsertCell)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("WriteSQLite(%q): %w", path, err)
	}
	defer stmt.Close()

	for _, c := range cells {
		if _, err = stmt.ExecContext(ctx, c.Table, c.Row, c.Col, c.Value); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("WriteSQLite(%q): cell %s(%d,%d): %w", path, c.Table, c.Row, c.Col, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("WriteSQLite(%q): %w", path, err)
	}

	return nil
}
