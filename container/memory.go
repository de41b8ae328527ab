// SPDX-License-Identifier: MIT

package container

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/epdcentrality/matrix"
)

// Memory is an in-process Container over already materialized tables.
// It copies the tables on construction and on every lookup.
type Memory struct {
	mu     sync.Mutex
	tables map[string]*matrix.Dense
	closed bool
}

var _ Container = (*Memory)(nil)

// NewMemory builds a Memory container. Nil tables are skipped.
func NewMemory(tables map[string]*matrix.Dense) *Memory {
	own := make(map[string]*matrix.Dense, len(tables))
	for name, m := range tables {
		if m == nil {
			continue
		}
		own[name] = m.CloneDense()
	}

	return &Memory{tables: own}
}

// Table returns a copy of the named table.
func (c *Memory) Table(ctx context.Context, name string) (*matrix.Dense, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("Memory.Table(%q): %w", name, err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, fmt.Errorf("Memory.Table(%q): %w", name, ErrClosed)
	}
	m, ok := c.tables[name]
	if !ok {
		return nil, fmt.Errorf("Memory.Table(%q): %w", name, ErrTableNotFound)
	}

	return m.CloneDense(), nil
}

// Names lists table names in ascending order.
func (c *Memory) Names(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("Memory.Names: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, fmt.Errorf("Memory.Names: %w", ErrClosed)
	}
	names := make([]string, 0, len(c.tables))
	for name := range c.tables {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

// Close marks the container closed. It is idempotent.
func (c *Memory) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true

	return nil
}

// Closed reports whether Close has been called.
func (c *Memory) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.closed
}
