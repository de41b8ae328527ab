// SPDX-License-Identifier: MIT

package container

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/apache/arrow/go/v10/arrow"
	"github.com/apache/arrow/go/v10/arrow/array"
	"github.com/apache/arrow/go/v10/arrow/memory"
	"github.com/apache/arrow/go/v10/parquet"
	"github.com/apache/arrow/go/v10/parquet/file"
	"github.com/apache/arrow/go/v10/parquet/pqarrow"

	"github.com/katalvlaran/epdcentrality/matrix"
)

// Column names of the long cell layout.
const (
	ColTable = "table"
	ColRow   = "row"
	ColCol   = "col"
	ColValue = "value"
)

// parquetRowGroupSize bounds the rows written per row group.
const parquetRowGroupSize = 1 << 20

// cellSchema is the Arrow schema of the long cell layout.
var cellSchema = arrow.NewSchema([]arrow.Field{
	{Name: ColTable, Type: arrow.BinaryTypes.String},
	{Name: ColRow, Type: arrow.PrimitiveTypes.Int64},
	{Name: ColCol, Type: arrow.PrimitiveTypes.Int64},
	{Name: ColValue, Type: arrow.PrimitiveTypes.Float64},
}, nil)

// Parquet is a Container backed by a Parquet file.
// The file is decoded once, on the first Table or Names call.
type Parquet struct {
	mu     sync.Mutex
	path   string
	rdr    *file.Reader
	mem    memory.Allocator
	index  map[string][]Cell // nil until loaded
	closed bool
}

var _ Container = (*Parquet)(nil)

// OpenParquet opens a Parquet container. The file handle stays open until Close.
// ctx is only checked before opening; the decode happens on the first Table
// or Names call, under that call's ctx.
func OpenParquet(ctx context.Context, path string) (*Parquet, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("OpenParquet(%q): %w", path, err)
	}
	rdr, err := file.OpenParquetFile(path, false)
	if err != nil {
		return nil, fmt.Errorf("OpenParquet(%q): %w", path, err)
	}

	return &Parquet{
		path: path,
		rdr:  rdr,
		mem:  memory.NewGoAllocator(),
	}, nil
}

// NumRows reports the number of stored cells, from file metadata.
func (p *Parquet) NumRows() int64 {
	return p.rdr.NumRows()
}

// Table returns a copy of the named table.
func (p *Parquet) Table(ctx context.Context, name string) (*matrix.Dense, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.load(ctx); err != nil {
		return nil, fmt.Errorf("Parquet.Table(%q): %w", name, err)
	}
	m, err := assemble(name, p.index[name])
	if err != nil {
		return nil, fmt.Errorf("Parquet.Table: %w", err)
	}

	return m, nil
}

// Names lists table names in ascending order.
func (p *Parquet) Names(ctx context.Context) ([]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.load(ctx); err != nil {
		return nil, fmt.Errorf("Parquet.Names: %w", err)
	}
	names := make([]string, 0, len(p.index))
	for name := range p.index {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

// Close releases the file handle. It is idempotent.
func (p *Parquet) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	p.index = nil
	if err := p.rdr.Close(); err != nil {
		return fmt.Errorf("Parquet.Close(%q): %w", p.path, err)
	}

	return nil
}

// load decodes the whole file into the per-table cell index.
// Caller holds p.mu.
func (p *Parquet) load(ctx context.Context) error {
	if p.closed {
		return ErrClosed
	}
	if p.index != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	fr, err := pqarrow.NewFileReader(p.rdr, pqarrow.ArrowReadProperties{}, p.mem)
	if err != nil {
		return err
	}
	tbl, err := fr.ReadTable(ctx)
	if err != nil {
		return err
	}
	defer tbl.Release()

	cells, err := cellsFromTable(tbl)
	if err != nil {
		return err
	}
	p.index = group(cells)

	return nil
}

// cellsFromTable decodes an Arrow table in the long cell layout.
func cellsFromTable(tbl arrow.Table) ([]Cell, error) {
	schema := tbl.Schema()
	idx := make(map[string]int, 4)
	for _, name := range []string{ColTable, ColRow, ColCol, ColValue} {
		found := schema.FieldIndices(name)
		if len(found) != 1 {
			return nil, fmt.Errorf("column %q: %w", name, ErrUnsupportedFormat)
		}
		idx[name] = found[0]
	}

	names, err := stringColumn(tbl.Column(idx[ColTable]))
	if err != nil {
		return nil, err
	}
	rows, err := int64Column(tbl.Column(idx[ColRow]))
	if err != nil {
		return nil, err
	}
	cols, err := int64Column(tbl.Column(idx[ColCol]))
	if err != nil {
		return nil, err
	}
	vals, err := float64Column(tbl.Column(idx[ColValue]))
	if err != nil {
		return nil, err
	}
	n := len(names)
	if len(rows) != n || len(cols) != n || len(vals) != n {
		return nil, fmt.Errorf("column lengths differ: %w", ErrCorruptTable)
	}

	out := make([]Cell, n)
	for i := 0; i < n; i++ {
		out[i] = Cell{Table: names[i], Row: rows[i], Col: cols[i], Value: vals[i]}
	}

	return out, nil
}

func stringColumn(col *arrow.Column) ([]string, error) {
	out := make([]string, 0, col.Len())
	for _, chunk := range col.Data().Chunks() {
		arr, ok := chunk.(*array.String)
		if !ok {
			return nil, fmt.Errorf("column %q has type %s: %w", col.Name(), chunk.DataType(), ErrUnsupportedFormat)
		}
		for i := 0; i < arr.Len(); i++ {
			if arr.IsNull(i) {
				return nil, fmt.Errorf("column %q: null at %d: %w", col.Name(), i, ErrCorruptTable)
			}
			out = append(out, arr.Value(i))
		}
	}

	return out, nil
}

func int64Column(col *arrow.Column) ([]int64, error) {
	out := make([]int64, 0, col.Len())
	for _, chunk := range col.Data().Chunks() {
		arr, ok := chunk.(*array.Int64)
		if !ok {
			return nil, fmt.Errorf("column %q has type %s: %w", col.Name(), chunk.DataType(), ErrUnsupportedFormat)
		}
		for i := 0; i < arr.Len(); i++ {
			if arr.IsNull(i) {
				return nil, fmt.Errorf("column %q: null at %d: %w", col.Name(), i, ErrCorruptTable)
			}
			out = append(out, arr.Value(i))
		}
	}

	return out, nil
}

func float64Column(col *arrow.Column) ([]float64, error) {
	out := make([]float64, 0, col.Len())
	for _, chunk := range col.Data().Chunks() {
		arr, ok := chunk.(*array.Float64)
		if !ok {
			return nil, fmt.Errorf("column %q has type %s: %w", col.Name(), chunk.DataType(), ErrUnsupportedFormat)
		}
		for i := 0; i < arr.Len(); i++ {
			if arr.IsNull(i) {
				return nil, fmt.Errorf("column %q: null at %d: %w", col.Name(), i, ErrCorruptTable)
			}
			out = append(out, arr.Value(i))
		}
	}

	return out, nil
}

// WriteParquet stores tables at path in the long cell layout, replacing any
// existing file. Cells are written in (table, row, col) order.
func WriteParquet(path string, tables map[string]*matrix.Dense) error {
	cells, err := Cells(tables)
	if err != nil {
		return fmt.Errorf("WriteParquet(%q): %w", path, err)
	}

	mem := memory.NewGoAllocator()
	b := array.NewRecordBuilder(mem, cellSchema)
	defer b.Release()

	nameB := b.Field(0).(*array.StringBuilder)
	rowB := b.Field(1).(*array.Int64Builder)
	colB := b.Field(2).(*array.Int64Builder)
	valB := b.Field(3).(*array.Float64Builder)
	for _, c := range cells {
		nameB.Append(c.Table)
		rowB.Append(c.Row)
		colB.Append(c.Col)
		valB.Append(c.Value)
	}
	rec := b.NewRecord()
	defer rec.Release()
	tbl := array.NewTableFromRecords(cellSchema, []arrow.Record{rec})
	defer tbl.Release()

	var buf bytes.Buffer
	props := parquet.NewWriterProperties(parquet.WithAllocator(mem))
	arrProps := pqarrow.NewArrowWriterProperties(pqarrow.WithStoreSchema())
	if err = pqarrow.WriteTable(tbl, &buf, parquetRowGroupSize, props, arrProps); err != nil {
		return fmt.Errorf("WriteParquet(%q): %w", path, err)
	}
	if err = os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("WriteParquet(%q): %w", path, err)
	}

	return nil
}
