// SPDX-License-Identifier: MIT

package preprocess

import (
	"context"
	"fmt"

	"github.com/apache/arrow/go/v10/arrow"
	"github.com/apache/arrow/go/v10/arrow/array"
	"github.com/apache/arrow/go/v10/arrow/memory"
	"github.com/apache/arrow/go/v10/parquet/file"
	"github.com/apache/arrow/go/v10/parquet/pqarrow"
)

// Ntuple column names.
const (
	ColMultiplicity = "RefMult1"
	ColImpact       = "b"
)

// RingColumn returns the ntuple column name of ring r (0-based): r01 … r16.
func RingColumn(r int) string {
	return fmt.Sprintf("r%02d", r+1)
}

// ntuple holds the decoded columns by name. Columns that could not be
// decoded keep their ErrColumnType error, reported only if one is required.
type ntuple struct {
	events  int
	columns map[string][]float64
	bad     map[string]error
}

// column returns the named column, ErrColumnType for a present column that
// is not numeric or holds nulls, or ErrMissingColumn.
func (n *ntuple) column(name string) ([]float64, error) {
	if v, ok := n.columns[name]; ok {
		return v, nil
	}
	if err, ok := n.bad[name]; ok {
		return nil, err
	}

	return nil, fmt.Errorf("column %q: %w", name, ErrMissingColumn)
}

// readNtuple decodes every column of the Parquet file at path.
func readNtuple(ctx context.Context, path string) (*ntuple, error) {
	rdr, err := file.OpenParquetFile(path, false)
	if err != nil {
		return nil, err
	}
	defer rdr.Close()

	mem := memory.NewGoAllocator()
	fr, err := pqarrow.NewFileReader(rdr, pqarrow.ArrowReadProperties{}, mem)
	if err != nil {
		return nil, err
	}
	tbl, err := fr.ReadTable(ctx)
	if err != nil {
		return nil, err
	}
	defer tbl.Release()

	out := &ntuple{
		events:  int(tbl.NumRows()),
		columns: make(map[string][]float64),
		bad:     make(map[string]error),
	}
	for i := 0; i < int(tbl.NumCols()); i++ {
		col := tbl.Column(i)
		if !numeric(col.DataType()) {
			out.bad[col.Name()] = fmt.Errorf("column %q has type %s: %w", col.Name(), col.DataType(), ErrColumnType)
			continue
		}
		vals, err := floatColumn(col)
		if err != nil {
			out.bad[col.Name()] = err
			continue
		}
		out.columns[col.Name()] = vals
	}

	return out, nil
}

func numeric(t arrow.DataType) bool {
	switch t.ID() {
	case arrow.FLOAT32, arrow.FLOAT64, arrow.INT32, arrow.INT64:
		return true
	default:
		return false
	}
}

// floatColumn widens a numeric column to float64, chunk by chunk.
func floatColumn(col *arrow.Column) ([]float64, error) {
	out := make([]float64, 0, col.Len())
	for _, chunk := range col.Data().Chunks() {
		if chunk.NullN() > 0 {
			return nil, fmt.Errorf("column %q: %d nulls: %w", col.Name(), chunk.NullN(), ErrColumnType)
		}
		switch arr := chunk.(type) {
		case *array.Float32:
			for _, v := range arr.Float32Values() {
				out = append(out, float64(v))
			}
		case *array.Float64:
			out = append(out, arr.Float64Values()...)
		case *array.Int32:
			for _, v := range arr.Int32Values() {
				out = append(out, float64(v))
			}
		case *array.Int64:
			for _, v := range arr.Int64Values() {
				out = append(out, float64(v))
			}
		default:
			return nil, fmt.Errorf("column %q has type %s: %w", col.Name(), chunk.DataType(), ErrColumnType)
		}
	}

	return out, nil
}
