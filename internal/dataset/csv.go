// Package dataset loads tabular CSV data into numeric column form for
// drift analysis. The first row names the columns; every body cell must
// parse as a float64.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
)

// ErrMissingColumn is returned (wrapped) by Table.Column when the named
// column does not exist in the table.
var ErrMissingColumn = errors.New("column not found")

// Table is an immutable collection of named numeric columns. Row order
// is preserved from the source file; for production request data it is
// assumed to be chronological.
type Table struct {
	names   []string
	columns map[string][]float64
	rows    int
}

// LoadTable reads a CSV file and parses every column as float64.
// The first row is treated as headers (column names).
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: parse %s: %w", path, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("csv: %s is empty (no header row)", path)
	}

	headers := records[0]
	columns := make(map[string][]float64, len(headers))
	for _, h := range headers {
		columns[h] = make([]float64, 0, len(records)-1)
	}

	for i, record := range records[1:] {
		if len(record) != len(headers) {
			return nil, fmt.Errorf("csv: row %d has %d columns, expected %d", i+2, len(record), len(headers))
		}
		for j, cell := range record {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("csv: row %d column %q: non-numeric value %q", i+2, headers[j], cell)
			}
			columns[headers[j]] = append(columns[headers[j]], v)
		}
	}

	return &Table{
		names:   headers,
		columns: columns,
		rows:    len(records) - 1,
	}, nil
}

// Len returns the number of data rows.
func (t *Table) Len() int { return t.rows }

// Columns returns the column names in file order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Column returns the values of the named column in row order. The
// returned slice is shared with the table and must not be mutated.
// Returns a wrapped ErrMissingColumn when the column does not exist.
func (t *Table) Column(name string) ([]float64, error) {
	col, ok := t.columns[name]
	if !ok {
		return nil, fmt.Errorf("csv: %q: %w", name, ErrMissingColumn)
	}
	return col, nil
}

// Tail returns a table holding only the last n rows. When the table has
// n rows or fewer it is returned unchanged.
func (t *Table) Tail(n int) *Table {
	if n < 0 || t.rows <= n {
		return t
	}
	columns := make(map[string][]float64, len(t.names))
	for name, col := range t.columns {
		columns[name] = col[len(col)-n:]
	}
	return &Table{
		names:   t.names,
		columns: columns,
		rows:    n,
	}
}
