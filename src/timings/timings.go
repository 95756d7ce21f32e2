// Package timings loads search-benchmark measurements from a CSV file into an
// in-memory column table.
//
// The expected file is the search_times.csv produced by the benchmark runner:
// a header row naming the columns, then one row per array size. The canonical
// columns are "size", one "<algo>_us" timing column per search algorithm, and
// "collisions" for the hash table. The loader itself is schema-agnostic: it
// keeps every column it finds, and lookups of absent columns fail at access
// time so callers surface the missing name.
package timings

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// Canonical column names written by the benchmark runner.
const (
	SizeColumn       = "size"
	CollisionsColumn = "collisions"
)

// SearchColumns lists the per-algorithm timing columns in chart order.
// The text before the first underscore is the algorithm's display name.
var SearchColumns = []string{"linear_us", "bst_us", "rbt_us", "hash_us", "multimap_us"}

// Table is a column-ordered table of float64 values parsed from a CSV file.
type Table struct {
	columns []string
	byName  map[string][]float64
	rows    int
}

// Load reads path as a comma-delimited file with a header row and parses every
// cell as a float64. Ragged rows and non-numeric cells are errors.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read %s: empty file", path)
	}

	header := records[0]
	cols := make([]string, len(header))
	byName := map[string][]float64{}
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			return nil, fmt.Errorf("read %s: empty column name at index %d", path, i)
		}
		if _, dup := byName[name]; dup {
			return nil, fmt.Errorf("read %s: duplicate column %q", path, name)
		}
		cols[i] = name
		byName[name] = make([]float64, 0, len(records)-1)
	}

	for ri, rec := range records[1:] {
		for ci, cell := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("parse %s row %d column %q: %w", path, ri+2, cols[ci], err)
			}
			byName[cols[ci]] = append(byName[cols[ci]], v)
		}
	}

	return &Table{columns: cols, byName: byName, rows: len(records) - 1}, nil
}

// Len returns the number of data rows (excluding the header).
func (t *Table) Len() int { return t.rows }

// Columns returns the column names in file order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Column returns the values of the named column, or an error if the file did
// not contain it. The returned slice is shared; callers must not mutate it.
func (t *Table) Column(name string) ([]float64, error) {
	vals, ok := t.byName[name]
	if !ok {
		return nil, fmt.Errorf("column %q not present (have: %s)", name, strings.Join(t.columns, ", "))
	}
	return vals, nil
}

// IntColumn is Column with the additional requirement that every value is a
// whole number, used for size and collisions counts.
func (t *Table) IntColumn(name string) ([]float64, error) {
	vals, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	for i, v := range vals {
		if v != math.Trunc(v) {
			return nil, fmt.Errorf("column %q row %d: %v is not an integer", name, i+1, v)
		}
	}
	return vals, nil
}
