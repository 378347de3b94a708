// Package source provides the raw record sets the dataset is built from.
package source

import (
	"context"
	"errors"
)

// Table names one of the four input record sets.
type Table string

const (
	TableStores    Table = "stores"
	TableWorkers   Table = "workers"
	TableManual    Table = "manual_visits"
	TableOptimized Table = "optimized_visits"
)

// Tables lists every input table in load order.
var Tables = []Table{TableStores, TableWorkers, TableManual, TableOptimized}

// ErrTableNotFound is returned when a source has no data for a table.
var ErrTableNotFound = errors.New("table not found")

// RawTable is an untyped record set: a header row and string cells.
type RawTable struct {
	Name    Table
	Columns []string
	Rows    [][]string
}

// Reader yields raw tables. Implementations: Dir, S3 and the SQL readers in
// internal/store.
type Reader interface {
	ReadTable(ctx context.Context, t Table) (RawTable, error)
	Describe() string
}

// Files maps each table to the object or file name holding it.
type Files map[Table]string

// DefaultFiles are the file names produced by the upstream planning export.
func DefaultFiles() Files {
	return Files{
		TableStores:    "stores.csv",
		TableWorkers:   "workers.csv",
		TableManual:    "manual_optimization.csv",
		TableOptimized: "result.csv",
	}
}

func (f Files) name(t Table) string {
	if n, ok := f[t]; ok && n != "" {
		return n
	}
	return DefaultFiles()[t]
}
