// Package store reads the input tables from a SQL database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"fieldroutes/internal/source"
)

// TableNames maps each input table to its SQL table name.
type TableNames map[source.Table]string

// DefaultTableNames uses the source table identifiers unchanged.
func DefaultTableNames() TableNames {
	out := TableNames{}
	for _, t := range source.Tables {
		out[t] = string(t)
	}
	return out
}

// SQL is a read-only source.Reader over any database/sql driver. Every
// column is read back as text so that coercion stays in one place.
type SQL struct {
	db     *sql.DB
	driver string
	names  TableNames
	desc   string
}

var _ source.Reader = (*SQL)(nil)

func newSQL(db *sql.DB, driver, desc string, names TableNames) *SQL {
	if names == nil {
		names = DefaultTableNames()
	}
	return &SQL{db: db, driver: driver, names: names, desc: desc}
}

func (s *SQL) Describe() string { return s.desc }

// Ping verifies connectivity.
func (s *SQL) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *SQL) Close() error { return s.db.Close() }

func (s *SQL) tableName(t source.Table) (string, error) {
	name := s.names[t]
	if name == "" {
		name = string(t)
	}
	if !validIdent(name) {
		return "", fmt.Errorf("%s: invalid table name %q", t, name)
	}
	return name, nil
}

// validIdent accepts [schema.]table made of letters, digits and underscores.
func validIdent(name string) bool {
	for _, part := range strings.Split(name, ".") {
		if part == "" {
			return false
		}
		for i, r := range part {
			switch {
			case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			case r >= '0' && r <= '9' && i > 0:
			default:
				return false
			}
		}
	}
	return true
}

func (s *SQL) ReadTable(ctx context.Context, t source.Table) (source.RawTable, error) {
	name, err := s.tableName(t)
	if err != nil {
		return source.RawTable{}, err
	}
	exists, err := s.tableExists(ctx, name)
	if err != nil {
		return source.RawTable{}, fmt.Errorf("%s: lookup %s: %w", t, name, err)
	}
	if !exists {
		return source.RawTable{}, fmt.Errorf("%s: %s: %w", t, name, source.ErrTableNotFound)
	}
	rows, err := s.db.QueryContext(ctx, "SELECT * FROM "+name)
	if err != nil {
		return source.RawTable{}, fmt.Errorf("%s: select %s: %w", t, name, err)
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return source.RawTable{}, fmt.Errorf("%s: columns: %w", t, err)
	}
	out := source.RawTable{Name: t, Columns: cols}
	cells := make([]sql.NullString, len(cols))
	dest := make([]any, len(cols))
	for i := range cells {
		dest[i] = &cells[i]
	}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return source.RawTable{}, fmt.Errorf("%s: scan row %d: %w", t, len(out.Rows)+1, err)
		}
		rec := make([]string, len(cols))
		for i, c := range cells {
			if c.Valid {
				rec[i] = c.String
			}
		}
		out.Rows = append(out.Rows, rec)
	}
	if err := rows.Err(); err != nil {
		return source.RawTable{}, fmt.Errorf("%s: %w", t, err)
	}
	return out, nil
}

func (s *SQL) tableExists(ctx context.Context, name string) (bool, error) {
	schema, table, qualified := strings.Cut(name, ".")
	if !qualified {
		table = schema
		schema = ""
	}
	var q string
	var args []any
	switch s.driver {
	case "sqlite":
		q = `SELECT name FROM sqlite_master WHERE type IN ('table','view') AND name = ?`
		args = []any{table}
	default:
		if schema == "" {
			q = `SELECT table_name FROM information_schema.tables WHERE table_name = $1 AND table_schema = ANY(current_schemas(false))`
			args = []any{table}
		} else {
			q = `SELECT table_name FROM information_schema.tables WHERE table_schema = $1 AND table_name = $2`
			args = []any{schema, table}
		}
	}
	var found string
	err := s.db.QueryRowContext(ctx, q, args...).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
