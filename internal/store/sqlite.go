package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// NewSQLite opens an existing SQLite file read-only.
func NewSQLite(ctx context.Context, path string, names TableNames) (*SQL, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("sqlite file: %w", err)
	}
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return newSQL(db, "sqlite", "sqlite:"+path, names), nil
}
