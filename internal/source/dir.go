package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Dir reads the tables as CSV files from a local directory.
type Dir struct {
	Root  string
	Files Files
}

func NewDir(root string, files Files) *Dir { return &Dir{Root: root, Files: files} }

func (d *Dir) Describe() string { return "dir:" + d.Root }

func (d *Dir) ReadTable(ctx context.Context, t Table) (RawTable, error) {
	if err := ctx.Err(); err != nil {
		return RawTable{}, err
	}
	path := filepath.Join(d.Root, d.Files.name(t))
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return RawTable{}, fmt.Errorf("%s: %s: %w", t, path, ErrTableNotFound)
	}
	if err != nil {
		return RawTable{}, fmt.Errorf("%s: open %s: %w", t, path, err)
	}
	defer func() { _ = f.Close() }()
	return DecodeCSV(t, f)
}
