package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecodeCSV(t *testing.T) {
	in := "\ufeffid,name,location\nS1,\"Walmart, Centro\",\"19.4,-99.1\"\n\n , , \nS2,Oxxo\n"
	rt, err := DecodeCSV(TableStores, strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeCSV: %v", err)
	}
	if rt.Columns[0] != "id" {
		t.Fatalf("BOM not stripped: %q", rt.Columns[0])
	}
	if len(rt.Rows) != 2 {
		t.Fatalf("blank rows must be skipped: %d", len(rt.Rows))
	}
	if rt.Rows[0][2] != "19.4,-99.1" {
		t.Fatalf("quoted cell: %q", rt.Rows[0][2])
	}
	if len(rt.Rows[1]) != 3 || rt.Rows[1][2] != "" {
		t.Fatalf("short row not padded: %v", rt.Rows[1])
	}
}

func TestDecodeCSVErrors(t *testing.T) {
	if _, err := DecodeCSV(TableStores, strings.NewReader("")); err == nil {
		t.Fatalf("empty input should fail")
	}
	if _, err := DecodeCSV(TableStores, strings.NewReader("id\n\"unterminated\n")); err == nil {
		t.Fatalf("bad quoting should fail")
	}
}

func TestDirReadTable(t *testing.T) {
	dir := t.TempDir()
	files := Files{TableStores: "tiendas.csv"}
	if err := os.WriteFile(filepath.Join(dir, "tiendas.csv"), []byte("id\nS1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	d := NewDir(dir, files)
	rt, err := d.ReadTable(context.Background(), TableStores)
	if err != nil || len(rt.Rows) != 1 || rt.Name != TableStores {
		t.Fatalf("ReadTable: %+v %v", rt, err)
	}
	if _, err := d.ReadTable(context.Background(), TableWorkers); !errors.Is(err, ErrTableNotFound) {
		t.Fatalf("missing file: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := d.ReadTable(ctx, TableStores); !errors.Is(err, context.Canceled) {
		t.Fatalf("canceled: %v", err)
	}
}

func TestFilesFallback(t *testing.T) {
	f := Files{TableStores: ""}
	if f.name(TableStores) != "stores.csv" || f.name(TableOptimized) != "result.csv" {
		t.Fatalf("fallback names: %s %s", f.name(TableStores), f.name(TableOptimized))
	}
}
