package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

const utf8BOM = "\ufeff"

// DecodeCSV reads a header row followed by data rows. Short rows are padded
// with empty cells so that column lookups never go out of range.
func DecodeCSV(t Table, r io.Reader) (RawTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return RawTable{}, fmt.Errorf("%s: empty file", t)
	}
	if err != nil {
		return RawTable{}, fmt.Errorf("%s: read header: %w", t, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	out := RawTable{Name: t, Columns: header}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return RawTable{}, fmt.Errorf("%s: %w", t, err)
		}
		if blank(rec) {
			continue
		}
		for len(rec) < len(header) {
			rec = append(rec, "")
		}
		out.Rows = append(out.Rows, rec)
	}
	return out, nil
}

func blank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
