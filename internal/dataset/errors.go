package dataset

import (
	"errors"
	"fmt"

	"fieldroutes/internal/source"
)

var (
	// ErrDataLoad marks every failure of the one-time load.
	ErrDataLoad = errors.New("data load failed")
	// ErrNotReady is returned by Holder.Get before a dataset is published.
	ErrNotReady = errors.New("dataset not ready")
)

// LoadError locates a load failure. Row is 1-based over data rows; zero when
// the failure concerns the whole table.
type LoadError struct {
	Table  source.Table
	Row    int
	Column string
	Err    error
}

func (e *LoadError) Error() string {
	switch {
	case e.Row > 0 && e.Column != "":
		return fmt.Sprintf("%s: %s row %d column %q: %v", ErrDataLoad, e.Table, e.Row, e.Column, e.Err)
	case e.Column != "":
		return fmt.Sprintf("%s: %s column %q: %v", ErrDataLoad, e.Table, e.Column, e.Err)
	default:
		return fmt.Sprintf("%s: %s: %v", ErrDataLoad, e.Table, e.Err)
	}
}

func (e *LoadError) Unwrap() []error { return []error{ErrDataLoad, e.Err} }
