package dataset

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	errEmpty     = errors.New("empty value")
	errNonFinite = errors.New("non-finite value")
)

// ParseCurrency turns "$1,234,567" into 1234567. The amount must be integral.
func ParseCurrency(s string) (int64, error) {
	clean := strings.NewReplacer("$", "", ",", "", " ", "").Replace(strings.TrimSpace(s))
	if clean == "" {
		return 0, errEmpty
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, fmt.Errorf("invalid currency %q", s)
	}
	if !d.Equal(d.Truncate(0)) {
		return 0, fmt.Errorf("currency %q is not a whole amount", s)
	}
	return d.IntPart(), nil
}

// ParseLatLon splits a combined "lat,lon" field.
func ParseLatLon(s string) (lat, lon float64, err error) {
	a, b, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return 0, 0, fmt.Errorf("invalid location %q: want \"lat,lon\"", s)
	}
	lat, err = parseFinite(strings.TrimSpace(a))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude in %q", s)
	}
	lon, err = parseFinite(strings.TrimSpace(b))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude in %q", s)
	}
	return lat, lon, nil
}

// ParseFlag reads an active flag. Blank cells count as set.
func ParseFlag(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "1", "true", "t", "yes", "y", "1.0":
		return true, nil
	case "0", "false", "f", "no", "n", "0.0":
		return false, nil
	}
	return false, fmt.Errorf("invalid flag %q", s)
}

// ParseInt accepts integers and integral floats ("5", "5.0").
func ParseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errEmpty
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return int(f), nil
}

// ParseNumber reads a duration in minutes. Blank cells are zero; NaN and
// infinities are rejected.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	f, err := parseFinite(s)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return f, nil
}

// parseFinite is strconv.ParseFloat without NaN or ±Inf, which JSON cannot
// encode.
func parseFinite(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNonFinite
	}
	return f, nil
}

// ChainOf derives the retail chain from a store display name.
func ChainOf(displayName string) string {
	chain, _, _ := strings.Cut(displayName, ",")
	return strings.TrimSpace(chain)
}
