package views

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"fieldroutes/internal/model"
)

// CanonicalDays are the seven day names used by every per-day histogram.
var CanonicalDays = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// dayTokens lists accepted spellings per canonical day, already lower-cased
// and accent-free.
var dayTokens = [7][]string{
	{"mon", "monday", "lun", "lunes"},
	{"tue", "tues", "tuesday", "mar", "martes"},
	{"wed", "weds", "wednesday", "mie", "miercoles"},
	{"thu", "thur", "thurs", "thursday", "jue", "jueves"},
	{"fri", "friday", "vie", "viernes"},
	{"sat", "saturday", "sab", "sabado"},
	{"sun", "sunday", "dom", "domingo"},
}

var dayIndex = func() map[string]int {
	m := map[string]int{}
	for i, toks := range dayTokens {
		for _, t := range toks {
			m[t] = i
		}
	}
	return m
}()

func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// DayIndex maps a day token (English or Spanish, any case, with or without
// accents) to its position in CanonicalDays.
func DayIndex(token string) (int, bool) {
	key := foldAccents(strings.ToLower(strings.TrimSpace(token)))
	key = strings.TrimSuffix(key, ".")
	i, ok := dayIndex[key]
	return i, ok
}

// NormalizeDay returns the canonical English name for a day token.
func NormalizeDay(token string) (string, bool) {
	i, ok := DayIndex(token)
	if !ok {
		return "", false
	}
	return CanonicalDays[i], true
}

func addDay(d *model.DailyVisits, i int) {
	switch i {
	case 0:
		d.Monday++
	case 1:
		d.Tuesday++
	case 2:
		d.Wednesday++
	case 3:
		d.Thursday++
	case 4:
		d.Friday++
	case 5:
		d.Saturday++
	case 6:
		d.Sunday++
	}
}
