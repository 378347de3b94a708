package views

import "testing"

func TestNormalizeDay(t *testing.T) {
	cases := map[string]string{
		"mon": "Monday", "Monday": "Monday", "LUNES": "Monday", " lun ": "Monday",
		"tues": "Tuesday", "Martes": "Tuesday",
		"wed": "Wednesday", "miércoles": "Wednesday", "Miercoles": "Wednesday",
		"thu": "Thursday", "Thurs": "Thursday", "jueves": "Thursday",
		"fri": "Friday", "viernes": "Friday",
		"sat": "Saturday", "Sábado": "Saturday", "sabado": "Saturday",
		"sun": "Sunday", "domingo": "Sunday", "Sun.": "Sunday",
	}
	for in, want := range cases {
		got, ok := NormalizeDay(in)
		if !ok || got != want {
			t.Fatalf("NormalizeDay(%q)=%q,%v want %q", in, got, ok, want)
		}
	}
}

func TestNormalizeDayIdempotentAndTotal(t *testing.T) {
	for i, toks := range dayTokens {
		for _, tok := range toks {
			got, ok := NormalizeDay(tok)
			if !ok || got != CanonicalDays[i] {
				t.Fatalf("%q -> %q", tok, got)
			}
			again, ok := NormalizeDay(got)
			if !ok || again != got {
				t.Fatalf("not idempotent: %q -> %q", got, again)
			}
		}
	}
	for _, bad := range []string{"", "someday", "mo", "lunesx"} {
		if _, ok := NormalizeDay(bad); ok {
			t.Fatalf("%q should not map", bad)
		}
	}
}
