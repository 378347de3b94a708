package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
		"trace":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q)=%v want %v", in, got, want)
		}
	}
}

func TestAccessMiddlewareJSON(t *testing.T) {
	var buf bytes.Buffer
	l := SetupWriter(&buf, "info", "json")
	if L() != l {
		t.Fatalf("SetupWriter must replace the default logger")
	}
	h := AccessMiddleware(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/kpis", nil))

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("not json: %q", buf.String())
	}
	if line["msg"] != "http_access" || line["path"] != "/api/kpis" {
		t.Fatalf("line: %v", line)
	}
	if line["status"].(float64) != http.StatusTeapot || line["bytes"].(float64) != 15 {
		t.Fatalf("status/bytes: %v", line)
	}
}
