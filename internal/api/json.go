package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"fieldroutes/internal/dataset"
	"fieldroutes/internal/logger"
	"fieldroutes/internal/views"
)

// Problem represents an RFC7807 problem details response body.
type Problem struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeProblem(w http.ResponseWriter, status int, title, detail, instance string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Problem{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: instance,
	})
}

// writeError maps domain errors to problem responses.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, dataset.ErrNotReady):
		w.Header().Set("Retry-After", "5")
		writeProblem(w, http.StatusServiceUnavailable, "Not Ready", "dataset is still loading", r.URL.Path)
	case errors.Is(err, views.ErrInvalidArgument):
		writeProblem(w, http.StatusBadRequest, "Invalid Argument", err.Error(), r.URL.Path)
	default:
		logger.L().Error("view_failed", "path", r.URL.Path, "error", err)
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "", r.URL.Path)
	}
}
