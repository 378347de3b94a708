package api

import (
	"net/http"

	yaml "gopkg.in/yaml.v3"
)

// OpenAPIJSONHandler serves the embedded OpenAPI document converted to JSON for tools
// that do not read YAML.
func (s *Server) OpenAPIJSONHandler(w http.ResponseWriter, r *http.Request) {
	var obj map[string]any
	if err := yaml.Unmarshal(openAPISpec, &obj); err != nil {
		writeProblem(w, http.StatusInternalServerError, "OpenAPI parse failed", err.Error(), r.URL.Path)
		return
	}
	writeJSON(w, http.StatusOK, obj)
}
