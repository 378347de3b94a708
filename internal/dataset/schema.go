package dataset

import (
	"errors"
	"strings"

	"fieldroutes/internal/source"
)

// field is one canonical column together with the header spellings seen in
// the upstream exports.
type field struct {
	name     string
	aliases  []string
	optional bool
}

var (
	storeFields = []field{
		{name: "id", aliases: []string{"id", "store_id"}},
		{name: "name", aliases: []string{"name", "store", "store_name", "display_name"}},
		{name: "sales", aliases: []string{"sales"}},
		{name: "location", aliases: []string{"location"}},
		{name: "min_weekly_visits", aliases: []string{"min_weekly_visits"}},
		{name: "max_weekly_visits", aliases: []string{"max_weekly_visits"}},
	}
	agentFields = []field{
		{name: "worker_id", aliases: []string{"worker_id", "id"}},
		{name: "name", aliases: []string{"name", "worker_name"}},
		{name: "home_location", aliases: []string{"home_location", "location"}},
		{name: "active", aliases: []string{"active_flag", "active"}, optional: true},
	}
	visitFields = []field{
		{name: "worker_id", aliases: []string{"worker_id"}},
		{name: "worker_name", aliases: []string{"worker_name", "agent_name"}, optional: true},
		{name: "destination_store_id", aliases: []string{"destination_store_id", "store_id_destination", "store_id"}},
		{name: "day", aliases: []string{"day"}},
		{name: "arrival_time", aliases: []string{"arrival_time"}},
		{name: "departure_time", aliases: []string{"departure_time"}},
		{name: "service_minutes", aliases: []string{"service_minutes", "service_min", "service_time", "service_duration"}},
		{name: "travel_minutes", aliases: []string{"travel_minutes", "trip_time", "travel_time"}},
	}
)

var errMissingColumn = errors.New("required column missing")

// schema resolves canonical field names to column positions of one table.
type schema struct {
	table source.Table
	index map[string]int
}

func detectSchema(t source.Table, columns []string, fields []field) (schema, error) {
	pos := make(map[string]int, len(columns))
	for i, c := range columns {
		key := strings.ToLower(strings.TrimSpace(c))
		if _, dup := pos[key]; !dup {
			pos[key] = i
		}
	}
	s := schema{table: t, index: map[string]int{}}
	for _, f := range fields {
		found := false
		for _, a := range f.aliases {
			if i, ok := pos[a]; ok {
				s.index[f.name] = i
				found = true
				break
			}
		}
		if !found && !f.optional {
			return schema{}, &LoadError{Table: t, Column: f.name, Err: errMissingColumn}
		}
	}
	return s, nil
}

func (s schema) has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// get returns the trimmed cell for a canonical field, or "" when the column
// is absent.
func (s schema) get(row []string, name string) string {
	i, ok := s.index[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
