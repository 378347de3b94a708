// Package dataset owns the four immutable input tables.
package dataset

import (
	"time"

	"github.com/google/uuid"

	"fieldroutes/internal/model"
)

// Dataset is built once by Load and only read afterwards; accessors return
// slices that callers must not modify.
type Dataset struct {
	version  string
	loadedAt time.Time
	source   string

	stores    []model.Store
	storeByID map[string]int
	agents    []model.Agent
	manual    []model.Visit
	optimized []model.Visit
	// worker-name column present in the visit tables
	visitNames bool
}

// Option adjusts a Dataset built by New.
type Option func(*Dataset)

// WithVisitWorkerNames records whether the visit tables carry a worker-name
// column.
func WithVisitWorkerNames(present bool) Option {
	return func(d *Dataset) { d.visitNames = present }
}

// New assembles a dataset from already-coerced records. Load is the normal
// entry point; New serves fixtures and alternative loaders.
func New(stores []model.Store, agents []model.Agent, manual, optimized []model.Visit, opts ...Option) *Dataset {
	d := &Dataset{
		stores:    stores,
		agents:    agents,
		manual:    manual,
		optimized: optimized,
		storeByID: make(map[string]int, len(stores)),
		version:   uuid.NewString(),
		loadedAt:  time.Now().UTC(),
	}
	for i, s := range stores {
		if _, dup := d.storeByID[s.ID]; !dup {
			d.storeByID[s.ID] = i
		}
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dataset) Version() string     { return d.version }
func (d *Dataset) LoadedAt() time.Time { return d.loadedAt }
func (d *Dataset) Source() string      { return d.source }

// Stores returns every store in input order.
func (d *Dataset) Stores() []model.Store { return d.stores }

// StoreByID looks up a store by its unique id.
func (d *Dataset) StoreByID(id string) (model.Store, bool) {
	i, ok := d.storeByID[id]
	if !ok {
		return model.Store{}, false
	}
	return d.stores[i], true
}

// Agents returns all agents, or only the active ones.
func (d *Dataset) Agents(activeOnly bool) []model.Agent {
	if !activeOnly {
		return d.agents
	}
	out := make([]model.Agent, 0, len(d.agents))
	for _, a := range d.agents {
		if a.Active {
			out = append(out, a)
		}
	}
	return out
}

// AgentByID returns the first agent with the given worker id.
func (d *Dataset) AgentByID(id string) (model.Agent, bool) {
	for _, a := range d.agents {
		if a.WorkerID == id {
			return a, true
		}
	}
	return model.Agent{}, false
}

// AgentsByName returns every agent whose name matches exactly.
func (d *Dataset) AgentsByName(name string) []model.Agent {
	var out []model.Agent
	for _, a := range d.agents {
		if a.Name == name {
			out = append(out, a)
		}
	}
	return out
}

// Visits returns the visit table of a plan; unknown plans yield nil.
func (d *Dataset) Visits(plan model.Plan) []model.Visit {
	switch plan {
	case model.PlanManual:
		return d.manual
	case model.PlanOptimized:
		return d.optimized
	}
	return nil
}

// HasVisitWorkerNames reports whether the visit tables carry a worker-name
// column.
func (d *Dataset) HasVisitWorkerNames() bool { return d.visitNames }

// Counts summarizes table sizes for logs and metrics.
func (d *Dataset) Counts() map[string]int {
	return map[string]int{
		"stores":           len(d.stores),
		"agents":           len(d.agents),
		"manual_visits":    len(d.manual),
		"optimized_visits": len(d.optimized),
	}
}
