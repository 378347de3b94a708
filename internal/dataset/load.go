package dataset

import (
	"context"
	"errors"
	"fmt"

	"fieldroutes/internal/logger"
	"fieldroutes/internal/model"
	"fieldroutes/internal/source"
)

var errDuplicateID = errors.New("duplicate id")

// Load reads and normalizes all four tables. Any failure aborts the whole
// load; there is no partial dataset.
func Load(ctx context.Context, r source.Reader) (*Dataset, error) {
	raw := make(map[source.Table]source.RawTable, len(source.Tables))
	for _, t := range source.Tables {
		rt, err := r.ReadTable(ctx, t)
		if err != nil {
			return nil, &LoadError{Table: t, Err: err}
		}
		raw[t] = rt
	}

	stores, err := buildStores(raw[source.TableStores])
	if err != nil {
		return nil, err
	}
	agents, err := buildAgents(raw[source.TableWorkers])
	if err != nil {
		return nil, err
	}
	manual, manualNames, err := buildVisits(raw[source.TableManual])
	if err != nil {
		return nil, err
	}
	optimized, optNames, err := buildVisits(raw[source.TableOptimized])
	if err != nil {
		return nil, err
	}

	d := New(stores, agents, manual, optimized, WithVisitWorkerNames(manualNames || optNames))
	d.source = r.Describe()
	logger.L().Debug("dataset_tables_built",
		"source", d.source,
		"stores", len(stores),
		"agents", len(agents),
		"manual_visits", len(manual),
		"optimized_visits", len(optimized),
	)
	return d, nil
}

func buildStores(rt source.RawTable) ([]model.Store, error) {
	sc, err := detectSchema(rt.Name, rt.Columns, storeFields)
	if err != nil {
		return nil, err
	}
	out := make([]model.Store, 0, len(rt.Rows))
	seen := make(map[string]struct{}, len(rt.Rows))
	for i, row := range rt.Rows {
		n := i + 1
		fail := func(col string, err error) error {
			return &LoadError{Table: rt.Name, Row: n, Column: col, Err: err}
		}
		s := model.Store{ID: sc.get(row, "id"), DisplayName: sc.get(row, "name")}
		if s.ID == "" {
			return nil, fail("id", errEmpty)
		}
		if _, dup := seen[s.ID]; dup {
			return nil, fail("id", fmt.Errorf("%w %q", errDuplicateID, s.ID))
		}
		seen[s.ID] = struct{}{}
		s.Chain = ChainOf(s.DisplayName)
		if s.Sales, err = ParseCurrency(sc.get(row, "sales")); err != nil {
			return nil, fail("sales", err)
		}
		if s.Latitude, s.Longitude, err = ParseLatLon(sc.get(row, "location")); err != nil {
			return nil, fail("location", err)
		}
		if s.MinWeeklyVisits, err = ParseInt(sc.get(row, "min_weekly_visits")); err != nil {
			return nil, fail("min_weekly_visits", err)
		}
		if s.MaxWeeklyVisits, err = ParseInt(sc.get(row, "max_weekly_visits")); err != nil {
			return nil, fail("max_weekly_visits", err)
		}
		out = append(out, s)
	}
	return out, nil
}

func buildAgents(rt source.RawTable) ([]model.Agent, error) {
	sc, err := detectSchema(rt.Name, rt.Columns, agentFields)
	if err != nil {
		return nil, err
	}
	out := make([]model.Agent, 0, len(rt.Rows))
	seen := make(map[string]struct{}, len(rt.Rows))
	for i, row := range rt.Rows {
		n := i + 1
		fail := func(col string, err error) error {
			return &LoadError{Table: rt.Name, Row: n, Column: col, Err: err}
		}
		a := model.Agent{WorkerID: sc.get(row, "worker_id"), Name: sc.get(row, "name"), Active: true}
		if a.WorkerID == "" {
			return nil, fail("worker_id", errEmpty)
		}
		if _, dup := seen[a.WorkerID]; dup {
			return nil, fail("worker_id", fmt.Errorf("%w %q", errDuplicateID, a.WorkerID))
		}
		seen[a.WorkerID] = struct{}{}
		if a.HomeLatitude, a.HomeLongitude, err = ParseLatLon(sc.get(row, "home_location")); err != nil {
			return nil, fail("home_location", err)
		}
		if sc.has("active") {
			if a.Active, err = ParseFlag(sc.get(row, "active")); err != nil {
				return nil, fail("active", err)
			}
		}
		out = append(out, a)
	}
	return out, nil
}

func buildVisits(rt source.RawTable) ([]model.Visit, bool, error) {
	sc, err := detectSchema(rt.Name, rt.Columns, visitFields)
	if err != nil {
		return nil, false, err
	}
	out := make([]model.Visit, 0, len(rt.Rows))
	for i, row := range rt.Rows {
		n := i + 1
		v := model.Visit{
			WorkerID:           sc.get(row, "worker_id"),
			WorkerName:         sc.get(row, "worker_name"),
			DestinationStoreID: sc.get(row, "destination_store_id"),
			Day:                sc.get(row, "day"),
			ArrivalTime:        sc.get(row, "arrival_time"),
			DepartureTime:      sc.get(row, "departure_time"),
		}
		if v.ServiceMinutes, err = ParseNumber(sc.get(row, "service_minutes")); err != nil {
			return nil, false, &LoadError{Table: rt.Name, Row: n, Column: "service_minutes", Err: err}
		}
		if v.TravelMinutes, err = ParseNumber(sc.get(row, "travel_minutes")); err != nil {
			return nil, false, &LoadError{Table: rt.Name, Row: n, Column: "travel_minutes", Err: err}
		}
		out = append(out, v)
	}
	return out, sc.has("worker_name"), nil
}
