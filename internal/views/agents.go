package views

import (
	"fieldroutes/internal/config"
	"fieldroutes/internal/dataset"
	"fieldroutes/internal/model"
)

// Efficiency ratings by optimized weekly visits, highest threshold first.
var ratings = []struct {
	min   int
	label string
}{
	{15, "Excellent"},
	{12, "Good"},
	{8, "Average"},
}

// Rating classifies an agent's weekly visit count.
func Rating(weekly int) string {
	for _, r := range ratings {
		if weekly >= r.min {
			return r.label
		}
	}
	return "Below Average"
}

// AgentPerformance compares each agent's visit count across both plans.
func AgentPerformance(d *dataset.Dataset) model.AgentPerformanceComparison {
	before := countBy(d.Visits(model.PlanManual), byWorker)
	after := countBy(d.Visits(model.PlanOptimized), byWorker)
	agents := d.Agents(false)
	out := model.AgentPerformanceComparison{Agents: make([]model.AgentPerformance, 0, len(agents))}
	for _, a := range agents {
		b, f := before[a.WorkerID], after[a.WorkerID]
		out.Agents = append(out.Agents, model.AgentPerformance{
			AgentID:        a.WorkerID,
			Name:           a.Name,
			VisitsBefore:   b,
			VisitsAfter:    f,
			EfficiencyGain: EfficiencyMetric(b, f),
		})
	}
	return out
}

type workload struct {
	visits          int
	service, travel float64
}

func workloads(visits []model.Visit) map[string]*workload {
	out := map[string]*workload{}
	for _, v := range visits {
		w := out[v.WorkerID]
		if w == nil {
			w = &workload{}
			out[v.WorkerID] = w
		}
		w.visits++
		w.service += v.ServiceMinutes
		w.travel += v.TravelMinutes
	}
	return out
}

// AgentCoverage reports optimized workload and time split per active agent.
func AgentCoverage(d *dataset.Dataset) model.AgentCoverageData {
	loads := workloads(d.Visits(model.PlanOptimized))
	agents := d.Agents(true)
	out := model.AgentCoverageData{Agents: make([]model.AgentCoverage, 0, len(agents))}
	for _, a := range agents {
		row := model.AgentCoverage{AgentID: a.WorkerID, Name: a.Name}
		if w := loads[a.WorkerID]; w != nil {
			row.WeeklyVisits = w.visits
			total := w.service + w.travel
			if total > 0 {
				row.StoreTimePercentage = round(w.service/total*100, 1)
			}
			// travel absorbs the rounding remainder so the three shares sum to 100
			row.TravelTimePercentage = round(100-row.StoreTimePercentage, 1)
			row.AdminTimePercentage = round(100-row.StoreTimePercentage-row.TravelTimePercentage, 1)
		}
		row.EfficiencyRating = Rating(row.WeeklyVisits)
		out.Agents = append(out.Agents, row)
	}
	return out
}

// TimeDistribution estimates the store/travel/admin split for charting from
// active agents' optimized visits. Store shares under the configured floor
// are replaced by the forced share.
func TimeDistribution(d *dataset.Dataset, ts config.TimeSplit) model.TimeDistribution {
	active := map[string]bool{}
	for _, a := range d.Agents(true) {
		active[a.WorkerID] = true
	}
	var n int
	var service, travel float64
	for _, v := range d.Visits(model.PlanOptimized) {
		if !active[v.WorkerID] {
			continue
		}
		n++
		service += v.ServiceMinutes
		travel += v.TravelMinutes
	}
	fallback := model.TimeDistribution{
		StoreTimePercentage:  ts.FallbackStore,
		TravelTimePercentage: ts.FallbackTravel,
		AdminTimePercentage:  round(100-ts.FallbackStore-ts.FallbackTravel, 1),
	}
	if n == 0 {
		return fallback
	}
	meanService, meanTravel := service/float64(n), travel/float64(n)
	if meanService+meanTravel == 0 {
		return fallback
	}
	work := 100 - ts.AdminPct
	store := meanService / (meanService + meanTravel) * work
	if store < ts.StoreFloorPct {
		store = ts.StoreForcedPct
	}
	store = round(store, 1)
	return model.TimeDistribution{
		StoreTimePercentage:  store,
		TravelTimePercentage: round(work-store, 1),
		AdminTimePercentage:  ts.AdminPct,
	}
}

// AgentStores lists the stores an agent visits in the optimized plan with
// that agent's per-store histogram. Unknown agents yield an empty list.
func AgentStores(d *dataset.Dataset, name string) model.AgentStoresData {
	visits := agentVisits(d, name)
	tallies := map[string]*tally{}
	var order []string
	for _, v := range visits {
		t := tallies[v.DestinationStoreID]
		if t == nil {
			t = &tally{}
			tallies[v.DestinationStoreID] = t
			order = append(order, v.DestinationStoreID)
		}
		t.add(v.Day)
	}
	stores := make([]model.AgentStore, 0, len(order))
	for _, id := range order {
		s, ok := d.StoreByID(id)
		if !ok {
			continue
		}
		t := tallies[id]
		stores = append(stores, model.AgentStore{
			StoreID:        s.ID,
			Name:           s.DisplayName,
			Sales:          s.Sales,
			CoverageStatus: coverageStatus(t.total, s.MinWeeklyVisits),
			WeeklyVisits:   t.total,
			DailyVisits:    t.daily,
		})
	}
	sortBySales(stores, func(s model.AgentStore) int64 { return s.Sales })
	return model.AgentStoresData{Agent: name, Stores: stores}
}

// agentVisits matches on the embedded worker-name column when the visit
// tables carry one, falling back to name to worker id resolution.
func agentVisits(d *dataset.Dataset, name string) []model.Visit {
	optimized := d.Visits(model.PlanOptimized)
	if d.HasVisitWorkerNames() {
		var out []model.Visit
		for _, v := range optimized {
			if v.WorkerName == name {
				out = append(out, v)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	ids := map[string]bool{}
	for _, a := range d.AgentsByName(name) {
		ids[a.WorkerID] = true
	}
	if len(ids) == 0 {
		return nil
	}
	var out []model.Visit
	for _, v := range optimized {
		if ids[v.WorkerID] {
			out = append(out, v)
		}
	}
	return out
}
