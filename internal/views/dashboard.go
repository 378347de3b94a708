package views

import (
	"fieldroutes/internal/config"
	"fieldroutes/internal/dataset"
	"fieldroutes/internal/model"
)

// weekdayTokens are matched verbatim against Visit.Day; no normalization.
var weekdayTokens = []struct{ token, label string }{
	{"mon", "Monday"},
	{"tue", "Tuesday"},
	{"wed", "Wednesday"},
	{"thu", "Thursday"},
	{"fri", "Friday"},
	{"sat", "Saturday"},
}

// KPIs builds the dashboard summary.
func KPIs(d *dataset.Dataset, a config.Analytics) model.KPIMetrics {
	optimized := d.Visits(model.PlanOptimized)
	out := model.KPIMetrics{
		TotalStores:           len(d.Stores()),
		ActiveAgents:          len(d.Agents(true)),
		WeeklyVisitsManual:    len(d.Visits(model.PlanManual)),
		WeeklyVisitsOptimized: len(optimized),
	}

	visited := map[string]struct{}{}
	service := 0.0
	for _, v := range optimized {
		visited[v.DestinationStoreID] = struct{}{}
		service += v.ServiceMinutes
	}
	out.VisitedStores = len(visited)
	out.AvgServiceTime = round(ratio(service, float64(len(optimized))), 1)
	for _, s := range d.Stores() {
		if _, ok := visited[s.ID]; ok {
			out.TotalSalesCoverage += s.Sales
		}
	}
	capacity := float64(out.ActiveAgents * a.VisitCapacityPerAgent)
	out.UtilizationRate = round(ratio(float64(out.WeeklyVisitsOptimized), capacity)*100, 1)
	return out
}

// DailyComparison counts manual and optimized visits for Monday..Saturday.
func DailyComparison(d *dataset.Dataset) model.EfficiencyComparison {
	manual := countBy(d.Visits(model.PlanManual), func(v model.Visit) string { return v.Day })
	optimized := countBy(d.Visits(model.PlanOptimized), func(v model.Visit) string { return v.Day })
	out := model.EfficiencyComparison{DailyComparison: make([]model.DailyComparison, 0, len(weekdayTokens))}
	for _, wd := range weekdayTokens {
		out.DailyComparison = append(out.DailyComparison, model.DailyComparison{
			Day:       wd.label,
			Manual:    manual[wd.token],
			Optimized: optimized[wd.token],
		})
	}
	return out
}

// WeeklyDistribution is the daily comparison with a per-day improvement.
func WeeklyDistribution(d *dataset.Dataset) model.WeeklyDistributionData {
	daily := DailyComparison(d).DailyComparison
	out := model.WeeklyDistributionData{WeeklyData: make([]model.WeeklyDistribution, 0, len(daily))}
	for _, dc := range daily {
		out.WeeklyData = append(out.WeeklyData, model.WeeklyDistribution{
			Day:         dc.Day,
			Before:      dc.Manual,
			After:       dc.Optimized,
			Improvement: EfficiencyMetric(dc.Manual, dc.Optimized),
		})
	}
	return out
}

// ComparisonMetrics reports plan-level before/after figures.
func ComparisonMetrics(d *dataset.Dataset) model.MetricsComparison {
	manual := d.Visits(model.PlanManual)
	optimized := d.Visits(model.PlanOptimized)
	mSvc, mTravel := sums(manual)
	oSvc, oTravel := sums(optimized)
	mAvg := ratio(mSvc, float64(len(manual)))
	oAvg := ratio(oSvc, float64(len(optimized)))
	return model.MetricsComparison{Metrics: []model.ComparisonMetric{
		{
			Metric:                "Total Weekly Visits",
			Before:                len(manual),
			After:                 len(optimized),
			Unit:                  "visits",
			ImprovementPercentage: EfficiencyMetric(len(manual), len(optimized)),
		},
		{
			Metric:                "Average Service Time",
			Before:                int(mAvg),
			After:                 int(oAvg),
			Unit:                  "minutes",
			ImprovementPercentage: Improvement(mAvg, oAvg),
		},
		{
			Metric:                "Total Travel Time",
			Before:                int(mTravel),
			After:                 int(oTravel),
			Unit:                  "minutes",
			ImprovementPercentage: Improvement(mTravel, oTravel),
		},
	}}
}

func sums(visits []model.Visit) (service, travel float64) {
	for _, v := range visits {
		service += v.ServiceMinutes
		travel += v.TravelMinutes
	}
	return service, travel
}
