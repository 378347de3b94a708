package views

import (
	"math"
	"sort"

	"fieldroutes/internal/dataset"
	"fieldroutes/internal/model"
)

// TopStoresLimit caps the top-stores view.
const TopStoresLimit = 10

func sortBySales[T any](rows []T, sales func(T) int64) {
	sort.SliceStable(rows, func(i, j int) bool { return sales(rows[i]) > sales(rows[j]) })
}

// StorePerformance compares visit counts per store across both plans.
func StorePerformance(d *dataset.Dataset) model.StorePerformanceComparison {
	before := countBy(d.Visits(model.PlanManual), byStore)
	after := countBy(d.Visits(model.PlanOptimized), byStore)
	rows := make([]model.StorePerformance, 0, len(d.Stores()))
	for _, s := range d.Stores() {
		b, a := before[s.ID], after[s.ID]
		rows = append(rows, model.StorePerformance{
			StoreID:      s.ID,
			Name:         s.DisplayName,
			Chain:        s.Chain,
			Sales:        s.Sales,
			VisitsBefore: b,
			VisitsAfter:  a,
			VisitChange:  a - b,
		})
	}
	sortBySales(rows, func(r model.StorePerformance) int64 { return r.Sales })
	return model.StorePerformanceComparison{Stores: rows}
}

// TopStores returns the highest-sales stores with their optimized coverage.
func TopStores(d *dataset.Dataset) model.TopStoresData {
	stores := append([]model.Store(nil), d.Stores()...)
	sortBySales(stores, func(s model.Store) int64 { return s.Sales })
	if len(stores) > TopStoresLimit {
		stores = stores[:TopStoresLimit]
	}
	visits := countBy(d.Visits(model.PlanOptimized), byStore)
	out := model.TopStoresData{Stores: make([]model.TopStore, 0, len(stores))}
	for _, s := range stores {
		out.Stores = append(out.Stores, model.TopStore{
			StoreID:         s.ID,
			Name:            s.DisplayName,
			Chain:           s.Chain,
			Sales:           s.Sales,
			WeeklyVisits:    visits[s.ID],
			MinWeeklyVisits: s.MinWeeklyVisits,
			MaxWeeklyVisits: s.MaxWeeklyVisits,
			CoverageStatus:  coverageStatus(visits[s.ID], s.MinWeeklyVisits),
		})
	}
	return out
}

type salesBand struct {
	label    string
	min, max int64 // [min, max)
}

var salesBands = []salesBand{
	{"$0-$1M", 0, 1_000_000},
	{"$1M-$2M", 1_000_000, 2_000_000},
	{"$2M-$5M", 2_000_000, 5_000_000},
	{"$5M-$10M", 5_000_000, 10_000_000},
	{"$10M+", 10_000_000, math.MaxInt64},
}

// bandOf returns the band index for a sales figure. Negative sales fall in
// the first band so that every store lands in exactly one.
func bandOf(sales int64) int {
	for i, b := range salesBands {
		if sales < b.max {
			return i
		}
	}
	return len(salesBands) - 1
}

// SalesRanges partitions stores into fixed sales bands.
func SalesRanges(d *dataset.Dataset) model.SalesRangeAnalysis {
	visits := countBy(d.Visits(model.PlanOptimized), byStore)
	counts := make([]int, len(salesBands))
	weekly := make([]int, len(salesBands))
	sums := make([]float64, len(salesBands))
	for _, s := range d.Stores() {
		i := bandOf(s.Sales)
		counts[i]++
		weekly[i] += visits[s.ID]
		sums[i] += float64(s.Sales)
	}
	out := model.SalesRangeAnalysis{SalesRanges: make([]model.SalesRange, 0, len(salesBands))}
	for i, b := range salesBands {
		out.SalesRanges = append(out.SalesRanges, model.SalesRange{
			Range:        b.label,
			StoreCount:   counts[i],
			WeeklyVisits: weekly[i],
			AvgSales:     round(ratio(sums[i], float64(counts[i])), 0),
		})
	}
	return out
}
