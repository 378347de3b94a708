package views

import (
	"fieldroutes/internal/dataset"
	"fieldroutes/internal/model"
)

// chainCounts returns chains in first-appearance order with store counts.
func chainCounts(d *dataset.Dataset) ([]string, map[string]int) {
	var order []string
	counts := map[string]int{}
	for _, s := range d.Stores() {
		if _, seen := counts[s.Chain]; !seen {
			order = append(order, s.Chain)
		}
		counts[s.Chain]++
	}
	return order, counts
}

// ChainDistribution reports the share of stores per chain.
func ChainDistribution(d *dataset.Dataset) model.StoreChainDistribution {
	order, counts := chainCounts(d)
	total := float64(len(d.Stores()))
	out := model.StoreChainDistribution{Chains: make([]model.ChainDistribution, 0, len(order))}
	for _, c := range order {
		out.Chains = append(out.Chains, model.ChainDistribution{
			Chain:      c,
			Count:      counts[c],
			Percentage: round(ratio(float64(counts[c]), total)*100, 1),
		})
	}
	return out
}

// ChainCoverage compares optimized visits against store counts per chain.
func ChainCoverage(d *dataset.Dataset) model.StoreChainAnalysis {
	order, counts := chainCounts(d)
	visits := map[string]int{}
	for _, v := range d.Visits(model.PlanOptimized) {
		if s, ok := d.StoreByID(v.DestinationStoreID); ok {
			visits[s.Chain]++
		}
	}
	out := model.StoreChainAnalysis{Chains: make([]model.ChainAnalysis, 0, len(order))}
	for _, c := range order {
		out.Chains = append(out.Chains, model.ChainAnalysis{
			Chain:         c,
			TotalStores:   counts[c],
			WeeklyVisits:  visits[c],
			CoverageRatio: round(ratio(float64(visits[c]), float64(counts[c])), 2),
		})
	}
	return out
}

// ChainStores drills into one chain. An unknown chain yields an empty list.
func ChainStores(d *dataset.Dataset, chain string) model.ChainStoresData {
	tallies := tallyByStore(d.Visits(model.PlanOptimized))
	stores := make([]model.ChainStore, 0)
	for _, s := range d.Stores() {
		if s.Chain == chain {
			stores = append(stores, chainStore(s, tallies[s.ID]))
		}
	}
	sortChainStores(stores)
	return model.ChainStoresData{Chain: chain, TotalStores: len(stores), Stores: stores}
}

// AllStores lists every store with its optimized coverage.
func AllStores(d *dataset.Dataset) model.AllStoresData {
	tallies := tallyByStore(d.Visits(model.PlanOptimized))
	stores := make([]model.ChainStore, 0, len(d.Stores()))
	for _, s := range d.Stores() {
		stores = append(stores, chainStore(s, tallies[s.ID]))
	}
	sortChainStores(stores)
	return model.AllStoresData{TotalStores: len(stores), Stores: stores}
}

func chainStore(s model.Store, t *tally) model.ChainStore {
	if t == nil {
		t = &tally{}
	}
	return model.ChainStore{
		StoreID:         s.ID,
		Name:            s.DisplayName,
		Sales:           s.Sales,
		WeeklyVisits:    t.total,
		MinWeeklyVisits: s.MinWeeklyVisits,
		MaxWeeklyVisits: s.MaxWeeklyVisits,
		CoverageStatus:  coverageStatus(t.total, s.MinWeeklyVisits),
		DailyVisits:     t.daily,
		Latitude:        s.Latitude,
		Longitude:       s.Longitude,
	}
}

func sortChainStores(stores []model.ChainStore) {
	sortBySales(stores, func(s model.ChainStore) int64 { return s.Sales })
}
