package views

import (
	"fieldroutes/internal/dataset"
	"fieldroutes/internal/model"
)

func visit(worker, store, day, arrival string, service, travel float64) model.Visit {
	return model.Visit{
		WorkerID:           worker,
		DestinationStoreID: store,
		Day:                day,
		ArrivalTime:        arrival,
		DepartureTime:      arrival,
		ServiceMinutes:     service,
		TravelMinutes:      travel,
	}
}

// fixture: four stores in three chains, two active agents and one inactive,
// and an optimized plan that includes Spanish day names and an orphan store.
func fixture() *dataset.Dataset {
	stores := []model.Store{
		{ID: "S1", DisplayName: "Walmart, Centro", Chain: "Walmart", Sales: 12_000_000, Latitude: 19.43, Longitude: -99.13, MinWeeklyVisits: 5, MaxWeeklyVisits: 7},
		{ID: "S2", DisplayName: "Walmart, Norte", Chain: "Walmart", Sales: 3_000_000, Latitude: 19.50, Longitude: -99.14, MinWeeklyVisits: 2, MaxWeeklyVisits: 3},
		{ID: "S3", DisplayName: "Soriana", Chain: "Soriana", Sales: 500_000, Latitude: 19.36, Longitude: -99.17, MinWeeklyVisits: 1, MaxWeeklyVisits: 2},
		{ID: "S4", DisplayName: "Oxxo, Sur", Chain: "Oxxo", Sales: 1_500_000, Latitude: 19.30, Longitude: -99.16, MinWeeklyVisits: 1, MaxWeeklyVisits: 2},
	}
	agents := []model.Agent{
		{WorkerID: "A1", Name: "Ana", HomeLatitude: 19.40, HomeLongitude: -99.12, Active: true},
		{WorkerID: "A2", Name: "Luis", HomeLatitude: 19.33, HomeLongitude: -99.15, Active: true},
		{WorkerID: "A3", Name: "Marta", HomeLatitude: 19.45, HomeLongitude: -99.10, Active: false},
	}
	manual := []model.Visit{
		visit("A1", "S1", "mon", "09:00", 40, 20),
		visit("A1", "S2", "tue", "10:00", 40, 20),
		visit("A2", "S3", "mon", "09:00", 40, 20),
		visit("A2", "S4", "wed", "11:00", 40, 20),
	}
	optimized := []model.Visit{
		visit("A1", "S1", "mon", "09:15", 60, 10),
		visit("A1", "S2", "mon", "10:05", 30, 20),
		visit("A1", "S1", "tue", "14:37", 60, 10),
		visit("A2", "S3", "Miércoles", "09:45", 45, 15),
		visit("A2", "S4", "Sábado", "11:00", 45, 15),
		visit("A2", "S9", "fri", "12:00", 30, 10),
		visit("A3", "S1", "thu", "08:30", 20, 20),
	}
	return dataset.New(stores, agents, manual, optimized)
}
