package model

// Core domain records, built once at load time and never mutated.

type Store struct {
	ID              string  `json:"store_id"`
	DisplayName     string  `json:"name"`
	Chain           string  `json:"chain"`
	Sales           int64   `json:"sales"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	MinWeeklyVisits int     `json:"min_weekly_visits"`
	MaxWeeklyVisits int     `json:"max_weekly_visits"`
}

type Agent struct {
	WorkerID      string  `json:"agent_id"`
	Name          string  `json:"name"`
	HomeLatitude  float64 `json:"home_latitude"`
	HomeLongitude float64 `json:"home_longitude"`
	Active        bool    `json:"active"`
}

type Visit struct {
	WorkerID           string  `json:"worker_id"`
	WorkerName         string  `json:"worker_name,omitempty"`
	DestinationStoreID string  `json:"store_id"`
	Day                string  `json:"day"`
	ArrivalTime        string  `json:"arrival_time"`
	DepartureTime      string  `json:"departure_time"`
	ServiceMinutes     float64 `json:"service_duration"`
	TravelMinutes      float64 `json:"travel_time"`
}

// Plan selects one of the two visit tables.
type Plan string

const (
	PlanManual    Plan = "manual"
	PlanOptimized Plan = "optimized"
)

// ParsePlan maps a request token to a Plan.
func ParsePlan(s string) (Plan, bool) {
	switch Plan(s) {
	case PlanManual, PlanOptimized:
		return Plan(s), true
	}
	return "", false
}
