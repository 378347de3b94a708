package model

// Read models for API responses

type KPIMetrics struct {
	TotalStores           int     `json:"total_stores"`
	ActiveAgents          int     `json:"active_agents"`
	WeeklyVisitsManual    int     `json:"weekly_visits_manual"`
	WeeklyVisitsOptimized int     `json:"weekly_visits_optimized"`
	VisitedStores         int     `json:"visited_stores"`
	AvgServiceTime        float64 `json:"avg_service_time"`
	TotalSalesCoverage    int64   `json:"total_sales_coverage"`
	UtilizationRate       float64 `json:"utilization_rate"`
}

type DailyComparison struct {
	Day       string `json:"day"`
	Manual    int    `json:"manual"`
	Optimized int    `json:"optimized"`
}

type EfficiencyComparison struct {
	DailyComparison []DailyComparison `json:"daily_comparison"`
}

type ChainDistribution struct {
	Chain      string  `json:"chain"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type StoreChainDistribution struct {
	Chains []ChainDistribution `json:"chains"`
}

type ComparisonMetric struct {
	Metric                string  `json:"metric"`
	Before                int     `json:"before"`
	After                 int     `json:"after"`
	Unit                  string  `json:"unit"`
	ImprovementPercentage float64 `json:"improvement_percentage"`
}

type MetricsComparison struct {
	Metrics []ComparisonMetric `json:"metrics"`
}

type AgentPerformance struct {
	AgentID        string  `json:"agent_id"`
	Name           string  `json:"name"`
	VisitsBefore   int     `json:"visits_before"`
	VisitsAfter    int     `json:"visits_after"`
	EfficiencyGain float64 `json:"efficiency_gain"`
}

type AgentPerformanceComparison struct {
	Agents []AgentPerformance `json:"agents"`
}

type StorePerformance struct {
	StoreID      string `json:"store_id"`
	Name         string `json:"name"`
	Chain        string `json:"chain"`
	Sales        int64  `json:"sales"`
	VisitsBefore int    `json:"visits_before"`
	VisitsAfter  int    `json:"visits_after"`
	VisitChange  int    `json:"visit_change"`
}

type StorePerformanceComparison struct {
	Stores []StorePerformance `json:"stores"`
}

type WeeklyDistribution struct {
	Day         string  `json:"day"`
	Before      int     `json:"before"`
	After       int     `json:"after"`
	Improvement float64 `json:"improvement"`
}

type WeeklyDistributionData struct {
	WeeklyData []WeeklyDistribution `json:"weekly_data"`
}

type AgentCoverage struct {
	AgentID              string  `json:"agent_id"`
	Name                 string  `json:"name"`
	WeeklyVisits         int     `json:"weekly_visits"`
	StoreTimePercentage  float64 `json:"store_time_percentage"`
	TravelTimePercentage float64 `json:"travel_time_percentage"`
	AdminTimePercentage  float64 `json:"admin_time_percentage"`
	EfficiencyRating     string  `json:"efficiency_rating"`
}

type AgentCoverageData struct {
	Agents []AgentCoverage `json:"agents"`
}

type ChainAnalysis struct {
	Chain         string  `json:"chain"`
	TotalStores   int     `json:"total_stores"`
	WeeklyVisits  int     `json:"weekly_visits"`
	CoverageRatio float64 `json:"coverage_ratio"`
}

type StoreChainAnalysis struct {
	Chains []ChainAnalysis `json:"chains"`
}

type TopStore struct {
	StoreID         string `json:"store_id"`
	Name            string `json:"name"`
	Chain           string `json:"chain"`
	Sales           int64  `json:"sales"`
	WeeklyVisits    int    `json:"weekly_visits"`
	MinWeeklyVisits int    `json:"min_weekly_visits"`
	MaxWeeklyVisits int    `json:"max_weekly_visits"`
	CoverageStatus  string `json:"coverage_status"`
}

type TopStoresData struct {
	Stores []TopStore `json:"stores"`
}

type SalesRange struct {
	Range        string  `json:"range"`
	StoreCount   int     `json:"store_count"`
	WeeklyVisits int     `json:"weekly_visits"`
	AvgSales     float64 `json:"avg_sales"`
}

type SalesRangeAnalysis struct {
	SalesRanges []SalesRange `json:"sales_ranges"`
}

type HourlyDistribution struct {
	Hour       string `json:"hour"`
	VisitCount int    `json:"visit_count"`
}

type VisitTimeDistribution struct {
	HourlyDistribution []HourlyDistribution `json:"hourly_distribution"`
}

// DailyVisits is a fixed seven-day histogram keyed by canonical day name.
type DailyVisits struct {
	Monday    int `json:"Monday"`
	Tuesday   int `json:"Tuesday"`
	Wednesday int `json:"Wednesday"`
	Thursday  int `json:"Thursday"`
	Friday    int `json:"Friday"`
	Saturday  int `json:"Saturday"`
	Sunday    int `json:"Sunday"`
}

type ChainStore struct {
	StoreID         string      `json:"store_id"`
	Name            string      `json:"name"`
	Sales           int64       `json:"sales"`
	WeeklyVisits    int         `json:"weekly_visits"`
	MinWeeklyVisits int         `json:"min_weekly_visits"`
	MaxWeeklyVisits int         `json:"max_weekly_visits"`
	CoverageStatus  string      `json:"coverage_status"`
	DailyVisits     DailyVisits `json:"daily_visits"`
	Latitude        float64     `json:"latitude"`
	Longitude       float64     `json:"longitude"`
}

type ChainStoresData struct {
	Chain       string       `json:"chain"`
	TotalStores int          `json:"total_stores"`
	Stores      []ChainStore `json:"stores"`
}

type AgentStore struct {
	StoreID        string      `json:"store_id"`
	Name           string      `json:"name"`
	Sales          int64       `json:"sales"`
	CoverageStatus string      `json:"coverage_status"`
	WeeklyVisits   int         `json:"weekly_visits"`
	DailyVisits    DailyVisits `json:"daily_visits"`
}

type AgentStoresData struct {
	Agent  string       `json:"agent"`
	Stores []AgentStore `json:"stores"`
}

type AllStoresData struct {
	TotalStores int          `json:"total_stores"`
	Stores      []ChainStore `json:"stores"`
}

type TimeDistribution struct {
	StoreTimePercentage  float64 `json:"store_time_percentage"`
	TravelTimePercentage float64 `json:"travel_time_percentage"`
	AdminTimePercentage  float64 `json:"admin_time_percentage"`
}

type StoresData struct {
	Stores []Store `json:"stores"`
}

type AgentLocation struct {
	AgentID        string   `json:"agent_id"`
	Name           string   `json:"name"`
	HomeLatitude   float64  `json:"home_latitude"`
	HomeLongitude  float64  `json:"home_longitude"`
	Active         bool     `json:"active"`
	AssignedRoutes []string `json:"assigned_routes"`
}

type AgentsData struct {
	Agents []AgentLocation `json:"agents"`
}

type RouteVisit struct {
	StoreID         string   `json:"store_id"`
	ArrivalTime     string   `json:"arrival_time"`
	DepartureTime   string   `json:"departure_time"`
	ServiceDuration float64  `json:"service_duration"`
	TravelTime      float64  `json:"travel_time"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
}

type Route struct {
	AgentID    string       `json:"agent_id"`
	Day        string       `json:"day"`
	DistanceKm float64      `json:"distance_km"`
	Visits     []RouteVisit `json:"visits"`
}

type RoutesData struct {
	Plan   Plan    `json:"plan"`
	Routes []Route `json:"routes"`
}
