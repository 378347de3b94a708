package views

import (
	"errors"
	"math"
	"testing"

	"fieldroutes/internal/config"
	"fieldroutes/internal/dataset"
	"fieldroutes/internal/model"
)

func TestKPIs(t *testing.T) {
	got := KPIs(fixture(), config.Default().Analytics)
	want := model.KPIMetrics{
		TotalStores:           4,
		ActiveAgents:          2,
		WeeklyVisitsManual:    4,
		WeeklyVisitsOptimized: 7,
		VisitedStores:         5,
		AvgServiceTime:        41.4,
		TotalSalesCoverage:    17_000_000,
		UtilizationRate:       17.5,
	}
	if got != want {
		t.Fatalf("kpis:\n got %+v\nwant %+v", got, want)
	}
}

func TestKPIsUtilization(t *testing.T) {
	var agents []model.Agent
	for i := 0; i < 5; i++ {
		agents = append(agents, model.Agent{WorkerID: string(rune('a' + i)), Active: true})
	}
	var optimized []model.Visit
	for i := 0; i < 50; i++ {
		optimized = append(optimized, visit("a", "x", "mon", "09:00", 0, 0))
	}
	got := KPIs(dataset.New(nil, agents, nil, optimized), config.Default().Analytics)
	if got.UtilizationRate != 50.0 {
		t.Fatalf("utilization: got %v want 50", got.UtilizationRate)
	}
	empty := KPIs(dataset.New(nil, nil, nil, optimized), config.Default().Analytics)
	if empty.UtilizationRate != 0 || empty.AvgServiceTime != 0 {
		t.Fatalf("no agents: %+v", empty)
	}
}

func TestEfficiencyMetric(t *testing.T) {
	cases := []struct {
		manual, optimized int
		want              float64
	}{
		{0, 10, 0},
		{10, 10, 0},
		{10, 15, 50},
		{3, 2, -33.3},
	}
	for _, c := range cases {
		got := EfficiencyMetric(c.manual, c.optimized)
		if got != c.want || math.IsNaN(got) || math.IsInf(got, 0) {
			t.Fatalf("EfficiencyMetric(%d,%d)=%v want %v", c.manual, c.optimized, got, c.want)
		}
	}
}

func TestDailyComparisonExactTokens(t *testing.T) {
	got := DailyComparison(fixture()).DailyComparison
	want := []model.DailyComparison{
		{Day: "Monday", Manual: 2, Optimized: 2},
		{Day: "Tuesday", Manual: 1, Optimized: 1},
		{Day: "Wednesday", Manual: 1, Optimized: 0},
		{Day: "Thursday", Manual: 0, Optimized: 1},
		{Day: "Friday", Manual: 0, Optimized: 1},
		{Day: "Saturday", Manual: 0, Optimized: 0},
	}
	if len(got) != len(want) {
		t.Fatalf("rows: got %d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: got %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestWeeklyDistribution(t *testing.T) {
	rows := WeeklyDistribution(fixture()).WeeklyData
	if rows[0].Day != "Monday" || rows[0].Before != 2 || rows[0].After != 2 || rows[0].Improvement != 0 {
		t.Fatalf("monday: %+v", rows[0])
	}
	if rows[2].Improvement != -100 {
		t.Fatalf("wednesday improvement: %+v", rows[2])
	}
	if rows[3].Improvement != 0 {
		t.Fatalf("thursday with no manual visits must be 0: %+v", rows[3])
	}
}

func TestComparisonMetrics(t *testing.T) {
	m := ComparisonMetrics(fixture()).Metrics
	if len(m) != 3 {
		t.Fatalf("metrics: %d", len(m))
	}
	if m[0].Before != 4 || m[0].After != 7 || m[0].ImprovementPercentage != 75 {
		t.Fatalf("visits: %+v", m[0])
	}
	if m[1].Before != 40 || m[1].After != 41 {
		t.Fatalf("service: %+v", m[1])
	}
	if m[2].Before != 80 || m[2].After != 100 || m[2].ImprovementPercentage != 25 {
		t.Fatalf("travel: %+v", m[2])
	}
}

func TestChainDistribution(t *testing.T) {
	chains := ChainDistribution(fixture()).Chains
	want := []model.ChainDistribution{
		{Chain: "Walmart", Count: 2, Percentage: 50},
		{Chain: "Soriana", Count: 1, Percentage: 25},
		{Chain: "Oxxo", Count: 1, Percentage: 25},
	}
	sum := 0.0
	for i, c := range chains {
		if c != want[i] {
			t.Fatalf("row %d: got %+v want %+v", i, c, want[i])
		}
		sum += c.Percentage
	}
	if math.Abs(sum-100) > 0.2 {
		t.Fatalf("percentages sum to %v", sum)
	}
}

func TestChainDistributionSumsTo100(t *testing.T) {
	var stores []model.Store
	for i, chain := range []string{"A", "B", "C", "A", "B", "C", "D"} {
		stores = append(stores, model.Store{ID: string(rune('0' + i)), Chain: chain})
	}
	sum := 0.0
	for _, c := range ChainDistribution(dataset.New(stores, nil, nil, nil)).Chains {
		sum += c.Percentage
	}
	if math.Abs(sum-100) > 0.2 {
		t.Fatalf("percentages sum to %v", sum)
	}
}

func TestChainCoverage(t *testing.T) {
	got := ChainCoverage(fixture()).Chains
	want := []model.ChainAnalysis{
		{Chain: "Walmart", TotalStores: 2, WeeklyVisits: 4, CoverageRatio: 2},
		{Chain: "Soriana", TotalStores: 1, WeeklyVisits: 1, CoverageRatio: 1},
		{Chain: "Oxxo", TotalStores: 1, WeeklyVisits: 1, CoverageRatio: 1},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: got %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestAgentPerformance(t *testing.T) {
	got := AgentPerformance(fixture()).Agents
	if len(got) != 3 {
		t.Fatalf("all agents expected, got %d", len(got))
	}
	if got[0].VisitsBefore != 2 || got[0].VisitsAfter != 3 || got[0].EfficiencyGain != 50 {
		t.Fatalf("A1: %+v", got[0])
	}
	if got[2].VisitsBefore != 0 || got[2].VisitsAfter != 1 || got[2].EfficiencyGain != 0 {
		t.Fatalf("A3: %+v", got[2])
	}
}

func TestAgentCoverage(t *testing.T) {
	got := AgentCoverage(fixture()).Agents
	if len(got) != 2 {
		t.Fatalf("active agents only, got %d", len(got))
	}
	a1 := got[0]
	if a1.WeeklyVisits != 3 || a1.StoreTimePercentage != 78.9 || a1.TravelTimePercentage != 21.1 || a1.AdminTimePercentage != 0 {
		t.Fatalf("A1: %+v", a1)
	}
	if a1.EfficiencyRating != "Below Average" {
		t.Fatalf("A1 rating: %q", a1.EfficiencyRating)
	}
	for _, a := range got {
		sum := a.StoreTimePercentage + a.TravelTimePercentage + a.AdminTimePercentage
		if math.Abs(sum-100) > 1e-9 {
			t.Fatalf("%s shares sum to %v", a.AgentID, sum)
		}
	}
}

func TestAgentCoverageNoVisits(t *testing.T) {
	d := dataset.New(nil, []model.Agent{{WorkerID: "A", Name: "Idle", Active: true}}, nil, nil)
	a := AgentCoverage(d).Agents[0]
	if a.WeeklyVisits != 0 || a.StoreTimePercentage != 0 || a.TravelTimePercentage != 0 || a.AdminTimePercentage != 0 {
		t.Fatalf("idle agent: %+v", a)
	}
}

func TestRating(t *testing.T) {
	cases := map[int]string{
		20: "Excellent", 15: "Excellent", 14: "Good", 12: "Good",
		11: "Average", 8: "Average", 7: "Below Average", 0: "Below Average",
	}
	for n, want := range cases {
		if got := Rating(n); got != want {
			t.Fatalf("Rating(%d)=%q want %q", n, got, want)
		}
	}
}

func TestStorePerformanceSortedBySales(t *testing.T) {
	got := StorePerformance(fixture()).Stores
	ids := []string{"S1", "S2", "S4", "S3"}
	for i, id := range ids {
		if got[i].StoreID != id {
			t.Fatalf("position %d: got %s want %s", i, got[i].StoreID, id)
		}
	}
	if got[0].VisitsBefore != 1 || got[0].VisitsAfter != 3 || got[0].VisitChange != 2 {
		t.Fatalf("S1: %+v", got[0])
	}
}

func TestTopStoresCoverageStatus(t *testing.T) {
	stores := []model.Store{{ID: "S1", Sales: 100, MinWeeklyVisits: 5}}
	five := make([]model.Visit, 0, 5)
	for i := 0; i < 5; i++ {
		five = append(five, visit("A", "S1", "mon", "09:00", 0, 0))
	}
	if got := TopStores(dataset.New(stores, nil, nil, five)).Stores[0]; got.CoverageStatus != CoverageAdequate || got.WeeklyVisits != 5 {
		t.Fatalf("5 visits: %+v", got)
	}
	if got := TopStores(dataset.New(stores, nil, nil, five[:4])).Stores[0]; got.CoverageStatus != CoverageInsufficient {
		t.Fatalf("4 visits: %+v", got)
	}
}

func TestTopStoresLimitAndStableOrder(t *testing.T) {
	var stores []model.Store
	for i := 0; i < 12; i++ {
		stores = append(stores, model.Store{ID: string(rune('a' + i)), Sales: 1000})
	}
	stores[11].Sales = 5000
	got := TopStores(dataset.New(stores, nil, nil, nil)).Stores
	if len(got) != TopStoresLimit {
		t.Fatalf("limit: %d", len(got))
	}
	if got[0].StoreID != "l" || got[1].StoreID != "a" || got[9].StoreID != "i" {
		t.Fatalf("order: %s %s %s", got[0].StoreID, got[1].StoreID, got[9].StoreID)
	}
}

func TestSalesRangesPartition(t *testing.T) {
	d := fixture()
	got := SalesRanges(d).SalesRanges
	want := []model.SalesRange{
		{Range: "$0-$1M", StoreCount: 1, WeeklyVisits: 1, AvgSales: 500_000},
		{Range: "$1M-$2M", StoreCount: 1, WeeklyVisits: 1, AvgSales: 1_500_000},
		{Range: "$2M-$5M", StoreCount: 1, WeeklyVisits: 1, AvgSales: 3_000_000},
		{Range: "$5M-$10M"},
		{Range: "$10M+", StoreCount: 1, WeeklyVisits: 3, AvgSales: 12_000_000},
	}
	total := 0
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("band %d: got %+v want %+v", i, got[i], want[i])
		}
		total += got[i].StoreCount
	}
	if total != len(d.Stores()) {
		t.Fatalf("bands hold %d stores, want %d", total, len(d.Stores()))
	}
}

func TestSalesBandBoundaries(t *testing.T) {
	cases := map[int64]int{0: 0, 999_999: 0, 1_000_000: 1, 1_999_999: 1, 2_000_000: 2, 5_000_000: 3, 9_999_999: 3, 10_000_000: 4, 1 << 40: 4}
	for sales, want := range cases {
		if got := bandOf(sales); got != want {
			t.Fatalf("bandOf(%d)=%d want %d", sales, got, want)
		}
	}
}

func TestVisitTimeDistribution(t *testing.T) {
	got := VisitTimeDistribution(fixture()).HourlyDistribution
	want := []model.HourlyDistribution{
		{Hour: "08:00", VisitCount: 1},
		{Hour: "09:00", VisitCount: 2},
		{Hour: "10:00", VisitCount: 1},
		{Hour: "11:00", VisitCount: 1},
		{Hour: "12:00", VisitCount: 1},
		{Hour: "14:00", VisitCount: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("buckets: got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bucket %d: got %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestHourOf(t *testing.T) {
	if h, ok := hourOf("14:37"); !ok || h != 14 {
		t.Fatalf("14:37 -> %d %v", h, ok)
	}
	if h, ok := hourOf("9:05:00"); !ok || h != 9 {
		t.Fatalf("9:05:00 -> %d %v", h, ok)
	}
	for _, bad := range []string{"", "x:10", "25:00"} {
		if _, ok := hourOf(bad); ok {
			t.Fatalf("%q should not parse", bad)
		}
	}
}

func TestChainStores(t *testing.T) {
	got := ChainStores(fixture(), "Walmart")
	if got.Chain != "Walmart" || got.TotalStores != 2 {
		t.Fatalf("header: %+v", got)
	}
	s1 := got.Stores[0]
	if s1.StoreID != "S1" || s1.WeeklyVisits != 3 || s1.CoverageStatus != CoverageInsufficient {
		t.Fatalf("S1: %+v", s1)
	}
	wantDaily := model.DailyVisits{Monday: 1, Tuesday: 1, Thursday: 1}
	if s1.DailyVisits != wantDaily {
		t.Fatalf("S1 daily: %+v", s1.DailyVisits)
	}
	if s1.Latitude != 19.43 || s1.MinWeeklyVisits != 5 || s1.MaxWeeklyVisits != 7 {
		t.Fatalf("S1 attrs: %+v", s1)
	}

	unknown := ChainStores(fixture(), "Nope")
	if unknown.TotalStores != 0 || unknown.Stores == nil || len(unknown.Stores) != 0 {
		t.Fatalf("unknown chain: %+v", unknown)
	}
}

func TestChainStoresUnmappedDay(t *testing.T) {
	stores := []model.Store{{ID: "S", Chain: "C", MinWeeklyVisits: 2}}
	optimized := []model.Visit{
		visit("A", "S", "Lunes", "09:00", 0, 0),
		visit("A", "S", "someday", "09:00", 0, 0),
	}
	s := ChainStores(dataset.New(stores, nil, nil, optimized), "C").Stores[0]
	if s.WeeklyVisits != 2 || s.DailyVisits != (model.DailyVisits{Monday: 1}) || s.CoverageStatus != CoverageAdequate {
		t.Fatalf("got %+v", s)
	}
}

func TestAllStores(t *testing.T) {
	got := AllStores(fixture())
	if got.TotalStores != 4 || got.Stores[0].StoreID != "S1" || got.Stores[3].StoreID != "S3" {
		t.Fatalf("all stores: %+v", got)
	}
	if got.Stores[3].DailyVisits != (model.DailyVisits{Wednesday: 1}) {
		t.Fatalf("S3 daily: %+v", got.Stores[3].DailyVisits)
	}
}

func TestAgentStoresByAgentTable(t *testing.T) {
	got := AgentStores(fixture(), "Luis")
	if got.Agent != "Luis" || len(got.Stores) != 2 {
		t.Fatalf("Luis: %+v", got)
	}
	if got.Stores[0].StoreID != "S4" || got.Stores[0].DailyVisits != (model.DailyVisits{Saturday: 1}) {
		t.Fatalf("first store: %+v", got.Stores[0])
	}
	if got.Stores[1].StoreID != "S3" || got.Stores[1].CoverageStatus != CoverageAdequate {
		t.Fatalf("second store: %+v", got.Stores[1])
	}
	if none := AgentStores(fixture(), "Nobody"); none.Stores == nil || len(none.Stores) != 0 {
		t.Fatalf("unknown agent: %+v", none)
	}
}

func TestAgentStoresByEmbeddedName(t *testing.T) {
	stores := []model.Store{{ID: "S1", Sales: 10}, {ID: "S2", Sales: 20}}
	agents := []model.Agent{{WorkerID: "W1", Name: "Ana"}}
	v1 := visit("W9", "S1", "mon", "09:00", 0, 0)
	v1.WorkerName = "Ana"
	v2 := visit("W1", "S2", "tue", "09:00", 0, 0)
	v2.WorkerName = "Other"
	got := AgentStores(dataset.New(stores, agents, nil, []model.Visit{v1, v2}, dataset.WithVisitWorkerNames(true)), "Ana")
	if len(got.Stores) != 1 || got.Stores[0].StoreID != "S1" {
		t.Fatalf("embedded name should win: %+v", got)
	}
	// Without the column flag the name resolves through the agent table.
	got = AgentStores(dataset.New(stores, agents, nil, []model.Visit{v1, v2}), "Ana")
	if len(got.Stores) != 1 || got.Stores[0].StoreID != "S2" {
		t.Fatalf("agent table fallback: %+v", got)
	}
}

func TestTimeDistribution(t *testing.T) {
	ts := config.Default().Analytics.TimeSplit
	want := model.TimeDistribution{StoreTimePercentage: 87, TravelTimePercentage: 9, AdminTimePercentage: 4}
	if got := TimeDistribution(fixture(), ts); got != want {
		t.Fatalf("forced: got %+v", got)
	}
	if got := TimeDistribution(dataset.New(nil, nil, nil, nil), ts); got != want {
		t.Fatalf("fallback: got %+v", got)
	}

	agents := []model.Agent{{WorkerID: "A", Active: true}}
	busy := []model.Visit{visit("A", "S", "mon", "09:00", 100, 1)}
	got := TimeDistribution(dataset.New(nil, agents, nil, busy), ts)
	if got.StoreTimePercentage != 95 || got.TravelTimePercentage != 1 || got.AdminTimePercentage != 4 {
		t.Fatalf("measured: got %+v", got)
	}
}

func TestRoutes(t *testing.T) {
	d := fixture()
	for _, plan := range []model.Plan{model.PlanManual, model.PlanOptimized} {
		got, err := Routes(d, string(plan))
		if err != nil {
			t.Fatalf("%s: %v", plan, err)
		}
		n := 0
		for _, r := range got.Routes {
			n += len(r.Visits)
		}
		if n != len(d.Visits(plan)) {
			t.Fatalf("%s: %d visits across routes, want %d", plan, n, len(d.Visits(plan)))
		}
	}

	got, _ := Routes(d, "optimized")
	if len(got.Routes) != 6 {
		t.Fatalf("routes: %d", len(got.Routes))
	}
	first := got.Routes[0]
	if first.AgentID != "A1" || first.Day != "mon" || len(first.Visits) != 2 {
		t.Fatalf("first route: %+v", first)
	}
	if first.Visits[0].StoreID != "S1" || first.Visits[1].StoreID != "S2" {
		t.Fatalf("visits out of source order: %+v", first.Visits)
	}
	if first.DistanceKm <= 0 || first.Visits[0].Latitude == nil {
		t.Fatalf("geometry missing: %+v", first)
	}
	orphan := got.Routes[4]
	if orphan.Day != "fri" || orphan.Visits[0].Latitude != nil {
		t.Fatalf("orphan stop must have no coordinates: %+v", orphan)
	}

	if _, err := Routes(d, "best"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("invalid plan: %v", err)
	}
}

func TestMapAgents(t *testing.T) {
	got := MapAgents(fixture()).Agents
	if len(got) != 3 {
		t.Fatalf("agents: %d", len(got))
	}
	if r := got[0].AssignedRoutes; len(r) != 2 || r[0] != "A1-mon" || r[1] != "A1-tue" {
		t.Fatalf("A1 routes: %v", r)
	}
	if got[2].Active || len(got[2].AssignedRoutes) != 1 {
		t.Fatalf("A3: %+v", got[2])
	}
	if len(MapStores(fixture()).Stores) != 4 {
		t.Fatalf("store layer")
	}
}
