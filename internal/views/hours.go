package views

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"fieldroutes/internal/dataset"
	"fieldroutes/internal/model"
)

// hourOf extracts the hour from an HH:MM[:SS] time of day.
func hourOf(t string) (int, bool) {
	h, _, _ := strings.Cut(strings.TrimSpace(t), ":")
	n, err := strconv.Atoi(h)
	if err != nil || n < 0 || n > 23 {
		return 0, false
	}
	return n, true
}

// VisitTimeDistribution buckets optimized arrivals by hour of day.
func VisitTimeDistribution(d *dataset.Dataset) model.VisitTimeDistribution {
	counts := map[int]int{}
	for _, v := range d.Visits(model.PlanOptimized) {
		if h, ok := hourOf(v.ArrivalTime); ok {
			counts[h]++
		}
	}
	hours := make([]int, 0, len(counts))
	for h := range counts {
		hours = append(hours, h)
	}
	sort.Ints(hours)
	out := model.VisitTimeDistribution{HourlyDistribution: make([]model.HourlyDistribution, 0, len(hours))}
	for _, h := range hours {
		out.HourlyDistribution = append(out.HourlyDistribution, model.HourlyDistribution{
			Hour:       fmt.Sprintf("%02d:00", h),
			VisitCount: counts[h],
		})
	}
	return out
}
