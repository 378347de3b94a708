// Package views derives the analytics views from a loaded dataset. Every
// function is a pure read of the dataset and builds fresh output values.
package views

import (
	"errors"
	"math"

	"fieldroutes/internal/model"
)

// ErrInvalidArgument reports a bad request parameter such as an unknown plan.
var ErrInvalidArgument = errors.New("invalid argument")

const (
	CoverageAdequate     = "Adequate"
	CoverageInsufficient = "Insufficient"
)

func round(x float64, places int) float64 {
	p := math.Pow10(places)
	r := math.Round(x*p) / p
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}

// ratio divides, treating a zero denominator as a zero result.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// Improvement is the relative change from before to after in percent,
// rounded to one decimal; zero when before is zero.
func Improvement(before, after float64) float64 {
	if before == 0 {
		return 0
	}
	return round((after-before)/before*100, 1)
}

// EfficiencyMetric compares optimized against manual visit counts.
func EfficiencyMetric(manual, optimized int) float64 {
	return Improvement(float64(manual), float64(optimized))
}

func coverageStatus(weekly, minWeekly int) string {
	if weekly >= minWeekly {
		return CoverageAdequate
	}
	return CoverageInsufficient
}

// tally is the per-store visit count of one plan with its day histogram.
type tally struct {
	total int
	daily model.DailyVisits
}

func (t *tally) add(day string) {
	t.total++
	if i, ok := DayIndex(day); ok {
		addDay(&t.daily, i)
	}
}

func tallyByStore(visits []model.Visit) map[string]*tally {
	out := map[string]*tally{}
	for _, v := range visits {
		t := out[v.DestinationStoreID]
		if t == nil {
			t = &tally{}
			out[v.DestinationStoreID] = t
		}
		t.add(v.Day)
	}
	return out
}

func countBy(visits []model.Visit, key func(model.Visit) string) map[string]int {
	out := map[string]int{}
	for _, v := range visits {
		out[key(v)]++
	}
	return out
}

func byWorker(v model.Visit) string { return v.WorkerID }
func byStore(v model.Visit) string  { return v.DestinationStoreID }
