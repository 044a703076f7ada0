package budget

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/FACorreiaa/wanderplan/internal/types"
)

// Palette colors chart slices in order, cycling when there are more slices.
var Palette = []string{"#10B981", "#3B82F6", "#F59E0B", "#6366F1"}

const Disclaimer = "Excludes flights/accommodation unless specified."

type Entry struct {
	Category types.ActivityCategory `json:"name"`
	Value    float64                `json:"value"`
	Color    string                 `json:"color"`
	Label    string                 `json:"label"`
}

type Breakdown struct {
	Currency  string  `json:"currency"`
	Travelers int     `json:"travelers"`
	Entries   []Entry `json:"entries"`
	// Total is the sum of Entries, already multiplied by Travelers.
	Total float64 `json:"total"`
	// EstimatedTotal is the model's own figure, passed through untouched.
	EstimatedTotal float64 `json:"estimatedTotal"`
	Note           string  `json:"note"`
}

// Empty reports whether there is nothing to chart.
func (b Breakdown) Empty() bool { return len(b.Entries) == 0 }

// Compute sums activity costs per category in first-seen order, scales them
// by travelers and drops categories whose total is zero.
func Compute(itinerary *types.TripItinerary, travelers int) Breakdown {
	if travelers < 1 {
		travelers = 1
	}
	out := Breakdown{
		Travelers: travelers,
		Entries:   []Entry{},
		Note:      "Estimates for " + strconv.Itoa(travelers) + " traveler(s). " + Disclaimer,
	}
	if itinerary == nil {
		return out
	}
	out.Currency = itinerary.Currency
	out.EstimatedTotal = itinerary.TotalEstimatedCost

	activities := lo.FlatMap(itinerary.Days, func(d types.DayPlan, _ int) []types.Activity {
		return d.Activities
	})
	order := lo.Uniq(lo.Map(activities, func(a types.Activity, _ int) types.ActivityCategory {
		return a.Category
	}))
	byCategory := lo.GroupBy(activities, func(a types.Activity) types.ActivityCategory {
		return a.Category
	})

	for _, category := range order {
		sum := lo.SumBy(byCategory[category], func(a types.Activity) float64 { return a.Cost() })
		value := sum * float64(travelers)
		if value <= 0 {
			continue
		}
		out.Entries = append(out.Entries, Entry{
			Category: category,
			Value:    value,
			Color:    Palette[len(out.Entries)%len(Palette)],
			Label:    FormatAmount(itinerary.Currency, value),
		})
		out.Total += value
	}
	return out
}

// FormatAmount renders "<currency> <value>" with the shortest exact decimal.
func FormatAmount(currency string, value float64) string {
	return strings.TrimSpace(currency + " " + strconv.FormatFloat(value, 'f', -1, 64))
}
