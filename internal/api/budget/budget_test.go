package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/wanderplan/internal/types"
)

func cost(v float64) *float64 { return &v }

func activity(category types.ActivityCategory, c *float64) types.Activity {
	return types.Activity{Name: string(category), TimeSlot: types.TimeSlotMorning, Category: category, CostEstimate: c}
}

func TestCompute(t *testing.T) {
	it := &types.TripItinerary{
		Currency:           "EUR",
		TotalEstimatedCost: 123,
		Days: []types.DayPlan{
			{DayNumber: 1, Activities: []types.Activity{
				activity(types.CategoryFood, cost(10)),
				activity(types.CategorySightseeing, cost(0)),
				activity(types.CategoryActivity, cost(15.5)),
			}},
			{DayNumber: 2, Activities: []types.Activity{
				activity(types.CategoryFood, cost(20)),
				activity(types.CategoryRelaxation, nil),
			}},
		},
	}

	b := Compute(it, 2)

	require.Len(t, b.Entries, 2)
	assert.Equal(t, Entry{Category: types.CategoryFood, Value: 60, Color: Palette[0], Label: "EUR 60"}, b.Entries[0])
	assert.Equal(t, Entry{Category: types.CategoryActivity, Value: 31, Color: Palette[1], Label: "EUR 31"}, b.Entries[1])
	assert.Equal(t, 91.0, b.Total)
	assert.Equal(t, 123.0, b.EstimatedTotal)
	assert.Equal(t, "EUR", b.Currency)
	assert.Equal(t, 2, b.Travelers)
	assert.Equal(t, "Estimates for 2 traveler(s). Excludes flights/accommodation unless specified.", b.Note)
	assert.False(t, b.Empty())
}

func TestCompute_FirstSeenOrderAndPaletteCycle(t *testing.T) {
	it := &types.TripItinerary{Days: []types.DayPlan{{DayNumber: 1, Activities: []types.Activity{
		activity(types.CategoryRelaxation, cost(1)),
		activity(types.CategoryActivity, cost(1)),
		activity(types.CategorySightseeing, cost(1)),
		activity(types.CategoryFood, cost(1)),
	}}}}

	b := Compute(it, 1)
	require.Len(t, b.Entries, 4)
	got := []types.ActivityCategory{}
	for i, e := range b.Entries {
		got = append(got, e.Category)
		assert.Equal(t, Palette[i], e.Color)
	}
	assert.Equal(t, []types.ActivityCategory{
		types.CategoryRelaxation, types.CategoryActivity, types.CategorySightseeing, types.CategoryFood,
	}, got)
}

func TestCompute_Edges(t *testing.T) {
	t.Run("nil itinerary", func(t *testing.T) {
		b := Compute(nil, 3)
		assert.True(t, b.Empty())
		assert.NotNil(t, b.Entries)
	})

	t.Run("all free", func(t *testing.T) {
		it := &types.TripItinerary{Days: []types.DayPlan{{DayNumber: 1, Activities: []types.Activity{
			activity(types.CategoryFood, nil), activity(types.CategorySightseeing, cost(0)),
		}}}}
		b := Compute(it, 4)
		assert.True(t, b.Empty())
		assert.Zero(t, b.Total)
	})

	t.Run("travelers below one count as one", func(t *testing.T) {
		it := &types.TripItinerary{Days: []types.DayPlan{{DayNumber: 1, Activities: []types.Activity{
			activity(types.CategoryFood, cost(12)),
		}}}}
		b := Compute(it, 0)
		assert.Equal(t, 1, b.Travelers)
		assert.Equal(t, 12.0, b.Entries[0].Value)
		assert.Contains(t, b.Note, "Estimates for 1 traveler(s).")
	})
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "USD 1500", FormatAmount("USD", 1500))
	assert.Equal(t, "JPY 12.5", FormatAmount("JPY", 12.5))
	assert.Equal(t, "42", FormatAmount("", 42))
}
