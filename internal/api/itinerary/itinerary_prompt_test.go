package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/wanderplan/internal/types"
)

func TestGetItineraryPrompt(t *testing.T) {
	prefs := types.TripPreferences{
		Destination: "Kyoto",
		Duration:    3,
		Travelers:   2,
		Budget:      types.BudgetTierModerate,
		Interests:   []string{"Food", "History"},
	}
	before := prefs.Clone()

	prompt := GetItineraryPrompt(prefs)

	assert.Contains(t, prompt, "Create a 3-day travel itinerary for Kyoto.")
	assert.Contains(t, prompt, "Travelers: 2. Budget: Moderate. Interests: Food, History.")
	assert.Contains(t, prompt, `Return exactly 3 entries in "days"`)
	assert.Contains(t, prompt, "at least 90% of locations")
	assert.Contains(t, prompt, `"coordinates"`)
	assert.NotContains(t, prompt, "%!")
	assert.Equal(t, before, prefs, "prompt construction must not touch preferences")
	assert.Equal(t, prompt, GetItineraryPrompt(prefs), "same preferences give the same prompt")
}
