package itinerary

import (
	"fmt"
	"strings"

	"github.com/FACorreiaa/wanderplan/internal/types"
)

const itineraryPromptTemplate = `
Create a %d-day travel itinerary for %s.
Travelers: %d. Budget: %s. Interests: %s.

Output purely VALID JSON. No conversational filler.

Structure:
{
  "destination": "City, Country",
  "summary": "Brief 1-sentence hook.",
  "currency": "Code",
  "totalEstimatedCost": number,
  "detailedReport": {
    "logistics": "Transport & safety advice.",
    "packingTips": "What to pack.",
    "whyThisFits": "Why this matches user interests.",
    "localEtiquette": "Cultural do's/don'ts."
  },
  "days": [
    {
      "dayNumber": 1,
      "title": "Day Theme",
      "activities": [
        {
          "name": "Place Name",
          "description": "Concise 15-word max description.",
          "timeSlot": "Morning" | "Afternoon" | "Evening",
          "duration": "e.g. 2h",
          "location": "Address",
          "coordinates": { "lat": number, "lng": number },
          "costEstimate": number,
          "category": "Food" | "Sightseeing" | "Activity" | "Relaxation"
        }
      ]
    }
  ]
}

Constraints:
1. Use Google Maps tool to verify real locations and get coordinates (lat/lng) for accurate mapping.
2. Group activities by proximity to minimize travel.
3. Keep descriptions short to improve generation speed.
4. Ensure coordinates are provided for at least 90%% of locations.
5. Return exactly %d entries in "days", numbered from 1.
`

// GetItineraryPrompt renders the generation prompt. It only reads prefs.
func GetItineraryPrompt(prefs types.TripPreferences) string {
	return fmt.Sprintf(itineraryPromptTemplate,
		prefs.Duration,
		prefs.Destination,
		prefs.Travelers,
		prefs.Budget,
		strings.Join(prefs.Interests, ", "),
		prefs.Duration,
	)
}
