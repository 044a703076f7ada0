package planner

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/FACorreiaa/wanderplan/internal/types"
)

type MockItineraryService struct {
	mock.Mock
}

func (m *MockItineraryService) Generate(ctx context.Context, prefs types.TripPreferences) (*types.TripItinerary, error) {
	args := m.Called(ctx, prefs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TripItinerary), args.Error(1)
}

func ptr(v float64) *float64 { return &v }

func sampleItinerary() *types.TripItinerary {
	return &types.TripItinerary{
		Destination:        "Kyoto, Japan",
		Summary:            "Temples and food.",
		Currency:           "JPY",
		TotalEstimatedCost: 9000,
		DetailedReport: &types.DetailedReport{
			Logistics:      "Use the bus day pass.",
			PackingTips:    "Layers.",
			WhyThisFits:    "History on every corner.",
			LocalEtiquette: "Bow slightly.",
		},
		Days: []types.DayPlan{
			{
				DayNumber: 1,
				Title:     "Higashiyama",
				Activities: []types.Activity{
					{Name: "Kiyomizu-dera", Description: "Temple.", TimeSlot: types.TimeSlotMorning, Duration: "2h",
						Coordinates: &types.Coordinates{Lat: 34.9948, Lng: 135.785}, CostEstimate: ptr(400), Category: types.CategorySightseeing,
						GoogleMapLink: "https://maps.google.com/?cid=1"},
					{Name: "Nishiki Market", Description: "Snacks.", TimeSlot: types.TimeSlotAfternoon, Duration: "1h 30m",
						CostEstimate: ptr(3000), Category: types.CategoryFood},
				},
			},
			{
				DayNumber:  2,
				Title:      "Rest day",
				Activities: []types.Activity{},
			},
		},
	}
}

// wizardReady returns a state in the wizard that passes the submit guard.
func wizardReady() State {
	s := NewState()
	s.View = ViewWizard
	s.Preferences.Destination = "Kyoto, Japan"
	s.Preferences.Interests = []string{"Food"}
	return s
}
