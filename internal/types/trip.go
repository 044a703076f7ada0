package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

type BudgetTier string

const (
	BudgetTierBudget   BudgetTier = "Budget"
	BudgetTierModerate BudgetTier = "Moderate"
	BudgetTierLuxury   BudgetTier = "Luxury"
)

func (b BudgetTier) Valid() bool {
	switch b {
	case BudgetTierBudget, BudgetTierModerate, BudgetTierLuxury:
		return true
	}
	return false
}

type TimeSlot string

const (
	TimeSlotMorning   TimeSlot = "Morning"
	TimeSlotAfternoon TimeSlot = "Afternoon"
	TimeSlotEvening   TimeSlot = "Evening"
)

func (t TimeSlot) Valid() bool {
	switch t {
	case TimeSlotMorning, TimeSlotAfternoon, TimeSlotEvening:
		return true
	}
	return false
}

type ActivityCategory string

const (
	CategoryFood        ActivityCategory = "Food"
	CategorySightseeing ActivityCategory = "Sightseeing"
	CategoryActivity    ActivityCategory = "Activity"
	CategoryRelaxation  ActivityCategory = "Relaxation"
)

func (c ActivityCategory) Valid() bool {
	switch c {
	case CategoryFood, CategorySightseeing, CategoryActivity, CategoryRelaxation:
		return true
	}
	return false
}

const (
	MinTripDuration = 1
	MaxTripDuration = 14

	DefaultTripDuration = 3
	DefaultTravelers    = 1
	DefaultBudgetTier   = BudgetTierModerate
)

// Interests offered by the wizard. Free-form tags are accepted as well.
var InterestCatalogue = []string{
	"History", "Art", "Food", "Nature", "Nightlife",
	"Shopping", "Adventure", "Relaxation", "Photography", "Architecture",
}

// TripPreferences is what the wizard collects before a generation request.
type TripPreferences struct {
	Destination string     `json:"destination" example:"Kyoto, Japan"`
	Duration    int        `json:"duration" example:"3"`
	Travelers   int        `json:"travelers" example:"2"`
	Budget      BudgetTier `json:"budget" example:"Moderate"`
	Interests   []string   `json:"interests"`
}

// DefaultPreferences returns the state a fresh wizard starts from.
func DefaultPreferences() TripPreferences {
	return TripPreferences{
		Duration:  DefaultTripDuration,
		Travelers: DefaultTravelers,
		Budget:    DefaultBudgetTier,
		Interests: []string{},
	}
}

// Clone returns a copy that shares no slices with p.
func (p TripPreferences) Clone() TripPreferences {
	out := p
	out.Interests = append([]string{}, p.Interests...)
	return out
}

// CanSubmit is the wizard guard: a destination and at least one interest.
func (p TripPreferences) CanSubmit() bool {
	return strings.TrimSpace(p.Destination) != "" && len(p.Interests) > 0
}

// HasInterest reports whether tag is selected, ignoring case.
func (p TripPreferences) HasInterest(tag string) bool {
	for _, i := range p.Interests {
		if strings.EqualFold(i, tag) {
			return true
		}
	}
	return false
}

// Validate checks every field, not just the submit guard.
func (p TripPreferences) Validate() error {
	if strings.TrimSpace(p.Destination) == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidPreferences)
	}
	if p.Duration < MinTripDuration || p.Duration > MaxTripDuration {
		return fmt.Errorf("%w: duration must be between %d and %d days", ErrInvalidPreferences, MinTripDuration, MaxTripDuration)
	}
	if p.Travelers < 1 {
		return fmt.Errorf("%w: travelers must be at least 1", ErrInvalidPreferences)
	}
	if !p.Budget.Valid() {
		return fmt.Errorf("%w: budget must be one of Budget, Moderate, Luxury", ErrInvalidPreferences)
	}
	if len(p.Interests) == 0 {
		return fmt.Errorf("%w: at least one interest is required", ErrInvalidPreferences)
	}
	return nil
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Activity struct {
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	TimeSlot      TimeSlot         `json:"timeSlot"`
	Duration      string           `json:"duration"`
	Location      string           `json:"location,omitempty"`
	Coordinates   *Coordinates     `json:"coordinates,omitempty"`
	CostEstimate  *float64         `json:"costEstimate,omitempty"`
	Category      ActivityCategory `json:"category"`
	GoogleMapLink string           `json:"googleMapLink,omitempty"`
}

// Cost returns the estimate or zero when the model gave none.
func (a Activity) Cost() float64 {
	if a.CostEstimate == nil {
		return 0
	}
	return *a.CostEstimate
}

type DayPlan struct {
	DayNumber  int        `json:"dayNumber"`
	Title      string     `json:"title"`
	Activities []Activity `json:"activities"`
}

type DetailedReport struct {
	Logistics      string `json:"logistics"`
	PackingTips    string `json:"packingTips"`
	WhyThisFits    string `json:"whyThisFits"`
	LocalEtiquette string `json:"localEtiquette"`
}

// GroundingSource is one citation target (a map place or a web page).
type GroundingSource struct {
	Title   string `json:"title,omitempty"`
	URI     string `json:"uri,omitempty"`
	PlaceID string `json:"placeId,omitempty"`
}

// GroundingChunk is a citation record as returned next to the generated text.
type GroundingChunk struct {
	Maps *GroundingSource `json:"maps,omitempty"`
	Web  *GroundingSource `json:"web,omitempty"`
}

type TripItinerary struct {
	Destination        string           `json:"destination"`
	Summary            string           `json:"summary"`
	Currency           string           `json:"currency"`
	TotalEstimatedCost float64          `json:"totalEstimatedCost"`
	Days               []DayPlan        `json:"days"`
	DetailedReport     *DetailedReport  `json:"detailedReport,omitempty"`
	GroundingMetadata  []GroundingChunk `json:"groundingMetadata,omitempty"`
}

// Day returns the plan for dayNumber.
func (t *TripItinerary) Day(dayNumber int) (*DayPlan, error) {
	for i := range t.Days {
		if t.Days[i].DayNumber == dayNumber {
			return &t.Days[i], nil
		}
	}
	return nil, fmt.Errorf("%w: day %d", ErrDayNotFound, dayNumber)
}

// Clone deep-copies the itinerary so snapshots never alias session state.
func (t *TripItinerary) Clone() *TripItinerary {
	if t == nil {
		return nil
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil
	}
	var out TripItinerary
	if err := json.Unmarshal(b, &out); err != nil {
		return nil
	}
	return &out
}
