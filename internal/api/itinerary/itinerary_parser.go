package itinerary

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/FACorreiaa/wanderplan/internal/types"
)

// cleanJSONResponse strips Markdown code fences and any chatter around the
// outermost JSON object. Clean input is returned unchanged.
func cleanJSONResponse(response string) string {
	response = strings.TrimSpace(response)

	if strings.HasPrefix(response, "```json") {
		response = strings.TrimPrefix(response, "```json")
	} else if strings.HasPrefix(response, "```") {
		response = strings.TrimPrefix(response, "```")
	}

	if strings.HasSuffix(response, "```") {
		response = strings.TrimSuffix(response, "```")
	}

	response = strings.TrimSpace(response)

	firstBrace := strings.Index(response, "{")
	if firstBrace == -1 {
		return response
	}

	lastBrace := strings.LastIndex(response, "}")
	if lastBrace == -1 || lastBrace <= firstBrace {
		return response
	}

	return strings.TrimSpace(response[firstBrace : lastBrace+1])
}

// Wire shapes. Required fields are pointers so absence can be told apart from
// zero values.
type rawCoordinates struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

type rawActivity struct {
	Name         *string         `json:"name"`
	Description  string          `json:"description"`
	TimeSlot     *string         `json:"timeSlot"`
	Duration     string          `json:"duration"`
	Location     string          `json:"location"`
	Coordinates  *rawCoordinates `json:"coordinates"`
	CostEstimate *float64        `json:"costEstimate"`
	Category     *string         `json:"category"`
}

type rawDay struct {
	DayNumber  *int           `json:"dayNumber"`
	Title      string         `json:"title"`
	Activities *[]rawActivity `json:"activities"`
}

type rawItinerary struct {
	Destination        *string               `json:"destination"`
	Summary            string                `json:"summary"`
	Currency           string                `json:"currency"`
	TotalEstimatedCost *float64              `json:"totalEstimatedCost"`
	Days               *[]rawDay             `json:"days"`
	DetailedReport     *types.DetailedReport `json:"detailedReport"`
}

var errSchema = errors.New("response does not match itinerary schema")

func schemaErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errSchema, fmt.Sprintf(format, args...))
}

// parseItinerary decodes sanitized model output into a validated itinerary.
// Anything that does not conform is rejected as an InvalidFormat error.
func parseItinerary(jsonStr string) (*types.TripItinerary, error) {
	var raw rawItinerary
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return nil, types.NewInvalidFormatError(fmt.Errorf("failed to parse itinerary JSON: %w", err))
	}

	itinerary, err := raw.validate()
	if err != nil {
		return nil, types.NewInvalidFormatError(err)
	}
	return itinerary, nil
}

func (r rawItinerary) validate() (*types.TripItinerary, error) {
	if r.Destination == nil || strings.TrimSpace(*r.Destination) == "" {
		return nil, schemaErr("missing destination")
	}
	if r.Days == nil {
		return nil, schemaErr("missing days")
	}
	if len(*r.Days) == 0 {
		return nil, schemaErr("days is empty")
	}

	out := &types.TripItinerary{
		Destination:    strings.TrimSpace(*r.Destination),
		Summary:        r.Summary,
		Currency:       strings.ToUpper(strings.TrimSpace(r.Currency)),
		DetailedReport: r.DetailedReport,
		Days:           make([]types.DayPlan, 0, len(*r.Days)),
	}
	if r.TotalEstimatedCost != nil {
		if *r.TotalEstimatedCost < 0 {
			return nil, schemaErr("negative totalEstimatedCost")
		}
		out.TotalEstimatedCost = *r.TotalEstimatedCost
	}

	seen := make(map[int]struct{}, len(*r.Days))
	for i, d := range *r.Days {
		day, err := d.validate(i)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[day.DayNumber]; dup {
			return nil, schemaErr("duplicate dayNumber %d", day.DayNumber)
		}
		seen[day.DayNumber] = struct{}{}
		out.Days = append(out.Days, day)
	}
	return out, nil
}

func (d rawDay) validate(idx int) (types.DayPlan, error) {
	if d.DayNumber == nil || *d.DayNumber < 1 {
		return types.DayPlan{}, schemaErr("days[%d]: dayNumber must be a positive integer", idx)
	}
	if d.Activities == nil {
		return types.DayPlan{}, schemaErr("days[%d]: activities must be an array", idx)
	}

	day := types.DayPlan{
		DayNumber:  *d.DayNumber,
		Title:      d.Title,
		Activities: make([]types.Activity, 0, len(*d.Activities)),
	}
	for j, a := range *d.Activities {
		activity, err := a.validate()
		if err != nil {
			return types.DayPlan{}, fmt.Errorf("days[%d].activities[%d]: %w", idx, j, err)
		}
		day.Activities = append(day.Activities, activity)
	}
	return day, nil
}

func (a rawActivity) validate() (types.Activity, error) {
	if a.Name == nil || strings.TrimSpace(*a.Name) == "" {
		return types.Activity{}, schemaErr("missing name")
	}
	if a.TimeSlot == nil || !types.TimeSlot(*a.TimeSlot).Valid() {
		return types.Activity{}, schemaErr("invalid timeSlot")
	}
	if a.Category == nil || !types.ActivityCategory(*a.Category).Valid() {
		return types.Activity{}, schemaErr("invalid category")
	}
	if a.CostEstimate != nil && *a.CostEstimate < 0 {
		return types.Activity{}, schemaErr("negative costEstimate")
	}

	activity := types.Activity{
		Name:         strings.TrimSpace(*a.Name),
		Description:  a.Description,
		TimeSlot:     types.TimeSlot(*a.TimeSlot),
		Duration:     a.Duration,
		Location:     a.Location,
		CostEstimate: a.CostEstimate,
		Category:     types.ActivityCategory(*a.Category),
	}

	if a.Coordinates != nil {
		c := a.Coordinates
		switch {
		case c.Lat == nil && c.Lng == nil:
		case c.Lat == nil || c.Lng == nil:
			return types.Activity{}, schemaErr("coordinates need both lat and lng")
		case *c.Lat < -90 || *c.Lat > 90 || *c.Lng < -180 || *c.Lng > 180:
			return types.Activity{}, schemaErr("coordinates out of range")
		default:
			activity.Coordinates = &types.Coordinates{Lat: *c.Lat, Lng: *c.Lng}
		}
	}
	return activity, nil
}
