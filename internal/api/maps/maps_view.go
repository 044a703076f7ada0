package maps

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/FACorreiaa/wanderplan/internal/types"
)

// DayColors is cycled by day position, not day number.
var DayColors = []string{"#10B981", "#3B82F6", "#F59E0B", "#6366F1", "#EC4899", "#8B5CF6"}

const excerptLength = 80

func DayColor(dayIndex int) string {
	return DayColors[dayIndex%len(DayColors)]
}

type PolylineStyle struct {
	Color     string  `json:"color"`
	Weight    int     `json:"weight"`
	Opacity   float64 `json:"opacity"`
	DashArray string  `json:"dashArray,omitempty"`
}

func StyleFor(mode TravelMode, color string) PolylineStyle {
	style := PolylineStyle{Color: color, Weight: 4, Opacity: 0.8}
	switch mode {
	case TravelModeWalking:
		style.DashArray = "5, 10"
		style.Weight = 3
	case TravelModeTransit:
		style.DashArray = "10, 10"
		style.Weight = 3
	}
	return style
}

type Marker struct {
	ID             string            `json:"id"`
	DayNumber      int               `json:"dayNumber"`
	Number         int               `json:"number"`
	Name           string            `json:"name"`
	TimeSlot       types.TimeSlot    `json:"timeSlot"`
	Excerpt        string            `json:"excerpt"`
	Coordinates    types.Coordinates `json:"coordinates"`
	Color          string            `json:"color"`
	DirectionsLink string            `json:"directionsLink"`
	GoogleMapLink  string            `json:"googleMapLink,omitempty"`
}

type DayLayer struct {
	DayNumber int                 `json:"dayNumber"`
	Title     string              `json:"title"`
	Color     string              `json:"color"`
	Markers   []Marker            `json:"markers"`
	Path      []types.Coordinates `json:"path"`
	// Style is set only when the day has at least two mapped stops.
	Style     *PolylineStyle `json:"style,omitempty"`
	RouteLink string         `json:"routeLink,omitempty"`
}

type Bounds struct {
	SouthWest types.Coordinates `json:"southWest"`
	NorthEast types.Coordinates `json:"northEast"`
}

type View struct {
	Destination string     `json:"destination"`
	Mode        TravelMode `json:"mode"`
	ActiveDay   int        `json:"activeDay"`
	Days        []DayLayer `json:"days"`
	Bounds      *Bounds    `json:"bounds,omitempty"`
}

// BuildView lays out markers and routes for the itinerary. activeDay 0 shows
// every day; any other value keeps only that day number.
func BuildView(itinerary *types.TripItinerary, activeDay int, mode TravelMode) (View, error) {
	if activeDay < 0 {
		return View{}, fmt.Errorf("%w: day %d", types.ErrDayNotFound, activeDay)
	}
	if activeDay > 0 {
		if _, err := itinerary.Day(activeDay); err != nil {
			return View{}, err
		}
	}
	if mode == "" {
		mode = TravelModeDriving
	}

	view := View{
		Destination: itinerary.Destination,
		Mode:        mode,
		ActiveDay:   activeDay,
		Days:        []DayLayer{},
	}

	var all []types.Coordinates
	for dayIndex, day := range itinerary.Days {
		if activeDay != 0 && day.DayNumber != activeDay {
			continue
		}
		layer := buildDayLayer(day, DayColor(dayIndex), itinerary.Destination, mode)
		all = append(all, layer.Path...)
		view.Days = append(view.Days, layer)
	}
	view.Bounds = boundsOf(all)
	return view, nil
}

func buildDayLayer(day types.DayPlan, color, destination string, mode TravelMode) DayLayer {
	layer := DayLayer{
		DayNumber: day.DayNumber,
		Title:     day.Title,
		Color:     color,
		Markers:   []Marker{},
		Path:      []types.Coordinates{},
	}
	for idx, a := range day.Activities {
		if a.Coordinates == nil {
			continue
		}
		layer.Path = append(layer.Path, *a.Coordinates)
		layer.Markers = append(layer.Markers, Marker{
			ID:             fmt.Sprintf("%d-%d", day.DayNumber, idx),
			DayNumber:      day.DayNumber,
			Number:         idx + 1,
			Name:           a.Name,
			TimeSlot:       a.TimeSlot,
			Excerpt:        excerpt(a.Description),
			Coordinates:    *a.Coordinates,
			Color:          color,
			DirectionsLink: DirectionsLink(*a.Coordinates, mode),
			GoogleMapLink:  a.GoogleMapLink,
		})
	}
	if len(layer.Path) > 1 {
		style := StyleFor(mode, color)
		layer.Style = &style
	}
	if link, err := RouteLink(day, destination, mode); err == nil {
		layer.RouteLink = link
	}
	return layer
}

func excerpt(s string) string {
	r := []rune(s)
	if len(r) <= excerptLength {
		return s
	}
	return string(r[:excerptLength]) + "..."
}

func boundsOf(points []types.Coordinates) *Bounds {
	if len(points) == 0 {
		return nil
	}
	lats := lo.Map(points, func(c types.Coordinates, _ int) float64 { return c.Lat })
	lngs := lo.Map(points, func(c types.Coordinates, _ int) float64 { return c.Lng })
	return &Bounds{
		SouthWest: types.Coordinates{Lat: lo.Min(lats), Lng: lo.Min(lngs)},
		NorthEast: types.Coordinates{Lat: lo.Max(lats), Lng: lo.Max(lngs)},
	}
}
