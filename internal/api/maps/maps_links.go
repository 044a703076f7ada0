package maps

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/FACorreiaa/wanderplan/internal/types"
)

const directionsBaseURL = "https://www.google.com/maps/dir/?api=1"

type TravelMode string

const (
	TravelModeDriving TravelMode = "driving"
	TravelModeWalking TravelMode = "walking"
	TravelModeTransit TravelMode = "transit"
)

var ErrInvalidTravelMode = fmt.Errorf("travel mode must be one of %s, %s, %s", TravelModeDriving, TravelModeWalking, TravelModeTransit)

// ParseTravelMode maps an empty string to driving.
func ParseTravelMode(s string) (TravelMode, error) {
	switch m := TravelMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return TravelModeDriving, nil
	case TravelModeDriving, TravelModeWalking, TravelModeTransit:
		return m, nil
	}
	return "", ErrInvalidTravelMode
}

func formatCoordinates(c types.Coordinates) string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'f', -1, 64)
}

// escapeComponent percent-encodes s with spaces as %20.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// FormatLocation is "lat,lng" when the activity has coordinates, otherwise the
// escaped "<name>, <destination>" search text.
func FormatLocation(a types.Activity, destination string) string {
	if a.Coordinates != nil {
		return formatCoordinates(*a.Coordinates)
	}
	return escapeComponent(a.Name + ", " + destination)
}

// RouteLink builds a directions URL through every activity of the day in
// order. Days without activities have no route.
func RouteLink(day types.DayPlan, destination string, mode TravelMode) (string, error) {
	if len(day.Activities) == 0 {
		return "", fmt.Errorf("%w: day %d", types.ErrNoActivities, day.DayNumber)
	}
	if mode == "" {
		mode = TravelModeDriving
	}

	locs := lo.Map(day.Activities, func(a types.Activity, _ int) string {
		return FormatLocation(a, destination)
	})

	var b strings.Builder
	b.WriteString(directionsBaseURL)
	b.WriteString("&origin=")
	b.WriteString(locs[0])
	b.WriteString("&destination=")
	b.WriteString(locs[len(locs)-1])
	if len(locs) > 2 {
		b.WriteString("&waypoints=")
		b.WriteString(strings.Join(locs[1:len(locs)-1], "|"))
	}
	b.WriteString("&travelmode=")
	b.WriteString(string(mode))
	return b.String(), nil
}

// DirectionsLink points at a single place, starting from wherever the user is.
func DirectionsLink(c types.Coordinates, mode TravelMode) string {
	if mode == "" {
		mode = TravelModeDriving
	}
	return directionsBaseURL + "&destination=" + formatCoordinates(c) + "&travelmode=" + string(mode)
}
