package export

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/ringsaturn/tzf"

	"github.com/FACorreiaa/wanderplan/internal/api/maps"
	"github.com/FACorreiaa/wanderplan/internal/types"
)

const (
	defaultActivityLength = 2 * time.Hour
	icsLocalFormat        = "20060102T150405"
)

var slotStart = map[types.TimeSlot]int{
	types.TimeSlotMorning:   9,
	types.TimeSlotAfternoon: 13,
	types.TimeSlotEvening:   18,
}

// TimezoneResolver names the IANA zone at a coordinate.
type TimezoneResolver interface {
	GetTimezoneName(lng float64, lat float64) string
}

var (
	defaultFinderOnce sync.Once
	defaultFinder     TimezoneResolver
	defaultFinderErr  error
)

// DefaultTimezoneResolver loads the bundled timezone polygons on first use.
func DefaultTimezoneResolver() (TimezoneResolver, error) {
	defaultFinderOnce.Do(func() {
		f, err := tzf.NewDefaultFinder()
		if err != nil {
			defaultFinderErr = fmt.Errorf("failed to load timezone finder: %w", err)
			return
		}
		defaultFinder = f
	})
	return defaultFinder, defaultFinderErr
}

// DestinationLocation resolves the zone of the first activity that has
// coordinates. It falls back to UTC.
func DestinationLocation(itinerary *types.TripItinerary, resolver TimezoneResolver) *time.Location {
	if itinerary == nil || resolver == nil {
		return time.UTC
	}
	for _, day := range itinerary.Days {
		for _, a := range day.Activities {
			if a.Coordinates == nil {
				continue
			}
			name := resolver.GetTimezoneName(a.Coordinates.Lng, a.Coordinates.Lat)
			if name == "" {
				return time.UTC
			}
			loc, err := time.LoadLocation(name)
			if err != nil {
				return time.UTC
			}
			return loc
		}
	}
	return time.UTC
}

var durationPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(hours?|hrs?|h|minutes?|mins?|m)`)

// ParseActivityLength reads free text such as "2 hours" or "1h 30 min".
// Unreadable text yields the two hour default.
func ParseActivityLength(s string) time.Duration {
	var total time.Duration
	for _, m := range durationPattern.FindAllStringSubmatch(s, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		unit := time.Minute
		if strings.HasPrefix(strings.ToLower(m[2]), "h") {
			unit = time.Hour
		}
		total += time.Duration(v * float64(unit))
	}
	if total <= 0 {
		return defaultActivityLength
	}
	return total
}

// Calendar renders one VEVENT per activity. Day N lands on start+N-1; each
// time slot begins at a fixed hour and activities within a slot run back to
// back in list order.
func Calendar(itinerary *types.TripItinerary, start time.Time, loc *time.Location) (string, error) {
	if itinerary == nil {
		return "", types.ErrItineraryNotReady
	}
	if loc == nil {
		loc = time.UTC
	}

	cal := ics.NewCalendarFor("WanderPlan")
	cal.SetMethod(ics.MethodPublish)
	cal.SetXWRCalName(itinerary.Destination)
	cal.SetXWRTimezone(loc.String())
	if itinerary.Summary != "" {
		cal.SetXWRCalDesc(itinerary.Summary)
	}

	stamp := time.Now()
	base := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)

	for _, day := range itinerary.Days {
		date := base.AddDate(0, 0, day.DayNumber-1)
		cursor := map[types.TimeSlot]time.Time{}

		for idx, a := range day.Activities {
			begin, ok := cursor[a.TimeSlot]
			if !ok {
				begin = date.Add(time.Duration(slotStart[a.TimeSlot]) * time.Hour)
			}
			end := begin.Add(ParseActivityLength(a.Duration))
			cursor[a.TimeSlot] = end

			event := cal.AddEvent(fmt.Sprintf("%d-%d-%s@wanderplan", day.DayNumber, idx, base.Format("20060102")))
			event.SetDtStampTime(stamp)
			event.SetProperty(ics.ComponentPropertyDtStart, begin.Format(icsLocalFormat), ics.WithTZID(loc.String()))
			event.SetProperty(ics.ComponentPropertyDtEnd, end.Format(icsLocalFormat), ics.WithTZID(loc.String()))
			event.SetSummary(a.Name)
			event.SetDescription(eventDescription(day, a))
			if a.Location != "" {
				event.SetLocation(a.Location)
			}
			if a.Coordinates != nil {
				event.SetGeo(a.Coordinates.Lat, a.Coordinates.Lng)
			}
			switch {
			case a.GoogleMapLink != "":
				event.SetURL(a.GoogleMapLink)
			case a.Coordinates != nil:
				event.SetURL(maps.DirectionsLink(*a.Coordinates, maps.TravelModeDriving))
			}
		}
	}
	return cal.Serialize(), nil
}

func eventDescription(day types.DayPlan, a types.Activity) string {
	parts := []string{fmt.Sprintf("Day %d", day.DayNumber)}
	if day.Title != "" {
		parts[0] += ": " + day.Title
	}
	if a.Description != "" {
		parts = append(parts, a.Description)
	}
	parts = append(parts, "Category: "+string(a.Category))
	return strings.Join(parts, "\n")
}
