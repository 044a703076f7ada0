package maps

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/wanderplan/internal/types"
)

func threeDayItinerary() *types.TripItinerary {
	long := at("Castle", 10, 20)
	long.Description = strings.Repeat("é", 100)
	long.GoogleMapLink = "https://maps.google.com/?cid=9"

	return &types.TripItinerary{
		Destination: "Rome",
		Days: []types.DayPlan{
			{DayNumber: 1, Title: "Old town", Activities: []types.Activity{long, named("Lunch"), at("Forum", 12, 18)}},
			{DayNumber: 2, Title: "Quiet", Activities: []types.Activity{}},
			{DayNumber: 3, Title: "Coast", Activities: []types.Activity{at("Beach", -5, 30)}},
		},
	}
}

func TestBuildView_AllDays(t *testing.T) {
	v, err := BuildView(threeDayItinerary(), 0, TravelModeDriving)
	require.NoError(t, err)

	assert.Equal(t, "Rome", v.Destination)
	require.Len(t, v.Days, 3)

	d1 := v.Days[0]
	assert.Equal(t, DayColors[0], d1.Color)
	require.Len(t, d1.Markers, 2, "activities without coordinates get no marker")
	assert.Equal(t, "1-0", d1.Markers[0].ID)
	assert.Equal(t, 1, d1.Markers[0].Number)
	assert.Equal(t, "1-2", d1.Markers[1].ID)
	assert.Equal(t, 3, d1.Markers[1].Number, "marker numbers follow list position")
	assert.Equal(t, strings.Repeat("é", 80)+"...", d1.Markers[0].Excerpt)
	assert.Equal(t, "https://maps.google.com/?cid=9", d1.Markers[0].GoogleMapLink)
	assert.Equal(t, DirectionsLink(types.Coordinates{Lat: 10, Lng: 20}, TravelModeDriving), d1.Markers[0].DirectionsLink)
	require.NotNil(t, d1.Style)
	assert.Equal(t, PolylineStyle{Color: DayColors[0], Weight: 4, Opacity: 0.8}, *d1.Style)
	assert.Contains(t, d1.RouteLink, "waypoints=Lunch%2C%20Rome")

	d2 := v.Days[1]
	assert.Equal(t, DayColors[1], d2.Color)
	assert.Empty(t, d2.Markers)
	assert.Nil(t, d2.Style)
	assert.Empty(t, d2.RouteLink)

	d3 := v.Days[2]
	assert.Equal(t, DayColors[2], d3.Color)
	assert.Nil(t, d3.Style, "a single point draws no line")

	require.NotNil(t, v.Bounds)
	assert.Equal(t, types.Coordinates{Lat: -5, Lng: 18}, v.Bounds.SouthWest)
	assert.Equal(t, types.Coordinates{Lat: 12, Lng: 30}, v.Bounds.NorthEast)
}

func TestBuildView_SingleDay(t *testing.T) {
	v, err := BuildView(threeDayItinerary(), 3, TravelModeWalking)
	require.NoError(t, err)
	require.Len(t, v.Days, 1)
	assert.Equal(t, 3, v.ActiveDay)
	assert.Equal(t, DayColors[2], v.Days[0].Color, "color keeps the day's position")
	assert.Equal(t, v.Bounds.SouthWest, v.Bounds.NorthEast)

	_, err = BuildView(threeDayItinerary(), 4, TravelModeWalking)
	assert.ErrorIs(t, err, types.ErrDayNotFound)
	_, err = BuildView(threeDayItinerary(), -1, TravelModeWalking)
	assert.ErrorIs(t, err, types.ErrDayNotFound)
}

func TestBuildView_NoCoordinates(t *testing.T) {
	it := &types.TripItinerary{Destination: "Rome", Days: []types.DayPlan{{DayNumber: 1, Activities: []types.Activity{named("Lunch")}}}}
	v, err := BuildView(it, 0, "")
	require.NoError(t, err)
	assert.Equal(t, TravelModeDriving, v.Mode)
	assert.Nil(t, v.Bounds)
	assert.NotEmpty(t, v.Days[0].RouteLink)
}

func TestStyleFor(t *testing.T) {
	assert.Equal(t, PolylineStyle{Color: "#fff", Weight: 3, Opacity: 0.8, DashArray: "5, 10"}, StyleFor(TravelModeWalking, "#fff"))
	assert.Equal(t, PolylineStyle{Color: "#fff", Weight: 3, Opacity: 0.8, DashArray: "10, 10"}, StyleFor(TravelModeTransit, "#fff"))
	assert.Equal(t, PolylineStyle{Color: "#fff", Weight: 4, Opacity: 0.8}, StyleFor(TravelModeDriving, "#fff"))
}

func TestDayColor_Cycles(t *testing.T) {
	assert.Equal(t, DayColors[0], DayColor(len(DayColors)))
	assert.Equal(t, DayColors[1], DayColor(7))
}

func TestRouteQRCode(t *testing.T) {
	data, err := RouteQRCode("https://www.google.com/maps/dir/?api=1&origin=1,2&destination=3,4&travelmode=driving", DefaultQRSize)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, DefaultQRSize, img.Bounds().Dx())
}
