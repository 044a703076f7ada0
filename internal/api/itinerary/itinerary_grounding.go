package itinerary

import (
	"strings"

	"golang.org/x/text/cases"
	"google.golang.org/genai"

	"github.com/FACorreiaa/wanderplan/internal/types"
)

// convertGroundingChunks copies the citation records off the genai response
// without interpreting them.
func convertGroundingChunks(chunks []*genai.GroundingChunk) []types.GroundingChunk {
	if len(chunks) == 0 {
		return nil
	}
	out := make([]types.GroundingChunk, 0, len(chunks))
	for _, c := range chunks {
		if c == nil {
			continue
		}
		var rec types.GroundingChunk
		if c.Maps != nil {
			rec.Maps = &types.GroundingSource{Title: c.Maps.Title, URI: c.Maps.URI, PlaceID: c.Maps.PlaceID}
		}
		if c.Web != nil {
			rec.Web = &types.GroundingSource{Title: c.Web.Title, URI: c.Web.URI}
		}
		out = append(out, rec)
	}
	return out
}

// enrichWithGrounding sets GoogleMapLink on every activity whose name contains
// a map citation title. The first citation in list order wins, even when its
// URI turns out to be empty. It returns how many activities got a link.
func enrichWithGrounding(itinerary *types.TripItinerary, chunks []types.GroundingChunk) int {
	if itinerary == nil || len(chunks) == 0 {
		return 0
	}

	fold := cases.Fold()
	titles := make([]string, len(chunks))
	for i, c := range chunks {
		if c.Maps != nil && c.Maps.Title != "" {
			titles[i] = fold.String(c.Maps.Title)
		}
	}

	linked := 0
	for d := range itinerary.Days {
		activities := itinerary.Days[d].Activities
		for a := range activities {
			name := fold.String(activities[a].Name)
			for i, title := range titles {
				if title == "" || !strings.Contains(name, title) {
					continue
				}
				if uri := chunks[i].Maps.URI; uri != "" {
					activities[a].GoogleMapLink = uri
					linked++
				}
				break
			}
		}
	}
	return linked
}
