package itinerary

import (
	"context"

	"github.com/stretchr/testify/mock"
	"google.golang.org/genai"

	"github.com/FACorreiaa/wanderplan/internal/types"
)

type MockContentGenerator struct {
	mock.Mock
}

func (m *MockContentGenerator) GenerateContent(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	args := m.Called(ctx, prompt, config)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*genai.GenerateContentResponse), args.Error(1)
}

func (m *MockContentGenerator) Model() string {
	return "gemini-test"
}

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

func textResponse(text string, chunks ...*genai.GroundingChunk) *genai.GenerateContentResponse {
	candidate := &genai.Candidate{
		Content: &genai.Content{Parts: []*genai.Part{{Text: text}}},
	}
	if len(chunks) > 0 {
		candidate.GroundingMetadata = &genai.GroundingMetadata{GroundingChunks: chunks}
	}
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{candidate}}
}
