package generativeAI

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestNewAIClient_Defaults(t *testing.T) {
	client := NewAIClient("key", "", slog.Default())
	assert.Equal(t, DefaultModel, client.Model())

	client = NewAIClient("key", "gemini-2.5-pro", slog.Default())
	assert.Equal(t, "gemini-2.5-pro", client.Model())
}

func TestAIClient_MissingKeyFailsAtCallTime(t *testing.T) {
	client := NewAIClient("", DefaultModel, slog.Default())

	resp, err := client.GenerateContent(context.Background(), "hello", nil)
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, ErrMissingAPIKey))
}

func TestResponseText(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
		want string
	}{
		{name: "nil response", resp: nil, want: ""},
		{name: "no candidates", resp: &genai.GenerateContentResponse{}, want: ""},
		{
			name: "nil content",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}},
			want: "",
		},
		{
			name: "joins parts and skips thoughts",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []*genai.Part{
					{Text: "thinking...", Thought: true},
					{Text: `{"destination":`},
					nil,
					{Text: `"Kyoto"}`},
				}},
			}}},
			want: `{"destination":"Kyoto"}`,
		},
		{
			name: "only first candidate",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []*genai.Part{{Text: "first"}}}},
				{Content: &genai.Content{Parts: []*genai.Part{{Text: "second"}}}},
			}},
			want: "first",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResponseText(tt.resp))
		})
	}
}

func TestGroundingChunks(t *testing.T) {
	assert.Nil(t, GroundingChunks(nil))
	assert.Nil(t, GroundingChunks(&genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}))

	chunks := []*genai.GroundingChunk{
		{Maps: &genai.GroundingChunkMaps{Title: "Tokyo Tower", URI: "U1"}},
	}
	resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
		GroundingMetadata: &genai.GroundingMetadata{GroundingChunks: chunks},
	}}}
	assert.Equal(t, chunks, GroundingChunks(resp))
}
