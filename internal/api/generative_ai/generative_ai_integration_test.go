//go:build integration

package generativeAI

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestMain(m *testing.M) {
	if os.Getenv("GOOGLE_GEMINI_API_KEY") == "" {
		os.Exit(0)
	}
	os.Exit(m.Run())
}

func newIntegrationClient() *AIClient {
	return NewAIClient(os.Getenv("GOOGLE_GEMINI_API_KEY"), DefaultModel, slog.Default())
}

func TestAIClient_GenerateContent_Integration(t *testing.T) {
	ctx := context.Background()
	client := newIntegrationClient()

	t.Run("Generate content with simple prompt", func(t *testing.T) {
		config := &genai.GenerateContentConfig{
			Temperature: genai.Ptr[float32](0.1),
		}

		response, err := client.GenerateContent(ctx, "What is the capital of Portugal?", config)
		require.NoError(t, err)
		assert.Contains(t, ResponseText(response), "Lisbon")
	})

	t.Run("Maps grounding returns citations", func(t *testing.T) {
		config := &genai.GenerateContentConfig{
			Temperature: genai.Ptr[float32](0.4),
			Tools:       []*genai.Tool{{GoogleMaps: &genai.GoogleMaps{}}},
		}

		response, err := client.GenerateContent(ctx, "Name two famous temples in Kyoto and where they are.", config)
		require.NoError(t, err)
		text := strings.ToLower(ResponseText(response))
		assert.Contains(t, text, "kyoto")
		// Grounding is best effort on the service side; only check shape.
		for _, c := range GroundingChunks(response) {
			require.NotNil(t, c)
		}
	})
}

func TestAIClient_ErrorHandling_Integration(t *testing.T) {
	ctx := context.Background()

	t.Run("Context cancellation", func(t *testing.T) {
		client := newIntegrationClient()

		cancelCtx, cancel := context.WithTimeout(ctx, time.Millisecond)
		defer cancel()
		time.Sleep(2 * time.Millisecond)

		_, err := client.GenerateContent(cancelCtx, "This should be cancelled", nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "context")
	})

	t.Run("Invalid key", func(t *testing.T) {
		client := NewAIClient("invalid-key", DefaultModel, slog.Default())
		_, err := client.GenerateContent(ctx, "Hello", nil)
		assert.Error(t, err)
	})
}
