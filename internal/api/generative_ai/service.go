package generativeAI

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

var ErrMissingAPIKey = errors.New("GOOGLE_GEMINI_API_KEY is not configured")

// ContentGenerator is the part of the Gemini API the itinerary pipeline depends on.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	Model() string
}

type AIClient struct {
	apiKey string
	model  string
	logger *slog.Logger

	mu     sync.Mutex
	client *genai.Client
}

var _ ContentGenerator = (*AIClient)(nil)

// NewAIClient does not dial anything. A missing key surfaces on the first
// GenerateContent call instead of at startup.
func NewAIClient(apiKey, model string, logger *slog.Logger) *AIClient {
	if model == "" {
		model = DefaultModel
	}
	return &AIClient{
		apiKey: apiKey,
		model:  model,
		logger: logger,
	}
}

func (ai *AIClient) Model() string { return ai.model }

func (ai *AIClient) genaiClient(ctx context.Context) (*genai.Client, error) {
	ai.mu.Lock()
	defer ai.mu.Unlock()

	if ai.client != nil {
		return ai.client, nil
	}
	if ai.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  ai.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	ai.client = client
	return client, nil
}

func (ai *AIClient) GenerateContent(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "GenerateContent", trace.WithAttributes(
		attribute.Int("prompt.length", len(prompt)),
		attribute.String("model", ai.model),
	))
	defer span.End()

	client, err := ai.genaiClient(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Client not available")
		return nil, err
	}

	result, err := client.Models.GenerateContent(ctx, ai.model, genai.Text(prompt), config)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to generate content")
		ai.logger.ErrorContext(ctx, "Gemini GenerateContent failed", slog.String("model", ai.model), slog.Any("error", err))
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	span.SetAttributes(attribute.Int("response.candidates", len(result.Candidates)))
	span.SetStatus(codes.Ok, "Content generated successfully")
	return result, nil
}

// ResponseText concatenates the text parts of the first candidate.
func ResponseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return ""
	}
	var txt string
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		txt += part.Text
	}
	return txt
}

// GroundingChunks returns the citation records attached to the first candidate.
func GroundingChunks(resp *genai.GenerateContentResponse) []*genai.GroundingChunk {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.GroundingMetadata == nil {
		return nil
	}
	return candidate.GroundingMetadata.GroundingChunks
}
