package itinerary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"github.com/FACorreiaa/wanderplan/app/observability/metrics"
	generativeAI "github.com/FACorreiaa/wanderplan/internal/api/generative_ai"
	"github.com/FACorreiaa/wanderplan/internal/types"
)

const DefaultTemperature float32 = 0.4

var _ Service = (*ServiceImpl)(nil)

// Service turns trip preferences into a grounded itinerary.
type Service interface {
	Generate(ctx context.Context, prefs types.TripPreferences) (*types.TripItinerary, error)
}

type ServiceImpl struct {
	logger      *slog.Logger
	aiClient    generativeAI.ContentGenerator
	temperature float32
	timeout     time.Duration
	metrics     *metrics.AppMetrics
}

// NewServiceImpl builds the pipeline. A negative temperature selects
// DefaultTemperature. A zero timeout leaves the call bounded only by the
// caller's context.
func NewServiceImpl(aiClient generativeAI.ContentGenerator, temperature float32, timeout time.Duration, logger *slog.Logger) *ServiceImpl {
	if temperature < 0 {
		temperature = DefaultTemperature
	}
	return &ServiceImpl{
		logger:      logger,
		aiClient:    aiClient,
		temperature: temperature,
		timeout:     timeout,
		metrics:     metrics.Get(),
	}
}

func (s *ServiceImpl) generationConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Tools:       []*genai.Tool{{GoogleMaps: &genai.GoogleMaps{}}},
		Temperature: genai.Ptr(s.temperature),
	}
}

// Generate calls the model once. Every failure comes back as a
// *types.GenerationError and is never retried here.
func (s *ServiceImpl) Generate(ctx context.Context, prefs types.TripPreferences) (*types.TripItinerary, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "Generate", trace.WithAttributes(
		attribute.String("trip.destination", prefs.Destination),
		attribute.Int("trip.duration", prefs.Duration),
		attribute.Int("trip.travelers", prefs.Travelers),
		attribute.String("trip.budget", string(prefs.Budget)),
		attribute.StringSlice("trip.interests", prefs.Interests),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "Generate"), slog.String("destination", prefs.Destination))
	start := time.Now()

	itinerary, err := s.generate(ctx, prefs, l)

	outcome := "success"
	if err != nil {
		outcome = string(types.GenerationErrorKindOf(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		l.ErrorContext(ctx, "Itinerary generation failed", slog.String("kind", outcome), slog.Any("error", err))
	} else {
		span.SetAttributes(attribute.Int("itinerary.days", len(itinerary.Days)))
		span.SetStatus(codes.Ok, "Itinerary generated")
		l.InfoContext(ctx, "Itinerary generated", slog.Int("days", len(itinerary.Days)))
	}
	s.metrics.GenerationRequestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	s.metrics.GenerationDurationSeconds.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(attribute.String("outcome", outcome)))

	return itinerary, err
}

func (s *ServiceImpl) generate(ctx context.Context, prefs types.TripPreferences, l *slog.Logger) (*types.TripItinerary, error) {
	prompt := GetItineraryPrompt(prefs)
	l.DebugContext(ctx, "Calling generation capability", slog.String("model", s.aiClient.Model()), slog.Int("prompt_length", len(prompt)))

	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	response, err := s.aiClient.GenerateContent(callCtx, prompt, s.generationConfig())
	if err != nil {
		return nil, types.NewServiceFailureError(err)
	}
	if response == nil {
		return nil, types.NewServiceFailureError(errors.New("empty response from generation capability"))
	}

	txt := generativeAI.ResponseText(response)
	if txt == "" {
		return nil, types.NewInvalidFormatError(errors.New("no text content in model response"))
	}

	itinerary, err := parseItinerary(cleanJSONResponse(txt))
	if err != nil {
		l.DebugContext(ctx, "Rejected model output", slog.String("raw", TruncateString(txt, 500)))
		return nil, err
	}

	if len(itinerary.Days) != prefs.Duration {
		l.WarnContext(ctx, "Model returned a different number of days than requested",
			slog.Int("requested", prefs.Duration), slog.Int("returned", len(itinerary.Days)))
	}

	chunks := convertGroundingChunks(generativeAI.GroundingChunks(response))
	linked := enrichWithGrounding(itinerary, chunks)
	itinerary.GroundingMetadata = chunks
	s.metrics.GroundedActivitiesTotal.Add(ctx, int64(linked))
	l.DebugContext(ctx, "Applied grounding metadata", slog.Int("citations", len(chunks)), slog.Int("linked_activities", linked))

	return itinerary, nil
}

func TruncateString(str string, num int) string {
	if len(str) <= num {
		return str
	}
	return fmt.Sprintf("%s...", str[:num])
}
