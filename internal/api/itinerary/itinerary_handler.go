package itinerary

import (
	"errors"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/FACorreiaa/wanderplan/internal/api"
	"github.com/FACorreiaa/wanderplan/internal/types"
)

type HandlerImpl struct {
	service Service
	logger  *slog.Logger
}

func NewHandlerImpl(service Service, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		service: service,
		logger:  logger,
	}
}

// ListInterests godoc
// @Summary      List interest tags
// @Description  Returns the interest tags the planner wizard offers.
// @Tags         Itineraries
// @Produce      json
// @Success      200 {object} api.InterestsResponse
// @Router       /interests [get]
func (h *HandlerImpl) ListInterests(w http.ResponseWriter, r *http.Request) {
	_, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "ListInterests", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/interests"),
	))
	defer span.End()

	interests := append([]string{}, types.InterestCatalogue...)
	span.SetStatus(codes.Ok, "Interests listed")
	api.WriteJSONResponse(w, r, http.StatusOK, api.InterestsResponse{Interests: interests})
}

// GenerateItinerary godoc
// @Summary      Generate an itinerary
// @Description  Runs the generation pipeline once for the given preferences and returns the grounded itinerary. No session state is kept.
// @Tags         Itineraries
// @Accept       json
// @Produce      json
// @Param        preferences body types.TripPreferences true "Trip preferences"
// @Success      201 {object} types.TripItinerary
// @Failure      400 {object} api.Response "Invalid preferences"
// @Failure      502 {object} api.Response "Generation failed"
// @Router       /itineraries [post]
func (h *HandlerImpl) GenerateItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "GenerateItinerary", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/itineraries"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GenerateItinerary"))

	var prefs types.TripPreferences
	if err := api.DecodeJSONBody(w, r, &prefs); err != nil {
		l.WarnContext(ctx, "Failed to decode request body", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if prefs.Interests == nil {
		prefs.Interests = []string{}
	}
	if err := prefs.Validate(); err != nil {
		l.WarnContext(ctx, "Rejected preferences", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid preferences")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	itinerary, err := h.service.Generate(ctx, prefs)
	if err != nil {
		var genErr *types.GenerationError
		if !errors.As(err, &genErr) {
			genErr = types.NewServiceFailureError(err)
		}
		l.ErrorContext(ctx, "Itinerary generation failed", slog.String("kind", string(genErr.Kind)), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Generation failed")
		api.ErrorResponse(w, r, http.StatusBadGateway, types.GenericGenerationMessage)
		return
	}

	l.InfoContext(ctx, "Itinerary generated", slog.Int("days", len(itinerary.Days)))
	span.SetStatus(codes.Ok, "Itinerary generated")
	api.WriteJSONResponse(w, r, http.StatusCreated, itinerary)
}
