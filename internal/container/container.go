package container

import (
	"context"
	"log/slog"

	appMiddleware "github.com/FACorreiaa/wanderplan/app/middleware"
	"github.com/FACorreiaa/wanderplan/config"
	generativeAI "github.com/FACorreiaa/wanderplan/internal/api/generative_ai"
	"github.com/FACorreiaa/wanderplan/internal/api/itinerary"
	"github.com/FACorreiaa/wanderplan/internal/api/planner"
	"github.com/FACorreiaa/wanderplan/internal/router"
)

// Container holds all application dependencies
type Container struct {
	Config           *config.Config
	Logger           *slog.Logger
	ItineraryService itinerary.Service
	SessionStore     *planner.Store
	Tokens           *appMiddleware.TokenManager
	RateLimiter      *appMiddleware.RateLimiter
	ItineraryHandler *itinerary.HandlerImpl
	PlannerHandler   *planner.HandlerImpl
}

// NewContainer initializes and returns a new dependency container. Planner
// generations run under ctx and stop when it is cancelled.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if cfg.GenerativeAI.APIKey == "" {
		logger.Warn("GOOGLE_GEMINI_API_KEY is not set; itinerary generation will fail until it is configured")
	}
	aiClient := generativeAI.NewAIClient(cfg.GenerativeAI.APIKey, cfg.GenerativeAI.Model, logger)
	itineraryService := itinerary.NewServiceImpl(aiClient, cfg.GenerativeAI.Temperature, cfg.GenerativeAI.Timeout, logger)
	itineraryHandler := itinerary.NewHandlerImpl(itineraryService, logger)

	tokens, err := appMiddleware.NewTokenManager(cfg.Planner.TokenSecret, cfg.Planner.SessionTTL)
	if err != nil {
		logger.Error("Failed to initialize session tokens", slog.Any("error", err))
		return nil, err
	}
	if cfg.Planner.TokenSecret == "" {
		logger.Warn("PLANNER_TOKEN_SECRET is not set; using a random secret for this process")
	}

	limiter := appMiddleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, logger)
	store := planner.NewStore(ctx, itineraryService, cfg.Planner.SessionTTL, cfg.Planner.CleanupInterval, logger)
	plannerHandler := planner.NewHandlerImpl(store, tokens, limiter, nil, logger)

	return &Container{
		Config:           cfg,
		Logger:           logger,
		ItineraryService: itineraryService,
		SessionStore:     store,
		Tokens:           tokens,
		RateLimiter:      limiter,
		ItineraryHandler: itineraryHandler,
		PlannerHandler:   plannerHandler,
	}, nil
}

// RouterConfig exposes the handlers and middleware the router mounts.
func (c *Container) RouterConfig() *router.Config {
	return &router.Config{
		ItineraryHandler:       c.ItineraryHandler,
		PlannerHandler:         c.PlannerHandler,
		AuthenticateMiddleware: appMiddleware.Authenticate(c.Tokens, c.Logger),
		RateLimitMiddleware:    c.RateLimiter.Limit,
		AllowedOrigins:         c.Config.Server.AllowedOrigins,
	}
}

// Close releases all resources held by the container
func (c *Container) Close() {
	if c.SessionStore != nil {
		c.SessionStore.Close()
	}
}
