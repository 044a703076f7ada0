package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/FACorreiaa/wanderplan/internal/docs"

	"github.com/FACorreiaa/wanderplan/internal/api/itinerary"
	"github.com/FACorreiaa/wanderplan/internal/api/planner"
)

// Config contains dependencies needed for the router setup
type Config struct {
	ItineraryHandler       *itinerary.HandlerImpl
	PlannerHandler         *planner.HandlerImpl
	AuthenticateMiddleware func(http.Handler) http.Handler
	RateLimitMiddleware    func(http.Handler) http.Handler
	AllowedOrigins         []string
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (request id, logger, recoverer) are applied in
// main.go before this router is mounted.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/interests", cfg.ItineraryHandler.ListInterests)

		// Both of these can reach the model or mint sessions.
		r.Group(func(r chi.Router) {
			if cfg.RateLimitMiddleware != nil {
				r.Use(cfg.RateLimitMiddleware)
			}
			r.Post("/itineraries", cfg.ItineraryHandler.GenerateItinerary)
			r.Post("/planner/sessions", cfg.PlannerHandler.CreateSession)
		})

		r.Route("/planner/sessions/{sessionID}", func(r chi.Router) {
			r.Use(cfg.AuthenticateMiddleware)

			r.Get("/", cfg.PlannerHandler.GetSession)
			r.Delete("/", cfg.PlannerHandler.DeleteSession)
			r.Post("/actions", cfg.PlannerHandler.DispatchAction)
			r.Get("/itinerary", cfg.PlannerHandler.GetItinerary)
			r.Get("/budget", cfg.PlannerHandler.GetBudget)
			r.Get("/map", cfg.PlannerHandler.GetMap)
			r.Get("/days/{dayNumber}/route", cfg.PlannerHandler.GetDayRoute)
			r.Get("/days/{dayNumber}/route.png", cfg.PlannerHandler.GetDayRouteQR)
			r.Get("/report.pdf", cfg.PlannerHandler.GetReportPDF)
			r.Get("/calendar.ics", cfg.PlannerHandler.GetCalendar)
		})
	})

	return r
}
