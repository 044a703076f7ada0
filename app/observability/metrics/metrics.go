package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	GenerationRequestsTotal   metric.Int64Counter
	GenerationDurationSeconds metric.Float64Histogram
	GroundedActivitiesTotal   metric.Int64Counter
	ViewTransitionsTotal      metric.Int64Counter
	ActiveSessions            metric.Int64UpDownCounter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics creates the instruments from the global MeterProvider.
// Call it after the provider is installed; later calls are no-ops.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("WanderPlan")
		var err error
		m := &AppMetrics{}

		m.GenerationRequestsTotal, err = meter.Int64Counter(
			"itinerary_generation_requests_total",
			metric.WithDescription("Itinerary generation calls by outcome"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create itinerary_generation_requests_total: %v", err)
		}

		m.GenerationDurationSeconds, err = meter.Float64Histogram(
			"itinerary_generation_duration_seconds",
			metric.WithDescription("Duration of itinerary generation in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create itinerary_generation_duration_seconds: %v", err)
		}

		m.GroundedActivitiesTotal, err = meter.Int64Counter(
			"itinerary_grounded_activities_total",
			metric.WithDescription("Activities that received a map link from grounding metadata"),
			metric.WithUnit("{activity}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create itinerary_grounded_activities_total: %v", err)
		}

		m.ViewTransitionsTotal, err = meter.Int64Counter(
			"planner_view_transitions_total",
			metric.WithDescription("Planner session view transitions"),
			metric.WithUnit("{transition}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create planner_view_transitions_total: %v", err)
		}

		m.ActiveSessions, err = meter.Int64UpDownCounter(
			"planner_active_sessions",
			metric.WithDescription("Planner sessions currently held in memory"),
			metric.WithUnit("{session}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create planner_active_sessions: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the instruments, creating them on first use. Before a provider
// is installed they are bound to the otel no-op provider.
func Get() *AppMetrics {
	InitAppMetrics()
	return appMetrics
}
