package planner

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/FACorreiaa/wanderplan/app/observability/metrics"
	"github.com/FACorreiaa/wanderplan/internal/api/itinerary"
	"github.com/FACorreiaa/wanderplan/internal/types"
)

// Snapshot is the client-facing copy of a session's state.
type Snapshot struct {
	SessionID    string                `json:"sessionId"`
	View         View                  `json:"view"`
	Preferences  types.TripPreferences `json:"preferences"`
	CanSubmit    bool                  `json:"canSubmit"`
	ErrorMessage string                `json:"errorMessage,omitempty"`
	Itinerary    *types.TripItinerary  `json:"itinerary,omitempty"`
	RunID        uint64                `json:"runId"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

// Session is one user's view state machine plus its in-flight generation.
type Session struct {
	ID string

	baseCtx   context.Context
	generator itinerary.Service
	logger    *slog.Logger
	metrics   *metrics.AppMetrics

	mu        sync.Mutex
	state     State
	cancelRun context.CancelFunc
	updatedAt time.Time
	closed    bool

	running sync.WaitGroup
}

// NewSession starts at the landing view. Generations run under baseCtx.
func NewSession(baseCtx context.Context, id string, generator itinerary.Service, logger *slog.Logger) *Session {
	return &Session{
		ID:        id,
		baseCtx:   baseCtx,
		generator: generator,
		logger:    logger.With(slog.String("session_id", id)),
		metrics:   metrics.Get(),
		state:     NewState(),
		updatedAt: time.Now(),
	}
}

// Dispatch applies a and reports whether the view state changed. Entering
// loading starts the pipeline; leaving it cancels any call still running.
func (s *Session) Dispatch(ctx context.Context, a Action) (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return s.snapshotLocked(), false
	}

	prev := s.state
	next, ok := Transition(prev, a)
	if !ok {
		s.logger.DebugContext(ctx, "Ignored action", slog.String("view", string(prev.View)), slog.String("action", string(a.Type)))
		return s.snapshotLocked(), false
	}

	s.state = next
	s.updatedAt = time.Now()
	s.metrics.ViewTransitionsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("from", string(prev.View)),
		attribute.String("to", string(next.View)),
		attribute.String("action", string(a.Type)),
	))
	if prev.View != next.View {
		s.logger.InfoContext(ctx, "View transition",
			slog.String("from", string(prev.View)),
			slog.String("to", string(next.View)),
			slog.String("action", string(a.Type)))
	}

	if prev.View == ViewLoading && next.View != ViewLoading {
		s.stopRunLocked()
	}
	if next.View == ViewLoading && prev.View != ViewLoading {
		s.startRunLocked(next.RunID, next.Preferences.Clone())
	}
	return s.snapshotLocked(), true
}

func (s *Session) startRunLocked(runID uint64, prefs types.TripPreferences) {
	runCtx, cancel := context.WithCancel(s.baseCtx)
	s.cancelRun = cancel
	s.running.Add(1)

	go func() {
		defer s.running.Done()
		defer cancel()

		result, err := s.generator.Generate(runCtx, prefs)
		if err != nil {
			s.logger.WarnContext(runCtx, "Generation finished with error",
				slog.Uint64("run_id", runID),
				slog.String("kind", string(types.GenerationErrorKindOf(err))),
				slog.Any("error", err))
			s.Dispatch(s.baseCtx, Action{Type: ActionGenerationFailed, RunID: runID})
			return
		}
		s.Dispatch(s.baseCtx, Action{Type: ActionGenerationSucceeded, RunID: runID, Itinerary: result})
	}()
}

func (s *Session) stopRunLocked() {
	if s.cancelRun != nil {
		s.cancelRun()
		s.cancelRun = nil
	}
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		SessionID:    s.ID,
		View:         s.state.View,
		Preferences:  s.state.Preferences.Clone(),
		CanSubmit:    s.state.Preferences.CanSubmit(),
		ErrorMessage: s.state.ErrorMessage,
		Itinerary:    s.state.Itinerary.Clone(),
		RunID:        s.state.RunID,
		UpdatedAt:    s.updatedAt,
	}
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Itinerary returns a copy of the held itinerary, or ErrItineraryNotReady
// outside the itinerary view.
func (s *Session) Itinerary() (*types.TripItinerary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.View != ViewItinerary || s.state.Itinerary == nil {
		return nil, types.ErrItineraryNotReady
	}
	return s.state.Itinerary.Clone(), nil
}

// Preferences returns a copy of the current wizard preferences.
func (s *Session) Preferences() types.TripPreferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Preferences.Clone()
}

// Close cancels any in-flight generation and freezes the session.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.stopRunLocked()
}

// Wait blocks until no generation goroutine is running.
func (s *Session) Wait() {
	s.running.Wait()
}
