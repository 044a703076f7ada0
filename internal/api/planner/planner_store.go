package planner

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/FACorreiaa/wanderplan/app/observability/metrics"
	"github.com/FACorreiaa/wanderplan/internal/api/itinerary"
	"github.com/FACorreiaa/wanderplan/internal/types"
)

const (
	DefaultSessionTTL      = 2 * time.Hour
	DefaultCleanupInterval = 10 * time.Minute
)

// Store keeps planner sessions in memory. Expired or deleted sessions have
// their in-flight generation cancelled.
type Store struct {
	baseCtx   context.Context
	cache     *cache.Cache
	generator itinerary.Service
	logger    *slog.Logger
	metrics   *metrics.AppMetrics
}

func NewStore(baseCtx context.Context, generator itinerary.Service, ttl, cleanupInterval time.Duration, logger *slog.Logger) *Store {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if cleanupInterval <= 0 {
		cleanupInterval = DefaultCleanupInterval
	}
	s := &Store{
		baseCtx:   baseCtx,
		cache:     cache.New(ttl, cleanupInterval),
		generator: generator,
		logger:    logger,
		metrics:   metrics.Get(),
	}
	s.cache.OnEvicted(s.onEvicted)
	return s
}

func (s *Store) onEvicted(id string, v interface{}) {
	sess, ok := v.(*Session)
	if !ok {
		return
	}
	sess.Close()
	s.metrics.ActiveSessions.Add(s.baseCtx, -1)
	s.logger.Debug("Planner session evicted", slog.String("session_id", id))
}

func (s *Store) Create(ctx context.Context) *Session {
	id := uuid.NewString()
	sess := NewSession(s.baseCtx, id, s.generator, s.logger)
	s.cache.SetDefault(id, sess)
	s.metrics.ActiveSessions.Add(ctx, 1)
	s.logger.InfoContext(ctx, "Planner session created", slog.String("session_id", id))
	return sess
}

// Get returns the session and slides its expiry forward.
func (s *Store) Get(id string) (*Session, error) {
	v, found := s.cache.Get(id)
	if !found {
		return nil, types.ErrSessionNotFound
	}
	sess, ok := v.(*Session)
	if !ok {
		return nil, types.ErrSessionNotFound
	}
	s.cache.SetDefault(id, sess)
	return sess, nil
}

func (s *Store) Delete(id string) error {
	if _, found := s.cache.Get(id); !found {
		return types.ErrSessionNotFound
	}
	s.cache.Delete(id)
	return nil
}

func (s *Store) Count() int {
	return s.cache.ItemCount()
}

// Close evicts every session, cancelling all running generations.
func (s *Store) Close() {
	for id := range s.cache.Items() {
		s.cache.Delete(id)
	}
}
