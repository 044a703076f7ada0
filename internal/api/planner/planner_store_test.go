package planner

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/wanderplan/internal/types"
)

func TestStore_CreateGetDelete(t *testing.T) {
	store := NewStore(context.Background(), new(MockItineraryService), 0, 0, slog.Default())
	defer store.Close()

	sess := store.Create(context.Background())
	require.NotEmpty(t, sess.ID)
	assert.Equal(t, 1, store.Count())

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)

	other := store.Create(context.Background())
	assert.NotEqual(t, sess.ID, other.ID)
	assert.Equal(t, 2, store.Count())

	require.NoError(t, store.Delete(sess.ID))
	_, err = store.Get(sess.ID)
	assert.ErrorIs(t, err, types.ErrSessionNotFound)
	assert.ErrorIs(t, store.Delete(sess.ID), types.ErrSessionNotFound)
	assert.Equal(t, 1, store.Count())
}

func TestStore_GetUnknown(t *testing.T) {
	store := NewStore(context.Background(), new(MockItineraryService), 0, 0, slog.Default())
	_, err := store.Get("does-not-exist")
	assert.ErrorIs(t, err, types.ErrSessionNotFound)
}

func TestStore_SessionsExpire(t *testing.T) {
	store := NewStore(context.Background(), new(MockItineraryService), 50*time.Millisecond, 10*time.Millisecond, slog.Default())
	sess := store.Create(context.Background())

	// Get slides the expiry, so the session has to sit idle past its TTL.
	time.Sleep(150 * time.Millisecond)

	_, err := store.Get(sess.ID)
	assert.ErrorIs(t, err, types.ErrSessionNotFound)
	assert.Zero(t, store.Count())

	snapshot, transitioned := sess.Dispatch(context.Background(), Action{Type: ActionStartPlanning})
	assert.False(t, transitioned, "evicted session must be frozen")
	assert.Equal(t, ViewLanding, snapshot.View)
}

func TestStore_GetSlidesExpiry(t *testing.T) {
	store := NewStore(context.Background(), new(MockItineraryService), 200*time.Millisecond, 10*time.Millisecond, slog.Default())
	sess := store.Create(context.Background())

	for i := 0; i < 4; i++ {
		time.Sleep(70 * time.Millisecond)
		_, err := store.Get(sess.ID)
		require.NoError(t, err)
	}
}

func TestStore_DeleteCancelsRunningGeneration(t *testing.T) {
	started := make(chan struct{})
	gen := new(MockItineraryService)
	gen.On("Generate", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			close(started)
			<-args.Get(0).(context.Context).Done()
		}).
		Return(nil, context.Canceled).Once()

	store := NewStore(context.Background(), gen, 0, 0, slog.Default())
	sess := store.Create(context.Background())
	fillWizard(t, sess)
	sess.Dispatch(context.Background(), Action{Type: ActionSubmit})
	<-started

	require.NoError(t, store.Delete(sess.ID))
	sess.Wait()
	gen.AssertExpectations(t)
}

func TestStore_CloseEvictsEverything(t *testing.T) {
	store := NewStore(context.Background(), new(MockItineraryService), 0, 0, slog.Default())
	a := store.Create(context.Background())
	store.Create(context.Background())

	store.Close()
	assert.Zero(t, store.Count())

	_, ok := a.Dispatch(context.Background(), Action{Type: ActionStartPlanning})
	assert.False(t, ok, "evicted sessions are frozen")
}
