package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/transferflow/internal/pkg/models"
	"github.com/piresc/transferflow/services/payment"
	"github.com/piresc/transferflow/services/payment/flow"
)

func newIdleFlow() *flow.Flow {
	return flow.New(flow.Dependencies{}, models.Contact{}, flow.Options{})
}

func TestSessionStore_Lookup(t *testing.T) {
	store := NewSessionStore(time.Minute)
	sess := store.Add(uuid.New(), "user-1", newIdleFlow())

	got, err := store.Get(sess.ID, "user-1")
	require.NoError(t, err)
	assert.Same(t, sess, got)

	_, err = store.Get(sess.ID, "user-2")
	assert.ErrorIs(t, err, payment.ErrSessionForbidden)
	_, err = store.Get(uuid.New(), "user-1")
	assert.ErrorIs(t, err, payment.ErrSessionNotFound)

	_, err = store.Remove(sess.ID, "user-2")
	assert.ErrorIs(t, err, payment.ErrSessionForbidden)
	_, err = store.Remove(sess.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestSessionStore_Sweep(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	store := NewSessionStore(30 * time.Minute)
	store.now = func() time.Time { return now }

	idle := store.Add(uuid.New(), "user-1", newIdleFlow())
	active := store.Add(uuid.New(), "user-1", newIdleFlow())

	now = now.Add(20 * time.Minute)
	_, err := store.Get(active.ID, "user-1")
	require.NoError(t, err)

	now = now.Add(15 * time.Minute)
	assert.Equal(t, 1, store.Sweep())

	_, err = store.Get(idle.ID, "user-1")
	assert.ErrorIs(t, err, payment.ErrSessionNotFound)
	_, err = store.Get(active.ID, "user-1")
	assert.NoError(t, err)
}

func TestSessionStore_RunClosesOnShutdown(t *testing.T) {
	store := NewSessionStore(time.Minute)
	store.Add(uuid.New(), "user-1", newIdleFlow())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		store.Run(ctx, time.Hour)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("store did not stop")
	}
	assert.Equal(t, 0, store.Len())
}
