package audit

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/delivery-marketplace/internal/logging"
	"github.com/BruksfildServices01/delivery-marketplace/internal/models"
)

type memStore struct {
	mu   sync.Mutex
	rows []models.AuditLog
	err  error
	gate chan struct{}
}

func (s *memStore) CreateAuditLog(_ context.Context, row *models.AuditLog) error {
	if s.gate != nil {
		<-s.gate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.rows = append(s.rows, *row)
	return nil
}

func (s *memStore) snapshot() []models.AuditLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.AuditLog(nil), s.rows...)
}

func uintPtr(v uint) *uint { return &v }

func TestDispatcher_PersistsEvents(t *testing.T) {
	store := &memStore{}
	d := NewDispatcher(New(store), logging.Nop())

	d.Dispatch(Event{
		ActorID:  uintPtr(1),
		Action:   ActionDeliveryBoyApproved,
		Entity:   "delivery_boy",
		EntityID: uintPtr(7),
		Metadata: map[string]string{"status": "approved"},
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))

	rows := store.snapshot()
	require.Len(t, rows, 1)
	assert.Equal(t, ActionDeliveryBoyApproved, rows[0].Action)
	assert.Equal(t, uint(7), *rows[0].EntityID)
	assert.JSONEq(t, `{"status":"approved"}`, rows[0].Metadata)
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	store := &memStore{gate: make(chan struct{})}
	var logs bytes.Buffer
	d := NewDispatcher(New(store), logging.NewJSON(&logs, "info"))

	// One event is held by the worker, the rest fill the queue.
	for i := 0; i < queueSize+20; i++ {
		d.Dispatch(Event{Action: ActionUserBlocked})
	}

	close(store.gate)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))

	n := len(store.snapshot())
	assert.LessOrEqual(t, n, queueSize+1)
	assert.Greater(t, n, 0)
	assert.Contains(t, logs.String(), "dropping event")
	assert.Contains(t, logs.String(), `"component":"audit"`)
}

func TestDispatcher_StoreErrorDoesNotStopWorker(t *testing.T) {
	store := &memStore{err: errors.New("db down")}
	d := NewDispatcher(New(store), logging.Nop())

	d.Dispatch(Event{Action: ActionUserBlocked})
	d.Dispatch(Event{Action: ActionUserUnblocked})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))
	assert.Empty(t, store.snapshot())
}

func TestDispatcher_DispatchAfterCloseIsIgnored(t *testing.T) {
	d := NewDispatcher(New(&memStore{}), logging.Nop())
	require.NoError(t, d.Close(context.Background()))
	require.NoError(t, d.Close(context.Background()))

	assert.NotPanics(t, func() { d.Dispatch(Event{Action: ActionUserBlocked}) })
}
