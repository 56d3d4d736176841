package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/delivery-marketplace/internal/domain"
)

// MemTokens is an in-memory refresh token store.
type MemTokens struct {
	mu   sync.Mutex
	Live map[string]uint
}

func NewMemTokens() *MemTokens {
	return &MemTokens{Live: map[string]uint{}}
}

func (m *MemTokens) Save(_ context.Context, jti string, userID uint, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Live[jti] = userID
	return nil
}

func (m *MemTokens) Consume(_ context.Context, jti string) (uint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.Live[jti]
	if !ok {
		return 0, domain.ErrNotFound
	}
	delete(m.Live, jti)
	return id, nil
}

func (m *MemTokens) Revoke(_ context.Context, jti string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Live, jti)
	return nil
}

func (m *MemTokens) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Live)
}
