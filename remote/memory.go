package remote

import (
	"context"
	"slices"
	"sync"
	"time"
)

// Memory is an in-memory Store, used by tests.
type Memory struct {
	mu      sync.RWMutex
	states  map[string][]byte
	updated map[string]time.Time
}

func NewMemory() *Memory {
	return &Memory{
		states:  make(map[string][]byte),
		updated: make(map[string]time.Time),
	}
}

func (m *Memory) Fetch(ctx context.Context, userID string) ([]byte, time.Time, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	state, ok := m.states[userID]
	if !ok {
		return nil, time.Time{}, false, nil
	}
	return slices.Clone(state), m.updated[userID], true, nil
}

func (m *Memory) Upsert(ctx context.Context, userID string, state []byte, updatedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[userID] = slices.Clone(state)
	m.updated[userID] = updatedAt
	return nil
}

var _ Store = (*Memory)(nil)
