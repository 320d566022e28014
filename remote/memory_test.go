package remote

import (
	"context"
	"testing"
	"time"
)

func TestMemory(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if _, _, ok, err := m.Fetch(ctx, "ada"); ok || err != nil {
		t.Errorf("Fetch() on empty store = ok %v, err %v, want absent", ok, err)
	}

	stamp := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	if err := m.Upsert(ctx, "ada", []byte(`{"version":2}`), stamp); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	state, updatedAt, ok, err := m.Fetch(ctx, "ada")
	if err != nil || !ok {
		t.Fatalf("Fetch() = ok %v, err %v, want the stored document", ok, err)
	}
	if string(state) != `{"version":2}` {
		t.Errorf("Fetch() state = %s, want the stored bytes", state)
	}
	if !updatedAt.Equal(stamp) {
		t.Errorf("Fetch() updatedAt = %v, want %v", updatedAt, stamp)
	}

	// The returned slice is a copy.
	state[0] = 'X'
	again, _, _, _ := m.Fetch(ctx, "ada")
	if string(again) != `{"version":2}` {
		t.Error("mutating a fetched state leaked into the store")
	}
}
