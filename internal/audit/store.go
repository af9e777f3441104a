package audit

import (
	"context"
	"sync"
)

// Store persists trail events and serves the recent-activity view.
type Store interface {
	Append(ctx context.Context, event Event) error
	// Recent returns up to limit events, newest first.
	Recent(ctx context.Context, limit int) ([]Event, error)
}

// MemoryStore keeps the most recent events in a bounded in-process buffer.
// The trail is operational visibility, not compliance storage, so losing
// old entries on restart is acceptable.
type MemoryStore struct {
	mu     sync.RWMutex
	events []Event
	cap    int
}

// NewMemoryStore creates a store retaining at most capacity events.
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = 500
	}
	return &MemoryStore{cap: capacity}
}

func (s *MemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if len(s.events) > s.cap {
		s.events = s.events[len(s.events)-s.cap:]
	}
	return nil
}

func (s *MemoryStore) Recent(_ context.Context, limit int) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 || limit > len(s.events) {
		limit = len(s.events)
	}
	out := make([]Event, 0, limit)
	for i := len(s.events) - 1; i >= len(s.events)-limit; i-- {
		out = append(out, s.events[i])
	}
	return out, nil
}
