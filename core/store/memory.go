package store

import (
	"context"
	"sync"
)

// MemoryStore keeps submissions in memory. Used by tests and the debug
// seeder; contents are lost on shutdown.
type MemoryStore struct {
	mu   sync.Mutex
	subs []Submission
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// LoadAll returns a copy of the collection in insertion order.
func (s *MemoryStore) LoadAll(ctx context.Context) ([]Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Submission, len(s.subs))
	copy(out, s.subs)
	return out, nil
}

// AppendOne adds a submission to the end of the collection.
func (s *MemoryStore) AppendOne(ctx context.Context, sub Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subs = append(s.subs, sub)
	return nil
}
