package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps the document in process memory. SaveErr, when set, is
// returned by every Save and leaves the stored document untouched.
type MemoryStore struct {
	mu      sync.Mutex
	doc     Document
	saves   int
	SaveErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(ctx context.Context) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone(), nil
}

func (s *MemoryStore) Save(ctx context.Context, doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.doc = doc.Clone()
	s.saves++
	return nil
}

// Saves returns the number of successful writes.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

func (s *MemoryStore) Close() error { return nil }
