package memory

import (
	"context"
	"sync"
)

// StateStore is an in-memory implementation of port.StateStore. It backs
// tests and stateless local runs where no database is configured.
type StateStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewStateStore returns an empty in-memory store.
func NewStateStore() *StateStore {
	return &StateStore{entries: make(map[string]string)}
}

func (s *StateStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return v, ok, nil
}

func (s *StateStore) Put(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return nil
}

func (s *StateStore) PutAll(_ context.Context, entries map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range entries {
		s.entries[k] = v
	}
	return nil
}

func (s *StateStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}
