package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore implements Store using an in-memory map.
// Useful for tests and single-node deployments without Redis.
type MemoryStore struct {
	curves map[string]TurbineCurve
	mu     sync.RWMutex
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		curves: make(map[string]TurbineCurve),
	}
}

// Save stores or replaces a turbine curve
func (s *MemoryStore) Save(ctx context.Context, tc TurbineCurve) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tc.Curve = tc.Curve.Clone()
	s.curves[tc.Name] = tc
	return nil
}

// Get returns a turbine curve by name
func (s *MemoryStore) Get(ctx context.Context, name string) (TurbineCurve, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tc, exists := s.curves[name]
	if !exists {
		return TurbineCurve{}, ErrNotFound
	}

	tc.Curve = tc.Curve.Clone()
	return tc, nil
}

// List returns the names of all stored turbine curves, sorted
func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.curves))
	for name := range s.curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes a turbine curve by name
func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.curves[name]; !exists {
		return ErrNotFound
	}
	delete(s.curves, name)
	return nil
}

// Close is a no-op for the memory store
func (s *MemoryStore) Close() error {
	return nil
}
