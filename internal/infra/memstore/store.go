// Package memstore provides an in-process implementation of domain.Storage.
package memstore

import (
	"sync"

	"github.com/runoshun/todo/internal/domain"
)

// Ensure Store implements domain.Storage.
var _ domain.Storage = (*Store)(nil)

// Store keeps values in a map. Contents are lost when the process exits.
type Store struct {
	values map[string]string
	mu     sync.RWMutex
}

// New creates an empty Store.
func New() *Store {
	return &Store{values: make(map[string]string)}
}

// Available always reports true.
func (s *Store) Available() bool {
	return true
}

// Read returns the value at key.
func (s *Store) Read(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Write stores value at key.
func (s *Store) Write(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
