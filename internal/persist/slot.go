// Package persist keeps an in-memory value mirrored in a storage slot.
//
// A Slot is hydrated once from its key when opened and written back after
// every change. Persistence is best-effort: storage and decode failures are
// logged and never returned to the caller.
package persist

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/runoshun/todo/internal/domain"
)

const logCategory = "storage"

// Slot holds a value of type T synchronized with a single storage key.
type Slot[T any] struct {
	storage domain.Storage
	logger  domain.Logger
	value   T
	key     string
	mu      sync.RWMutex
}

// Open creates a Slot for key, reading its initial value from storage.
// def is used when storage is missing or unavailable, the key is absent,
// or the stored data cannot be decoded.
func Open[T any](storage domain.Storage, key string, def T, logger domain.Logger) *Slot[T] {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	s := &Slot[T]{
		storage: storage,
		logger:  logger,
		key:     key,
	}
	s.value = s.read(def)
	return s
}

// Key returns the storage key of the slot.
func (s *Slot[T]) Key() string {
	return s.key
}

// Value returns the current value.
func (s *Slot[T]) Value() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set replaces the value and writes it back to storage.
func (s *Slot[T]) Set(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = v
	s.write(v)
}

// Update replaces the value with fn applied to the current value.
func (s *Slot[T]) Update(fn func(T) T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = fn(s.value)
	s.write(s.value)
}

func (s *Slot[T]) available() bool {
	return s.storage != nil && s.storage.Available()
}

func (s *Slot[T]) read(def T) T {
	if !s.available() {
		return def
	}

	raw, ok, err := s.storage.Read(s.key)
	if err != nil {
		s.logger.Error(logCategory, fmt.Sprintf("read key %q: %v", s.key, err))
		return def
	}
	if !ok || raw == "" {
		return def
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		s.logger.Error(logCategory, fmt.Sprintf("decode key %q: %v", s.key, err))
		return def
	}
	s.logger.Debug(logCategory, fmt.Sprintf("loaded key %q", s.key))
	return v
}

// write must be called with mu held.
func (s *Slot[T]) write(v T) {
	if !s.available() {
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Error(logCategory, fmt.Sprintf("encode key %q: %v", s.key, err))
		return
	}
	if err := s.storage.Write(s.key, string(data)); err != nil {
		s.logger.Error(logCategory, fmt.Sprintf("write key %q: %v", s.key, err))
		return
	}
	s.logger.Debug(logCategory, fmt.Sprintf("stored key %q (%d bytes)", s.key, len(data)))
}
