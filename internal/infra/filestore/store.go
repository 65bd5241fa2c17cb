// Package filestore provides a JSON file-based implementation of domain.Storage.
//
// The file holds a single JSON object mapping keys to string values, the
// same shape a browser's local storage exposes. Each operation takes an
// flock on a sibling .lock file, so separate processes never observe a
// partially written store.
package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/runoshun/todo/internal/domain"
)

// Ensure Store implements domain.Storage.
var _ domain.Storage = (*Store)(nil)

// Store implements domain.Storage using a JSON file.
type Store struct {
	path     string
	lockPath string
	quota    int64
}

// Option configures a Store.
type Option func(*Store)

// WithQuota limits the encoded size of the whole store in bytes.
// Writes that would exceed it fail with domain.ErrQuotaExceeded.
func WithQuota(bytes int64) Option {
	return func(s *Store) {
		s.quota = bytes
	}
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:     path,
		lockPath: path + ".lock",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

// Available reports whether the store directory exists or can be created.
func (s *Store) Available() bool {
	return os.MkdirAll(filepath.Dir(s.path), 0o750) == nil
}

// Read returns the value at key.
func (s *Store) Read(key string) (string, bool, error) {
	var (
		value string
		ok    bool
	)
	err := s.withLock(syscall.LOCK_SH, func(data map[string]string) (bool, error) {
		value, ok = data[key]
		return false, nil
	})
	return value, ok, err
}

// Write stores value at key.
func (s *Store) Write(key, value string) error {
	return s.withLock(syscall.LOCK_EX, func(data map[string]string) (bool, error) {
		data[key] = value
		return true, nil
	})
}

// withLock reads the store under a lock of lockType and calls fn.
// If fn reports a change, the store is written back before unlocking.
func (s *Store) withLock(lockType int, fn func(map[string]string) (bool, error)) error {
	lock, err := s.acquireLock(lockType)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	changed, err := fn(data)
	if err != nil || !changed {
		return err
	}
	return s.write(data)
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (s *Store) read() (map[string]string, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	data := make(map[string]string)
	if len(content) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}
	return data, nil
}

func (s *Store) write(data map[string]string) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}

	if s.quota > 0 && int64(len(content)) > s.quota {
		return fmt.Errorf("%w: %d bytes > %d", domain.ErrQuotaExceeded, len(content), s.quota)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
