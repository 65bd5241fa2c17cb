// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"sync"

	"github.com/runoshun/todo/internal/domain"
)

// Ensure mocks implement their ports.
var (
	_ domain.Storage  = (*MockStorage)(nil)
	_ domain.Logger   = (*MockLogger)(nil)
	_ domain.TaskList = (*MockTaskList)(nil)
)

// MockStorage is a test double for domain.Storage.
// Fields are ordered to minimize memory padding.
type MockStorage struct {
	Values      map[string]string
	ReadErr     error
	WriteErr    error
	Writes      int
	Unavailable bool
}

// NewMockStorage creates a MockStorage with an initialized map.
func NewMockStorage() *MockStorage {
	return &MockStorage{Values: make(map[string]string)}
}

// Available reports whether the mock is usable.
func (m *MockStorage) Available() bool {
	return !m.Unavailable
}

// Read returns the stored value or the configured error.
func (m *MockStorage) Read(key string) (string, bool, error) {
	if m.ReadErr != nil {
		return "", false, m.ReadErr
	}
	v, ok := m.Values[key]
	return v, ok, nil
}

// Write stores the value unless WriteErr is set.
func (m *MockStorage) Write(key, value string) error {
	m.Writes++
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Values[key] = value
	return nil
}

// LogEntry is one message captured by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// String formats the entry like the file logger does.
func (e LogEntry) String() string {
	return fmt.Sprintf("[%s] [%s] %s", e.Level, e.Category, e.Msg)
}

// MockLogger records log messages.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

func (m *MockLogger) add(level, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Debug records a debug message.
func (m *MockLogger) Debug(category, msg string) { m.add("DEBUG", category, msg) }

// Info records an info message.
func (m *MockLogger) Info(category, msg string) { m.add("INFO", category, msg) }

// Warn records a warning.
func (m *MockLogger) Warn(category, msg string) { m.add("WARN", category, msg) }

// Error records an error.
func (m *MockLogger) Error(category, msg string) { m.add("ERROR", category, msg) }

// Count returns the number of entries at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Entries {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockTaskList is an unpersisted domain.TaskList.
type MockTaskList struct {
	Tasks []domain.Task
	Sets  int
}

// Value returns the current tasks.
func (m *MockTaskList) Value() []domain.Task {
	return m.Tasks
}

// Set replaces the tasks.
func (m *MockTaskList) Set(tasks []domain.Task) {
	m.Sets++
	m.Tasks = tasks
}
