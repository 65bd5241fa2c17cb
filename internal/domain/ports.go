package domain

// Storage is a durable key-value store holding string values.
// A nil Storage, or one whose Available reports false, means no storage
// medium is present; callers fall back to in-memory state.
type Storage interface {
	// Available reports whether the store can be used at all.
	Available() bool

	// Read returns the value at key. ok is false if the key is absent.
	Read(key string) (value string, ok bool, err error)

	// Write stores value at key, replacing any previous value.
	Write(key, value string) error
}

// TaskList is the in-memory task list shared by the UI and the use cases.
// Set replaces the whole list; implementations may persist it.
type TaskList interface {
	// Value returns the current list.
	Value() []Task

	// Set replaces the list.
	Set(tasks []Task)
}

// Logger is the diagnostic channel.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards all messages.
type NopLogger struct{}

// Debug does nothing.
func (NopLogger) Debug(_, _ string) {}

// Info does nothing.
func (NopLogger) Info(_, _ string) {}

// Warn does nothing.
func (NopLogger) Warn(_, _ string) {}

// Error does nothing.
func (NopLogger) Error(_, _ string) {}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (local + global).
	Load() (*Config, error)
}
