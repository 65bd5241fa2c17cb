package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Storage backend names.
const (
	BackendFile   = "file"
	BackendGit    = "git"
	BackendRedis  = "redis"
	BackendMemory = "memory"
	BackendNone   = "none"
)

// DefaultStorageKey is the slot holding the serialized task list.
const DefaultStorageKey = "todo-tasks"

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings  []string        `toml:"-"`
	Assignees AssigneesConfig `toml:"assignees"`
	Storage   StorageConfig   `toml:"storage"`
	Log       LogConfig       `toml:"log"`
}

// StorageConfig holds settings from the [storage] section.
// Fields are ordered to minimize memory padding.
type StorageConfig struct {
	Backend   string `toml:"backend"`             // file (default), git, redis, memory, none
	Key       string `toml:"key"`                 // Storage slot name
	Path      string `toml:"path,omitempty"`      // file: store file path; git: repository path
	Namespace string `toml:"namespace,omitempty"` // git: ref namespace
	Addr      string `toml:"addr,omitempty"`      // redis: host:port
	Password  string `toml:"password,omitempty"`  // redis: password
	Prefix    string `toml:"prefix,omitempty"`    // redis: key prefix
	DB        int    `toml:"db,omitempty"`        // redis: database index
	Quota     int64  `toml:"quota,omitempty"`     // file: maximum store size in bytes (0 = unlimited)
}

// AssigneesConfig holds settings from the [assignees] section.
type AssigneesConfig struct {
	People []string `toml:"people"` // Roster offered by the assignee selector
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// NewDefaultConfig returns the configuration used when no file exists.
func NewDefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:   BackendFile,
			Key:       DefaultStorageKey,
			Namespace: "todo",
			Addr:      "localhost:6379",
			Prefix:    "todo:",
		},
		Log: LogConfig{Level: "info"},
	}
}

// Roster returns the assignee choices with Unassigned first and
// duplicates removed.
func (c *Config) Roster() []string {
	roster := []string{Unassigned}
	for _, p := range c.Assignees.People {
		p = strings.TrimSpace(p)
		if p == "" || slices.Contains(roster, p) {
			continue
		}
		roster = append(roster, p)
	}
	return roster
}

// ResolveAssignee normalizes name and checks it against the roster.
func (c *Config) ResolveAssignee(name string) (string, error) {
	name = NormalizeAssignee(name)
	if !slices.Contains(c.Roster(), name) {
		return "", fmt.Errorf("%w: %q", ErrUnknownAssignee, name)
	}
	return name, nil
}

// ValidBackend reports whether name is a known storage backend.
func ValidBackend(name string) bool {
	switch name {
	case BackendFile, BackendGit, BackendRedis, BackendMemory, BackendNone:
		return true
	}
	return false
}
