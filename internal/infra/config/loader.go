// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/todo/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// EnvStore overrides [storage] backend when set.
const EnvStore = "TODO_STORE"

// Loader loads configuration from TOML files.
type Loader struct {
	localDir      string // Path to ./.todo directory
	globalConfDir string // Path to global config directory (e.g., ~/.config/todo)
	getenv        func(string) string
}

// NewLoader creates a new Loader for the working directory dir.
func NewLoader(dir string) *Loader {
	return &Loader{
		localDir:      filepath.Join(dir, domain.LocalDirName),
		globalConfDir: defaultGlobalConfigDir(),
		getenv:        os.Getenv,
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(dir, globalConfDir string) *Loader {
	return &Loader{
		localDir:      filepath.Join(dir, domain.LocalDirName),
		globalConfDir: globalConfDir,
		getenv:        func(string) string { return "" },
	}
}

// WithEnv replaces the environment lookup.
func (l *Loader) WithEnv(getenv func(string) string) *Loader {
	l.getenv = getenv
	return l
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration (local + global).
// Local config takes precedence over global config, and TODO_STORE
// takes precedence over both.
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	local, err := l.loadFile(filepath.Join(l.localDir, domain.ConfigFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	// Merge: default <- global <- local (later takes precedence)
	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if local != nil {
		base = mergeConfigs(base, local)
	}

	if store := l.getenv(EnvStore); store != "" {
		base.Storage.Backend = store
	}
	if !domain.ValidBackend(base.Storage.Backend) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownBackend, base.Storage.Backend)
	}

	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "storage":
			warnings = append(warnings, parseStorageSection(m, &res.Storage)...)
		case "assignees":
			for k, v := range m {
				switch k {
				case "people":
					res.Assignees.People = toStrings(v)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [assignees]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

func parseStorageSection(m map[string]any, sc *domain.StorageConfig) []string {
	var warnings []string
	for k, v := range m {
		switch k {
		case "backend":
			if s, ok := v.(string); ok {
				sc.Backend = s
			}
		case "key":
			if s, ok := v.(string); ok {
				sc.Key = s
			}
		case "path":
			if s, ok := v.(string); ok {
				sc.Path = s
			}
		case "namespace":
			if s, ok := v.(string); ok {
				sc.Namespace = s
			}
		case "addr":
			if s, ok := v.(string); ok {
				sc.Addr = s
			}
		case "password":
			if s, ok := v.(string); ok {
				sc.Password = s
			}
		case "prefix":
			if s, ok := v.(string); ok {
				sc.Prefix = s
			}
		case "db":
			if n, ok := v.(int64); ok {
				sc.DB = int(n)
			}
		case "quota":
			if n, ok := v.(int64); ok {
				sc.Quota = n
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown key in [storage]: %s", k))
		}
	}
	return warnings
}

func toStrings(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// mergeConfigs returns base with every non-zero field of override applied.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Storage:   base.Storage,
		Assignees: base.Assignees,
		Log:       base.Log,
		Warnings:  append([]string{}, base.Warnings...),
	}
	result.Warnings = append(result.Warnings, override.Warnings...)

	o := override.Storage
	if o.Backend != "" {
		result.Storage.Backend = o.Backend
	}
	if o.Key != "" {
		result.Storage.Key = o.Key
	}
	if o.Path != "" {
		result.Storage.Path = o.Path
	}
	if o.Namespace != "" {
		result.Storage.Namespace = o.Namespace
	}
	if o.Addr != "" {
		result.Storage.Addr = o.Addr
	}
	if o.Password != "" {
		result.Storage.Password = o.Password
	}
	if o.Prefix != "" {
		result.Storage.Prefix = o.Prefix
	}
	if o.DB != 0 {
		result.Storage.DB = o.DB
	}
	if o.Quota != 0 {
		result.Storage.Quota = o.Quota
	}
	if len(override.Assignees.People) > 0 {
		result.Assignees.People = append([]string{}, override.Assignees.People...)
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	return result
}

// Render returns cfg encoded as TOML.
func Render(cfg *domain.Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return string(data), nil
}
