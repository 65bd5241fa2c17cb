// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/config"
	"github.com/runoshun/todo/internal/infra/filestore"
	"github.com/runoshun/todo/internal/infra/gitstore"
	"github.com/runoshun/todo/internal/infra/logging"
	"github.com/runoshun/todo/internal/infra/memstore"
	"github.com/runoshun/todo/internal/infra/redisstore"
	"github.com/runoshun/todo/internal/persist"
	"github.com/runoshun/todo/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	WorkDir string // Directory the command was started in
	DataDir string // Path to the data directory (~/.local/share/todo)
	LogPath string // Path to todo.log
}

// newConfig creates a new Config for the working directory dir.
func newConfig(dir string) Config {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dataHome = filepath.Join(home, ".local", "share")
		}
	}
	dataDir := domain.DataDir(dataHome)
	return Config{
		WorkDir: dir,
		DataDir: dataDir,
		LogPath: domain.LogPath(dataDir),
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Storage      domain.Storage // nil when the backend is "none"
	Tasks        domain.TaskList
	ConfigLoader domain.ConfigLoader
	Diagnostics  domain.Logger

	// Pointer fields
	AppConfig *domain.Config
	Logger    *slog.Logger

	closers []io.Closer

	// Configuration
	Config Config
}

// New creates a new Container for the working directory dir.
// The task list is hydrated from the configured backend before New returns.
func New(dir string) (*Container, error) {
	cfg := newConfig(dir)

	configLoader := config.NewLoader(dir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	// Create logger
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	diag := logging.New(cfg.LogPath, logging.ParseLevel(appConfig.Log.Level))
	closers := []io.Closer{diag}

	storage, closer, err := openStorage(cfg, appConfig.Storage)
	if err != nil {
		_ = diag.Close()
		return nil, err
	}
	if closer != nil {
		closers = append(closers, closer)
	}
	if storage == nil || !storage.Available() {
		diag.Warn("storage", fmt.Sprintf("backend %q unavailable, changes will not persist", appConfig.Storage.Backend))
	}

	return &Container{
		Storage:      storage,
		Tasks:        persist.Open(storage, appConfig.Storage.Key, []domain.Task{}, diag),
		ConfigLoader: configLoader,
		Diagnostics:  diag,
		AppConfig:    appConfig,
		Logger:       logger,
		closers:      closers,
		Config:       cfg,
	}, nil
}

// openStorage builds the backend named in sc.
// The returned closer is non-nil for backends holding a connection.
func openStorage(cfg Config, sc domain.StorageConfig) (domain.Storage, io.Closer, error) {
	switch sc.Backend {
	case domain.BackendFile, "":
		path := sc.Path
		if path == "" {
			path = domain.StoreFilePath(cfg.DataDir)
		}
		return filestore.New(path, filestore.WithQuota(sc.Quota)), nil, nil
	case domain.BackendGit:
		repoPath := sc.Path
		if repoPath == "" {
			repoPath = cfg.WorkDir
		}
		store, err := gitstore.New(repoPath, sc.Namespace)
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil
	case domain.BackendRedis:
		store := redisstore.New(sc.Addr, sc.Password, sc.DB, redisstore.WithPrefix(sc.Prefix))
		return store, store, nil
	case domain.BackendMemory:
		return memstore.New(), nil, nil
	case domain.BackendNone:
		return nil, nil, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", domain.ErrUnknownBackend, sc.Backend)
	}
}

// OpenBackend opens the named backend with the loaded storage settings.
// The caller closes the returned closer when it is non-nil.
func (c *Container) OpenBackend(backend string) (domain.Storage, io.Closer, error) {
	sc := c.AppConfig.Storage
	sc.Backend = backend
	if backend != c.AppConfig.Storage.Backend {
		// Path means different things to file and git
		sc.Path = ""
	}
	return openStorage(c.Config, sc)
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, appConfig *domain.Config, storage domain.Storage, logger *slog.Logger) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Container{
		Storage:     storage,
		Tasks:       persist.Open(storage, appConfig.Storage.Key, []domain.Task{}, nil),
		Diagnostics: domain.NopLogger{},
		AppConfig:   appConfig,
		Logger:      logger,
		Config:      cfg,
	}
}

// Close releases backend connections and the log file.
func (c *Container) Close() error {
	var errs []error
	for _, cl := range c.closers {
		if err := cl.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks, c.AppConfig, c.Diagnostics)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.Diagnostics)
}

// ToggleTaskUseCase returns a new ToggleTask use case.
func (c *Container) ToggleTaskUseCase() *usecase.ToggleTask {
	return usecase.NewToggleTask(c.Tasks, c.Diagnostics)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// ExportTasksUseCase returns a new ExportTasks use case.
func (c *Container) ExportTasksUseCase() *usecase.ExportTasks {
	return usecase.NewExportTasks(c.Tasks)
}

// ListAssigneesUseCase returns a new ListAssignees use case.
func (c *Container) ListAssigneesUseCase() *usecase.ListAssignees {
	return usecase.NewListAssignees(c.AppConfig)
}

// MigrateStoreUseCase returns a new MigrateStore use case writing to dest.
func (c *Container) MigrateStoreUseCase(dest domain.Storage) *usecase.MigrateStore {
	return usecase.NewMigrateStore(c.Tasks, dest, c.AppConfig.Storage.Key, c.Diagnostics)
}
