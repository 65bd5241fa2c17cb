package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/runoshun/todo/internal/domain"
)

// MigrateStoreInput contains parameters for MigrateStore.
type MigrateStoreInput struct {
	// Force overwrites a destination that already holds a different list.
	Force bool
}

// MigrateStoreOutput contains migration results.
type MigrateStoreOutput struct {
	Total   int  // Tasks in the source list
	Skipped bool // Destination already held the identical list
}

// MigrateStore copies the current task list into another storage backend.
type MigrateStore struct {
	source domain.TaskList
	dest   domain.Storage
	logger domain.Logger
	key    string
}

// NewMigrateStore creates a new MigrateStore use case.
func NewMigrateStore(source domain.TaskList, dest domain.Storage, key string, logger domain.Logger) *MigrateStore {
	return &MigrateStore{source: source, dest: dest, key: key, logger: orNop(logger)}
}

// Execute writes the source list to the destination slot.
// An identical destination is skipped; a different one fails unless Force is set.
// Unlike the synchronizer, write failures are returned to the caller.
func (uc *MigrateStore) Execute(_ context.Context, in MigrateStoreInput) (*MigrateStoreOutput, error) {
	if uc.dest == nil || !uc.dest.Available() {
		return nil, domain.ErrStorageUnavailable
	}

	tasks := uc.source.Value()
	if tasks == nil {
		tasks = []domain.Task{}
	}
	out := &MigrateStoreOutput{Total: len(tasks)}

	raw, ok, err := uc.dest.Read(uc.key)
	if err != nil {
		return nil, fmt.Errorf("read destination: %w", err)
	}
	if ok && raw != "" {
		var existing []domain.Task
		decodeErr := json.Unmarshal([]byte(raw), &existing)
		if decodeErr == nil && slices.Equal(existing, tasks) {
			out.Skipped = true
			return out, nil
		}
		if !in.Force {
			return nil, fmt.Errorf("%w: key %q", domain.ErrMigrationConflict, uc.key)
		}
	}

	data, err := json.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("encode tasks: %w", err)
	}
	if err := uc.dest.Write(uc.key, string(data)); err != nil {
		return nil, fmt.Errorf("write destination: %w", err)
	}

	uc.logger.Info("storage", fmt.Sprintf("migrated %d tasks to key %q", len(tasks), uc.key))
	return out, nil
}
