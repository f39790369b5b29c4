// Package control implements the Control Service: asynchronous enable/disable
// of a single startup item, dispatched by source kind to the reversible
// protocol in §4.3. Disable and Enable assert administrator rights up front,
// and Disable only persists a backup after the live mutation has succeeded, so
// a failed mutation never leaves the catalog and the live registry/task/
// service state out of sync.
package control

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/platform"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/startup/catalog"
)

// Mutator is the reversible disable/enable protocol for one source kind.
type Mutator interface {
	Disable(ctx context.Context, item models.StartupItem) (models.StartupItem, *models.StartupEntryBackup, error)
	Enable(ctx context.Context, item models.StartupItem, backup *models.StartupEntryBackup) (models.StartupItem, error)
}

// Service dispatches enable/disable calls to the mutator registered for an
// item's SourceKind and persists the resulting backup.
type Service struct {
	backups  *catalog.BackupCatalog
	mutators map[models.SourceKind]Mutator
}

// NewService builds a Control Service backed by backups. Elevation is
// checked with platform.IsElevated on every Disable/Enable call.
func NewService(backups *catalog.BackupCatalog) *Service {
	return &Service{
		backups: backups,
		mutators: map[models.SourceKind]Mutator{
			models.SourceRunKey:        runKeyMutator{backups: backups},
			models.SourceRunOnce:       runKeyMutator{backups: backups},
			models.SourceStartupFolder: startupFolderMutator{},
			models.SourceScheduledTask: scheduledTaskMutator{},
			models.SourceService:       serviceMutator{},
			models.SourcePackagedTask:  packagedTaskMutator{},
		},
	}
}

// Disable turns item off via its kind's reversible protocol, asserting
// administrator rights first. On success, the backup is saved to the
// catalog before the (possibly updated) item is returned.
func (s *Service) Disable(ctx context.Context, item models.StartupItem) (models.StartupItem, error) {
	if !platform.IsElevated() {
		return item, models.ErrNotElevated
	}

	mutator, ok := s.mutators[item.SourceKind]
	if !ok {
		return item, fmt.Errorf("%s: %w", item.SourceKind, models.ErrUnsupportedSource)
	}

	updated, backup, err := mutator.Disable(ctx, item)
	if err != nil {
		return item, err
	}

	if backup != nil {
		if backup.BackupID == "" {
			backup.BackupID = uuid.NewString()
		}
		if err := s.backups.Save(*backup); err != nil {
			return item, fmt.Errorf("save backup: %w", err)
		}
	}

	return updated, nil
}

// Enable turns item on via its kind's reversible protocol, consulting the
// backup catalog for the data the disable step captured. On success, the
// backup is removed only after the live restore has actually succeeded.
func (s *Service) Enable(ctx context.Context, item models.StartupItem) (models.StartupItem, error) {
	if !platform.IsElevated() {
		return item, models.ErrNotElevated
	}

	mutator, ok := s.mutators[item.SourceKind]
	if !ok {
		return item, fmt.Errorf("%s: %w", item.SourceKind, models.ErrUnsupportedSource)
	}

	var backupPtr *models.StartupEntryBackup
	if b, ok := s.backups.Get(item.ID); ok {
		backupPtr = &b
	}

	updated, err := mutator.Enable(ctx, item, backupPtr)
	if err != nil {
		return item, err
	}

	if backupPtr != nil {
		if err := s.backups.Remove(item.ID); err != nil {
			return item, fmt.Errorf("remove backup: %w", err)
		}
	}

	return updated, nil
}
