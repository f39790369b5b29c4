package control

import (
	"context"
	"fmt"
	"time"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/platform"
)

// scheduledTaskMutator implements the Scheduled Task reversible protocol:
// disable sets the task's Enabled flag false, capturing the prior value so
// enable can restore exactly what was there before (most tasks are already
// enabled, but a previously-user-disabled task must come back disabled by
// any other tool, not forced on).
type scheduledTaskMutator struct{}

func (scheduledTaskMutator) Disable(ctx context.Context, item models.StartupItem) (models.StartupItem, *models.StartupEntryBackup, error) {
	taskPath := item.EntryLocation

	backup := models.StartupEntryBackup{
		ItemID:     item.ID,
		Name:       item.Name,
		SourceKind: item.SourceKind,
		CreatedAt:  time.Now().UTC(),
		RestorePayload: models.RestorePayload{
			TaskPath:    taskPath,
			TaskEnabled: item.IsEnabled,
		},
	}

	if err := platform.SetTaskEnabled(ctx, taskPath, false); err != nil {
		return item, nil, fmt.Errorf("disable scheduled task: %w", err)
	}

	updated := item
	updated.IsEnabled = false
	return updated, &backup, nil
}

func (scheduledTaskMutator) Enable(ctx context.Context, item models.StartupItem, backup *models.StartupEntryBackup) (models.StartupItem, error) {
	taskPath := item.EntryLocation

	wantEnabled := true
	if backup != nil {
		wantEnabled = backup.RestorePayload.TaskEnabled
	}

	if err := platform.SetTaskEnabled(ctx, taskPath, wantEnabled); err != nil {
		return item, fmt.Errorf("enable scheduled task: %w", err)
	}

	updated := item
	updated.IsEnabled = wantEnabled
	return updated, nil
}
