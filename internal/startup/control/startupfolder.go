package control

import (
	"context"
	"fmt"
	"time"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/platform"
)

const startupFolderApprovedPath = startupApprovedBase + `\StartupFolder`

// startupFolderMutator implements the Startup Folder reversible protocol.
// Disabling never moves or renames the shortcut file; reversibility comes
// entirely from flipping the StartupApproved approval byte keyed by the
// file name, exactly like the Run-key protocol's companion value.
type startupFolderMutator struct{}

func (startupFolderMutator) Disable(ctx context.Context, item models.StartupItem) (models.StartupItem, *models.StartupEntryBackup, error) {
	root := rootForUserContext(item.UserContext)

	base, _, err := platform.ReadApprovedBlob(root, platform.ViewNative, startupFolderApprovedPath, item.Name)
	if err != nil {
		return item, nil, fmt.Errorf("read StartupApproved\\StartupFolder blob: %w", err)
	}

	backup := models.StartupEntryBackup{
		ItemID:     item.ID,
		Name:       item.Name,
		SourceKind: item.SourceKind,
		CreatedAt:  time.Now().UTC(),
		RestorePayload: models.RestorePayload{
			ApprovedKeyPath:  startupFolderApprovedPath,
			ApprovedValue:    item.Name,
			ApprovedOriginal: append([]byte(nil), base[:]...),
			FileOriginalPath: item.EntryLocation,
		},
	}

	if err := platform.WriteApprovedBlob(root, platform.ViewNative, startupFolderApprovedPath, item.Name, false, base); err != nil {
		return item, nil, fmt.Errorf("disable startup folder entry: %w", err)
	}

	updated := item
	updated.IsEnabled = false
	return updated, &backup, nil
}

func (startupFolderMutator) Enable(ctx context.Context, item models.StartupItem, backup *models.StartupEntryBackup) (models.StartupItem, error) {
	root := rootForUserContext(item.UserContext)

	var base platform.ApprovedBlob
	if backup != nil {
		copy(base[:], backup.RestorePayload.ApprovedOriginal)
	}

	if err := platform.WriteApprovedBlob(root, platform.ViewNative, startupFolderApprovedPath, item.Name, true, base); err != nil {
		return item, fmt.Errorf("enable startup folder entry: %w", err)
	}

	updated := item
	updated.IsEnabled = true
	return updated, nil
}

func rootForUserContext(ctx models.UserContext) platform.RegistryRoot {
	if ctx == models.UserContextMachine {
		return platform.RootLocalMachine
	}
	return platform.RootCurrentUser
}
