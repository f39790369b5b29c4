package control

import (
	"context"
	"fmt"
	"time"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/platform"
)

const (
	packagedTaskStateDisabled = uint32(1)
	packagedTaskStateDefault  = uint32(2)
)

// packagedTaskEnabledStates are the State values that count as "enabled" for
// a packaged app's startup task: 2 (enabled), 4 and 5 (enabled by policy/user
// in the two Windows-version-specific encodings this engine has observed).
var packagedTaskEnabledStates = map[uint32]bool{2: true, 4: true, 5: true}

// packagedTaskMutator implements the Packaged Task reversible protocol:
// disable captures the current State DWORD and writes 1; enable restores
// the captured value, defaulting to 2 if there was none.
type packagedTaskMutator struct{}

func (packagedTaskMutator) Disable(ctx context.Context, item models.StartupItem) (models.StartupItem, *models.StartupEntryBackup, error) {
	subKey := item.EntryLocation

	stateValue, _, err := platform.ReadIntegerValue(platform.RootCurrentUser, platform.ViewNative, subKey, "State")
	if err != nil {
		return item, nil, fmt.Errorf("read packaged task State: %w", err)
	}

	backup := models.StartupEntryBackup{
		ItemID:     item.ID,
		Name:       item.Name,
		SourceKind: item.SourceKind,
		CreatedAt:  time.Now().UTC(),
		RestorePayload: models.RestorePayload{
			RegistrySubKey:    subKey,
			RegistryValueName: "State",
			RegistryValueData: fmt.Sprintf("%d", stateValue),
		},
	}

	if err := platform.SetIntegerValue(platform.RootCurrentUser, platform.ViewNative, subKey, "State", packagedTaskStateDisabled); err != nil {
		return item, nil, fmt.Errorf("disable packaged task: %w", err)
	}

	updated := item
	updated.IsEnabled = false
	return updated, &backup, nil
}

func (packagedTaskMutator) Enable(ctx context.Context, item models.StartupItem, backup *models.StartupEntryBackup) (models.StartupItem, error) {
	subKey := item.EntryLocation

	stateValue := packagedTaskStateDefault
	if backup != nil {
		var parsed uint32
		if _, err := fmt.Sscanf(backup.RestorePayload.RegistryValueData, "%d", &parsed); err == nil {
			stateValue = parsed
		}
	}

	if err := platform.SetIntegerValue(platform.RootCurrentUser, platform.ViewNative, subKey, "State", stateValue); err != nil {
		return item, fmt.Errorf("restore packaged task State: %w", err)
	}

	updated := item
	updated.IsEnabled = packagedTaskEnabledStates[stateValue]
	return updated, nil
}
