package control

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/platform"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/startup/catalog"
)

const startupApprovedBase = `Software\Microsoft\Windows\CurrentVersion\Explorer\StartupApproved`

// runKeyMutator implements the RunKey/RunOnce reversible protocol: disable
// either flips the StartupApproved companion byte (when one applies) or
// deletes the value outright, capturing whichever data the live state held
// so Enable can recreate it. backups is consulted as the middle tier of the
// restore fallback chain when the item's own backup record is gone.
type runKeyMutator struct {
	backups *catalog.BackupCatalog
}

func (runKeyMutator) Disable(ctx context.Context, item models.StartupItem) (models.StartupItem, *models.StartupEntryBackup, error) {
	root, subKey, ok := parseRegistryLocation(item.EntryLocation)
	if !ok {
		return item, nil, fmt.Errorf("%s: malformed entry location %q", item.ID, item.EntryLocation)
	}

	backup := models.StartupEntryBackup{
		ItemID:     item.ID,
		Name:       item.Name,
		SourceKind: item.SourceKind,
		CreatedAt:  time.Now().UTC(),
		RestorePayload: models.RestorePayload{
			RegistryRoot:      string(root),
			RegistrySubKey:    subKey,
			RegistryValueName: item.Name,
			RegistryValueData: item.RawCommand,
		},
	}

	if item.UsesStartupApprovedCompanion() {
		approvedKeyPath := approvedCategoryPath(subKey)
		base, _, err := platform.ReadApprovedBlob(root, platform.ViewNative, approvedKeyPath, item.Name)
		if err != nil {
			return item, nil, fmt.Errorf("read StartupApproved blob: %w", err)
		}
		backup.RestorePayload.ApprovedKeyPath = approvedKeyPath
		backup.RestorePayload.ApprovedValue = item.Name
		backup.RestorePayload.ApprovedOriginal = append([]byte(nil), base[:]...)

		if err := platform.WriteApprovedBlob(root, platform.ViewNative, approvedKeyPath, item.Name, false, base); err != nil {
			return item, nil, fmt.Errorf("disable via StartupApproved: %w", err)
		}
	} else {
		if err := platform.DeleteValue(root, platform.ViewNative, subKey, item.Name); err != nil {
			return item, nil, fmt.Errorf("delete run value: %w", err)
		}
	}

	updated := item
	updated.IsEnabled = false
	return updated, &backup, nil
}

func (m runKeyMutator) Enable(ctx context.Context, item models.StartupItem, backup *models.StartupEntryBackup) (models.StartupItem, error) {
	root, subKey, ok := parseRegistryLocation(item.EntryLocation)
	if !ok {
		return item, fmt.Errorf("%s: malformed entry location %q", item.ID, item.EntryLocation)
	}

	updated := item

	if item.UsesStartupApprovedCompanion() {
		approvedKeyPath := approvedCategoryPath(subKey)
		var base platform.ApprovedBlob
		if backup != nil {
			copy(base[:], backup.RestorePayload.ApprovedOriginal)
		}
		if err := platform.WriteApprovedBlob(root, platform.ViewNative, approvedKeyPath, item.Name, true, base); err != nil {
			return item, fmt.Errorf("enable via StartupApproved: %w", err)
		}

		// The value itself may also have been deleted independently (e.g. by
		// an uninstaller); recreate it from backup data when it's missing.
		if existing, _ := platform.ReadStringValues(root, platform.ViewNative, subKey); existing[item.Name] == "" {
			data := m.resolveRestoreCommand(item, backup)
			if data != "" {
				if err := platform.SetStringValue(root, platform.ViewNative, subKey, item.Name, data); err != nil {
					return item, fmt.Errorf("recreate run value: %w", err)
				}
			}
		}
	} else {
		data := m.resolveRestoreCommand(item, backup)
		if data == "" {
			return item, fmt.Errorf("%s: no data available to restore run value", item.ID)
		}
		if err := platform.SetStringValue(root, platform.ViewNative, subKey, item.Name, data); err != nil {
			return item, fmt.Errorf("recreate run value: %w", err)
		}
	}

	updated.IsEnabled = true
	return updated, nil
}

// resolveRestoreCommand picks the command to recreate a deleted value with,
// per the fallback chain in the enable contract: the backup's captured
// data, else the latest backup (under any id) captured for this value name,
// else the item's own last-known raw command.
func (m runKeyMutator) resolveRestoreCommand(item models.StartupItem, backup *models.StartupEntryBackup) string {
	if backup != nil && backup.RestorePayload.RegistryValueData != "" {
		return backup.RestorePayload.RegistryValueData
	}
	if m.backups != nil {
		if latest, ok := m.backups.FindLatestByValueName(item.Name); ok && latest.RestorePayload.RegistryValueData != "" {
			return latest.RestorePayload.RegistryValueData
		}
	}
	return item.RawCommand
}

// parseRegistryLocation splits an EntryLocation of the form
// `HKCU\Software\...\Run` into its root tag and subkey path.
func parseRegistryLocation(entryLocation string) (platform.RegistryRoot, string, bool) {
	parts := strings.SplitN(entryLocation, `\`, 2)
	if len(parts) != 2 {
		return "", "", false
	}
	switch strings.ToUpper(parts[0]) {
	case "HKCU":
		return platform.RootCurrentUser, parts[1], true
	case "HKLM":
		return platform.RootLocalMachine, parts[1], true
	default:
		return "", "", false
	}
}

// approvedCategoryPath maps a Run-family subkey (".../Run", ".../RunOnce")
// to its StartupApproved companion path, keyed by the category name.
func approvedCategoryPath(subKey string) string {
	category := path.Base(strings.ReplaceAll(subKey, `\`, "/"))
	return startupApprovedBase + `\` + category
}
