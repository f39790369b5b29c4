package scanner

import (
	"context"
	"fmt"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/platform"
)

const explorerRunKeyPath = `Software\Microsoft\Windows\CurrentVersion\Policies\Explorer\Run`

// collectExplorerRun reads the policy-scoped Explorer Run list under both
// hives. Unlike the Run-family collector, this location has no
// StartupApproved companion at all: presence in the key is the only enable
// signal.
func collectExplorerRun(ctx context.Context, opts models.StartupInventoryOptions, apt *platform.ShortcutApartment) ([]models.StartupItem, error) {
	roots := []struct {
		tag         string
		root        platform.RegistryRoot
		userContext models.UserContext
	}{
		{"HKCU", platform.RootCurrentUser, models.UserContextCurrentUser},
		{"HKLM", platform.RootLocalMachine, models.UserContextMachine},
	}

	var items []models.StartupItem
	for _, r := range roots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		values, err := platform.ReadStringValues(r.root, platform.ViewNative, explorerRunKeyPath)
		if err != nil {
			return nil, fmt.Errorf("%s\\%s: %w", r.tag, explorerRunKeyPath, err)
		}

		for name, raw := range values {
			exe, args := platform.SplitCommand(raw)
			item := models.StartupItem{
				ID:             models.ExplorerRunID(r.tag + ":" + name),
				Name:           name,
				SourceTag:      r.tag + " Policies Explorer Run",
				SourceKind:     models.SourceExplorerRun,
				ExecutablePath: exe,
				Arguments:      args,
				RawCommand:     raw,
				EntryLocation:  r.tag + `\` + explorerRunKeyPath,
				UserContext:    r.userContext,
				IsEnabled:      true,
			}
			meta := resolveExecutableMeta(exe)
			item.FileSizeBytes, item.LastModified, item.Publisher, item.Signature = meta.sizeBytes, meta.lastModified, meta.publisher, meta.signature
			item.Impact = classifyImpact(models.SourceExplorerRun, r.userContext == models.UserContextMachine, false, meta.sizeBytes, meta.sizeKnown)

			items = append(items, item)
		}
	}

	return items, nil
}
