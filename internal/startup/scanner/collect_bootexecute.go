package scanner

import (
	"context"
	"strings"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/platform"
)

const sessionManagerKeyPath = `SYSTEM\CurrentControlSet\Control\Session Manager`

// collectBootExecute reads the BootExecute REG_MULTI_SZ list, skipping the
// stock "autocheck autochk *" entry that every Windows install ships with.
func collectBootExecute(ctx context.Context, opts models.StartupInventoryOptions, apt *platform.ShortcutApartment) ([]models.StartupItem, error) {
	entries, ok, err := platform.ReadMultiStringValue(platform.RootLocalMachine, platform.ViewNative, sessionManagerKeyPath, "BootExecute")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var items []models.StartupItem
	for i, raw := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(raw)), "autocheck autochk") {
			continue
		}
		if raw == "" {
			continue
		}

		exe, args := platform.SplitCommand(raw)
		item := models.StartupItem{
			ID:             models.BootExecuteID(i),
			Name:           raw,
			SourceTag:      "BootExecute",
			SourceKind:     models.SourceBootExecute,
			ExecutablePath: exe,
			Arguments:      args,
			RawCommand:     raw,
			EntryLocation:  `HKLM\` + sessionManagerKeyPath,
			UserContext:    models.UserContextMachine,
			IsEnabled:      true,
		}
		meta := resolveExecutableMeta(exe)
		item.FileSizeBytes, item.LastModified, item.Publisher, item.Signature = meta.sizeBytes, meta.lastModified, meta.publisher, meta.signature
		item.Impact = classifyImpact(models.SourceBootExecute, true, false, meta.sizeBytes, meta.sizeKnown)

		items = append(items, item)
	}

	return items, nil
}
