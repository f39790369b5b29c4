package scanner

import (
	"context"
	"strings"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/platform"
)

const windowsNTKeyPath = `Software\Microsoft\Windows NT\CurrentVersion\Windows`

// collectAppInitDLLs surfaces AppInit_DLLs entries, but only when
// LoadAppInit_DLLs is set; Windows ignores the DLL list entirely otherwise,
// so an unused list isn't worth surfacing as a live entry.
func collectAppInitDLLs(ctx context.Context, opts models.StartupInventoryOptions, apt *platform.ShortcutApartment) ([]models.StartupItem, error) {
	loadFlag, ok, err := platform.ReadIntegerValue(platform.RootLocalMachine, platform.ViewNative, windowsNTKeyPath, "LoadAppInit_DLLs")
	if err != nil {
		return nil, err
	}
	if !ok || loadFlag == 0 {
		return nil, nil
	}

	values, err := platform.ReadStringValues(platform.RootLocalMachine, platform.ViewNative, windowsNTKeyPath)
	if err != nil {
		return nil, err
	}
	raw := values["AppInit_DLLs"]
	if raw == "" {
		return nil, nil
	}

	var items []models.StartupItem
	for i, path := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ' ' }) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}

		item := models.StartupItem{
			ID:             models.AppInitID(windowsNTKeyPath, i),
			Name:           path,
			SourceTag:      "AppInit DLL",
			SourceKind:     models.SourceAppInitDLL,
			ExecutablePath: path,
			RawCommand:     raw,
			EntryLocation:  `HKLM\` + windowsNTKeyPath,
			UserContext:    models.UserContextMachine,
			IsEnabled:      true,
		}
		meta := resolveExecutableMeta(path)
		item.FileSizeBytes, item.LastModified, item.Publisher, item.Signature = meta.sizeBytes, meta.lastModified, meta.publisher, meta.signature
		item.Impact = classifyImpact(models.SourceAppInitDLL, true, false, meta.sizeBytes, meta.sizeKnown)

		items = append(items, item)
	}

	return items, nil
}
