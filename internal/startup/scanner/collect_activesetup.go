package scanner

import (
	"context"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/platform"
)

const activeSetupKeyPath = `Software\Microsoft\Active Setup\Installed Components`

// collectActiveSetup enumerates Active Setup component stubs, skipping any
// whose IsInstalled is explicitly 0 (staged but not yet run for this user).
func collectActiveSetup(ctx context.Context, opts models.StartupInventoryOptions, apt *platform.ShortcutApartment) ([]models.StartupItem, error) {
	clsids, err := platform.ListSubKeyNames(platform.RootLocalMachine, platform.ViewNative, activeSetupKeyPath)
	if err != nil {
		return nil, err
	}

	var items []models.StartupItem
	for _, clsid := range clsids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		subKey := activeSetupKeyPath + `\` + clsid

		isInstalled, ok, err := platform.ReadIntegerValue(platform.RootLocalMachine, platform.ViewNative, subKey, "IsInstalled")
		if err != nil {
			continue
		}
		if ok && isInstalled == 0 {
			continue
		}

		values, err := platform.ReadStringValues(platform.RootLocalMachine, platform.ViewNative, subKey)
		if err != nil {
			continue
		}
		raw := values["StubPath"]
		if raw == "" {
			continue
		}
		name := values["(Default)"]
		if name == "" {
			name = clsid
		}

		exe, args := platform.SplitCommand(raw)
		item := models.StartupItem{
			ID:             models.ActiveSetupID(clsid),
			Name:           name,
			SourceTag:      "Active Setup",
			SourceKind:     models.SourceActiveSetup,
			ExecutablePath: exe,
			Arguments:      args,
			RawCommand:     raw,
			EntryLocation:  `HKLM\` + subKey,
			UserContext:    models.UserContextMachine,
			IsEnabled:      true,
		}
		meta := resolveExecutableMeta(exe)
		item.FileSizeBytes, item.LastModified, item.Publisher, item.Signature = meta.sizeBytes, meta.lastModified, meta.publisher, meta.signature
		item.Impact = classifyImpact(models.SourceActiveSetup, true, false, meta.sizeBytes, meta.sizeKnown)

		items = append(items, item)
	}

	return items, nil
}
