package scanner

import (
	"context"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/constants"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/platform"
)

const printMonitorsKeyPath = `SYSTEM\CurrentControlSet\Control\Print\Monitors`

// collectPrintMonitors enumerates registered print monitor DLLs, skipping
// the set that ships with every Windows install.
func collectPrintMonitors(ctx context.Context, opts models.StartupInventoryOptions, apt *platform.ShortcutApartment) ([]models.StartupItem, error) {
	names, err := platform.ListSubKeyNames(platform.RootLocalMachine, platform.ViewNative, printMonitorsKeyPath)
	if err != nil {
		return nil, err
	}

	var items []models.StartupItem
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if isKnownName(name, constants.KnownWindowsPrintMonitors) {
			continue
		}

		subKey := printMonitorsKeyPath + `\` + name
		values, err := platform.ReadStringValues(platform.RootLocalMachine, platform.ViewNative, subKey)
		if err != nil {
			continue
		}
		raw := values["Driver"]
		if raw == "" {
			continue
		}

		item := models.StartupItem{
			ID:             models.PrintMonitorID(name),
			Name:           name,
			SourceTag:      "Print Monitor",
			SourceKind:     models.SourcePrintMonitor,
			ExecutablePath: raw,
			RawCommand:     raw,
			EntryLocation:  `HKLM\` + subKey,
			UserContext:    models.UserContextMachine,
			IsEnabled:      true,
		}
		meta := resolveExecutableMeta(raw)
		item.FileSizeBytes, item.LastModified, item.Publisher, item.Signature = meta.sizeBytes, meta.lastModified, meta.publisher, meta.signature
		item.Impact = classifyImpact(models.SourcePrintMonitor, true, false, meta.sizeBytes, meta.sizeKnown)

		items = append(items, item)
	}

	return items, nil
}
