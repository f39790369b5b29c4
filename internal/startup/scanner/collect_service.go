package scanner

import (
	"context"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/platform"
)

const servicesKeyPath = `SYSTEM\CurrentControlSet\Services`

// serviceAutostartClass reports whether start is one of the two Start
// values this collector treats as a startup mechanism: 2 (Automatic) or
// 4 (Disabled). Disabling a service via the Control Service's service
// mutator rewrites Start to 4 in place, so excluding Disabled here would
// make a service this engine itself disabled unfindable on every later
// scan; Boot/System (0/1) and Manual (3) services were never autostart
// candidates and stay excluded.
func serviceAutostartClass(start uint64) bool {
	return start == 2 || start == 4
}

// collectAutostartServices enumerates every service whose Start value marks
// it as an autostart candidate (Automatic or, since disable rewrites Start
// in place, Disabled), tagging DelayedAutoStart=1 services distinctly since
// they carry a lighter boot-time impact than an eager autostart service.
// IsEnabled reflects the live Start value; opts.IncludeDisabled is applied
// downstream by the scanner, the same as every other collector.
func collectAutostartServices(ctx context.Context, opts models.StartupInventoryOptions, apt *platform.ShortcutApartment) ([]models.StartupItem, error) {
	names, err := platform.ListSubKeyNames(platform.RootLocalMachine, platform.ViewNative, servicesKeyPath)
	if err != nil {
		return nil, err
	}

	var items []models.StartupItem
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		subKey := servicesKeyPath + `\` + name

		start, ok, err := platform.ReadIntegerValue(platform.RootLocalMachine, platform.ViewNative, subKey, "Start")
		if err != nil || !ok || !serviceAutostartClass(start) {
			continue
		}

		delayed, _, _ := platform.ReadIntegerValue(platform.RootLocalMachine, platform.ViewNative, subKey, "DelayedAutoStart")

		values, err := platform.ReadStringValues(platform.RootLocalMachine, platform.ViewNative, subKey)
		if err != nil {
			continue
		}
		rawImagePath := values["ImagePath"]

		exe, args := platform.SplitCommand(rawImagePath)

		// Name is the registry service key, not DisplayName: the Control
		// Service's service mutator rebuilds this same subkey path from
		// item.Name, so identity and the mutation target must match.
		item := models.StartupItem{
			ID:             models.ServiceID(name),
			Name:           name,
			SourceTag:      "Service",
			SourceKind:     models.SourceService,
			ExecutablePath: exe,
			Arguments:      args,
			RawCommand:     rawImagePath,
			IsEnabled:      start == 2,
			EntryLocation:  `HKLM\` + subKey,
			UserContext:    models.UserContextMachine,
		}

		meta := resolveExecutableMeta(exe)
		item.FileSizeBytes = meta.sizeBytes
		item.LastModified = meta.lastModified
		item.Publisher = meta.publisher
		item.Signature = meta.signature
		item.Impact = classifyImpact(models.SourceService, true, delayed == 1, meta.sizeBytes, meta.sizeKnown)

		items = append(items, item)
	}

	return items, nil
}
