package scanner

import (
	"context"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/platform"
)

const ifeoKeyPath = `Software\Microsoft\Windows NT\CurrentVersion\Image File Execution Options`

// collectIFEO surfaces per-image Debugger redirections. This is one of the
// oldest persistence tricks in Windows: replacing an image's launch target
// wholesale rather than adding to a list, so any Debugger value at all is
// worth surfacing.
func collectIFEO(ctx context.Context, opts models.StartupInventoryOptions, apt *platform.ShortcutApartment) ([]models.StartupItem, error) {
	images, err := platform.ListSubKeyNames(platform.RootLocalMachine, platform.ViewNative, ifeoKeyPath)
	if err != nil {
		return nil, err
	}

	var items []models.StartupItem
	for _, image := range images {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		subKey := ifeoKeyPath + `\` + image
		values, err := platform.ReadStringValues(platform.RootLocalMachine, platform.ViewNative, subKey)
		if err != nil {
			continue
		}
		raw := values["Debugger"]
		if raw == "" {
			continue
		}

		exe, args := platform.SplitCommand(raw)
		item := models.StartupItem{
			ID:             models.IFEOID(image),
			Name:           image,
			SourceTag:      "Image File Execution Options",
			SourceKind:     models.SourceIFEO,
			ExecutablePath: exe,
			Arguments:      args,
			RawCommand:     raw,
			EntryLocation:  `HKLM\` + subKey,
			UserContext:    models.UserContextMachine,
			IsEnabled:      true,
		}
		meta := resolveExecutableMeta(exe)
		item.FileSizeBytes, item.LastModified, item.Publisher, item.Signature = meta.sizeBytes, meta.lastModified, meta.publisher, meta.signature
		item.Impact = classifyImpact(models.SourceIFEO, true, false, meta.sizeBytes, meta.sizeKnown)

		items = append(items, item)
	}

	return items, nil
}
