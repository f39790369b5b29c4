package scanner

import (
	"context"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/platform"
)

const protocolFiltersKeyPath = `Software\Microsoft\Windows\CurrentVersion\Internet Settings\Filter`

// collectProtocolFilters enumerates registered MIME/protocol filter CLSIDs,
// a legacy IE extension point that intercepts and rewrites network content.
func collectProtocolFilters(ctx context.Context, opts models.StartupInventoryOptions, apt *platform.ShortcutApartment) ([]models.StartupItem, error) {
	names, err := platform.ListSubKeyNames(platform.RootLocalMachine, platform.ViewNative, protocolFiltersKeyPath)
	if err != nil {
		return nil, err
	}

	var items []models.StartupItem
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		dllPath, ok := resolveCLSIDInprocServer(name)
		meta := executableMeta{signature: models.SignatureUnknown}
		if ok {
			meta = resolveExecutableMeta(dllPath)
		}

		item := models.StartupItem{
			ID:             models.ProtocolFilterID(name),
			Name:           name,
			SourceTag:      "Protocol Filter",
			SourceKind:     models.SourceProtocolFilter,
			ExecutablePath: dllPath,
			EntryLocation:  `HKLM\` + protocolFiltersKeyPath + `\` + name,
			UserContext:    models.UserContextMachine,
			IsEnabled:      true,
			FileSizeBytes:  meta.sizeBytes,
			LastModified:   meta.lastModified,
			Publisher:      meta.publisher,
			Signature:      meta.signature,
		}
		item.Impact = classifyImpact(models.SourceProtocolFilter, true, false, meta.sizeBytes, meta.sizeKnown)

		items = append(items, item)
	}

	return items, nil
}
