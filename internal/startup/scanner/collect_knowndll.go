package scanner

import (
	"context"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/constants"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/platform"
)

const knownDLLsKeyPath = `SYSTEM\CurrentControlSet\Control\Session Manager\KnownDLLs`

// collectKnownDLLs surfaces entries in the KnownDLLs key that aren't part
// of the stock Windows set. The KnownDLLs mechanism forces every process to
// load the listed DLL from a single cached mapping, so an unexpected
// addition here affects the entire system at once.
func collectKnownDLLs(ctx context.Context, opts models.StartupInventoryOptions, apt *platform.ShortcutApartment) ([]models.StartupItem, error) {
	values, err := platform.ReadStringValues(platform.RootLocalMachine, platform.ViewNative, knownDLLsKeyPath)
	if err != nil {
		return nil, err
	}

	dllDir := values["DllDirectory"]

	var items []models.StartupItem
	for name, fileName := range values {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if name == "DllDirectory" || fileName == "" {
			continue
		}
		if isKnownName(fileName, constants.KnownSafeDLLs) {
			continue
		}

		path := fileName
		if dllDir != "" {
			path = dllDir + `\` + fileName
		}
		meta := resolveExecutableMeta(path)
		if isMicrosoftPublisher(meta.publisher) {
			continue
		}

		item := models.StartupItem{
			ID:             models.KnownDLLID(name),
			Name:           name,
			SourceTag:      "Known DLL",
			SourceKind:     models.SourceKnownDLL,
			ExecutablePath: path,
			EntryLocation:  `HKLM\` + knownDLLsKeyPath,
			UserContext:    models.UserContextMachine,
			IsEnabled:      true,
			FileSizeBytes:  meta.sizeBytes,
			LastModified:   meta.lastModified,
			Publisher:      meta.publisher,
			Signature:      meta.signature,
		}
		item.Impact = classifyImpact(models.SourceKnownDLL, true, false, meta.sizeBytes, meta.sizeKnown)

		items = append(items, item)
	}

	return items, nil
}
