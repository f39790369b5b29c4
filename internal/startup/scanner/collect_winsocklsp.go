package scanner

import (
	"context"
	"fmt"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/platform"
)

var winsockCatalogKeyPaths = []string{
	`SYSTEM\CurrentControlSet\Services\WinSock2\Parameters\Protocol_Catalog9\Catalog_Entries`,
	`SYSTEM\CurrentControlSet\Services\WinSock2\Parameters\Protocol_Catalog9\Catalog_Entries64`,
}

// collectWinsockLSPs walks both Winsock catalog widths and surfaces any
// entry whose provider DLL doesn't resolve to a Microsoft publisher. LSP
// chain injection is a classic way to intercept all network traffic at the
// socket layer.
func collectWinsockLSPs(ctx context.Context, opts models.StartupInventoryOptions, apt *platform.ShortcutApartment) ([]models.StartupItem, error) {
	var items []models.StartupItem
	for _, catalogPath := range winsockCatalogKeyPaths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entryNames, err := platform.ListSubKeyNames(platform.RootLocalMachine, platform.ViewNative, catalogPath)
		if err != nil {
			continue
		}

		for _, entryName := range entryNames {
			subKey := catalogPath + `\` + entryName
			values, err := platform.ReadStringValues(platform.RootLocalMachine, platform.ViewNative, subKey)
			if err != nil {
				continue
			}
			dllPath := values["PackedCatalogItem"]
			if dllPath == "" {
				continue
			}

			meta := resolveExecutableMeta(dllPath)
			if isMicrosoftPublisher(meta.publisher) {
				continue
			}

			id := fmt.Sprintf("%s#%s", catalogPath, entryName)
			item := models.StartupItem{
				ID:             models.WinsockID(id),
				Name:           entryName,
				SourceTag:      "Winsock LSP",
				SourceKind:     models.SourceWinsockLSP,
				ExecutablePath: dllPath,
				EntryLocation:  `HKLM\` + subKey,
				UserContext:    models.UserContextMachine,
				IsEnabled:      true,
				FileSizeBytes:  meta.sizeBytes,
				LastModified:   meta.lastModified,
				Publisher:      meta.publisher,
				Signature:      meta.signature,
			}
			item.Impact = classifyImpact(models.SourceWinsockLSP, true, false, meta.sizeBytes, meta.sizeKnown)

			items = append(items, item)
		}
	}

	return items, nil
}
