package scanner

import (
	"context"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/platform"
)

const approvedShellExtKeyPath = `Software\Microsoft\Windows\CurrentVersion\Shell Extensions\Approved`

// collectShellExtensions enumerates the Explorer-approved shell extension
// CLSIDs, skipping ones whose InprocServer32 resolves to a Microsoft
// publisher so only third-party extensions surface.
func collectShellExtensions(ctx context.Context, opts models.StartupInventoryOptions, apt *platform.ShortcutApartment) ([]models.StartupItem, error) {
	values, err := platform.ReadStringValues(platform.RootLocalMachine, platform.ViewNative, approvedShellExtKeyPath)
	if err != nil {
		return nil, err
	}

	var items []models.StartupItem
	for clsid, friendlyName := range values {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		dllPath, ok := resolveCLSIDInprocServer(clsid)
		meta := executableMeta{signature: models.SignatureUnknown}
		if ok {
			meta = resolveExecutableMeta(dllPath)
		}
		if isMicrosoftPublisher(meta.publisher) {
			continue
		}

		name := friendlyName
		if name == "" {
			name = clsid
		}

		item := models.StartupItem{
			ID:             models.ShellExtID(clsid),
			Name:           name,
			SourceTag:      "Shell Extension",
			SourceKind:     models.SourceShellExtension,
			ExecutablePath: dllPath,
			EntryLocation:  `HKLM\` + approvedShellExtKeyPath,
			UserContext:    models.UserContextMachine,
			IsEnabled:      true,
			FileSizeBytes:  meta.sizeBytes,
			LastModified:   meta.lastModified,
			Publisher:      meta.publisher,
			Signature:      meta.signature,
		}
		item.Impact = classifyImpact(models.SourceShellExtension, true, false, meta.sizeBytes, meta.sizeKnown)

		items = append(items, item)
	}

	return items, nil
}
