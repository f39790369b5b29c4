package scanner

import (
	"context"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/platform"
)

const fontDriversKeyPath = `SYSTEM\CurrentControlSet\Control\Session Manager\SubSystems`

// collectFontDrivers reads the Windows subsystem value that names the font
// driver host (fontdrvhost.exe by convention). Any non-Microsoft value here
// swaps out a component that runs in every session's font rendering path.
func collectFontDrivers(ctx context.Context, opts models.StartupInventoryOptions, apt *platform.ShortcutApartment) ([]models.StartupItem, error) {
	values, err := platform.ReadStringValues(platform.RootLocalMachine, platform.ViewNative, fontDriversKeyPath)
	if err != nil {
		return nil, err
	}

	raw := values["Windows"]
	if raw == "" {
		return nil, nil
	}

	exe, args := platform.SplitCommand(raw)
	meta := resolveExecutableMeta(exe)
	if isMicrosoftPublisher(meta.publisher) {
		return nil, nil
	}

	item := models.StartupItem{
		ID:             models.FontDriverID("Windows"),
		Name:           "Windows",
		SourceTag:      "Font Driver Host",
		SourceKind:     models.SourceFontDriver,
		ExecutablePath: exe,
		Arguments:      args,
		RawCommand:     raw,
		EntryLocation:  `HKLM\` + fontDriversKeyPath,
		UserContext:    models.UserContextMachine,
		IsEnabled:      true,
		FileSizeBytes:  meta.sizeBytes,
		LastModified:   meta.lastModified,
		Publisher:      meta.publisher,
		Signature:      meta.signature,
	}
	item.Impact = classifyImpact(models.SourceFontDriver, true, false, meta.sizeBytes, meta.sizeKnown)

	return []models.StartupItem{item}, nil
}
