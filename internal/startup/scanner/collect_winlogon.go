package scanner

import (
	"context"
	"strings"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/constants"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/platform"
)

const winlogonKeyPath = `Software\Microsoft\Windows NT\CurrentVersion\Winlogon`

// collectWinlogon reads the Shell/Userinit/Taskman values. The stock
// explorer.exe shell and any userinit.exe-suffixed path are expected
// system configuration, not a hijack, and are skipped.
func collectWinlogon(ctx context.Context, opts models.StartupInventoryOptions, apt *platform.ShortcutApartment) ([]models.StartupItem, error) {
	values, err := platform.ReadStringValues(platform.RootLocalMachine, platform.ViewNative, winlogonKeyPath)
	if err != nil {
		return nil, err
	}

	var items []models.StartupItem
	for _, valueName := range []string{"Shell", "Userinit", "Taskman"} {
		raw, ok := values[valueName]
		if !ok || raw == "" {
			continue
		}
		if valueName == "Shell" && strings.EqualFold(raw, constants.DefaultWinlogonShell) {
			continue
		}
		if valueName == "Userinit" && strings.HasSuffix(strings.ToLower(raw), "userinit.exe") {
			continue
		}

		exe, args := platform.SplitCommand(raw)
		item := models.StartupItem{
			ID:             models.WinlogonID(valueName),
			Name:           valueName,
			SourceTag:      "Winlogon",
			SourceKind:     models.SourceWinlogon,
			ExecutablePath: exe,
			Arguments:      args,
			RawCommand:     raw,
			EntryLocation:  `HKLM\` + winlogonKeyPath,
			UserContext:    models.UserContextMachine,
			IsEnabled:      true,
		}
		meta := resolveExecutableMeta(exe)
		item.FileSizeBytes, item.LastModified, item.Publisher, item.Signature = meta.sizeBytes, meta.lastModified, meta.publisher, meta.signature
		item.Impact = classifyImpact(models.SourceWinlogon, true, false, meta.sizeBytes, meta.sizeKnown)

		items = append(items, item)
	}

	return items, nil
}
