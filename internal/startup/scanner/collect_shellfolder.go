package scanner

import (
	"context"
	"os"
	"strings"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/pathutil"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/platform"
)

const userShellFoldersKeyPath = `Software\Microsoft\Windows\CurrentVersion\Explorer\User Shell Folders`

// collectShellFolders surfaces a per-user "Startup" shell-folder
// redirection (HKCU only; "Common Startup" is not checked) whose target
// differs from the platform's default startup folder: this is the mechanism malware and some legitimate tools use to
// silently move the canonical startup location, so it's always worth
// surfacing even though it's read-only here.
func collectShellFolders(ctx context.Context, opts models.StartupInventoryOptions, apt *platform.ShortcutApartment) ([]models.StartupItem, error) {
	values, err := platform.ReadStringValues(platform.RootCurrentUser, platform.ViewNative, userShellFoldersKeyPath)
	if err != nil {
		return nil, err
	}

	var items []models.StartupItem
	for valueName, defaultFolder := range map[string]string{
		"Startup": platform.UserStartupFolder(),
	} {
		raw, ok := values[valueName]
		if !ok || raw == "" {
			continue
		}
		expanded := os.ExpandEnv(raw)
		resolved, err := pathutil.ResolveAbsolutePath(expanded)
		if err != nil {
			resolved = expanded
		}
		if strings.EqualFold(resolved, defaultFolder) {
			continue
		}

		item := models.StartupItem{
			ID:             models.ShellFolderID(valueName),
			Name:           valueName,
			SourceTag:      "Shell Folder",
			SourceKind:     models.SourceShellFolder,
			ExecutablePath: resolved,
			RawCommand:     raw,
			EntryLocation:  `HKCU\` + userShellFoldersKeyPath,
			UserContext:    models.UserContextCurrentUser,
			IsEnabled:      true,
			Impact:         models.ImpactHigh,
		}
		items = append(items, item)
	}

	return items, nil
}
