package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/platform"
)

const startupFolderApprovedKeyPath = winCurrentVersion + `Explorer\StartupApproved\StartupFolder`

// collectStartupFolders enumerates the user and common Startup folders for
// .lnk and .exe entries, resolving shortcut targets through the shell COM
// apartment. A shortcut that fails to resolve is skipped with its own
// warning-worthy error surfaced through the returned error only if the
// whole folder is unreadable; per-file resolution failures are silently
// skipped, matching the contract that a collector degrades gracefully.
func collectStartupFolders(ctx context.Context, opts models.StartupInventoryOptions, apt *platform.ShortcutApartment) ([]models.StartupItem, error) {
	var items []models.StartupItem

	folders := []struct {
		tag         string
		path        string
		root        platform.RegistryRoot
		userContext models.UserContext
	}{
		{"HKCU", platform.UserStartupFolder(), platform.RootCurrentUser, models.UserContextCurrentUser},
		{"HKLM", platform.CommonStartupFolder(), platform.RootLocalMachine, models.UserContextMachine},
	}

	for _, f := range folders {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if f.path == "" {
			continue
		}

		entries, err := os.ReadDir(f.path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("read %s: %w", f.path, err)
		}

		for _, entry := range entries {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if entry.IsDir() {
				continue
			}

			name := entry.Name()
			lower := strings.ToLower(name)
			if !strings.HasSuffix(lower, ".lnk") && !strings.HasSuffix(lower, ".exe") {
				continue
			}

			fullPath := filepath.Join(f.path, name)

			var exe, args string
			if strings.HasSuffix(lower, ".lnk") && apt != nil {
				target, arguments, err := platform.ResolveShortcut(fullPath)
				if err != nil {
					continue
				}
				exe, args = target, arguments
			} else {
				exe = fullPath
			}

			item := models.StartupItem{
				ID:             models.StartupFolderID(f.tag, name),
				Name:           name,
				SourceTag:      f.tag + " Startup",
				SourceKind:     models.SourceStartupFolder,
				ExecutablePath: exe,
				Arguments:      args,
				RawCommand:     fullPath,
				EntryLocation:  fullPath,
				UserContext:    f.userContext,
				IsEnabled:      true,
			}

			if blob, ok, err := platform.ReadApprovedBlob(f.root, platform.ViewNative, startupFolderApprovedKeyPath, name); err == nil && ok {
				item.IsEnabled = blob.IsEnabled()
			}

			meta := resolveExecutableMeta(exe)
			item.FileSizeBytes = meta.sizeBytes
			item.LastModified = meta.lastModified
			item.Publisher = meta.publisher
			item.Signature = meta.signature
			item.Impact = classifyImpact(models.SourceStartupFolder, f.userContext == models.UserContextMachine, false, meta.sizeBytes, meta.sizeKnown)

			items = append(items, item)
		}
	}

	return items, nil
}
