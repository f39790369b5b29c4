package scanner

import (
	"context"
	"fmt"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/platform"
)

const packagedTaskDefaultTaskID = "StartupTask"

// collectPackagedTasks discovers installed packaged apps and reads the
// startup task's live State DWORD under
// HKCU\...\SystemAppData\<family>\<taskId>. This engine has no manifest
// parser (AppxManifest.xml isn't exposed by Win32_InstalledStoreProgram or
// the AppModel\Repository\Packages registry fallback, only the family
// name), so taskId is fixed at "StartupTask" — the convention the platform
// uses for a package's single declared startup extension — rather than
// enumerated per-package; a package with a differently named startup task
// extension is invisible to this collector.
func collectPackagedTasks(ctx context.Context, opts models.StartupInventoryOptions, apt *platform.ShortcutApartment) ([]models.StartupItem, error) {
	families, err := listPackageFamilies()
	if err != nil {
		return nil, err
	}

	var items []models.StartupItem
	for _, family := range families {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		subKey := fmt.Sprintf(`Software\Microsoft\Windows\CurrentVersion\SystemAppData\%s\%s`, family, packagedTaskDefaultTaskID)

		state, ok, err := platform.ReadIntegerValue(platform.RootCurrentUser, platform.ViewNative, subKey, "State")
		if err != nil {
			continue
		}

		item := models.StartupItem{
			ID:            models.PackagedTaskID(family, packagedTaskDefaultTaskID),
			Name:          family,
			SourceTag:     "Packaged App",
			SourceKind:    models.SourcePackagedTask,
			EntryLocation: subKey,
			UserContext:   models.UserContextCurrentUser,
			IsEnabled:     true,
		}

		if ok {
			item.IsEnabled = packagedTaskEnabledStates[uint32(state)]
		}

		item.Impact = classifyImpact(models.SourcePackagedTask, false, false, 0, false)

		items = append(items, item)
	}

	return items, nil
}

var packagedTaskEnabledStates = map[uint32]bool{2: true, 4: true, 5: true}

func listPackageFamilies() ([]string, error) {
	apps, err := platform.ListPackagedApps()
	if err == nil {
		names := make([]string, 0, len(apps))
		for _, app := range apps {
			names = append(names, app.FamilyName)
		}
		return names, nil
	}
	return platform.ListPackageFamiliesFromRegistry()
}
