package scanner

import (
	"context"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/constants"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/platform"
)

const lsaKeyPath = `SYSTEM\CurrentControlSet\Control\Lsa`

var lsaPackageLists = []string{"Security Packages", "Notification Packages", "Authentication Packages"}

// collectLSAPackages reads the three REG_MULTI_SZ package lists under LSA,
// skipping the packages Windows ships with so only third-party additions
// surface. These lists load arbitrary DLLs into lsass.exe, making them one
// of the highest blast-radius extension points on the system.
func collectLSAPackages(ctx context.Context, opts models.StartupInventoryOptions, apt *platform.ShortcutApartment) ([]models.StartupItem, error) {
	var items []models.StartupItem
	for _, list := range lsaPackageLists {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entries, ok, err := platform.ReadMultiStringValue(platform.RootLocalMachine, platform.ViewNative, lsaKeyPath, list)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		for _, pkg := range entries {
			if pkg == "" || isKnownName(pkg, constants.KnownLSAPackages) {
				continue
			}

			item := models.StartupItem{
				ID:            models.LSAID(list, pkg),
				Name:          pkg,
				SourceTag:     "LSA " + list,
				SourceKind:    models.SourceLSA,
				RawCommand:    pkg,
				EntryLocation: `HKLM\` + lsaKeyPath,
				UserContext:   models.UserContextMachine,
				IsEnabled:     true,
				Impact:        models.ImpactHigh,
			}
			items = append(items, item)
		}
	}

	return items, nil
}
