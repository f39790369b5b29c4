package scanner

import (
	"context"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/constants"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/platform"
)

const svchostGroupsKeyPath = `SYSTEM\CurrentControlSet\Control\Svchost`

// collectSvchostGroups surfaces svchost service-hosting groups beyond the
// stock set Windows defines. A third-party group here means a service was
// configured to run inside a shared svchost.exe process rather than its own,
// which changes its crash/restart blast radius.
func collectSvchostGroups(ctx context.Context, opts models.StartupInventoryOptions, apt *platform.ShortcutApartment) ([]models.StartupItem, error) {
	groups, err := platform.ListValueNames(platform.RootLocalMachine, platform.ViewNative, svchostGroupsKeyPath)
	if err != nil {
		return nil, err
	}

	var items []models.StartupItem
	for _, name := range groups {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if isKnownName(name, constants.KnownSvchostGroups) {
			continue
		}

		item := models.StartupItem{
			ID:            models.SvchostGroupID(name),
			Name:          name,
			SourceTag:     "Svchost Group",
			SourceKind:    models.SourceSvchostGroup,
			EntryLocation: `HKLM\` + svchostGroupsKeyPath,
			UserContext:   models.UserContextMachine,
			IsEnabled:     true,
			Signature:     models.SignatureUnknown,
		}
		item.Impact = classifyImpact(models.SourceSvchostGroup, true, false, 0, false)

		items = append(items, item)
	}

	return items, nil
}
