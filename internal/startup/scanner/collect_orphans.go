package scanner

import (
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/platform"
)

// approvedLocations is every StartupApproved category this collector walks,
// paired with the SourceKind an orphan found there should be reported as.
var approvedLocations = []struct {
	root     platform.RegistryRoot
	rootTag  string
	category string
	kind     models.SourceKind
}{
	{platform.RootCurrentUser, "HKCU", "Run", models.SourceRunKey},
	{platform.RootCurrentUser, "HKCU", "RunOnce", models.SourceRunOnce},
	{platform.RootCurrentUser, "HKCU", "StartupFolder", models.SourceStartupFolder},
	{platform.RootLocalMachine, "HKLM", "Run", models.SourceRunKey},
	{platform.RootLocalMachine, "HKLM", "RunOnce", models.SourceRunOnce},
}

// collectStartupApprovedOrphans synthesizes a minimal, empty-executablePath
// item for every StartupApproved binary blob whose companion live entry no
// longer exists in items, across both the native and 32-bit-redirected
// approval keys, so a disabled entry an uninstaller removed outright is
// still visible and re-enableable.
func collectStartupApprovedOrphans(items []models.StartupItem) ([]models.StartupItem, error) {
	live := make(map[string]bool, len(items))
	for _, item := range items {
		live[models.NormalizeID(item.ID)] = true
	}

	var orphans []models.StartupItem

	for _, loc := range approvedLocations {
		for _, suffix := range []string{"", "32"} {
			approvedKeyPath := startupApprovedBasePath + `\` + loc.category + suffix

			names, err := platform.ListValueNames(loc.root, platform.ViewNative, approvedKeyPath)
			if err != nil {
				continue
			}

			for _, name := range names {
				var id string
				switch loc.kind {
				case models.SourceStartupFolder:
					id = models.StartupFolderID(loc.rootTag, name)
				default:
					tag := loc.rootTag + " " + loc.category
					if suffix == "32" {
						tag += " (32-bit)"
					}
					id = models.RunKeyID(tag, name)
				}

				if live[models.NormalizeID(id)] {
					continue
				}

				blob, ok, err := platform.ReadApprovedBlob(loc.root, platform.ViewNative, approvedKeyPath, name)
				if err != nil || !ok {
					continue
				}

				userCtx := models.UserContextCurrentUser
				if loc.root == platform.RootLocalMachine {
					userCtx = models.UserContextMachine
				}

				orphans = append(orphans, models.StartupItem{
					ID:            id,
					Name:          name,
					SourceTag:     loc.rootTag + " " + loc.category + suffix,
					SourceKind:    loc.kind,
					EntryLocation: approvedKeyPath,
					UserContext:   userCtx,
					IsEnabled:     blob.IsEnabled(),
					Signature:     models.SignatureUnknown,
					Impact:        models.ImpactUnknown,
				})
			}
		}
	}

	return orphans, nil
}
