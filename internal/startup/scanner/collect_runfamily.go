package scanner

import (
	"context"
	"fmt"
	"strings"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/platform"
)

const winCurrentVersion = `Software\Microsoft\Windows\CurrentVersion\`

// runFamilyLocations is every Run-family registry location this collector
// reads: subkey name and the SourceKind its values map to. Whether an item
// carries a StartupApproved companion is decided per item by
// StartupItem.UsesStartupApprovedCompanion (RunServices/RunServicesOnce
// predate the Explorer approval protocol).
var runFamilyLocations = []struct {
	subKey string
	kind   models.SourceKind
}{
	{"Run", models.SourceRunKey},
	{"RunOnce", models.SourceRunOnce},
	{"RunServices", models.SourceRunKey},
	{"RunServicesOnce", models.SourceRunOnce},
}

// collectRunFamily scans Run/RunOnce/RunServices/RunServicesOnce under both
// hives, native view always and the 32-bit-redirected view additionally for
// HKLM (the only one of the two hives whose Software subtree is actually
// WOW64-redirected on a 64-bit system).
func collectRunFamily(ctx context.Context, opts models.StartupInventoryOptions, apt *platform.ShortcutApartment) ([]models.StartupItem, error) {
	var items []models.StartupItem

	roots := []struct {
		tag  string
		root platform.RegistryRoot
		ctx  models.UserContext
	}{
		{"HKCU", platform.RootCurrentUser, models.UserContextCurrentUser},
		{"HKLM", platform.RootLocalMachine, models.UserContextMachine},
	}

	for _, r := range roots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		views := []platform.RegistryView{platform.ViewNative}
		if r.root == platform.RootLocalMachine {
			views = append(views, platform.View32Bit)
		}

		for _, loc := range runFamilyLocations {
			if loc.kind == models.SourceRunKey && !opts.IncludeRunKeys {
				continue
			}
			if loc.kind == models.SourceRunOnce && !opts.IncludeRunOnce {
				continue
			}

			for _, view := range views {
				if err := ctx.Err(); err != nil {
					return nil, err
				}

				subKey := winCurrentVersion + loc.subKey
				values, err := platform.ReadStringValues(r.root, view, subKey)
				if err != nil {
					return nil, fmt.Errorf("%s\\%s: %w", r.tag, subKey, err)
				}

				tag := fmt.Sprintf("%s %s", r.tag, loc.subKey)
				if view == platform.View32Bit {
					tag += " (32-bit)"
				}

				for name, raw := range values {
					if err := ctx.Err(); err != nil {
						return nil, err
					}
					items = append(items, buildRunFamilyItem(r.tag, r.root, view, r.ctx, tag, loc.kind, subKey, name, raw))
				}
			}
		}
	}

	return items, nil
}

func buildRunFamilyItem(
	rootTag string, root platform.RegistryRoot, view platform.RegistryView, userCtx models.UserContext,
	tag string, kind models.SourceKind, subKey, name, raw string,
) models.StartupItem {
	exe, args := platform.SplitCommand(raw)

	item := models.StartupItem{
		ID:             models.RunKeyID(tag, name),
		Name:           name,
		SourceTag:      tag,
		SourceKind:     kind,
		ExecutablePath: exe,
		Arguments:      args,
		RawCommand:     raw,
		EntryLocation:  rootTag + `\` + subKey,
		UserContext:    userCtx,
		IsEnabled:      true,
	}

	usesApproved := item.UsesStartupApprovedCompanion()
	if usesApproved {
		approvedCategory := "Run"
		if strings.HasSuffix(subKey, "RunOnce") {
			approvedCategory = "RunOnce"
		}
		approvedKeyPath := startupApprovedBasePath + `\` + approvedCategory
		if view == platform.View32Bit {
			approvedKeyPath += "32"
		}
		if blob, ok, err := platform.ReadApprovedBlob(root, view, approvedKeyPath, name); err == nil && ok {
			item.IsEnabled = blob.IsEnabled()
		}
	}

	meta := resolveExecutableMeta(exe)
	item.FileSizeBytes = meta.sizeBytes
	item.LastModified = meta.lastModified
	item.Publisher = meta.publisher
	item.Signature = meta.signature
	item.Impact = classifyImpact(kind, userCtx == models.UserContextMachine, false, meta.sizeBytes, meta.sizeKnown)

	return item
}

const startupApprovedBasePath = winCurrentVersion + `Explorer\StartupApproved`
