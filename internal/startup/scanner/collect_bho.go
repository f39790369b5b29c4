package scanner

import (
	"context"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/platform"
)

const bhoKeyPath = `Software\Microsoft\Windows\CurrentVersion\Explorer\Browser Helper Objects`

// collectBHOs enumerates registered Internet Explorer Browser Helper
// Objects. IE itself is deprecated, but the registration point is still
// honored by Explorer and some embedded WebBrowser controls.
func collectBHOs(ctx context.Context, opts models.StartupInventoryOptions, apt *platform.ShortcutApartment) ([]models.StartupItem, error) {
	clsids, err := platform.ListSubKeyNames(platform.RootLocalMachine, platform.ViewNative, bhoKeyPath)
	if err != nil {
		return nil, err
	}

	var items []models.StartupItem
	for _, clsid := range clsids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		dllPath, ok := resolveCLSIDInprocServer(clsid)

		item := models.StartupItem{
			ID:             models.BHOID(clsid),
			Name:           clsid,
			SourceTag:      "Browser Helper Object",
			SourceKind:     models.SourceBHO,
			ExecutablePath: dllPath,
			EntryLocation:  `HKLM\` + bhoKeyPath + `\` + clsid,
			UserContext:    models.UserContextMachine,
			IsEnabled:      true,
		}
		if ok {
			meta := resolveExecutableMeta(dllPath)
			item.FileSizeBytes, item.LastModified, item.Publisher, item.Signature = meta.sizeBytes, meta.lastModified, meta.publisher, meta.signature
			item.Impact = classifyImpact(models.SourceBHO, true, false, meta.sizeBytes, meta.sizeKnown)
		} else {
			item.Signature = models.SignatureUnknown
			item.Impact = classifyImpact(models.SourceBHO, true, false, 0, false)
		}

		items = append(items, item)
	}

	return items, nil
}

const clsidRootKeyPath = `Software\Classes\CLSID`

// resolveCLSIDInprocServer looks up the InprocServer32 default value for a
// CLSID, which names the DLL the object loads.
func resolveCLSIDInprocServer(clsid string) (string, bool) {
	subKey := clsidRootKeyPath + `\` + clsid + `\InprocServer32`
	values, err := platform.ReadStringValues(platform.RootLocalMachine, platform.ViewNative, subKey)
	if err != nil {
		return "", false
	}
	path := values["(Default)"]
	return path, path != ""
}
