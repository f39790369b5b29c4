//go:build windows

package platform

import (
	"fmt"

	"github.com/StackExchange/wmi"
)

// PackagedApp is one installed packaged app, one entry per WMI row (several
// versions of one family are not merged).
type PackagedApp struct {
	FamilyName string
	PackageFullName string
}

// win32InstalledStoreProgram mirrors the WMI class this engine queries for
// packaged apps; only the fields the engine needs are declared.
type win32InstalledStoreProgram struct {
	Name    string
	Version string
}

// ListPackagedApps enumerates installed packaged apps via WMI
// (Win32_InstalledStoreProgram), the preferred source. Callers fall back to
// the AppModel\Repository\Packages registry path when this returns an
// error (WMI can be disabled or slow to respond on locked-down machines).
func ListPackagedApps() ([]PackagedApp, error) {
	var rows []win32InstalledStoreProgram
	if err := wmi.Query("SELECT Name, Version FROM Win32_InstalledStoreProgram", &rows); err != nil {
		return nil, fmt.Errorf("WMI Win32_InstalledStoreProgram: %w", err)
	}

	apps := make([]PackagedApp, 0, len(rows))
	for _, r := range rows {
		apps = append(apps, PackagedApp{FamilyName: r.Name, PackageFullName: r.Name + "_" + r.Version})
	}
	return apps, nil
}

// ListPackageFamiliesFromRegistry is the registry fallback: it returns the
// subkey names under HKLM\SOFTWARE\Microsoft\Windows\CurrentVersion\
// AppModel\Repository\Packages, for use when WMI is unavailable.
func ListPackageFamiliesFromRegistry() ([]string, error) {
	return ListSubKeyNames(RootLocalMachine, ViewNative, `SOFTWARE\Microsoft\Windows\CurrentVersion\AppModel\Repository\Packages`)
}
