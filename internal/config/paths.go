// Package config resolves the on-disk locations the engine reads and writes:
// logs, the backup catalog, and the delay plan catalog.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/constants"
)

// LogDirectory returns the log directory.
//
// Locations:
//   - Windows: %LOCALAPPDATA%\TidyWindow\logs
//   - Unix: ~/.config/tidywindow/logs (useful only for local dev; the engine
//     itself only runs on Windows)
func LogDirectory() string {
	if runtime.GOOS == "windows" {
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return filepath.Join(os.TempDir(), "tidywindow-logs")
			}
			localAppData = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(localAppData, constants.ProductName, "logs")
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "tidywindow-logs")
		}
		return filepath.Join(homeDir, ".config", "tidywindow", "logs")
	}
	return filepath.Join(configDir, "tidywindow", "logs")
}

// EnsureLogDirectory creates the log directory if it doesn't exist.
func EnsureLogDirectory() error {
	return os.MkdirAll(LogDirectory(), 0700)
}

// CatalogDirectory returns the directory holding the backup catalog and the
// delay plan catalog, rooted under the all-users ProgramData tree so a
// machine-scope mutation made by an elevated process and a user-scope
// mutation made by the CLI both land in the same place.
//
//   - Windows: %PROGRAMDATA%\TidyWindow\StartupBackups
//   - Unix: ~/.config/tidywindow/StartupBackups (local dev only)
func CatalogDirectory() string {
	if runtime.GOOS == "windows" {
		programData := os.Getenv("PROGRAMDATA")
		if programData == "" {
			programData = `C:\ProgramData`
		}
		return filepath.Join(programData, constants.ProductName, constants.CatalogDirName)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "tidywindow", constants.CatalogDirName)
	}
	return filepath.Join(configDir, "tidywindow", constants.CatalogDirName)
}

// BackupCatalogPath returns the JSON file backing the backup catalog.
func BackupCatalogPath() string {
	return filepath.Join(CatalogDirectory(), "backups.json")
}

// DelayPlanCatalogPath returns the JSON file backing the delay plan catalog.
func DelayPlanCatalogPath() string {
	return filepath.Join(CatalogDirectory(), "delay-plans.json")
}

// EnsureCatalogDirectory creates the catalog directory if it doesn't exist.
func EnsureCatalogDirectory() error {
	return os.MkdirAll(CatalogDirectory(), 0700)
}
