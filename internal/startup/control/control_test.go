package control

import (
	"context"
	"errors"
	"testing"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/startup/catalog"
)

func TestParseRegistryLocation(t *testing.T) {
	tests := []struct {
		name       string
		location   string
		wantOK     bool
		wantSubKey string
	}{
		{"HKCU run key", `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`, true, `Software\Microsoft\Windows\CurrentVersion\Run`},
		{"HKLM run key", `HKLM\Software\Microsoft\Windows\CurrentVersion\Run`, true, `Software\Microsoft\Windows\CurrentVersion\Run`},
		{"unknown root", `HKCR\Something`, false, ""},
		{"no separator", `HKCU`, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, subKey, ok := parseRegistryLocation(tt.location)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if subKey != tt.wantSubKey {
				t.Errorf("subKey = %q, want %q", subKey, tt.wantSubKey)
			}
			_ = root
		})
	}
}

func TestApprovedCategoryPath(t *testing.T) {
	got := approvedCategoryPath(`Software\Microsoft\Windows\CurrentVersion\Run`)
	want := startupApprovedBase + `\Run`
	if got != want {
		t.Errorf("approvedCategoryPath() = %q, want %q", got, want)
	}
}

func TestResolveRestoreCommand(t *testing.T) {
	item := models.StartupItem{Name: "Updater", RawCommand: `C:\fallback.exe`}
	m := runKeyMutator{}

	if got := m.resolveRestoreCommand(item, nil); got != item.RawCommand {
		t.Errorf("with no backup and no catalog, got %q, want fallback %q", got, item.RawCommand)
	}

	backup := &models.StartupEntryBackup{RestorePayload: models.RestorePayload{RegistryValueData: `C:\backup.exe`}}
	if got := m.resolveRestoreCommand(item, backup); got != `C:\backup.exe` {
		t.Errorf("with backup, got %q, want backup data", got)
	}
}

func TestResolveRestoreCommandFallsBackToLatestBackupByValueName(t *testing.T) {
	tmpDir := t.TempDir()
	backups := catalog.NewBackupCatalog(tmpDir + "/backups.json")
	if err := backups.Save(models.StartupEntryBackup{
		ItemID: "run:hklm run:stale-id",
		RestorePayload: models.RestorePayload{
			RegistryValueName: "Updater",
			RegistryValueData: `C:\from-catalog.exe`,
		},
	}); err != nil {
		t.Fatalf("seed backup: %v", err)
	}

	m := runKeyMutator{backups: backups}
	item := models.StartupItem{Name: "Updater", RawCommand: `C:\fallback.exe`}

	// No backup passed directly (e.g. the item's own backup record was
	// already removed by a later disable/enable cycle under a different
	// id) - the middle tier should recover the data by value name.
	if got := m.resolveRestoreCommand(item, nil); got != `C:\from-catalog.exe` {
		t.Errorf("got %q, want data recovered via FindLatestByValueName", got)
	}
}

func TestServiceDisableRequiresElevation(t *testing.T) {
	tmpDir := t.TempDir()
	backups := catalog.NewBackupCatalog(tmpDir + "/backups.json")
	svc := NewService(backups)

	item := models.StartupItem{ID: "run:hkcu run:foo", SourceKind: models.SourceRunKey}
	_, err := svc.Disable(context.Background(), item)
	if !errors.Is(err, models.ErrNotElevated) {
		t.Errorf("expected ErrNotElevated on a non-elevated test process, got %v", err)
	}
}

func TestServiceRejectsUnsupportedSourceKindRegardlessOfElevation(t *testing.T) {
	tmpDir := t.TempDir()
	backups := catalog.NewBackupCatalog(tmpDir + "/backups.json")
	svc := NewService(backups)

	item := models.StartupItem{ID: "winlogon:shell", SourceKind: models.SourceWinlogon}
	_, err := svc.Disable(context.Background(), item)
	// Elevation is checked first; on a non-elevated test process that error
	// wins, but either error is an acceptable signal that the mutation was
	// refused. On an elevated box this would surface ErrUnsupportedSource.
	if err == nil {
		t.Fatal("expected an error for an unsupported source kind")
	}
}
