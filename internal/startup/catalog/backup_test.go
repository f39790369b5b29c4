package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
)

func TestBackupCatalog_SaveGetRemove(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "backup-catalog-test-*")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "backups.json")
	c := NewBackupCatalog(path)

	entry := models.StartupEntryBackup{
		ItemID:     "run:hkcu run:foo",
		Name:       "foo",
		SourceKind: models.SourceRunKey,
		CreatedAt:  time.Now(),
		RestorePayload: models.RestorePayload{
			RegistryRoot:      "HKCU",
			RegistrySubKey:    `Software\Microsoft\Windows\CurrentVersion\Run`,
			RegistryValueName: "foo",
			RegistryValueData: `C:\App\foo.exe`,
		},
	}

	if err := c.Save(entry); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Fresh instance reading the same file must see the saved entry.
	c2 := NewBackupCatalog(path)
	got, ok := c2.Get("RUN:HKCU RUN:FOO")
	if !ok {
		t.Fatal("expected entry to be found case-insensitively")
	}
	if got.RestorePayload.RegistryValueData != entry.RestorePayload.RegistryValueData {
		t.Errorf("RegistryValueData = %q, want %q", got.RestorePayload.RegistryValueData, entry.RestorePayload.RegistryValueData)
	}

	if err := c2.Remove(entry.ItemID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok := c2.Get(entry.ItemID); ok {
		t.Error("expected entry to be gone after Remove")
	}
}

func TestBackupCatalog_MissingFileIsEmpty(t *testing.T) {
	c := NewBackupCatalog(filepath.Join(os.TempDir(), "does-not-exist-tidywindow", "backups.json"))
	if all := c.GetAll(); len(all) != 0 {
		t.Errorf("expected empty catalog for missing file, got %d entries", len(all))
	}
}

func TestBackupCatalog_FindLatestByValueName(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "backup-catalog-test-*")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "backups.json")
	c := NewBackupCatalog(path)

	older := models.StartupEntryBackup{
		ItemID:     "run:hkcu run:foo#1",
		SourceKind: models.SourceRunKey,
		CreatedAt:  time.Now().Add(-time.Hour),
		RestorePayload: models.RestorePayload{
			RegistryValueName: "foo",
			RegistryValueData: "old",
		},
	}
	newer := older
	newer.ItemID = "run:hkcu run:foo#2"
	newer.CreatedAt = time.Now()
	newer.RestorePayload.RegistryValueData = "new"

	if err := c.Save(older); err != nil {
		t.Fatalf("Save older: %v", err)
	}
	if err := c.Save(newer); err != nil {
		t.Fatalf("Save newer: %v", err)
	}

	found, ok := c.FindLatestByValueName("foo")
	if !ok {
		t.Fatal("expected a match")
	}
	if found.RestorePayload.RegistryValueData != "new" {
		t.Errorf("expected the newer backup, got RegistryValueData=%q", found.RestorePayload.RegistryValueData)
	}
}

func TestBackupCatalog_CleanupStale(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "backup-catalog-test-*")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "backups.json")
	c := NewBackupCatalog(path)

	stale := models.StartupEntryBackup{
		ItemID:     "startup:hkcu:stale.lnk",
		SourceKind: models.SourceStartupFolder,
	}
	live := models.StartupEntryBackup{
		ItemID:     "startup:hkcu:live.lnk",
		SourceKind: models.SourceStartupFolder,
		RestorePayload: models.RestorePayload{
			FileOriginalPath: `C:\Users\bob\Startup\live.lnk`,
		},
	}

	if err := c.Save(stale); err != nil {
		t.Fatalf("Save stale: %v", err)
	}
	if err := c.Save(live); err != nil {
		t.Fatalf("Save live: %v", err)
	}
	if err := c.CleanupStale(); err != nil {
		t.Fatalf("CleanupStale: %v", err)
	}

	if _, ok := c.Get(stale.ItemID); ok {
		t.Error("expected stale entry to be removed")
	}
	if _, ok := c.Get(live.ItemID); !ok {
		t.Error("expected live entry to survive cleanup")
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name string
		b    models.StartupEntryBackup
		want bool
	}{
		{"empty id", models.StartupEntryBackup{}, false},
		{"id with no identifying field", models.StartupEntryBackup{ItemID: "x"}, false},
		{"registry subkey present", models.StartupEntryBackup{ItemID: "x", RestorePayload: models.RestorePayload{RegistrySubKey: "Run"}}, true},
		{"service name present", models.StartupEntryBackup{ItemID: "x", RestorePayload: models.RestorePayload{ServiceName: "svc"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValid(tt.b); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}
