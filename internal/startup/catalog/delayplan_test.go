package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
)

func TestDelayPlanCatalog_SaveGetRemove(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "delayplan-catalog-test-*")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "delay-plans.json")
	c := NewDelayPlanCatalog(path)

	plan := models.StartupDelayPlan{
		ID:                  "run:hkcu run:foo",
		SourceKind:          models.SourceRunKey,
		ReplacementTaskPath: `\TidyWindow\DelayedStartup\run-hkcu-run-foo`,
		Delay:               90 * time.Second,
		BackupID:            "b1",
		CreatedAt:           time.Now(),
	}

	if err := c.Save(plan); err != nil {
		t.Fatalf("Save: %v", err)
	}

	c2 := NewDelayPlanCatalog(path)
	got, ok := c2.Get(plan.ID)
	if !ok {
		t.Fatal("expected plan to be found")
	}
	if got.DelaySeconds() != 90 {
		t.Errorf("DelaySeconds() = %d, want 90", got.DelaySeconds())
	}
	if got.ReplacementTaskPath != plan.ReplacementTaskPath {
		t.Errorf("ReplacementTaskPath = %q, want %q", got.ReplacementTaskPath, plan.ReplacementTaskPath)
	}

	if err := c2.Remove(plan.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok := c2.Get(plan.ID); ok {
		t.Error("expected plan to be gone after Remove")
	}
}

func TestDelayPlanCatalog_GetAllSorted(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "delayplan-catalog-test-*")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	c := NewDelayPlanCatalog(filepath.Join(tmpDir, "delay-plans.json"))
	_ = c.Save(models.StartupDelayPlan{ID: "zebra", Delay: time.Minute})
	_ = c.Save(models.StartupDelayPlan{ID: "alpha", Delay: time.Minute})

	all := c.GetAll()
	if len(all) != 2 || all[0].ID != "alpha" || all[1].ID != "zebra" {
		t.Errorf("GetAll() not sorted by id: %+v", all)
	}
}
