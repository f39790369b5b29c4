package delay

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/constants"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/startup/catalog"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/startup/control"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want time.Duration
	}{
		{"below minimum", 1 * time.Second, constants.MinDelayDuration},
		{"above maximum", time.Hour, constants.MaxDelayDuration},
		{"within range", 90 * time.Second, 90 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clamp(tt.in); got != tt.want {
				t.Errorf("clamp(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	tmpDir := t.TempDir()
	backups := catalog.NewBackupCatalog(tmpDir + "/backups.json")
	plans := catalog.NewDelayPlanCatalog(tmpDir + "/delay-plans.json")
	return NewService(plans, control.NewService(backups))
}

func TestDelayRejectsUnsupportedSourceKind(t *testing.T) {
	svc := newTestService(t)
	item := models.StartupItem{
		ID:          "svc:foo",
		SourceKind:  models.SourceService,
		UserContext: models.UserContextCurrentUser,
	}

	_, err := svc.Delay(context.Background(), item, time.Minute)
	if err == nil {
		t.Fatal("expected an error for a service entry")
	}
	// On a non-elevated test process ErrNotElevated is checked first; either
	// signal confirms the mutation was refused.
	if !errors.Is(err, models.ErrNotElevated) && !errors.Is(err, models.ErrUnsupportedSource) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCancelMissingPlan(t *testing.T) {
	svc := newTestService(t)
	err := svc.Cancel(context.Background(), "run:hkcu run:missing")
	if !errors.Is(err, models.ErrDelayPlanNotFound) {
		t.Errorf("expected ErrDelayPlanNotFound, got %v", err)
	}
}
