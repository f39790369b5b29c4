// Package delay implements the Delay Service: deferring a startup entry's
// launch to a fixed delay after logon instead of disabling it outright, by
// registering a logon-triggered scheduled task that runs the original command and
// then disabling the original entry via the Control Service.
package delay

import (
	"context"
	"fmt"
	"time"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/constants"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/platform"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/startup/catalog"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/startup/control"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/util/sanitize"
)

// Service registers and persists delay plans, and disables the original
// entry via an injected Control Service once registration succeeds.
type Service struct {
	plans   *catalog.DelayPlanCatalog
	control *control.Service
}

// NewService builds a Delay Service backed by plans, dispatching the
// original-entry disable step through control.
func NewService(plans *catalog.DelayPlanCatalog, control *control.Service) *Service {
	return &Service{plans: plans, control: control}
}

// Delay registers a logon-triggered task that launches item's command after
// duration (clamped to [constants.MinDelayDuration, constants.MaxDelayDuration]),
// disables item via the Control Service, and persists the resulting plan.
func (s *Service) Delay(ctx context.Context, item models.StartupItem, duration time.Duration) (models.StartupDelayPlan, error) {
	if !platform.IsElevated() {
		return models.StartupDelayPlan{}, models.ErrNotElevated
	}

	switch item.SourceKind {
	case models.SourceRunKey, models.SourceRunOnce, models.SourceStartupFolder:
		// eligible
	default:
		return models.StartupDelayPlan{}, fmt.Errorf("%s: %w", item.SourceKind, models.ErrUnsupportedSource)
	}
	if item.UserContext != models.UserContextCurrentUser {
		return models.StartupDelayPlan{}, fmt.Errorf("machine-scope entry: %w", models.ErrUnsupportedSource)
	}

	duration = clamp(duration)

	taskPath := constants.DelayTaskFolder + `\` + sanitize.Filename(item.ID)
	delaySeconds := int(duration.Round(time.Second) / time.Second)

	if err := platform.RegisterDelayedTask(ctx, taskPath, item.ExecutablePath, item.Arguments, delaySeconds); err != nil {
		return models.StartupDelayPlan{}, fmt.Errorf("register delayed task: %w", err)
	}

	if _, err := s.control.Disable(ctx, item); err != nil {
		// Roll back the task registration so a failed disable doesn't leave
		// both the original entry and the delayed replacement active.
		_ = platform.DeleteTask(ctx, taskPath)
		return models.StartupDelayPlan{}, fmt.Errorf("disable original entry: %w", err)
	}

	plan := models.StartupDelayPlan{
		ID:                  item.ID,
		SourceKind:          item.SourceKind,
		ReplacementTaskPath: taskPath,
		Delay:               duration,
		CreatedAt:           time.Now().UTC(),
	}

	if err := s.plans.Save(plan); err != nil {
		return plan, fmt.Errorf("save delay plan: %w", err)
	}

	return plan, nil
}

// Cancel removes a previously-registered delay plan's task and the plan
// record itself, without re-enabling the original entry (the caller decides
// whether to also call the Control Service's Enable).
func (s *Service) Cancel(ctx context.Context, id string) error {
	plan, ok := s.plans.Get(id)
	if !ok {
		return fmt.Errorf("%s: %w", id, models.ErrDelayPlanNotFound)
	}
	if err := platform.DeleteTask(ctx, plan.ReplacementTaskPath); err != nil {
		return fmt.Errorf("delete delayed task: %w", err)
	}
	return s.plans.Remove(id)
}

func clamp(d time.Duration) time.Duration {
	if d < constants.MinDelayDuration {
		return constants.MinDelayDuration
	}
	if d > constants.MaxDelayDuration {
		return constants.MaxDelayDuration
	}
	return d
}
