// Package scanner implements the Inventory Scanner: an orchestrator that
// runs 21 source-specific collectors in a fixed order, isolating each
// one's failures into a warning rather than aborting the whole scan, and
// assembles the results into a StartupInventorySnapshot.
package scanner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/platform"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/startup/catalog"
)

// collector produces zero or more items for one autorun source, or an error
// if the whole source is unreadable. Partial failures within a collector
// (e.g. one unreadable value among many) should be swallowed and simply
// omit that entry rather than failing the collector.
type collector struct {
	kind models.SourceKind
	run  func(ctx context.Context, opts models.StartupInventoryOptions, apt *platform.ShortcutApartment) ([]models.StartupItem, error)
}

// Scanner runs the fixed collector pipeline against live OS state.
type Scanner struct {
	delayPlans *catalog.DelayPlanCatalog
}

// NewScanner builds a Scanner that cross-checks delay plans from plans.
func NewScanner(plans *catalog.DelayPlanCatalog) *Scanner {
	return &Scanner{delayPlans: plans}
}

// GetInventory runs every enabled collector in a fixed order and returns the
// resulting snapshot. The only error this returns is ctx.Err(): all other
// collector failures are captured as warnings on the returned snapshot.
func (s *Scanner) GetInventory(ctx context.Context, opts models.StartupInventoryOptions) (models.StartupInventorySnapshot, error) {
	started := time.Now()

	apt, err := platform.InitApartment()
	if err != nil {
		apt = nil // .lnk entries then report the shortcut file itself as the executable
	}
	if apt != nil {
		defer apt.Close()
	}

	pipeline := s.pipeline()

	var items []models.StartupItem
	var warnings []models.CollectorWarning

	for _, c := range pipeline {
		if err := ctx.Err(); err != nil {
			return models.StartupInventorySnapshot{}, err
		}
		if !s.enabled(c.kind, opts) {
			continue
		}

		produced, err := c.run(ctx, opts, apt)
		if err != nil {
			if ctx.Err() != nil {
				return models.StartupInventorySnapshot{}, ctx.Err()
			}
			warnings = append(warnings, models.CollectorWarning{
				SourceKind: c.kind,
				Message:    fmt.Sprintf("%s collector failed: %v", c.kind, err),
			})
			continue
		}

		for _, item := range produced {
			if !opts.IncludeDisabled && !item.IsEnabled {
				continue
			}
			items = append(items, item)
		}
	}

	if opts.IncludeStartupApprovedOrphans {
		if err := ctx.Err(); err != nil {
			return models.StartupInventorySnapshot{}, err
		}
		orphans, err := collectStartupApprovedOrphans(items)
		if err != nil {
			warnings = append(warnings, models.CollectorWarning{
				SourceKind: models.SourceRunKey,
				Message:    fmt.Sprintf("startup-approved orphan collector failed: %v", err),
			})
		} else {
			items = append(items, orphans...)
		}
	}

	warnings = append(warnings, s.delayPlanWarnings(ctx, items)...)

	return models.StartupInventorySnapshot{
		ScanID:      uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Duration:    time.Since(started),
		Items:       items,
		Warnings:    warnings,
	}, nil
}

// pipeline lists every collector in the fixed execution order; orphan
// synthesis and the delay-plan cross-check always run last and are handled
// separately in GetInventory so they can see the full live item set.
func (s *Scanner) pipeline() []collector {
	return []collector{
		{models.SourceRunKey, collectRunFamily},
		{models.SourceStartupFolder, collectStartupFolders},
		{models.SourceScheduledTask, collectLogonTasks},
		{models.SourceService, collectAutostartServices},
		{models.SourcePackagedTask, collectPackagedTasks},
		{models.SourceWinlogon, collectWinlogon},
		{models.SourceActiveSetup, collectActiveSetup},
		{models.SourceShellFolder, collectShellFolders},
		{models.SourceExplorerRun, collectExplorerRun},
		{models.SourceAppInitDLL, collectAppInitDLLs},
		{models.SourceIFEO, collectIFEO},
		{models.SourceBootExecute, collectBootExecute},
		{models.SourcePrintMonitor, collectPrintMonitors},
		{models.SourceLSA, collectLSAPackages},
		{models.SourceBHO, collectBHOs},
		{models.SourceShellExtension, collectShellExtensions},
		{models.SourceProtocolFilter, collectProtocolFilters},
		{models.SourceWinsockLSP, collectWinsockLSPs},
		{models.SourceKnownDLL, collectKnownDLLs},
		{models.SourceSvchostGroup, collectSvchostGroups},
		{models.SourceFontDriver, collectFontDrivers},
	}
}

func (s *Scanner) enabled(kind models.SourceKind, opts models.StartupInventoryOptions) bool {
	switch kind {
	case models.SourceRunKey:
		return opts.IncludeRunKeys || opts.IncludeRunOnce
	case models.SourceStartupFolder:
		return opts.IncludeStartupFolders
	case models.SourceScheduledTask:
		return opts.IncludeScheduledTasks
	case models.SourceService:
		return opts.IncludeServices
	case models.SourcePackagedTask:
		return opts.IncludePackagedApps
	default:
		return opts.IncludeExtended
	}
}

// delayPlanWarnings surfaces (a) plans whose original id reappeared in the
// live set and (b) plans whose replacement task no longer exists.
func (s *Scanner) delayPlanWarnings(ctx context.Context, items []models.StartupItem) []models.CollectorWarning {
	if s.delayPlans == nil {
		return nil
	}

	liveIDs := make(map[string]bool, len(items))
	for _, item := range items {
		liveIDs[models.NormalizeID(item.ID)] = true
	}

	liveTasks, err := platform.ListTasks(ctx)
	if err != nil {
		return nil
	}
	liveTaskPaths := make(map[string]bool, len(liveTasks))
	for _, t := range liveTasks {
		liveTaskPaths[t.Path] = true
	}

	var warnings []models.CollectorWarning
	for _, plan := range s.delayPlans.GetAll() {
		if liveIDs[models.NormalizeID(plan.ID)] {
			warnings = append(warnings, models.CollectorWarning{
				SourceKind: plan.SourceKind,
				Message:    fmt.Sprintf("delay plan %s: original entry reappeared in the live scan", plan.ID),
			})
		}
		if !liveTaskPaths[plan.ReplacementTaskPath] {
			warnings = append(warnings, models.CollectorWarning{
				SourceKind: plan.SourceKind,
				Message:    fmt.Sprintf("delay plan %s: replacement task %s is missing", plan.ID, plan.ReplacementTaskPath),
			})
		}
	}
	return warnings
}
