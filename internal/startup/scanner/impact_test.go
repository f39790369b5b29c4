package scanner

import (
	"testing"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/constants"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
)

func TestBaseImpact(t *testing.T) {
	cases := []struct {
		name             string
		kind             models.SourceKind
		machineScope     bool
		delayedAutoStart bool
		want             models.Impact
	}{
		{"service auto start", models.SourceService, true, false, models.ImpactHigh},
		{"service delayed auto start", models.SourceService, true, true, models.ImpactMedium},
		{"scheduled task", models.SourceScheduledTask, true, false, models.ImpactMedium},
		{"machine run key", models.SourceRunKey, true, false, models.ImpactMedium},
		{"user run key", models.SourceRunKey, false, false, models.ImpactLow},
		{"run once", models.SourceRunOnce, false, false, models.ImpactLow},
		{"startup folder", models.SourceStartupFolder, false, false, models.ImpactLow},
		{"packaged task", models.SourcePackagedTask, false, false, models.ImpactLow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := baseImpact(tc.kind, tc.machineScope, tc.delayedAutoStart)
			if got != tc.want {
				t.Errorf("baseImpact(%v, %v, %v) = %v, want %v", tc.kind, tc.machineScope, tc.delayedAutoStart, got, tc.want)
			}
		})
	}
}

func TestClassifyImpactForcesHighForExtendedKinds(t *testing.T) {
	for kind := range extendedHighImpactKinds {
		got := classifyImpact(kind, false, false, 1, true)
		if got != models.ImpactHigh {
			t.Errorf("classifyImpact(%v) = %v, want High regardless of size", kind, got)
		}
	}
}

func TestClassifyImpactSizeAdjustment(t *testing.T) {
	cases := []struct {
		name      string
		kind      models.SourceKind
		sizeBytes int64
		sizeKnown bool
		want      models.Impact
	}{
		{"unknown size keeps base", models.SourceRunKey, 0, false, models.ImpactLow},
		{"huge file forces high", models.SourceRunKey, constants.ImpactHighSizeBytes + 1, true, models.ImpactHigh},
		{"medium file bumps low base to medium", models.SourceRunKey, constants.ImpactMediumSizeBytes + 1, true, models.ImpactMedium},
		{"medium file leaves non-low base alone", models.SourceService, constants.ImpactMediumSizeBytes + 1, true, models.ImpactHigh},
		{"tiny file with unknown base becomes low", models.SourceExplorerRun, constants.ImpactLowSizeBytes - 1, true, models.ImpactLow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classifyImpact(tc.kind, false, false, tc.sizeBytes, tc.sizeKnown)
			if got != tc.want {
				t.Errorf("classifyImpact(%v, size=%d, known=%v) = %v, want %v", tc.kind, tc.sizeBytes, tc.sizeKnown, got, tc.want)
			}
		})
	}
}
