package scanner

import (
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/constants"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
)

// extendedHighImpactKinds default to High impact regardless of file size;
// these are the read-only, high-blast-radius locations a user can't safely
// gauge from file size alone.
var extendedHighImpactKinds = map[models.SourceKind]bool{
	models.SourceWinlogon:    true,
	models.SourceBootExecute: true,
	models.SourceAppInitDLL:  true,
	models.SourceIFEO:        true,
	models.SourceLSA:         true,
	models.SourceWinsockLSP:  true,
	models.SourceKnownDLL:    true,
	models.SourceFontDriver:  true,
}

// classifyImpact computes an item's impact: a per-kind base, then adjusted
// by executable file size, per the rules in the inventory scanner's impact
// classification contract.
func classifyImpact(kind models.SourceKind, machineScope, delayedAutoStart bool, sizeBytes int64, sizeKnown bool) models.Impact {
	if extendedHighImpactKinds[kind] {
		return models.ImpactHigh
	}

	base := baseImpact(kind, machineScope, delayedAutoStart)

	if !sizeKnown {
		return base
	}

	switch {
	case sizeBytes > constants.ImpactHighSizeBytes:
		return models.ImpactHigh
	case sizeBytes > constants.ImpactMediumSizeBytes:
		if base == models.ImpactLow {
			return models.ImpactMedium
		}
		return base
	case sizeBytes < constants.ImpactLowSizeBytes && base == models.ImpactUnknown:
		return models.ImpactLow
	default:
		return base
	}
}

func baseImpact(kind models.SourceKind, machineScope, delayedAutoStart bool) models.Impact {
	switch kind {
	case models.SourceService:
		if delayedAutoStart {
			return models.ImpactMedium
		}
		return models.ImpactHigh
	case models.SourceScheduledTask:
		return models.ImpactMedium
	case models.SourceRunKey:
		if machineScope {
			return models.ImpactMedium
		}
		return models.ImpactLow
	case models.SourceRunOnce, models.SourceStartupFolder, models.SourcePackagedTask:
		return models.ImpactLow
	default:
		return models.ImpactUnknown
	}
}
