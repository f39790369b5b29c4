package models

// StartupInventoryOptions toggles which collectors a scan runs. All fields
// default to true (the zero value of StartupInventoryOptions is therefore
// "skip everything"; callers should start from DefaultInventoryOptions()).
type StartupInventoryOptions struct {
	IncludeRunKeys               bool
	IncludeRunOnce               bool
	IncludeStartupFolders        bool
	IncludeScheduledTasks        bool
	IncludeServices              bool
	IncludePackagedApps          bool
	IncludeDisabled              bool
	IncludeStartupApprovedOrphans bool

	// IncludeExtended additionally runs the sixteen read-only high-impact
	// collectors (AppInit DLLs, IFEO, BootExecute, print monitors, LSA
	// packages, BHOs, shell extensions, protocol filters, Winsock LSPs,
	// known DLLs, svchost groups, font drivers, Winlogon, Active Setup,
	// shell folder redirections, Explorer policy Run).
	IncludeExtended bool
}

// DefaultInventoryOptions returns every toggle enabled, which is the
// engine's default scan.
func DefaultInventoryOptions() StartupInventoryOptions {
	return StartupInventoryOptions{
		IncludeRunKeys:                true,
		IncludeRunOnce:                true,
		IncludeStartupFolders:         true,
		IncludeScheduledTasks:         true,
		IncludeServices:               true,
		IncludePackagedApps:           true,
		IncludeDisabled:               true,
		IncludeStartupApprovedOrphans: true,
		IncludeExtended:               true,
	}
}
