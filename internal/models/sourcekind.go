// Package models defines the normalized entry model shared by every layer of
// the startup inventory engine: the scanner produces StartupItem values, the
// classifier reads them, and the control/delay services consume them to
// perform reversible mutations.
package models

// SourceKind identifies which autorun mechanism produced a StartupItem. The
// zero value is never used by a real collector.
type SourceKind string

const (
	SourceRunKey           SourceKind = "RunKey"
	SourceRunOnce          SourceKind = "RunOnce"
	SourceStartupFolder    SourceKind = "StartupFolder"
	SourceScheduledTask    SourceKind = "ScheduledTask"
	SourceService          SourceKind = "Service"
	SourcePackagedTask     SourceKind = "PackagedTask"
	SourceWinlogon         SourceKind = "Winlogon"
	SourceActiveSetup      SourceKind = "ActiveSetup"
	SourceShellFolder      SourceKind = "ShellFolder"
	SourceExplorerRun      SourceKind = "ExplorerRun"
	SourceAppInitDLL       SourceKind = "AppInitDll"
	SourceIFEO             SourceKind = "ImageFileExecutionOptions"
	SourceBootExecute      SourceKind = "BootExecute"
	SourcePrintMonitor     SourceKind = "PrintMonitor"
	SourceLSA              SourceKind = "LsaPackage"
	SourceBHO              SourceKind = "Bho"
	SourceShellExtension   SourceKind = "ShellExtension"
	SourceProtocolFilter   SourceKind = "ProtocolFilter"
	SourceWinsockLSP       SourceKind = "WinsockLsp"
	SourceKnownDLL         SourceKind = "KnownDll"
	SourceSvchostGroup     SourceKind = "SvchostGroup"
	SourceFontDriver       SourceKind = "FontDriver"
)

// RequiresStartupApproved reports whether entries of this kind carry a
// companion StartupApproved enable/disable byte (RunKey, RunOnce and
// StartupFolder do). It goes by kind only: RunServices/RunServicesOnce
// values are also SourceRunKey/SourceRunOnce, and their exclusion is made
// per item by StartupItem.UsesStartupApprovedCompanion.
func (k SourceKind) RequiresStartupApproved() bool {
	switch k {
	case SourceRunKey, SourceRunOnce, SourceStartupFolder:
		return true
	default:
		return false
	}
}

// Mutable reports whether the Control Service implements a reversible
// protocol for this kind. Everything else is surfaced by the scanner for
// visibility only.
func (k SourceKind) Mutable() bool {
	switch k {
	case SourceRunKey, SourceRunOnce, SourceStartupFolder, SourceScheduledTask,
		SourceService, SourcePackagedTask:
		return true
	default:
		return false
	}
}
