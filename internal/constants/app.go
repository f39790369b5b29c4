// Package constants centralizes the tunables and well-known names the
// startup inventory engine needs in more than one package, per the design
// rule that the publisher/path/driver/security word-lists and timing
// constants live in exactly one place instead of being copy-pasted across
// collectors and the classifier.
package constants

import "time"

// Product identity used to namespace on-disk state and scheduled tasks.
const (
	ProductName     = "TidyWindow"
	CatalogDirName  = "StartupBackups"
	DelayTaskFolder = `\TidyWindow\DelayedStartup`
)

// StartupApproved binary blob layout. Byte 0 carries the enable flag; the
// remaining 11 bytes are reserved and must not be interpreted on read.
const (
	ApprovedBlobSize     = 12
	ApprovedByteEnabled  = byte(2)
	ApprovedByteDisabled = byte(3)
)

// Delay Service duration clamp.
const (
	MinDelayDuration = 15 * time.Second
	MaxDelayDuration = 10 * time.Minute
)

// Classifier memoization TTL.
const ClassifierMemoTTL = 5 * time.Minute

// Impact size thresholds (applied after the per-kind base impact).
const (
	ImpactHighSizeBytes   = 80 * 1024 * 1024
	ImpactMediumSizeBytes = 20 * 1024 * 1024
	ImpactLowSizeBytes    = 2 * 1024 * 1024
)

// KnownDriverVendors are publishers whose machine-scope services are treated
// as system-critical even when they aren't Microsoft's own.
var KnownDriverVendors = []string{
	"intel", "amd", "nvidia", "realtek", "qualcomm", "mediatek",
}

// SecurityPathMarkers flag a service/executable path as security tooling,
// which the classifier refuses to mark safe-to-disable.
var SecurityPathMarkers = []string{
	"defender", "security", "antimal", "msmpeng", "sense",
}

// CriticalInstallPaths are path fragments (case-insensitive, already
// lower-cased) under which any entry is treated as system-critical.
var CriticalInstallPaths = []string{
	`\program files\windows defender`,
	`\program files\windows security`,
	`\program files\common files\microsoft shared`,
}

// KnownWindowsPrintMonitors ships with every Windows install and is skipped
// by the Print Monitors collector.
var KnownWindowsPrintMonitors = []string{
	"BJ Language Monitor", "LPR Port", "Local Port", "Microsoft Shared Fax Monitor",
	"PJL Language Monitor", "Standard TCP/IP Port", "USB Monitor", "WSD Port",
}

// KnownLSAPackages ship with Windows and are skipped by the LSA collector;
// anything else registered under these lists is a third-party addition
// worth surfacing.
var KnownLSAPackages = []string{
	"msv1_0", "kerberos", "schannel", "wdigest", "tspkg", "pku2u", "cloudap", "negoexts", "rassfm",
}

// KnownSvchostGroups ship with Windows and are skipped by the svchost group
// collector.
var KnownSvchostGroups = []string{
	"netsvcs", "localservice", "localservicenetworkrestricted", "localservicenonetwork",
	"networkservice", "localsystemnetworkrestricted",
}

// KnownSafeDLLs are entries in the KnownDLLs key that ship with Windows.
var KnownSafeDLLs = []string{
	"kernel32.dll", "user32.dll", "gdi32.dll", "advapi32.dll", "ntdll.dll",
	"comctl32.dll", "comdlg32.dll", "shell32.dll", "ole32.dll", "oleaut32.dll",
	"msvcrt.dll", "rpcrt4.dll", "sechost.dll", "combase.dll",
}

// DefaultWinlogonShell is the stock Explorer shell; the Winlogon collector
// skips it so it only surfaces hijacked values.
const DefaultWinlogonShell = "explorer.exe"
