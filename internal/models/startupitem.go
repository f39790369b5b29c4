package models

import (
	"fmt"
	"strings"
	"time"
)

// SignatureStatus is the verdict the platform adapter's Authenticode check
// returns for an entry's executable.
type SignatureStatus string

const (
	SignatureUnknown       SignatureStatus = "Unknown"
	SignatureUnsigned      SignatureStatus = "Unsigned"
	SignatureSigned        SignatureStatus = "Signed"
	SignatureSignedTrusted SignatureStatus = "SignedTrusted"
)

// Impact is the engine's coarse estimate of boot/logon cost.
type Impact string

const (
	ImpactUnknown Impact = "Unknown"
	ImpactLow     Impact = "Low"
	ImpactMedium  Impact = "Medium"
	ImpactHigh    Impact = "High"
)

// UserContext is either one of the two well-known constants or an explicit
// principal name (e.g. a secondary user's account name in a multi-user
// Packaged Task scan).
type UserContext string

const (
	UserContextCurrentUser UserContext = "CurrentUser"
	UserContextMachine     UserContext = "Machine"
)

// StartupItem is the normalized autorun entry produced by every collector.
// Identity (Id) is deterministic for the same underlying entry across
// rescans and is independent of enabled-state and file metadata.
type StartupItem struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	SourceTag      string          `json:"sourceTag"`
	SourceKind     SourceKind      `json:"sourceKind"`
	ExecutablePath string          `json:"executablePath"`
	Arguments      string          `json:"arguments,omitempty"`
	RawCommand     string          `json:"rawCommand,omitempty"`
	IsEnabled      bool            `json:"isEnabled"`
	EntryLocation  string          `json:"entryLocation"`
	Publisher      string          `json:"publisher,omitempty"`
	Signature      SignatureStatus `json:"signatureStatus"`
	Impact         Impact          `json:"impact"`
	FileSizeBytes  int64           `json:"fileSizeBytes,omitempty"`
	LastModified   time.Time       `json:"lastModifiedUtc,omitempty"`
	UserContext    UserContext     `json:"userContext"`
}

// NormalizeID lower-cases an id so lookups are case-insensitive without
// mutating the display casing carried elsewhere on the item.
func NormalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// UsesStartupApprovedCompanion reports whether this entry's disable/enable
// protocol goes through the StartupApproved binary blob rather than
// deleting/recreating the value outright. RunServices and RunServicesOnce
// entries predate the Explorer approval protocol and are tagged as such in
// SourceTag, so they're excluded even though their SourceKind is RunKey.
func (i StartupItem) UsesStartupApprovedCompanion() bool {
	if !i.SourceKind.RequiresStartupApproved() {
		return false
	}
	if i.SourceKind == SourceRunKey || i.SourceKind == SourceRunOnce {
		tag := strings.ToLower(i.SourceTag)
		return !strings.Contains(tag, "runservices")
	}
	return true
}

// RunKeyID builds the id for a Run/RunOnce/RunServices/RunServicesOnce
// value: run:<tag>:<name>.
func RunKeyID(tag, name string) string {
	return fmt.Sprintf("run:%s:%s", tag, name)
}

// StartupFolderID builds the id for a startup-folder file entry.
func StartupFolderID(tag, filename string) string {
	return fmt.Sprintf("startup:%s:%s", tag, filename)
}

// ScheduledTaskID builds the id for one exec action of a logon-triggered
// scheduled task.
func ScheduledTaskID(taskPath string, actionIndex int) string {
	return fmt.Sprintf("task:%s#%d", taskPath, actionIndex)
}

// ServiceID builds the id for an autostart service.
func ServiceID(serviceName string) string {
	return fmt.Sprintf("svc:%s", serviceName)
}

// PackagedTaskID builds the id for a packaged app's startup task.
func PackagedTaskID(familyName, taskID string) string {
	return fmt.Sprintf("appx:%s!%s", familyName, taskID)
}

// WinlogonID, ActiveSetupID, ShellFolderID, ExplorerRunID, AppInitID, IFEOID,
// BootExecuteID, PrintMonitorID, LSAID, BHOID, ShellExtID, ProtocolFilterID,
// WinsockID, KnownDLLID, SvchostGroupID and FontDriverID build ids for the
// extended (high-impact, read-only) collectors.
func WinlogonID(valueName string) string     { return fmt.Sprintf("winlogon:%s", valueName) }
func ActiveSetupID(clsid string) string      { return fmt.Sprintf("activesetup:%s", clsid) }
func ShellFolderID(valueName string) string  { return fmt.Sprintf("shellfolder:%s", valueName) }
func ExplorerRunID(valueName string) string  { return fmt.Sprintf("explorer:%s", valueName) }
func AppInitID(path string, index int) string { return fmt.Sprintf("appinit:%s#%d", path, index) }
func IFEOID(image string) string             { return fmt.Sprintf("ifeo:%s", image) }
func BootExecuteID(index int) string         { return fmt.Sprintf("bootexec:%d", index) }
func PrintMonitorID(name string) string      { return fmt.Sprintf("printmon:%s", name) }
func LSAID(listName, pkg string) string      { return fmt.Sprintf("lsa:%s:%s", listName, pkg) }
func BHOID(clsid string) string              { return fmt.Sprintf("bho:%s", clsid) }
func ShellExtID(clsid string) string         { return fmt.Sprintf("shellext:%s", clsid) }
func ProtocolFilterID(name string) string    { return fmt.Sprintf("protocolfilter:%s", name) }
func WinsockID(id string) string             { return fmt.Sprintf("winsock:%s", id) }
func KnownDLLID(name string) string          { return fmt.Sprintf("knowndll:%s", name) }
func SvchostGroupID(name string) string      { return fmt.Sprintf("svchostgroup:%s", name) }
func FontDriverID(name string) string        { return fmt.Sprintf("fontdriver:%s", name) }
