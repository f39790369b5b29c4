// Package platform is the adapter layer between the startup engine and the
// Windows APIs it reads and mutates: the registry, Task Scheduler, the
// filesystem, code-signing verification, file version info, shortcut
// resolution, and the packaged-app inventory. Everything platform-specific
// lives behind a `_windows.go`/`_other.go` build-tag pair so the rest of the
// engine compiles (and its pure logic tests run) on any host.
package platform

import "strings"

// SplitCommand parses a raw registry/task command string into an
// executable path and its argument string using the quoted-path rule: a
// value starting with a double quote ends the path at the next quote and
// treats the remainder as arguments; otherwise the path ends at the first
// space.
func SplitCommand(raw string) (exe string, args string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ""
	}

	if raw[0] == '"' {
		if end := strings.Index(raw[1:], `"`); end >= 0 {
			exe = raw[1 : end+1]
			rest := strings.TrimSpace(raw[end+2:])
			return exe, rest
		}
		return strings.Trim(raw, `"`), ""
	}

	if idx := strings.Index(raw, " "); idx >= 0 {
		return raw[:idx], strings.TrimSpace(raw[idx+1:])
	}
	return raw, ""
}

// QuoteIfNeeded wraps exe in double quotes when it contains a space, the
// inverse of SplitCommand's quoted-path rule, for writing a command back to
// the registry or a task action.
func QuoteIfNeeded(exe string) string {
	if strings.ContainsRune(exe, ' ') {
		return `"` + exe + `"`
	}
	return exe
}

// JoinCommand reassembles an executable path and argument string into the
// raw command form SplitCommand would parse back apart.
func JoinCommand(exe, args string) string {
	q := QuoteIfNeeded(exe)
	if args == "" {
		return q
	}
	return q + " " + args
}
