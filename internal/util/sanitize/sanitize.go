// Package sanitize cleans up untrusted strings — autorun entry names and
// schtasks.exe CSV output — before they're used in a scheduled-task name or
// logged/rendered.
package sanitize

import (
	"regexp"
	"strings"
)

var invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

// Filename turns an arbitrary autorun entry name into a safe name fragment
// (the Delay Service uses it for the replacement task's name): any
// character Windows rejects in a filename becomes an underscore, and a
// name that sanitizes down to nothing becomes "startup"
// rather than producing an empty or dot-only path.
func Filename(name string) string {
	name = removeInvisibleChars(name)
	name = invalidFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, " .")
	if name == "" {
		return "startup"
	}
	return name
}

// Command removes problematic characters from a raw command line pulled
// from the registry or a task definition before it's displayed.
func Command(cmd string) string {
	if cmd == "" {
		return cmd
	}

	cmd = strings.ReplaceAll(cmd, "\r\n", "\n")
	cmd = strings.ReplaceAll(cmd, "\r", "\n")
	cmd = removeInvisibleChars(cmd)
	cmd = normalizeWhitespace(cmd)

	return strings.TrimSpace(cmd)
}

// removeInvisibleChars removes zero-width and other invisible Unicode characters.
func removeInvisibleChars(s string) string {
	invisibleChars := []string{
		"​", // Zero-width space
		"‌", // Zero-width non-joiner
		"‍", // Zero-width joiner
		string(rune(0xFEFF)), // Zero-width no-break space (BOM)
		"­", // Soft hyphen
		"⁠", // Word joiner
		"᠎", // Mongolian vowel separator
	}

	for _, char := range invisibleChars {
		s = strings.ReplaceAll(s, char, "")
	}

	return s
}

// normalizeWhitespace replaces sequences of whitespace with single spaces.
func normalizeWhitespace(s string) string {
	re := regexp.MustCompile(`[ \t]+`)
	s = re.ReplaceAllString(s, " ")

	re = regexp.MustCompile(`\n+`)
	s = re.ReplaceAllString(s, "\n")

	return s
}

// Field sanitizes a general CSV field pulled from schtasks.exe /query /csv output.
func Field(field string) string {
	if field == "" {
		return field
	}

	field = removeInvisibleChars(field)

	return strings.TrimSpace(field)
}
