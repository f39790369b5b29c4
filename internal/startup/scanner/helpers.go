package scanner

import "strings"

// isKnownName reports whether name matches one of the known entries
// case-insensitively. Used by the extended collectors to filter out the
// stock lists Windows ships with, so only third-party additions surface.
func isKnownName(name string, known []string) bool {
	for _, k := range known {
		if strings.EqualFold(name, k) {
			return true
		}
	}
	return false
}

// isMicrosoftPublisher reports whether a publisher string (the CompanyName
// from a file's version resource, via platform.StatFile) names Microsoft. Collectors that walk system-wide extension points
// (shell extensions, Winsock LSPs, KnownDLLs, font drivers) use this to
// suppress Microsoft's own stock entries and keep only third-party ones.
func isMicrosoftPublisher(publisher string) bool {
	p := strings.ToLower(publisher)
	return strings.Contains(p, "microsoft corporation") || strings.Contains(p, "microsoft windows")
}
