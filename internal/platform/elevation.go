package platform

import "github.com/Cosmos-0118/TidyWindow-sub010/internal/elevation"

// IsElevated reports whether the current process can write to HKLM,
// machine services, and machine-scope scheduled tasks.
func IsElevated() bool {
	return elevation.IsElevated()
}
