package models

import "errors"

// Sentinel errors of the platform, control, and delay layers. Each
// one is independent of the underlying Win32/registry error so callers can
// branch on it with errors.Is regardless of what produced it.
var (
	// ErrNotElevated is returned by every Control Service Disable/Enable and
	// Delay Service Delay call when the process token is not elevated,
	// whatever the entry's scope.
	ErrNotElevated = errors.New("operation requires an elevated process")

	// ErrInvalidEntry denotes an item id that doesn't parse into a
	// recognized source kind, or fields inconsistent with that kind. No
	// function in this module returns it.
	ErrInvalidEntry = errors.New("entry id is not valid for its source kind")

	// ErrLiveNotFound denotes a mutation target that no longer exists at its
	// recorded location (it was removed outside of this engine since the
	// last scan). No function in this module returns it.
	ErrLiveNotFound = errors.New("entry no longer exists at its recorded location")

	// ErrUnsupportedSource is returned by the Control and Delay Services for
	// any SourceKind whose Mutable() is false.
	ErrUnsupportedSource = errors.New("source kind does not support mutation")

	// ErrPlatform denotes an underlying OS/registry/syscall failure that isn't
	// one of the above well-known conditions. No function in this module
	// returns or wraps it; platform failures are wrapped with fmt.Errorf.
	ErrPlatform = errors.New("platform operation failed")

	// ErrBackupNotFound denotes a restore for a backup id the catalog
	// doesn't have. No function in this module returns it: the Control
	// Service's Enable proceeds with a nil backup instead.
	ErrBackupNotFound = errors.New("backup not found")

	// ErrDelayOutOfRange denotes a requested delay duration outside the
	// Delay Service's clamp. No function in this module returns it: the
	// Delay Service clamps the duration into range instead.
	ErrDelayOutOfRange = errors.New("delay duration out of allowed range")

	// ErrDelayPlanNotFound is returned when a cancel/restore is requested for
	// a delay plan id the catalog doesn't have.
	ErrDelayPlanNotFound = errors.New("delay plan not found")
)
