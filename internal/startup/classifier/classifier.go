// Package classifier implements the Safety Classifier: a pure function over
// a startup item that decides whether it is system-critical and whether it
// is safe to disable, with a short-TTL memoization keyed by item id so a
// repeated classify() call during a single scan or CLI session doesn't
// re-run the same string comparisons.
package classifier

import (
	"strings"
	"sync"
	"time"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/constants"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
)

// Verdict is the classifier's result for one item.
type Verdict struct {
	IsSystemCritical bool
	IsSafeToDisable  bool
}

type memoEntry struct {
	verdict   Verdict
	expiresAt time.Time
}

// store is a process-level singleton memoizing verdicts by normalized item
// id for constants.ClassifierMemoTTL. Mirrors the rate limiter store's
// singleton-plus-mutex shape: one shared map guarded by one mutex, entries
// recomputed lazily on expiry rather than evicted by a background sweep.
type store struct {
	mu    sync.Mutex
	cache map[string]memoEntry
}

var (
	globalStore     *store
	globalStoreOnce sync.Once
)

func globalClassifierStore() *store {
	globalStoreOnce.Do(func() {
		globalStore = &store{cache: make(map[string]memoEntry)}
	})
	return globalStore
}

// ResetMemo clears all memoized verdicts. Only for use in tests.
func ResetMemo() {
	globalStoreOnce = sync.Once{}
	globalStore = nil
}

// Classify returns the cached verdict for item.ID if it hasn't expired,
// otherwise computes and caches a fresh one.
func Classify(item models.StartupItem) Verdict {
	s := globalClassifierStore()
	key := models.NormalizeID(item.ID)

	s.mu.Lock()
	if entry, ok := s.cache[key]; ok && time.Now().Before(entry.expiresAt) {
		s.mu.Unlock()
		return entry.verdict
	}
	s.mu.Unlock()

	verdict := compute(item)

	s.mu.Lock()
	s.cache[key] = memoEntry{verdict: verdict, expiresAt: time.Now().Add(constants.ClassifierMemoTTL)}
	s.mu.Unlock()

	return verdict
}

// IsSystemCritical reports whether item is system-critical per Classify.
func IsSystemCritical(item models.StartupItem) bool {
	return Classify(item).IsSystemCritical
}

// IsSafeToDisable reports whether item is safe to disable per Classify.
func IsSafeToDisable(item models.StartupItem) bool {
	return Classify(item).IsSafeToDisable
}

func compute(item models.StartupItem) Verdict {
	critical := isCritical(item)
	safe := !critical && isSafe(item)
	return Verdict{IsSystemCritical: critical, IsSafeToDisable: safe}
}

func isCritical(item models.StartupItem) bool {
	switch item.SourceKind {
	case models.SourceWinlogon, models.SourceBootExecute, models.SourceAppInitDLL, models.SourceIFEO:
		return true
	}

	path := strings.ToLower(item.ExecutablePath)

	if underWindowsDirectory(path) {
		return true
	}

	for _, marker := range constants.CriticalInstallPaths {
		if strings.Contains(path, marker) {
			return true
		}
	}

	if item.SourceKind == models.SourceService && item.UserContext == models.UserContextMachine {
		publisher := strings.ToLower(item.Publisher)
		if strings.Contains(publisher, "microsoft") {
			return true
		}
		for _, vendor := range constants.KnownDriverVendors {
			if strings.Contains(publisher, vendor) {
				return true
			}
		}
		for _, marker := range constants.SecurityPathMarkers {
			if strings.Contains(path, marker) {
				return true
			}
		}
	}

	if item.SourceKind == models.SourceScheduledTask && item.UserContext == models.UserContextMachine {
		publisher := strings.ToLower(item.Publisher)
		if strings.Contains(publisher, "microsoft") && underWindowsDirectory(path) {
			return true
		}
	}

	return false
}

func isSafe(item models.StartupItem) bool {
	if item.UserContext != models.UserContextCurrentUser {
		return false
	}

	switch item.SourceKind {
	case models.SourceRunKey, models.SourceRunOnce, models.SourceStartupFolder:
		// eligible
	default:
		return false
	}

	if item.Signature != models.SignatureSignedTrusted {
		return false
	}

	if item.Impact == models.ImpactHigh {
		return false
	}

	path := item.ExecutablePath
	if strings.HasPrefix(path, `\\`) {
		return false
	}
	if underWindowsDirectory(strings.ToLower(path)) {
		return false
	}

	return true
}

func underWindowsDirectory(lowerPath string) bool {
	return strings.Contains(lowerPath, `\windows\`) || strings.HasSuffix(lowerPath, `\windows`)
}
