package classifier

import (
	"testing"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		item       models.StartupItem
		wantCrit   bool
		wantSafe   bool
	}{
		{
			name: "winlogon is always critical",
			item: models.StartupItem{
				ID:         "winlogon:shell",
				SourceKind: models.SourceWinlogon,
			},
			wantCrit: true,
			wantSafe: false,
		},
		{
			name: "executable under windows directory is critical",
			item: models.StartupItem{
				ID:             "run:hkcu run:foo",
				SourceKind:     models.SourceRunKey,
				ExecutablePath: `C:\Windows\System32\foo.exe`,
				UserContext:    models.UserContextCurrentUser,
				Signature:      models.SignatureSignedTrusted,
			},
			wantCrit: true,
			wantSafe: false,
		},
		{
			name: "machine service from known driver vendor is critical",
			item: models.StartupItem{
				ID:             "svc:rtkaudio",
				SourceKind:     models.SourceService,
				UserContext:    models.UserContextMachine,
				Publisher:      "Realtek Semiconductor",
				ExecutablePath: `C:\Program Files\Realtek\Audio\driver.exe`,
			},
			wantCrit: true,
			wantSafe: false,
		},
		{
			name: "current user run key signed trusted low impact is safe",
			item: models.StartupItem{
				ID:             "run:hkcu run:updater",
				SourceKind:     models.SourceRunKey,
				ExecutablePath: `C:\Program Files\App\updater.exe`,
				UserContext:    models.UserContextCurrentUser,
				Signature:      models.SignatureSignedTrusted,
				Impact:         models.ImpactLow,
			},
			wantCrit: false,
			wantSafe: true,
		},
		{
			name: "unsigned run key is not safe",
			item: models.StartupItem{
				ID:             "run:hkcu run:sketchy",
				SourceKind:     models.SourceRunKey,
				ExecutablePath: `C:\Users\bob\AppData\sketchy.exe`,
				UserContext:    models.UserContextCurrentUser,
				Signature:      models.SignatureUnsigned,
				Impact:         models.ImpactLow,
			},
			wantCrit: false,
			wantSafe: false,
		},
		{
			name: "high impact signed trusted run key is not safe",
			item: models.StartupItem{
				ID:             "run:hkcu run:heavy",
				SourceKind:     models.SourceRunKey,
				ExecutablePath: `C:\Program Files\Heavy\heavy.exe`,
				UserContext:    models.UserContextCurrentUser,
				Signature:      models.SignatureSignedTrusted,
				Impact:         models.ImpactHigh,
			},
			wantCrit: false,
			wantSafe: false,
		},
		{
			name: "scheduled task is never safe even if otherwise eligible",
			item: models.StartupItem{
				ID:             "task:\\App\\Updater#0",
				SourceKind:     models.SourceScheduledTask,
				ExecutablePath: `C:\Program Files\App\updater.exe`,
				UserContext:    models.UserContextCurrentUser,
				Signature:      models.SignatureSignedTrusted,
				Impact:         models.ImpactLow,
			},
			wantCrit: false,
			wantSafe: false,
		},
		{
			name: "UNC path is not safe",
			item: models.StartupItem{
				ID:             "run:hkcu run:remote",
				SourceKind:     models.SourceRunKey,
				ExecutablePath: `\\fileserver\share\app.exe`,
				UserContext:    models.UserContextCurrentUser,
				Signature:      models.SignatureSignedTrusted,
				Impact:         models.ImpactLow,
			},
			wantCrit: false,
			wantSafe: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ResetMemo()
			v := Classify(tt.item)
			if v.IsSystemCritical != tt.wantCrit {
				t.Errorf("IsSystemCritical = %v, want %v", v.IsSystemCritical, tt.wantCrit)
			}
			if v.IsSafeToDisable != tt.wantSafe {
				t.Errorf("IsSafeToDisable = %v, want %v", v.IsSafeToDisable, tt.wantSafe)
			}
		})
	}
}

func TestClassifyMemoizes(t *testing.T) {
	ResetMemo()
	item := models.StartupItem{
		ID:             "run:hkcu run:memo",
		SourceKind:     models.SourceRunKey,
		ExecutablePath: `C:\Program Files\App\app.exe`,
		UserContext:    models.UserContextCurrentUser,
		Signature:      models.SignatureSignedTrusted,
		Impact:         models.ImpactLow,
	}

	first := Classify(item)

	// Mutate the item in a way that would change the verdict if recomputed;
	// the memoized entry must still be returned within the TTL window.
	item.Signature = models.SignatureUnsigned
	second := Classify(item)

	if first != second {
		t.Errorf("expected memoized verdict %+v, got %+v", first, second)
	}
}
