package cli

import (
	"testing"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is a long string", 10, "this is..."},
		{"abcdef", 2, "ab"},
	}

	for _, tc := range cases {
		if got := truncate(tc.in, tc.width); got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}

func TestFilterBySourceKind(t *testing.T) {
	items := []models.StartupItem{
		{Name: "a", SourceKind: models.SourceRunKey},
		{Name: "b", SourceKind: models.SourceService},
		{Name: "c", SourceKind: models.SourceRunKey},
	}

	got := filterBySourceKind(items, "runkey")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].Name != "a" || got[1].Name != "c" {
		t.Errorf("unexpected filtered items: %+v", got)
	}

	if got := filterBySourceKind(items, "Service"); len(got) != 1 {
		t.Errorf("expected 1 match for Service, got %d", len(got))
	}
}
