package scanner

import "testing"

func TestServiceAutostartClass(t *testing.T) {
	cases := []struct {
		start uint64
		want  bool
	}{
		{0, false}, // Boot
		{1, false}, // System
		{2, true},  // Automatic
		{3, false}, // Manual
		{4, true},  // Disabled - this engine's own disable leaves Start=4
	}

	for _, tc := range cases {
		if got := serviceAutostartClass(tc.start); got != tc.want {
			t.Errorf("serviceAutostartClass(%d) = %v, want %v", tc.start, got, tc.want)
		}
	}
}
