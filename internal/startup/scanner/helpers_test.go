package scanner

import "testing"

func TestIsKnownName(t *testing.T) {
	known := []string{"Local Port", "USB Monitor"}

	if !isKnownName("local port", known) {
		t.Error("expected case-insensitive match")
	}
	if isKnownName("Some Third Party Monitor", known) {
		t.Error("expected no match")
	}
}

func TestIsMicrosoftPublisher(t *testing.T) {
	cases := []struct {
		publisher string
		want      bool
	}{
		{"Microsoft Corporation", true},
		{"microsoft windows", true},
		{"", false},
		{"Acme Software Inc.", false},
	}

	for _, tc := range cases {
		if got := isMicrosoftPublisher(tc.publisher); got != tc.want {
			t.Errorf("isMicrosoftPublisher(%q) = %v, want %v", tc.publisher, got, tc.want)
		}
	}
}
