package sanitize

import "testing"

func TestCommand(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Windows line endings (CRLF)",
			input:    "command1\r\ncommand2",
			expected: "command1\ncommand2",
		},
		{
			name:     "Mac line endings (CR)",
			input:    "command1\rcommand2",
			expected: "command1\ncommand2",
		},
		{
			name:     "Zero-width space",
			input:    "command\u200Bwith\u200Bzero",
			expected: "commandwithzero",
		},
		{
			name:     "Zero-width non-joiner",
			input:    "test\u200Ccommand",
			expected: "testcommand",
		},
		{
			name:     "Zero-width joiner",
			input:    "test\u200Dcommand",
			expected: "testcommand",
		},
		{
			name:     "BOM (zero-width no-break space)",
			input:    "\uFEFFcommand",
			expected: "command",
		},
		{
			name:     "Soft hyphen",
			input:    "test\u00ADcommand",
			expected: "testcommand",
		},
		{
			name:     "Multiple spaces",
			input:    "command  with   many    spaces",
			expected: "command with many spaces",
		},
		{
			name:     "Multiple tabs",
			input:    "command\t\t\twith\t\ttabs",
			expected: "command with tabs",
		},
		{
			name:     "Trim leading whitespace",
			input:    "   command",
			expected: "command",
		},
		{
			name:     "Trim trailing whitespace",
			input:    "command   ",
			expected: "command",
		},
		{
			name:     "Trim both",
			input:    "  command  ",
			expected: "command",
		},
		{
			name:     "Multiple newlines",
			input:    "line1\n\n\nline2",
			expected: "line1\nline2",
		},
		{
			name:     "Combined issues",
			input:    "  C:\\app.exe\r\n  --flag  value  ",
			expected: "C:\\app.exe\n --flag value",
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "Only whitespace",
			input:    "   \t\t   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Command(tt.input)
			if result != tt.expected {
				t.Errorf("Command() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestField(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Normal field",
			input:    "TaskName",
			expected: "TaskName",
		},
		{
			name:     "Field with whitespace",
			input:    "  TaskName  ",
			expected: "TaskName",
		},
		{
			name:     "Field with invisible chars",
			input:    "Task\u200BName",
			expected: "TaskName",
		},
		{
			name:     "Empty field",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Field(tt.input)
			if result != tt.expected {
				t.Errorf("Field() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain name passes through",
			input:    "OneDrive",
			expected: "OneDrive",
		},
		{
			name:     "colon and backslash replaced",
			input:    `Adobe: Updater\Service`,
			expected: "Adobe_ Updater_Service",
		},
		{
			name:     "wildcard and quote replaced",
			input:    `weird"name*here?`,
			expected: "weird_name_here_",
		},
		{
			name:     "trailing dot trimmed",
			input:    "trailing.dot.",
			expected: "trailing.dot",
		},
		{
			name:     "entirely invalid collapses to fallback",
			input:    `***`,
			expected: "startup",
		},
		{
			name:     "empty collapses to fallback",
			input:    "",
			expected: "startup",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Filename(tt.input)
			if result != tt.expected {
				t.Errorf("Filename(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestRemoveInvisibleChars(t *testing.T) {
	input := "\u200B\u200C\u200D\uFEFF\u00ADtest\u2060\u180E"
	expected := "test"
	result := removeInvisibleChars(input)
	if result != expected {
		t.Errorf("removeInvisibleChars() = %q, want %q", result, expected)
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Multiple spaces",
			input:    "a    b    c",
			expected: "a b c",
		},
		{
			name:     "Mixed spaces and tabs",
			input:    "a \t  \t b",
			expected: "a b",
		},
		{
			name:     "Multiple newlines",
			input:    "line1\n\n\n\nline2",
			expected: "line1\nline2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := normalizeWhitespace(tt.input)
			if result != tt.expected {
				t.Errorf("normalizeWhitespace() = %q, want %q", result, tt.expected)
			}
		})
	}
}
