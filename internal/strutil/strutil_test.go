package strutil

import "testing"

func TestKebabCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"myProperty", "my-property"},
		{"MyWidget", "my-widget"},
		{"HTMLElement", "html-element"},
		{"already-kebab", "already-kebab"},
		{"snake_case", "snake-case"},
		{"with spaces", "with-spaces"},
		{"ariaLabel2", "aria-label2"},
		{"x", "x"},
		{"", ""},
	}

	for _, tc := range tests {
		if got := KebabCase(tc.input); got != tc.expected {
			t.Errorf("KebabCase(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

func TestPascalCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"value-change", "ValueChange"},
		{"ready", "Ready"},
		{"snake_case", "SnakeCase"},
		{"alreadyCamel", "AlreadyCamel"},
		{"", ""},
	}

	for _, tc := range tests {
		if got := PascalCase(tc.input); got != tc.expected {
			t.Errorf("PascalCase(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}
