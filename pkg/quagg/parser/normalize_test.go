package parser

import "testing"

func TestNormalizeAnswer(t *testing.T) {
	tests := []struct {
		primary  string
		fallback string
		expected string
	}{
		{"Yes", "x", "Yes"},
		{"None", "x", "x"},
		{"none", "x", "x"},
		{"NONE", "x", "x"},
		{"", "x", "x"},
		{"", "", ""},
		{"None", "", ""},
		{"Nonexistent", "x", "Nonexistent"},
	}

	for _, tt := range tests {
		result := NormalizeAnswer(tt.primary, tt.fallback)
		if result != tt.expected {
			t.Errorf("NormalizeAnswer(%q, %q) = %q, expected %q",
				tt.primary, tt.fallback, result, tt.expected)
		}
	}
}
