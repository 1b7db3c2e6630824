package rpsl

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "AS65000", "AS65000"},
		{"surrounding whitespace", "  AS65000 \t", "AS65000"},
		{"trailing comment", "AS65000 # origin", "AS65000"},
		{"only comment", "# nothing", ""},
		{"empty", "", ""},
		{"single line keeps commas", "a, b,", "a, b,"},
		{"folded range with comments", "192.0.2.0 #c1\n- #c2\n192.0.2.1 #c3", "192.0.2.0,-,192.0.2.1"},
		{"folded list with commas", "AS1,\n, AS2 ,\nAS3", "AS1,AS2,AS3"},
		{"folded empty lines dropped", "first\n\n# comment only\n \nlast", "first,last"},
		{"folded first line empty", "\nvalue", "value"},
		{"folded all empty", "\n#x\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.input)
			if result != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
