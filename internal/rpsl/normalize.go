package rpsl

import (
	"strings"
	"unicode"
)

// Normalize reduces an attribute value to its significant parts.
//
// A single-line value loses its comment and surrounding whitespace. For a
// folded value every physical line loses its comment, whitespace and
// leading or trailing commas; empty lines are dropped and the rest joined
// with ",". So
//
//	192.0.2.0 # first
//	- # separator
//	192.0.2.1
//
// becomes "192.0.2.0,-,192.0.2.1".
func Normalize(value string) string {
	if !strings.Contains(value, "\n") {
		return strings.TrimSpace(stripComment(value))
	}

	lines := strings.Split(value, "\n")
	kept := make([]string, 0, len(lines))

	for _, line := range lines {
		cleaned := strings.TrimFunc(stripComment(line), isSpaceOrComma)
		if cleaned != "" {
			kept = append(kept, cleaned)
		}
	}

	return strings.Join(kept, ",")
}

func stripComment(s string) string {
	before, _, _ := strings.Cut(s, "#")
	return before
}

func isSpaceOrComma(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}
