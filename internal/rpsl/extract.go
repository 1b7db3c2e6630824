package rpsl

import (
	"fmt"
	"strings"

	"rpslkit/internal/diagnostic"
	"rpslkit/internal/schema"
)

// isContinuation reports whether line continues the previous attribute.
func isContinuation(line string) bool {
	switch line[0] {
	case ' ', '+', '\t':
		return true
	default:
		return false
	}
}

// extract tokenizes text into attribute lines. An attribute can only be
// stored once the next start-line is seen, since continuation lines may
// follow it. Structural errors stop extraction; lines read so far are kept.
func (o *Object) extract(text string) {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return
	}

	var (
		pending    *AttributeLine
		valueParts strings.Builder
	)

	flush := func() {
		if pending == nil {
			return
		}

		pending.Value = valueParts.String()
		o.lines = append(o.lines, *pending)
		pending = nil

		valueParts.Reset()
	}

	for i, line := range strings.Split(text, "\n") {
		lineNo := i + 1

		if line == "" {
			flush()
			o.structuralError(lineNo, "", "encountered empty line in the middle of object")

			return
		}

		if isContinuation(line) {
			if pending == nil {
				o.structuralError(lineNo, "", "continuation line without a preceding attribute")
				return
			}

			valueParts.WriteByte('\n')
			valueParts.WriteString(strings.TrimSpace(line[1:]))
			pending.FoldMarkers = append(pending.FoldMarkers, line[0])

			continue
		}

		flush()

		name, value, found := strings.Cut(line, ":")
		name = strings.ToLower(strings.TrimSpace(name))

		if !found || (!o.schema.IsAllowed(name) && !schema.AttributeNamePattern.MatchString(name)) {
			o.structuralError(lineNo, name, fmt.Sprintf("encountered malformed attribute name: [%s]", name))
			return
		}

		pending = &AttributeLine{Name: name}
		valueParts.WriteString(strings.TrimSpace(value))
	}

	flush()
}

func (o *Object) structuralError(line int, attribute, message string) {
	o.messages.AddError(diagnostic.KindStructural, message, attribute, line)
}
