package rpsl

import (
	"strings"
)

// AttributeTextWidth is the column at which values start.
const AttributeTextWidth = 16

// Render returns the object as RPSL text, one line per physical value line.
// Fold markers are written back as they were read; continuation lines are
// padded to the value column.
func (o *Object) Render() string {
	var b strings.Builder
	for _, l := range o.lines {
		l.render(&b)
	}

	return b.String()
}

func (a AttributeLine) render(b *strings.Builder) {
	if a.Value == "" {
		b.WriteString(a.Name)
		b.WriteString(":\n")

		return
	}

	label := a.Name + ":"
	padding := strings.Repeat(" ", max(AttributeTextWidth-len(label), 0))
	continuationPadding := strings.Repeat(" ", AttributeTextWidth-1)

	for idx, part := range a.PhysicalLines() {
		if idx == 0 {
			b.WriteString(label)
			b.WriteString(padding)
		} else {
			b.WriteByte(a.marker(idx - 1))
			b.WriteString(continuationPadding)
		}

		b.WriteString(part)
		b.WriteByte('\n')
	}
}

// marker returns the fold marker of the i-th continuation line. Lines built
// without markers continue with a space.
func (a AttributeLine) marker(i int) byte {
	if i < len(a.FoldMarkers) {
		return a.FoldMarkers[i]
	}

	return ' '
}
