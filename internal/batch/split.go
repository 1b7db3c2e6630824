package batch

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineSize bounds a single physical line; certif blocks can be long.
const maxLineSize = 1 << 20

// Record is the text of one object cut from a stream.
type Record struct {
	// Index is the 0-based position of the object in the stream.
	Index int
	// StartLine is the 1-based stream line of the object's first line.
	StartLine int
	Text      string
}

// Split cuts r into object records on empty or whitespace-only lines. Lines
// starting with '%' or '#' between objects are server remarks or comments
// and are skipped.
func Split(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		records []Record
		current []string
		start   int
		lineNo  int
	)

	flush := func() {
		if len(current) == 0 {
			return
		}

		records = append(records, Record{
			Index:     len(records),
			StartLine: start,
			Text:      strings.Join(current, "\n"),
		})
		current = nil
	}

	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")

		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		if len(current) == 0 && (line[0] == '%' || line[0] == '#') {
			continue
		}

		if len(current) == 0 {
			start = lineNo
		}

		current = append(current, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read objects: %w", err)
	}

	flush()

	return records, nil
}
