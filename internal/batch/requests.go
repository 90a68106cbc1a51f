package batch

import (
	"strings"
)

// ParseRequests splits a free-text block into one request per line.
// A block with no visible content yields no requests. Blank lines inside the
// block are kept, as are duplicates; order is preserved.
func ParseRequests(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}
