package preview

import (
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

const ellipsis = "…"

// wrapText word-wraps s to width, hard-breaking words longer than a line.
func wrapText(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return wrap.String(wordwrap.String(s, width), width)
}

// truncateText shortens a single line to width cells.
func truncateText(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return truncate.StringWithTail(s, uint(width), ellipsis)
}

func truncateLines(s string, width int) string {
	parts := strings.Split(s, "\n")
	for i, line := range parts {
		parts[i] = truncateText(line, width)
	}
	return strings.Join(parts, "\n")
}
