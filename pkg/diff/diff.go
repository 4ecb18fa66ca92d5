package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	contextLines    = 3
	truncateMessage = "... (diff truncated, exceeded 10,000 lines)"
)

type lineOp struct {
	kind byte
	text string
}

// GenerateUnifiedDiff generates a unified diff comparing expected and actual
// content line by line. Identical input yields an empty string. Diffs
// exceeding 10,000 lines are truncated with a marker.
func GenerateUnifiedDiff(expected, actual []byte, expectedLabel, actualLabel string) string {
	if string(expected) == string(actual) {
		return ""
	}

	ops := lineOps(string(expected), string(actual))

	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n", expectedLabel)
	fmt.Fprintf(&buf, "+++ %s\n", actualLabel)
	for _, h := range hunks(ops) {
		writeHunk(&buf, ops, h)
	}

	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		truncated := strings.Join(lines[:maxDiffLines], "\n")
		return truncated + "\n" + truncateMessage + "\n"
	}
	return result
}

// lineOps runs a line-mode diff and flattens it into one op per line.
func lineOps(expected, actual string) []lineOp {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(expected, actual)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	ops := make([]lineOp, 0, len(diffs))
	for _, d := range diffs {
		var kind byte
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			kind = '-'
		case diffmatchpatch.DiffInsert:
			kind = '+'
		default:
			kind = ' '
		}
		for _, line := range splitLines(d.Text) {
			ops = append(ops, lineOp{kind: kind, text: line})
		}
	}
	return ops
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

type hunk struct {
	start, end int
}

// hunks groups changed lines with up to contextLines of surrounding context,
// merging groups whose context overlaps.
func hunks(ops []lineOp) []hunk {
	var out []hunk
	for i, op := range ops {
		if op.kind == ' ' {
			continue
		}
		start := max(0, i-contextLines)
		end := min(len(ops), i+contextLines+1)
		if n := len(out); n > 0 && start <= out[n-1].end {
			out[n-1].end = max(out[n-1].end, end)
			continue
		}
		out = append(out, hunk{start: start, end: end})
	}
	return out
}

func writeHunk(buf *strings.Builder, ops []lineOp, h hunk) {
	// Line numbers are 1-based positions in each side before the hunk.
	oldLine, newLine := 1, 1
	for _, op := range ops[:h.start] {
		if op.kind != '+' {
			oldLine++
		}
		if op.kind != '-' {
			newLine++
		}
	}
	oldCount, newCount := 0, 0
	for _, op := range ops[h.start:h.end] {
		if op.kind != '+' {
			oldCount++
		}
		if op.kind != '-' {
			newCount++
		}
	}

	fmt.Fprintf(buf, "@@ -%s +%s @@\n", hunkRange(oldLine, oldCount), hunkRange(newLine, newCount))
	for _, op := range ops[h.start:h.end] {
		buf.WriteByte(op.kind)
		buf.WriteString(op.text)
		buf.WriteByte('\n')
	}
}

func hunkRange(line, count int) string {
	if count == 0 {
		return fmt.Sprintf("%d,0", line-1)
	}
	if count == 1 {
		return fmt.Sprintf("%d", line)
	}
	return fmt.Sprintf("%d,%d", line, count)
}
