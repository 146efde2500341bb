// Package diff renders line-oriented unified diffs for snapshot comparison.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	contextLines    = 3
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

type line struct {
	op   byte
	text string
}

// GenerateUnifiedDiff compares expected and actual line by line and returns a
// unified diff with three lines of context around each change. Identical
// inputs produce an empty string. Output beyond 10,000 lines is truncated
// with a marker.
func GenerateUnifiedDiff(expected, actual []byte, expectedLabel, actualLabel string) string {
	if bytes.Equal(expected, actual) {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, index := dmp.DiffLinesToChars(string(expected), string(actual))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), index)

	lines := toLines(diffs)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", expectedLabel)
	fmt.Fprintf(&buf, "+++ %s\n", actualLabel)
	for _, h := range hunks(lines) {
		writeHunk(&buf, lines, h)
	}

	result := buf.String()
	out := strings.Split(result, "\n")
	if len(out) > maxDiffLines {
		return strings.Join(out[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n"
	}
	return result
}

func toLines(diffs []diffmatchpatch.Diff) []line {
	var out []line
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		var op byte
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = '-'
		case diffmatchpatch.DiffInsert:
			op = '+'
		default:
			op = ' '
		}
		for _, text := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			out = append(out, line{op: op, text: text})
		}
	}
	return out
}

// span is a half-open range of lines forming one hunk.
type span struct{ start, end int }

func hunks(lines []line) []span {
	var out []span
	for i, l := range lines {
		if l.op == ' ' {
			continue
		}
		start := max(0, i-contextLines)
		end := min(len(lines), i+contextLines+1)
		if n := len(out); n > 0 && start <= out[n-1].end {
			out[n-1].end = end
			continue
		}
		out = append(out, span{start, end})
	}
	return out
}

func writeHunk(buf *bytes.Buffer, lines []line, h span) {
	oldStart, newStart := 1, 1
	for _, l := range lines[:h.start] {
		if l.op != '+' {
			oldStart++
		}
		if l.op != '-' {
			newStart++
		}
	}

	oldCount, newCount := 0, 0
	for _, l := range lines[h.start:h.end] {
		if l.op != '+' {
			oldCount++
		}
		if l.op != '-' {
			newCount++
		}
	}
	if oldCount == 0 {
		oldStart--
	}
	if newCount == 0 {
		newStart--
	}

	fmt.Fprintf(buf, "@@ -%d,%d +%d,%d @@\n", oldStart, oldCount, newStart, newCount)
	for _, l := range lines[h.start:h.end] {
		buf.WriteByte(l.op)
		buf.WriteString(l.text)
		buf.WriteByte('\n')
	}
}
