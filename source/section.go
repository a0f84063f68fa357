package source

import (
	"fmt"
	"strings"
)

// Section is a renderable snippet of source around one highlighted
// location: the highlighted line, the preceding line when one exists, and
// an elision marker when the context does not reach back to line 1.
type Section struct {
	src       string
	lineSpan  Span
	highlight highlight
}

// highlight is one caret line: the text preceding the carets on the
// highlighted line (reproduced as tabs/spaces for alignment) plus the
// number of carets to draw.
type highlight struct {
	lead string
	n    int
}

// OffsetSection returns the section highlighting the single character at
// offset.
func OffsetSection(src string, offset Offset) Section {
	col := ByteOffsetOnLine(src, offset)
	return Section{
		src:       src,
		lineSpan:  LineSpan(src, offset),
		highlight: highlight{lead: LineText(src, offset)[:col], n: 1},
	}
}

// SpanSection returns the section highlighting every character of span,
// one caret per codepoint.
func SpanSection(src string, span Span) Section {
	col := ByteOffsetOnLine(src, span.Offset)
	return Section{
		src:       src,
		lineSpan:  LineSpan(src, span.Offset),
		highlight: highlight{
			lead: LineText(src, span.Offset)[:col],
			n:    len([]rune(SpanText(src, span))),
		},
	}
}

// String renders the section as "line-number | content" rows followed by a
// caret row, with line numbers right-aligned to the widest number shown.
func (s Section) String() string {
	var b strings.Builder

	prev, hasPrev := LineSpanBefore(s.src, s.lineSpan.Offset)

	firstLine := s.lineSpan.Offset.Line
	if hasPrev {
		firstLine = prev.Offset.Line
	}
	width := countDigits(s.lineSpan.Offset.Line)

	if firstLine > 1 {
		fmt.Fprintf(&b, " %*d | ...\n", width, firstLine-1)
	}
	if hasPrev {
		fmt.Fprintf(&b, " %*d | %s\n", width, prev.Offset.Line, SpanText(s.src, prev))
	}
	fmt.Fprintf(&b, " %*d | %s\n", width, s.lineSpan.Offset.Line, SpanText(s.src, s.lineSpan))
	fmt.Fprintf(&b, " %*s | %s\n", width, "", s.highlight.String())

	return b.String()
}

func (h highlight) String() string {
	var b strings.Builder
	for _, r := range h.lead {
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	for i := 0; i < h.n; i++ {
		b.WriteByte('^')
	}
	return b.String()
}

func countDigits(n int) int {
	if n == 0 {
		return 1
	}
	digits := 0
	for n > 0 {
		digits++
		n /= 10
	}
	return digits
}
