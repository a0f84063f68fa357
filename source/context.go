package source

import "strings"

// LineSpan returns the span of the full line containing offset, excluding
// the newline. Offsets at a newline byte belong to the line the newline
// terminates.
func LineSpan(src string, offset Offset) Span {
	start := 0
	if i := strings.LastIndexByte(src[:offset.Byte], '\n'); i >= 0 {
		start = i + 1
	}
	length := strings.IndexByte(src[start:], '\n')
	if length < 0 {
		length = len(src) - start
	}
	return Span{
		Offset: Offset{Byte: start, Line: strings.Count(src[:start], "\n") + 1},
		Len:    length,
	}
}

// LineSpanBefore returns the span of the line preceding the one containing
// offset, or false when offset sits on the first line.
func LineSpanBefore(src string, offset Offset) (Span, bool) {
	line := LineSpan(src, offset)
	if line.Offset.Byte == 0 {
		return Span{}, false
	}
	before := Offset{Byte: line.Offset.Byte - 1, Line: line.Offset.Line - 1}
	return LineSpan(src, before), true
}

// SpanText returns the text covered by span.
func SpanText(src string, span Span) string {
	return src[span.Offset.Byte : span.Offset.Byte+span.Len]
}

// LineText returns the text of the line containing offset.
func LineText(src string, offset Offset) string {
	return SpanText(src, LineSpan(src, offset))
}

// ByteOffsetOnLine returns the byte column of offset within its line.
func ByteOffsetOnLine(src string, offset Offset) int {
	return offset.Byte - LineSpan(src, offset).Offset.Byte
}
