// Package source provides byte-accurate positions into source text and
// renders human-readable diagnostic snippets from them.
package source

// Offset is a position in a source buffer: a byte index paired with the
// 1-based number of the line containing it.
type Offset struct {
	Byte int
	Line int
}

// StartOffset returns the offset of the first byte of a buffer.
func StartOffset() Offset {
	return Offset{Byte: 0, Line: 1}
}

// AddBytes advances the offset by n bytes on the same line.
func (o Offset) AddBytes(n int) Offset {
	return Offset{Byte: o.Byte + n, Line: o.Line}
}

// AddLines advances the line number by n without moving the byte index.
func (o Offset) AddLines(n int) Offset {
	return Offset{Byte: o.Byte, Line: o.Line + n}
}

// Span returns the span of length n starting at this offset.
func (o Offset) Span(n int) Span {
	return Span{Offset: o, Len: n}
}

// Span is a contiguous byte range of source text: a start offset plus a
// length in bytes. The range must cover whole UTF-8 sequences.
type Span struct {
	Offset Offset
	Len    int
}

// Start returns the offset of the first byte of the span.
func (s Span) Start() Offset {
	return s.Offset
}

// End returns the offset one past the last byte of the span, assuming the
// span does not cross a line boundary.
func (s Span) End() Offset {
	return s.Offset.AddBytes(s.Len)
}
