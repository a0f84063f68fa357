package source

import "fmt"

// BufferIndex identifies a buffer within a Map.
type BufferIndex int

// Map owns a set of named source buffers and hands out Input cursors over
// them. Every buffer occupies a disjoint global byte range, so any Offset
// or Span produced from a Map cursor identifies its buffer and can be
// resolved back to text and diagnostics without naming the buffer again.
// Line numbers stay local to each buffer.
type Map struct {
	buffers []buffer
}

type buffer struct {
	origin  string
	content string
	base    int
}

// NewMap returns an empty source map.
func NewMap() *Map {
	return &Map{}
}

// Insert adds a named buffer and returns its index. Inserting an origin
// that is already present returns the existing buffer's index unchanged.
func (m *Map) Insert(origin, content string) BufferIndex {
	if index, ok := m.Lookup(origin); ok {
		return index
	}
	base := 0
	if n := len(m.buffers); n > 0 {
		last := m.buffers[n-1]
		// Leave one byte between buffers so empty buffers stay disjoint.
		base = last.base + len(last.content) + 1
	}
	m.buffers = append(m.buffers, buffer{origin: origin, content: content, base: base})
	return BufferIndex(len(m.buffers) - 1)
}

// Lookup finds a buffer by origin.
func (m *Map) Lookup(origin string) (BufferIndex, bool) {
	for i, b := range m.buffers {
		if b.origin == origin {
			return BufferIndex(i), true
		}
	}
	return 0, false
}

// Origin returns the name the buffer was inserted under.
func (m *Map) Origin(index BufferIndex) string {
	return m.buffers[index].origin
}

// Content returns the buffer's full text.
func (m *Map) Content(index BufferIndex) string {
	return m.buffers[index].content
}

// Input returns a cursor at the start of the buffer, producing offsets in
// the map's global byte coordinates.
func (m *Map) Input(index BufferIndex) Input {
	b := m.buffers[index]
	return InputAt(b.content, Offset{Byte: b.base, Line: 1})
}

func (m *Map) resolve(offset Offset) (buffer, Offset) {
	for _, b := range m.buffers {
		if offset.Byte >= b.base && offset.Byte <= b.base+len(b.content) {
			return b, Offset{Byte: offset.Byte - b.base, Line: offset.Line}
		}
	}
	panic(fmt.Sprintf("source: offset %d outside every buffer", offset.Byte))
}

// SpanText returns the text covered by a span produced from this map.
func (m *Map) SpanText(span Span) string {
	b, local := m.resolve(span.Offset)
	return SpanText(b.content, local.Span(span.Len))
}

// LineText returns the text of the buffer line containing offset.
func (m *Map) LineText(offset Offset) string {
	b, local := m.resolve(offset)
	return LineText(b.content, local)
}

// ByteOffsetOnLine returns the byte column of offset within its line.
func (m *Map) ByteOffsetOnLine(offset Offset) int {
	b, local := m.resolve(offset)
	return ByteOffsetOnLine(b.content, local)
}

// OffsetSection renders a diagnostic section for an offset from this map.
func (m *Map) OffsetSection(offset Offset) Section {
	b, local := m.resolve(offset)
	return OffsetSection(b.content, local)
}

// SpanSection renders a diagnostic section for a span from this map.
func (m *Map) SpanSection(span Span) Section {
	b, local := m.resolve(span.Offset)
	return SpanSection(b.content, local.Span(span.Len))
}
