package source

import "testing"

func TestMapInsertDedupesByOrigin(t *testing.T) {
	m := NewMap()
	a := m.Insert("a", "abc")
	b := m.Insert("b", "def")
	if a == b {
		t.Fatalf("distinct origins share index %d", a)
	}
	if again := m.Insert("a", "ignored"); again != a {
		t.Errorf("re-inserting origin a = %d, want %d", again, a)
	}
	if got := m.Content(a); got != "abc" {
		t.Errorf("Content(a) = %q, want %q", got, "abc")
	}
	if got := m.Origin(b); got != "b" {
		t.Errorf("Origin(b) = %q, want %q", got, "b")
	}
}

func TestMapInputOffsetsResolve(t *testing.T) {
	m := NewMap()
	m.Insert("first", "123")
	index := m.Insert("second", "abc\ndef")

	in := m.Input(index)
	if in.Content() != "abc\ndef" {
		t.Fatalf("Input content = %q", in.Content())
	}

	// Offsets from the cursor are global; the map resolves them back to
	// the second buffer.
	_, rest, _ := in.SplitLine()
	if got := m.LineText(rest.Offset()); got != "def" {
		t.Errorf("LineText = %q, want %q", got, "def")
	}
	if got := m.SpanText(rest.Offset().Span(3)); got != "def" {
		t.Errorf("SpanText = %q, want %q", got, "def")
	}
	if got := m.ByteOffsetOnLine(rest.Offset().AddBytes(1)); got != 1 {
		t.Errorf("ByteOffsetOnLine = %d, want 1", got)
	}
}
