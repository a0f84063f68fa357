package source

import (
	"testing"
	"unicode"
)

func TestInputSplitLine(t *testing.T) {
	in := NewInput("abc\ndef")

	line, rest, ok := in.SplitLine()
	if !ok {
		t.Fatal("SplitLine should find a newline")
	}
	if line.Content() != "abc" {
		t.Errorf("line = %q, want %q", line.Content(), "abc")
	}
	if rest.Content() != "def" {
		t.Errorf("rest = %q, want %q", rest.Content(), "def")
	}
	if want := offsetAt(4, 2); rest.Offset() != want {
		t.Errorf("rest offset = %v, want %v", rest.Offset(), want)
	}

	line, rest, ok = rest.SplitLine()
	if ok {
		t.Error("last line should report no trailing newline")
	}
	if line.Content() != "def" {
		t.Errorf("line = %q, want %q", line.Content(), "def")
	}
	if !rest.IsEmpty() {
		t.Errorf("rest = %q, want empty", rest.Content())
	}
}

func TestInputSkipRune(t *testing.T) {
	in := NewInput(":abc")

	rest, ok := in.SkipRune(':')
	if !ok {
		t.Fatal("SkipRune(':') should match")
	}
	if rest.Content() != "abc" {
		t.Errorf("rest = %q, want %q", rest.Content(), "abc")
	}
	if want := offsetAt(1, 1); rest.Offset() != want {
		t.Errorf("rest offset = %v, want %v", rest.Offset(), want)
	}

	if _, ok := rest.SkipRune(':'); ok {
		t.Error("SkipRune(':') should not match at 'a'")
	}
}

func TestInputSkipString(t *testing.T) {
	in := NewInput("    abc")

	rest, ok := in.SkipString("  ")
	if !ok {
		t.Fatal("SkipString should match two spaces")
	}
	rest, ok = rest.SkipString("  ")
	if !ok {
		t.Fatal("SkipString should match two more spaces")
	}
	if rest.Content() != "abc" {
		t.Errorf("rest = %q, want %q", rest.Content(), "abc")
	}
	if _, ok := rest.SkipString("  "); ok {
		t.Error("SkipString should not match at 'a'")
	}
}

func TestInputTrimSpaceLeft(t *testing.T) {
	in := NewInput(" \t abc")
	rest := in.TrimSpaceLeft()
	if rest.Content() != "abc" {
		t.Errorf("rest = %q, want %q", rest.Content(), "abc")
	}
	if want := offsetAt(3, 1); rest.Offset() != want {
		t.Errorf("rest offset = %v, want %v", rest.Offset(), want)
	}
}

func TestInputLeadingWhitespaceSpan(t *testing.T) {
	span, ok := NewInput("  \tabc").LeadingWhitespaceSpan()
	if !ok {
		t.Fatal("should find leading whitespace")
	}
	if want := offsetAt(0, 1).Span(3); span != want {
		t.Errorf("span = %v, want %v", span, want)
	}

	if _, ok := NewInput("abc ").LeadingWhitespaceSpan(); ok {
		t.Error("should find no leading whitespace at 'a'")
	}
}

func TestInputTakeWhile(t *testing.T) {
	notSpace := func(r rune) bool { return !unicode.IsSpace(r) }

	text, span, rest, ok := NewInput("abc def").TakeWhile(notSpace)
	if !ok {
		t.Fatal("TakeWhile should take 'abc'")
	}
	if text != "abc" {
		t.Errorf("text = %q, want %q", text, "abc")
	}
	if want := offsetAt(0, 1).Span(3); span != want {
		t.Errorf("span = %v, want %v", span, want)
	}
	if rest.Content() != " def" {
		t.Errorf("rest = %q, want %q", rest.Content(), " def")
	}

	if _, _, _, ok := rest.TakeWhile(notSpace); ok {
		t.Error("TakeWhile should fail with zero matching runes")
	}
}

func TestInputToEndTracksLines(t *testing.T) {
	end := NewInput("abc\ndef\n").ToEnd()
	if !end.IsEmpty() {
		t.Fatalf("content = %q, want empty", end.Content())
	}
	if want := offsetAt(8, 3); end.Offset() != want {
		t.Errorf("offset = %v, want %v", end.Offset(), want)
	}
}
