package source

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Input is a cursor over source text: the remaining content plus the offset
// of its first byte. Inputs are immutable values; every operation returns a
// new Input and leaves the receiver untouched, so they can be copied and
// backtracked freely.
type Input struct {
	content string
	offset  Offset
}

// NewInput returns a cursor at the start of content.
func NewInput(content string) Input {
	return Input{content: content, offset: StartOffset()}
}

// InputAt returns a cursor over content whose first byte sits at offset.
func InputAt(content string, offset Offset) Input {
	return Input{content: content, offset: offset}
}

// Offset returns the position of the cursor's first byte.
func (in Input) Offset() Offset {
	return in.offset
}

// Content returns the remaining text.
func (in Input) Content() string {
	return in.content
}

// IsEmpty reports whether any content remains.
func (in Input) IsEmpty() bool {
	return len(in.content) == 0
}

// NextRune returns the first remaining rune.
func (in Input) NextRune() (rune, bool) {
	if len(in.content) == 0 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(in.content)
	return r, true
}

// ToEnd advances past all remaining content.
func (in Input) ToEnd() Input {
	return in.skipBytes(len(in.content))
}

func (in Input) skipBytes(n int) Input {
	lines := strings.Count(in.content[:n], "\n")
	return Input{
		content: in.content[n:],
		offset:  in.offset.AddBytes(n).AddLines(lines),
	}
}

func (in Input) truncate(n int) Input {
	return Input{content: in.content[:n], offset: in.offset}
}

// SplitLine splits at the first newline. The returned line excludes the
// newline; rest starts just past it, one line further down. ok is false
// when the content holds no newline, in which case line is the whole input
// and rest is the empty cursor at its end.
func (in Input) SplitLine() (line, rest Input, ok bool) {
	if i := strings.IndexByte(in.content, '\n'); i >= 0 {
		return in.truncate(i), in.skipBytes(i + 1), true
	}
	return in, in.ToEnd(), false
}

// SkipRune advances past r if it is the next rune.
func (in Input) SkipRune(r rune) (Input, bool) {
	if strings.HasPrefix(in.content, string(r)) {
		return in.skipBytes(utf8.RuneLen(r)), true
	}
	return in, false
}

// SkipString advances past s if the content starts with it.
func (in Input) SkipString(s string) (Input, bool) {
	if strings.HasPrefix(in.content, s) {
		return in.skipBytes(len(s)), true
	}
	return in, false
}

// TrimSpaceLeft advances past any leading Unicode whitespace.
func (in Input) TrimSpaceLeft() Input {
	trimmed := strings.TrimLeftFunc(in.content, unicode.IsSpace)
	return in.skipBytes(len(in.content) - len(trimmed))
}

// LeadingWhitespaceSpan returns the span of the leading whitespace run, if
// the content starts with whitespace.
func (in Input) LeadingWhitespaceSpan() (Span, bool) {
	trimmed := strings.TrimLeftFunc(in.content, unicode.IsSpace)
	n := len(in.content) - len(trimmed)
	if n == 0 {
		return Span{}, false
	}
	return in.offset.Span(n), true
}

// TakeWhile takes the maximal run of runes matching pred. ok is false when
// zero runes match; otherwise the run's text, its span, and the cursor past
// it are returned.
func (in Input) TakeWhile(pred func(rune) bool) (text string, span Span, rest Input, ok bool) {
	i := strings.IndexFunc(in.content, func(r rune) bool { return !pred(r) })
	if i < 0 {
		i = len(in.content)
	}
	if i == 0 {
		return "", Span{}, in, false
	}
	return in.content[:i], in.offset.Span(i), in.skipBytes(i), true
}
