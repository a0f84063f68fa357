package tree

import (
	"fmt"

	"github.com/dhamidi/treelang/source"
)

// ErrorKind identifies the exact parse failure.
type ErrorKind int

const (
	// ErrIndentChars: leftover whitespace after stripping whole indent
	// units (mixed or partial indentation).
	ErrIndentChars ErrorKind = iota
	// ErrIndentDepth: a line indented more than one unit deeper than the
	// innermost open directive.
	ErrIndentDepth
	// ErrStatementWithChild: a line indented under a statement.
	ErrStatementWithChild
	// ErrUnexpectedChar: a structural character where an item was expected.
	ErrUnexpectedChar
	// ErrUnclosedGroup: end of line content with a group still open.
	ErrUnclosedGroup
	// ErrInvalidInt: a digit- or minus-prefixed token that is not a valid
	// 32-bit integer.
	ErrInvalidInt
	// ErrInvalidFloat: a digit- or minus-prefixed token containing `.`
	// that is not a valid 32-bit float.
	ErrInvalidFloat
	// ErrEmptyDirectiveSignature: `:` with no preceding signature items.
	ErrEmptyDirectiveSignature
)

// Error is a parse failure with enough position data to render a
// diagnostic. Span-carrying kinds (ErrIndentChars, ErrInvalidInt,
// ErrInvalidFloat) highlight the whole offending run; the rest highlight a
// single offset.
type Error struct {
	Kind   ErrorKind
	Offset source.Offset
	Span   source.Span
	Value  string
	Char   rune
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrIndentChars:
		return fmt.Sprintf("invalid indentation characters on line %d", e.Span.Offset.Line)
	case ErrIndentDepth:
		return fmt.Sprintf("invalid indentation depth on line %d", e.Offset.Line)
	case ErrStatementWithChild:
		return fmt.Sprintf("child node attached to statement on line %d", e.Offset.Line)
	case ErrUnexpectedChar:
		return fmt.Sprintf("unexpected character `%c` on line %d", e.Char, e.Offset.Line)
	case ErrUnclosedGroup:
		return fmt.Sprintf("missing closing `%c` character on line %d", e.Char, e.Offset.Line)
	case ErrInvalidInt:
		return fmt.Sprintf("invalid integer format `%s` on line %d", e.Value, e.Span.Offset.Line)
	case ErrInvalidFloat:
		return fmt.Sprintf("invalid floating point format `%s` on line %d", e.Value, e.Span.Offset.Line)
	case ErrEmptyDirectiveSignature:
		return fmt.Sprintf("empty directive signature on line %d", e.Offset.Line)
	}
	return "unknown parse error"
}

// Location returns the offset the error points at. For span-carrying kinds
// this is the span's start.
func (e *Error) Location() source.Offset {
	if e.hasSpan() {
		return e.Span.Offset
	}
	return e.Offset
}

func (e *Error) hasSpan() bool {
	switch e.Kind {
	case ErrIndentChars, ErrInvalidInt, ErrInvalidFloat:
		return true
	}
	return false
}

// Section renders the diagnostic snippet for the error against the source
// text it was parsed from.
func (e *Error) Section(src string) source.Section {
	if e.hasSpan() {
		return source.SpanSection(src, e.Span)
	}
	return source.OffsetSection(src, e.Offset)
}

// MapSection renders the diagnostic snippet for an error produced while
// parsing an input obtained from a source map.
func (e *Error) MapSection(m *source.Map) source.Section {
	if e.hasSpan() {
		return m.SpanSection(e.Span)
	}
	return m.OffsetSection(e.Offset)
}
