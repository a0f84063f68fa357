package tree

import (
	"fmt"
	"strings"

	"github.com/dhamidi/treelang/source"
)

// Indent is the indentation unit a parse assumes: one tab, or a fixed
// number of spaces. The zero value is tabs.
type Indent struct {
	spaces int
}

// Tabs indents by a single tab character per level.
func Tabs() Indent {
	return Indent{}
}

// Spaces indents by n space characters per level. n must be positive.
func Spaces(n int) (Indent, error) {
	if n <= 0 {
		return Indent{}, fmt.Errorf("indent width must be positive, got %d", n)
	}
	return Indent{spaces: n}, nil
}

// MustSpaces is Spaces but panics on an invalid width.
func MustSpaces(n int) Indent {
	ind, err := Spaces(n)
	if err != nil {
		panic(err)
	}
	return ind
}

// Unit returns the literal text of one indentation level.
func (ind Indent) Unit() string {
	if ind.spaces == 0 {
		return "\t"
	}
	return strings.Repeat(" ", ind.spaces)
}

func (ind Indent) String() string {
	if ind.spaces == 0 {
		return "tabs"
	}
	return fmt.Sprintf("%d spaces", ind.spaces)
}

// extract strips whole indentation units from the front of a line and
// returns the resulting depth plus the de-indented cursor. Leftover leading
// whitespace after the last whole unit is rejected as ErrIndentChars.
func (ind Indent) extract(line source.Input) (int, source.Input, *Error) {
	unit := ind.Unit()
	depth := 0
	for {
		rest, ok := line.SkipString(unit)
		if !ok {
			break
		}
		depth++
		line = rest
	}
	if span, ok := line.LeadingWhitespaceSpan(); ok {
		return 0, line, &Error{Kind: ErrIndentChars, Span: span}
	}
	return depth, line, nil
}
