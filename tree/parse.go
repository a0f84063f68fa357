package tree

import (
	"strconv"
	"strings"

	"github.com/dhamidi/treelang/source"
)

// Parse parses content into a Tree assuming the given indentation unit.
// Parsing is fail-fast: the first error aborts and is returned as a
// *tree.Error; no partial tree is produced.
func Parse(content string, indent Indent) (*Tree, error) {
	return ParseInput(source.NewInput(content), indent)
}

// ParseInput parses from an existing cursor, typically one obtained from a
// source.Map so that node and item locations resolve through the map.
func ParseInput(in source.Input, indent Indent) (*Tree, error) {
	var stack depthStack
	current := in
	for {
		line, rest, more := current.SplitLine()

		if !skipSpaceAndComments(line).IsEmpty() {
			depth, line, err := indent.extract(line)
			if err != nil {
				return nil, err
			}
			node, err := parseNode(line)
			if err != nil {
				return nil, err
			}
			if err := stack.insert(depth, node); err != nil {
				return nil, err
			}
		}

		if !more {
			break
		}
		current = rest
	}
	return stack.intoTree()
}

// skipSpaceAndComments advances past leading whitespace; if a comment
// marker follows, the whole remainder is discarded.
func skipSpaceAndComments(in source.Input) source.Input {
	trimmed := in.TrimSpaceLeft()
	if r, ok := trimmed.NextRune(); ok && r == commentRune {
		return trimmed.ToEnd()
	}
	return trimmed
}

// parseNode parses one de-indented line into a statement or directive. The
// directive colon is only recognized here, at line level; a colon nested
// anywhere else surfaces as ErrUnexpectedChar from parseItem.
func parseNode(in source.Input) (Node, *Error) {
	nodeOffset := in.Offset()
	var items []Item
	for {
		in = skipSpaceAndComments(in)

		if in.IsEmpty() {
			return Node{
				Kind:      KindStatement,
				Location:  nodeOffset,
				Signature: items,
			}, nil
		}

		if rest, ok := in.SkipRune(directiveRune); ok {
			if len(items) == 0 {
				return Node{}, &Error{Kind: ErrEmptyDirectiveSignature, Offset: nodeOffset}
			}
			arguments, err := parseAllItems(rest)
			if err != nil {
				return Node{}, err
			}
			return Node{
				Kind:      KindDirective,
				Location:  nodeOffset,
				Signature: items,
				Arguments: arguments,
			}, nil
		}

		item, rest, err := parseItem(in)
		if err != nil {
			return Node{}, err
		}
		items = append(items, item)
		in = rest
	}
}

// parseAllItems parses items until the cursor is exhausted.
func parseAllItems(in source.Input) ([]Item, *Error) {
	var items []Item
	for {
		in = skipSpaceAndComments(in)
		if in.IsEmpty() {
			return items, nil
		}
		item, rest, err := parseItem(in)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		in = rest
	}
}

// parseItemsUntil parses items until the closing delimiter of a group.
// Running out of content first is ErrUnclosedGroup anchored at the opening
// delimiter.
func parseItemsUntil(in source.Input, end rune, openOffset source.Offset) ([]Item, source.Input, *Error) {
	var items []Item
	for {
		in = skipSpaceAndComments(in)
		if in.IsEmpty() {
			return nil, in, &Error{Kind: ErrUnclosedGroup, Offset: openOffset, Char: end}
		}
		if rest, ok := in.SkipRune(end); ok {
			return items, rest, nil
		}
		item, rest, err := parseItem(in)
		if err != nil {
			return nil, in, err
		}
		items = append(items, item)
		in = rest
	}
}

// parseItem parses one item: a delimited group (recursively) or a maximal
// run of non-structural characters classified as word, int or float.
func parseItem(in source.Input) (Item, source.Input, *Error) {
	for _, pair := range groupPairs {
		rest, ok := in.SkipRune(pair.open)
		if !ok {
			continue
		}
		items, rest, err := parseItemsUntil(rest, pair.close, in.Offset())
		if err != nil {
			return Item{}, in, err
		}
		return Item{
			Kind: pair.kind,
			// The group's span covers the opening delimiter only.
			Location: in.Offset().Span(1),
			Items:    items,
		}, rest, nil
	}

	text, span, rest, ok := in.TakeWhile(func(r rune) bool { return !isStructureRune(r) })
	if !ok {
		r, ok := in.NextRune()
		if !ok {
			panic("tree: parseItem reached empty input")
		}
		return Item{}, in, &Error{Kind: ErrUnexpectedChar, Offset: in.Offset(), Char: r}
	}
	return classifyRun(text, span, rest)
}

// classifyRun turns a token run into a word or numeric item. Any run
// beginning with an ASCII digit or `-` must parse as a number; failures
// are reported as ErrInvalidInt/ErrInvalidFloat, never demoted to words.
func classifyRun(text string, span source.Span, rest source.Input) (Item, source.Input, *Error) {
	if text[0] != '-' && (text[0] < '0' || text[0] > '9') {
		return Item{Kind: ItemWord, Location: span, Word: text}, rest, nil
	}
	if strings.Contains(text, ".") {
		if !isDecimalFloat(text) {
			return Item{}, rest, &Error{Kind: ErrInvalidFloat, Span: span, Value: text}
		}
		value, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return Item{}, rest, &Error{Kind: ErrInvalidFloat, Span: span, Value: text}
		}
		return Item{Kind: ItemFloat, Location: span, Float: float32(value)}, rest, nil
	}
	value, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return Item{}, rest, &Error{Kind: ErrInvalidInt, Span: span, Value: text}
	}
	return Item{Kind: ItemInt, Location: span, Int: int32(value)}, rest, nil
}

// isDecimalFloat reports whether text is a plain decimal float literal: an
// optional leading minus, digits around one decimal point (at least one
// digit total), and an optional e-exponent. strconv alone would also take
// Go literal forms, digit-group underscores and hex floats, that are not
// valid float syntax in this language.
func isDecimalFloat(text string) bool {
	mantissa := strings.TrimPrefix(text, "-")
	if i := strings.IndexAny(mantissa, "eE"); i >= 0 {
		exponent := mantissa[i+1:]
		mantissa = mantissa[:i]
		if len(exponent) > 0 && (exponent[0] == '+' || exponent[0] == '-') {
			exponent = exponent[1:]
		}
		if exponent == "" || !isASCIIDigits(exponent) {
			return false
		}
	}
	intPart, fracPart, _ := strings.Cut(mantissa, ".")
	if intPart == "" && fracPart == "" {
		return false
	}
	return isASCIIDigits(intPart) && isASCIIDigits(fracPart)
}

// isASCIIDigits reports whether s is all ASCII digits; empty counts.
func isASCIIDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// depthStack reassembles tree nesting from the flat stream of
// (depth, node) pairs. levels holds the currently open ancestors, one per
// depth; closing a level moves the node into its parent's children or into
// the root list.
type depthStack struct {
	tree   Tree
	levels []Node
}

func (s *depthStack) insert(depth int, node Node) *Error {
	if err := s.vacateLevel(depth); err != nil {
		return err
	}
	if depth != len(s.levels) {
		return &Error{Kind: ErrIndentDepth, Offset: node.Location}
	}
	s.levels = append(s.levels, node)
	return nil
}

func (s *depthStack) vacateLevel(depth int) *Error {
	for len(s.levels) > depth {
		node := s.levels[len(s.levels)-1]
		s.levels = s.levels[:len(s.levels)-1]
		if len(s.levels) == 0 {
			s.tree.Roots = append(s.tree.Roots, node)
			continue
		}
		parent := &s.levels[len(s.levels)-1]
		if parent.Kind != KindDirective {
			return &Error{Kind: ErrStatementWithChild, Offset: node.Location}
		}
		parent.Children = append(parent.Children, node)
	}
	return nil
}

func (s *depthStack) intoTree() (*Tree, error) {
	if err := s.vacateLevel(0); err != nil {
		return nil, err
	}
	return &s.tree, nil
}
