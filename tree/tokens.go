package tree

import "unicode"

// Structural characters of the language.
const (
	commentRune   = ';'
	directiveRune = ':'
)

// groupPair binds an opening delimiter to its closing delimiter and the
// ItemKind wrapping the group's contents.
type groupPair struct {
	open  rune
	close rune
	kind  ItemKind
}

var groupPairs = []groupPair{
	{'(', ')', ItemParens},
	{'[', ']', ItemBrackets},
	{'{', '}', ItemBraces},
}

// isStructureRune reports whether r can never be part of a word: Unicode
// whitespace, the comment and directive markers, and all group delimiters.
func isStructureRune(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case commentRune, directiveRune, '(', ')', '[', ']', '{', '}':
		return true
	}
	return false
}
