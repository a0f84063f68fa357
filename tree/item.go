package tree

import "github.com/dhamidi/treelang/source"

// ItemKind discriminates the kinds of Item.
type ItemKind int

const (
	ItemWord ItemKind = iota
	ItemInt
	ItemFloat
	ItemParens
	ItemBrackets
	ItemBraces
)

func (k ItemKind) String() string {
	switch k {
	case ItemWord:
		return "word"
	case ItemInt:
		return "int"
	case ItemFloat:
		return "float"
	case ItemParens:
		return "parentheses"
	case ItemBrackets:
		return "brackets"
	case ItemBraces:
		return "braces"
	}
	return "unknown"
}

// Item is one token of a line: a word, a numeric literal, or a delimited
// group of nested items. Exactly one of the payload fields is meaningful
// for a given Kind. For groups, Location covers only the opening delimiter
// character, anchoring diagnostics at the `(`, `[` or `{`.
type Item struct {
	Kind     ItemKind
	Location source.Span
	Word     string
	Int      int32
	Float    float32
	Items    []Item
}

// IsWord reports whether the item is a word.
func (it *Item) IsWord() bool { return it.Kind == ItemWord }

// IsInt reports whether the item is an integer literal.
func (it *Item) IsInt() bool { return it.Kind == ItemInt }

// IsFloat reports whether the item is a float literal.
func (it *Item) IsFloat() bool { return it.Kind == ItemFloat }

// IsGroup reports whether the item is a delimited group of any kind.
func (it *Item) IsGroup() bool {
	switch it.Kind {
	case ItemParens, ItemBrackets, ItemBraces:
		return true
	}
	return false
}

// AsWord returns the word text, or false for non-words.
func (it *Item) AsWord() (string, bool) {
	if it.Kind != ItemWord {
		return "", false
	}
	return it.Word, true
}

// AsInt returns the integer value, or false for non-integers.
func (it *Item) AsInt() (int32, bool) {
	if it.Kind != ItemInt {
		return 0, false
	}
	return it.Int, true
}

// AsFloat returns the float value, or false for non-floats.
func (it *Item) AsFloat() (float32, bool) {
	if it.Kind != ItemFloat {
		return 0, false
	}
	return it.Float, true
}

// GroupItems returns the nested items of a group, or false for non-groups.
func (it *Item) GroupItems() ([]Item, bool) {
	if !it.IsGroup() {
		return nil, false
	}
	return it.Items, true
}
