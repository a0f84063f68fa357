package tree

import (
	"strconv"
	"strings"
)

// Render writes the tree back out as canonical text using the given
// indentation unit. Re-parsing the result with the same unit yields a
// structurally equal tree (locations aside).
func (t *Tree) Render(indent Indent) string {
	var b strings.Builder
	for i := range t.Roots {
		renderNode(&b, &t.Roots[i], 0, indent)
	}
	return b.String()
}

func renderNode(b *strings.Builder, n *Node, depth int, indent Indent) {
	for i := 0; i < depth; i++ {
		b.WriteString(indent.Unit())
	}
	renderItems(b, n.Signature)
	if n.Kind == KindDirective {
		b.WriteByte(directiveRune)
		if len(n.Arguments) > 0 {
			b.WriteByte(' ')
			renderItems(b, n.Arguments)
		}
	}
	b.WriteByte('\n')
	for i := range n.Children {
		renderNode(b, &n.Children[i], depth+1, indent)
	}
}

func renderItems(b *strings.Builder, items []Item) {
	for i := range items {
		if i > 0 {
			b.WriteByte(' ')
		}
		renderItem(b, &items[i])
	}
}

func renderItem(b *strings.Builder, it *Item) {
	switch it.Kind {
	case ItemWord:
		b.WriteString(it.Word)
	case ItemInt:
		b.WriteString(strconv.FormatInt(int64(it.Int), 10))
	case ItemFloat:
		// The fixed format keeps an exponent out of the output; a bare
		// exponent form would not re-parse as a float.
		text := strconv.FormatFloat(float64(it.Float), 'f', -1, 32)
		if !strings.Contains(text, ".") {
			text += ".0"
		}
		b.WriteString(text)
	case ItemParens, ItemBrackets, ItemBraces:
		open, close := groupRunes(it.Kind)
		b.WriteRune(open)
		renderItems(b, it.Items)
		b.WriteRune(close)
	}
}

func groupRunes(kind ItemKind) (open, close rune) {
	for _, pair := range groupPairs {
		if pair.kind == kind {
			return pair.open, pair.close
		}
	}
	panic("tree: not a group kind: " + kind.String())
}

// String renders a single item as canonical text.
func (it *Item) String() string {
	var b strings.Builder
	renderItem(&b, it)
	return b.String()
}
