// Package tree parses an indentation-structured markup language. Each line
// is a statement (a leaf) or a directive (a line ending its signature with
// `:`, optionally followed by arguments, nesting deeper-indented lines as
// children). Line content is a sequence of items: words, integers, floats,
// or parenthesized/bracketed/braced groups. Every node and item carries its
// exact position in the source so errors can be rendered as annotated
// snippets via the source package.
package tree

import "github.com/dhamidi/treelang/source"

// Tree is the parse result: the ordered list of root nodes.
type Tree struct {
	Roots []Node
}

// NodeKind discriminates the two kinds of Node.
type NodeKind int

const (
	KindStatement NodeKind = iota
	KindDirective
)

func (k NodeKind) String() string {
	switch k {
	case KindStatement:
		return "statement"
	case KindDirective:
		return "directive"
	}
	return "unknown"
}

// Node is one parsed line. Statements carry only a signature and never
// have children. Directives carry a signature, the arguments following the
// `:`, and the children parsed from deeper-indented lines.
type Node struct {
	Kind      NodeKind
	Location  source.Offset
	Signature []Item
	Arguments []Item
	Children  []Node
}

// IsStatement reports whether the node is a statement.
func (n *Node) IsStatement() bool {
	return n.Kind == KindStatement
}

// IsDirective reports whether the node is a directive.
func (n *Node) IsDirective() bool {
	return n.Kind == KindDirective
}
