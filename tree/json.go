package tree

import "encoding/json"

type jsonNode struct {
	Kind      string      `json:"kind"`
	Location  jsonOffset  `json:"location"`
	Signature []*jsonItem `json:"signature,omitempty"`
	Arguments []*jsonItem `json:"arguments,omitempty"`
	Children  []*jsonNode `json:"children,omitempty"`
}

type jsonItem struct {
	Kind     string      `json:"kind"`
	Location jsonSpan    `json:"location"`
	Word     string      `json:"word,omitempty"`
	Int      *int32      `json:"int,omitempty"`
	Float    *float32    `json:"float,omitempty"`
	Items    []*jsonItem `json:"items,omitempty"`
}

type jsonOffset struct {
	Byte int `json:"byte"`
	Line int `json:"line"`
}

type jsonSpan struct {
	Byte int `json:"byte"`
	Line int `json:"line"`
	Len  int `json:"len"`
}

// MarshalJSON encodes the tree as its list of roots.
func (t *Tree) MarshalJSON() ([]byte, error) {
	nodes := make([]*jsonNode, len(t.Roots))
	for i := range t.Roots {
		nodes[i] = t.Roots[i].toJSON()
	}
	return json.Marshal(nodes)
}

func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.toJSON())
}

func (n *Node) toJSON() *jsonNode {
	jn := &jsonNode{
		Kind:     n.Kind.String(),
		Location: jsonOffset{Byte: n.Location.Byte, Line: n.Location.Line},
	}
	for i := range n.Signature {
		jn.Signature = append(jn.Signature, n.Signature[i].toJSON())
	}
	for i := range n.Arguments {
		jn.Arguments = append(jn.Arguments, n.Arguments[i].toJSON())
	}
	for i := range n.Children {
		jn.Children = append(jn.Children, n.Children[i].toJSON())
	}
	return jn
}

func (it *Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(it.toJSON())
}

func (it *Item) toJSON() *jsonItem {
	ji := &jsonItem{
		Kind: it.Kind.String(),
		Location: jsonSpan{
			Byte: it.Location.Offset.Byte,
			Line: it.Location.Offset.Line,
			Len:  it.Location.Len,
		},
	}
	switch it.Kind {
	case ItemWord:
		ji.Word = it.Word
	case ItemInt:
		value := it.Int
		ji.Int = &value
	case ItemFloat:
		value := it.Float
		ji.Float = &value
	case ItemParens, ItemBrackets, ItemBraces:
		for i := range it.Items {
			ji.Items = append(ji.Items, it.Items[i].toJSON())
		}
	}
	return ji
}
