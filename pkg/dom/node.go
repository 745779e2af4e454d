package dom

import (
	"strconv"
	"strings"
)

// NodeKind identifies the type of a node in the document tree.
type NodeKind uint8

const (
	// KindElement is a standard HTML element with a tag, attributes,
	// and children.
	KindElement NodeKind = iota

	// KindText is a text node. Content is stored in Text and escaped
	// when rendered.
	KindText

	// KindRaw is pre-rendered HTML inserted verbatim. Use with care.
	KindRaw
)

// Node is a single node in the document tree.
//
// Nodes are freestanding until adopted by a Document (by being part of the
// tree a document is created around, or by being attached beneath an
// adopted node). Adopted nodes carry a stable ID and report their
// mutations to the document's log.
type Node struct {
	Kind NodeKind

	// Tag is the element name, lowercase ("div", "input"). Empty for
	// text and raw nodes.
	Tag string

	// Attrs holds the element's attributes. A present key with an empty
	// value renders as a boolean attribute (required, disabled).
	Attrs map[string]string

	// Children are the child nodes in document order.
	Children []*Node

	// Parent is the containing element, nil for a detached root.
	Parent *Node

	// Text is the content of text and raw nodes.
	Text string

	// ID is the stable node identifier assigned when the node is adopted
	// into a document ("g1", "g2", ...). Empty for detached nodes.
	ID string

	doc *Document
}

// NewText returns a detached text node.
func NewText(s string) *Node {
	return &Node{Kind: KindText, Text: s}
}

// Raw returns a detached raw-HTML node rendered without escaping.
func Raw(html string) *Node {
	return &Node{Kind: KindRaw, Text: html}
}

// NewElement returns a detached element node with no attributes.
func NewElement(tag string) *Node {
	return &Node{Kind: KindElement, Tag: tag, Attrs: map[string]string{}}
}

// Document returns the owning document, nil if the node is detached.
func (n *Node) Document() *Document {
	if n == nil {
		return nil
	}
	return n.doc
}

// IsElement reports whether the node is an element node.
func (n *Node) IsElement() bool {
	return n != nil && n.Kind == KindElement
}

// Attr returns the value of the named attribute, or "" if absent.
func (n *Node) Attr(key string) string {
	if n == nil || n.Attrs == nil {
		return ""
	}
	return n.Attrs[key]
}

// HasAttr reports whether the named attribute is present.
func (n *Node) HasAttr(key string) bool {
	if n == nil || n.Attrs == nil {
		return false
	}
	_, ok := n.Attrs[key]
	return ok
}

// IntAttr returns the named attribute parsed as an integer, or def if the
// attribute is absent or not a valid number.
func (n *Node) IntAttr(key string, def int) int {
	v := n.Attr(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return i
}

// TextContent returns the concatenated text of the node and all its
// descendants, in document order.
func (n *Node) TextContent() string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	n.appendText(&b)
	return b.String()
}

func (n *Node) appendText(b *strings.Builder) {
	if n.Kind == KindText {
		b.WriteString(n.Text)
		return
	}
	for _, c := range n.Children {
		c.appendText(b)
	}
}

// ElementChildren returns the child nodes that are elements, skipping
// text and raw nodes.
func (n *Node) ElementChildren() []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Kind == KindElement {
			out = append(out, c)
		}
	}
	return out
}

// ChildIndex returns the position of c among n's children, -1 if c is not
// a child of n.
func (n *Node) ChildIndex(c *Node) int {
	if n == nil {
		return -1
	}
	for i, ch := range n.Children {
		if ch == c {
			return i
		}
	}
	return -1
}

// ElementIndex returns the position of the node among its parent's
// element children, -1 for detached or non-element nodes.
func (n *Node) ElementIndex() int {
	if n == nil || n.Parent == nil {
		return -1
	}
	i := 0
	for _, c := range n.Parent.Children {
		if c.Kind != KindElement {
			continue
		}
		if c == n {
			return i
		}
		i++
	}
	return -1
}

// NextElement returns the next sibling that is an element, nil if none.
func (n *Node) NextElement() *Node {
	if n == nil || n.Parent == nil {
		return nil
	}
	seen := false
	for _, c := range n.Parent.Children {
		if c == n {
			seen = true
			continue
		}
		if seen && c.Kind == KindElement {
			return c
		}
	}
	return nil
}

// PrevElement returns the previous sibling that is an element, nil if none.
func (n *Node) PrevElement() *Node {
	if n == nil || n.Parent == nil {
		return nil
	}
	var prev *Node
	for _, c := range n.Parent.Children {
		if c == n {
			return prev
		}
		if c.Kind == KindElement {
			prev = c
		}
	}
	return nil
}

// Contains reports whether n is other or an ancestor of other.
func (n *Node) Contains(other *Node) bool {
	if n == nil {
		return false
	}
	for cur := other; cur != nil; cur = cur.Parent {
		if cur == n {
			return true
		}
	}
	return false
}

// ClassList returns the class attribute split into its individual names.
func (n *Node) ClassList() []string {
	cls := n.Attr("class")
	if cls == "" {
		return nil
	}
	return strings.Fields(cls)
}

// HasClass reports whether the node carries the given class name.
func (n *Node) HasClass(name string) bool {
	for _, c := range n.ClassList() {
		if c == name {
			return true
		}
	}
	return false
}
