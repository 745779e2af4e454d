package dom

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadSelector is returned when a selector string cannot be parsed.
var ErrBadSelector = errors.New("dom: invalid selector")

// Selector is a compiled selector. The supported grammar covers what
// Glint bindings need:
//
//	th.sortable
//	.search-box input
//	form[data-validate]
//	input[type=password]
//	.alert[data-auto-hide], .flash[data-auto-hide]
//
// Tag names, classes, attribute presence/equality, compound simple
// selectors, descendant combinators, and comma groups. Child (>) and
// sibling (+, ~) combinators are not supported.
type Selector struct {
	src  string
	alts []compound
}

// compound is one comma alternative: a descendant chain whose last part
// is the subject.
type compound struct {
	parts []simple
}

type simple struct {
	tag     string
	classes []string
	attrs   []attrCond
}

type attrCond struct {
	key string
	val string
	eq  bool
}

// ParseSelector compiles a selector string.
func ParseSelector(src string) (*Selector, error) {
	sel := &Selector{src: src}
	for _, alt := range strings.Split(src, ",") {
		alt = strings.TrimSpace(alt)
		if alt == "" {
			return nil, fmt.Errorf("%w: empty selector in %q", ErrBadSelector, src)
		}
		var comp compound
		for _, part := range strings.Fields(alt) {
			sim, err := parseSimple(part)
			if err != nil {
				return nil, err
			}
			comp.parts = append(comp.parts, sim)
		}
		sel.alts = append(sel.alts, comp)
	}
	if len(sel.alts) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrBadSelector, src)
	}
	return sel, nil
}

// MustSelector compiles a selector and panics on error. For selectors
// written as literals.
func MustSelector(src string) *Selector {
	sel, err := ParseSelector(src)
	if err != nil {
		panic(err)
	}
	return sel
}

// String returns the source text the selector was compiled from.
func (s *Selector) String() string {
	return s.src
}

func parseSimple(src string) (simple, error) {
	var sim simple
	i := 0
	// Leading tag name.
	for i < len(src) && src[i] != '.' && src[i] != '[' {
		i++
	}
	if i > 0 {
		tag := src[:i]
		if tag != "*" {
			if !validTag(tag) {
				return sim, fmt.Errorf("%w: tag %q in %q", ErrBadSelector, tag, src)
			}
			sim.tag = strings.ToLower(tag)
		}
	}
	for i < len(src) {
		switch src[i] {
		case '.':
			j := i + 1
			for j < len(src) && src[j] != '.' && src[j] != '[' {
				j++
			}
			if j == i+1 {
				return sim, fmt.Errorf("%w: empty class in %q", ErrBadSelector, src)
			}
			sim.classes = append(sim.classes, src[i+1:j])
			i = j
		case '[':
			j := strings.IndexByte(src[i:], ']')
			if j < 0 {
				return sim, fmt.Errorf("%w: unterminated attribute in %q", ErrBadSelector, src)
			}
			body := src[i+1 : i+j]
			cond, err := parseAttrCond(body, src)
			if err != nil {
				return sim, err
			}
			sim.attrs = append(sim.attrs, cond)
			i += j + 1
		default:
			return sim, fmt.Errorf("%w: unexpected %q in %q", ErrBadSelector, src[i], src)
		}
	}
	if sim.tag == "" && len(sim.classes) == 0 && len(sim.attrs) == 0 {
		return sim, fmt.Errorf("%w: %q", ErrBadSelector, src)
	}
	return sim, nil
}

func validTag(tag string) bool {
	for i := 0; i < len(tag); i++ {
		c := tag[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-':
		default:
			return false
		}
	}
	return true
}

func parseAttrCond(body, src string) (attrCond, error) {
	if body == "" {
		return attrCond{}, fmt.Errorf("%w: empty attribute in %q", ErrBadSelector, src)
	}
	eq := strings.IndexByte(body, '=')
	if eq < 0 {
		return attrCond{key: strings.ToLower(body)}, nil
	}
	key := strings.ToLower(body[:eq])
	val := body[eq+1:]
	if len(val) >= 2 {
		if (val[0] == '"' && val[len(val)-1] == '"') || (val[0] == '\'' && val[len(val)-1] == '\'') {
			val = val[1 : len(val)-1]
		}
	}
	if key == "" {
		return attrCond{}, fmt.Errorf("%w: empty attribute name in %q", ErrBadSelector, src)
	}
	return attrCond{key: key, val: val, eq: true}, nil
}

func (sim *simple) matches(n *Node) bool {
	if n == nil || n.Kind != KindElement {
		return false
	}
	if sim.tag != "" && n.Tag != sim.tag {
		return false
	}
	for _, c := range sim.classes {
		if !n.HasClass(c) {
			return false
		}
	}
	for _, a := range sim.attrs {
		v, ok := n.Attrs[a.key]
		if !ok {
			return false
		}
		if a.eq && v != a.val {
			return false
		}
	}
	return true
}

func (c *compound) matches(n *Node) bool {
	last := len(c.parts) - 1
	if last < 0 || !c.parts[last].matches(n) {
		return false
	}
	// Remaining parts match any chain of ancestors, right to left.
	anc := n.Parent
	for i := last - 1; i >= 0; i-- {
		for {
			if anc == nil {
				return false
			}
			if c.parts[i].matches(anc) {
				anc = anc.Parent
				break
			}
			anc = anc.Parent
		}
	}
	return true
}

// Matches reports whether the node matches the selector.
func (n *Node) Matches(sel *Selector) bool {
	if n == nil || sel == nil {
		return false
	}
	for i := range sel.alts {
		if sel.alts[i].matches(n) {
			return true
		}
	}
	return false
}

// Query returns all descendants of n (n excluded) matching the selector,
// in document order.
func (n *Node) Query(sel *Selector) []*Node {
	if n == nil || sel == nil {
		return nil
	}
	var out []*Node
	var walk func(*Node)
	walk = func(cur *Node) {
		for _, c := range cur.Children {
			if c.Matches(sel) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// QueryFirst returns the first descendant matching the selector, nil if
// none.
func (n *Node) QueryFirst(sel *Selector) *Node {
	if n == nil || sel == nil {
		return nil
	}
	var found *Node
	var walk func(*Node) bool
	walk = func(cur *Node) bool {
		for _, c := range cur.Children {
			if c.Matches(sel) {
				found = c
				return true
			}
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(n)
	return found
}

// FindAll compiles the selector and returns all matching descendants.
// An invalid selector returns nil; use ParseSelector when the error
// matters.
func (n *Node) FindAll(src string) []*Node {
	sel, err := ParseSelector(src)
	if err != nil {
		return nil
	}
	return n.Query(sel)
}

// Find compiles the selector and returns the first matching descendant,
// nil if none or if the selector is invalid.
func (n *Node) Find(src string) *Node {
	sel, err := ParseSelector(src)
	if err != nil {
		return nil
	}
	return n.QueryFirst(sel)
}

// Closest returns the nearest ancestor (the node itself included)
// matching the selector, nil if none.
func (n *Node) Closest(src string) *Node {
	sel, err := ParseSelector(src)
	if err != nil {
		return nil
	}
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Matches(sel) {
			return cur
		}
	}
	return nil
}

// Find returns the first node in the document matching the selector.
func (d *Document) Find(src string) *Node {
	if d.root.MatchesSelector(src) {
		return d.root
	}
	return d.root.Find(src)
}

// FindAll returns all nodes in the document matching the selector,
// the root included.
func (d *Document) FindAll(src string) []*Node {
	var out []*Node
	if d.root.MatchesSelector(src) {
		out = append(out, d.root)
	}
	return append(out, d.root.FindAll(src)...)
}

// Query returns all nodes in the document matching a compiled selector.
func (d *Document) Query(sel *Selector) []*Node {
	var out []*Node
	if d.root.Matches(sel) {
		out = append(out, d.root)
	}
	return append(out, d.root.Query(sel)...)
}

// MatchesSelector reports whether the node matches a selector given as
// source text. Invalid selectors match nothing.
func (n *Node) MatchesSelector(src string) bool {
	sel, err := ParseSelector(src)
	if err != nil {
		return false
	}
	return n.Matches(sel)
}
