package dom

import "fmt"

// Attr is a single HTML attribute passed to an element constructor.
type Attr struct {
	Key   string
	Value string
}

// createElement builds a detached element from constructor arguments.
// Arguments are interpreted by type:
//   - Attr: set as an attribute. A repeated "class" key accumulates.
//   - string: appended as a text child.
//   - *Node: appended as a child.
//   - []*Node: each appended as a child.
//   - []Attr: each set as an attribute.
//   - nil: skipped.
//
// Anything else panics; constructor misuse is a programming error, not a
// runtime condition.
func createElement(tag string, args ...any) *Node {
	n := NewElement(tag)
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Skip; lets callers build conditionally.
		case Attr:
			n.applyAttr(v)
		case []Attr:
			for _, a := range v {
				n.applyAttr(a)
			}
		case string:
			n.appendBuilt(NewText(v))
		case *Node:
			if v != nil {
				n.appendBuilt(v)
			}
		case []*Node:
			for _, c := range v {
				if c != nil {
					n.appendBuilt(c)
				}
			}
		default:
			panic(fmt.Sprintf("dom: invalid argument type %T for <%s>", arg, tag))
		}
	}
	return n
}

func (n *Node) applyAttr(a Attr) {
	if a.Key == "" {
		return
	}
	if a.Key == "class" {
		if cur := n.Attrs["class"]; cur != "" && a.Value != "" {
			n.Attrs["class"] = cur + " " + a.Value
			return
		}
	}
	n.Attrs[a.Key] = a.Value
}

// appendBuilt attaches a child during construction, before the node
// belongs to any document. No mutation is recorded.
func (n *Node) appendBuilt(c *Node) {
	c.Parent = n
	n.Children = append(n.Children, c)
}

// ===== Document structure =====

func Html(args ...any) *Node  { return createElement("html", args...) }
func Head(args ...any) *Node  { return createElement("head", args...) }
func Body(args ...any) *Node  { return createElement("body", args...) }
func Title(args ...any) *Node { return createElement("title", args...) }
func Meta(args ...any) *Node  { return createElement("meta", args...) }
func LinkTag(args ...any) *Node {
	return createElement("link", args...)
}
func Script(args ...any) *Node { return createElement("script", args...) }
func StyleTag(args ...any) *Node {
	return createElement("style", args...)
}

// ===== Sectioning =====

func Main(args ...any) *Node    { return createElement("main", args...) }
func Section(args ...any) *Node { return createElement("section", args...) }
func Aside(args ...any) *Node   { return createElement("aside", args...) }
func Header(args ...any) *Node  { return createElement("header", args...) }
func Footer(args ...any) *Node  { return createElement("footer", args...) }
func Nav(args ...any) *Node     { return createElement("nav", args...) }

// ===== Grouping =====

func Div(args ...any) *Node  { return createElement("div", args...) }
func P(args ...any) *Node    { return createElement("p", args...) }
func Ul(args ...any) *Node   { return createElement("ul", args...) }
func Li(args ...any) *Node   { return createElement("li", args...) }
func Span(args ...any) *Node { return createElement("span", args...) }
func H1(args ...any) *Node   { return createElement("h1", args...) }
func H2(args ...any) *Node   { return createElement("h2", args...) }
func H3(args ...any) *Node   { return createElement("h3", args...) }
func A(args ...any) *Node    { return createElement("a", args...) }
func Strong(args ...any) *Node {
	return createElement("strong", args...)
}
func Em(args ...any) *Node { return createElement("em", args...) }

// ===== Tables =====

func Table(args ...any) *Node { return createElement("table", args...) }
func THead(args ...any) *Node { return createElement("thead", args...) }
func TBody(args ...any) *Node { return createElement("tbody", args...) }
func Tr(args ...any) *Node    { return createElement("tr", args...) }
func Th(args ...any) *Node    { return createElement("th", args...) }
func Td(args ...any) *Node    { return createElement("td", args...) }

// ===== Forms =====

func Form(args ...any) *Node     { return createElement("form", args...) }
func Label(args ...any) *Node    { return createElement("label", args...) }
func Input(args ...any) *Node    { return createElement("input", args...) }
func Textarea(args ...any) *Node { return createElement("textarea", args...) }
func Select(args ...any) *Node   { return createElement("select", args...) }
func Option(args ...any) *Node   { return createElement("option", args...) }
func Button(args ...any) *Node   { return createElement("button", args...) }

// ===== Media =====

func Img(args ...any) *Node    { return createElement("img", args...) }
func Canvas(args ...any) *Node { return createElement("canvas", args...) }
