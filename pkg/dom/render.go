package dom

import (
	"io"
	"sort"
	"strings"
)

// IDAttrName is the attribute carrying node IDs in rendered output when
// RenderConfig.IncludeIDs is set. The client echoes it back as the event
// target.
const IDAttrName = "data-g"

// voidElements have no closing tag and may not have children.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// rawTextElements render their text children without escaping.
var rawTextElements = map[string]bool{
	"script": true, "style": true,
}

// RenderConfig controls HTML serialization.
type RenderConfig struct {
	// Pretty adds newlines and indentation. Off for wire payloads.
	Pretty bool

	// Indent is the indentation unit when Pretty is set. Defaults to
	// two spaces.
	Indent string

	// IncludeIDs emits each adopted element's node ID as a data-g
	// attribute so a client can address patches and events.
	IncludeIDs bool

	// Doctype prepends <!DOCTYPE html>. Only sensible for full
	// documents.
	Doctype bool
}

// DefaultRenderConfig returns the compact configuration used for patch
// payloads.
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{IncludeIDs: true}
}

type renderer struct {
	w   io.Writer
	cfg RenderConfig
	err error
}

// RenderToString serializes a node subtree to HTML.
func RenderToString(n *Node, cfg *RenderConfig) string {
	var b strings.Builder
	RenderToWriter(&b, n, cfg)
	return b.String()
}

// RenderHTML serializes a subtree with the default compact configuration.
func RenderHTML(n *Node) string {
	return RenderToString(n, DefaultRenderConfig())
}

// RenderDocument serializes a full document with doctype and node IDs,
// pretty-printed for readability in view-source.
func RenderDocument(d *Document) string {
	return RenderToString(d.Root(), &RenderConfig{
		Pretty:     true,
		IncludeIDs: true,
		Doctype:    true,
	})
}

// RenderToWriter serializes a node subtree to w.
func RenderToWriter(w io.Writer, n *Node, cfg *RenderConfig) error {
	r := renderer{w: w}
	if cfg != nil {
		r.cfg = *cfg
	}
	if r.cfg.Indent == "" {
		r.cfg.Indent = "  "
	}
	if r.cfg.Doctype {
		r.write("<!DOCTYPE html>")
		r.newline()
	}
	r.render(n, 0)
	return r.err
}

func (r *renderer) write(s string) {
	if r.err != nil {
		return
	}
	_, r.err = io.WriteString(r.w, s)
}

func (r *renderer) newline() {
	if r.cfg.Pretty {
		r.write("\n")
	}
}

func (r *renderer) indent(depth int) {
	if !r.cfg.Pretty {
		return
	}
	for i := 0; i < depth; i++ {
		r.write(r.cfg.Indent)
	}
}

func (r *renderer) render(n *Node, depth int) {
	if n == nil {
		return
	}
	switch n.Kind {
	case KindText:
		if r.cfg.Pretty && strings.TrimSpace(n.Text) == "" {
			return
		}
		r.write(escapeHTML(n.Text))
	case KindRaw:
		r.write(n.Text)
	case KindElement:
		r.renderElement(n, depth)
	}
}

func (r *renderer) renderElement(n *Node, depth int) {
	r.indent(depth)
	r.write("<")
	r.write(n.Tag)
	r.renderAttrs(n)

	if voidElements[n.Tag] {
		r.write(">")
		r.newline()
		return
	}
	r.write(">")

	raw := rawTextElements[n.Tag]
	inline := !r.cfg.Pretty || r.inlineChildren(n)
	if !inline {
		r.newline()
	}
	for _, c := range n.Children {
		if raw && c.Kind == KindText {
			r.write(c.Text)
			continue
		}
		if inline {
			r.renderInline(c)
		} else {
			r.render(c, depth+1)
		}
	}
	if !inline {
		r.indent(depth)
	}
	r.write("</")
	r.write(n.Tag)
	r.write(">")
	r.newline()
}

// renderInline renders without indentation, for elements whose children
// are pure text.
func (r *renderer) renderInline(n *Node) {
	switch n.Kind {
	case KindText:
		r.write(escapeHTML(n.Text))
	case KindRaw:
		r.write(n.Text)
	case KindElement:
		save := r.cfg.Pretty
		r.cfg.Pretty = false
		r.renderElement(n, 0)
		r.cfg.Pretty = save
	}
}

// inlineChildren reports whether the element's children are simple
// enough to render on one line.
func (r *renderer) inlineChildren(n *Node) bool {
	for _, c := range n.Children {
		if c.Kind == KindElement {
			return false
		}
	}
	return true
}

func (r *renderer) renderAttrs(n *Node) {
	keys := make([]string, 0, len(n.Attrs)+1)
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := n.Attrs[k]
		if v == "" && isBooleanAttr(k) {
			r.write(" ")
			r.write(k)
			continue
		}
		r.write(" ")
		r.write(k)
		r.write(`="`)
		r.write(escapeAttr(v))
		r.write(`"`)
	}
	if r.cfg.IncludeIDs && n.ID != "" {
		r.write(" " + IDAttrName + `="`)
		r.write(escapeAttr(n.ID))
		r.write(`"`)
	}
}

// isBooleanAttr reports whether an empty-valued attribute should render
// without ="".
func isBooleanAttr(k string) bool {
	switch k {
	case "required", "disabled", "checked", "selected", "readonly",
		"multiple", "autofocus", "hidden", "open":
		return true
	}
	return false
}

// escapeHTML escapes text for HTML content position.
func escapeHTML(s string) string {
	if !strings.ContainsAny(s, `&<>"'`) {
		return s
	}
	var buf strings.Builder
	buf.Grow(len(s) + 8)
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

// escapeAttr escapes text for attribute-value position. Beyond the
// content entities it escapes whitespace that would break attribute
// parsing.
func escapeAttr(s string) string {
	if !strings.ContainsAny(s, "&<>\"'\n\r\t") {
		return s
	}
	var buf strings.Builder
	buf.Grow(len(s) + 8)
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		case '\n':
			buf.WriteString("&#10;")
		case '\r':
			buf.WriteString("&#13;")
		case '\t':
			buf.WriteString("&#9;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
