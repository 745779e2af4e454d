package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse reads an HTML document and returns a Document around its <html>
// element. The parser is the standard HTML5 parser, so the usual
// normalizations apply: missing html/head/body elements are synthesized,
// tag names are lowercased.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse: %w", err)
	}
	n := convertTree(root)
	if n == nil {
		return nil, fmt.Errorf("dom: parse: document has no element content")
	}
	return NewDocument(n), nil
}

// ParseString parses an HTML document from a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// ParseFragment parses markup in body context and returns the top-level
// nodes, detached. Useful for building test fixtures.
func ParseFragment(s string) ([]*Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(s), ctx)
	if err != nil {
		return nil, fmt.Errorf("dom: parse fragment: %w", err)
	}
	var out []*Node
	for _, hn := range nodes {
		if n := convert(hn); n != nil {
			out = append(out, n)
		}
	}
	return out, nil
}

// convertTree finds the root element beneath an html.Document node and
// converts it.
func convertTree(doc *html.Node) *Node {
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return convert(c)
		}
	}
	return nil
}

// convert maps an html.Node subtree to this package's representation.
// Comments and doctype nodes are dropped; they carry no behavior.
func convert(hn *html.Node) *Node {
	switch hn.Type {
	case html.TextNode:
		return NewText(hn.Data)
	case html.ElementNode:
		n := NewElement(hn.Data)
		for _, a := range hn.Attr {
			n.Attrs[a.Key] = a.Val
		}
		for c := hn.FirstChild; c != nil; c = c.NextSibling {
			if child := convert(c); child != nil {
				child.Parent = n
				n.Children = append(n.Children, child)
			}
		}
		return n
	default:
		return nil
	}
}
