// Package dom provides the server-side document tree that Glint features
// operate on.
//
// A Document wraps a tree of Nodes, typically parsed from server-rendered
// HTML or built with the element constructors in this package. Every node
// adopted into a document receives a stable node ID so that mutations can
// be addressed over the wire.
//
// Mutations performed through the Node methods (SetAttr, AddClass,
// AppendChild, Remove, ...) are applied to the tree immediately and, when
// the document has a MutationLog attached, recorded in order. The log is
// the source for patch frames sent to a connected client; there is no
// tree diffing step.
//
// The package also includes a small selector engine covering the subset
// of CSS selectors Glint bindings use: tag names, classes, attribute
// presence and equality, compound selectors, descendant combinators, and
// comma-separated groups.
package dom
