package dom

import "strconv"

// IDGenerator produces stable node IDs for a document.
//
// IDs are short strings ("g1", "g2", ...) assigned in adoption order, so
// a server re-rendering the same page deterministically produces the same
// IDs the client saw in the initial HTML.
type IDGenerator struct {
	prefix string
	next   uint64
}

// NewIDGenerator creates a generator with the given prefix.
func NewIDGenerator(prefix string) *IDGenerator {
	return &IDGenerator{prefix: prefix, next: 1}
}

// Next returns the next ID in sequence.
func (g *IDGenerator) Next() string {
	id := g.prefix + strconv.FormatUint(g.next, 10)
	g.next++
	return id
}

// Count returns how many IDs have been issued.
func (g *IDGenerator) Count() uint64 {
	return g.next - 1
}

// Document owns a node tree and the bookkeeping around it: ID assignment,
// the ID index used to resolve wire events, and the optional mutation log.
//
// Documents are not safe for concurrent use. A page and its document are
// driven by a single goroutine (the session event loop), which is the same
// discipline the browser document imposes.
type Document struct {
	root *Node
	ids  *IDGenerator
	byID map[string]*Node
	log  *MutationLog
}

// NewDocument creates a document around root and adopts the whole tree,
// assigning node IDs in document order.
func NewDocument(root *Node) *Document {
	d := &Document{
		root: root,
		ids:  NewIDGenerator("g"),
		byID: make(map[string]*Node),
	}
	d.adopt(root)
	return d
}

// Root returns the document's root node.
func (d *Document) Root() *Node {
	return d.root
}

// Body returns the <body> element, or the root if the tree has none.
func (d *Document) Body() *Node {
	if b := d.findTag(d.root, "body"); b != nil {
		return b
	}
	return d.root
}

// Head returns the <head> element, nil if the tree has none.
func (d *Document) Head() *Node {
	return d.findTag(d.root, "head")
}

func (d *Document) findTag(n *Node, tag string) *Node {
	if n == nil {
		return nil
	}
	if n.Kind == KindElement && n.Tag == tag {
		return n
	}
	for _, c := range n.Children {
		if found := d.findTag(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// NodeByID resolves a node ID assigned by this document, nil if unknown.
func (d *Document) NodeByID(id string) *Node {
	return d.byID[id]
}

// Observe attaches a mutation log. Subsequent mutations through Node
// methods are recorded to it. Passing nil detaches the current log.
func (d *Document) Observe(log *MutationLog) {
	d.log = log
}

// Log returns the attached mutation log, nil if none.
func (d *Document) Log() *MutationLog {
	return d.log
}

// adopt claims a subtree for this document, assigning IDs to element
// nodes that have none.
func (d *Document) adopt(n *Node) {
	if n == nil {
		return
	}
	n.doc = d
	if n.Kind == KindElement {
		if n.ID == "" {
			n.ID = d.ids.Next()
		}
		d.byID[n.ID] = n
	}
	for _, c := range n.Children {
		c.Parent = n
		d.adopt(c)
	}
}

// release clears document ownership from a detached subtree. IDs stay
// assigned so late events addressing removed nodes resolve to nothing
// rather than to a reused ID.
func (d *Document) release(n *Node) {
	if n == nil {
		return
	}
	n.doc = nil
	if n.ID != "" {
		delete(d.byID, n.ID)
	}
	for _, c := range n.Children {
		d.release(c)
	}
}

func (d *Document) record(m Mutation) {
	if d.log != nil {
		d.log.Record(m)
	}
}
