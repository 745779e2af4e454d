package dom

import "strings"

// MutationOp is the kind of a recorded tree mutation.
type MutationOp uint8

const (
	OpSetAttr MutationOp = iota + 1
	OpRemoveAttr
	OpAddClass
	OpRemoveClass
	OpSetText
	OpInsert
	OpRemove
	OpMove
)

// String returns the operation name for logs.
func (op MutationOp) String() string {
	switch op {
	case OpSetAttr:
		return "SetAttr"
	case OpRemoveAttr:
		return "RemoveAttr"
	case OpAddClass:
		return "AddClass"
	case OpRemoveClass:
		return "RemoveClass"
	case OpSetText:
		return "SetText"
	case OpInsert:
		return "Insert"
	case OpRemove:
		return "Remove"
	case OpMove:
		return "Move"
	default:
		return "Unknown"
	}
}

// Mutation is one recorded change to the document tree.
//
// Target is the mutated node. For OpInsert and OpMove, Parent and Index
// describe the new position; for OpRemove they describe the position the
// node was removed from. Key/Value carry attribute names, class names,
// and text content depending on Op.
type Mutation struct {
	Op     MutationOp
	Target *Node
	Key    string
	Value  string
	Parent *Node
	Index  int
}

// MutationLog collects mutations in application order.
//
// A page attaches one log per flush cycle; the session drains it after
// each dispatched event and converts the entries to wire patches.
type MutationLog struct {
	muts []Mutation
}

// NewMutationLog returns an empty log.
func NewMutationLog() *MutationLog {
	return &MutationLog{}
}

// Record appends a mutation.
func (l *MutationLog) Record(m Mutation) {
	l.muts = append(l.muts, m)
}

// Len returns the number of recorded mutations.
func (l *MutationLog) Len() int {
	return len(l.muts)
}

// Drain returns all recorded mutations and resets the log.
func (l *MutationLog) Drain() []Mutation {
	out := l.muts
	l.muts = nil
	return out
}

// ===== Attribute mutations =====

// SetAttr sets an attribute. Setting the current value again is a no-op
// and records nothing.
func (n *Node) SetAttr(key, val string) {
	if n == nil || n.Kind != KindElement {
		return
	}
	if n.Attrs == nil {
		n.Attrs = map[string]string{}
	}
	if cur, ok := n.Attrs[key]; ok && cur == val {
		return
	}
	n.Attrs[key] = val
	if n.doc != nil {
		n.doc.record(Mutation{Op: OpSetAttr, Target: n, Key: key, Value: val})
	}
}

// SetAttrQuiet sets an attribute without recording a mutation. The page
// runtime uses it to mirror client-originated state (an input's live
// value) that the client already has.
func (n *Node) SetAttrQuiet(key, val string) {
	if n == nil || n.Kind != KindElement {
		return
	}
	if n.Attrs == nil {
		n.Attrs = map[string]string{}
	}
	n.Attrs[key] = val
}

// RemoveAttr removes an attribute. Removing an absent attribute records
// nothing.
func (n *Node) RemoveAttr(key string) {
	if n == nil || n.Attrs == nil {
		return
	}
	if _, ok := n.Attrs[key]; !ok {
		return
	}
	delete(n.Attrs, key)
	if n.doc != nil {
		n.doc.record(Mutation{Op: OpRemoveAttr, Target: n, Key: key})
	}
}

// ===== Class mutations =====

// AddClass adds each class name not already present.
func (n *Node) AddClass(names ...string) {
	if n == nil || n.Kind != KindElement {
		return
	}
	for _, name := range names {
		if name == "" || n.HasClass(name) {
			continue
		}
		list := n.ClassList()
		list = append(list, name)
		n.SetAttrQuiet("class", strings.Join(list, " "))
		if n.doc != nil {
			n.doc.record(Mutation{Op: OpAddClass, Target: n, Key: name})
		}
	}
}

// RemoveClass removes each class name that is present.
func (n *Node) RemoveClass(names ...string) {
	if n == nil || n.Kind != KindElement {
		return
	}
	for _, name := range names {
		if !n.HasClass(name) {
			continue
		}
		list := n.ClassList()
		kept := list[:0]
		for _, c := range list {
			if c != name {
				kept = append(kept, c)
			}
		}
		if len(kept) == 0 {
			n.SetAttrQuiet("class", "")
		} else {
			n.SetAttrQuiet("class", strings.Join(kept, " "))
		}
		if n.doc != nil {
			n.doc.record(Mutation{Op: OpRemoveClass, Target: n, Key: name})
		}
	}
}

// ToggleClass adds the class if absent, removes it if present, and
// reports whether it is present afterwards.
func (n *Node) ToggleClass(name string) bool {
	if n.HasClass(name) {
		n.RemoveClass(name)
		return false
	}
	n.AddClass(name)
	return true
}

// ===== Content mutations =====

// SetText replaces the node's children with a single text node.
func (n *Node) SetText(s string) {
	if n == nil || n.Kind != KindElement {
		return
	}
	if len(n.Children) == 1 && n.Children[0].Kind == KindText && n.Children[0].Text == s {
		return
	}
	if n.doc != nil {
		for _, c := range n.Children {
			n.doc.release(c)
		}
	}
	t := NewText(s)
	t.Parent = n
	if n.doc != nil {
		t.doc = n.doc
	}
	n.Children = []*Node{t}
	if n.doc != nil {
		n.doc.record(Mutation{Op: OpSetText, Target: n, Value: s})
	}
}

// ===== Tree mutations =====

// AppendChild attaches c as the last child of n. A child already in the
// same document is moved; a detached subtree is adopted and recorded as
// an insertion.
func (n *Node) AppendChild(c *Node) {
	if n == nil || c == nil {
		return
	}
	n.InsertChild(len(n.Children), c)
}

// InsertChild attaches c at position i among n's children, clamping i to
// the valid range. Moves within the same document record OpMove; newly
// adopted subtrees record OpInsert.
func (n *Node) InsertChild(i int, c *Node) {
	if n == nil || c == nil || n.Kind != KindElement {
		return
	}
	sameDoc := c.doc != nil && c.doc == n.doc
	if c.Parent != nil {
		c.Parent.detach(c)
	}
	if i < 0 {
		i = 0
	}
	if i > len(n.Children) {
		i = len(n.Children)
	}
	n.Children = append(n.Children, nil)
	copy(n.Children[i+1:], n.Children[i:])
	n.Children[i] = c
	c.Parent = n

	if n.doc == nil {
		return
	}
	if sameDoc {
		n.doc.record(Mutation{Op: OpMove, Target: c, Parent: n, Index: i})
		return
	}
	n.doc.adopt(c)
	n.doc.record(Mutation{Op: OpInsert, Target: c, Parent: n, Index: i})
}

// Remove detaches the node from its parent and releases its subtree from
// the document. Removing an already-detached node is a no-op.
func (n *Node) Remove() {
	if n == nil || n.Parent == nil {
		return
	}
	parent := n.Parent
	idx := parent.ChildIndex(n)
	parent.detach(n)
	if doc := parent.doc; doc != nil {
		doc.record(Mutation{Op: OpRemove, Target: n, Parent: parent, Index: idx})
		doc.release(n)
	}
}

// detach unlinks c from n without recording or releasing. Callers decide
// whether the detachment is a move or a removal.
func (n *Node) detach(c *Node) {
	idx := n.ChildIndex(c)
	if idx < 0 {
		return
	}
	n.Children = append(n.Children[:idx], n.Children[idx+1:]...)
	c.Parent = nil
}
