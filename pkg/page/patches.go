package page

import (
	"github.com/glint-go/glint/pkg/dom"
	"github.com/glint-go/glint/pkg/protocol"
)

// FlushPatches drains the document's mutation log and converts it to
// wire patches in application order. Inserted subtrees are serialized
// with node IDs so the client can address them in later patches.
//
// Sessions call this after every dispatched event and timer callback;
// an empty slice means nothing changed.
func (p *Page) FlushPatches() []protocol.Patch {
	muts := p.log.Drain()
	if len(muts) == 0 {
		return nil
	}
	patches := make([]protocol.Patch, 0, len(muts))
	for _, m := range muts {
		if pt, ok := convertMutation(m); ok {
			patches = append(patches, pt)
		}
	}
	return patches
}

// NextSeq returns the next patch-batch sequence number.
func (p *Page) NextSeq() uint64 {
	p.seq++
	return p.seq
}

// Batch drains pending mutations into a numbered patch batch, nil when
// nothing changed.
func (p *Page) Batch() *protocol.Batch {
	patches := p.FlushPatches()
	if len(patches) == 0 {
		return nil
	}
	return &protocol.Batch{Seq: p.NextSeq(), Patches: patches}
}

func convertMutation(m dom.Mutation) (protocol.Patch, bool) {
	t := m.Target
	if t == nil {
		return protocol.Patch{}, false
	}
	switch m.Op {
	case dom.OpSetAttr:
		return protocol.Patch{Op: protocol.PatchSetAttr, Target: t.ID, Key: m.Key, Value: m.Value}, true
	case dom.OpRemoveAttr:
		return protocol.Patch{Op: protocol.PatchRemoveAttr, Target: t.ID, Key: m.Key}, true
	case dom.OpAddClass:
		return protocol.Patch{Op: protocol.PatchAddClass, Target: t.ID, Key: m.Key}, true
	case dom.OpRemoveClass:
		return protocol.Patch{Op: protocol.PatchRemoveClass, Target: t.ID, Key: m.Key}, true
	case dom.OpSetText:
		return protocol.Patch{Op: protocol.PatchSetText, Target: t.ID, Value: m.Value}, true
	case dom.OpInsert:
		return protocol.Patch{
			Op:     protocol.PatchInsert,
			Target: t.ID,
			Parent: m.Parent.ID,
			Index:  m.Index,
			HTML:   dom.RenderHTML(t),
		}, true
	case dom.OpRemove:
		return protocol.Patch{Op: protocol.PatchRemove, Target: t.ID}, true
	case dom.OpMove:
		return protocol.Patch{
			Op:     protocol.PatchMove,
			Target: t.ID,
			Parent: m.Parent.ID,
			Index:  m.Index,
		}, true
	default:
		return protocol.Patch{}, false
	}
}
