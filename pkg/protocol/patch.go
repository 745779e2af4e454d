package protocol

import "fmt"

// PatchOp is one DOM mutation instruction for the client.
type PatchOp uint8

const (
	PatchSetAttr     PatchOp = 0x01
	PatchRemoveAttr  PatchOp = 0x02
	PatchAddClass    PatchOp = 0x03
	PatchRemoveClass PatchOp = 0x04
	PatchSetText     PatchOp = 0x05
	PatchInsert      PatchOp = 0x06
	PatchRemove      PatchOp = 0x07
	PatchMove        PatchOp = 0x08
)

// String returns the operation name.
func (op PatchOp) String() string {
	switch op {
	case PatchSetAttr:
		return "SetAttr"
	case PatchRemoveAttr:
		return "RemoveAttr"
	case PatchAddClass:
		return "AddClass"
	case PatchRemoveClass:
		return "RemoveClass"
	case PatchSetText:
		return "SetText"
	case PatchInsert:
		return "Insert"
	case PatchRemove:
		return "Remove"
	case PatchMove:
		return "Move"
	default:
		return "Unknown"
	}
}

// Patch is one DOM mutation.
//
// Target is the node ID the mutation applies to. Key carries attribute
// and class names, Value attribute values and text content. Insert and
// Move address a Parent and child Index; Insert additionally carries
// the serialized HTML of the inserted subtree.
type Patch struct {
	Op     PatchOp
	Target string
	Key    string
	Value  string
	Parent string
	Index  int
	HTML   string
}

// Batch is a numbered group of patches produced by one dispatch.
type Batch struct {
	Seq     uint64
	Patches []Patch
}

// EncodeBatch serializes a patch batch payload.
func EncodeBatch(b *Batch) []byte {
	e := NewEncoder()
	e.Uvarint(b.Seq)
	e.Uvarint(uint64(len(b.Patches)))
	for i := range b.Patches {
		encodePatch(e, &b.Patches[i])
	}
	return e.Bytes()
}

func encodePatch(e *Encoder, p *Patch) {
	e.Byte(byte(p.Op))
	e.String(p.Target)
	switch p.Op {
	case PatchSetAttr:
		e.String(p.Key)
		e.String(p.Value)
	case PatchRemoveAttr, PatchAddClass, PatchRemoveClass:
		e.String(p.Key)
	case PatchSetText:
		e.String(p.Value)
	case PatchInsert:
		e.String(p.Parent)
		e.Uvarint(uint64(p.Index))
		e.String(p.HTML)
	case PatchRemove:
		// Target only.
	case PatchMove:
		e.String(p.Parent)
		e.Uvarint(uint64(p.Index))
	}
}

// DecodeBatch parses a patch batch payload.
func DecodeBatch(data []byte) (*Batch, error) {
	d := NewDecoder(data)
	seq, err := d.Uvarint()
	if err != nil {
		return nil, err
	}
	count, err := d.Count()
	if err != nil {
		return nil, err
	}
	b := &Batch{Seq: seq, Patches: make([]Patch, 0, count)}
	for i := 0; i < count; i++ {
		p, err := decodePatch(d)
		if err != nil {
			return nil, fmt.Errorf("protocol: patch %d: %w", i, err)
		}
		b.Patches = append(b.Patches, p)
	}
	return b, nil
}

func decodePatch(d *Decoder) (Patch, error) {
	var p Patch
	op, err := d.Byte()
	if err != nil {
		return p, err
	}
	p.Op = PatchOp(op)
	if p.Target, err = d.String(); err != nil {
		return p, err
	}
	switch p.Op {
	case PatchSetAttr:
		if p.Key, err = d.String(); err != nil {
			return p, err
		}
		if p.Value, err = d.String(); err != nil {
			return p, err
		}
	case PatchRemoveAttr, PatchAddClass, PatchRemoveClass:
		if p.Key, err = d.String(); err != nil {
			return p, err
		}
	case PatchSetText:
		if p.Value, err = d.String(); err != nil {
			return p, err
		}
	case PatchInsert:
		if p.Parent, err = d.String(); err != nil {
			return p, err
		}
		idx, err := d.Uvarint()
		if err != nil {
			return p, err
		}
		p.Index = int(idx)
		if p.HTML, err = d.String(); err != nil {
			return p, err
		}
	case PatchRemove:
		// Target only.
	case PatchMove:
		if p.Parent, err = d.String(); err != nil {
			return p, err
		}
		idx, err := d.Uvarint()
		if err != nil {
			return p, err
		}
		p.Index = int(idx)
	default:
		return p, fmt.Errorf("unknown patch op 0x%02x", op)
	}
	return p, nil
}
