package protocol

import (
	"errors"
	"io"
)

// Codec limits. Length prefixes are validated against these before any
// allocation, so a hostile peer cannot force large allocations with a
// small message.
const (
	// MaxAlloc is the largest single string or byte payload a decoder
	// will allocate.
	MaxAlloc = 1 << 20

	// MaxCount is the largest collection size a decoder will accept.
	MaxCount = 65536
)

// Codec errors.
var (
	ErrVarintOverflow = errors.New("protocol: varint overflow")
	ErrAllocTooLarge  = errors.New("protocol: allocation exceeds limit")
	ErrCountTooLarge  = errors.New("protocol: collection count exceeds limit")
)

// Encoder appends protocol primitives to a growable buffer.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an encoder with a small initial buffer.
func NewEncoder() *Encoder {
	return &Encoder{buf: make([]byte, 0, 128)}
}

// Bytes returns the encoded buffer. It is valid until the next write or
// Reset.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Len returns the number of encoded bytes.
func (e *Encoder) Len() int {
	return len(e.buf)
}

// Reset empties the encoder, keeping the buffer capacity.
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
}

// Byte appends one byte.
func (e *Encoder) Byte(b byte) {
	e.buf = append(e.buf, b)
}

// Uvarint appends an unsigned varint, seven data bits per byte with a
// continuation bit.
func (e *Encoder) Uvarint(v uint64) {
	for v >= 0x80 {
		e.buf = append(e.buf, byte(v)|0x80)
		v >>= 7
	}
	e.buf = append(e.buf, byte(v))
}

// Svarint appends a signed varint, zigzag-mapped onto unsigned.
func (e *Encoder) Svarint(v int64) {
	e.Uvarint(uint64((v << 1) ^ (v >> 63)))
}

// String appends a length-prefixed UTF-8 string.
func (e *Encoder) String(s string) {
	e.Uvarint(uint64(len(s)))
	e.buf = append(e.buf, s...)
}

// Uint64 appends a fixed-width big-endian uint64.
func (e *Encoder) Uint64(v uint64) {
	e.buf = append(e.buf,
		byte(v>>56), byte(v>>48), byte(v>>40), byte(v>>32),
		byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// Bool appends a boolean as one byte.
func (e *Encoder) Bool(b bool) {
	if b {
		e.buf = append(e.buf, 1)
	} else {
		e.buf = append(e.buf, 0)
	}
}

// Decoder reads protocol primitives from a buffer.
type Decoder struct {
	buf []byte
	pos int
}

// NewDecoder wraps a payload buffer.
func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buf: buf}
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int {
	return len(d.buf) - d.pos
}

// EOF reports whether the buffer is fully consumed.
func (d *Decoder) EOF() bool {
	return d.pos >= len(d.buf)
}

// Byte reads one byte.
func (d *Decoder) Byte() (byte, error) {
	if d.pos >= len(d.buf) {
		return 0, io.ErrUnexpectedEOF
	}
	b := d.buf[d.pos]
	d.pos++
	return b, nil
}

// Uvarint reads an unsigned varint.
func (d *Decoder) Uvarint() (uint64, error) {
	var v uint64
	var shift uint
	for {
		if d.pos >= len(d.buf) {
			return 0, io.ErrUnexpectedEOF
		}
		b := d.buf[d.pos]
		d.pos++
		v |= uint64(b&0x7F) << shift
		if b < 0x80 {
			return v, nil
		}
		shift += 7
		if shift >= 64 {
			return 0, ErrVarintOverflow
		}
	}
}

// Svarint reads a signed varint.
func (d *Decoder) Svarint() (int64, error) {
	uv, err := d.Uvarint()
	if err != nil {
		return 0, err
	}
	v := int64(uv >> 1)
	if uv&1 != 0 {
		v = ^v
	}
	return v, nil
}

// String reads a length-prefixed UTF-8 string.
func (d *Decoder) String() (string, error) {
	length, err := d.Uvarint()
	if err != nil {
		return "", err
	}
	if length > uint64(d.Remaining()) {
		return "", io.ErrUnexpectedEOF
	}
	if length > MaxAlloc {
		return "", ErrAllocTooLarge
	}
	n := int(length)
	s := string(d.buf[d.pos : d.pos+n])
	d.pos += n
	return s, nil
}

// Uint64 reads a fixed-width big-endian uint64.
func (d *Decoder) Uint64() (uint64, error) {
	if d.pos+8 > len(d.buf) {
		return 0, io.ErrUnexpectedEOF
	}
	b := d.buf[d.pos:]
	v := uint64(b[0])<<56 | uint64(b[1])<<48 | uint64(b[2])<<40 | uint64(b[3])<<32 |
		uint64(b[4])<<24 | uint64(b[5])<<16 | uint64(b[6])<<8 | uint64(b[7])
	d.pos += 8
	return v, nil
}

// Bool reads a boolean byte. Any nonzero value is true.
func (d *Decoder) Bool() (bool, error) {
	b, err := d.Byte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

// Count reads a collection count and validates it against MaxCount and
// the remaining buffer.
func (d *Decoder) Count() (int, error) {
	n, err := d.Uvarint()
	if err != nil {
		return 0, err
	}
	if n > MaxCount {
		return 0, ErrCountTooLarge
	}
	if n > uint64(d.Remaining()) {
		return 0, io.ErrUnexpectedEOF
	}
	return int(n), nil
}
