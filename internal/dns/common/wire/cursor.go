// Package wire provides the byte-level primitives for the DNS wire format
// as specified in RFC 1035: a position-tracked cursor over a message buffer,
// network-order integer access, character-strings, and the domain name codec
// with pointer compression.
package wire

import (
	"encoding/binary"
	"fmt"
)

// MaxMessageSize is the largest message buffer a Cursor accepts, the
// DNS-over-TCP maximum.
const MaxMessageSize = 64 * 1024

// Cursor tracks a position inside a message buffer. All primitives advance
// the position by exactly the number of bytes consumed or produced, and fail
// without advancing when the operation would cross the end of the buffer.
// The buffer is never reallocated; emit callers size it up front.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor returns a cursor positioned at the start of buf.
// Buffers beyond MaxMessageSize are rejected.
func NewCursor(buf []byte) (*Cursor, error) {
	if len(buf) > MaxMessageSize {
		return nil, fmt.Errorf("%w: message exceeds %d bytes", ErrTruncated, MaxMessageSize)
	}
	return &Cursor{buf: buf}, nil
}

// EmitCursor returns a cursor over a caller-sized emit buffer. Unlike
// NewCursor it applies no size ceiling; writers fail with ErrTruncated when
// the buffer runs out.
func EmitCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the current position.
func (c *Cursor) Pos() int { return c.pos }

// Seek moves the cursor to an absolute position inside the buffer.
func (c *Cursor) Seek(pos int) error {
	if pos < 0 || pos > len(c.buf) {
		return fmt.Errorf("%w: seek to %d of %d", ErrTruncated, pos, len(c.buf))
	}
	c.pos = pos
	return nil
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.buf) - c.pos }

// Bytes returns the portion of the buffer written so far.
func (c *Cursor) Bytes() []byte { return c.buf[:c.pos] }

// ReadUint8 reads one octet.
func (c *Cursor) ReadUint8() (uint8, error) {
	if c.Remaining() < 1 {
		return 0, fmt.Errorf("%w: uint8 at offset %d", ErrTruncated, c.pos)
	}
	v := c.buf[c.pos]
	c.pos++
	return v, nil
}

// ReadUint16 reads a big-endian 16-bit integer.
func (c *Cursor) ReadUint16() (uint16, error) {
	if c.Remaining() < 2 {
		return 0, fmt.Errorf("%w: uint16 at offset %d", ErrTruncated, c.pos)
	}
	v := binary.BigEndian.Uint16(c.buf[c.pos:])
	c.pos += 2
	return v, nil
}

// ReadUint32 reads a big-endian 32-bit integer.
func (c *Cursor) ReadUint32() (uint32, error) {
	if c.Remaining() < 4 {
		return 0, fmt.Errorf("%w: uint32 at offset %d", ErrTruncated, c.pos)
	}
	v := binary.BigEndian.Uint32(c.buf[c.pos:])
	c.pos += 4
	return v, nil
}

// ReadBytes reads exactly n octets.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 || c.Remaining() < n {
		return nil, fmt.Errorf("%w: %d bytes at offset %d", ErrTruncated, n, c.pos)
	}
	v := make([]byte, n)
	copy(v, c.buf[c.pos:])
	c.pos += n
	return v, nil
}

// ReadCharString reads an RFC 1035 character-string: a one-octet length L
// followed by L octets.
func (c *Cursor) ReadCharString() ([]byte, error) {
	l, err := c.ReadUint8()
	if err != nil {
		return nil, err
	}
	b, err := c.ReadBytes(int(l))
	if err != nil {
		c.pos--
		return nil, err
	}
	return b, nil
}

// WriteUint8 writes one octet.
func (c *Cursor) WriteUint8(v uint8) error {
	if c.Remaining() < 1 {
		return fmt.Errorf("%w: uint8 at offset %d", ErrTruncated, c.pos)
	}
	c.buf[c.pos] = v
	c.pos++
	return nil
}

// WriteUint16 writes a big-endian 16-bit integer.
func (c *Cursor) WriteUint16(v uint16) error {
	if c.Remaining() < 2 {
		return fmt.Errorf("%w: uint16 at offset %d", ErrTruncated, c.pos)
	}
	binary.BigEndian.PutUint16(c.buf[c.pos:], v)
	c.pos += 2
	return nil
}

// WriteUint32 writes a big-endian 32-bit integer.
func (c *Cursor) WriteUint32(v uint32) error {
	if c.Remaining() < 4 {
		return fmt.Errorf("%w: uint32 at offset %d", ErrTruncated, c.pos)
	}
	binary.BigEndian.PutUint32(c.buf[c.pos:], v)
	c.pos += 4
	return nil
}

// WriteBytes writes b verbatim.
func (c *Cursor) WriteBytes(b []byte) error {
	if c.Remaining() < len(b) {
		return fmt.Errorf("%w: %d bytes at offset %d", ErrTruncated, len(b), c.pos)
	}
	copy(c.buf[c.pos:], b)
	c.pos += len(b)
	return nil
}

// WriteCharString writes an RFC 1035 character-string. Strings longer than
// 255 octets do not fit the one-octet length prefix.
func (c *Cursor) WriteCharString(b []byte) error {
	if len(b) > 255 {
		return fmt.Errorf("character-string too long: %d octets", len(b))
	}
	if c.Remaining() < 1+len(b) {
		return fmt.Errorf("%w: %d bytes at offset %d", ErrTruncated, 1+len(b), c.pos)
	}
	if err := c.WriteUint8(uint8(len(b))); err != nil {
		return err
	}
	return c.WriteBytes(b)
}
