// Copyright 2026 The Classkit Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

// Cursor reads a byte slice sequentially and tracks the current position.
// Unlike a random-access reader it never seeks backward; the class file
// grammar (spec §4.1) is a strict left-to-right sequence of
// fixed-and-length-prefixed fields, so a cursor only ever needs to hand
// back the next n bytes and advance.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor returns a Cursor positioned at the start of buf.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Position returns the current byte offset, for use in error messages.
func (c *Cursor) Position() int {
	return c.pos
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// Take returns the next n bytes and advances the cursor past them. The
// returned slice aliases the underlying buffer; callers that need to hold
// onto it past further decoding should copy it.
func (c *Cursor) Take(n int) ([]byte, error) {
	if n < 0 {
		return nil, errUnexpectedEOF(c.pos, "negative read length")
	}
	if n > c.Remaining() {
		return nil, errUnexpectedEOF(c.pos, "short read")
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// ReadU8 reads one unsigned byte.
func (c *Cursor) ReadU8() (uint8, error) {
	b, err := c.Take(1)
	if err != nil {
		return 0, err
	}
	return decodeU8(b), nil
}

// ReadU16 reads a big-endian unsigned 16-bit integer.
func (c *Cursor) ReadU16() (uint16, error) {
	b, err := c.Take(2)
	if err != nil {
		return 0, err
	}
	return decodeU16(b), nil
}

// ReadU32 reads a big-endian unsigned 32-bit integer.
func (c *Cursor) ReadU32() (uint32, error) {
	b, err := c.Take(4)
	if err != nil {
		return 0, err
	}
	return decodeU32(b), nil
}

// ReadI32 reads a big-endian two's-complement 32-bit integer.
func (c *Cursor) ReadI32() (int32, error) {
	b, err := c.Take(4)
	if err != nil {
		return 0, err
	}
	return decodeI32(b), nil
}

// ReadI64 reads a big-endian two's-complement 64-bit integer.
func (c *Cursor) ReadI64() (int64, error) {
	b, err := c.Take(8)
	if err != nil {
		return 0, err
	}
	return decodeI64(b), nil
}

// ReadF32 reads an IEEE 754 single-precision float.
func (c *Cursor) ReadF32() (float32, error) {
	b, err := c.Take(4)
	if err != nil {
		return 0, err
	}
	return decodeF32(b), nil
}

// ReadF64 reads an IEEE 754 double-precision float.
func (c *Cursor) ReadF64() (float64, error) {
	b, err := c.Take(8)
	if err != nil {
		return 0, err
	}
	return decodeF64(b), nil
}
