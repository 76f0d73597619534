// Package cursor implements bounds-checked sequential reads over a
// little-endian byte buffer.
//
// A read either consumes exactly the bytes it needs and advances, or fails
// with ErrTruncated and leaves the cursor where it was.
package cursor

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
)

// ErrTruncated is returned when a read needs more bytes than remain.
var ErrTruncated = errors.New("payload truncated")

// Cursor reads from a byte buffer it does not own. Values returned by the
// string and byte reads are copies.
type Cursor struct {
	buf []byte
	off int
}

// New creates a cursor at the start of b. A nil b is an empty buffer.
func New(b []byte) *Cursor {
	return &Cursor{buf: b}
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.off
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int {
	return c.off
}

// Peek returns the byte at offset bytes past the current position without
// consuming anything.
func (c *Cursor) Peek(offset int) (byte, error) {
	if offset < 0 || offset >= c.Remaining() {
		return 0, ErrTruncated
	}
	return c.buf[c.off+offset], nil
}

// take returns the next n bytes and advances, aliasing the buffer.
func (c *Cursor) take(n int) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, ErrTruncated
	}
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b, nil
}

// Skip consumes n bytes.
func (c *Cursor) Skip(n int) error {
	_, err := c.take(n)
	return err
}

// Bytes consumes n bytes and returns a copy of them.
func (c *Cursor) Bytes(n int) ([]byte, error) {
	b, err := c.take(n)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), b...), nil
}

func (c *Cursor) Uint8() (uint8, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *Cursor) Uint16() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *Cursor) Uint32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (c *Cursor) Uint64() (uint64, error) {
	b, err := c.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (c *Cursor) Int8() (int8, error) {
	v, err := c.Uint8()
	return int8(v), err
}

func (c *Cursor) Int16() (int16, error) {
	v, err := c.Uint16()
	return int16(v), err
}

func (c *Cursor) Int32() (int32, error) {
	v, err := c.Uint32()
	return int32(v), err
}

func (c *Cursor) Int64() (int64, error) {
	v, err := c.Uint64()
	return int64(v), err
}

// NarrowString consumes a NUL-terminated single-byte string, terminator
// included. The terminator is not part of the result.
func (c *Cursor) NarrowString() (string, error) {
	rest := c.buf[c.off:]
	end := bytes.IndexByte(rest, 0)
	if end < 0 {
		return "", ErrTruncated
	}
	s := string(rest[:end])
	c.off += end + 1
	return s, nil
}

// WideString consumes a UTF-16LE string terminated by a zero code unit,
// terminator included. Code units are scanned on two-byte boundaries.
func (c *Cursor) WideString() (string, error) {
	rest := c.buf[c.off:]
	end := wideNUL(rest)
	if end < 0 {
		return "", ErrTruncated
	}
	s, err := decodeUTF16(rest[:end])
	if err != nil {
		return "", err
	}
	c.off += end + 2
	return s, nil
}

// FixedWideString consumes exactly chars UTF-16 code units. The result stops
// at the first zero code unit; anything after it is ignored.
func (c *Cursor) FixedWideString(chars int) (string, error) {
	if chars < 0 || chars*2 > c.Remaining() {
		return "", ErrTruncated
	}
	raw := c.buf[c.off : c.off+chars*2]
	if end := wideNUL(raw); end >= 0 {
		raw = raw[:end]
	}
	s, err := decodeUTF16(raw)
	if err != nil {
		return "", err
	}
	c.off += chars * 2
	return s, nil
}

// wideNUL returns the byte offset of the first zero code unit in b, or -1.
func wideNUL(b []byte) int {
	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			return i
		}
	}
	return -1
}

func decodeUTF16(raw []byte) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}
	// Decoders carry state, so each call gets its own.
	out, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().Bytes(raw)
	if err != nil {
		return "", errors.Wrap(err, "failed to decode utf-16 string")
	}
	return string(out), nil
}
