// Package fields decodes named payload fields into a value.Struct.
//
// A Decoder keeps the first error it meets; every later call is a no-op.
// Layouts are therefore written as a flat sequence of calls followed by a
// single check of Result.
package fields

import (
	"github.com/pkg/errors"

	"github.com/tarusov/etwkernel/internal/cursor"
	"github.com/tarusov/etwkernel/value"
)

// Decoder appends fields read from a payload to a struct under
// construction.
type Decoder struct {
	c    *cursor.Cursor
	is64 bool
	out  *value.Struct
	err  error
}

// NewDecoder returns a decoder over payload. is64 selects 8-byte
// pointer-sized fields.
func NewDecoder(payload []byte, is64 bool) *Decoder {
	return &Decoder{
		c:    cursor.New(payload),
		is64: is64,
		out:  &value.Struct{},
	}
}

// nested returns a decoder sharing d's cursor but filling a fresh struct.
func (d *Decoder) nested() *Decoder {
	return &Decoder{c: d.c, is64: d.is64, out: &value.Struct{}}
}

// Is64 reports whether pointer-sized fields are 8 bytes wide.
func (d *Decoder) Is64() bool { return d.is64 }

// Remaining returns the number of unread payload bytes.
func (d *Decoder) Remaining() int { return d.c.Remaining() }

// Err returns the first error met, if any.
func (d *Decoder) Err() error { return d.err }

// Result returns the decoded struct, or nil and the first error. A failed
// decoder never hands out a partial struct.
func (d *Decoder) Result() (*value.Struct, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.out, nil
}

func (d *Decoder) fail(name string, err error) {
	d.err = errors.WithMessagef(err, "field %s", name)
}

func (d *Decoder) add(name string, v value.Value, err error) {
	if err != nil {
		d.fail(name, err)
		return
	}
	d.out.Add(name, v)
}

func (d *Decoder) Char(name string) {
	if d.err != nil {
		return
	}
	v, err := d.c.Int8()
	d.add(name, value.Char(v), err)
}

func (d *Decoder) UChar(name string) {
	if d.err != nil {
		return
	}
	v, err := d.c.Uint8()
	d.add(name, value.UChar(v), err)
}

func (d *Decoder) Short(name string) {
	if d.err != nil {
		return
	}
	v, err := d.c.Int16()
	d.add(name, value.Short(v), err)
}

func (d *Decoder) UShort(name string) {
	if d.err != nil {
		return
	}
	v, err := d.c.Uint16()
	d.add(name, value.UShort(v), err)
}

func (d *Decoder) Int(name string) {
	if d.err != nil {
		return
	}
	v, err := d.c.Int32()
	d.add(name, value.Int(v), err)
}

func (d *Decoder) UInt(name string) {
	if d.err != nil {
		return
	}
	v, err := d.c.Uint32()
	d.add(name, value.UInt(v), err)
}

func (d *Decoder) Long(name string) {
	if d.err != nil {
		return
	}
	v, err := d.c.Int64()
	d.add(name, value.Long(v), err)
}

func (d *Decoder) ULong(name string) {
	if d.err != nil {
		return
	}
	v, err := d.c.Uint64()
	d.add(name, value.ULong(v), err)
}

// UInteger decodes a pointer-sized unsigned field: ULong when the trace is
// 64-bit, UInt otherwise.
func (d *Decoder) UInteger(name string) {
	if d.is64 {
		d.ULong(name)
		return
	}
	d.UInt(name)
}

// String decodes a NUL-terminated narrow string.
func (d *Decoder) String(name string) {
	if d.err != nil {
		return
	}
	v, err := d.c.NarrowString()
	d.add(name, value.String(v), err)
}

// WString decodes a NUL-terminated UTF-16LE string.
func (d *Decoder) WString(name string) {
	if d.err != nil {
		return
	}
	v, err := d.c.WideString()
	d.add(name, value.WString(v), err)
}

// FixedWString decodes a UTF-16LE string occupying exactly chars code units.
func (d *Decoder) FixedWString(name string, chars int) {
	if d.err != nil {
		return
	}
	v, err := d.c.FixedWideString(chars)
	d.add(name, value.WString(v), err)
}

// UCharArray decodes n raw bytes as an array of UChar.
func (d *Decoder) UCharArray(name string, n int) {
	if d.err != nil {
		return
	}
	b, err := d.c.Bytes(n)
	if err != nil {
		d.fail(name, err)
		return
	}
	d.out.Add(name, value.UChars(b))
}

// UIntegerArray decodes pointer-sized values until the payload is
// exhausted. Leftover bytes that do not form a whole value fail the decode.
func (d *Decoder) UIntegerArray(name string) {
	if d.err != nil {
		return
	}
	arr := &value.Array{}
	for d.c.Remaining() > 0 {
		if d.is64 {
			v, err := d.c.Uint64()
			if err != nil {
				d.fail(name, err)
				return
			}
			arr.Append(value.ULong(v))
			continue
		}
		v, err := d.c.Uint32()
		if err != nil {
			d.fail(name, err)
			return
		}
		arr.Append(value.UInt(v))
	}
	d.out.Add(name, arr)
}

// Skip consumes n bytes without producing a field.
func (d *Decoder) Skip(n int) {
	if d.err != nil {
		return
	}
	if err := d.c.Skip(n); err != nil {
		d.fail("padding", err)
	}
}

// Struct decodes a nested struct with fn and appends it as one field.
func (d *Decoder) Struct(name string, fn func(*Decoder)) {
	if d.err != nil {
		return
	}
	sub := d.nested()
	fn(sub)
	if sub.err != nil {
		d.fail(name, sub.err)
		return
	}
	d.out.Add(name, sub.out)
}
