package kernel

import (
	"fmt"

	"github.com/tarusov/etwkernel/internal/fields"
)

// kind is the wire type of one layout field. Names follow the MOF types
// the kernel logger documents its events with.
type kind uint8

const (
	kindChar     kind = iota // int8
	kindUChar                // uint8
	kindShort                // int16
	kindUShort               // uint16
	kindInt                  // int32
	kindUInt                 // uint32
	kindLong                 // int64
	kindULong                // uint64
	kindPointer              // uint32 or uint64 by pointer width
	kindString               // NUL-terminated narrow string
	kindWString              // NUL-terminated wide string
	kindSID                  // TOKEN_USER and SID
	kindTimeZone             // TIME_ZONE_INFORMATION
	kindBytes                // fixed run of UChar
	kindPointers             // pointer-sized values up to the payload end
)

var kindNames = [...]string{
	kindChar:     "Char",
	kindUChar:    "UChar",
	kindShort:    "Short",
	kindUShort:   "UShort",
	kindInt:      "Int",
	kindUInt:     "UInt",
	kindLong:     "Long",
	kindULong:    "ULong",
	kindPointer:  "Pointer",
	kindString:   "String",
	kindWString:  "WString",
	kindSID:      "SID",
	kindTimeZone: "TimeZoneInformation",
	kindBytes:    "UChar[]",
	kindPointers: "Pointer[]",
}

func (k kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

type field struct {
	name string
	kind kind
	n    int // kindBytes only
}

// layout is the field sequence of one version of one event.
type layout []field

func (l layout) decode(d *fields.Decoder) {
	for _, f := range l {
		switch f.kind {
		case kindChar:
			d.Char(f.name)
		case kindUChar:
			d.UChar(f.name)
		case kindShort:
			d.Short(f.name)
		case kindUShort:
			d.UShort(f.name)
		case kindInt:
			d.Int(f.name)
		case kindUInt:
			d.UInt(f.name)
		case kindLong:
			d.Long(f.name)
		case kindULong:
			d.ULong(f.name)
		case kindPointer:
			d.UInteger(f.name)
		case kindString:
			d.String(f.name)
		case kindWString:
			d.WString(f.name)
		case kindSID:
			d.SID(f.name)
		case kindTimeZone:
			d.TimeZoneInformation(f.name)
		case kindBytes:
			d.UCharArray(f.name, f.n)
		case kindPointers:
			d.UIntegerArray(f.name)
		}
		if d.Err() != nil {
			return
		}
	}
}

func (l layout) info() []FieldInfo {
	out := make([]FieldInfo, len(l))
	for i, f := range l {
		t := f.kind.String()
		if f.kind == kindBytes {
			t = fmt.Sprintf("UChar[%d]", f.n)
		}
		out[i] = FieldInfo{Name: f.name, Type: t}
	}
	return out
}

// then returns a new layout made of l followed by more. l is not modified.
func (l layout) then(more ...field) layout {
	out := make(layout, 0, len(l)+len(more))
	out = append(out, l...)
	return append(out, more...)
}

func i8(name string) field { return field{name: name, kind: kindChar} }
func u8(name string) field { return field{name: name, kind: kindUChar} }
func i16(name string) field { return field{name: name, kind: kindShort} }
func u16(name string) field { return field{name: name, kind: kindUShort} }
func i32(name string) field { return field{name: name, kind: kindInt} }
func u32(name string) field { return field{name: name, kind: kindUInt} }
func i64(name string) field { return field{name: name, kind: kindLong} }
func u64(name string) field { return field{name: name, kind: kindULong} }
func ptr(name string) field { return field{name: name, kind: kindPointer} }
func str(name string) field { return field{name: name, kind: kindString} }
func wstr(name string) field { return field{name: name, kind: kindWString} }
func sid(name string) field { return field{name: name, kind: kindSID} }
func tzi(name string) field { return field{name: name, kind: kindTimeZone} }
func ptrs(name string) field { return field{name: name, kind: kindPointers} }

func raw(name string, n int) field { return field{name: name, kind: kindBytes, n: n} }
