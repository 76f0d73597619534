// Package value is the dynamically typed tree produced by the kernel payload
// decoder. Every decoded payload is a *Struct whose fields are scalars,
// nested structs or arrays.
//
// Kinds mirror the MOF types used by the NT Kernel Logger, so a UInt and a
// ULong holding the same number are different values.
package value

import "fmt"

// Kind represents the kind of a Value.
type Kind uint8

const (
	KindChar Kind = iota
	KindUChar
	KindShort
	KindUShort
	KindInt
	KindUInt
	KindLong
	KindULong
	KindString
	KindWString
	KindStruct
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindChar:
		return "Char"
	case KindUChar:
		return "UChar"
	case KindShort:
		return "Short"
	case KindUShort:
		return "UShort"
	case KindInt:
		return "Int"
	case KindUInt:
		return "UInt"
	case KindLong:
		return "Long"
	case KindULong:
		return "ULong"
	case KindString:
		return "String"
	case KindWString:
		return "WString"
	case KindStruct:
		return "Struct"
	case KindArray:
		return "Array"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Value is a node of the tree. The set of implementations is closed: the
// scalar types below, *Struct and *Array.
type Value interface {
	Kind() Kind
	isValue()
}

type (
	Char    int8
	UChar   uint8
	Short   int16
	UShort  uint16
	Int     int32
	UInt    uint32
	Long    int64
	ULong   uint64
	String  string // narrow (single byte) text, kept as read
	WString string // wide text, decoded from UTF-16LE
)

func (Char) Kind() Kind    { return KindChar }
func (UChar) Kind() Kind   { return KindUChar }
func (Short) Kind() Kind   { return KindShort }
func (UShort) Kind() Kind  { return KindUShort }
func (Int) Kind() Kind     { return KindInt }
func (UInt) Kind() Kind    { return KindUInt }
func (Long) Kind() Kind    { return KindLong }
func (ULong) Kind() Kind   { return KindULong }
func (String) Kind() Kind  { return KindString }
func (WString) Kind() Kind { return KindWString }

func (Char) isValue()    {}
func (UChar) isValue()   {}
func (Short) isValue()   {}
func (UShort) isValue()  {}
func (Int) isValue()     {}
func (UInt) isValue()    {}
func (Long) isValue()    {}
func (ULong) isValue()   {}
func (String) isValue()  {}
func (WString) isValue() {}

// Uint64 returns the numeric content of an unsigned scalar. Pointer-sized
// fields decode as UInt or ULong depending on the trace, so consumers that
// only care about the number should read them through Uint64.
func Uint64(v Value) (uint64, bool) {
	switch x := v.(type) {
	case UChar:
		return uint64(x), true
	case UShort:
		return uint64(x), true
	case UInt:
		return uint64(x), true
	case ULong:
		return uint64(x), true
	default:
		return 0, false
	}
}

// Int64 returns the numeric content of a signed scalar.
func Int64(v Value) (int64, bool) {
	switch x := v.(type) {
	case Char:
		return int64(x), true
	case Short:
		return int64(x), true
	case Int:
		return int64(x), true
	case Long:
		return int64(x), true
	default:
		return 0, false
	}
}

// Text returns the content of a String or WString.
func Text(v Value) (string, bool) {
	switch x := v.(type) {
	case String:
		return string(x), true
	case WString:
		return string(x), true
	default:
		return "", false
	}
}
