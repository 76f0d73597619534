package value

// Field is a named member of a Struct.
type Field struct {
	Name  string
	Value Value
}

// Struct is an ordered sequence of named fields. Order is part of the value:
// two structs with the same fields in a different order are not equal.
type Struct struct {
	Fields []Field
}

// NewStruct returns a struct holding the given fields in order.
func NewStruct(fields ...Field) *Struct {
	return &Struct{Fields: fields}
}

func (*Struct) Kind() Kind { return KindStruct }
func (*Struct) isValue()   {}

// Add appends a field. Names are expected to be unique within a struct;
// Get returns the first match.
func (s *Struct) Add(name string, v Value) {
	s.Fields = append(s.Fields, Field{Name: name, Value: v})
}

// Get looks a field up by name.
func (s *Struct) Get(name string) (Value, bool) {
	if s == nil {
		return nil, false
	}
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			return s.Fields[i].Value, true
		}
	}
	return nil, false
}

// Len returns the number of fields.
func (s *Struct) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Fields)
}

// Array is an ordered collection of values of one kind.
type Array struct {
	Elements []Value
}

// NewArray returns an array holding the given elements in order.
func NewArray(elements ...Value) *Array {
	return &Array{Elements: elements}
}

func (*Array) Kind() Kind { return KindArray }
func (*Array) isValue()   {}

// Append adds elements to the end of the array.
func (a *Array) Append(elements ...Value) {
	a.Elements = append(a.Elements, elements...)
}

// Len returns the number of elements.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Elements)
}

// UChars builds an array of UChar from raw bytes. The bytes are copied.
func UChars(b []byte) *Array {
	a := &Array{Elements: make([]Value, len(b))}
	for i, c := range b {
		a.Elements[i] = UChar(c)
	}
	return a
}
