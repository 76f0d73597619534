package value

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON writes the struct as a JSON object keeping field order.
func (s *Struct) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}

	stream := json.BorrowStream(nil)
	defer json.ReturnStream(stream)

	stream.WriteObjectStart()
	for i, f := range s.Fields {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(f.Name)
		stream.WriteVal(f.Value)
	}
	stream.WriteObjectEnd()
	if stream.Error != nil {
		return nil, stream.Error
	}

	return append([]byte(nil), stream.Buffer()...), nil
}

func (a *Array) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("null"), nil
	}

	stream := json.BorrowStream(nil)
	defer json.ReturnStream(stream)

	stream.WriteArrayStart()
	for i, e := range a.Elements {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteVal(e)
	}
	stream.WriteArrayEnd()
	if stream.Error != nil {
		return nil, stream.Error
	}

	return append([]byte(nil), stream.Buffer()...), nil
}
