package value

// Equal reports whether a and b have the same kind and the same content,
// recursively. Struct fields are compared in order, names included.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case *Struct:
		y := b.(*Struct)
		if x == nil || y == nil {
			return x == y
		}
		if len(x.Fields) != len(y.Fields) {
			return false
		}
		for i := range x.Fields {
			if x.Fields[i].Name != y.Fields[i].Name {
				return false
			}
			if !Equal(x.Fields[i].Value, y.Fields[i].Value) {
				return false
			}
		}
		return true
	case *Array:
		y := b.(*Array)
		if x == nil || y == nil {
			return x == y
		}
		if len(x.Elements) != len(y.Elements) {
			return false
		}
		for i := range x.Elements {
			if !Equal(x.Elements[i], y.Elements[i]) {
				return false
			}
		}
		return true
	default:
		// Scalars are comparable Go values of distinct named types.
		return a == b
	}
}
