package tree

import (
	"bytes"
	"math"
)

// Equal reports whether a and b are the same tree: same kinds, same payloads
// (floats compared bit for bit), same entry names in the same order.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch x := a.(type) {
	case F32:
		return math.Float32bits(float32(x)) == math.Float32bits(float32(b.(F32)))
	case F64:
		return math.Float64bits(float64(x)) == math.Float64bits(float64(b.(F64)))
	case Bytes:
		return bytes.Equal(x, b.(Bytes))
	case List:
		y := b.(List)
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if x[i].Named != y[i].Named || x[i].Name != y[i].Name {
				return false
			}
			if !Equal(x[i].Value, y[i].Value) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
