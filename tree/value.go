package tree

// Value is a node of the tree. The implementations are the types in this
// package; the set is closed.
type Value interface {
	Kind() Kind
	String() string
	isValue()
}

type (
	Null   struct{}
	Bool   bool
	S8     int8
	S16    int16
	S32    int32
	S64    int64
	U8     uint8
	U16    uint16
	U32    uint32
	U64    uint64
	F32    float32
	F64    float64
	String string
	Bytes  []byte
)

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (S8) Kind() Kind     { return KindS8 }
func (S16) Kind() Kind    { return KindS16 }
func (S32) Kind() Kind    { return KindS32 }
func (S64) Kind() Kind    { return KindS64 }
func (U8) Kind() Kind     { return KindU8 }
func (U16) Kind() Kind    { return KindU16 }
func (U32) Kind() Kind    { return KindU32 }
func (U64) Kind() Kind    { return KindU64 }
func (F32) Kind() Kind    { return KindF32 }
func (F64) Kind() Kind    { return KindF64 }
func (String) Kind() Kind { return KindString }
func (Bytes) Kind() Kind  { return KindBytes }
func (List) Kind() Kind   { return KindList }

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (S8) isValue()     {}
func (S16) isValue()    {}
func (S32) isValue()    {}
func (S64) isValue()    {}
func (U8) isValue()     {}
func (U16) isValue()    {}
func (U32) isValue()    {}
func (U64) isValue()    {}
func (F32) isValue()    {}
func (F64) isValue()    {}
func (String) isValue() {}
func (Bytes) isValue()  {}
func (List) isValue()   {}

// Of wraps a native Go scalar into the leaf of the same width.
// nil maps to Null. Byte slices are copied. Returns false for anything that
// is not a scalar.
func Of(v any) (Value, bool) {
	switch x := v.(type) {
	case nil:
		return Null{}, true
	case bool:
		return Bool(x), true
	case int8:
		return S8(x), true
	case int16:
		return S16(x), true
	case int32:
		return S32(x), true
	case int64:
		return S64(x), true
	case int:
		return S64(x), true
	case uint8:
		return U8(x), true
	case uint16:
		return U16(x), true
	case uint32:
		return U32(x), true
	case uint64:
		return U64(x), true
	case uint:
		return U64(x), true
	case float32:
		return F32(x), true
	case float64:
		return F64(x), true
	case string:
		return String(x), true
	case []byte:
		return Bytes(append([]byte(nil), x...)), true
	default:
		return nil, false
	}
}

// AsStr extracts the text of a String leaf.
func AsStr(v Value) (string, bool) {
	s, ok := v.(String)
	return string(s), ok
}

// IsNull reports whether v is the null leaf.
func IsNull(v Value) bool {
	_, ok := v.(Null)
	return ok
}
