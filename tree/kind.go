package tree

type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindS8
	KindS16
	KindS32
	KindS64
	KindU8
	KindU16
	KindU32
	KindU64
	KindF32
	KindF64
	KindString
	KindBytes
	KindList
)

var kindNames = [...]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindS8:     "s8",
	KindS16:    "s16",
	KindS32:    "s32",
	KindS64:    "s64",
	KindU8:     "u8",
	KindU16:    "u16",
	KindU32:    "u32",
	KindU64:    "u64",
	KindF32:    "f32",
	KindF64:    "f64",
	KindString: "string",
	KindBytes:  "bytes",
	KindList:   "list",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsScalar reports whether values of this kind are single leaves.
// Null and lists are not scalars.
func (k Kind) IsScalar() bool {
	return k >= KindBool && k <= KindBytes
}

func (k Kind) IsInteger() bool {
	return k >= KindS8 && k <= KindU64
}

func (k Kind) IsFloat() bool {
	return k == KindF32 || k == KindF64
}
