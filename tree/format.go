package tree

import (
	"encoding/hex"
	"strconv"
	"strings"
)

func (Null) String() string     { return "null" }
func (v Bool) String() string   { return strconv.FormatBool(bool(v)) }
func (v S8) String() string     { return strconv.FormatInt(int64(v), 10) }
func (v S16) String() string    { return strconv.FormatInt(int64(v), 10) }
func (v S32) String() string    { return strconv.FormatInt(int64(v), 10) }
func (v S64) String() string    { return strconv.FormatInt(int64(v), 10) }
func (v U8) String() string     { return strconv.FormatUint(uint64(v), 10) }
func (v U16) String() string    { return strconv.FormatUint(uint64(v), 10) }
func (v U32) String() string    { return strconv.FormatUint(uint64(v), 10) }
func (v U64) String() string    { return strconv.FormatUint(uint64(v), 10) }
func (v F32) String() string    { return strconv.FormatFloat(float64(v), 'g', -1, 32) }
func (v F64) String() string    { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (v String) String() string { return strconv.Quote(string(v)) }
func (v Bytes) String() string  { return "raw(" + hex.EncodeToString(v) + ")" }

// String renders records as {"name": value, ...} and bare lists as [value, ...].
// Unnamed entries inside a record are rendered without a name.
func (l List) String() string {
	var b strings.Builder
	l.writeTo(&b)
	return b.String()
}

func (l List) writeTo(b *strings.Builder) {
	opening, closing := "[", "]"
	if l.IsRecord() {
		opening, closing = "{", "}"
	}

	b.WriteString(opening)
	for i, e := range l {
		if i > 0 {
			b.WriteString(", ")
		}
		if e.Named {
			b.WriteString(strconv.Quote(e.Name))
			b.WriteString(": ")
		}
		if nested, ok := e.Value.(List); ok {
			nested.writeTo(b)
		} else if e.Value == nil {
			b.WriteString("<nil>")
		} else {
			b.WriteString(e.Value.String())
		}
	}
	b.WriteString(closing)
}
