package schema

import (
	"fmt"
	"strings"

	"go.bytecodealliance.org/wit"
)

// Describe renders t in WIT syntax. Records are written inline.
func Describe(t wit.Type) string {
	var b strings.Builder
	describe(&b, t)
	return b.String()
}

func describe(b *strings.Builder, t wit.Type) {
	switch v := t.(type) {
	case wit.Bool:
		b.WriteString("bool")
	case wit.U8:
		b.WriteString("u8")
	case wit.S8:
		b.WriteString("s8")
	case wit.U16:
		b.WriteString("u16")
	case wit.S16:
		b.WriteString("s16")
	case wit.U32:
		b.WriteString("u32")
	case wit.S32:
		b.WriteString("s32")
	case wit.U64:
		b.WriteString("u64")
	case wit.S64:
		b.WriteString("s64")
	case wit.F32:
		b.WriteString("f32")
	case wit.F64:
		b.WriteString("f64")
	case wit.Char:
		b.WriteString("char")
	case wit.String:
		b.WriteString("string")
	case *wit.TypeDef:
		if v.Name != nil {
			b.WriteString(*v.Name)
			return
		}
		describeKind(b, v)
	default:
		fmt.Fprintf(b, "%T", t)
	}
}

func describeKind(b *strings.Builder, td *wit.TypeDef) {
	switch k := td.Kind.(type) {
	case *wit.List:
		b.WriteString("list<")
		describe(b, k.Type)
		b.WriteByte('>')
	case *wit.Option:
		b.WriteString("option<")
		describe(b, k.Type)
		b.WriteByte('>')
	case *wit.Tuple:
		b.WriteString("tuple<")
		for i, t := range k.Types {
			if i > 0 {
				b.WriteString(", ")
			}
			describe(b, t)
		}
		b.WriteByte('>')
	case *wit.Record:
		if len(k.Fields) == 0 {
			b.WriteString("record {}")
			return
		}
		b.WriteString("record { ")
		for i, f := range k.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(f.Name)
			b.WriteString(": ")
			describe(b, f.Type)
		}
		b.WriteString(" }")
	default:
		fmt.Fprintf(b, "%T", td.Kind)
	}
}
