package schema

import (
	"strconv"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/treebridge/errors"
	"github.com/wippyai/treebridge/tree"
)

// Infer returns the WIT type of v.
func Infer(v tree.Value) (wit.Type, error) {
	return infer(v, nil)
}

func unit() wit.Type {
	return &wit.TypeDef{Kind: &wit.Tuple{}}
}

func infer(v tree.Value, path []string) (wit.Type, error) {
	switch x := v.(type) {
	case nil, tree.Null:
		return unit(), nil
	case tree.Bool:
		return wit.Bool{}, nil
	case tree.S8:
		return wit.S8{}, nil
	case tree.S16:
		return wit.S16{}, nil
	case tree.S32:
		return wit.S32{}, nil
	case tree.S64:
		return wit.S64{}, nil
	case tree.U8:
		return wit.U8{}, nil
	case tree.U16:
		return wit.U16{}, nil
	case tree.U32:
		return wit.U32{}, nil
	case tree.U64:
		return wit.U64{}, nil
	case tree.F32:
		return wit.F32{}, nil
	case tree.F64:
		return wit.F64{}, nil
	case tree.String:
		return wit.String{}, nil
	case tree.Bytes:
		return &wit.TypeDef{Kind: &wit.List{Type: wit.U8{}}}, nil
	case tree.List:
		if x.IsRecord() {
			return inferRecord(x, path)
		}
		return inferList(x, path)
	default:
		return nil, errors.Unsupported(errors.PhaseSchema, path, "", "no WIT type for "+v.Kind().String())
	}
}

func inferRecord(l tree.List, path []string) (wit.Type, error) {
	fields := make([]wit.Field, 0, len(l))
	seen := make(map[string]string, len(l))

	for i, e := range l {
		if !e.Named || e.Name == "" {
			return nil, errors.InvalidData(errors.PhaseSchema, path,
				"record entry "+strconv.Itoa(i)+" has no name")
		}
		name := toKebabCase(e.Name)
		if prev, dup := seen[name]; dup {
			return nil, errors.InvalidData(errors.PhaseSchema, path,
				"fields "+strconv.Quote(prev)+" and "+strconv.Quote(e.Name)+" both map to "+name)
		}
		seen[name] = e.Name

		ft, err := infer(e.Value, append(path, e.Name))
		if err != nil {
			return nil, err
		}
		fields = append(fields, wit.Field{Name: name, Type: ft})
	}
	return &wit.TypeDef{Kind: &wit.Record{Fields: fields}}, nil
}

// inferList unifies element types. Two types are the same when they describe
// identically.
func inferList(l tree.List, path []string) (wit.Type, error) {
	if len(l) == 0 {
		return unit(), nil
	}

	types := make([]wit.Type, len(l))
	var (
		elem     wit.Type
		elemDesc string
		hasNull  bool
		uniform  = true
	)
	for i, e := range l {
		t, err := infer(e.Value, append(path, strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}
		types[i] = t
		if tree.IsNull(e.Value) {
			hasNull = true
			continue
		}
		desc := Describe(t)
		switch {
		case elem == nil:
			elem, elemDesc = t, desc
		case desc != elemDesc:
			uniform = false
		}
	}

	switch {
	case !uniform:
		return &wit.TypeDef{Kind: &wit.Tuple{Types: types}}, nil
	case elem == nil:
		return &wit.TypeDef{Kind: &wit.List{Type: unit()}}, nil
	case hasNull:
		return &wit.TypeDef{Kind: &wit.List{Type: &wit.TypeDef{Kind: &wit.Option{Type: elem}}}}, nil
	default:
		return &wit.TypeDef{Kind: &wit.List{Type: elem}}, nil
	}
}
