package ser

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"
)

type structPlan struct {
	fields []fieldPlan
}

type fieldPlan struct {
	name      string
	index     []int
	omitEmpty bool
}

var plans sync.Map // reflect.Type -> *structPlan

func planFor(rt reflect.Type) *structPlan {
	if cached, ok := plans.Load(rt); ok {
		return cached.(*structPlan)
	}
	plan := &structPlan{fields: collectFields(rt, nil)}
	actual, _ := plans.LoadOrStore(rt, plan)
	return actual.(*structPlan)
}

// collectFields names fields by: 1) ser:"name" tag, 2) json:"name" tag,
// 3) the Go field name. Untagged embedded structs are flattened into the
// parent, the way encoding/json does it.
func collectFields(rt reflect.Type, parent []int) []fieldPlan {
	var fields []fieldPlan
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		index := append(append([]int{}, parent...), i)

		name, opts, tagged := fieldTag(f)
		if name == "-" && opts == "" {
			continue
		}

		if f.Anonymous && !tagged {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				fields = append(fields, collectFields(ft, index)...)
				continue
			}
		}

		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}

		fields = append(fields, fieldPlan{
			name:      name,
			index:     index,
			omitEmpty: hasOption(opts, "omitempty"),
		})
	}
	return fields
}

func fieldTag(f reflect.StructField) (name, opts string, tagged bool) {
	tag, ok := f.Tag.Lookup("ser")
	if !ok {
		tag, ok = f.Tag.Lookup("json")
	}
	if !ok {
		return "", "", false
	}
	name, opts, _ = strings.Cut(tag, ",")
	return name, opts, name != ""
}

func hasOption(opts, want string) bool {
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == want {
			return true
		}
	}
	return false
}

// fieldByIndex walks index, stopping at nil embedded pointers.
func fieldByIndex(rv reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				return reflect.Value{}, false
			}
			rv = rv.Elem()
		}
		rv = rv.Field(x)
	}
	return rv, true
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Interface, reflect.Pointer:
		return v.IsZero()
	}
	return false
}

// key classes order keys of different dynamic types inside map[any]V
const (
	keyNil = iota
	keyBool
	keyInt
	keyUint
	keyFloat
	keyString
	keyOther
)

type mapEntry struct {
	key, value reflect.Value
}

// sortedEntries reads the map with an iterator so keys that never match a
// lookup, such as NaN, still carry their value. Entries are copied into
// addressable values so pointer-receiver Serialize methods are found.
func sortedEntries(rv reflect.Value) []mapEntry {
	entries := make([]mapEntry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, mapEntry{
			key:   addressable(iter.Key()),
			value: addressable(iter.Value()),
		})
	}
	slices.SortFunc(entries, func(a, b mapEntry) int {
		return compareKeys(a.key, b.key)
	})
	return entries
}

func addressable(v reflect.Value) reflect.Value {
	cp := reflect.New(v.Type()).Elem()
	cp.Set(v)
	return cp
}

func compareKeys(a, b reflect.Value) int {
	a, b = unwrapKey(a), unwrapKey(b)
	ca, cb := keyClass(a), keyClass(b)
	if ca != cb {
		return cmp.Compare(ca, cb)
	}

	switch ca {
	case keyBool:
		return cmp.Compare(boolRank(a.Bool()), boolRank(b.Bool()))
	case keyInt:
		return cmp.Compare(a.Int(), b.Int())
	case keyUint:
		return cmp.Compare(a.Uint(), b.Uint())
	case keyFloat:
		return cmp.Compare(a.Float(), b.Float())
	case keyString:
		return strings.Compare(a.String(), b.String())
	case keyOther:
		return strings.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
	default:
		return 0
	}
}

func unwrapKey(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	return v
}

func keyClass(v reflect.Value) int {
	if !v.IsValid() {
		return keyNil
	}
	switch v.Kind() {
	case reflect.Interface:
		return keyNil
	case reflect.Bool:
		return keyBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return keyInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return keyUint
	case reflect.Float32, reflect.Float64:
		return keyFloat
	case reflect.String:
		return keyString
	default:
		return keyOther
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
