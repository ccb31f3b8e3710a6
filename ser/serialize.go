package ser

import (
	"reflect"

	"github.com/wippyai/treebridge/errors"
)

var serializableType = reflect.TypeFor[Serializable]()

// Serialize drives s with the shape of v.
//
// Values implementing Serializable describe themselves. Everything else is
// walked by reflection:
//
//	bool, intN, uintN, floatN   matching-width callbacks (int, uint as 64-bit)
//	string                      SerializeStr
//	[]byte                      SerializeBytes
//	nil pointer/slice/map/any   SerializeNone
//	non-nil pointer             SerializeSome
//	slice                       SerializeSeq
//	array                       SerializeTuple
//	map                         SerializeMap, keys in sorted order
//	struct with no fields       SerializeUnitStruct
//	struct                      SerializeStruct, see fields.go for naming
func Serialize(v any, s Serializer) error {
	if v == nil {
		return s.SerializeNone()
	}
	return serializeValue(reflect.ValueOf(v), s)
}

func serializeValue(rv reflect.Value, s Serializer) error {
	if !rv.IsValid() {
		return s.SerializeNone()
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return s.SerializeNone()
		}
	}

	if sv, ok := asSerializable(rv); ok {
		return sv.Serialize(s)
	}

	switch rv.Kind() {
	case reflect.Bool:
		return s.SerializeBool(rv.Bool())
	case reflect.Int8:
		return s.SerializeInt8(int8(rv.Int()))
	case reflect.Int16:
		return s.SerializeInt16(int16(rv.Int()))
	case reflect.Int32:
		return s.SerializeInt32(int32(rv.Int()))
	case reflect.Int, reflect.Int64:
		return s.SerializeInt64(rv.Int())
	case reflect.Uint8:
		return s.SerializeUint8(uint8(rv.Uint()))
	case reflect.Uint16:
		return s.SerializeUint16(uint16(rv.Uint()))
	case reflect.Uint32:
		return s.SerializeUint32(uint32(rv.Uint()))
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return s.SerializeUint64(rv.Uint())
	case reflect.Float32:
		return s.SerializeFloat32(float32(rv.Float()))
	case reflect.Float64:
		return s.SerializeFloat64(rv.Float())
	case reflect.String:
		return s.SerializeStr(rv.String())
	case reflect.Pointer:
		return s.SerializeSome(childOf(rv.Elem()))
	case reflect.Interface:
		return serializeValue(rv.Elem(), s)
	case reflect.Slice:
		if isByteSlice(rv.Type()) {
			return s.SerializeBytes(rv.Bytes())
		}
		return serializeSeq(rv, s)
	case reflect.Array:
		return serializeTuple(rv, s)
	case reflect.Map:
		return serializeMap(rv, s)
	case reflect.Struct:
		return serializeStruct(rv, s)
	default:
		return errors.Unsupported(errors.PhaseSerialize, nil, rv.Type().String(),
			"no serialization for kind "+rv.Kind().String())
	}
}

// asSerializable finds a Serialize method on the value or, when the value is
// addressable, on its pointer.
func asSerializable(rv reflect.Value) (Serializable, bool) {
	if !rv.CanInterface() {
		return nil, false
	}
	if rv.Type().Implements(serializableType) {
		return rv.Interface().(Serializable), true
	}
	if rv.CanAddr() && reflect.PointerTo(rv.Type()).Implements(serializableType) {
		return rv.Addr().Interface().(Serializable), true
	}
	return nil, false
}

// childOf returns the value to hand to a builder for rv. Addressable values
// whose pointer is Serializable are passed by pointer so the method is found
// again after the builder re-enters Serialize.
func childOf(rv reflect.Value) any {
	t := rv.Type()
	if rv.CanAddr() && !t.Implements(serializableType) && reflect.PointerTo(t).Implements(serializableType) {
		return rv.Addr().Interface()
	}
	return rv.Interface()
}

func isByteSlice(t reflect.Type) bool {
	elem := t.Elem()
	return elem.Kind() == reflect.Uint8 &&
		!elem.Implements(serializableType) &&
		!reflect.PointerTo(elem).Implements(serializableType)
}

func serializeSeq(rv reflect.Value, s Serializer) error {
	n := rv.Len()
	seq, err := s.SerializeSeq(n)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := seq.SerializeElement(childOf(rv.Index(i))); err != nil {
			return err
		}
	}
	return seq.End()
}

func serializeTuple(rv reflect.Value, s Serializer) error {
	n := rv.Len()
	tup, err := s.SerializeTuple(n)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := tup.SerializeElement(childOf(rv.Index(i))); err != nil {
			return err
		}
	}
	return tup.End()
}

func serializeMap(rv reflect.Value, s Serializer) error {
	m, err := s.SerializeMap(rv.Len())
	if err != nil {
		return err
	}
	for _, e := range sortedEntries(rv) {
		if err := m.SerializeEntry(childOf(e.key), childOf(e.value)); err != nil {
			return err
		}
	}
	return m.End()
}

func serializeStruct(rv reflect.Value, s Serializer) error {
	rt := rv.Type()
	if rt.NumField() == 0 {
		return s.SerializeUnitStruct(rt.Name())
	}

	plan := planFor(rt)
	st, err := s.SerializeStruct(rt.Name(), len(plan.fields))
	if err != nil {
		return err
	}
	for _, f := range plan.fields {
		fv, ok := fieldByIndex(rv, f.index)
		if !ok {
			// embedded pointer is nil
			continue
		}
		if f.omitEmpty && isEmptyValue(fv) {
			if err := st.SkipField(f.name); err != nil {
				return err
			}
			continue
		}
		if err := st.SerializeField(f.name, childOf(fv)); err != nil {
			return err
		}
	}
	return st.End()
}
