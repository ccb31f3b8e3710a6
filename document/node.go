package document

import (
	"github.com/elliotchance/orderedmap/v2"

	"github.com/wippyai/treebridge/ser"
)

// Scalar and sequence nodes. Each serializes itself with the matching
// ser callback.
type (
	Null   struct{}
	Bool   bool
	Int    int64
	Uint   uint64
	Float  float64
	String string
	Bytes  []byte
	Array  []any
)

func (Null) Serialize(s ser.Serializer) error     { return s.SerializeNone() }
func (b Bool) Serialize(s ser.Serializer) error   { return s.SerializeBool(bool(b)) }
func (i Int) Serialize(s ser.Serializer) error    { return s.SerializeInt64(int64(i)) }
func (u Uint) Serialize(s ser.Serializer) error   { return s.SerializeUint64(uint64(u)) }
func (f Float) Serialize(s ser.Serializer) error  { return s.SerializeFloat64(float64(f)) }
func (v String) Serialize(s ser.Serializer) error { return s.SerializeStr(string(v)) }
func (b Bytes) Serialize(s ser.Serializer) error  { return s.SerializeBytes(b) }

func (a Array) Serialize(s ser.Serializer) error {
	seq, err := s.SerializeSeq(len(a))
	if err != nil {
		return err
	}
	for _, v := range a {
		if err := seq.SerializeElement(v); err != nil {
			return err
		}
	}
	return seq.End()
}

// Object is a string-keyed mapping that remembers insertion order. Setting an
// existing key replaces its value in place.
type Object struct {
	fields *orderedmap.OrderedMap[string, any]
}

func NewObject() *Object {
	return &Object{fields: orderedmap.NewOrderedMap[string, any]()}
}

func (o *Object) Set(key string, v any) {
	o.fields.Set(key, v)
}

func (o *Object) Get(key string) (any, bool) {
	return o.fields.Get(key)
}

func (o *Object) Len() int {
	return o.fields.Len()
}

func (o *Object) Keys() []string {
	return o.fields.Keys()
}

func (o *Object) Serialize(s ser.Serializer) error {
	m, err := s.SerializeMap(o.fields.Len())
	if err != nil {
		return err
	}
	for el := o.fields.Front(); el != nil; el = el.Next() {
		if err := m.SerializeEntry(String(el.Key), el.Value); err != nil {
			return err
		}
	}
	return m.End()
}

// MapEntry is one pair of a Map.
type MapEntry struct {
	Key   any
	Value any
}

// Map is a mapping whose keys are not all strings. Entries are serialized in
// source order; converting it fails at the first key that is not a string.
type Map []MapEntry

func (m Map) Serialize(s ser.Serializer) error {
	sm, err := s.SerializeMap(len(m))
	if err != nil {
		return err
	}
	for _, e := range m {
		if err := sm.SerializeEntry(e.Key, e.Value); err != nil {
			return err
		}
	}
	return sm.End()
}
