package ser

// UnknownLen is passed as the length of a sequence or map whose size is not
// known up front.
const UnknownLen = -1

// Serializer receives the shape of a value as a series of callbacks.
//
// Exactly one method is called per value. Compound shapes return a builder
// that receives the children and must be closed with End. Child values are
// passed as any and serialized by the receiver, usually with Serialize.
type Serializer interface {
	SerializeBool(v bool) error
	SerializeInt8(v int8) error
	SerializeInt16(v int16) error
	SerializeInt32(v int32) error
	SerializeInt64(v int64) error
	SerializeUint8(v uint8) error
	SerializeUint16(v uint16) error
	SerializeUint32(v uint32) error
	SerializeUint64(v uint64) error
	SerializeFloat32(v float32) error
	SerializeFloat64(v float64) error
	SerializeChar(v rune) error
	SerializeStr(v string) error
	SerializeBytes(v []byte) error

	// SerializeNone is an absent optional; SerializeSome a present one.
	SerializeNone() error
	SerializeSome(v any) error

	// SerializeUnit is a value with no data; SerializeUnitStruct is a named one.
	SerializeUnit() error
	SerializeUnitStruct(name string) error

	// SerializeUnitVariant is an enum case without payload, e.g. Color::Red.
	SerializeUnitVariant(name string, index uint32, variant string) error

	// SerializeNewtypeStruct is a named wrapper around exactly one value.
	SerializeNewtypeStruct(name string, v any) error

	// SerializeNewtypeVariant is an enum case with one unnamed payload.
	SerializeNewtypeVariant(name string, index uint32, variant string, v any) error

	SerializeSeq(length int) (SerializeSeq, error)
	SerializeTuple(length int) (SerializeTuple, error)
	SerializeTupleStruct(name string, length int) (SerializeTupleStruct, error)
	SerializeTupleVariant(name string, index uint32, variant string, length int) (SerializeTupleVariant, error)
	SerializeMap(length int) (SerializeMap, error)
	SerializeStruct(name string, length int) (SerializeStruct, error)
	SerializeStructVariant(name string, index uint32, variant string, length int) (SerializeStructVariant, error)

	// Errorf builds the serializer's error for a failure detected by the
	// value itself, such as a failed validation.
	Errorf(format string, args ...any) error
}

type SerializeSeq interface {
	SerializeElement(v any) error
	End() error
}

type SerializeTuple interface {
	SerializeElement(v any) error
	End() error
}

type SerializeTupleStruct interface {
	SerializeField(v any) error
	End() error
}

type SerializeTupleVariant interface {
	SerializeField(v any) error
	End() error
}

// SerializeMap receives keys and values in strict alternation:
// key, value, key, value. SerializeEntry sends one of each.
type SerializeMap interface {
	SerializeKey(k any) error
	SerializeValue(v any) error
	SerializeEntry(k, v any) error
	End() error
}

type SerializeStruct interface {
	SerializeField(key string, v any) error
	SkipField(key string) error
	End() error
}

type SerializeStructVariant interface {
	SerializeField(key string, v any) error
	SkipField(key string) error
	End() error
}

// Serializable is implemented by values that describe their own shape.
type Serializable interface {
	Serialize(s Serializer) error
}
