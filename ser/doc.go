// Package ser defines a format-agnostic serialization protocol.
//
// A value describes its shape to a Serializer through callbacks: one call per
// primitive, or a start call returning a builder for compound shapes.
//
//	Shape            Callback                  Builder
//	──────────────────────────────────────────────────────────────
//	primitive        SerializeBool ... Bytes   -
//	option           SerializeNone / Some      -
//	unit             SerializeUnit             -
//	unit struct      SerializeUnitStruct       -
//	newtype struct   SerializeNewtypeStruct    -
//	enum cases       SerializeUnitVariant      -
//	                 SerializeNewtypeVariant   -
//	                 SerializeTupleVariant     SerializeTupleVariant
//	                 SerializeStructVariant    SerializeStructVariant
//	sequence         SerializeSeq              SerializeSeq
//	tuple            SerializeTuple            SerializeTuple
//	tuple struct     SerializeTupleStruct      SerializeTupleStruct
//	map              SerializeMap              SerializeMap
//	struct           SerializeStruct           SerializeStruct
//
// Types implement Serializable to control their shape; enums are the common
// case since Go has no sum types:
//
//	type Color int
//
//	func (c Color) Serialize(s ser.Serializer) error {
//		return s.SerializeUnitVariant("Color", uint32(c), colorNames[c])
//	}
//
// Serialize walks any other Go value with reflection. Struct fields are named
// by a ser tag, then a json tag, then the Go field name:
//
//	type User struct {
//		Name  string   `ser:"name"`
//		Email string   `json:"email,omitempty"`
//		Tags  []string
//	}
//
// Field plans are computed once per type and cached. Serialize is safe for
// concurrent use.
package ser
