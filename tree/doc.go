// Package tree defines the dynamically typed value produced by the converter.
//
// The vocabulary mirrors the object system of a dynamic runtime: a null, scalar
// leaves of fixed width, raw bytes, and ordered lists whose entries may carry
// names.
//
//	Value
//	├── Null
//	├── Bool
//	├── S8 S16 S32 S64     signed integers
//	├── U8 U16 U32 U64     unsigned integers
//	├── F32 F64            floats
//	├── String             UTF-8 text
//	├── Bytes              raw byte sequence
//	└── List               []Entry{Name, Named, Value}
//
// A List without names is a bare sequence. A List whose entries are named is a
// record. Records are positional: names may repeat and order is significant.
// A record with exactly one entry is also how enum variants are tagged:
//
//	{"Wrapped": 5}
//
// The set of Value implementations is closed; only this package can add one.
package tree
