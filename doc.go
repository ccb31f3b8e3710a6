// Package treebridge converts Go values into a dynamically typed tree.
//
// Any value that can describe itself through the ser protocol, either by
// implementing ser.Serializable or by being walked with reflection, converts
// into a tree.Value: a null, a fixed-width scalar, raw bytes, or an ordered
// list whose entries may carry names.
//
// # Architecture Overview
//
//	treebridge/          Root package with Decode and Convert shortcuts
//	├── ser/             Serializer protocol and the reflection driver
//	├── convert/         Serializer adapter and compound builders
//	├── tree/            Dynamic value model
//	├── document/        JSON, YAML and CBOR inputs
//	├── schema/          WIT type inference for tree values
//	├── errors/          Structured error types
//	└── cmd/treeconv/    Command line converter and browser
//
// # Quick Start
//
// Convert a struct:
//
//	type User struct {
//		Name string   `ser:"name"`
//		Tags []string `ser:"tags,omitempty"`
//	}
//
//	v, err := treebridge.Convert(User{Name: "ada"})
//	// v.String() == `{"name": "ada"}`
//
// Describe enums by implementing ser.Serializable:
//
//	func (c Color) Serialize(s ser.Serializer) error {
//		return s.SerializeUnitVariant("Color", uint32(c), c.String())
//	}
//	// Red converts to {"Red": null}
//
// Decode a document:
//
//	v, err := treebridge.Decode(document.FormatYAML, data)
//
// # Conversion Rules
//
// Scalars keep their width. Options, units and unit structs become null.
// Sequences, tuples and tuple structs become bare lists. Maps and structs
// become records, and map keys must convert to strings. Enum variants become
// a single-entry record {variant: payload}.
//
// # Error Handling
//
// All errors are *errors.Error values carrying a phase and kind:
//
//	_, err := treebridge.Convert(map[int]string{1: "a"})
//	if stderrors.Is(err, errors.ErrKeyNotString) {
//		// map key was not a string
//	}
//
// Errors raised by a value's own Serialize method are returned unchanged.
package treebridge
