// Package convert turns any value that can describe itself through the ser
// protocol into a tree.Value.
//
// Convert drives ser.Serialize with an adapter holding one empty output slot.
// Primitive callbacks fill the slot directly. Compound callbacks return a
// builder that converts each child with an independent recursive Convert,
// accumulates the results and, on End, commits the finished list to the slot
// exactly once.
//
// Mapping:
//
//	bool, intN, uintN, floatN   scalar leaf of the same width
//	char                        one-character String
//	bytes                       Bytes (copied)
//	none, unit, unit struct     Null
//	some(v), newtype struct     v, unwrapped
//	seq, tuple, tuple struct    bare list
//	map, struct                 record
//	unit variant                {variant: null}
//	newtype variant             {variant: payload}
//	tuple variant               {variant: [fields...]}
//	struct variant              {variant: {fields...}}
//
// Map keys must convert to a String leaf. Records keep duplicate names in
// the order they were supplied.
//
// The first error aborts the conversion and is returned unchanged. No
// partial value is ever returned.
package convert
