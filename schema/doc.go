// Package schema infers a WIT type describing a tree value.
//
//	Null                 tuple<>
//	Bool, S8 ... F64     bool, s8 ... f64
//	String               string
//	Bytes                list<u8>
//	bare list            list<T> when every element has type T,
//	                     list<option<T>> when the rest are null,
//	                     tuple<...> otherwise
//	record               record { field: T, ... }
//
// Field names are converted to kebab-case. A record must have unique,
// non-empty names after conversion.
package schema
