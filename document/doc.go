// Package document decodes JSON, YAML and CBOR documents into values the ser
// driver can walk.
//
// JSON and YAML decode into the node types of this package, which keep the
// key order of the source document. CBOR decodes into plain Go values
// (map[any]any, []any, int64, uint64, ...) and relies on the reflection driver,
// so CBOR map keys come out in sorted order.
//
// YAML aliases are expanded in place and merge keys (<<) are applied. The
// number of nodes produced through aliases is capped, so documents that nest
// anchors to fan out exponentially fail to decode.
//
//	data ──Decode──▶ node ──convert.Convert──▶ tree.Value
package document
