package document

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/wippyai/treebridge/errors"
)

var cborDecMode = func() cbor.DecMode {
	dm, err := cbor.DecOptions{
		DupMapKey:       cbor.DupMapKeyEnforcedAPF,
		MaxNestedLevels: 256,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return dm
}()

// decodeCBOR decodes into plain Go values: map[any]any, []any, int64 or
// uint64, float64, string, []byte, bool, nil and cbor.Tag for unknown tags.
func decodeCBOR(data []byte) (any, error) {
	var v any
	if err := cborDecMode.Unmarshal(data, &v); err != nil {
		return nil, errors.ParseFailed("cbor", err)
	}
	return v, nil
}
