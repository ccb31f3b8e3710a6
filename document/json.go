package document

import (
	"io"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/wippyai/treebridge/errors"
)

var jsonConfig = jsoniter.ConfigCompatibleWithStandardLibrary

func decodeJSON(data []byte) (any, error) {
	iter := jsoniter.ParseBytes(jsonConfig, data)
	if !hasMore(iter) {
		return nil, errors.ParseFailed("json", errors.InvalidData(errors.PhaseDecode, nil, "empty document"))
	}

	v := readJSON(iter)
	if iter.Error != nil && iter.Error != io.EOF {
		return nil, errors.ParseFailed("json", iter.Error)
	}
	if hasMore(iter) {
		return nil, errors.ParseFailed("json", errors.InvalidData(errors.PhaseDecode, nil,
			"unexpected data after top-level value"))
	}
	return v, nil
}

// hasMore reports whether a non-whitespace byte remains. WhatIsNext only
// peeks; running out of input is what sets the error.
func hasMore(iter *jsoniter.Iterator) bool {
	if iter.Error != nil {
		return false
	}
	iter.WhatIsNext()
	return iter.Error == nil
}

func readJSON(iter *jsoniter.Iterator) any {
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		iter.ReadNil()
		return Null{}
	case jsoniter.BoolValue:
		return Bool(iter.ReadBool())
	case jsoniter.NumberValue:
		return parseNumber(iter, string(iter.ReadNumber()))
	case jsoniter.StringValue:
		return String(iter.ReadString())
	case jsoniter.ArrayValue:
		arr := Array{}
		iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			arr = append(arr, readJSON(it))
			return it.Error == nil || it.Error == io.EOF
		})
		return arr
	case jsoniter.ObjectValue:
		obj := NewObject()
		iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
			obj.Set(key, readJSON(it))
			return it.Error == nil || it.Error == io.EOF
		})
		return obj
	default:
		iter.ReportError("readJSON", "unexpected token")
		return nil
	}
}

// parseNumber keeps integers exact: int64 first, then uint64, then float64.
func parseNumber(iter *jsoniter.Iterator, n string) any {
	if i, err := strconv.ParseInt(n, 10, 64); err == nil {
		return Int(i)
	}
	if u, err := strconv.ParseUint(n, 10, 64); err == nil {
		return Uint(u)
	}
	f, err := strconv.ParseFloat(n, 64)
	if err != nil {
		iter.ReportError("parseNumber", "invalid number "+n)
		return nil
	}
	return Float(f)
}
