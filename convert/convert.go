package convert

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/wippyai/treebridge/errors"
	"github.com/wippyai/treebridge/ser"
	"github.com/wippyai/treebridge/tree"
)

// Convert converts v into a tree value.
func Convert(v any) (tree.Value, error) {
	out, err := convert(v)
	if err != nil {
		Logger().Debug("conversion failed",
			zap.String("type", fmt.Sprintf("%T", v)),
			zap.Error(err))
		return nil, err
	}
	return out, nil
}

func convert(v any) (tree.Value, error) {
	a := &adapter{}
	if err := ser.Serialize(v, a); err != nil {
		return nil, err
	}
	return a.result()
}

// adapter is the ser.Serializer for a single output slot.
type adapter struct {
	out  tree.Value
	done bool
}

var _ ser.Serializer = (*adapter)(nil)

func (a *adapter) set(v tree.Value) error {
	if a.done {
		return errors.Protocol("second value written to a filled slot (had %s, got %s)", a.out, v)
	}
	a.out, a.done = v, true
	return nil
}

func (a *adapter) result() (tree.Value, error) {
	if !a.done {
		return nil, errors.Protocol("serializer returned without producing a value")
	}
	return a.out, nil
}

func (a *adapter) SerializeBool(v bool) error       { return a.set(tree.Bool(v)) }
func (a *adapter) SerializeInt8(v int8) error       { return a.set(tree.S8(v)) }
func (a *adapter) SerializeInt16(v int16) error     { return a.set(tree.S16(v)) }
func (a *adapter) SerializeInt32(v int32) error     { return a.set(tree.S32(v)) }
func (a *adapter) SerializeInt64(v int64) error     { return a.set(tree.S64(v)) }
func (a *adapter) SerializeUint8(v uint8) error     { return a.set(tree.U8(v)) }
func (a *adapter) SerializeUint16(v uint16) error   { return a.set(tree.U16(v)) }
func (a *adapter) SerializeUint32(v uint32) error   { return a.set(tree.U32(v)) }
func (a *adapter) SerializeUint64(v uint64) error   { return a.set(tree.U64(v)) }
func (a *adapter) SerializeFloat32(v float32) error { return a.set(tree.F32(v)) }
func (a *adapter) SerializeFloat64(v float64) error { return a.set(tree.F64(v)) }
func (a *adapter) SerializeStr(v string) error      { return a.set(tree.String(v)) }

func (a *adapter) SerializeChar(v rune) error {
	return a.set(tree.String(string(v)))
}

func (a *adapter) SerializeBytes(v []byte) error {
	return a.set(append(tree.Bytes{}, v...))
}

func (a *adapter) SerializeNone() error {
	return a.set(tree.Null{})
}

func (a *adapter) SerializeSome(v any) error {
	return ser.Serialize(v, a)
}

func (a *adapter) SerializeUnit() error {
	return a.set(tree.Null{})
}

func (a *adapter) SerializeUnitStruct(string) error {
	return a.set(tree.Null{})
}

func (a *adapter) SerializeUnitVariant(_ string, _ uint32, variant string) error {
	return a.set(tree.Tagged(variant, tree.Null{}))
}

func (a *adapter) SerializeNewtypeStruct(_ string, v any) error {
	return ser.Serialize(v, a)
}

func (a *adapter) SerializeNewtypeVariant(_ string, _ uint32, variant string, v any) error {
	payload, err := convert(v)
	if err != nil {
		return err
	}
	return a.set(tree.Tagged(variant, payload))
}

func (a *adapter) SerializeSeq(length int) (ser.SerializeSeq, error) {
	return newSeqBuilder(a.set, length), nil
}

func (a *adapter) SerializeTuple(length int) (ser.SerializeTuple, error) {
	return newSeqBuilder(a.set, length), nil
}

func (a *adapter) SerializeTupleStruct(_ string, length int) (ser.SerializeTupleStruct, error) {
	return newSeqBuilder(a.set, length), nil
}

func (a *adapter) SerializeTupleVariant(_ string, _ uint32, variant string, length int) (ser.SerializeTupleVariant, error) {
	b := newSeqBuilder(a.set, length)
	b.tag(variant)
	return b, nil
}

func (a *adapter) SerializeMap(length int) (ser.SerializeMap, error) {
	return newMapBuilder(a.set, length), nil
}

func (a *adapter) SerializeStruct(_ string, length int) (ser.SerializeStruct, error) {
	return newStructBuilder(a.set, length), nil
}

func (a *adapter) SerializeStructVariant(_ string, _ uint32, variant string, length int) (ser.SerializeStructVariant, error) {
	b := newStructBuilder(a.set, length)
	b.tag(variant)
	return b, nil
}

func (a *adapter) Errorf(format string, args ...any) error {
	return errors.Custom(fmt.Sprintf(format, args...))
}
