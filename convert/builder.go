package convert

import (
	"github.com/wippyai/treebridge/errors"
	"github.com/wippyai/treebridge/ser"
	"github.com/wippyai/treebridge/tree"
)

// compound holds what every builder shares: the accumulated entries, the
// callback that commits the finished list to the parent slot, and an
// optional variant name that wraps the list as {variant: list}.
type compound struct {
	commit  func(tree.Value) error
	entries tree.List
	variant string
	tagged  bool
	ended   bool
}

func newCompound(commit func(tree.Value) error, length int) compound {
	return compound{
		commit:  commit,
		entries: make(tree.List, 0, max(length, 0)),
	}
}

func (c *compound) tag(variant string) {
	c.variant, c.tagged = variant, true
}

func (c *compound) open(op string) error {
	if c.ended {
		return errors.Protocol("%s after End", op)
	}
	return nil
}

func (c *compound) finish() error {
	if err := c.open("End"); err != nil {
		return err
	}
	c.ended = true

	var v tree.Value = c.entries
	if c.tagged {
		v = tree.Tagged(c.variant, v)
	}
	return c.commit(v)
}

// seqBuilder builds bare lists for sequences, tuples, tuple structs and
// tuple variants.
type seqBuilder struct {
	compound
}

var (
	_ ser.SerializeSeq          = (*seqBuilder)(nil)
	_ ser.SerializeTuple        = (*seqBuilder)(nil)
	_ ser.SerializeTupleStruct  = (*seqBuilder)(nil)
	_ ser.SerializeTupleVariant = (*seqBuilder)(nil)
)

func newSeqBuilder(commit func(tree.Value) error, length int) *seqBuilder {
	return &seqBuilder{compound: newCompound(commit, length)}
}

func (b *seqBuilder) SerializeElement(v any) error {
	if err := b.open("SerializeElement"); err != nil {
		return err
	}
	child, err := convert(v)
	if err != nil {
		return err
	}
	b.entries = append(b.entries, tree.Entry{Value: child})
	return nil
}

func (b *seqBuilder) SerializeField(v any) error {
	return b.SerializeElement(v)
}

func (b *seqBuilder) End() error {
	return b.finish()
}

// mapBuilder builds records from key/value pairs. It alternates between
// awaiting a key and awaiting the value for a pending key.
type mapBuilder struct {
	compound
	key     string
	pending bool
}

var _ ser.SerializeMap = (*mapBuilder)(nil)

func newMapBuilder(commit func(tree.Value) error, length int) *mapBuilder {
	return &mapBuilder{compound: newCompound(commit, length)}
}

func (b *mapBuilder) SerializeKey(k any) error {
	if err := b.open("SerializeKey"); err != nil {
		return err
	}
	if b.pending {
		return errors.Protocol("key received while key %q awaits its value", b.key)
	}
	kv, err := convert(k)
	if err != nil {
		return err
	}
	name, ok := tree.AsStr(kv)
	if !ok {
		return errors.KeyNotString(kv)
	}
	b.key, b.pending = name, true
	return nil
}

func (b *mapBuilder) SerializeValue(v any) error {
	if err := b.open("SerializeValue"); err != nil {
		return err
	}
	if !b.pending {
		return errors.Protocol("value received without a key")
	}
	child, err := convert(v)
	if err != nil {
		return err
	}
	b.entries = append(b.entries, tree.Entry{Name: b.key, Named: true, Value: child})
	b.key, b.pending = "", false
	return nil
}

func (b *mapBuilder) SerializeEntry(k, v any) error {
	if err := b.SerializeKey(k); err != nil {
		return err
	}
	return b.SerializeValue(v)
}

func (b *mapBuilder) End() error {
	if b.pending && !b.ended {
		return errors.Protocol("End with key %q still awaiting its value", b.key)
	}
	return b.finish()
}

// structBuilder builds records for structs and struct variants.
type structBuilder struct {
	compound
}

var (
	_ ser.SerializeStruct        = (*structBuilder)(nil)
	_ ser.SerializeStructVariant = (*structBuilder)(nil)
)

func newStructBuilder(commit func(tree.Value) error, length int) *structBuilder {
	return &structBuilder{compound: newCompound(commit, length)}
}

func (b *structBuilder) SerializeField(key string, v any) error {
	if err := b.open("SerializeField"); err != nil {
		return err
	}
	child, err := convert(v)
	if err != nil {
		return err
	}
	b.entries = append(b.entries, tree.Entry{Name: key, Named: true, Value: child})
	return nil
}

func (b *structBuilder) SkipField(key string) error {
	return b.open("SkipField")
}

func (b *structBuilder) End() error {
	return b.finish()
}
