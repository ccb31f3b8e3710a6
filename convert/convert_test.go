package convert

import (
	stderrors "errors"
	"math"
	"sync"
	"testing"

	"github.com/go-test/deep"

	"github.com/wippyai/treebridge/errors"
	"github.com/wippyai/treebridge/ser"
	"github.com/wippyai/treebridge/tree"
)

type color int

const (
	red color = iota
	green
)

var colorNames = [...]string{"Red", "Green"}

func (c color) Serialize(s ser.Serializer) error {
	return s.SerializeUnitVariant("Color", uint32(c), colorNames[c])
}

type wrapped int32

func (w wrapped) Serialize(s ser.Serializer) error {
	return s.SerializeNewtypeVariant("E", 0, "Wrapped", int32(w))
}

type point3 struct{ x, y, z int32 }

func (p point3) Serialize(s ser.Serializer) error {
	tv, err := s.SerializeTupleVariant("E", 1, "Point3", 3)
	if err != nil {
		return err
	}
	for _, f := range []int32{p.x, p.y, p.z} {
		if err := tv.SerializeField(f); err != nil {
			return err
		}
	}
	return tv.End()
}

type shape struct{ w, h int32 }

func (sh shape) Serialize(s ser.Serializer) error {
	sv, err := s.SerializeStructVariant("E", 2, "Shape", 2)
	if err != nil {
		return err
	}
	if err := sv.SerializeField("w", sh.w); err != nil {
		return err
	}
	if err := sv.SerializeField("h", sh.h); err != nil {
		return err
	}
	return sv.End()
}

type meters float64

func (m meters) Serialize(s ser.Serializer) error {
	return s.SerializeNewtypeStruct("Meters", float64(m))
}

// pair serializes the same two elements through one of three entry points.
type pair struct {
	via  string
	a, b any
}

func (p pair) Serialize(s ser.Serializer) error {
	var (
		add func(any) error
		end func() error
	)
	switch p.via {
	case "seq":
		b, err := s.SerializeSeq(ser.UnknownLen)
		if err != nil {
			return err
		}
		add, end = b.SerializeElement, b.End
	case "tuple":
		b, err := s.SerializeTuple(2)
		if err != nil {
			return err
		}
		add, end = b.SerializeElement, b.End
	default:
		b, err := s.SerializeTupleStruct("Pair", 2)
		if err != nil {
			return err
		}
		add, end = b.SerializeField, b.End
	}
	if err := add(p.a); err != nil {
		return err
	}
	if err := add(p.b); err != nil {
		return err
	}
	return end()
}

// entries serializes a map with possibly repeated keys.
type entries [][2]any

func (e entries) Serialize(s ser.Serializer) error {
	m, err := s.SerializeMap(len(e))
	if err != nil {
		return err
	}
	for _, kv := range e {
		if err := m.SerializeEntry(kv[0], kv[1]); err != nil {
			return err
		}
	}
	return m.End()
}

type failing struct{ err error }

func (f failing) Serialize(ser.Serializer) error { return f.err }

// script runs an arbitrary callback sequence against the serializer.
type script func(s ser.Serializer) error

func (f script) Serialize(s ser.Serializer) error { return f(s) }

type record struct {
	Int int      `ser:"int"`
	Seq []string `ser:"seq"`
}

type marker struct{}

func mustConvert(t *testing.T, v any) tree.Value {
	t.Helper()
	out, err := Convert(v)
	if err != nil {
		t.Fatalf("Convert(%T) error: %v", v, err)
	}
	return out
}

func TestConvert_Primitives(t *testing.T) {
	tests := []struct {
		in   any
		want tree.Value
		name string
	}{
		{true, tree.Bool(true), "bool"},
		{int8(math.MinInt8), tree.S8(math.MinInt8), "int8"},
		{int16(-300), tree.S16(-300), "int16"},
		{int32(70000), tree.S32(70000), "int32"},
		{int64(math.MaxInt64), tree.S64(math.MaxInt64), "int64"},
		{uint8(255), tree.U8(255), "uint8"},
		{uint16(65535), tree.U16(65535), "uint16"},
		{uint32(math.MaxUint32), tree.U32(math.MaxUint32), "uint32"},
		{uint64(math.MaxUint64), tree.U64(math.MaxUint64), "uint64"},
		{float32(0.5), tree.F32(0.5), "float32"},
		{math.Pi, tree.F64(math.Pi), "float64"},
		{"héllo", tree.String("héllo"), "string"},
		{ser.Char('λ'), tree.String("λ"), "char"},
		{[]byte("raw"), tree.Bytes("raw"), "bytes"},
		{meters(2.5), tree.F64(2.5), "newtype struct"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := mustConvert(t, tt.in)
			if !tree.Equal(first, tt.want) {
				t.Errorf("Convert = %v, want %v", first, tt.want)
			}
			if second := mustConvert(t, tt.in); !tree.Equal(first, second) {
				t.Errorf("second Convert = %v, want %v", second, first)
			}
		})
	}
}

func TestConvert_BytesAreCopied(t *testing.T) {
	src := []byte{1, 2, 3}
	out := mustConvert(t, src)
	src[0] = 9
	if out.(tree.Bytes)[0] != 1 {
		t.Error("converted bytes should not alias the input")
	}
}

func TestConvert_NullShapes(t *testing.T) {
	var nilPtr *int
	n := 4

	for name, in := range map[string]any{
		"nil":         nil,
		"nil pointer": nilPtr,
		"unit":        ser.Unit{},
		"unit struct": marker{},
	} {
		t.Run(name, func(t *testing.T) {
			if out := mustConvert(t, in); !tree.IsNull(out) {
				t.Errorf("Convert = %v, want null", out)
			}
		})
	}

	if out := mustConvert(t, &n); !tree.Equal(out, tree.S64(4)) {
		t.Errorf("Convert(some) = %v, want 4", out)
	}
}

func TestConvert_Variants(t *testing.T) {
	tests := []struct {
		in   any
		want tree.Value
		name string
	}{
		{red, tree.Tagged("Red", tree.Null{}), "unit variant"},
		{green, tree.Tagged("Green", tree.Null{}), "second unit variant"},
		{wrapped(5), tree.Tagged("Wrapped", tree.S32(5)), "newtype variant"},
		{
			point3{1, 2, 3},
			tree.Tagged("Point3", tree.FromValues(tree.S32(1), tree.S32(2), tree.S32(3))),
			"tuple variant",
		},
		{
			shape{w: 1, h: 2},
			tree.Tagged("Shape", tree.FromPairs(
				tree.Pair{Name: "w", Value: tree.S32(1)},
				tree.Pair{Name: "h", Value: tree.S32(2)},
			)),
			"struct variant",
		},
		{
			[]any{red, wrapped(7)},
			tree.FromValues(
				tree.Tagged("Red", tree.Null{}),
				tree.Tagged("Wrapped", tree.S32(7)),
			),
			"variants in a sequence",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := mustConvert(t, tt.in)
			if !tree.Equal(out, tt.want) {
				t.Errorf("Convert = %v, want %v", out, tt.want)
			}
			if got := out.String(); got != tt.want.String() {
				t.Errorf("String() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestConvert_SequenceEntryPoints(t *testing.T) {
	want := tree.FromValues(tree.String("a"), tree.Bool(true))

	for _, via := range []string{"seq", "tuple", "tuple struct"} {
		t.Run(via, func(t *testing.T) {
			out := mustConvert(t, pair{via: via, a: "a", b: true})
			if !tree.Equal(out, want) {
				t.Errorf("Convert = %v, want %v", out, want)
			}
		})
	}

	ten := make([]int16, 10)
	for i := range ten {
		ten[i] = int16(i * i)
	}
	out := mustConvert(t, ten).(tree.List)
	if out.Len() != 10 || out.IsRecord() {
		t.Fatalf("Convert = %v, want bare list of 10", out)
	}
	for i, v := range out.Values() {
		if !tree.Equal(v, tree.S16(i*i)) {
			t.Errorf("element %d = %v, want %d", i, v, i*i)
		}
	}

	if out := mustConvert(t, []string{}); !tree.Equal(out, tree.FromValues()) {
		t.Errorf("Convert(empty) = %v, want []", out)
	}
}

func TestConvert_Records(t *testing.T) {
	out := mustConvert(t, record{Int: 1, Seq: []string{"a", "b"}})
	want := tree.FromPairs(
		tree.Pair{Name: "int", Value: tree.S64(1)},
		tree.Pair{Name: "seq", Value: tree.FromValues(tree.String("a"), tree.String("b"))},
	)
	if !tree.Equal(out, want) {
		t.Errorf("Convert = %v, want %v", out, want)
	}
	if got := out.String(); got != `{"int": 1, "seq": ["a", "b"]}` {
		t.Errorf("String() = %s", got)
	}

	dup := mustConvert(t, entries{{"k", 1}, {"j", 2}, {"k", 3}}).(tree.List)
	if diff := deep.Equal(dup.Names(), []string{"k", "j", "k"}); diff != nil {
		t.Errorf("duplicate keys: %v", diff)
	}
	if diff := deep.Equal(dup.Values(), []tree.Value{tree.S64(1), tree.S64(2), tree.S64(3)}); diff != nil {
		t.Errorf("duplicate values: %v", diff)
	}

	// char keys convert to one-character strings
	chars := mustConvert(t, entries{{ser.Char('x'), nil}})
	if !tree.Equal(chars, tree.Tagged("x", tree.Null{})) {
		t.Errorf("Convert = %v, want {\"x\": null}", chars)
	}

	sorted := mustConvert(t, map[string]uint8{"b": 2, "a": 1})
	if got := sorted.String(); got != `{"a": 1, "b": 2}` {
		t.Errorf("map String() = %s", got)
	}
}

func TestConvert_KeyNotString(t *testing.T) {
	tests := []struct {
		in   any
		key  tree.Value
		name string
	}{
		{map[int]string{1: "one"}, tree.S64(1), "int key"},
		{entries{{"ok", 1}, {true, 2}}, tree.Bool(true), "bool key after valid entry"},
		{entries{{red, 1}}, tree.Tagged("Red", tree.Null{}), "variant key"},
		{entries{{[]byte("k"), 1}}, tree.Bytes("k"), "bytes key"},
		{map[float64]int{math.NaN(): 1}, tree.F64(math.NaN()), "NaN key"},
		{map[any]int{math.NaN(): 1}, tree.F64(math.NaN()), "NaN key behind interface"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Convert(tt.in)
			if out != nil {
				t.Errorf("Convert produced %v alongside an error", out)
			}
			if !stderrors.Is(err, errors.ErrKeyNotString) {
				t.Fatalf("Convert error = %v, want key-not-string", err)
			}
			var e *errors.Error
			if !stderrors.As(err, &e) {
				t.Fatalf("error %T is not *errors.Error", err)
			}
			if !tree.Equal(e.Value.(tree.Value), tt.key) {
				t.Errorf("error value = %v, want %v", e.Value, tt.key)
			}
		})
	}
}

func TestConvert_ChildErrorPassesThrough(t *testing.T) {
	boom := stderrors.New("boom")
	elems := make([]any, 10)
	for i := range elems {
		elems[i] = i
	}
	elems[2] = failing{err: boom}

	tests := []struct {
		in   any
		name string
	}{
		{elems, "third of ten"},
		{map[string]any{"a": []any{failing{err: boom}}}, "nested in map"},
		{entries{{failing{err: boom}, 1}}, "map key"},
		{pair{via: "tuple struct", a: 1, b: failing{err: boom}}, "tuple struct field"},
		{struct{ F any }{F: failing{err: boom}}, "struct field"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Convert(tt.in)
			if err != boom {
				t.Errorf("Convert error = %v, want the child error unchanged", err)
			}
			if out != nil {
				t.Errorf("Convert produced %v alongside an error", out)
			}
		})
	}
}

func TestConvert_CustomError(t *testing.T) {
	in := script(func(s ser.Serializer) error {
		return s.Errorf("invalid %s %d", "width", -1)
	})
	_, err := Convert(in)
	if !stderrors.Is(err, errors.ErrCustom) {
		t.Fatalf("Convert error = %v, want custom", err)
	}
	var e *errors.Error
	if stderrors.As(err, &e) && e.Detail != "invalid width -1" {
		t.Errorf("Detail = %q", e.Detail)
	}

	_, err = Convert(func() {})
	if !stderrors.Is(err, errors.ErrUnsupported) {
		t.Errorf("Convert(func) error = %v, want unsupported", err)
	}
}

func TestConvert_ProtocolViolations(t *testing.T) {
	tests := []struct {
		run  script
		name string
	}{
		{func(s ser.Serializer) error {
			m, _ := s.SerializeMap(1)
			return m.SerializeValue(1)
		}, "value without key"},
		{func(s ser.Serializer) error {
			m, _ := s.SerializeMap(1)
			if err := m.SerializeKey("a"); err != nil {
				return err
			}
			return m.SerializeKey("b")
		}, "key after key"},
		{func(s ser.Serializer) error {
			m, _ := s.SerializeMap(1)
			if err := m.SerializeKey("a"); err != nil {
				return err
			}
			return m.End()
		}, "dangling key at End"},
		{func(s ser.Serializer) error {
			m, _ := s.SerializeMap(0)
			if err := m.End(); err != nil {
				return err
			}
			return m.SerializeEntry("a", 1)
		}, "map use after End"},
		{func(s ser.Serializer) error {
			seq, _ := s.SerializeSeq(0)
			if err := seq.End(); err != nil {
				return err
			}
			return seq.SerializeElement(1)
		}, "seq use after End"},
		{func(s ser.Serializer) error {
			st, _ := s.SerializeStruct("S", 0)
			if err := st.End(); err != nil {
				return err
			}
			return st.End()
		}, "struct End twice"},
		{func(s ser.Serializer) error {
			if err := s.SerializeBool(true); err != nil {
				return err
			}
			return s.SerializeBool(false)
		}, "second write"},
		{func(s ser.Serializer) error {
			_, err := s.SerializeSeq(2)
			return err
		}, "builder never ended"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Convert(tt.run)
			if !stderrors.Is(err, errors.ErrProtocol) {
				t.Errorf("Convert error = %v, want protocol violation", err)
			}
			if out != nil {
				t.Errorf("Convert produced %v alongside an error", out)
			}
		})
	}
}

func TestConvert_SkipField(t *testing.T) {
	in := script(func(s ser.Serializer) error {
		st, err := s.SerializeStruct("S", 2)
		if err != nil {
			return err
		}
		if err := st.SkipField("gone"); err != nil {
			return err
		}
		if err := st.SerializeField("kept", "v"); err != nil {
			return err
		}
		return st.End()
	})
	out := mustConvert(t, in)
	if !tree.Equal(out, tree.Tagged("kept", tree.String("v"))) {
		t.Errorf("Convert = %v, want {\"kept\": \"v\"}", out)
	}
}

func TestConvert_Concurrent(t *testing.T) {
	in := record{Int: 3, Seq: []string{"x"}}
	want := mustConvert(t, in)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := Convert(in)
			if err != nil || !tree.Equal(out, want) {
				t.Errorf("Convert = %v, %v", out, err)
			}
		}()
	}
	wg.Wait()
}
