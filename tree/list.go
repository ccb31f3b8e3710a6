package tree

import "github.com/samber/lo"

// Entry is one element of a List. Named is false for positional entries.
type Entry struct {
	Value Value
	Name  string
	Named bool
}

// Pair is a name and value used to build records.
type Pair struct {
	Value Value
	Name  string
}

// List is an ordered sequence of entries, each optionally named.
type List []Entry

// FromValues builds a bare list.
func FromValues(values ...Value) List {
	l := make(List, 0, len(values))
	for _, v := range values {
		l = append(l, Entry{Value: v})
	}
	return l
}

// FromPairs builds a record. Order is kept and repeated names are kept.
func FromPairs(pairs ...Pair) List {
	l := make(List, 0, len(pairs))
	for _, p := range pairs {
		l = append(l, Entry{Name: p.Name, Named: true, Value: p.Value})
	}
	return l
}

// Tagged builds the single-entry record {name: payload} used for enum variants.
func Tagged(name string, payload Value) List {
	return List{{Name: name, Named: true, Value: payload}}
}

func (l List) Len() int {
	return len(l)
}

// IsRecord reports whether any entry carries a name.
func (l List) IsRecord() bool {
	return lo.ContainsBy(l, func(e Entry) bool { return e.Named })
}

// Names returns the entry names in order, with "" for unnamed entries.
func (l List) Names() []string {
	return lo.Map(l, func(e Entry, _ int) string { return e.Name })
}

// Values returns the entry values in order.
func (l List) Values() []Value {
	return lo.Map(l, func(e Entry, _ int) Value { return e.Value })
}

// Get returns the value of the first entry named name.
func (l List) Get(name string) (Value, bool) {
	e, ok := lo.Find(l, func(e Entry) bool { return e.Named && e.Name == name })
	return e.Value, ok
}

// Tag returns the name and payload of a single-entry record.
func (l List) Tag() (string, Value, bool) {
	if len(l) != 1 || !l[0].Named {
		return "", nil, false
	}
	return l[0].Name, l[0].Value, true
}
