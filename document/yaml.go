package document

import (
	"encoding/base64"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/treebridge/errors"
)

func decodeYAML(data []byte) (any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.ParseFailed("yaml", err)
	}
	d := &yamlDecoder{expanding: make(map[*yaml.Node]bool)}
	return d.node(&root, nil)
}

// maxAliasNodes caps the nodes materialized through aliases. Each use of an
// alias copies its anchor, so nested anchors grow exponentially.
const maxAliasNodes = 100_000

// yamlDecoder follows aliases and tracks the anchors currently being
// expanded so a self-referencing alias fails instead of recursing forever.
type yamlDecoder struct {
	expanding  map[*yaml.Node]bool
	inAlias    int
	aliasNodes int
}

func (d *yamlDecoder) node(n *yaml.Node, path []string) (any, error) {
	if d.inAlias > 0 {
		d.aliasNodes++
		if d.aliasNodes > maxAliasNodes {
			return nil, errors.InvalidData(errors.PhaseDecode, path, "alias expansion exceeds limit")
		}
	}

	switch n.Kind {
	case 0:
		return Null{}, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null{}, nil
		}
		return d.node(n.Content[0], path)
	case yaml.AliasNode:
		return d.alias(n, path)
	case yaml.SequenceNode:
		arr := make(Array, 0, len(n.Content))
		for i, c := range n.Content {
			v, err := d.node(c, append(path, strconv.Itoa(i)))
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.MappingNode:
		return d.mapping(n, path)
	case yaml.ScalarNode:
		return scalar(n, path)
	}
	return nil, errors.InvalidData(errors.PhaseDecode, path, "unknown yaml node kind")
}

func (d *yamlDecoder) alias(n *yaml.Node, path []string) (any, error) {
	target := n.Alias
	if target == nil {
		return nil, errors.InvalidData(errors.PhaseDecode, path, "alias *"+n.Value+" has no anchor")
	}
	if d.expanding[target] {
		return nil, errors.InvalidData(errors.PhaseDecode, path, "alias *"+n.Value+" refers to itself")
	}
	d.expanding[target] = true
	d.inAlias++
	defer func() {
		delete(d.expanding, target)
		d.inAlias--
	}()
	return d.node(target, path)
}

// mapping builds an Object when every key is a string and a Map otherwise.
// Merge keys (<<) pull in the entries of the referenced mappings; explicit
// keys override merged ones and earlier merge sources win over later ones.
func (d *yamlDecoder) mapping(n *yaml.Node, path []string) (any, error) {
	var merged, entries Map
	for i := 0; i+1 < len(n.Content); i += 2 {
		kn, vn := n.Content[i], n.Content[i+1]
		if kn.Kind == yaml.ScalarNode && kn.ShortTag() == "!!merge" {
			m, err := d.merge(vn, append(path, "<<"))
			if err != nil {
				return nil, err
			}
			merged = append(merged, m...)
			continue
		}

		k, err := d.node(kn, path)
		if err != nil {
			return nil, err
		}
		v, err := d.node(vn, append(path, kn.Value))
		if err != nil {
			return nil, err
		}
		entries = append(entries, MapEntry{Key: k, Value: v})
	}

	all := append(merged, entries...)
	for _, e := range all {
		if _, ok := e.Key.(String); !ok {
			return all, nil
		}
	}

	obj := NewObject()
	for _, e := range merged {
		key := string(e.Key.(String))
		if _, ok := obj.Get(key); !ok {
			obj.Set(key, e.Value)
		}
	}
	for _, e := range entries {
		obj.Set(string(e.Key.(String)), e.Value)
	}
	return obj, nil
}

// merge returns the entries of a merge value: a mapping or a sequence of
// mappings, usually given through aliases.
func (d *yamlDecoder) merge(n *yaml.Node, path []string) (Map, error) {
	v, err := d.node(n, path)
	if err != nil {
		return nil, err
	}
	if arr, ok := v.(Array); ok {
		var out Map
		for _, item := range arr {
			m, ok := mergeEntries(item)
			if !ok {
				return nil, errors.InvalidData(errors.PhaseDecode, path, "merge sequence must hold mappings")
			}
			out = append(out, m...)
		}
		return out, nil
	}
	m, ok := mergeEntries(v)
	if !ok {
		return nil, errors.InvalidData(errors.PhaseDecode, path, "merge value must be a mapping")
	}
	return m, nil
}

func mergeEntries(v any) (Map, bool) {
	switch x := v.(type) {
	case *Object:
		out := make(Map, 0, x.Len())
		for _, k := range x.Keys() {
			fv, _ := x.Get(k)
			out = append(out, MapEntry{Key: String(k), Value: fv})
		}
		return out, true
	case Map:
		return x, true
	}
	return nil, false
}

func scalar(n *yaml.Node, path []string) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return Null{}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, errors.Wrap(errors.PhaseDecode, errors.KindInvalidData, err, "bool at "+strings.Join(path, "."))
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return Int(i), nil
		}
		var u uint64
		if err := n.Decode(&u); err != nil {
			return nil, errors.Wrap(errors.PhaseDecode, errors.KindInvalidData, err, "int at "+strings.Join(path, "."))
		}
		return Uint(u), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, errors.Wrap(errors.PhaseDecode, errors.KindInvalidData, err, "float at "+strings.Join(path, "."))
		}
		return Float(f), nil
	case "!!binary":
		b, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(n.Value), ""))
		if err != nil {
			return nil, errors.Wrap(errors.PhaseDecode, errors.KindInvalidData, err, "binary at "+strings.Join(path, "."))
		}
		return Bytes(b), nil
	default:
		// !!str, !!timestamp and custom tags keep their text
		return String(n.Value), nil
	}
}
