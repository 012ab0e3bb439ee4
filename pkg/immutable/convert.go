package immutable

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"slices"

	"gopkg.in/yaml.v3"
)

// MaxDecodeDepth bounds the nesting accepted by FromYAML.
const MaxDecodeDepth = 512

// FromNative deeply converts plain Go data into immutable collections:
// slices and arrays become Lists, maps become Maps. Native maps have no
// order, so their keys are inserted sorted by their printed form.
// Anything else, including existing collections, is returned as is.
func FromNative(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case Collection:
		return v
	case []byte:
		return string(t)
	case []any:
		values := make([]any, len(t))
		for i, item := range t {
			values[i] = FromNative(item)
		}
		return NewList(values...)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		entries := make([]Entry, len(keys))
		for i, k := range keys {
			entries[i] = Entry{Key: k, Value: FromNative(t[k])}
		}
		return NewMap(entries...)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		values := make([]any, rv.Len())
		for i := range values {
			values[i] = FromNative(rv.Index(i).Interface())
		}
		return NewList(values...)
	case reflect.Map:
		keys := rv.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return cmp.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
		})
		entries := make([]Entry, len(keys))
		for i, k := range keys {
			entries[i] = Entry{Key: k.Interface(), Value: FromNative(rv.MapIndex(k).Interface())}
		}
		return NewMap(entries...)
	default:
		return v
	}
}

// FromYAML decodes a YAML (or JSON) document into immutable values while
// keeping the document's key order. Mappings become Maps, sequences become
// Lists and scalars decode to string, int, float64, bool or nil.
// An empty document yields nil.
func FromYAML(data []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	if doc.Kind == 0 {
		return nil, nil
	}
	v, err := fromNode(&doc, 0)
	if err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	return v, nil
}

func fromNode(n *yaml.Node, depth int) (any, error) {
	if depth > MaxDecodeDepth {
		return nil, ErrTooDeep
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return fromNode(n.Content[0], depth)
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, ErrUnsupportedNode
		}
		return fromNode(n.Alias, depth+1)
	case yaml.SequenceNode:
		values := make([]any, len(n.Content))
		for i, c := range n.Content {
			v, err := fromNode(c, depth+1)
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		return NewList(values...), nil
	case yaml.MappingNode:
		entries := make([]Entry, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, err := fromNode(n.Content[i], depth+1)
			if err != nil {
				return nil, err
			}
			v, err := fromNode(n.Content[i+1], depth+1)
			if err != nil {
				return nil, err
			}
			entries = append(entries, Entry{Key: k, Value: v})
		}
		return NewMap(entries...), nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: kind %d", ErrUnsupportedNode, n.Kind)
	}
}
