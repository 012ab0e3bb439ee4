package immutable

import "github.com/emirpasic/gods/maps/linkedhashmap"

// Entry is a single key/value pair used to build keyed collections in order.
type Entry struct {
	Key   any
	Value any
}

// Map is a keyed collection. Both Map and OrderedMap kinds enumerate in
// insertion order; only OrderedMap promises it. Keys must be comparable.
type Map struct {
	kind Kind
	data *linkedhashmap.Map
}

// NewMap creates a Map from entries. Later duplicates overwrite earlier values
// without moving the key.
func NewMap(entries ...Entry) *Map {
	return newMap(KindMap, entries)
}

// NewOrderedMap creates an OrderedMap from entries.
func NewOrderedMap(entries ...Entry) *Map {
	return newMap(KindOrderedMap, entries)
}

// MapOf creates a Map from alternating key, value arguments.
// A trailing key without a value is stored with a nil value.
func MapOf(kv ...any) *Map {
	return newMap(KindMap, pairs(kv))
}

// OrderedMapOf creates an OrderedMap from alternating key, value arguments.
func OrderedMapOf(kv ...any) *Map {
	return newMap(KindOrderedMap, pairs(kv))
}

func newMap(kind Kind, entries []Entry) *Map {
	data := linkedhashmap.New()
	for _, e := range entries {
		data.Put(e.Key, e.Value)
	}
	return &Map{kind: kind, data: data}
}

func pairs(kv []any) []Entry {
	entries := make([]Entry, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		e := Entry{Key: kv[i]}
		if i+1 < len(kv) {
			e.Value = kv[i+1]
		}
		entries = append(entries, e)
	}
	return entries
}

func (m *Map) Kind() Kind       { return m.kind }
func (m *Map) TypeName() string { return m.kind.String() }
func (m *Map) Size() int        { return m.data.Size() }

func (m *Map) Get(key any) (any, bool) {
	if v, ok := m.data.Get(key); ok {
		return v, true
	}
	// linkedhashmap reports nil values as missing
	return nil, m.Has(key)
}

func (m *Map) Has(key any) bool {
	if _, ok := m.data.Get(key); ok {
		return true
	}
	for _, k := range m.data.Keys() {
		if k == key {
			return true
		}
	}
	return false
}

// Set returns a new map of the same kind with key bound to value.
func (m *Map) Set(key, value any) *Map {
	next := m.clone()
	next.data.Put(key, value)
	return next
}

// Delete returns a new map of the same kind without key.
func (m *Map) Delete(key any) *Map {
	next := m.clone()
	next.data.Remove(key)
	return next
}

func (m *Map) Entries() []Entry {
	entries := make([]Entry, 0, m.data.Size())
	it := m.data.Iterator()
	for it.Next() {
		entries = append(entries, Entry{Key: it.Key(), Value: it.Value()})
	}
	return entries
}

func (m *Map) Range(fn func(key, value any) bool) {
	it := m.data.Iterator()
	for it.Next() {
		if !fn(it.Key(), it.Value()) {
			return
		}
	}
}

func (m *Map) Keys() []any   { return m.data.Keys() }
func (m *Map) Values() []any { return m.data.Values() }

func (m *Map) clone() *Map {
	return newMap(m.kind, m.Entries())
}
