package immutable

import "github.com/emirpasic/gods/sets/linkedhashset"

// Set is a collection of unique values. Both Set and OrderedSet kinds
// enumerate in insertion order; only OrderedSet promises it.
type Set struct {
	kind  Kind
	items *linkedhashset.Set
}

// NewSet creates a Set from values, dropping duplicates.
func NewSet(values ...any) *Set {
	return &Set{kind: KindSet, items: linkedhashset.New(values...)}
}

// NewOrderedSet creates an OrderedSet from values, dropping duplicates.
func NewOrderedSet(values ...any) *Set {
	return &Set{kind: KindOrderedSet, items: linkedhashset.New(values...)}
}

func (s *Set) Kind() Kind       { return s.kind }
func (s *Set) TypeName() string { return s.kind.String() }
func (s *Set) Size() int        { return s.items.Size() }

func (s *Set) Has(value any) bool {
	return s.items.Contains(value)
}

// Add returns a new set of the same kind that also holds values.
func (s *Set) Add(values ...any) *Set {
	next := linkedhashset.New(s.items.Values()...)
	next.Add(values...)
	return &Set{kind: s.kind, items: next}
}

// Remove returns a new set of the same kind without values.
func (s *Set) Remove(values ...any) *Set {
	next := linkedhashset.New(s.items.Values()...)
	next.Remove(values...)
	return &Set{kind: s.kind, items: next}
}

func (s *Set) Range(fn func(key, value any) bool) {
	for i, v := range s.items.Values() {
		if !fn(i, v) {
			return
		}
	}
}

func (s *Set) Keys() []any   { return indexKeys(s.items.Size()) }
func (s *Set) Values() []any { return s.items.Values() }
