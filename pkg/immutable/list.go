package immutable

import "github.com/emirpasic/gods/lists/arraylist"

// List is an ordered, indexed collection.
type List struct {
	items *arraylist.List
}

// NewList creates a list holding a copy of values.
func NewList(values ...any) *List {
	return &List{items: arraylist.New(values...)}
}

func (l *List) Kind() Kind       { return KindList }
func (l *List) TypeName() string { return KindList.String() }
func (l *List) Size() int        { return l.items.Size() }

// Get returns the value at index i. Negative indexes count from the end.
func (l *List) Get(i int) (any, bool) {
	if i < 0 {
		i += l.items.Size()
	}
	return l.items.Get(i)
}

// Push returns a new list with values appended.
func (l *List) Push(values ...any) *List {
	next := arraylist.New(l.items.Values()...)
	next.Add(values...)
	return &List{items: next}
}

// Set returns a new list with the value at index i replaced.
// An index equal to Size appends; out of range indexes return l unchanged.
func (l *List) Set(i int, value any) *List {
	if i < 0 || i > l.items.Size() {
		return l
	}
	next := arraylist.New(l.items.Values()...)
	next.Set(i, value)
	return &List{items: next}
}

func (l *List) Range(fn func(key, value any) bool) {
	for i, v := range l.items.Values() {
		if !fn(i, v) {
			return
		}
	}
}

func (l *List) Keys() []any   { return indexKeys(l.items.Size()) }
func (l *List) Values() []any { return l.items.Values() }

func indexKeys(n int) []any {
	keys := make([]any, n)
	for i := range keys {
		keys[i] = i
	}
	return keys
}
