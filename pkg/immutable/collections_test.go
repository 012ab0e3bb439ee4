package immutable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/immutableprops/pkg/immutable"
)

func TestList(t *testing.T) {
	t.Run("keeps order and copies input", func(t *testing.T) {
		in := []any{1, 2, 3}
		l := immutable.NewList(in...)
		in[0] = 99

		assert.Equal(t, []any{1, 2, 3}, l.Values())
		assert.Equal(t, []any{0, 1, 2}, l.Keys())
		assert.Equal(t, 3, l.Size())
	})

	t.Run("get supports negative indexes", func(t *testing.T) {
		l := immutable.NewList("a", "b", "c")
		v, ok := l.Get(-1)
		require.True(t, ok)
		assert.Equal(t, "c", v)

		_, ok = l.Get(5)
		assert.False(t, ok)
	})

	t.Run("push and set return new lists", func(t *testing.T) {
		l := immutable.NewList(1)
		pushed := l.Push(2, 3)
		replaced := pushed.Set(0, "x")
		appended := l.Set(1, "y")

		assert.Equal(t, []any{1}, l.Values())
		assert.Equal(t, []any{1, 2, 3}, pushed.Values())
		assert.Equal(t, []any{"x", 2, 3}, replaced.Values())
		assert.Equal(t, []any{1, "y"}, appended.Values())
		assert.Same(t, l, l.Set(7, "z"))
	})

	t.Run("range stops early", func(t *testing.T) {
		var seen []any
		immutable.NewList("a", "b", "c").Range(func(k, v any) bool {
			seen = append(seen, k)
			return k.(int) < 1
		})
		assert.Equal(t, []any{0, 1}, seen)
	})
}

func TestMap(t *testing.T) {
	t.Run("iterates in insertion order", func(t *testing.T) {
		m := immutable.MapOf("z", 1, "a", 2, "m", 3)
		assert.Equal(t, []any{"z", "a", "m"}, m.Keys())
		assert.Equal(t, []any{1, 2, 3}, m.Values())
		assert.Equal(t, immutable.KindMap, m.Kind())
	})

	t.Run("ordered map kind", func(t *testing.T) {
		m := immutable.OrderedMapOf("a", 1)
		assert.Equal(t, immutable.KindOrderedMap, m.Kind())
		assert.Equal(t, "OrderedMap", m.TypeName())
		assert.Equal(t, immutable.KindOrderedMap, m.Set("b", 2).Kind())
	})

	t.Run("odd pairs get a nil value", func(t *testing.T) {
		m := immutable.MapOf("a", 1, "b")
		v, ok := m.Get("b")
		assert.True(t, ok)
		assert.Nil(t, v)
	})

	t.Run("nil values are present", func(t *testing.T) {
		m := immutable.NewMap(immutable.Entry{Key: "a", Value: nil})
		assert.True(t, m.Has("a"))
		assert.False(t, m.Has("b"))
	})

	t.Run("set and delete return new maps", func(t *testing.T) {
		m := immutable.MapOf("a", 1)
		added := m.Set("b", 2)
		removed := added.Delete("a")

		assert.Equal(t, 1, m.Size())
		assert.Equal(t, []any{"a", "b"}, added.Keys())
		assert.Equal(t, []any{"b"}, removed.Keys())
	})

	t.Run("entries", func(t *testing.T) {
		m := immutable.MapOf(1, "one", 2, "two")
		assert.Equal(t, []immutable.Entry{{Key: 1, Value: "one"}, {Key: 2, Value: "two"}}, m.Entries())
	})
}

func TestSet(t *testing.T) {
	s := immutable.NewSet("a", "b", "a")
	assert.Equal(t, 2, s.Size())
	assert.Equal(t, []any{"a", "b"}, s.Values())
	assert.Equal(t, []any{0, 1}, s.Keys())
	assert.True(t, s.Has("a"))

	added := s.Add("c")
	assert.False(t, s.Has("c"))
	assert.True(t, added.Has("c"))
	assert.Equal(t, immutable.KindSet, added.Kind())

	removed := immutable.NewOrderedSet(1, 2, 3).Remove(2)
	assert.Equal(t, []any{1, 3}, removed.Values())
	assert.Equal(t, immutable.KindOrderedSet, removed.Kind())
}

func TestStack(t *testing.T) {
	s := immutable.NewStack("top", "middle", "bottom")
	assert.Equal(t, []any{"top", "middle", "bottom"}, s.Values())

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, "top", top)

	pushed := s.Push("new")
	assert.Equal(t, []any{"new", "top", "middle", "bottom"}, pushed.Values())
	assert.Equal(t, 3, s.Size())

	popped := s.Pop()
	assert.Equal(t, []any{"middle", "bottom"}, popped.Values())

	empty := immutable.NewStack()
	assert.Same(t, empty, empty.Pop())
	_, ok = empty.Peek()
	assert.False(t, ok)
}

func TestSeq(t *testing.T) {
	t.Run("values and keys", func(t *testing.T) {
		s := immutable.NewSeq(1, 2, 3)
		assert.Equal(t, 3, s.Size())
		assert.Equal(t, []any{1, 2, 3}, s.Values())
		assert.Equal(t, []any{0, 1, 2}, s.Keys())
	})

	t.Run("source is evaluated on every traversal", func(t *testing.T) {
		calls := 0
		s := immutable.SeqFrom(func(yield func(any) bool) {
			calls++
			yield("only")
		})
		_ = s.Values()
		_ = s.Values()
		assert.Equal(t, 2, calls)
	})

	t.Run("nil source is empty", func(t *testing.T) {
		s := immutable.SeqFrom(nil)
		assert.Zero(t, s.Size())
		assert.Empty(t, s.Values())
	})
}

func TestKindOf(t *testing.T) {
	var nilMap *immutable.Map

	tests := []struct {
		name  string
		value any
		kind  immutable.Kind
		ok    bool
	}{
		{"list", immutable.NewList(), immutable.KindList, true},
		{"map", immutable.MapOf(), immutable.KindMap, true},
		{"ordered map", immutable.OrderedMapOf(), immutable.KindOrderedMap, true},
		{"set", immutable.NewSet(), immutable.KindSet, true},
		{"ordered set", immutable.NewOrderedSet(), immutable.KindOrderedSet, true},
		{"stack", immutable.NewStack(), immutable.KindStack, true},
		{"seq", immutable.NewSeq(), immutable.KindSeq, true},
		{"record", immutable.DefineRecord("R").New(nil), immutable.KindRecord, true},
		{"zero record", &immutable.Record{}, 0, false},
		{"zero list", new(immutable.List), 0, false},
		{"zero map", &immutable.Map{}, 0, false},
		{"zero set", new(immutable.Set), 0, false},
		{"zero stack", new(immutable.Stack), 0, false},
		{"zero seq", new(immutable.Seq), 0, false},
		{"nil map", nilMap, 0, false},
		{"slice", []any{}, 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := immutable.KindOf(tt.value)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.kind, kind)
			}
			assert.Equal(t, tt.ok, immutable.IsCollection(tt.value))
		})
	}
}

func TestKind(t *testing.T) {
	assert.Equal(t, "OrderedSet", immutable.KindOrderedSet.String())
	assert.Equal(t, "Unknown", immutable.Kind(0).String())
	assert.True(t, immutable.KindMap.Keyed())
	assert.True(t, immutable.KindRecord.Keyed())
	assert.False(t, immutable.KindList.Keyed())
	assert.False(t, immutable.KindSet.Keyed())
}
