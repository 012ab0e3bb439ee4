package immutable

import (
	"iter"
	"slices"
)

// Seq is a lazy indexed sequence. Its source is re-evaluated on every
// traversal, so it must be repeatable and free of side effects.
type Seq struct {
	src iter.Seq[any]
}

// NewSeq creates a sequence over a copy of values.
func NewSeq(values ...any) *Seq {
	return SeqFrom(slices.Values(slices.Clone(values)))
}

// SeqFrom creates a sequence backed by src. A nil src is an empty sequence.
func SeqFrom(src iter.Seq[any]) *Seq {
	if src == nil {
		src = func(func(any) bool) {}
	}
	return &Seq{src: src}
}

func (s *Seq) Kind() Kind       { return KindSeq }
func (s *Seq) TypeName() string { return KindSeq.String() }

func (s *Seq) Size() int {
	n := 0
	for range s.src {
		n++
	}
	return n
}

func (s *Seq) Range(fn func(key, value any) bool) {
	i := 0
	for v := range s.src {
		if !fn(i, v) {
			return
		}
		i++
	}
}

func (s *Seq) Keys() []any { return indexKeys(s.Size()) }

func (s *Seq) Values() []any {
	return slices.Collect(s.src)
}
