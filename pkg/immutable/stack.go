package immutable

import "github.com/emirpasic/gods/stacks/arraystack"

// Stack is a last-in first-out collection. It iterates from the top down.
type Stack struct {
	items *arraystack.Stack
}

// NewStack creates a stack whose top is values[0].
func NewStack(values ...any) *Stack {
	items := arraystack.New()
	for i := len(values) - 1; i >= 0; i-- {
		items.Push(values[i])
	}
	return &Stack{items: items}
}

func (s *Stack) Kind() Kind       { return KindStack }
func (s *Stack) TypeName() string { return KindStack.String() }
func (s *Stack) Size() int        { return s.items.Size() }

func (s *Stack) Peek() (any, bool) {
	return s.items.Peek()
}

// Push returns a new stack with value on top.
func (s *Stack) Push(value any) *Stack {
	return NewStack(append([]any{value}, s.items.Values()...)...)
}

// Pop returns a new stack without its top value.
func (s *Stack) Pop() *Stack {
	values := s.items.Values()
	if len(values) == 0 {
		return s
	}
	return NewStack(values[1:]...)
}

func (s *Stack) Range(fn func(key, value any) bool) {
	for i, v := range s.items.Values() {
		if !fn(i, v) {
			return
		}
	}
}

func (s *Stack) Keys() []any   { return indexKeys(s.items.Size()) }
func (s *Stack) Values() []any { return s.items.Values() }
