package cache

import (
	"container/list"
	"sync"
)

// Seen is a thread-safe set with a fixed capacity. When full, adding a new
// key evicts the least recently seen one.
type Seen[K comparable] struct {
	capacity int
	items    map[K]*list.Element
	order    *list.List
	mu       sync.Mutex
}

// NewSeen creates a set holding at most capacity keys. It panics when
// capacity is not positive.
func NewSeen[K comparable](capacity int) *Seen[K] {
	if capacity <= 0 {
		panic("seen set capacity must be positive")
	}
	return &Seen[K]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		order:    list.New(),
	}
}

// Add records key and reports whether it was new. A key already present is
// marked as recently seen.
func (s *Seen[K]) Add(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.items[key]; ok {
		s.order.MoveToFront(elem)
		return false
	}

	s.items[key] = s.order.PushFront(key)
	if s.order.Len() > s.capacity {
		oldest := s.order.Back()
		s.order.Remove(oldest)
		delete(s.items, oldest.Value.(K))
	}
	return true
}

// Contains reports whether key is present without touching its recency.
func (s *Seen[K]) Contains(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.items[key]
	return ok
}

// Len returns the number of remembered keys.
func (s *Seen[K]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Len()
}

// Capacity returns the maximum number of remembered keys.
func (s *Seen[K]) Capacity() int {
	return s.capacity
}

// Clear removes every key.
func (s *Seen[K]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[K]*list.Element, s.capacity)
	s.order.Init()
}
