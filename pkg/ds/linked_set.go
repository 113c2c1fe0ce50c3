package ds

import (
	"iter"

	"github.com/sirupsen/logrus"
)

type node[T any] struct {
	value      T
	prev, next *node[T]
}

// linkedSet indexes elements to the nodes of a circular doubly linked list.
// root is the sentinel: root.next is the head and root.prev the tail.
// Add, Remove and Contains are O(1); At walks from the nearer end.
type linkedSet[T comparable] struct {
	index  *hashIndex[T, *node[T]]
	root   node[T]
	size   int
	logger *logrus.Entry
}

// NewLinkedSet returns a linked Set. capacity below 1 falls back to
// DefaultCapacity; a nil cmp means natural equality.
func NewLinkedSet[T comparable](capacity int, cmp Comparer[T]) Set[T] {
	return newLinkedSet(normalizeCapacity(capacity, logger), cmp, logger)
}

func newLinkedSet[T comparable](capacity int, cmp Comparer[T], log *logrus.Entry) *linkedSet[T] {
	s := &linkedSet[T]{
		index:  newHashIndex[T, *node[T]](capacity, cmp),
		logger: log.WithField("strategy", Linked.String()),
	}
	s.root.next = &s.root
	s.root.prev = &s.root
	return s
}

func (s *linkedSet[T]) Add(item T) bool {
	if s.index.contains(item) {
		return false
	}
	n := &node[T]{value: item}
	s.index.put(item, n)
	n.prev = s.root.prev
	n.next = &s.root
	s.root.prev.next = n
	s.root.prev = n
	s.size++
	return true
}

func (s *linkedSet[T]) Remove(item T) bool {
	n, ok := s.index.delete(item)
	if !ok {
		return false
	}
	if n.prev == nil || n.next == nil {
		panic(inconsistent(s.logger, "remove", s.index.len(), s.size))
	}
	n.prev.next = n.next
	n.next.prev = n.prev
	// detached nodes must not keep the rest of the list reachable
	n.prev = nil
	n.next = nil
	s.size--
	return true
}

func (s *linkedSet[T]) Contains(item T) bool {
	return s.index.contains(item)
}

func (s *linkedSet[T]) Size() int {
	return s.size
}

func (s *linkedSet[T]) Clear() {
	s.index.clear()
	s.root.next = &s.root
	s.root.prev = &s.root
	s.size = 0
}

func (s *linkedSet[T]) At(index int) (T, error) {
	if err := checkIndex(index, s.size); err != nil {
		var zero T
		return zero, err
	}
	var n *node[T]
	if index <= s.size/2 {
		n = s.root.next
		for range index {
			n = n.next
		}
	} else {
		n = s.root.prev
		for range s.size - 1 - index {
			n = n.prev
		}
	}
	return n.value, nil
}

func (s *linkedSet[T]) CopyTo(dst []T, offset int) error {
	if err := checkCopy(dst, offset, s.size); err != nil {
		return err
	}
	i := offset
	for n := s.root.next; n != &s.root; n = n.next {
		dst[i] = n.value
		i++
	}
	return nil
}

func (s *linkedSet[T]) ToSlice() []T {
	slice := make([]T, 0, s.size)
	for n := s.root.next; n != &s.root; n = n.next {
		slice = append(slice, n.value)
	}
	return slice
}

// All tolerates removal of the element just yielded.
func (s *linkedSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.root.next; n != nil && n != &s.root; {
			next := n.next
			if !yield(n.value) {
				return
			}
			n = next
		}
	}
}
