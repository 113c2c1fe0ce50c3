package ds

import (
	"iter"
	"slices"

	"github.com/sirupsen/logrus"
)

// arraySet keeps a presence index next to a dense slice in insertion order.
// Add, Contains and At are O(1); Remove scans the slice.
type arraySet[T comparable] struct {
	index  *hashIndex[T, void]
	items  []T
	logger *logrus.Entry
}

// NewArraySet returns an array-backed Set. capacity below 1 falls back to
// DefaultCapacity; a nil cmp means natural equality.
func NewArraySet[T comparable](capacity int, cmp Comparer[T]) Set[T] {
	return newArraySet(normalizeCapacity(capacity, logger), cmp, logger)
}

func newArraySet[T comparable](capacity int, cmp Comparer[T], log *logrus.Entry) *arraySet[T] {
	return &arraySet[T]{
		index:  newHashIndex[T, void](capacity, cmp),
		items:  make([]T, 0, capacity),
		logger: log.WithField("strategy", ArrayBacked.String()),
	}
}

func (s *arraySet[T]) Add(item T) bool {
	// index first, so items never holds an element the index does not know
	if !s.index.put(item, empty) {
		return false
	}
	s.items = append(s.items, item)
	return true
}

func (s *arraySet[T]) Remove(item T) bool {
	if _, ok := s.index.delete(item); !ok {
		return false
	}
	for i, v := range s.items {
		if s.index.equal(v, item) {
			s.items = slices.Delete(s.items, i, i+1)
			return true
		}
	}
	panic(inconsistent(s.logger, "remove", s.index.len(), len(s.items)))
}

func (s *arraySet[T]) Contains(item T) bool {
	return s.index.contains(item)
}

func (s *arraySet[T]) Size() int {
	return len(s.items)
}

func (s *arraySet[T]) Clear() {
	s.index.clear()
	clear(s.items)
	s.items = s.items[:0]
}

func (s *arraySet[T]) At(index int) (T, error) {
	if err := checkIndex(index, len(s.items)); err != nil {
		var zero T
		return zero, err
	}
	return s.items[index], nil
}

func (s *arraySet[T]) CopyTo(dst []T, offset int) error {
	if err := checkCopy(dst, offset, len(s.items)); err != nil {
		return err
	}
	copy(dst[offset:], s.items)
	return nil
}

func (s *arraySet[T]) ToSlice() []T {
	slice := make([]T, len(s.items))
	copy(slice, s.items)
	return slice
}

func (s *arraySet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}
