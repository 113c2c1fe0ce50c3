// Package ds provides insertion-ordered sets of unique elements.
//
// A Set behaves like a hash set (no duplicates, constant time Add and Contains)
// while keeping the order in which elements were first added, so it can also be
// indexed and enumerated like a slice. Two layouts are available:
//
//   - array-backed (the default): O(1) At and cache friendly enumeration,
//     O(N) Remove.
//   - linked: O(1) Remove, At walks from whichever end is closer.
//
// Neither layout is safe for concurrent use. Wrap one in a SyncedSet to share it
// between goroutines.
//
//	s := ds.NewSet[string](ds.WithStrategy[string](ds.Linked))
//	s.Add("a")
//	s.Add("b")
//	v, _ := s.At(1) // "b"
package ds

import (
	"iter"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("pkg", "ds")

type void struct{}

var empty void

// Sequence is the read-only, indexed view of a Set.
type Sequence[T any] interface {
	Size() int
	// At returns the element at the 0-based position index, or an error
	// matching ErrOutOfRange.
	At(index int) (T, error)
	// CopyTo writes every element, in order, into dst starting at offset.
	CopyTo(dst []T, offset int) error
	ToSlice() []T
	// All returns an ordered sequence of the elements. Every range over it
	// starts again from the first element.
	All() iter.Seq[T]
}

// Collection is the mutable, unordered view of a Set.
type Collection[T any] interface {
	// Add reports whether item was absent and has been appended.
	Add(item T) bool
	// Remove reports whether item was present and has been removed.
	Remove(item T) bool
	Contains(item T) bool
	Size() int
	Clear()
	All() iter.Seq[T]
}

// Set is an insertion-ordered collection of unique elements.
type Set[T comparable] interface {
	Sequence[T]
	Collection[T]
}

// AddAll adds every item to s and returns how many were not already present.
func AddAll[T comparable](s Set[T], items ...T) int {
	added := 0
	for _, item := range items {
		if s.Add(item) {
			added++
		}
	}
	return added
}

// RemoveAll removes every item from s and returns how many were present.
func RemoveAll[T comparable](s Set[T], items ...T) int {
	removed := 0
	for _, item := range items {
		if s.Remove(item) {
			removed++
		}
	}
	return removed
}

func checkIndex(index, size int) error {
	if index < 0 || index >= size {
		return errors.Wrapf(ErrOutOfRange, "index %d, size %d", index, size)
	}
	return nil
}

func checkCopy[T any](dst []T, offset, size int) error {
	if dst == nil {
		return errors.WithMessage(ErrInvalidArgument, "nil destination")
	}
	if offset < 0 || offset > len(dst) {
		return errors.WithMessagef(ErrInvalidArgument, "offset %d outside destination of length %d", offset, len(dst))
	}
	if len(dst)-offset < size {
		return errors.Wrapf(ErrInsufficientCapacity, "need %d slots from offset %d, have %d", size, offset, len(dst)-offset)
	}
	return nil
}
