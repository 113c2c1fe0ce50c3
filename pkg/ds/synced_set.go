package ds

import (
	"iter"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// SyncedSet guards a Set with a single reader/writer lock. Queries share the
// read lock, mutations take the write lock. The lock is not reentrant: do not
// call back into the same SyncedSet while one of its methods, Mutate included,
// is running.
//
// Insertion order between concurrent writers is whichever acquires the lock
// first.
type SyncedSet[T comparable] struct {
	set    Set[T]
	lock   sync.RWMutex
	closed atomic.Bool
	logger *logrus.Entry
}

// Synced wraps s. s must not be used directly afterwards.
func Synced[T comparable](s Set[T]) *SyncedSet[T] {
	if synced, ok := s.(*SyncedSet[T]); ok {
		return synced
	}
	return newSyncedSet(s, logger)
}

func newSyncedSet[T comparable](s Set[T], log *logrus.Entry) *SyncedSet[T] {
	return &SyncedSet[T]{set: s, logger: log.WithField("synced", true)}
}

func (s *SyncedSet[T]) ensureOpen(op string) {
	if s.closed.Load() {
		err := errors.Wrapf(ErrClosed, "%s after close", op)
		s.logger.Error(err)
		panic(err)
	}
}

func (s *SyncedSet[T]) Add(item T) bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.ensureOpen("add")
	return s.set.Add(item)
}

func (s *SyncedSet[T]) Remove(item T) bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.ensureOpen("remove")
	return s.set.Remove(item)
}

// AddOrRemove adds item when add is true and removes it otherwise, under one
// write lock. It reports whether the set changed.
func (s *SyncedSet[T]) AddOrRemove(item T, add bool) bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.ensureOpen("add or remove")
	if add {
		return s.set.Add(item)
	}
	return s.set.Remove(item)
}

// Mutate runs action against the wrapped set while holding the write lock, so
// a sequence of operations is atomic to every other caller. action must only
// use the set it is given.
func (s *SyncedSet[T]) Mutate(action func(set Set[T]) error) error {
	if action == nil {
		return errors.WithMessage(ErrInvalidArgument, "nil action")
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.ensureOpen("mutate")
	return action(s.set)
}

func (s *SyncedSet[T]) Contains(item T) bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	s.ensureOpen("contains")
	return s.set.Contains(item)
}

func (s *SyncedSet[T]) Size() int {
	s.lock.RLock()
	defer s.lock.RUnlock()
	s.ensureOpen("size")
	return s.set.Size()
}

func (s *SyncedSet[T]) Clear() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.ensureOpen("clear")
	s.set.Clear()
}

func (s *SyncedSet[T]) At(index int) (T, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	s.ensureOpen("at")
	return s.set.At(index)
}

func (s *SyncedSet[T]) CopyTo(dst []T, offset int) error {
	s.lock.RLock()
	defer s.lock.RUnlock()
	s.ensureOpen("copy")
	return s.set.CopyTo(dst, offset)
}

func (s *SyncedSet[T]) ToSlice() []T {
	s.lock.RLock()
	defer s.lock.RUnlock()
	s.ensureOpen("to slice")
	return s.set.ToSlice()
}

// All iterates over a snapshot taken when the range starts. The read lock is
// held only while copying, so writers are never blocked by a slow consumer,
// and mutations made after the copy are not observed.
func (s *SyncedSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.ToSlice() {
			if !yield(v) {
				return
			}
		}
	}
}

// Close releases the wrapped set. Using the SyncedSet afterwards panics with
// ErrClosed. Closing more than once is a no-op.
func (s *SyncedSet[T]) Close() error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	s.set.Clear()
	s.set = nil
	s.logger.Debug("synced set closed")
	return nil
}
