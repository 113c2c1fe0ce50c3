package ds

// CheckInvariant verifies that the index and the ordered storage of s hold
// exactly the same elements.
func CheckInvariant[T comparable](s Set[T]) error {
	switch v := s.(type) {
	case *SyncedSet[T]:
		v.lock.RLock()
		defer v.lock.RUnlock()
		return CheckInvariant(v.set)
	case *arraySet[T]:
		if v.index.len() != len(v.items) {
			return &InconsistencyError{Op: "check", IndexLen: v.index.len(), OrderedLen: len(v.items)}
		}
		for _, item := range v.items {
			if !v.index.contains(item) {
				return &InconsistencyError{Op: "check", IndexLen: v.index.len(), OrderedLen: len(v.items)}
			}
		}
	case *linkedSet[T]:
		walked := 0
		for n := v.root.next; n != &v.root; n = n.next {
			if n.next.prev != n {
				return &InconsistencyError{Op: "check links", IndexLen: v.index.len(), OrderedLen: walked}
			}
			if handle, ok := v.index.get(n.value); !ok || handle != n {
				return &InconsistencyError{Op: "check handles", IndexLen: v.index.len(), OrderedLen: walked}
			}
			walked++
		}
		if walked != v.size || v.index.len() != v.size {
			return &InconsistencyError{Op: "check", IndexLen: v.index.len(), OrderedLen: walked}
		}
	}
	return nil
}

// Corrupt records item in the index of s without adding it to the ordered
// storage.
func Corrupt[T comparable](s Set[T], item T) {
	switch v := s.(type) {
	case *SyncedSet[T]:
		Corrupt(v.set, item)
	case *arraySet[T]:
		v.index.put(item, empty)
	case *linkedSet[T]:
		v.index.put(item, &node[T]{value: item})
	}
}
