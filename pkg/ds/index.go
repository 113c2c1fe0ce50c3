package ds

// hashIndex maps set elements to a per-strategy value. With a nil Comparer it
// is a plain Go map keyed by the element; otherwise elements are bucketed by
// Comparer.Hash and told apart with Comparer.Equal.
type hashIndex[T comparable, V any] struct {
	cmp     Comparer[T]
	data    map[T]V
	buckets map[uint64][]indexEntry[T, V]
	size    int
}

type indexEntry[T comparable, V any] struct {
	key   T
	value V
}

func newHashIndex[T comparable, V any](capacity int, cmp Comparer[T]) *hashIndex[T, V] {
	idx := &hashIndex[T, V]{cmp: cmp}
	if cmp == nil {
		idx.data = make(map[T]V, capacity)
	} else {
		idx.buckets = make(map[uint64][]indexEntry[T, V], capacity)
	}
	return idx
}

func (i *hashIndex[T, V]) equal(a, b T) bool {
	if i.cmp == nil {
		return a == b
	}
	return i.cmp.Equal(a, b)
}

// put stores value under key and reports true, unless an equal key is
// already present.
func (i *hashIndex[T, V]) put(key T, value V) bool {
	if i.cmp == nil {
		if _, exists := i.data[key]; exists {
			return false
		}
		i.data[key] = value
		i.size++
		return true
	}
	h := i.cmp.Hash(key)
	bucket := i.buckets[h]
	for _, e := range bucket {
		if i.cmp.Equal(e.key, key) {
			return false
		}
	}
	i.buckets[h] = append(bucket, indexEntry[T, V]{key: key, value: value})
	i.size++
	return true
}

func (i *hashIndex[T, V]) get(key T) (V, bool) {
	if i.cmp == nil {
		v, exists := i.data[key]
		return v, exists
	}
	for _, e := range i.buckets[i.cmp.Hash(key)] {
		if i.cmp.Equal(e.key, key) {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

func (i *hashIndex[T, V]) contains(key T) bool {
	_, exists := i.get(key)
	return exists
}

// delete removes key and returns the value it was stored with.
func (i *hashIndex[T, V]) delete(key T) (V, bool) {
	var zero V
	if i.cmp == nil {
		v, exists := i.data[key]
		if !exists {
			return zero, false
		}
		delete(i.data, key)
		i.size--
		return v, true
	}
	h := i.cmp.Hash(key)
	bucket := i.buckets[h]
	for j, e := range bucket {
		if !i.cmp.Equal(e.key, key) {
			continue
		}
		last := len(bucket) - 1
		bucket[j] = bucket[last]
		bucket[last] = indexEntry[T, V]{}
		if last == 0 {
			delete(i.buckets, h)
		} else {
			i.buckets[h] = bucket[:last]
		}
		i.size--
		return e.value, true
	}
	return zero, false
}

func (i *hashIndex[T, V]) len() int {
	return i.size
}

func (i *hashIndex[T, V]) clear() {
	clear(i.data)
	clear(i.buckets)
	i.size = 0
}
