package ds

import (
	"hash/maphash"
	"strings"
)

// Comparer defines element equality for a Set. Equal elements must hash to
// the same value.
type Comparer[T any] interface {
	Equal(a, b T) bool
	Hash(v T) uint64
}

// ComparerFunc adapts a pair of functions to Comparer. Both must be set.
type ComparerFunc[T any] struct {
	EqualFunc func(a, b T) bool
	HashFunc  func(v T) uint64
}

func (c ComparerFunc[T]) Equal(a, b T) bool {
	return c.EqualFunc(a, b)
}

func (c ComparerFunc[T]) Hash(v T) uint64 {
	return c.HashFunc(v)
}

type foldString struct {
	seed maphash.Seed
}

// FoldString returns a case-insensitive string Comparer: two strings are
// equal when their strings.ToLower forms are.
func FoldString() Comparer[string] {
	return foldString{seed: maphash.MakeSeed()}
}

func (f foldString) Equal(a, b string) bool {
	return a == b || strings.ToLower(a) == strings.ToLower(b)
}

func (f foldString) Hash(v string) uint64 {
	return maphash.String(f.seed, strings.ToLower(v))
}
