package ds_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/eric2788/ordset/pkg/ds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoldString(t *testing.T) {
	for _, strategy := range []ds.Strategy{ds.ArrayBacked, ds.Linked} {
		t.Run(strategy.String(), func(t *testing.T) {
			s := ds.NewSet(
				ds.WithStrategy[string](strategy),
				ds.WithComparer(ds.FoldString()),
			)
			assert.True(t, s.Add("Go"))
			assert.False(t, s.Add("GO"))
			assert.False(t, s.Add("go"))
			assert.True(t, s.Add("Rust"))
			assert.True(t, s.Contains("rust"))
			assert.Equal(t, 2, s.Size())

			// the first spelling added is the one kept
			assert.Equal(t, []string{"Go", "Rust"}, s.ToSlice())

			assert.True(t, s.Remove("gO"))
			assert.False(t, s.Contains("Go"))
			assert.Equal(t, []string{"Rust"}, slices.Collect(s.All()))
			require.NoError(t, ds.CheckInvariant(s))
		})
	}
}

// every element lands in the same hash bucket
var collidingComparer = ds.ComparerFunc[string]{
	EqualFunc: func(a, b string) bool { return a == b },
	HashFunc:  func(string) uint64 { return 0 },
}

func TestComparer_HashCollisions(t *testing.T) {
	for _, strategy := range []ds.Strategy{ds.ArrayBacked, ds.Linked} {
		t.Run(strategy.String(), func(t *testing.T) {
			s := ds.NewSet(
				ds.WithStrategy[string](strategy),
				ds.WithComparer[string](collidingComparer),
			)
			words := strings.Fields("alpha beta gamma delta epsilon")
			assert.Equal(t, len(words), ds.AddAll(s, words...))
			assert.Equal(t, 0, ds.AddAll(s, words...))

			assert.True(t, s.Remove("gamma"))
			assert.True(t, s.Remove("alpha"))
			assert.False(t, s.Remove("alpha"))
			assert.True(t, s.Contains("epsilon"))
			assert.Equal(t, []string{"beta", "delta", "epsilon"}, s.ToSlice())

			s.Clear()
			assert.True(t, s.Add("alpha"))
			require.NoError(t, ds.CheckInvariant(s))
		})
	}
}

type point struct{ X, Y int }

func TestComparer_StructKeysByNaturalEquality(t *testing.T) {
	s := ds.NewLinkedSet[point](4, nil)
	assert.True(t, s.Add(point{1, 2}))
	assert.False(t, s.Add(point{1, 2}))
	assert.True(t, s.Add(point{2, 1}))

	p, err := s.At(1)
	require.NoError(t, err)
	assert.Equal(t, point{2, 1}, p)
}
