package ordering_test

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"

	"spreader-detector/core/ordering"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	key int
	seq int
}

func byKey(a, b pair) int {
	return cmp.Compare(a.key, b.key)
}

func TestSort_EdgeLengths(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		var items []int
		ordering.Sort(items, cmp.Compare[int])
		assert.Empty(t, items)
	})

	t.Run("Single", func(t *testing.T) {
		items := []int{42}
		ordering.Sort(items, cmp.Compare[int])
		assert.Equal(t, []int{42}, items)
	})

	t.Run("Two", func(t *testing.T) {
		items := []int{2, 1}
		ordering.Sort(items, cmp.Compare[int])
		assert.Equal(t, []int{1, 2}, items)
	})

	t.Run("Odd", func(t *testing.T) {
		items := []int{5, 3, 9, 1, 7}
		ordering.Sort(items, cmp.Compare[int])
		assert.Equal(t, []int{1, 3, 5, 7, 9}, items)
	})
}

func TestSort_PermutationAndOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, n := range []int{3, 10, 64, 257, 1000} {
		items := make([]int, n)
		for i := range items {
			items[i] = rng.Intn(50)
		}
		want := slices.Clone(items)
		slices.Sort(want)

		ordering.Sort(items, cmp.Compare[int])

		require.Len(t, items, n)
		assert.Equal(t, want, items)
		assert.True(t, ordering.IsSorted(items, cmp.Compare[int]))
	}
}

func TestSort_Stable(t *testing.T) {
	items := []pair{{2, 0}, {1, 1}, {2, 2}, {1, 3}, {2, 4}, {0, 5}}

	ordering.Sort(items, byKey)

	assert.Equal(t, []pair{{0, 5}, {1, 1}, {1, 3}, {2, 0}, {2, 2}, {2, 4}}, items)
}

func TestSort_Idempotent(t *testing.T) {
	items := []pair{{3, 0}, {1, 1}, {3, 2}, {2, 3}}
	ordering.Sort(items, byKey)
	once := slices.Clone(items)

	ordering.Sort(items, byKey)

	assert.Equal(t, once, items)
}

func TestSort_Descending(t *testing.T) {
	items := []int{1, 4, 2, 8, 5}
	ordering.Sort(items, func(a, b int) int { return cmp.Compare(b, a) })
	assert.Equal(t, []int{8, 5, 4, 2, 1}, items)
}

func TestIsSorted(t *testing.T) {
	assert.True(t, ordering.IsSorted([]int{}, cmp.Compare[int]))
	assert.True(t, ordering.IsSorted([]int{1, 1, 2}, cmp.Compare[int]))
	assert.False(t, ordering.IsSorted([]int{2, 1}, cmp.Compare[int]))
}
