package lookup

import "cmp"

// Search finds target in items, which must be sorted ascending by key.
// It returns the index of the match and true, or -1 and false.
func Search[T any, K cmp.Ordered](items []T, target K, key func(T) K) (int, bool) {
	return SearchRange(items, target, 0, len(items)-1, key)
}

// SearchRange is Search restricted to the inclusive bounds [lo, hi].
func SearchRange[T any, K cmp.Ordered](items []T, target K, lo, hi int, key func(T) K) (int, bool) {
	if lo < 0 {
		lo = 0
	}
	if hi > len(items)-1 {
		hi = len(items) - 1
	}
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch k := key(items[mid]); {
		case k == target:
			return mid, true
		case k > target:
			hi = mid - 1
		default:
			lo = mid + 1
		}
	}
	return -1, false
}
