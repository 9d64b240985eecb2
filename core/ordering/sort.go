package ordering

// Comparator reports the order of a and b: negative when a sorts before b,
// zero when they are equal and positive when a sorts after b.
type Comparator[T any] func(a, b T) int

// Sort orders items in place according to cmp.
func Sort[T any](items []T, cmp Comparator[T]) {
	if len(items) < 2 {
		return
	}
	scratch := make([]T, len(items))
	mergeSort(items, scratch, cmp)
}

// mergeSort sorts items using scratch, which must be at least as long as items.
func mergeSort[T any](items, scratch []T, cmp Comparator[T]) {
	if len(items) < 2 {
		return
	}
	mid := len(items) / 2
	mergeSort(items[:mid], scratch[:mid], cmp)
	mergeSort(items[mid:], scratch[mid:], cmp)

	copy(scratch, items)
	merge(items, scratch[:mid], scratch[mid:len(items)], cmp)
}

// merge writes the ordered union of left and right into dst.
func merge[T any](dst, left, right []T, cmp Comparator[T]) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		// Left wins ties to keep the sort stable.
		if cmp(left[i], right[j]) <= 0 {
			dst[k] = left[i]
			i++
		} else {
			dst[k] = right[j]
			j++
		}
		k++
	}
	k += copy(dst[k:], left[i:])
	copy(dst[k:], right[j:])
}

// IsSorted reports whether items are in non-decreasing order under cmp.
func IsSorted[T any](items []T, cmp Comparator[T]) bool {
	for i := 1; i < len(items); i++ {
		if cmp(items[i-1], items[i]) > 0 {
			return false
		}
	}
	return true
}
