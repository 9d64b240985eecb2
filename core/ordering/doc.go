// Package ordering provides a generic merge sort driven by a pluggable
// three-way comparator.
//
// The sort allocates exactly one scratch buffer per top-level call, sized to
// the whole sequence, and every merge level reuses it. Equal elements keep
// their relative order, so the output order for ties is decided by the
// comparator alone.
//
// # Usage
//
//	ordering.Sort(people, func(a, b Person) int {
//	    return cmp.Compare(a.ID, b.ID)
//	})
package ordering
