// Package lookup provides binary search over sequences already sorted by a
// key. A missing key is reported explicitly rather than assumed away.
package lookup
