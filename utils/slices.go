package utils

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// GetKeys returns the keys of the input map.
// Order is not guaranteed.
func GetKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {

	keys = make([]K, len(m))

	var i int
	for key := range m {
		keys[i] = key
		i++
	}

	return
}

// GetSortedKeys returns the sorted keys of a map.
func GetSortedKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {
	keys = GetKeys(m)
	SortSlice(keys)
	return
}

// SortSlice sorts a slice in place.
func SortSlice[T constraints.Ordered](s []T) {
	sort.Slice(s, func(i, j int) bool {
		return s[i] < s[j]
	})
}

// IsStrictlyAscending returns true if s[i] < s[i+1] for every i.
// A slice containing a NaN is never strictly ascending.
func IsStrictlyAscending[T constraints.Ordered](s []T) bool {
	for i := 1; i < len(s); i++ {
		if !(s[i-1] < s[i]) {
			return false
		}
	}
	return true
}

// MaxAbs returns the element of largest magnitude of s, as an
// absolute value, together with its index. It returns (0, -1)
// on an empty slice and propagates NaN.
func MaxAbs[T constraints.Float](s []T) (max T, idx int) {

	idx = -1

	for i, v := range s {

		if v < 0 {
			v = -v
		}

		if v != v {
			return v, i
		}

		if idx == -1 || v > max {
			max, idx = v, i
		}
	}

	return
}

// Alternating returns a slice of n values alternating
// between +1 and -1, starting with +1.
func Alternating[T constraints.Signed | constraints.Float](n int) (s []T) {
	s = make([]T, n)
	for i := range s {
		if i&1 == 0 {
			s[i] = 1
		} else {
			s[i] = -1
		}
	}
	return
}

// Map returns a new slice holding f(s[i]) for every i.
func Map[T, U any](s []T, f func(T) U) (r []U) {
	r = make([]U, len(s))
	for i := range s {
		r[i] = f(s[i])
	}
	return
}
