// Package algo provides generic slice algorithms: searching, counting,
// comparing, reordering and folding, independent of any container type.
package algo

import "gopkg.in/typ.v4"

// Find returns the index of the first element equal to target, or -1.
func Find[T comparable](values []T, target T) int {
	for i, v := range values {
		if v == target {
			return i
		}
	}
	return -1
}

// FindIf returns the index of the first element satisfying pred, or -1.
func FindIf[T any](values []T, pred func(value T) bool) int {
	for i, v := range values {
		if pred(v) {
			return i
		}
	}
	return -1
}

// Contains returns true if any element equals target.
func Contains[T comparable](values []T, target T) bool {
	return Find(values, target) >= 0
}

// Count returns the number of elements equal to target.
func Count[T comparable](values []T, target T) int {
	return CountIf(values, func(v T) bool { return v == target })
}

// CountIf returns the number of elements satisfying pred.
func CountIf[T any](values []T, pred func(value T) bool) int {
	count := 0
	for _, v := range values {
		if pred(v) {
			count++
		}
	}
	return count
}

// AdjacentFind returns the index of the first element that equals its
// successor, or -1.
func AdjacentFind[T comparable](values []T) int {
	for i := 1; i < len(values); i++ {
		if values[i-1] == values[i] {
			return i - 1
		}
	}
	return -1
}

// Equal returns true if both slices hold equal elements in the same order.
func Equal[T comparable](a, b []T) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc returns true if both slices hold elements comparing equal under
// the given function, in the same order.
func EqualFunc[T any](a, b []T, equal func(a, b T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Mismatch returns the first index at which the slices differ. When one slice
// is a prefix of the other, the shared length is returned; equal slices yield
// -1.
func Mismatch[T comparable](a, b []T) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return n
	}
	return -1
}

// Lexicographical compares the slices element by element, returning -1 if a
// orders before b, +1 if after, and 0 if they are equal. A strict prefix
// orders before the longer sequence.
func Lexicographical[T typ.Ordered](a, b []T) int {
	return LexicographicalFunc(a, b, typ.Compare[T])
}

// LexicographicalFunc is Lexicographical with an explicit comparator.
func LexicographicalFunc[T any](a, b []T, compare func(a, b T) int) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if cmp := compare(a[i], b[i]); cmp != 0 {
			return cmp
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// MinElement returns the index of the smallest element, or -1 for an empty
// slice. Ties resolve to the first occurrence.
func MinElement[T typ.Ordered](values []T) int {
	return MinElementFunc(values, typ.Compare[T])
}

// MinElementFunc is MinElement with an explicit comparator.
func MinElementFunc[T any](values []T, compare func(a, b T) int) int {
	if len(values) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(values); i++ {
		if compare(values[i], values[best]) < 0 {
			best = i
		}
	}
	return best
}

// MaxElement returns the index of the largest element, or -1 for an empty
// slice. Ties resolve to the first occurrence.
func MaxElement[T typ.Ordered](values []T) int {
	return MaxElementFunc(values, typ.Compare[T])
}

// MaxElementFunc is MaxElement with an explicit comparator.
func MaxElementFunc[T any](values []T, compare func(a, b T) int) int {
	if len(values) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(values); i++ {
		if compare(values[i], values[best]) > 0 {
			best = i
		}
	}
	return best
}

// MinMaxElement returns the indexes of the smallest and largest elements in
// one pass, or (-1, -1) for an empty slice.
func MinMaxElement[T typ.Ordered](values []T) (minIndex, maxIndex int) {
	return MinMaxElementFunc(values, typ.Compare[T])
}

// MinMaxElementFunc is MinMaxElement with an explicit comparator.
func MinMaxElementFunc[T any](values []T, compare func(a, b T) int) (minIndex, maxIndex int) {
	if len(values) == 0 {
		return -1, -1
	}
	minIndex, maxIndex = 0, 0
	for i := 1; i < len(values); i++ {
		if compare(values[i], values[minIndex]) < 0 {
			minIndex = i
		}
		if compare(values[i], values[maxIndex]) > 0 {
			maxIndex = i
		}
	}
	return minIndex, maxIndex
}
