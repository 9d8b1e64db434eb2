package algo

import "gopkg.in/typ.v4"

// IsSorted returns true if the slice is in ascending order. Equal neighbors
// are allowed.
func IsSorted[T typ.Ordered](values []T) bool {
	return IsSortedFunc(values, typ.Compare[T])
}

// IsSortedFunc is IsSorted with an explicit comparator.
func IsSortedFunc[T any](values []T, compare func(a, b T) int) bool {
	for i := 1; i < len(values); i++ {
		if compare(values[i-1], values[i]) > 0 {
			return false
		}
	}
	return true
}

// InsertionSort sorts the slice in place in ascending order. It is stable and
// runs in O(n) on nearly sorted input, which makes it the right choice for
// small or mostly ordered slices.
func InsertionSort[T typ.Ordered](values []T) {
	InsertionSortFunc(values, typ.Compare[T])
}

// InsertionSortFunc is InsertionSort with an explicit comparator.
func InsertionSortFunc[T any](values []T, compare func(a, b T) int) {
	for i := 1; i < len(values); i++ {
		v := values[i]
		j := i - 1
		for j >= 0 && compare(values[j], v) > 0 {
			values[j+1] = values[j]
			j--
		}
		values[j+1] = v
	}
}
