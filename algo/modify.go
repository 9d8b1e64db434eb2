package algo

import "gopkg.in/typ.v4"

// Remove filters out every element equal to target in place and returns the
// shortened slice. Vacated positions of the original slice are zeroed so that
// removed pointers do not linger.
func Remove[T comparable](values []T, target T) []T {
	return RemoveIf(values, func(v T) bool { return v == target })
}

// RemoveIf is Remove with a predicate instead of a value.
func RemoveIf[T any](values []T, pred func(value T) bool) []T {
	kept := values[:0]
	for _, v := range values {
		if !pred(v) {
			kept = append(kept, v)
		}
	}
	var zero T
	for i := len(kept); i < len(values); i++ {
		values[i] = zero
	}
	return kept
}

// Unique drops consecutive duplicate elements in place and returns the
// shortened slice. On sorted input the result holds every value once.
func Unique[T comparable](values []T) []T {
	if len(values) == 0 {
		return values
	}
	kept := values[:1]
	for _, v := range values[1:] {
		if v != kept[len(kept)-1] {
			kept = append(kept, v)
		}
	}
	var zero T
	for i := len(kept); i < len(values); i++ {
		values[i] = zero
	}
	return kept
}

// Reverse reverses the slice in place.
func Reverse[T any](values []T) {
	for i, j := 0, len(values)-1; i < j; i, j = i+1, j-1 {
		values[i], values[j] = values[j], values[i]
	}
}

// Union merges two sorted slices into a new sorted slice holding every value
// present in either, once. Both inputs must be sorted and duplicate-free.
func Union[T typ.Ordered](a, b []T) []T {
	result := make([]T, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch cmp := typ.Compare(a[i], b[j]); {
		case cmp < 0:
			result = append(result, a[i])
			i++
		case cmp > 0:
			result = append(result, b[j])
			j++
		default:
			result = append(result, a[i])
			i++
			j++
		}
	}
	result = append(result, a[i:]...)
	result = append(result, b[j:]...)
	return result
}

// Intersection returns a new sorted slice holding every value present in both
// sorted, duplicate-free inputs.
func Intersection[T typ.Ordered](a, b []T) []T {
	var result []T
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch cmp := typ.Compare(a[i], b[j]); {
		case cmp < 0:
			i++
		case cmp > 0:
			j++
		default:
			result = append(result, a[i])
			i++
			j++
		}
	}
	return result
}

// Difference returns a new sorted slice holding every value present in the
// first sorted, duplicate-free input but not the second.
func Difference[T typ.Ordered](a, b []T) []T {
	var result []T
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch cmp := typ.Compare(a[i], b[j]); {
		case cmp < 0:
			result = append(result, a[i])
			i++
		case cmp > 0:
			j++
		default:
			i++
			j++
		}
	}
	result = append(result, a[i:]...)
	return result
}
