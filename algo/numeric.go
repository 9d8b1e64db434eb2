package algo

// Number covers the built-in numeric types usable with the folding
// algorithms.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Accumulate returns init plus the sum of all elements.
func Accumulate[T Number](values []T, init T) T {
	return AccumulateFunc(values, init, func(acc, v T) T { return acc + v })
}

// AccumulateFunc folds the slice left to right, starting from init and
// combining with op.
func AccumulateFunc[T, A any](values []T, init A, op func(acc A, value T) A) A {
	acc := init
	for _, v := range values {
		acc = op(acc, v)
	}
	return acc
}

// InnerProduct returns init plus the sum of pairwise products. Both slices
// must have the same length.
func InnerProduct[T Number](a, b []T, init T) T {
	result := init
	for i := range a {
		result += a[i] * b[i]
	}
	return result
}

// Iota fills the slice with consecutively increasing values, starting from
// start.
func Iota[T Number](values []T, start T) {
	for i := range values {
		values[i] = start
		start++
	}
}
