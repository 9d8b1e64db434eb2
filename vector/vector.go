package vector

// Vector is a growable array with amortized O(1) appends.
//
// Storage grows by doubling so that a sequence of PushBack calls performs a
// logarithmic number of reallocations.
// NOTE: Not thread-safe.
type Vector[T any] struct {
	items []T
}

// New creates new empty Vector instance.
func New[T any]() *Vector[T] {
	return new(Vector[T])
}

// WithCapacity creates new empty Vector instance with storage preallocated
// for capacity elements.
func WithCapacity[T any](capacity int) *Vector[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Vector[T]{items: make([]T, 0, capacity)}
}

// Of creates new Vector instance holding the given values in order.
func Of[T any](values ...T) *Vector[T] {
	v := WithCapacity[T](len(values))
	v.items = append(v.items, values...)
	return v
}

// Size returns the number of stored elements.
func (v *Vector[T]) Size() int {
	return len(v.items)
}

// Empty returns true if the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return len(v.items) == 0
}

// Capacity returns the number of elements the vector can hold without
// reallocating.
func (v *Vector[T]) Capacity() int {
	return cap(v.items)
}

// Reserve ensures storage for at least capacity elements.
func (v *Vector[T]) Reserve(capacity int) {
	if capacity <= cap(v.items) {
		return
	}
	grown := make([]T, len(v.items), capacity)
	copy(grown, v.items)
	v.items = grown
}

// PushBack appends value at the end of the vector.
func (v *Vector[T]) PushBack(value T) {
	if len(v.items) == cap(v.items) {
		v.grow()
	}
	v.items = append(v.items, value)
}

// PopBack removes and returns the last element.
func (v *Vector[T]) PopBack() (value T, err error) {
	if len(v.items) == 0 {
		err = ErrorEmptyCollection
		return
	}
	last := len(v.items) - 1
	value = v.items[last]
	// Clear the vacated slot to release references held by the element.
	var zero T
	v.items[last] = zero
	v.items = v.items[:last]
	return
}

// At returns the element at index i.
func (v *Vector[T]) At(i int) (value T, err error) {
	if i < 0 || i >= len(v.items) {
		err = ErrorIndexOutOfRange
		return
	}
	return v.items[i], nil
}

// Set replaces the element at index i with value.
func (v *Vector[T]) Set(i int, value T) error {
	if i < 0 || i >= len(v.items) {
		return ErrorIndexOutOfRange
	}
	v.items[i] = value
	return nil
}

// Front returns the first element.
func (v *Vector[T]) Front() (value T, err error) {
	if len(v.items) == 0 {
		err = ErrorEmptyCollection
		return
	}
	return v.items[0], nil
}

// Back returns the last element.
func (v *Vector[T]) Back() (value T, err error) {
	if len(v.items) == 0 {
		err = ErrorEmptyCollection
		return
	}
	return v.items[len(v.items)-1], nil
}

// Insert places value at index i shifting the tail right.
// Index may equal Size(), which appends.
func (v *Vector[T]) Insert(i int, value T) error {
	if i < 0 || i > len(v.items) {
		return ErrorIndexOutOfRange
	}
	if len(v.items) == cap(v.items) {
		v.grow()
	}
	var zero T
	v.items = append(v.items, zero)
	copy(v.items[i+1:], v.items[i:])
	v.items[i] = value
	return nil
}

// RemoveAt removes and returns the element at index i shifting the tail left.
func (v *Vector[T]) RemoveAt(i int) (value T, err error) {
	if i < 0 || i >= len(v.items) {
		err = ErrorIndexOutOfRange
		return
	}
	value = v.items[i]
	copy(v.items[i:], v.items[i+1:])
	last := len(v.items) - 1
	var zero T
	v.items[last] = zero
	v.items = v.items[:last]
	return
}

// Clear removes all elements keeping the allocated storage.
func (v *Vector[T]) Clear() {
	var zero T
	for i := range v.items {
		v.items[i] = zero
	}
	v.items = v.items[:0]
}

// Clone returns a deep copy of the vector.
func (v *Vector[T]) Clone() *Vector[T] {
	cloned := WithCapacity[T](len(v.items))
	cloned.items = append(cloned.items, v.items...)
	return cloned
}

// Values returns a copy of the stored elements in order.
func (v *Vector[T]) Values() []T {
	values := make([]T, len(v.items))
	copy(values, v.items)
	return values
}

// Iterate calls f for each element in order until f returns true.
func (v *Vector[T]) Iterate(f func(value T) bool) {
	for _, value := range v.items {
		if f(value) {
			return
		}
	}
}

// EqualFunc reports whether both vectors hold equal elements in the same
// order under the given equality predicate.
func (v *Vector[T]) EqualFunc(other *Vector[T], equal func(a, b T) bool) bool {
	if v == other {
		return true
	}
	if len(v.items) != len(other.items) {
		return false
	}
	for i := range v.items {
		if !equal(v.items[i], other.items[i]) {
			return false
		}
	}
	return true
}

// grow doubles the underlying storage.
func (v *Vector[T]) grow() {
	newCap := cap(v.items) * 2
	if newCap == 0 {
		newCap = initialCapacity
	}
	grown := make([]T, len(v.items), newCap)
	copy(grown, v.items)
	v.items = grown
}

// initialCapacity specifies the storage size allocated by the first append
// into an empty vector.
const initialCapacity = 8
