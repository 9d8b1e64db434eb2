// Package pqueue provides a comparator-ordered binary-heap priority queue.
package pqueue

import (
	"errors"

	"gopkg.in/typ.v4"
)

var ErrorEmptyCollection = errors.New("priority queue is empty")

// Queue is a binary max-heap under its comparator: Top returns the element
// that compares greatest. Use a negated comparator for min-heap behavior.
// NOTE: Not thread-safe.
type Queue[T any] struct {
	compare func(a, b T) int
	items   []T
}

// New creates new empty Queue instance using a comparator function that is
// expected to return 0 if a == b, -1 if a < b, and +1 if a > b.
func New[T any](compare func(a, b T) int) *Queue[T] {
	return &Queue[T]{compare: compare}
}

// NewOrdered creates a new Queue using a default comparator function
// for any ordered type (ints, uints, floats, strings).
func NewOrdered[T typ.Ordered]() *Queue[T] {
	return New(typ.Compare[T])
}

// Of creates new Queue instance holding the given values, heapified in O(n).
func Of[T any](compare func(a, b T) int, values ...T) *Queue[T] {
	q := &Queue[T]{
		compare: compare,
		items:   append(make([]T, 0, len(values)), values...),
	}
	for i := len(q.items)/2 - 1; i >= 0; i-- {
		q.fixDown(i)
	}
	return q
}

// Size returns the number of queued elements.
func (q *Queue[T]) Size() int {
	return len(q.items)
}

// Empty returns true if the queue holds no elements.
func (q *Queue[T]) Empty() bool {
	return len(q.items) == 0
}

// Push places value into the queue.
func (q *Queue[T]) Push(value T) {
	q.items = append(q.items, value)
	q.fixUp(len(q.items) - 1)
}

// Top returns the greatest element without removing it.
func (q *Queue[T]) Top() (value T, err error) {
	if len(q.items) == 0 {
		err = ErrorEmptyCollection
		return
	}
	return q.items[0], nil
}

// Pop removes and returns the greatest element.
func (q *Queue[T]) Pop() (value T, err error) {
	if len(q.items) == 0 {
		err = ErrorEmptyCollection
		return
	}
	value = q.items[0]
	last := len(q.items) - 1
	q.items[0] = q.items[last]
	var zero T
	q.items[last] = zero
	q.items = q.items[:last]
	if last > 0 {
		q.fixDown(0)
	}
	return
}

// Clear removes all elements keeping the allocated storage.
func (q *Queue[T]) Clear() {
	var zero T
	for i := range q.items {
		q.items[i] = zero
	}
	q.items = q.items[:0]
}

// fixUp sifts the element at index i towards the root while it compares
// greater than its parent.
func (q *Queue[T]) fixUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if q.compare(q.items[parent], q.items[i]) >= 0 {
			return
		}
		q.items[parent], q.items[i] = q.items[i], q.items[parent]
		i = parent
	}
}

// fixDown sifts the element at index i towards the leaves while a child
// compares greater.
func (q *Queue[T]) fixDown(i int) {
	size := len(q.items)
	for {
		child := 2*i + 1
		if child >= size {
			return
		}
		if right := child + 1; right < size && q.compare(q.items[right], q.items[child]) > 0 {
			child = right
		}
		if q.compare(q.items[i], q.items[child]) >= 0 {
			return
		}
		q.items[i], q.items[child] = q.items[child], q.items[i]
		i = child
	}
}
