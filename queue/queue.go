// Package queue provides a FIFO adapter over a doubly linked list.
package queue

import (
	"errors"

	"github.com/structkit/collections/list"
)

var ErrorEmptyCollection = errors.New("queue is empty")

// Queue is a first-in-first-out adapter backed by a linked list, so both
// ends are O(1) without element shifting.
// NOTE: Not thread-safe.
type Queue[T any] struct {
	container *list.List[T]
}

// New creates new empty Queue instance.
func New[T any]() *Queue[T] {
	return &Queue[T]{container: list.New[T]()}
}

// Of creates new Queue instance with the given values pushed in order, so the
// first value ends up at the front.
func Of[T any](values ...T) *Queue[T] {
	return &Queue[T]{container: list.Of(values...)}
}

// Size returns the number of queued elements.
func (q *Queue[T]) Size() int {
	return q.container.Size()
}

// Empty returns true if the queue holds no elements.
func (q *Queue[T]) Empty() bool {
	return q.container.Empty()
}

// Push places value at the back of the queue.
func (q *Queue[T]) Push(value T) {
	q.container.PushBack(value)
}

// Pop removes and returns the front element.
func (q *Queue[T]) Pop() (value T, err error) {
	value, err = q.container.PopFront()
	if err != nil {
		err = ErrorEmptyCollection
	}
	return
}

// Front returns the front element without removing it.
func (q *Queue[T]) Front() (value T, err error) {
	e := q.container.Front()
	if e == nil {
		err = ErrorEmptyCollection
		return
	}
	return e.Value, nil
}

// Back returns the back element without removing it.
func (q *Queue[T]) Back() (value T, err error) {
	e := q.container.Back()
	if e == nil {
		err = ErrorEmptyCollection
		return
	}
	return e.Value, nil
}

// Clear removes all elements.
func (q *Queue[T]) Clear() {
	q.container.Clear()
}

// Clone returns a deep copy of the queue.
func (q *Queue[T]) Clone() *Queue[T] {
	return &Queue[T]{container: q.container.Clone()}
}
