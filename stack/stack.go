// Package stack provides a LIFO adapter over a vector.
package stack

import (
	"errors"

	"github.com/structkit/collections/vector"
)

var ErrorEmptyCollection = errors.New("stack is empty")

// Stack is a last-in-first-out adapter backed by a vector.
// NOTE: Not thread-safe.
type Stack[T any] struct {
	container *vector.Vector[T]
}

// New creates new empty Stack instance.
func New[T any]() *Stack[T] {
	return &Stack[T]{container: vector.New[T]()}
}

// Of creates new Stack instance with the given values pushed in order, so the
// last value ends up on top.
func Of[T any](values ...T) *Stack[T] {
	return &Stack[T]{container: vector.Of(values...)}
}

// Size returns the number of stacked elements.
func (s *Stack[T]) Size() int {
	return s.container.Size()
}

// Empty returns true if the stack holds no elements.
func (s *Stack[T]) Empty() bool {
	return s.container.Empty()
}

// Push places value on top of the stack.
func (s *Stack[T]) Push(value T) {
	s.container.PushBack(value)
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (value T, err error) {
	value, err = s.container.PopBack()
	if err != nil {
		err = ErrorEmptyCollection
	}
	return
}

// Top returns the top element without removing it.
func (s *Stack[T]) Top() (value T, err error) {
	value, err = s.container.Back()
	if err != nil {
		err = ErrorEmptyCollection
	}
	return
}

// Clear removes all elements.
func (s *Stack[T]) Clear() {
	s.container.Clear()
}

// Clone returns a deep copy of the stack.
func (s *Stack[T]) Clone() *Stack[T] {
	return &Stack[T]{container: s.container.Clone()}
}
