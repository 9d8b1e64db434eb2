// Package forwardlist provides a singly linked list.
//
// The list spends one pointer per element, which makes it the bucket
// container of choice for separate-chaining hash tables.
package forwardlist

import (
	"errors"
)

var ErrorEmptyCollection = errors.New("forward list is empty")

// Element is a node of a singly linked list holding one value.
type Element[T any] struct {
	Value T

	next *Element[T]
}

// Next returns the next list element or nil when e is the last one.
func (e *Element[T]) Next() *Element[T] {
	return e.next
}

// List is a singly linked list with a sentinel head.
// NOTE: Not thread-safe.
type List[T any] struct {
	head Element[T] // sentinel placed before the first element
	size int
}

// New creates new empty List instance.
func New[T any]() *List[T] {
	return new(List[T])
}

// Of creates new List instance holding the given values in order.
func Of[T any](values ...T) *List[T] {
	l := New[T]()
	for i := len(values) - 1; i >= 0; i-- {
		l.PushFront(values[i])
	}
	return l
}

// Size returns the number of list elements.
func (l *List[T]) Size() int {
	return l.size
}

// Empty returns true if the list holds no elements.
func (l *List[T]) Empty() bool {
	return l.size == 0
}

// Front returns the first value.
func (l *List[T]) Front() (value T, err error) {
	if l.head.next == nil {
		err = ErrorEmptyCollection
		return
	}
	return l.head.next.Value, nil
}

// BeforeFront returns the sentinel element placed before the first one,
// usable as the mark for InsertAfter and RemoveAfter at the list head.
func (l *List[T]) BeforeFront() *Element[T] {
	return &l.head
}

// PushFront inserts value at the front and returns its element.
func (l *List[T]) PushFront(value T) *Element[T] {
	e := &Element[T]{Value: value, next: l.head.next}
	l.head.next = e
	l.size++
	return e
}

// PopFront removes and returns the first value.
func (l *List[T]) PopFront() (value T, err error) {
	if l.head.next == nil {
		err = ErrorEmptyCollection
		return
	}
	e := l.head.next
	l.head.next = e.next
	e.next = nil
	l.size--
	return e.Value, nil
}

// InsertAfter inserts value immediately after mark and returns its element.
func (l *List[T]) InsertAfter(mark *Element[T], value T) *Element[T] {
	e := &Element[T]{Value: value, next: mark.next}
	mark.next = e
	l.size++
	return e
}

// RemoveAfter removes and returns the value following mark.
func (l *List[T]) RemoveAfter(mark *Element[T]) (value T, err error) {
	if mark.next == nil {
		err = ErrorEmptyCollection
		return
	}
	e := mark.next
	mark.next = e.next
	e.next = nil
	l.size--
	return e.Value, nil
}

// Remove unlinks every element whose value matches under equal and returns
// the number of removed elements.
func (l *List[T]) Remove(value T, equal func(a, b T) bool) int {
	removed := 0
	for prev := &l.head; prev.next != nil; {
		if equal(prev.next.Value, value) {
			e := prev.next
			prev.next = e.next
			e.next = nil
			l.size--
			removed++
		} else {
			prev = prev.next
		}
	}
	return removed
}

// Find returns the first element whose value matches under equal, or nil.
func (l *List[T]) Find(value T, equal func(a, b T) bool) *Element[T] {
	for e := l.head.next; e != nil; e = e.next {
		if equal(e.Value, value) {
			return e
		}
	}
	return nil
}

// Reverse relinks the list so that elements appear in the opposite order.
func (l *List[T]) Reverse() {
	var reversed *Element[T]
	for e := l.head.next; e != nil; {
		next := e.next
		e.next = reversed
		reversed = e
		e = next
	}
	l.head.next = reversed
}

// Clear removes all elements.
func (l *List[T]) Clear() {
	l.head.next = nil
	l.size = 0
}

// Values returns the stored values in order.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.size)
	for e := l.head.next; e != nil; e = e.next {
		values = append(values, e.Value)
	}
	return values
}

// Iterate calls f for each value in order until f returns true.
func (l *List[T]) Iterate(f func(value T) bool) {
	for e := l.head.next; e != nil; e = e.next {
		if f(e.Value) {
			return
		}
	}
}
