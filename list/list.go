// Package list provides a doubly linked list with stable element handles.
package list

import (
	"sync"
)

// List is a doubly linked list. Elements are linked in a ring through a
// sentinel, so front/back insertion and removal are uniform O(1) operations.
// NOTE: Not thread-safe.
type List[T any] struct {
	pool     *sync.Pool  // optional pool used to create/release elements
	sentinel Element[T]  // ring anchor; only sentinel.prev and sentinel.next are used
	size     int
}

// New creates new empty List instance.
func New[T any]() *List[T] {
	return NewPooled[T](nil)
}

// NewPooled creates new empty List instance which creates and releases its
// elements through the given pool. The pool must produce *Element[T] values.
func NewPooled[T any](pool *sync.Pool) *List[T] {
	l := new(List[T])
	l.pool = pool
	l.sentinel.next = &l.sentinel
	l.sentinel.prev = &l.sentinel
	return l
}

// Of creates new List instance holding the given values in order.
func Of[T any](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.PushBack(v)
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

// Front returns the first element or nil when the list is empty.
func (l *List[T]) Front() *Element[T] {
	if l.size == 0 {
		return nil
	}
	return l.sentinel.next
}

// Back returns the last element or nil when the list is empty.
func (l *List[T]) Back() *Element[T] {
	if l.size == 0 {
		return nil
	}
	return l.sentinel.prev
}

// PushFront inserts value at the front and returns its element.
func (l *List[T]) PushFront(value T) *Element[T] {
	l.lazyInit()
	return l.insertValue(value, &l.sentinel)
}

// PushBack inserts value at the back and returns its element.
func (l *List[T]) PushBack(value T) *Element[T] {
	l.lazyInit()
	return l.insertValue(value, l.sentinel.prev)
}

// PopFront removes and returns the first value.
func (l *List[T]) PopFront() (value T, err error) {
	if l.size == 0 {
		err = ErrorEmptyCollection
		return
	}
	value = l.sentinel.next.Value
	l.unlink(l.sentinel.next)
	return
}

// PopBack removes and returns the last value.
func (l *List[T]) PopBack() (value T, err error) {
	if l.size == 0 {
		err = ErrorEmptyCollection
		return
	}
	value = l.sentinel.prev.Value
	l.unlink(l.sentinel.prev)
	return
}

// InsertBefore inserts value immediately before mark and returns its element.
// Mark must belong to this list.
func (l *List[T]) InsertBefore(value T, mark *Element[T]) *Element[T] {
	if mark == nil || mark.list != l {
		return nil
	}
	return l.insertValue(value, mark.prev)
}

// InsertAfter inserts value immediately after mark and returns its element.
// Mark must belong to this list.
func (l *List[T]) InsertAfter(value T, mark *Element[T]) *Element[T] {
	if mark == nil || mark.list != l {
		return nil
	}
	return l.insertValue(value, mark)
}

// MoveToFront moves element e to the front of the list.
func (l *List[T]) MoveToFront(e *Element[T]) {
	if e == nil || e.list != l || l.sentinel.next == e {
		return
	}
	l.move(e, &l.sentinel)
}

// MoveToBack moves element e to the back of the list.
func (l *List[T]) MoveToBack(e *Element[T]) {
	if e == nil || e.list != l || l.sentinel.prev == e {
		return
	}
	l.move(e, l.sentinel.prev)
}

// Remove unlinks e from the list and returns its value.
func (l *List[T]) Remove(e *Element[T]) (value T, err error) {
	if e == nil {
		err = ErrorElementIsNil
		return
	}
	if e.list != l {
		err = ErrorElementNotInList
		return
	}
	value = e.Value
	l.unlink(e)
	return
}

// RemoveValue unlinks every element whose value matches under equal and
// returns the number of removed elements.
func (l *List[T]) RemoveValue(value T, equal func(a, b T) bool) int {
	removed := 0
	for e := l.Front(); e != nil; {
		next := e.Next()
		if equal(e.Value, value) {
			l.unlink(e)
			removed++
		}
		e = next
	}
	return removed
}

// PushBackList appends a copy of another list. The lists may be the same.
func (l *List[T]) PushBackList(other *List[T]) {
	l.lazyInit()
	for i, e := other.Size(), other.Front(); i > 0; i, e = i-1, e.Next() {
		l.insertValue(e.Value, l.sentinel.prev)
	}
}

// PushFrontList prepends a copy of another list. The lists may be the same.
func (l *List[T]) PushFrontList(other *List[T]) {
	l.lazyInit()
	for i, e := other.Size(), other.Back(); i > 0; i, e = i-1, e.Prev() {
		l.insertValue(e.Value, &l.sentinel)
	}
}

// Reverse relinks the list so that elements appear in the opposite order.
func (l *List[T]) Reverse() {
	if l.size < 2 {
		return
	}
	cur := &l.sentinel
	for {
		cur.next, cur.prev = cur.prev, cur.next
		cur = cur.prev // the original next
		if cur == &l.sentinel {
			return
		}
	}
}

// Unique removes consecutive elements equal under the predicate, keeping the
// first of each run, and returns the number of removed elements.
// The list should be sorted for global deduplication.
func (l *List[T]) Unique(equal func(a, b T) bool) int {
	removed := 0
	e := l.Front()
	if e == nil {
		return 0
	}
	for next := e.Next(); next != nil; next = e.Next() {
		if equal(e.Value, next.Value) {
			l.unlink(next)
			removed++
		} else {
			e = next
		}
	}
	return removed
}

// Merge transfers all elements of other into l so that the result is sorted
// under compare, assuming both lists are already sorted. Other is left empty.
func (l *List[T]) Merge(other *List[T], compare func(a, b T) int) {
	if other == l || other == nil {
		return
	}
	e := l.Front()
	for {
		v, err := other.PopFront()
		if err != nil {
			return
		}
		for e != nil && compare(e.Value, v) <= 0 {
			e = e.Next()
		}
		if e == nil {
			l.PushBack(v)
		} else {
			l.InsertBefore(v, e)
		}
	}
}

// Clone returns a deep copy of the list. The clone never shares the pool.
func (l *List[T]) Clone() *List[T] {
	cloned := New[T]()
	cloned.PushBackList(l)
	return cloned
}

// EqualFunc reports whether both lists hold equal values in the same order
// under the given equality predicate.
func (l *List[T]) EqualFunc(other *List[T], equal func(a, b T) bool) bool {
	if l == other {
		return true
	}
	if l.Size() != other.Size() {
		return false
	}
	a, b := l.Front(), other.Front()
	for a != nil {
		if !equal(a.Value, b.Value) {
			return false
		}
		a, b = a.Next(), b.Next()
	}
	return true
}

// Values returns the stored values in order.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.size)
	for e := l.Front(); e != nil; e = e.Next() {
		values = append(values, e.Value)
	}
	return values
}

// Iterate calls f for each value in order until f returns true.
func (l *List[T]) Iterate(f func(value T) bool) {
	for e := l.Front(); e != nil; e = e.Next() {
		if f(e.Value) {
			return
		}
	}
}

// Clear removes all elements, releasing them into the pool when one is used.
func (l *List[T]) Clear() {
	if l.pool != nil {
		for e := l.sentinel.next; e != nil && e != &l.sentinel; {
			next := e.next
			e.next, e.prev, e.list = nil, nil, nil
			l.pool.Put(e)
			e = next
		}
	}
	l.sentinel.next = &l.sentinel
	l.sentinel.prev = &l.sentinel
	l.size = 0
}

// lazyInit makes a zero List value usable.
func (l *List[T]) lazyInit() {
	if l.sentinel.next == nil {
		l.sentinel.next = &l.sentinel
		l.sentinel.prev = &l.sentinel
	}
}

// insertValue links a fresh element holding value after at.
func (l *List[T]) insertValue(value T, at *Element[T]) *Element[T] {
	var e *Element[T]
	if l.pool != nil {
		e = l.pool.Get().(*Element[T])
		e.Value = value
	} else {
		e = &Element[T]{Value: value}
	}
	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
	e.list = l
	l.size++
	return e
}

// move relinks e next to at.
func (l *List[T]) move(e, at *Element[T]) {
	if e == at {
		return
	}
	e.prev.next = e.next
	e.next.prev = e.prev

	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
}

// unlink detaches e and releases it into the pool when one is used.
func (l *List[T]) unlink(e *Element[T]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	l.size--

	// Detach links so a held handle cannot walk the list anymore.
	e.next, e.prev, e.list = nil, nil, nil

	if l.pool != nil {
		l.pool.Put(e)
	}
}
