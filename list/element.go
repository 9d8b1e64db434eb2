package list

// Element is a node of a doubly linked list holding one value.
type Element[T any] struct {
	Value T

	next, prev *Element[T]
	list       *List[T]
}

// Next returns the next list element or nil when e is the last one.
func (e *Element[T]) Next() *Element[T] {
	if n := e.next; e.list != nil && n != &e.list.sentinel {
		return n
	}
	return nil
}

// Prev returns the previous list element or nil when e is the first one.
func (e *Element[T]) Prev() *Element[T] {
	if p := e.prev; e.list != nil && p != &e.list.sentinel {
		return p
	}
	return nil
}
