package list

// Iterator walks a list front to back and tolerates removal of the element
// it currently points at: the next Next call resynchronizes from the last
// element known to still be linked.
type Iterator[T any] struct {
	list    *List[T]
	prev    *Element[T]
	current *Element[T]
	next    *Element[T]
}

// NewIterator creates an iterator positioned before the first element.
// The iterator points at nothing until the first Next call.
func NewIterator[T any](l *List[T]) Iterator[T] {
	return Iterator[T]{
		list: l,
		prev: &l.sentinel,
	}
}

// Current returns the element the iterator points at, nil before the first
// Next call and after exhaustion.
func (it *Iterator[T]) Current() *Element[T] {
	return it.current
}

// Valid returns true while the iterator points at an element.
func (it *Iterator[T]) Valid() bool {
	return it.current != nil
}

// Next advances the iterator and returns true while an element is available.
func (it *Iterator[T]) Next() bool {
	switch {
	case it.prev == &it.list.sentinel && it.current == nil:
		// Start of iteration.
		it.current = it.list.Front()
	case it.prev == &it.list.sentinel && it.current != it.list.Front():
		// The first element was removed under the iterator.
		it.current = it.list.Front()
	case it.prev != &it.list.sentinel && it.prev.Next() != it.current:
		// A middle element was removed under the iterator.
		it.current = it.prev.Next()
	default:
		if it.current == nil {
			// Exhausted; calling Next again stays at the end.
			return false
		}
		it.prev = it.current
		it.current = it.next
	}

	if it.current == nil {
		return false
	}
	it.next = it.current.Next()
	return true
}
