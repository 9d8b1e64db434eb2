package avl

import (
	"github.com/structkit/collections/stack"
)

// Iterator is a single-pass in-order cursor over a tree.
//
// The cursor keeps a stack of borrowed references to the nodes on the
// currently open left spine, so any structural mutation of the tree (Insert,
// Remove, Clear, Swap) performed after construction invalidates it. Two
// cursors are equal only when they reference the same tree at the same
// logical position.
type Iterator[T any] struct {
	tree  *Tree[T]
	index int
	spine *stack.Stack[*node[T]]
}

// Begin returns a cursor positioned at the smallest value. On an empty tree
// it equals End.
func (t *Tree[T]) Begin() Iterator[T] {
	it := Iterator[T]{tree: t, spine: stack.New[*node[T]]()}
	for cur := t.root; cur != nil; cur = cur.left {
		it.spine.Push(cur)
	}
	return it
}

// End returns the past-the-end cursor.
func (t *Tree[T]) End() Iterator[T] {
	return Iterator[T]{tree: t, index: t.size, spine: stack.New[*node[T]]()}
}

// Next advances the cursor to the next value in ascending order: the visited
// node is popped and the left spine of its right subtree is opened.
// Advancing the past-the-end cursor is a no-op.
func (it *Iterator[T]) Next() {
	cur, err := it.spine.Pop()
	if err != nil {
		return
	}
	for cur = cur.right; cur != nil; cur = cur.left {
		it.spine.Push(cur)
	}
	it.index++
}

// Value returns the value at the cursor position. Calling it on the
// past-the-end cursor returns the zero value.
func (it Iterator[T]) Value() (value T) {
	top, err := it.spine.Top()
	if err != nil {
		return
	}
	return top.value
}

// Equal reports whether both cursors reference the same tree at the same
// logical position.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.tree == other.tree && it.index == other.index
}
