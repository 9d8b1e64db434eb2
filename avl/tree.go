package avl

import (
	"fmt"
	"io"
	"sync"

	"gopkg.in/typ.v4"
)

// Tree is an ordered set of comparator-distinct values implemented as an AVL
// tree (Adelson-Velsky and Landis tree), a self-balancing binary search
// tree. This guarantees O(log n) insertion, removal and membership tests,
// and in-order iteration yields values in ascending comparator order.
//
// Values comparing equal under the comparator are treated as the same
// element: inserting a present value and removing an absent one are defined
// no-ops. Assigning a Tree value shares nodes with the original; use Clone
// for a deep copy and Swap to transfer contents.
// NOTE: Not thread-safe.
type Tree[T any] struct {
	compare func(a, b T) int
	pool    *sync.Pool
	root    *node[T]
	size    int
}

// New creates a new tree using a comparator function that is expected to
// return 0 if a == b, -1 if a < b, and +1 if a > b.
func New[T any](compare func(a, b T) int) *Tree[T] {
	return &Tree[T]{compare: compare}
}

// NewOrdered creates a new tree using a default comparator function for any
// ordered type (ints, uints, floats, strings).
func NewOrdered[T typ.Ordered]() *Tree[T] {
	return New(typ.Compare[T])
}

// Of creates a new tree holding the given values, compared with the default
// comparator for the type.
func Of[T typ.Ordered](values ...T) *Tree[T] {
	tree := NewOrdered[T]()
	for _, v := range values {
		tree.Insert(v)
	}
	return tree
}

// NewPooled creates a new tree which creates and releases its nodes through
// the given pool. The pool must produce values of the tree's node type,
// obtained from NodePool.
func NewPooled[T any](compare func(a, b T) int, pool *sync.Pool) *Tree[T] {
	return &Tree[T]{compare: compare, pool: pool}
}

// NodePool creates a pool producing nodes suitable for NewPooled trees over
// element type T. One pool may be shared by any number of such trees.
func NodePool[T any]() *sync.Pool {
	return &sync.Pool{New: func() any {
		return new(node[T])
	}}
}

// Size returns the number of stored values.
func (t *Tree[T]) Size() int {
	return t.size
}

// Empty returns true if the tree holds no values.
func (t *Tree[T]) Empty() bool {
	return t.size == 0
}

// Height returns the tree height: 0 for an empty tree, 1 for a single leaf.
func (t *Tree[T]) Height() int {
	return height(t.root)
}

// Insert adds value to the set. Inserting a value that is already present
// leaves the tree unchanged.
func (t *Tree[T]) Insert(value T) {
	t.root = t.insert(t.root, value)
}

// insert descends to the insertion slot and restores balance at every
// ancestor on the unwind path, so each level sees a subtree that grew by at
// most one height or was already repaired by a deeper rotation.
func (t *Tree[T]) insert(n *node[T], value T) *node[T] {
	if n == nil {
		t.size++
		return t.newNode(value)
	}
	switch cmp := t.compare(value, n.value); {
	case cmp < 0:
		n.left = t.insert(n.left, value)
	case cmp > 0:
		n.right = t.insert(n.right, value)
	default:
		// Already present.
		return n
	}
	return rebalance(n)
}

// Remove deletes value from the set. Removing a value that is not present
// leaves the tree unchanged.
func (t *Tree[T]) Remove(value T) {
	t.root = t.remove(t.root, value)
}

func (t *Tree[T]) remove(n *node[T], value T) *node[T] {
	if n == nil {
		// Not present.
		return nil
	}
	switch cmp := t.compare(value, n.value); {
	case cmp < 0:
		n.left = t.remove(n.left, value)
	case cmp > 0:
		n.right = t.remove(n.right, value)
	default:
		if n.left != nil && n.right != nil {
			// Two children: adopt the in-order successor value here and
			// remove its original node, which has at most one child.
			n.value = n.right.mostLeft().value
			n.right = t.remove(n.right, n.value)
		} else {
			// Zero or one child: splice the node out.
			child := n.left
			if child == nil {
				child = n.right
			}
			t.releaseNode(n)
			t.size--
			return child
		}
	}
	return rebalance(n)
}

// Contains reports whether value is present, by iterative descent.
func (t *Tree[T]) Contains(value T) bool {
	current := t.root
	for current != nil {
		switch cmp := t.compare(value, current.value); {
		case cmp < 0:
			current = current.left
		case cmp > 0:
			current = current.right
		default:
			return true
		}
	}
	return false
}

// Min returns the smallest stored value.
func (t *Tree[T]) Min() (value T, err error) {
	if t.root == nil {
		err = ErrorEmptyCollection
		return
	}
	return t.root.mostLeft().value, nil
}

// Max returns the largest stored value.
func (t *Tree[T]) Max() (value T, err error) {
	if t.root == nil {
		err = ErrorEmptyCollection
		return
	}
	return t.root.mostRight().value, nil
}

// Clear removes all values. With a pooled tree every node is released back
// into the pool.
func (t *Tree[T]) Clear() {
	if t.pool != nil && t.root != nil {
		t.root.iteratePostOrder(func(n *node[T]) bool {
			t.releaseNode(n)
			return false
		})
	}
	t.root = nil
	t.size = 0
}

// Clone returns a deep copy: every node is duplicated, the trees share no
// state afterwards.
func (t *Tree[T]) Clone() *Tree[T] {
	return &Tree[T]{
		compare: t.compare,
		pool:    t.pool,
		root:    t.root.clone(),
		size:    t.size,
	}
}

// Swap exchanges the contents of both trees in O(1). The comparators stay
// with their trees. Swapping a tree with itself is a no-op.
func (t *Tree[T]) Swap(other *Tree[T]) {
	if t == other {
		return
	}
	t.root, other.root = other.root, t.root
	t.size, other.size = other.size, t.size
}

// Equal reports whether both trees hold the same values in the same order
// under the receiver's comparator.
func (t *Tree[T]) Equal(other *Tree[T]) bool {
	if t == other {
		return true
	}
	if t.size != other.size {
		return false
	}
	a, b := t.Begin(), other.Begin()
	end := t.End()
	for !a.Equal(end) {
		if t.compare(a.Value(), b.Value()) != 0 {
			return false
		}
		a.Next()
		b.Next()
	}
	return true
}

// Compare orders two trees lexicographically over their ascending value
// sequences and returns -1, 0 or +1.
func (t *Tree[T]) Compare(other *Tree[T]) int {
	a, b := t.Begin(), other.Begin()
	aEnd, bEnd := t.End(), other.End()
	for {
		switch {
		case a.Equal(aEnd) && b.Equal(bEnd):
			return 0
		case a.Equal(aEnd):
			return -1
		case b.Equal(bEnd):
			return 1
		}
		if cmp := t.compare(a.Value(), b.Value()); cmp != 0 {
			if cmp < 0 {
				return -1
			}
			return 1
		}
		a.Next()
		b.Next()
	}
}

// Values returns the stored values in ascending order.
func (t *Tree[T]) Values() []T {
	values := make([]T, 0, t.size)
	t.IterateInOrder(func(v T) bool {
		values = append(values, v)
		return false
	})
	return values
}

// Print writes the values in ascending order to w, separated by delim.
func (t *Tree[T]) Print(w io.Writer, delim string) error {
	var err error
	first := true
	t.IterateInOrder(func(v T) bool {
		if !first {
			if _, err = io.WriteString(w, delim); err != nil {
				return true
			}
		}
		first = false
		_, err = fmt.Fprintf(w, "%v", v)
		return err != nil
	})
	return err
}

// IterateInOrder will iterate all values in this tree by first visiting each
// node's left branch, followed by its own value, and then its right branch,
// which yields the values in ascending order. Iteration stops early when f
// returns true.
func (t *Tree[T]) IterateInOrder(f func(value T) bool) {
	if t.root == nil {
		return
	}
	t.root.iterateInOrder(func(n *node[T]) bool {
		return f(n.value)
	})
}

// IteratePreOrder will iterate all values in this tree by first visiting
// each node's value, followed by its left branch, and then its right branch.
// Inserting values back in this order reproduces the exact tree layout.
func (t *Tree[T]) IteratePreOrder(f func(value T) bool) {
	if t.root == nil {
		return
	}
	t.root.iteratePreOrder(func(n *node[T]) bool {
		return f(n.value)
	})
}

// IteratePostOrder will iterate all values in this tree by first visiting
// each node's left branch, followed by its right branch, and then its own
// value, so children are always visited before their parent.
func (t *Tree[T]) IteratePostOrder(f func(value T) bool) {
	if t.root == nil {
		return
	}
	t.root.iteratePostOrder(func(n *node[T]) bool {
		return f(n.value)
	})
}

// newNode allocates a leaf, through the pool when one is configured.
func (t *Tree[T]) newNode(value T) *node[T] {
	if t.pool != nil {
		n := t.pool.Get().(*node[T])
		n.value = value
		n.left, n.right = nil, nil
		n.height = 1
		return n
	}
	return &node[T]{value: value, height: 1}
}

// releaseNode recycles a node into the pool when one is configured.
func (t *Tree[T]) releaseNode(n *node[T]) {
	if t.pool != nil {
		*n = node[T]{}
		t.pool.Put(n)
	}
}
