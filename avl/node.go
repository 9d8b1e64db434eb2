package avl

// allowedImbalance is the tolerated difference between sibling subtree
// heights. A difference of allowedImbalance+1 triggers a rotation; it can
// never grow larger between two mutations of a valid tree, so every
// rebalance step needs at most one rotation decision.
const allowedImbalance = 1

// node owns its left and right subtrees exclusively. Rotations transfer
// whole subtrees between slots and never visit their descendants.
type node[T any] struct {
	value  T
	left   *node[T]
	right  *node[T]
	height int // cached: 1 for a leaf, 1 + max of the children heights otherwise
}

// height reads the cached height, defining the height of an absent subtree
// as 0.
func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return n.height
}

// rebalance restores the height invariant at n after a single insert or
// removal below it and returns the subtree root, which changes whenever a
// rotation promotes a child. The single rotation is chosen when the taller
// child is at least as tall on the outside as on the inside, the double
// rotation otherwise.
func rebalance[T any](n *node[T]) *node[T] {
	switch {
	case height(n.left) > height(n.right)+allowedImbalance:
		if height(n.left.left) >= height(n.left.right) {
			n = rotateRight(n)
		} else {
			n = rotateRightLeft(n)
		}
	case height(n.right) > height(n.left)+allowedImbalance:
		if height(n.right.right) >= height(n.right.left) {
			n = rotateLeft(n)
		} else {
			n = rotateLeftRight(n)
		}
	}
	n.height = 1 + max(height(n.left), height(n.right))
	return n
}

// rotateRight promotes the left child above n: n adopts the child's right
// subtree, the child adopts n. Heights are recomputed bottom-up, n first
// since it is the lower node afterwards.
func rotateRight[T any](n *node[T]) *node[T] {
	l := n.left
	n.left = l.right
	n.height = 1 + max(height(n.left), height(n.right))
	l.right = n
	l.height = 1 + max(height(l.left), n.height)
	return l
}

// rotateLeft promotes the right child above n, the mirror of rotateRight.
func rotateLeft[T any](n *node[T]) *node[T] {
	r := n.right
	n.right = r.left
	n.height = 1 + max(height(n.left), height(n.right))
	r.left = n
	r.height = 1 + max(height(r.right), n.height)
	return r
}

// rotateRightLeft handles the left-heavy case where the left child leans
// right: rotate the child left, then n right. Two composed single rotations
// rather than a distinct primitive.
func rotateRightLeft[T any](n *node[T]) *node[T] {
	n.left = rotateLeft(n.left)
	return rotateRight(n)
}

// rotateLeftRight handles the right-heavy case where the right child leans
// left, the mirror of rotateRightLeft.
func rotateLeftRight[T any](n *node[T]) *node[T] {
	n.right = rotateRight(n.right)
	return rotateLeft(n)
}

func (n *node[T]) mostLeft() *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[T]) mostRight() *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// clone deep-copies the subtree, preserving structure and cached heights.
func (n *node[T]) clone() *node[T] {
	if n == nil {
		return nil
	}
	return &node[T]{
		value:  n.value,
		left:   n.left.clone(),
		right:  n.right.clone(),
		height: n.height,
	}
}

func (n *node[T]) iteratePreOrder(f func(n *node[T]) bool) bool {
	if f(n) {
		return true
	}
	if n.left != nil && n.left.iteratePreOrder(f) {
		return true
	}
	if n.right != nil && n.right.iteratePreOrder(f) {
		return true
	}
	return false
}

func (n *node[T]) iterateInOrder(f func(n *node[T]) bool) bool {
	if n.left != nil && n.left.iterateInOrder(f) {
		return true
	}
	if f(n) {
		return true
	}
	if n.right != nil && n.right.iterateInOrder(f) {
		return true
	}
	return false
}

func (n *node[T]) iteratePostOrder(f func(n *node[T]) bool) bool {
	if n.left != nil && n.left.iteratePostOrder(f) {
		return true
	}
	if n.right != nil && n.right.iteratePostOrder(f) {
		return true
	}
	return f(n)
}
