// Package trie provides a prefix tree mapping string keys to values, with
// lookup cost proportional to the key length.
package trie

import (
	"sort"

	"github.com/tidwall/hashmap"
)

const defaultChildSlots = 4

type node[V any] struct {
	children *hashmap.Map[byte, *node[V]]
	value    V
	terminal bool
}

func newNode[V any]() *node[V] {
	return &node[V]{children: hashmap.New[byte, *node[V]](defaultChildSlots)}
}

// Trie is a prefix tree keyed by strings. Keys sharing a prefix share the
// nodes spelling that prefix, and all keys below a given prefix can be
// enumerated without touching the rest of the tree. The empty string is a
// valid key.
// NOTE: Not thread-safe.
type Trie[V any] struct {
	root *node[V]
	size int
}

// New creates a new empty trie.
func New[V any]() *Trie[V] {
	return &Trie[V]{root: newNode[V]()}
}

// Size returns the number of stored keys.
func (t *Trie[V]) Size() int {
	return t.size
}

// Empty returns true if the trie holds no keys.
func (t *Trie[V]) Empty() bool {
	return t.size == 0
}

// Insert stores the value under the key, overwriting any previous value. It
// returns true if the key was added and false if it was already present.
func (t *Trie[V]) Insert(key string, value V) bool {
	n := t.root
	for i := 0; i < len(key); i++ {
		child, ok := n.children.Get(key[i])
		if !ok {
			child = newNode[V]()
			n.children.Set(key[i], child)
		}
		n = child
	}
	added := !n.terminal
	n.value = value
	n.terminal = true
	if added {
		t.size++
	}
	return added
}

// Get returns the value stored under the key, and whether the key is present.
func (t *Trie[V]) Get(key string) (value V, ok bool) {
	n := t.find(key)
	if n == nil || !n.terminal {
		return value, false
	}
	return n.value, true
}

// Contains returns true if the key is present in the trie.
func (t *Trie[V]) Contains(key string) bool {
	n := t.find(key)
	return n != nil && n.terminal
}

// ContainsPrefix returns true if at least one stored key starts with the
// given prefix. Every key is a prefix of itself.
func (t *Trie[V]) ContainsPrefix(prefix string) bool {
	return t.find(prefix) != nil
}

// find walks the node chain spelling the key, or returns nil if the chain
// does not exist.
func (t *Trie[V]) find(key string) *node[V] {
	n := t.root
	for i := 0; i < len(key); i++ {
		child, ok := n.children.Get(key[i])
		if !ok {
			return nil
		}
		n = child
	}
	return n
}

// Remove deletes the key from the trie, pruning any nodes that no longer
// spell a stored key. It returns true if the key was present.
func (t *Trie[V]) Remove(key string) bool {
	if !remove(t.root, key) {
		return false
	}
	t.size--
	return true
}

func remove[V any](n *node[V], key string) bool {
	if len(key) == 0 {
		if !n.terminal {
			return false
		}
		var zero V
		n.value = zero
		n.terminal = false
		return true
	}
	child, ok := n.children.Get(key[0])
	if !ok || !remove(child, key[1:]) {
		return false
	}
	// Prune the child on the way back up once nothing is stored below it.
	if !child.terminal && child.children.Len() == 0 {
		n.children.Delete(key[0])
	}
	return true
}

// Clear removes all keys.
func (t *Trie[V]) Clear() {
	t.root = newNode[V]()
	t.size = 0
}

// Keys returns all stored keys in lexicographic order.
func (t *Trie[V]) Keys() []string {
	return t.KeysWithPrefix("")
}

// KeysWithPrefix returns all stored keys starting with the given prefix, in
// lexicographic order.
func (t *Trie[V]) KeysWithPrefix(prefix string) []string {
	n := t.find(prefix)
	if n == nil {
		return nil
	}
	var keys []string
	iterate(n, []byte(prefix), func(key string, _ V) bool {
		keys = append(keys, key)
		return false
	})
	return keys
}

// Iterate calls f for every stored key and its value in lexicographic key
// order, until f returns true to stop the iteration.
func (t *Trie[V]) Iterate(f func(key string, value V) bool) {
	iterate(t.root, nil, f)
}

func iterate[V any](n *node[V], path []byte, f func(key string, value V) bool) bool {
	if n.terminal && f(string(path), n.value) {
		return true
	}
	labels := n.children.Keys()
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	for _, label := range labels {
		child, _ := n.children.Get(label)
		if iterate(child, append(path, label), f) {
			return true
		}
	}
	return false
}
