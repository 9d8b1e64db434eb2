package trie_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/structkit/collections/trie"
)

func TestTrieInsertGet(t *testing.T) {
	tr := trie.New[int]()

	require.True(t, tr.Insert("car", 1))
	require.True(t, tr.Insert("cart", 2))
	require.True(t, tr.Insert("dog", 3))
	require.Equal(t, 3, tr.Size())

	v, ok := tr.Get("car")
	require.True(t, ok)
	require.Equal(t, 1, v)

	v, ok = tr.Get("cart")
	require.True(t, ok)
	require.Equal(t, 2, v)

	// A stored prefix of a stored key is a key; an unstored one is not.
	_, ok = tr.Get("ca")
	require.False(t, ok)
	_, ok = tr.Get("carts")
	require.False(t, ok)
}

func TestTrieInsertOverwrites(t *testing.T) {
	tr := trie.New[int]()

	require.True(t, tr.Insert("key", 1))
	require.False(t, tr.Insert("key", 2), "reinsert must report the key as present")
	require.Equal(t, 1, tr.Size())

	v, ok := tr.Get("key")
	require.True(t, ok)
	require.Equal(t, 2, v, "reinsert must overwrite the value")
}

func TestTrieEmptyStringKey(t *testing.T) {
	tr := trie.New[string]()

	require.False(t, tr.Contains(""))
	require.True(t, tr.Insert("", "root"))
	require.True(t, tr.Contains(""))
	require.Equal(t, 1, tr.Size())

	require.True(t, tr.Remove(""))
	require.True(t, tr.Empty())
}

func TestTrieRemovePrunes(t *testing.T) {
	tr := trie.New[int]()
	tr.Insert("car", 1)
	tr.Insert("cart", 2)

	require.True(t, tr.Remove("cart"))
	require.False(t, tr.Remove("cart"))
	require.Equal(t, 1, tr.Size())

	// "car" survives the removal of its extension.
	require.True(t, tr.Contains("car"))
	require.False(t, tr.ContainsPrefix("cart"), "pruning must drop the dangling chain")

	// Removing a key that is a prefix of another keeps the shared chain.
	tr.Insert("cart", 2)
	require.True(t, tr.Remove("car"))
	require.False(t, tr.Contains("car"))
	require.True(t, tr.Contains("cart"))
}

func TestTrieRemoveAbsent(t *testing.T) {
	tr := trie.New[int]()
	tr.Insert("car", 1)

	require.False(t, tr.Remove("ca"), "an unstored prefix is not a key")
	require.False(t, tr.Remove("carts"))
	require.False(t, tr.Remove("dog"))
	require.Equal(t, 1, tr.Size())
}

func TestTrieContainsPrefix(t *testing.T) {
	tr := trie.New[int]()
	tr.Insert("hello", 1)

	require.True(t, tr.ContainsPrefix(""))
	require.True(t, tr.ContainsPrefix("he"))
	require.True(t, tr.ContainsPrefix("hello"))
	require.False(t, tr.ContainsPrefix("hex"))
}

func TestTrieKeysWithPrefix(t *testing.T) {
	tr := trie.New[int]()
	for i, key := range []string{"dog", "cart", "car", "care", "cat"} {
		tr.Insert(key, i)
	}

	require.Equal(t, []string{"car", "care", "cart", "cat", "dog"}, tr.Keys())
	require.Equal(t, []string{"car", "care", "cart", "cat"}, tr.KeysWithPrefix("ca"))
	require.Equal(t, []string{"car", "care", "cart"}, tr.KeysWithPrefix("car"))
	require.Nil(t, tr.KeysWithPrefix("x"))
}

func TestTrieIterate(t *testing.T) {
	tr := trie.New[int]()
	tr.Insert("b", 2)
	tr.Insert("a", 1)
	tr.Insert("c", 3)

	var keys []string
	var values []int
	tr.Iterate(func(key string, value int) bool {
		keys = append(keys, key)
		values = append(values, value)
		return false
	})
	require.Equal(t, []string{"a", "b", "c"}, keys)
	require.Equal(t, []int{1, 2, 3}, values)

	var seen int
	tr.Iterate(func(string, int) bool {
		seen++
		return seen == 2
	})
	require.Equal(t, 2, seen)
}

func TestTrieClear(t *testing.T) {
	tr := trie.New[int]()
	tr.Insert("a", 1)
	tr.Insert("b", 2)

	tr.Clear()

	require.True(t, tr.Empty())
	require.False(t, tr.Contains("a"))
	require.True(t, tr.Insert("a", 1), "cleared trie must accept keys again")
}
