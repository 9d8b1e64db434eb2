package avl_test

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"

	"github.com/structkit/collections/avl"
)

func TestTreeBasicQueries(t *testing.T) {
	tree := avl.NewOrdered[int]()
	for _, v := range []int{5, 3, 8, 1, 4, 7, 9} {
		tree.Insert(v)
	}

	require.Equal(t, 7, tree.Size())
	require.False(t, tree.Empty())
	require.True(t, tree.Contains(4))
	require.False(t, tree.Contains(6))

	minValue, err := tree.Min()
	require.NoError(t, err)
	require.Equal(t, 1, minValue)

	maxValue, err := tree.Max()
	require.NoError(t, err)
	require.Equal(t, 9, maxValue)

	require.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, tree.Values())
}

func TestTreeInsertDuplicateIsNoop(t *testing.T) {
	tree := avl.NewOrdered[int]()
	tree.Insert(1)
	tree.Insert(2)
	tree.Insert(2)
	tree.Insert(2)

	require.Equal(t, 2, tree.Size())
	require.Equal(t, []int{1, 2}, tree.Values())
}

func TestTreeRemoveAbsentIsNoop(t *testing.T) {
	tree := avl.NewOrdered[int]()
	tree.Insert(1)
	tree.Insert(2)

	tree.Remove(3)

	require.Equal(t, 2, tree.Size())

	empty := avl.NewOrdered[int]()
	empty.Remove(1)
	require.True(t, empty.Empty())
}

func TestTreeEmptyQueries(t *testing.T) {
	tree := avl.NewOrdered[int]()

	_, err := tree.Min()
	require.ErrorIs(t, err, avl.ErrorEmptyCollection)

	_, err = tree.Max()
	require.ErrorIs(t, err, avl.ErrorEmptyCollection)

	require.Equal(t, 0, tree.Height())
	require.Empty(t, tree.Values())
}

func TestTreeInsertRemoveRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	values := rng.Perm(500)

	tree := avl.NewOrdered[int]()
	for _, v := range values {
		tree.Insert(v)
	}
	require.Equal(t, 500, tree.Size())
	require.True(t, sort.IntsAreSorted(tree.Values()))

	for _, v := range rng.Perm(500) {
		require.True(t, tree.Contains(v))
		tree.Remove(v)
		require.False(t, tree.Contains(v))
	}
	require.True(t, tree.Empty())
}

func TestTreeHeightStaysLogarithmic(t *testing.T) {
	tree := avl.NewOrdered[int]()
	for v := 0; v < 1024; v++ {
		tree.Insert(v)
	}

	// 1024 values fit in height 11 when perfectly balanced; the AVL bound
	// guarantees no more than ~1.44*log2(n).
	require.GreaterOrEqual(t, tree.Height(), 11)
	require.LessOrEqual(t, tree.Height(), 15)
}

func TestTreeTraversalOrders(t *testing.T) {
	tree := avl.NewOrdered[int]()
	for _, v := range []int{2, 1, 3} {
		tree.Insert(v)
	}

	var inOrder, preOrder, postOrder []int
	tree.IterateInOrder(func(v int) bool {
		inOrder = append(inOrder, v)
		return false
	})
	tree.IteratePreOrder(func(v int) bool {
		preOrder = append(preOrder, v)
		return false
	})
	tree.IteratePostOrder(func(v int) bool {
		postOrder = append(postOrder, v)
		return false
	})

	require.Equal(t, []int{1, 2, 3}, inOrder)
	require.Equal(t, []int{2, 1, 3}, preOrder)
	require.Equal(t, []int{1, 3, 2}, postOrder)

	var stopped []int
	tree.IterateInOrder(func(v int) bool {
		stopped = append(stopped, v)
		return v == 2
	})
	require.Equal(t, []int{1, 2}, stopped)
}

func TestTreeIterator(t *testing.T) {
	tree := avl.NewOrdered[int]()
	for _, v := range []int{5, 3, 8, 1, 4, 7, 9} {
		tree.Insert(v)
	}

	var got []int
	end := tree.End()
	for it := tree.Begin(); !it.Equal(end); it.Next() {
		got = append(got, it.Value())
	}
	require.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, got)

	// Advancing past the end is a no-op.
	it := tree.End()
	it.Next()
	require.True(t, it.Equal(tree.End()))
}

func TestTreeIteratorEquality(t *testing.T) {
	tree := avl.NewOrdered[int]()
	tree.Insert(1)
	tree.Insert(2)

	first := tree.Begin()
	second := tree.Begin()
	require.True(t, first.Equal(second))

	second.Next()
	require.False(t, first.Equal(second))

	first.Next()
	require.True(t, first.Equal(second))

	// Iterators of distinct trees never compare equal, even at the same
	// position.
	other := avl.NewOrdered[int]()
	other.Insert(1)
	other.Insert(2)
	require.False(t, tree.Begin().Equal(other.Begin()))

	empty := avl.NewOrdered[int]()
	require.True(t, empty.Begin().Equal(empty.End()))
}

func TestTreeEqual(t *testing.T) {
	first := avl.NewOrdered[int]()
	second := avl.NewOrdered[int]()

	// Insertion order must not matter, only the stored values.
	for _, v := range []int{5, 3, 8, 1} {
		first.Insert(v)
	}
	for _, v := range []int{1, 8, 5, 3} {
		second.Insert(v)
	}
	require.True(t, first.Equal(second))
	require.True(t, first.Equal(first))

	second.Remove(8)
	require.False(t, first.Equal(second))

	second.Insert(9)
	require.False(t, first.Equal(second))
}

func TestTreeCompare(t *testing.T) {
	first := avl.Of(1, 2, 3)
	second := avl.Of(1, 2, 4)

	require.Equal(t, -1, first.Compare(second))
	require.Equal(t, 1, second.Compare(first))
	require.Equal(t, 0, first.Compare(first))

	// A strict prefix orders before the longer sequence.
	prefix := avl.Of(1, 2)
	require.Equal(t, -1, prefix.Compare(first))
	require.Equal(t, 1, first.Compare(prefix))

	empty := avl.NewOrdered[int]()
	require.Equal(t, -1, empty.Compare(prefix))
	require.Equal(t, 0, empty.Compare(avl.NewOrdered[int]()))
}

func TestTreePrint(t *testing.T) {
	tree := avl.Of(3, 1, 2)

	var sb strings.Builder
	require.NoError(t, tree.Print(&sb, " "))
	require.Equal(t, "1 2 3", sb.String())

	sb.Reset()
	require.NoError(t, avl.NewOrdered[int]().Print(&sb, " "))
	require.Equal(t, "", sb.String())
}

func TestTreeClone(t *testing.T) {
	tree := avl.Of(5, 3, 8)
	cloned := tree.Clone()

	require.True(t, tree.Equal(cloned))

	cloned.Insert(1)
	cloned.Remove(8)

	require.Equal(t, []int{3, 5, 8}, tree.Values())
	require.Equal(t, []int{1, 3, 5}, cloned.Values())
}

func TestTreeSwap(t *testing.T) {
	first := avl.Of(1, 2, 3)
	second := avl.Of(9)

	first.Swap(second)

	require.Equal(t, []int{9}, first.Values())
	require.Equal(t, []int{1, 2, 3}, second.Values())

	// Self-swap leaves the tree untouched.
	first.Swap(first)
	require.Equal(t, []int{9}, first.Values())
}

func TestTreeCustomComparator(t *testing.T) {
	tree := avl.New(func(a, b uint128.Uint128) int { return a.Cmp(b) })

	tree.Insert(uint128.From64(300))
	tree.Insert(uint128.Max)
	tree.Insert(uint128.From64(7))

	minValue, err := tree.Min()
	require.NoError(t, err)
	require.Equal(t, uint128.From64(7), minValue)

	maxValue, err := tree.Max()
	require.NoError(t, err)
	require.Equal(t, uint128.Max, maxValue)

	require.True(t, tree.Contains(uint128.From64(300)))
}

func TestTreeReverseComparator(t *testing.T) {
	tree := avl.New(func(a, b int) int { return b - a })
	for _, v := range []int{1, 3, 2} {
		tree.Insert(v)
	}

	require.Equal(t, []int{3, 2, 1}, tree.Values())

	minValue, err := tree.Min()
	require.NoError(t, err)
	require.Equal(t, 3, minValue)
}

func FuzzTreeInsertRemove(f *testing.F) {
	f.Add("abc123", "b2")
	f.Add("", "xyz")
	f.Add("aaaa", "aa")

	f.Fuzz(func(t *testing.T, insert string, remove string) {
		tree := avl.NewOrdered[rune]()
		expected := map[rune]bool{}

		for _, r := range insert {
			tree.Insert(r)
			expected[r] = true
		}
		for _, r := range remove {
			tree.Remove(r)
			delete(expected, r)
		}

		require.Equal(t, len(expected), tree.Size())
		for r := range expected {
			require.True(t, tree.Contains(r), "tree is missing %q", r)
		}

		values := tree.Values()
		for i := 1; i < len(values); i++ {
			require.Less(t, values[i-1], values[i], "values are not strictly increasing")
		}
	})
}
