package forwardlist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/structkit/collections/forwardlist"
)

func intsEqual(a, b int) bool { return a == b }

func TestForwardListPushPopFront(t *testing.T) {
	l := forwardlist.New[int]()
	require.True(t, l.Empty())

	l.PushFront(3)
	l.PushFront(2)
	l.PushFront(1)
	require.Equal(t, 3, l.Size())
	require.Equal(t, []int{1, 2, 3}, l.Values())

	front, err := l.Front()
	require.NoError(t, err)
	require.Equal(t, 1, front)

	got, err := l.PopFront()
	require.NoError(t, err)
	require.Equal(t, 1, got)
	require.Equal(t, []int{2, 3}, l.Values())

	l.Clear()
	_, err = l.PopFront()
	require.ErrorIs(t, err, forwardlist.ErrorEmptyCollection)
	_, err = l.Front()
	require.ErrorIs(t, err, forwardlist.ErrorEmptyCollection)
}

func TestForwardListInsertRemoveAfter(t *testing.T) {
	l := forwardlist.Of(1, 3)

	first := l.BeforeFront().Next()
	l.InsertAfter(first, 2)
	require.Equal(t, []int{1, 2, 3}, l.Values())

	// Remove at the head through the sentinel.
	got, err := l.RemoveAfter(l.BeforeFront())
	require.NoError(t, err)
	require.Equal(t, 1, got)
	require.Equal(t, []int{2, 3}, l.Values())

	last := l.BeforeFront().Next().Next()
	_, err = l.RemoveAfter(last)
	require.ErrorIs(t, err, forwardlist.ErrorEmptyCollection)
}

func TestForwardListRemoveByValue(t *testing.T) {
	l := forwardlist.Of(1, 2, 1, 3, 1)
	require.Equal(t, 3, l.Remove(1, intsEqual))
	require.Equal(t, []int{2, 3}, l.Values())
	require.Equal(t, 0, l.Remove(42, intsEqual))
	require.Equal(t, 2, l.Size())
}

func TestForwardListFind(t *testing.T) {
	l := forwardlist.Of(1, 2, 3)
	e := l.Find(2, intsEqual)
	require.NotNil(t, e)
	require.Equal(t, 2, e.Value)
	require.Nil(t, l.Find(42, intsEqual))
}

func TestForwardListReverse(t *testing.T) {
	l := forwardlist.Of(1, 2, 3, 4)
	l.Reverse()
	require.Equal(t, []int{4, 3, 2, 1}, l.Values())

	empty := forwardlist.New[int]()
	empty.Reverse()
	require.True(t, empty.Empty())
}

func TestForwardListIterateStops(t *testing.T) {
	l := forwardlist.Of(1, 2, 3)
	var visited []int
	l.Iterate(func(v int) bool {
		visited = append(visited, v)
		return v == 2
	})
	require.Equal(t, []int{1, 2}, visited)
}
