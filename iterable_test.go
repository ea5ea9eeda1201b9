package gollowmap

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToListAndCount(t *testing.T) {
	table := newIntTable(t)
	assert.Empty(t, table.ToList())
	assert.Equal(t, 0, table.Count())

	for i := 0; i < 30; i++ {
		table.Insert(i, "v")
	}
	list := table.ToList()
	require.Len(t, list, 30)
	assert.Equal(t, 30, table.Count())

	keys := make([]int, len(list))
	for i, entry := range list {
		keys[i] = entry.Key
	}
	assert.True(t, sort.IntsAreSorted(keys))
}

func TestWhere(t *testing.T) {
	table := New[int, int](IntegerHasher[int])
	for i := 0; i < 100; i++ {
		table.Insert(i, i%3)
	}

	zeros := table.Where(func(e Entry[int, int]) bool { return e.Value == 0 })
	assert.Equal(t, 34, zeros.Count())
	// every GetIterator restarts
	assert.Len(t, zeros.ToList(), 34)

	small := zeros.Where(func(e Entry[int, int]) bool { return e.Key < 10 })
	got := make([]int, 0)
	for _, e := range small.ToList() {
		got = append(got, e.Key)
	}
	sort.Ints(got)
	assert.Equal(t, []int{0, 3, 6, 9}, got)
}

func TestFilterIteratorGetCurrentBeforeMoveNext(t *testing.T) {
	table := newIntTable(t)
	table.Insert(1, "one")

	itr := table.Where(func(Entry[int, string]) bool { return true }).GetIterator()
	assert.Panics(t, func() { itr.GetCurrent() })
	require.True(t, itr.MoveNext())
	assert.Equal(t, 1, itr.GetCurrent().Key)
	assert.False(t, itr.MoveNext())
	assert.Panics(t, func() { itr.GetCurrent() })
}
