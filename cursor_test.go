package gollowmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorEmptyTable(t *testing.T) {
	table := newIntTable(t)

	c := table.Begin()
	assert.True(t, c.Done())
	assert.True(t, c.Equal(table.End()))
	assert.Panics(t, func() { c.Entry() })
}

func TestCursorBucketThenSlotOrder(t *testing.T) {
	table := newIntTable(t)
	for _, k := range []int{5, 3, 19, 35, 20} {
		table.Insert(k, "v")
	}

	keys := make([]int, 0)
	for c, end := table.Begin(), table.End(); !c.Equal(end); c.Next() {
		keys = append(keys, c.Entry().Key)
	}
	// bucket 3 holds 3, 19, 35 in insertion order, then buckets 4 and 5
	assert.Equal(t, []int{3, 19, 35, 20, 5}, keys)
}

func TestCursorYieldsEveryEntryOnce(t *testing.T) {
	table := New[string, int](StringHasher[string])
	want := make(map[string]int)
	for i := 0; i < 200; i++ {
		key := string(rune('a'+i%26)) + string(rune('A'+i/26))
		table.Insert(key, i)
		want[key] = i
	}

	got := make(map[string]int)
	for c := table.Begin(); !c.Done(); c.Next() {
		entry := c.Entry()
		_, dup := got[entry.Key]
		require.False(t, dup, "key %s seen twice", entry.Key)
		got[entry.Key] = entry.Value
	}
	assert.Equal(t, want, got)
}

func TestIndependentCursorsAgree(t *testing.T) {
	table := New[int, int](IntegerHasher[int])
	for i := 0; i < 100; i++ {
		table.Insert(i*7, i)
	}

	first, second := table.Begin(), table.Begin()
	require.True(t, first.Equal(second))
	for !first.Done() {
		require.True(t, first.Equal(second))
		assert.Equal(t, first.Entry(), second.Entry())
		first.Next()
		second.Next()
	}
	assert.True(t, second.Done())
}

func TestCursorNextAtEndIsNoop(t *testing.T) {
	table := newIntTable(t)
	table.Insert(1, "one")

	c := table.Begin()
	c.Next()
	require.True(t, c.Done())
	c.Next()
	assert.True(t, c.Equal(table.End()))
}

func TestCursorEqualityNeedsSameTable(t *testing.T) {
	a, b := newIntTable(t), newIntTable(t)
	assert.False(t, a.End().Equal(b.End()))
	assert.True(t, a.End().Equal(a.End()))
}

func TestCursorInvalidatedByMutation(t *testing.T) {
	mutations := map[string]func(*Table[int, string]){
		"insert": func(table *Table[int, string]) { table.Insert(100, "v") },
		"erase":  func(table *Table[int, string]) { table.Erase(1) },
		"clear":  func(table *Table[int, string]) { table.Clear() },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			table := newIntTable(t)
			table.Insert(1, "one")
			table.Insert(2, "two")

			c := table.Begin()
			mutate(table)
			assert.PanicsWithValue(t, ErrCursorInvalidated, func() { c.Next() })
			assert.PanicsWithValue(t, ErrCursorInvalidated, func() { c.Entry() })
		})
	}
}

func TestCursorSurvivesFailedMutations(t *testing.T) {
	table := newIntTable(t)
	table.Insert(1, "one")

	c := table.Begin()
	table.Insert(1, "again")
	table.Erase(42)
	_, _ = table.GetOrFail(1)

	assert.Equal(t, "one", c.Entry().Value)
}

func TestAllStopsEarly(t *testing.T) {
	table := New[int, int](IntegerHasher[int])
	for i := 0; i < 50; i++ {
		table.Insert(i, i)
	}

	count := 0
	for range table.All() {
		count++
		if count == 10 {
			break
		}
	}
	assert.Equal(t, 10, count)

	keys := 0
	for range table.Keys() {
		keys++
	}
	assert.Equal(t, 50, keys)
}

func TestTableIterator(t *testing.T) {
	table := newIntTable(t)
	itr := table.GetIterator()
	assert.False(t, itr.MoveNext())
	assert.Panics(t, func() { itr.GetCurrent() })

	table.Insert(2, "two")
	table.Insert(1, "one")

	itr = table.GetIterator()
	assert.Panics(t, func() { itr.GetCurrent() })
	require.True(t, itr.MoveNext())
	assert.Equal(t, NewEntry(1, "one"), itr.GetCurrent())
	require.True(t, itr.MoveNext())
	assert.Equal(t, NewEntry(2, "two"), itr.GetCurrent())
	assert.False(t, itr.MoveNext())
	assert.False(t, itr.MoveNext())
}
