package gollowmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromSlices(t *testing.T) {
	table, err := NewFromSlices([]string{"a", "b", "c"}, []int{1, 2, 3}, StringHasher[string])
	require.NoError(t, err)

	assert.Equal(t, 3, table.Size())
	assert.Equal(t, 16, table.Capacity())
	for key, want := range map[string]int{"a": 1, "b": 2, "c": 3} {
		got, err := table.GetOrFail(key)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestNewFromSlicesLastWriteWins(t *testing.T) {
	table, err := NewFromSlices([]string{"a", "b", "a", "a"}, []int{1, 2, 3, 4}, StringHasher[string])
	require.NoError(t, err)

	assert.Equal(t, 2, table.Size())
	v, err := table.GetOrFail("a")
	require.NoError(t, err)
	assert.Equal(t, 4, v)

	// plain insert still refuses to overwrite
	assert.False(t, table.Insert("a", 100))
	v, _ = table.GetOrFail("a")
	assert.Equal(t, 4, v)
}

func TestNewFromSlicesLengthMismatch(t *testing.T) {
	table, err := NewFromSlices([]string{"a", "b"}, []int{1}, StringHasher[string])
	assert.Nil(t, table)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestNewFromSlicesGrows(t *testing.T) {
	keys := make([]int, 40)
	values := make([]int, 40)
	for i := range keys {
		keys[i] = i
		values[i] = i * i
	}

	table, err := NewFromSlices(keys, values, IntegerHasher[int])
	require.NoError(t, err)
	assert.Equal(t, 64, table.Capacity())
	checkInvariants(t, table)
}

func TestEqualIgnoresInsertionOrder(t *testing.T) {
	first := newIntTable(t)
	first.Insert(1, "a")
	first.Insert(17, "b")
	first.Insert(33, "c")

	second := newIntTable(t)
	second.Insert(33, "c")
	second.Insert(1, "a")
	second.Insert(17, "b")

	assert.True(t, Equal(first, second))
	assert.True(t, Equal(second, first))
	assert.True(t, Equal(first, first))
}

func TestEqualDetectsDifferences(t *testing.T) {
	base := func() *Table[int, string] {
		table := newIntTable(t)
		table.Insert(1, "a")
		table.Insert(2, "b")
		return table
	}

	t.Run("value", func(t *testing.T) {
		other := base()
		*other.GetOrInsertDefault(2) = "changed"
		assert.False(t, Equal(base(), other))
	})
	t.Run("size", func(t *testing.T) {
		other := base()
		other.Insert(3, "c")
		assert.False(t, Equal(base(), other))
	})
	t.Run("bounds", func(t *testing.T) {
		other, err := NewWithBounds[int, string](0.1, 0.9, identity)
		require.NoError(t, err)
		other.Insert(1, "a")
		other.Insert(2, "b")
		assert.False(t, Equal(base(), other))
	})
	t.Run("capacity", func(t *testing.T) {
		option := NewTableOption()
		option.SetInitialCapacity(32)
		other, err := NewWithOption[int, string](option, identity)
		require.NoError(t, err)
		other.Insert(1, "a")
		other.Insert(2, "b")
		assert.False(t, Equal(base(), other))
	})
	t.Run("nil", func(t *testing.T) {
		assert.False(t, Equal(base(), nil))
	})
}

func TestEqualAfterShrink(t *testing.T) {
	shrunk := newIntTable(t)
	for i := 0; i < 13; i++ {
		shrunk.Insert(i, "v")
	}
	for i := 0; i < 6; i++ {
		shrunk.Erase(i)
	}
	require.Equal(t, 16, shrunk.Capacity())

	fresh := newIntTable(t)
	for i := 12; i >= 6; i-- {
		fresh.Insert(i, "v")
	}
	assert.True(t, Equal(shrunk, fresh))
}

func TestEqualFunc(t *testing.T) {
	a := New[string, []int](StringHasher[string])
	b := New[string, []int](StringHasher[string])
	a.Insert("x", []int{1, 2})
	b.Insert("x", []int{1, 2})

	sameLen := func(x, y []int) bool { return len(x) == len(y) }
	assert.True(t, a.EqualFunc(b, sameLen))

	*b.GetOrInsertDefault("x") = []int{1}
	assert.False(t, a.EqualFunc(b, sameLen))
}
