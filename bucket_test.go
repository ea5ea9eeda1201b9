package gollowmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRehashKeepsRelativeOrder(t *testing.T) {
	store := newBucketStore[int, string](4)
	// 1, 9, 5 and 13 share bucket 1 of 4; 1 and 9 share bucket 1 of 8
	for _, k := range []int{1, 9, 5, 13, 2} {
		store.add(store.indexFor(identity(k)), NewEntry(k, "v"))
	}

	next := store.rehash(8, identity)
	assert.Len(t, next, 8)

	keysOf := func(b bucket[int, string]) []int {
		keys := make([]int, 0, len(b))
		for _, e := range b {
			keys = append(keys, e.Key)
		}
		return keys
	}
	assert.Equal(t, []int{1, 9}, keysOf(next[1]))
	assert.Equal(t, []int{5, 13}, keysOf(next[5]))
	assert.Equal(t, []int{2}, keysOf(next[2]))
	// the old store is left untouched
	assert.Equal(t, []int{1, 9, 5, 13}, keysOf(store[1]))
}

func TestBucketIndexOf(t *testing.T) {
	b := bucket[string, int]{NewEntry("a", 1), NewEntry("b", 2)}
	assert.Equal(t, 1, b.indexOf("b"))
	assert.Equal(t, -1, b.indexOf("c"))
}

func TestCloneIsDeep(t *testing.T) {
	store := newBucketStore[int, string](2)
	store.add(0, NewEntry(0, "zero"))

	c := store.clone()
	c[0][0].Value = "changed"
	assert.Equal(t, "zero", store[0][0].Value)
}
