package gollowmap

import (
	"slices"

	"github.com/golang-collections/collections/queue"
)

// entries sharing a bucket index, in insertion order
type bucket[K comparable, V any] []Entry[K, V]

// returns the slot holding key, or -1
func (b bucket[K, V]) indexOf(key K) int {
	for i := range b {
		if b[i].Key == key {
			return i
		}
	}
	return -1
}

// fixed array of buckets, its length is the table capacity
type bucketStore[K comparable, V any] []bucket[K, V]

func newBucketStore[K comparable, V any](capacity int) bucketStore[K, V] {
	return make(bucketStore[K, V], capacity)
}

// capacity is a power of two so the mask equals hash mod capacity
func (s bucketStore[K, V]) indexFor(hash uint64) int {
	return int(hash & uint64(len(s)-1))
}

func (s bucketStore[K, V]) add(index int, entry Entry[K, V]) {
	s[index] = append(s[index], entry)
}

func (s bucketStore[K, V]) remove(index int, slot int) {
	s[index] = slices.Delete(s[index], slot, slot+1)
}

func (s bucketStore[K, V]) reset() {
	for i := range s {
		clear(s[i])
		s[i] = s[i][:0]
	}
}

func (s bucketStore[K, V]) clone() bucketStore[K, V] {
	c := make(bucketStore[K, V], len(s))
	for i, b := range s {
		if len(b) > 0 {
			c[i] = slices.Clone(b)
		}
	}
	return c
}

// Moves every entry into a fresh store of the given capacity. Entries are
// staged in bucket then slot order so relative order is kept inside each
// destination bucket. O(n)
func (s bucketStore[K, V]) rehash(capacity int, hasher Hasher[K]) bucketStore[K, V] {
	// FIFO staging: entries leave the queue in traversal order, so entries
	// landing in the same destination bucket keep their relative order
	pending := queue.New()
	for _, b := range s {
		for _, entry := range b {
			pending.Enqueue(entry)
		}
	}

	next := newBucketStore[K, V](capacity)
	for pending.Len() > 0 {
		entry := pending.Dequeue().(Entry[K, V])
		next.add(next.indexFor(hasher(entry.Key)), entry)
	}
	return next
}
