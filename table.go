/*
*	Copyright (c) 2023
*	John's Page All rights reserved.
*
*	Redistribution and use in source and binary forms, with or without
*	modification, are permitted provided that the following conditions
*	are met:
*
*	Redistributions of source code must retain the above copyright notice,
*	this list of conditions and the following disclaimer.
*
*	THIS SOFTWARE IS PROVIDED BY [Name of Organization] “AS IS” AND ANY EXPRESS
*	OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE IMPLIED WARRANTIES
*	OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO
*	EVENT SHALL [Name of Organisation] BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
*	SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO,
*	PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS;
*	OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER
*	IN CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
*	ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY
*	OF SUCH DAMAGE.
 */
package gollowmap

import (
	"fmt"
	"iter"
)

// Table is a separate chaining hash table. It grows (doubles) when the load
// factor rises above the upper bound and shrinks (halves) when it falls below
// the lower bound, never below its initial capacity.
//
// A Table is not safe for concurrent use. Pointers returned by At and
// GetOrInsertDefault, and every Cursor, are only valid until the next
// mutation.
type Table[K comparable, V any] struct {
	EnhancedIterator[Entry[K, V]]
	buckets     bucketStore[K, V]
	size        int
	lowerBound  float64
	upperBound  float64
	minCapacity int
	hasher      Hasher[K]
	generation  uint64
}

// Creates a table with the default bounds (0.25, 0.75) and capacity 16.
// Panics if hasher is nil.
func New[K comparable, V any](hasher Hasher[K]) *Table[K, V] {
	table, err := NewWithOption[K, V](NewTableOption(), hasher)
	if err != nil {
		panic(err)
	}
	return table
}

// Creates a table with capacity 16 and the given load factor bounds.
func NewWithBounds[K comparable, V any](lowerBound float64, upperBound float64, hasher Hasher[K]) (*Table[K, V], error) {
	option := NewTableOption()
	option.SetBounds(lowerBound, upperBound)
	return NewWithOption[K, V](option, hasher)
}

func NewWithOption[K comparable, V any](option *TableOption, hasher Hasher[K]) (*Table[K, V], error) {
	if err := option.Validate(); err != nil {
		return nil, err
	}
	if hasher == nil {
		return nil, &ConfigError{Reason: "a hasher is required"}
	}

	table := &Table[K, V]{
		buckets:     newBucketStore[K, V](option.InitialCapacity),
		lowerBound:  option.LowerBound,
		upperBound:  option.UpperBound,
		minCapacity: option.InitialCapacity,
		hasher:      hasher,
	}
	table.base = table
	return table, nil
}

func (v *Table[K, V]) Size() int {
	return v.size
}

func (v *Table[K, V]) Capacity() int {
	return len(v.buckets)
}

func (v *Table[K, V]) IsEmpty() bool {
	return v.size == 0
}

func (v *Table[K, V]) LoadFactor() float64 {
	return float64(v.size) / float64(len(v.buckets))
}

func (v *Table[K, V]) LowerBound() float64 {
	return v.lowerBound
}

func (v *Table[K, V]) UpperBound() float64 {
	return v.upperBound
}

// bucket index and slot of key, slot is -1 when absent
func (v *Table[K, V]) locate(key K) (int, int) {
	index := v.buckets.indexFor(v.hasher(key))
	return index, v.buckets[index].indexOf(key)
}

func (v *Table[K, V]) ContainsKey(key K) bool {
	_, slot := v.locate(key)
	return slot >= 0
}

// Adds key with value. Returns false and leaves the table untouched when the
// key is already present. O(1) amortized
func (v *Table[K, V]) Insert(key K, value V) bool {
	index, slot := v.locate(key)
	if slot >= 0 {
		return false
	}

	v.buckets.add(index, NewEntry(key, value))
	v.size++
	v.generation++

	if v.LoadFactor() > v.upperBound {
		v.resize(len(v.buckets) * 2)
	}
	return true
}

// Removes key. Returns false when the key is absent. O(1) amortized
func (v *Table[K, V]) Erase(key K) bool {
	index, slot := v.locate(key)
	if slot < 0 {
		return false
	}

	v.buckets.remove(index, slot)
	v.size--
	v.generation++

	if v.LoadFactor() < v.lowerBound && len(v.buckets)/2 >= v.minCapacity {
		v.resize(len(v.buckets) / 2)
	}
	return true
}

// Empties every bucket. Capacity and bounds are kept.
func (v *Table[K, V]) Clear() {
	v.buckets.reset()
	v.size = 0
	v.generation++
}

func (v *Table[K, V]) resize(capacity int) {
	v.buckets = v.buckets.rehash(capacity, v.hasher)
	v.generation++
}

// Returns a pointer to the value stored for key, through which the value can
// be modified in place.
func (v *Table[K, V]) At(key K) (*V, error) {
	index, slot := v.locate(key)
	if slot < 0 {
		return nil, &KeyNotFoundError{Key: key}
	}
	return &v.buckets[index][slot].Value, nil
}

// Returns a copy of the value stored for key.
func (v *Table[K, V]) GetOrFail(key K) (V, error) {
	index, slot := v.locate(key)
	if slot < 0 {
		var zero V
		return zero, &KeyNotFoundError{Key: key}
	}
	return v.buckets[index][slot].Value, nil
}

// Returns a pointer to the value stored for key, inserting the zero value
// first when the key is absent. Never fails.
func (v *Table[K, V]) GetOrInsertDefault(key K) *V {
	index, slot := v.locate(key)
	if slot < 0 {
		var zero V
		v.Insert(key, zero)
		// the insert may have resized
		index, slot = v.locate(key)
	}
	return &v.buckets[index][slot].Value
}

// Number of entries sharing the bucket of key.
func (v *Table[K, V]) BucketLength(key K) (int, error) {
	index, slot := v.locate(key)
	if slot < 0 {
		return 0, &KeyNotFoundError{Key: key}
	}
	return len(v.buckets[index]), nil
}

// Deep copies the bucket store. Values are copied with plain assignment.
func (v *Table[K, V]) Clone() *Table[K, V] {
	clone := &Table[K, V]{
		buckets:     v.buckets.clone(),
		size:        v.size,
		lowerBound:  v.lowerBound,
		upperBound:  v.upperBound,
		minCapacity: v.minCapacity,
		hasher:      v.hasher,
	}
	clone.base = clone
	return clone
}

// Reports whether both tables have the same bounds, size and capacity and
// every entry of v sits in the same bucket of other with an equal value.
// Order inside a bucket does not matter. Both tables are expected to use the
// same hasher.
func (v *Table[K, V]) EqualFunc(other *Table[K, V], eq func(V, V) bool) bool {
	if v == other {
		return true
	}
	if other == nil || v == nil {
		return false
	}
	if v.lowerBound != other.lowerBound || v.upperBound != other.upperBound ||
		v.size != other.size || len(v.buckets) != len(other.buckets) {
		return false
	}

	for i, b := range v.buckets {
		for _, entry := range b {
			slot := other.buckets[i].indexOf(entry.Key)
			if slot < 0 || !eq(entry.Value, other.buckets[i][slot].Value) {
				return false
			}
		}
	}
	return true
}

// All walks the entries in bucket then slot order.
func (v *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for c := v.Begin(); !c.Done(); c.Next() {
			entry := c.Entry()
			if !yield(entry.Key, entry.Value) {
				return
			}
		}
	}
}

func (v *Table[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for c := v.Begin(); !c.Done(); c.Next() {
			if !yield(c.Entry().Key) {
				return
			}
		}
	}
}

// returns an iterator over the table entries
func (v *Table[K, V]) GetIterator() IteratorBase[Entry[K, V]] {
	return &TableIterator[K, V]{cursor: v.Begin()}
}

func (v *Table[K, V]) String() string {
	return fmt.Sprintf("Table{size: %d, capacity: %d, loadFactor: %.4f}", v.size, len(v.buckets), v.LoadFactor())
}
