package gollowmap

// Builds a default table from parallel key and value slices. A key that
// appears more than once keeps the value of its last occurrence.
func NewFromSlices[K comparable, V any](keys []K, values []V, hasher Hasher[K]) (*Table[K, V], error) {
	if len(keys) != len(values) {
		return nil, &ConfigError{Reason: "keys and values differ in length"}
	}

	table, err := NewWithOption[K, V](NewTableOption(), hasher)
	if err != nil {
		return nil, err
	}
	for i, key := range keys {
		table.put(key, values[i])
	}
	return table, nil
}

// insert or overwrite in place
func (v *Table[K, V]) put(key K, value V) {
	index, slot := v.locate(key)
	if slot >= 0 {
		v.buckets[index][slot].Value = value
		v.generation++
		return
	}
	v.Insert(key, value)
}

// Equal reports whether two tables with comparable values hold the same
// entries under the same bounds and capacity.
func Equal[K comparable, V comparable](a, b *Table[K, V]) bool {
	return a.EqualFunc(b, func(x, y V) bool { return x == y })
}
