package gollowmap

// Cursor is a read-only forward position in a Table: a bucket index and a
// slot inside that bucket. The end position is (capacity, 0).
//
// A cursor does not own its table. Any Insert, Erase, Clear or resize of the
// table invalidates it, and Next or Entry on an invalidated cursor panics
// with ErrCursorInvalidated.
type Cursor[K comparable, V any] struct {
	table      *Table[K, V]
	bucket     int
	slot       int
	generation uint64
}

// Begin returns a cursor on the first entry, or End when the table is empty.
func (v *Table[K, V]) Begin() Cursor[K, V] {
	c := Cursor[K, V]{table: v, generation: v.generation}
	c.skipEmpty()
	return c
}

func (v *Table[K, V]) End() Cursor[K, V] {
	return Cursor[K, V]{table: v, bucket: len(v.buckets), generation: v.generation}
}

// moves forward until a non-empty bucket or the end
func (c *Cursor[K, V]) skipEmpty() {
	buckets := c.table.buckets
	for c.bucket < len(buckets) && len(buckets[c.bucket]) == 0 {
		c.bucket++
	}
}

func (c *Cursor[K, V]) checkValid() {
	if c.generation != c.table.generation {
		panic(ErrCursorInvalidated)
	}
}

// Next advances to the following entry. At the end it is a no-op.
func (c *Cursor[K, V]) Next() {
	c.checkValid()
	if c.Done() {
		return
	}

	if c.slot == len(c.table.buckets[c.bucket])-1 {
		c.bucket++
		c.slot = 0
		c.skipEmpty()
		return
	}
	c.slot++
}

// Entry returns the entry under the cursor. Panics at the end position.
func (c Cursor[K, V]) Entry() Entry[K, V] {
	c.checkValid()
	if c.Done() {
		panic("Cursor: Entry called at the end position")
	}
	return c.table.buckets[c.bucket][c.slot]
}

func (c Cursor[K, V]) Done() bool {
	return c.bucket >= len(c.table.buckets)
}

// Equal reports whether both cursors point to the same position of the same
// table.
func (c Cursor[K, V]) Equal(other Cursor[K, V]) bool {
	return c.table == other.table && c.bucket == other.bucket && c.slot == other.slot
}

// Adapts a Cursor to the MoveNext/GetCurrent protocol
type TableIterator[K comparable, V any] struct {
	cursor  Cursor[K, V]
	started bool
}

func (i *TableIterator[K, V]) MoveNext() bool {
	if !i.started {
		i.started = true
		i.cursor.checkValid()
		return !i.cursor.Done()
	}
	if i.cursor.Done() {
		return false
	}
	i.cursor.Next()
	return !i.cursor.Done()
}

func (i *TableIterator[K, V]) GetCurrent() Entry[K, V] {
	if !i.started || i.cursor.Done() {
		panic("Iterator: No more items left or the first MoveNext() is called")
	}
	return i.cursor.Entry()
}
