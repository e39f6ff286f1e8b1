package bst

// Cursor is a position in a map's in-order key sequence.
//
// A cursor references its current node directly; the past-the-end position
// is represented by an exhausted cursor (Done reports true). Cursors are
// cheap and single-pass: each Begin call restarts from the minimum key.
//
// Cursors are invalidated by structural mutation (Insert of a new key,
// Delete, Clear) touching the current node or one of its ancestors; the map
// gives no stability guarantee across such mutations.
type Cursor[K, V any] struct {
	cur *node[K, V]
}

// Begin returns a cursor at the map's smallest key. On an empty map the
// cursor is already done.
func (m *Map[K, V]) Begin() *Cursor[K, V] {
	if m.IsEmpty() {
		return &Cursor[K, V]{}
	}
	return &Cursor[K, V]{cur: m.root.min()}
}

// BeginAt returns a cursor positioned at key's entry, resuming in-order
// iteration mid-sequence. The cursor is done if key has no entry.
func (m *Map[K, V]) BeginAt(key K) *Cursor[K, V] {
	if m.IsEmpty() {
		return &Cursor[K, V]{}
	}
	return &Cursor[K, V]{cur: m.locate(key)}
}

// End returns the past-the-end cursor.
func (m *Map[K, V]) End() *Cursor[K, V] {
	return &Cursor[K, V]{}
}

// Done reports whether the cursor moved past the last entry.
func (c *Cursor[K, V]) Done() bool {
	return c == nil || c.cur == nil
}

// Key returns the key at the cursor position. The cursor must not be done.
func (c *Cursor[K, V]) Key() K {
	assert(!c.Done(), "Key called on exhausted cursor")
	return c.cur.key
}

// Value returns the value at the cursor position. The cursor must not be done.
func (c *Cursor[K, V]) Value() V {
	assert(!c.Done(), "Value called on exhausted cursor")
	return c.cur.val
}

// Next advances the cursor to the in-order successor and reports whether an
// entry remains. Advancing an already exhausted cursor is a contract
// violation and panics.
func (c *Cursor[K, V]) Next() bool {
	assert(!c.Done(), "Next called on exhausted cursor")
	c.cur = c.cur.succ()
	return c.cur != nil
}

// EqualTo reports whether two cursors reference the same entry, or are both
// past the end.
func (c *Cursor[K, V]) EqualTo(other *Cursor[K, V]) bool {
	if c.Done() || other.Done() {
		return c.Done() && other.Done()
	}
	return c.cur == other.cur
}
