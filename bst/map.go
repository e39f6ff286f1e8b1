package bst

// Map is an ordered dictionary over an unbalanced binary search tree.
//
// A map exclusively owns its node graph: no node is ever shared between two
// live maps, and Clone produces a fully independent graph. Map is not safe
// for concurrent use; clients extending it to concurrent access must guard
// every operation, reads included, with a single external lock.
//
// Create maps with New; the zero value has no ordering and is not usable.
type Map[K, V any] struct {
	cfg  Config[K]
	root *node[K, V]
	size int
}

// New creates an empty map with validated configuration.
func New[K, V any](cfg Config[K]) (*Map[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Map[K, V]{cfg: cfg}, nil
}

// Config returns a copy of the effective map configuration.
func (m *Map[K, V]) Config() Config[K] {
	return m.cfg
}

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m == nil || m.root == nil
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.size
}

// locate returns the node holding key, or nil if no such node exists.
// Pure walk, never mutates.
func (m *Map[K, V]) locate(key K) *node[K, V] {
	p := m.root
	for p != nil {
		if m.cfg.Order.Equal(key, p.key) {
			return p
		}
		if m.cfg.Order.Less(key, p.key) {
			p = p.left
		} else {
			p = p.right
		}
	}
	return nil
}

// vivify returns the node holding key, creating and threading in a new node
// with a zero value if the key has no entry yet.
func (m *Map[K, V]) vivify(key K) (n *node[K, V], created bool) {
	if m.root == nil {
		m.root = &node[K, V]{key: key}
		m.size++
		return m.root, true
	}
	p := m.root
	for {
		if m.cfg.Order.Equal(key, p.key) {
			return p, false
		}
		if m.cfg.Order.Less(key, p.key) {
			if p.left == nil {
				p.left = &node[K, V]{key: key, parent: p}
				m.size++
				return p.left, true
			}
			p = p.left
		} else {
			if p.right == nil {
				p.right = &node[K, V]{key: key, parent: p}
				m.size++
				return p.right, true
			}
			p = p.right
		}
	}
}

// Contains reports whether key has an entry in the map.
func (m *Map[K, V]) Contains(key K) bool {
	if m.IsEmpty() {
		return false
	}
	return m.locate(key) != nil
}

// Get returns the value stored for key.
//
// Get is a strict read: it never mutates the map and never fabricates a
// value. A missing key yields ErrKeyNotFound.
func (m *Map[K, V]) Get(key K) (V, error) {
	var zero V
	if m.IsEmpty() {
		return zero, ErrKeyNotFound
	}
	n := m.locate(key)
	if n == nil {
		return zero, ErrKeyNotFound
	}
	return n.val, nil
}

// At returns a pointer to the value stored for key, for in-place mutation.
//
// At auto-vivifies: a missing key gets a fresh entry with a zero value, and
// the returned pointer addresses that new entry. Callers wanting a pure read
// must use Get, or guard At with Contains. The returned pointer is only
// valid until the entry is deleted.
func (m *Map[K, V]) At(key K) *V {
	n, created := m.vivify(key)
	if created {
		tracer().Debugf("bst: At(%v) vivified a new entry", key)
	}
	return &n.val
}

// Insert stores value under key, replacing the value of an existing entry.
//
// After Insert exactly one entry exists for key. A replaced entry keeps its
// node and key identity; only the value changes.
func (m *Map[K, V]) Insert(key K, value V) {
	n, _ := m.vivify(key)
	n.val = value
}

// Delete removes the entry for key. Deleting a missing key, or deleting from
// an empty map, is a no-op.
//
// A leaf target is detached from its parent slot. A target with children
// cannot be unlinked without breaking the ordering; instead the in-order
// predecessor (maximum of the left subtree) or, lacking a left child, the
// in-order successor (minimum of the right subtree) is removed from the tree
// and its key/value pair is promoted into the target node. The inner
// removal walks a strictly smaller subtree, so the promotion chain is
// bounded by tree height.
func (m *Map[K, V]) Delete(key K) {
	if m.IsEmpty() {
		return
	}
	// Track the parent's child slot so detaching needs no second walk.
	// "Found" is decided by the slot content alone, independent of how many
	// iterations the search took.
	slot := &m.root
	for *slot != nil && !m.cfg.Order.Equal(key, (*slot).key) {
		if m.cfg.Order.Less(key, (*slot).key) {
			slot = &(*slot).left
		} else {
			slot = &(*slot).right
		}
	}
	target := *slot
	if target == nil {
		return
	}
	if target.isLeaf() {
		*slot = nil
		target.parent = nil
		m.size--
		return
	}
	var repl *node[K, V]
	if target.left != nil {
		repl = target.left.max()
	} else {
		repl = target.right.min()
	}
	promotedKey, promotedVal := repl.key, repl.val
	m.Delete(promotedKey)
	target.key = promotedKey
	target.val = promotedVal
}

// Min returns the smallest key and its value.
func (m *Map[K, V]) Min() (K, V, error) {
	if m.IsEmpty() {
		var k K
		var v V
		return k, v, ErrEmptyMap
	}
	n := m.root.min()
	return n.key, n.val, nil
}

// Max returns the largest key and its value.
func (m *Map[K, V]) Max() (K, V, error) {
	if m.IsEmpty() {
		var k K
		var v V
		return k, v, ErrEmptyMap
	}
	n := m.root.max()
	return n.key, n.val, nil
}

// Clear removes all entries.
//
// Links are unthreaded iteratively with an explicit work list: deep or
// degenerate (near-linear) trees must not exhaust the call stack, and
// severing the links makes the graph collectable even while stale cursors
// still hold single nodes.
func (m *Map[K, V]) Clear() {
	if m == nil || m.root == nil {
		return
	}
	worklist := []*node[K, V]{m.root}
	for len(worklist) > 0 {
		n := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		if n.left != nil {
			worklist = append(worklist, n.left)
		}
		if n.right != nil {
			worklist = append(worklist, n.right)
		}
		n.left, n.right, n.parent = nil, nil, nil
	}
	m.root = nil
	m.size = 0
}
