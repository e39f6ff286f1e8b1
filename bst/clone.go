package bst

// Clone returns a deep structural copy: fresh nodes with the same keys,
// values and shape, with parent links recomputed to point only within the
// copy. The clone and the receiver are fully independent afterwards.
//
// The copy walks an explicit work list of (source, copy) pairs rather than
// recursing, for the same reason Clear does: a degenerate tree is as deep
// as it is large.
func (m *Map[K, V]) Clone() *Map[K, V] {
	if m == nil {
		return nil
	}
	out := &Map[K, V]{cfg: m.cfg, size: m.size}
	if m.root == nil {
		return out
	}
	out.root = &node[K, V]{key: m.root.key, val: m.root.val}
	type pair struct {
		src *node[K, V]
		dst *node[K, V]
	}
	worklist := []pair{{m.root, out.root}}
	for len(worklist) > 0 {
		p := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		if p.src.left != nil {
			p.dst.left = &node[K, V]{key: p.src.left.key, val: p.src.left.val, parent: p.dst}
			worklist = append(worklist, pair{p.src.left, p.dst.left})
		}
		if p.src.right != nil {
			p.dst.right = &node[K, V]{key: p.src.right.key, val: p.src.right.val, parent: p.dst}
			worklist = append(worklist, pair{p.src.right, p.dst.right})
		}
	}
	return out
}

// Move transfers the receiver's entries to a fresh map in O(1) and leaves
// the receiver empty. No nodes are copied or shared.
func (m *Map[K, V]) Move() *Map[K, V] {
	out := &Map[K, V]{cfg: m.cfg, root: m.root, size: m.size}
	m.root = nil
	m.size = 0
	return out
}

// Swap exchanges the complete state of two maps in O(1). Either map ends up
// owning exactly the node graph the other owned before.
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	if m == other {
		return
	}
	*m, *other = *other, *m
}
