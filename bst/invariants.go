package bst

import "fmt"

// Check validates structural map invariants.
//
// This checker is intentionally strict and should be used in tests while the
// implementation is evolving. It verifies parent back-link consistency, the
// BST ordering of every node against its ancestor bounds, agreement of the
// Less and Equal predicates along parent/child edges, and the maintained
// entry count.
func (m *Map[K, V]) Check() error {
	if m == nil {
		return fmt.Errorf("%w: nil map", ErrInvalidConfig)
	}
	if err := m.cfg.validate(); err != nil {
		return err
	}
	if m.root == nil {
		if m.size != 0 {
			return fmt.Errorf("%w: empty map must have size=0, has %d", ErrInvalidConfig, m.size)
		}
		return nil
	}
	if m.root.parent != nil {
		return fmt.Errorf("%w: root must not have a parent link", ErrInvalidConfig)
	}
	count, err := m.checkNode(m.root, nil, nil)
	if err != nil {
		return err
	}
	if count != m.size {
		return fmt.Errorf("%w: size mismatch (%d != %d)", ErrInvalidConfig, count, m.size)
	}
	return nil
}

// checkNode validates n's subtree against the open key interval (lo, hi),
// where a nil bound means unbounded.
func (m *Map[K, V]) checkNode(n *node[K, V], lo, hi *K) (count int, err error) {
	assert(n != nil, "checkNode called with nil node")
	if lo != nil && !m.cfg.Order.Less(*lo, n.key) {
		return 0, fmt.Errorf("%w: key %v violates lower bound %v", ErrInvalidConfig, n.key, *lo)
	}
	if hi != nil && (m.cfg.Order.Less(*hi, n.key) || m.cfg.Order.Equal(*hi, n.key)) {
		return 0, fmt.Errorf("%w: key %v violates upper bound %v", ErrInvalidConfig, n.key, *hi)
	}
	count = 1
	for _, child := range []*node[K, V]{n.left, n.right} {
		if child == nil {
			continue
		}
		if child.parent != n {
			return 0, fmt.Errorf("%w: broken parent link at key %v", ErrInvalidConfig, child.key)
		}
		if m.cfg.Order.Equal(child.key, n.key) {
			return 0, fmt.Errorf("%w: duplicate key %v", ErrInvalidConfig, child.key)
		}
		var sub int
		if child == n.left {
			if !m.cfg.Order.Less(child.key, n.key) {
				return 0, fmt.Errorf("%w: left child %v not less than %v", ErrInvalidConfig, child.key, n.key)
			}
			sub, err = m.checkNode(child, lo, &n.key)
		} else {
			if m.cfg.Order.Less(child.key, n.key) {
				return 0, fmt.Errorf("%w: right child %v less than %v", ErrInvalidConfig, child.key, n.key)
			}
			sub, err = m.checkNode(child, &n.key, hi)
		}
		if err != nil {
			return 0, err
		}
		count += sub
	}
	return count, nil
}
