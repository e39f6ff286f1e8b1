package bst

import "iter"

// ForEach walks entries in ascending key order.
//
// Iteration stops early if callback returns false.
func (m *Map[K, V]) ForEach(fn func(key K, value V) bool) {
	if m.IsEmpty() || fn == nil {
		return
	}
	for n := m.root.min(); n != nil; n = n.succ() {
		if !fn(n.key, n.val) {
			return
		}
	}
}

// Keys returns the keys in ascending order as a range-over function.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		m.ForEach(func(key K, _ V) bool {
			return yield(key)
		})
	}
}

// All returns the entries in ascending key order as a range-over function.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.ForEach(yield)
	}
}
