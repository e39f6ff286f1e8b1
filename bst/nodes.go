package bst

// node is a single entry of the tree. left and right point to exclusively
// owned subtrees; parent is a non-owning back-link used only for upward
// traversal, never for ownership decisions. parent is nil for the root.
type node[K, V any] struct {
	key    K
	val    V
	left   *node[K, V]
	right  *node[K, V]
	parent *node[K, V]
}

func (n *node[K, V]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// min returns the leftmost node of n's subtree, i.e. the one with the
// smallest key.
func (n *node[K, V]) min() *node[K, V] {
	assert(n != nil, "min called with nil node")
	for n.left != nil {
		n = n.left
	}
	return n
}

// max returns the rightmost node of n's subtree.
func (n *node[K, V]) max() *node[K, V] {
	assert(n != nil, "max called with nil node")
	for n.right != nil {
		n = n.right
	}
	return n
}

// succ returns n's in-order successor, walking child and parent links only.
// It returns nil if n holds the largest key of its tree.
//
// With a right subtree present the successor is that subtree's minimum.
// Otherwise we climb as long as we arrive from a right child; the first
// parent reached from a left child is the successor.
func (n *node[K, V]) succ() *node[K, V] {
	assert(n != nil, "succ called with nil node")
	if n.right != nil {
		return n.right.min()
	}
	for n.parent != nil && n == n.parent.right {
		n = n.parent
	}
	return n.parent
}
