/*
Package bst provides an ordered dictionary backed by an unbalanced binary
search tree.

The package is intentionally not a drop-in replacement for Go's built-in maps.
It is specialized for key-ordered storage with cheap in-order traversal: nodes
carry parent back-links, so iteration needs neither an explicit stack nor a
snapshot of the tree. The tree performs no rebalancing; operations are
O(height), which degrades to O(n) for adversarial insertion orders. Clients
needing guaranteed logarithmic behavior should substitute a balanced backend
behind the dicts.Dict interface.

Current status:
  - node graph with left/right child links and non-owning parent links,
  - configurable ordering as a pair of predicates (Less, Equal),
  - replace-on-conflict insert and strict (non-mutating) reads,
  - auto-vivifying mutable access (At),
  - deletion by predecessor/successor promotion,
  - cursor-based in-order traversal plus iter.Seq adapters,
  - deep structural clone and O(1) move/swap,
  - structural invariant checker (Check),
  - diagnostic text/DOT/console dumps.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package bst

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dicts'
func tracer() tracing.Trace {
	return tracing.Select("dicts")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
