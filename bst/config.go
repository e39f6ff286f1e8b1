package bst

import (
	"cmp"
	"fmt"
)

// Ordering defines the key relations a map is built on.
//
// Less and Equal are separate predicates and must agree: whenever
// Equal(a, b) holds, neither Less(a, b) nor Less(b, a) may hold.
// Equality is deliberately not derived from Less, so key types with a
// partial or non-strict order surface their inconsistency in Check
// rather than silently corrupting lookups.
type Ordering[K any] struct {
	Less  func(a, b K) bool
	Equal func(a, b K) bool
}

// Natural returns the ordering induced by Go's built-in < and == operators.
func Natural[K cmp.Ordered]() Ordering[K] {
	return Ordering[K]{
		Less:  func(a, b K) bool { return a < b },
		Equal: func(a, b K) bool { return a == b },
	}
}

// Config configures a BST-backed ordered map.
type Config[K any] struct {
	// Order supplies the key relations for this map.
	Order Ordering[K]
}

func (cfg Config[K]) normalized() Config[K] {
	return cfg
}

func (cfg Config[K]) validate() error {
	cfg = cfg.normalized()
	if cfg.Order.Less == nil {
		return fmt.Errorf("%w: Less predicate is required", ErrInvalidConfig)
	}
	if cfg.Order.Equal == nil {
		return fmt.Errorf("%w: Equal predicate is required", ErrInvalidConfig)
	}
	return nil
}
