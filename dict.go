package dicts

/*
BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"iter"

	"github.com/npillmayer/dicts/bst"
)

// ErrKeyNotFound re-exports the backend sentinel returned by strict reads,
// so clients of this package need not import the backend for errors.Is.
var ErrKeyNotFound = bst.ErrKeyNotFound

// Dict is the capability of an ordered dictionary.
//
// Implementations keep at most one entry per distinct key and enumerate
// entries in ascending key order. bst.Map is the canonical implementation;
// the interface exists so balanced backends remain substitutable.
type Dict[K, V any] interface {
	// Contains reports whether key has an entry.
	Contains(key K) bool
	// Insert stores value under key, replacing an existing entry's value.
	Insert(key K, value V)
	// Delete removes the entry for key; missing keys are a no-op.
	Delete(key K)
	// Get strictly reads the value for key, failing with ErrKeyNotFound.
	Get(key K) (V, error)
	// At returns a mutable reference to key's value, vivifying a zero-valued
	// entry for a missing key.
	At(key K) *V
	// Len returns the number of entries.
	Len() int
	// Keys enumerates keys in ascending order.
	Keys() iter.Seq[K]
	// All enumerates entries in ascending key order.
	All() iter.Seq2[K, V]
}

// Map is an ordered dictionary for naturally ordered key types, wrapping
// the BST backend with Go's built-in < and == relations. Create one with
// NewMap or Collect.
type Map[K cmp.Ordered, V any] struct {
	*bst.Map[K, V]
}

var _ Dict[int, string] = Map[int, string]{}

// NewMap creates an empty dictionary with natural key ordering.
func NewMap[K cmp.Ordered, V any]() Map[K, V] {
	m, err := bst.New[K, V](bst.Config[K]{Order: bst.Natural[K]()})
	assertOK(err)
	return Map[K, V]{m}
}

// Collect builds a dictionary from a key/value sequence, e.g. from
// maps.All, replacing on duplicate keys.
func Collect[K cmp.Ordered, V any](seq iter.Seq2[K, V]) Map[K, V] {
	m := NewMap[K, V]()
	for k, v := range seq {
		m.Insert(k, v)
	}
	return m
}

// assertOK guards against failures which cannot occur for natural orderings.
func assertOK(err error) {
	if err != nil {
		T().Errorf("dicts: %s", err.Error())
		panic(err)
	}
}
