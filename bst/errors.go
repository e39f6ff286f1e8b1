package bst

import "errors"

var (
	// ErrInvalidConfig signals an invalid map configuration.
	ErrInvalidConfig = errors.New("bst: invalid configuration")
	// ErrKeyNotFound signals a strict read for a key without an entry.
	ErrKeyNotFound = errors.New("bst: key not found")
	// ErrEmptyMap signals an operation that requires at least one entry.
	ErrEmptyMap = errors.New("bst: map is empty")
)
