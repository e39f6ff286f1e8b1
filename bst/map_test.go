package bst

import (
	"errors"
	"testing"
)

func intMap(t *testing.T, keys ...int) *Map[int, string] {
	t.Helper()
	m, err := New[int, string](Config[int]{Order: Natural[int]()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, k := range keys {
		m.Insert(k, "v")
	}
	return m
}

func keysOf(m *Map[int, string]) []int {
	var keys []int
	for k := range m.Keys() {
		keys = append(keys, k)
	}
	return keys
}

func sameKeys(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestInsertThenContains(t *testing.T) {
	m := intMap(t, 5, 3, 8, 1, 4, 7, 9)
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		if !m.Contains(k) {
			t.Errorf("expected Contains(%d) after insert", k)
		}
	}
	if m.Contains(6) {
		t.Errorf("Contains(6) should be false, 6 was never inserted")
	}
	if m.Len() != 7 {
		t.Fatalf("expected 7 entries, got %d", m.Len())
	}
	if err := m.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestInsertReplacesOnConflict(t *testing.T) {
	m := intMap(t)
	m.Insert(42, "first")
	m.Insert(42, "second")
	if m.Len() != 1 {
		t.Fatalf("expected one entry for key 42, got %d", m.Len())
	}
	v, err := m.Get(42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "second" {
		t.Fatalf("expected replaced value 'second', got %q", v)
	}
}

func TestGetMissingKeyFails(t *testing.T) {
	m := intMap(t, 5, 3, 8, 1, 4, 7, 9)
	_, err := m.Get(6)
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound for Get(6), got %v", err)
	}
	// a strict read must not have mutated the tree
	if m.Contains(6) || m.Len() != 7 {
		t.Fatalf("Get(6) mutated the map")
	}
}

func TestGetOnEmptyMapFails(t *testing.T) {
	m := intMap(t)
	if _, err := m.Get(1); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound on empty map, got %v", err)
	}
}

func TestAtVivifiesMissingKey(t *testing.T) {
	m := intMap(t, 5, 3, 8, 1, 4, 7, 9)
	v := m.At(6)
	if v == nil || *v != "" {
		t.Fatalf("expected vivified entry with zero value")
	}
	if !m.Contains(6) {
		t.Fatalf("expected Contains(6) after At(6)")
	}
	if m.Len() != 8 {
		t.Fatalf("expected 8 entries after vivification, got %d", m.Len())
	}
	if err := m.Check(); err != nil {
		t.Fatalf("invariant check failed after vivification: %v", err)
	}
}

func TestAtMutatesInPlace(t *testing.T) {
	m := intMap(t)
	m.Insert(1, "one")
	*m.At(1) = "uno"
	if v, _ := m.Get(1); v != "uno" {
		t.Fatalf("expected in-place mutation through At, got %q", v)
	}
	if m.Len() != 1 {
		t.Fatalf("At on an existing key must not add an entry")
	}
}

func TestAtOnEmptyMapCreatesRoot(t *testing.T) {
	m := intMap(t)
	*m.At(7) = "seven"
	if v, err := m.Get(7); err != nil || v != "seven" {
		t.Fatalf("expected root vivification, got %q (%v)", v, err)
	}
}

func TestDeleteLeaf(t *testing.T) {
	m := intMap(t, 5, 3, 8, 1, 4, 7, 9)
	m.Delete(1)
	if m.Contains(1) {
		t.Fatalf("expected Contains(1) to be false after delete")
	}
	if !sameKeys(keysOf(m), []int{3, 4, 5, 7, 8, 9}) {
		t.Fatalf("unexpected traversal after leaf delete: %v", keysOf(m))
	}
	if err := m.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestDeleteTwoChildNode(t *testing.T) {
	m := intMap(t, 5, 3, 8, 1, 4, 7, 9)
	m.Delete(5) // root with two children; promotes predecessor 4
	if m.Contains(5) {
		t.Fatalf("expected Contains(5) to be false after delete")
	}
	if got := keysOf(m); !sameKeys(got, []int{1, 3, 4, 7, 8, 9}) {
		t.Fatalf("unexpected traversal after two-child delete: %v", got)
	}
	if m.Len() != 6 {
		t.Fatalf("expected 6 entries, got %d", m.Len())
	}
	if err := m.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestDeleteRootImmediately(t *testing.T) {
	// regression guard: the target sitting at the root must be found
	// without a single descent step
	m := intMap(t, 10)
	m.Delete(10)
	if m.Contains(10) || !m.IsEmpty() {
		t.Fatalf("expected empty map after deleting the sole root")
	}
	if err := m.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestDeleteSingleChildChain(t *testing.T) {
	// a left-descending chain exercises the promotion cascade
	m := intMap(t, 9, 7, 5, 3, 1)
	m.Delete(7)
	if got := keysOf(m); !sameKeys(got, []int{1, 3, 5, 9}) {
		t.Fatalf("unexpected traversal after chain delete: %v", got)
	}
	if err := m.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestDeleteMissingKeyIsNoop(t *testing.T) {
	m := intMap(t, 5, 3, 8)
	m.Delete(6)
	if m.Len() != 3 {
		t.Fatalf("delete of missing key changed the map")
	}
	if m.Contains(6) {
		t.Fatalf("Contains(6) after no-op delete")
	}
}

func TestDeleteFromEmptyMapIsNoop(t *testing.T) {
	m := intMap(t)
	m.Delete(1) // must not panic
	if !m.IsEmpty() {
		t.Fatalf("empty map no longer empty after delete")
	}
}

func TestMinMax(t *testing.T) {
	m := intMap(t, 5, 3, 8, 1, 4, 7, 9)
	if k, _, err := m.Min(); err != nil || k != 1 {
		t.Fatalf("expected Min=1, got %d (%v)", k, err)
	}
	if k, _, err := m.Max(); err != nil || k != 9 {
		t.Fatalf("expected Max=9, got %d (%v)", k, err)
	}
}

func TestMinMaxOnEmptyMapFail(t *testing.T) {
	m := intMap(t)
	if _, _, err := m.Min(); !errors.Is(err, ErrEmptyMap) {
		t.Fatalf("expected ErrEmptyMap from Min, got %v", err)
	}
	if _, _, err := m.Max(); !errors.Is(err, ErrEmptyMap) {
		t.Fatalf("expected ErrEmptyMap from Max, got %v", err)
	}
}

func TestClear(t *testing.T) {
	m := intMap(t, 5, 3, 8, 1, 4, 7, 9)
	m.Clear()
	if !m.IsEmpty() || m.Len() != 0 {
		t.Fatalf("expected empty map after Clear")
	}
	if err := m.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
	m.Insert(2, "two") // map stays usable
	if !m.Contains(2) {
		t.Fatalf("expected map to be usable after Clear")
	}
}

func TestClearDegenerateChain(t *testing.T) {
	// a right-descending chain as deep as the map is large; Clear must not
	// recurse. The chain is threaded manually so the test does not pay the
	// quadratic insertion cost of a degenerate tree.
	m := intMap(t)
	const n = 500000
	m.root = &node[int, string]{key: 0}
	p := m.root
	for i := 1; i < n; i++ {
		p.right = &node[int, string]{key: i, parent: p}
		p = p.right
	}
	m.size = n
	m.Clear()
	if !m.IsEmpty() {
		t.Fatalf("expected empty map after clearing chain")
	}
}
