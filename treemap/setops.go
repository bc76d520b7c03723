package treemap

import "jsouthworth.net/go/avl"

// Binary operations between maps. Each one first verifies that both
// maps were built under the same comparator identity and fails with an
// *avl.MismatchError otherwise; silently using one side's ordering
// would break the other side's sortedness invariant.

func (m *Map[K, V]) check(other *Map[K, V]) error {
	if !m.cmp.Same(other.cmp) {
		return &avl.MismatchError{
			A: m.cmp.Identity,
			B: other.cmp.Identity,
		}
	}
	return nil
}

// Union returns a map holding the entries of both maps. When a key is
// present on both sides its value is onConflict(key, value in m,
// value in other).
//
// Complexity: O(min(n,m) * log(max(n,m)/min(n,m)+1))
func (m *Map[K, V]) Union(other *Map[K, V], onConflict func(key K, a, b V) V) (*Map[K, V], error) {
	if err := m.check(other); err != nil {
		return nil, err
	}
	root := m.root.Union(m.cmp.Compare, other.root, onConflict)
	return &Map[K, V]{root: root, cmp: m.cmp}, nil
}

// Intersect returns a map holding the keys present in both maps, each
// with value combine(key, value in m, value in other).
func (m *Map[K, V]) Intersect(other *Map[K, V], combine func(key K, a, b V) V) (*Map[K, V], error) {
	if err := m.check(other); err != nil {
		return nil, err
	}
	root := m.root.Intersect(m.cmp.Compare, other.root, combine)
	return &Map[K, V]{root: root, cmp: m.cmp}, nil
}

// Difference returns a map holding the entries of m whose keys are not
// present in other.
func (m *Map[K, V]) Difference(other *Map[K, V]) (*Map[K, V], error) {
	if err := m.check(other); err != nil {
		return nil, err
	}
	root := m.root.Difference(m.cmp.Compare, other.root)
	if root == m.root {
		return m, nil
	}
	return &Map[K, V]{root: root, cmp: m.cmp}, nil
}

// Equal tests if two maps hold the same entries, comparing keys with
// the shared comparator and values with valueEq.
func (m *Map[K, V]) Equal(other *Map[K, V], valueEq func(a, b V) bool) (bool, error) {
	if err := m.check(other); err != nil {
		return false, err
	}
	if m.Len() != other.Len() {
		return false, nil
	}
	ai := m.Iterator()
	bi := other.Iterator()
	for ai.HasNext() {
		ak, av := ai.Next()
		bk, bv := bi.Next()
		if m.cmp.Compare(ak, bk) != 0 || !valueEq(av, bv) {
			return false, nil
		}
	}
	return true, nil
}

// Compare orders two maps entry-wise: keys through the shared
// comparator, then values through valueCmp, with a map that is a
// strict prefix of the other ordering first.
func (m *Map[K, V]) Compare(other *Map[K, V], valueCmp func(a, b V) int) (int, error) {
	if err := m.check(other); err != nil {
		return 0, err
	}
	ai := m.Iterator()
	bi := other.Iterator()
	for ai.HasNext() && bi.HasNext() {
		ak, av := ai.Next()
		bk, bv := bi.Next()
		if c := m.cmp.Compare(ak, bk); c != 0 {
			return c, nil
		}
		if c := valueCmp(av, bv); c != 0 {
			return c, nil
		}
	}
	switch {
	case ai.HasNext():
		return 1, nil
	case bi.HasNext():
		return -1, nil
	default:
		return 0, nil
	}
}
