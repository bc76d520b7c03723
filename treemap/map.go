// Package treemap implements a persistent ordered map: a balanced
// search tree bundled with the Comparator it was built under. Every
// tree operation is re-exposed without a comparator argument, and
// every operation combining two maps first checks that both were built
// under the same ordering.
package treemap

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"jsouthworth.net/go/avl"
)

// Map is a persistent immutable ordered map. Operations on a Map
// return a new Map that shares its comparator and much of its
// structure with the original.
type Map[K, V any] struct {
	root *avl.Tree[K, V]
	cmp  avl.Comparator[K]
}

// Empty returns an empty map ordered by c.
func Empty[K, V any](c avl.Comparator[K]) *Map[K, V] {
	return &Map[K, V]{cmp: c}
}

// New returns an empty map over the key type's natural ordering. Maps
// built this way always share one comparator identity, so combining
// them can never fail with a mismatch.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return Empty[K, V](avl.Natural[K]())
}

// Comparator returns the ordering the map was built under.
func (m *Map[K, V]) Comparator() avl.Comparator[K] {
	return m.cmp
}

// Tree returns the bare tree holding the map's entries. The tree
// carries no comparator, so it is safe to hand to code that walks
// or serializes plain node data.
func (m *Map[K, V]) Tree() *avl.Tree[K, V] {
	return m.root
}

// FromTree rebuilds a map from a bare tree, for example one
// reconstructed by a deserializer. The tree's ordering invariant is
// re-validated under c; a tree ordered differently fails with an
// *avl.UnsortedError rather than producing a map whose lookups
// silently miss.
func FromTree[K, V any](t *avl.Tree[K, V], c avl.Comparator[K]) (*Map[K, V], error) {
	first := true
	var prev K
	iter := t.Iterator()
	for iter.HasNext() {
		k, _ := iter.Next()
		if !first && c.Compare(prev, k) >= 0 {
			return nil, &avl.UnsortedError[K]{Prev: prev, Next: k}
		}
		prev, first = k, false
	}
	return &Map[K, V]{root: t, cmp: c}, nil
}

// Find will return the value for a key if it exists in the map and
// whether the key exists in the map.
func (m *Map[K, V]) Find(key K) (V, bool) {
	return m.root.Find(m.cmp.Compare, key)
}

// At returns the value associated with the key. If one is not found,
// the zero value is returned.
func (m *Map[K, V]) At(key K) V {
	return m.root.At(m.cmp.Compare, key)
}

// Contains will test if the key exists in the map.
func (m *Map[K, V]) Contains(key K) bool {
	return m.root.Contains(m.cmp.Compare, key)
}

// EntryAt returns the entry (key, value pair) of the key. If one is
// not found, ok is false.
func (m *Map[K, V]) EntryAt(key K) (avl.Entry[K, V], bool) {
	v, ok := m.root.Find(m.cmp.Compare, key)
	return avl.Entry[K, V]{Key: key, Value: v}, ok
}

// Assoc associates a value with a key in the map. The original map is
// unchanged.
func (m *Map[K, V]) Assoc(key K, value V) *Map[K, V] {
	root := m.root.Add(m.cmp.Compare, key, value)
	if root == m.root {
		return m
	}
	return &Map[K, V]{root: root, cmp: m.cmp}
}

// Delete removes a key and associated value from the map. Deleting an
// absent key returns the original map.
func (m *Map[K, V]) Delete(key K) *Map[K, V] {
	root := m.root.Remove(m.cmp.Compare, key)
	if root == m.root {
		return m
	}
	return &Map[K, V]{root: root, cmp: m.cmp}
}

// Update rewrites the entry for key through f, which receives the
// current value and whether the key is present and returns the new
// value and whether the key should remain. Update subsumes Assoc and
// Delete.
func (m *Map[K, V]) Update(key K, f func(cur V, found bool) (V, bool)) *Map[K, V] {
	root := m.root.Update(m.cmp.Compare, key, f)
	if root == m.root {
		return m
	}
	return &Map[K, V]{root: root, cmp: m.cmp}
}

// MapValues returns a map with every value rewritten through f.
func (m *Map[K, V]) MapValues(f func(key K, value V) V) *Map[K, V] {
	return &Map[K, V]{root: avl.MapValues(m.root, f), cmp: m.cmp}
}

// Filter returns a map holding the entries for which pred is true.
func (m *Map[K, V]) Filter(pred func(key K, value V) bool) *Map[K, V] {
	root := m.root.Filter(pred)
	if root == m.root {
		return m
	}
	return &Map[K, V]{root: root, cmp: m.cmp}
}

// Split partitions the map around key into the entries strictly below
// it, the value at the key and whether it was present, and the entries
// strictly above it.
func (m *Map[K, V]) Split(key K) (less *Map[K, V], value V, found bool, greater *Map[K, V]) {
	l, v, ok, r := m.root.Split(m.cmp.Compare, key)
	return &Map[K, V]{root: l, cmp: m.cmp}, v, ok,
		&Map[K, V]{root: r, cmp: m.cmp}
}

// Len returns the number of entries in the map.
//
// Complexity: O(1)
func (m *Map[K, V]) Len() int {
	return m.root.Len()
}

// Min returns the smallest entry of the map.
func (m *Map[K, V]) Min() (K, V, bool) {
	return m.root.Min()
}

// Max returns the largest entry of the map.
func (m *Map[K, V]) Max() (K, V, bool) {
	return m.root.Max()
}

// Floor returns the largest entry whose key is less than or equal to
// key.
func (m *Map[K, V]) Floor(key K) (K, V, bool) {
	return m.root.Nearest(m.cmp.Compare, key, avl.Floor)
}

// Ceiling returns the smallest entry whose key is greater than or
// equal to key.
func (m *Map[K, V]) Ceiling(key K) (K, V, bool) {
	return m.root.Nearest(m.cmp.Compare, key, avl.Ceiling)
}

// Fold accumulates over the entries of the map in ascending key order.
func Fold[K, V, A any](m *Map[K, V], init A, f func(acc A, key K, value V) A) A {
	return avl.Fold(m.Tree(), init, f)
}

// All returns the entries of the map in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	i := m.Iterator()
	return i.Seq2
}

// From returns the entries with keys greater than or equal to key, in
// ascending key order.
func (m *Map[K, V]) From(key K) iter.Seq2[K, V] {
	i := m.IteratorFrom(key)
	return i.Seq2
}

func (m *Map[K, V]) Iterator() avl.Iterator[K, V] {
	return m.root.Iterator()
}

func (m *Map[K, V]) IteratorFrom(key K) avl.Iterator[K, V] {
	return m.root.IteratorFrom(m.cmp.Compare, key)
}

// Pairs returns the entries of the map in ascending key order.
func (m *Map[K, V]) Pairs() []avl.Entry[K, V] {
	return m.root.Pairs()
}

// Keys returns the keys of the map in ascending order.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, 0, m.Len())
	iter := m.Iterator()
	for iter.HasNext() {
		k, _ := iter.Next()
		out = append(out, k)
	}
	return out
}

// String returns a string representation of the map.
func (m *Map[K, V]) String() string {
	var b strings.Builder
	fmt.Fprint(&b, "{ ")
	iter := m.Iterator()
	for iter.HasNext() {
		k, v := iter.Next()
		fmt.Fprintf(&b, "[%v %v] ", k, v)
	}
	fmt.Fprint(&b, "}")
	return b.String()
}
