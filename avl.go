// Package avl implements a persistent height-balanced search tree.
//
// A Tree is an immutable value: operations that change the tree return
// a new one sharing every subtree not on the search path with the
// original. The tree stores no ordering of its own; every operation
// that needs one takes an explicit compare function. Map-style use
// with an attached Comparator lives in the treemap subpackage.
package avl

import (
	"fmt"
	"strings"
)

type CompareFunc[K any] func(a, b K) int

// Entry is a key/value pair.
type Entry[K, V any] struct {
	Key   K
	Value V
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("[%v %v]", e.Key, e.Value)
}

// Tree is a node of a persistent ordered map. The zero value for
// *Tree, nil, is the empty tree. A Tree must only ever be searched or
// combined under the compare function it was built with.
type Tree[K, V any] struct {
	key    K
	val    V
	left   *Tree[K, V]
	right  *Tree[K, V]
	height int
	size   int
}

// Height returns the height of the tree. The empty tree has height 0.
func (t *Tree[K, V]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Len returns the number of entries in the tree.
//
// Complexity: O(1)
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Find returns the value stored at key and whether the key is present.
//
// Complexity: O(log n)
func (t *Tree[K, V]) Find(cmp CompareFunc[K], key K) (V, bool) {
	for t != nil {
		c := cmp(key, t.key)
		switch {
		case c < 0:
			t = t.left
		case c > 0:
			t = t.right
		default:
			return t.val, true
		}
	}
	var zero V
	return zero, false
}

// Contains tests if the key exists in the tree.
func (t *Tree[K, V]) Contains(cmp CompareFunc[K], key K) bool {
	_, found := t.Find(cmp, key)
	return found
}

// At returns the value stored at key. If the key is absent the zero
// value is returned.
func (t *Tree[K, V]) At(cmp CompareFunc[K], key K) V {
	out, _ := t.Find(cmp, key)
	return out
}

// Add returns a tree with value stored at key. An existing entry for
// the key is replaced.
//
// Complexity: O(log n)
func (t *Tree[K, V]) Add(cmp CompareFunc[K], key K, value V) *Tree[K, V] {
	if t == nil {
		return node[K, V](nil, key, value, nil)
	}
	c := cmp(key, t.key)
	switch {
	case c < 0:
		return balance(t.left.Add(cmp, key, value), t.key, t.val, t.right)
	case c > 0:
		return balance(t.left, t.key, t.val, t.right.Add(cmp, key, value))
	default:
		return node(t.left, key, value, t.right)
	}
}

// Remove returns a tree without an entry for key. When the key is
// absent the original tree is returned unchanged.
//
// Complexity: O(log n)
func (t *Tree[K, V]) Remove(cmp CompareFunc[K], key K) *Tree[K, V] {
	if t == nil {
		return nil
	}
	c := cmp(key, t.key)
	switch {
	case c < 0:
		left := t.left.Remove(cmp, key)
		if left == t.left {
			return t
		}
		return balance(left, t.key, t.val, t.right)
	case c > 0:
		right := t.right.Remove(cmp, key)
		if right == t.right {
			return t
		}
		return balance(t.left, t.key, t.val, right)
	default:
		return splice(t.left, t.right)
	}
}

// Update rewrites the entry for key through f. f receives the current
// value and whether the key is present; it returns the new value and
// whether the key should be present afterwards. Update subsumes Add
// and Remove: it can insert, replace, or remove an entry in one call.
func (t *Tree[K, V]) Update(cmp CompareFunc[K], key K, f func(cur V, found bool) (V, bool)) *Tree[K, V] {
	cur, found := t.Find(cmp, key)
	next, keep := f(cur, found)
	switch {
	case keep:
		return t.Add(cmp, key, next)
	case found:
		return t.Remove(cmp, key)
	default:
		return t
	}
}

// Min returns the smallest entry of the tree.
func (t *Tree[K, V]) Min() (K, V, bool) {
	if t == nil {
		var k K
		var v V
		return k, v, false
	}
	for t.left != nil {
		t = t.left
	}
	return t.key, t.val, true
}

// Max returns the largest entry of the tree.
func (t *Tree[K, V]) Max() (K, V, bool) {
	if t == nil {
		var k K
		var v V
		return k, v, false
	}
	for t.right != nil {
		t = t.right
	}
	return t.key, t.val, true
}

// Direction selects which neighbour Nearest looks for.
type Direction uint8

const (
	// Floor selects the largest key less than or equal to the query.
	Floor Direction = iota
	// Ceiling selects the smallest key greater than or equal to the query.
	Ceiling
)

var directionStrings = [...]string{
	Floor:   "floor",
	Ceiling: "ceiling",
}

func (d Direction) String() string {
	return directionStrings[d]
}

// Nearest returns the entry closest to key in the given direction. An
// exact match is returned for either direction.
//
// Complexity: O(log n)
func (t *Tree[K, V]) Nearest(cmp CompareFunc[K], key K, dir Direction) (K, V, bool) {
	var bestKey K
	var bestVal V
	var found bool
	for t != nil {
		c := cmp(key, t.key)
		if c == 0 {
			return t.key, t.val, true
		}
		if dir == Floor {
			if c > 0 {
				bestKey, bestVal, found = t.key, t.val, true
				t = t.right
			} else {
				t = t.left
			}
		} else {
			if c < 0 {
				bestKey, bestVal, found = t.key, t.val, true
				t = t.left
			} else {
				t = t.right
			}
		}
	}
	return bestKey, bestVal, found
}

// Fold accumulates over the entries of the tree in ascending key order.
func Fold[K, V, A any](t *Tree[K, V], init A, f func(acc A, key K, value V) A) A {
	if t == nil {
		return init
	}
	acc := Fold(t.left, init, f)
	acc = f(acc, t.key, t.val)
	return Fold(t.right, acc, f)
}

// MapValues returns a tree with the same keys and shape where every
// value has been rewritten through f.
//
// Complexity: O(n)
func MapValues[K, V, W any](t *Tree[K, V], f func(key K, value V) W) *Tree[K, W] {
	if t == nil {
		return nil
	}
	return &Tree[K, W]{
		key:    t.key,
		val:    f(t.key, t.val),
		left:   MapValues(t.left, f),
		right:  MapValues(t.right, f),
		height: t.height,
		size:   t.size,
	}
}

// Filter returns a tree holding the entries for which pred is
// true. When every entry passes, the original tree is returned
// unchanged.
func (t *Tree[K, V]) Filter(pred func(key K, value V) bool) *Tree[K, V] {
	if t == nil {
		return nil
	}
	left := t.left.Filter(pred)
	right := t.right.Filter(pred)
	if pred(t.key, t.val) {
		if left == t.left && right == t.right {
			return t
		}
		return join(left, t.key, t.val, right)
	}
	return join2(left, right)
}

// Pairs returns the entries of the tree in ascending key order.
//
// Complexity: O(n)
func (t *Tree[K, V]) Pairs() []Entry[K, V] {
	out := make([]Entry[K, V], 0, t.Len())
	iter := t.Iterator()
	for iter.HasNext() {
		k, v := iter.Next()
		out = append(out, Entry[K, V]{Key: k, Value: v})
	}
	return out
}

// Valid reports whether the tree satisfies its structural invariants
// under cmp: strictly ascending keys, bounded sibling height skew, and
// consistent cached heights and sizes.
func (t *Tree[K, V]) Valid(cmp CompareFunc[K]) bool {
	if !t.wellFormed() {
		return false
	}
	first := true
	var prev K
	iter := t.Iterator()
	for iter.HasNext() {
		k, _ := iter.Next()
		if !first && cmp(prev, k) >= 0 {
			return false
		}
		prev, first = k, false
	}
	return true
}

func (t *Tree[K, V]) wellFormed() bool {
	if t == nil {
		return true
	}
	if !t.left.wellFormed() || !t.right.wellFormed() {
		return false
	}
	hl, hr := t.left.Height(), t.right.Height()
	if hl-hr > maxSkew || hr-hl > maxSkew {
		return false
	}
	return t.height == max(hl, hr)+1 &&
		t.size == t.left.Len()+t.right.Len()+1
}

// String returns a string representation of the tree.
func (t *Tree[K, V]) String() string {
	var b strings.Builder
	fmt.Fprint(&b, "{ ")
	iter := t.Iterator()
	for iter.HasNext() {
		k, v := iter.Next()
		fmt.Fprintf(&b, "[%v %v] ", k, v)
	}
	fmt.Fprint(&b, "}")
	return b.String()
}
