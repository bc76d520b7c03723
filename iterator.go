package avl

import "iter"

// Iterator walks the entries of a tree in ascending key order without
// heap-allocating a closure per entry. Iterators are not safe for
// concurrent use so they may not be shared by reference between
// goroutines.
type Iterator[K, V any] struct {
	stack []*Tree[K, V]
}

// Iterator returns an iterator positioned before the smallest entry.
func (t *Tree[K, V]) Iterator() Iterator[K, V] {
	var i Iterator[K, V]
	i.stack = make([]*Tree[K, V], 0, t.Height())
	i.pushLeft(t)
	return i
}

// IteratorFrom returns an iterator positioned before the smallest
// entry whose key is greater than or equal to from.
func (t *Tree[K, V]) IteratorFrom(cmp CompareFunc[K], from K) Iterator[K, V] {
	var i Iterator[K, V]
	i.stack = make([]*Tree[K, V], 0, t.Height())
	for t != nil {
		c := cmp(from, t.key)
		switch {
		case c < 0:
			i.stack = append(i.stack, t)
			t = t.left
		case c > 0:
			t = t.right
		default:
			i.stack = append(i.stack, t)
			return i
		}
	}
	return i
}

func (i *Iterator[K, V]) pushLeft(t *Tree[K, V]) {
	for ; t != nil; t = t.left {
		i.stack = append(i.stack, t)
	}
}

func (i *Iterator[K, V]) HasNext() bool {
	return len(i.stack) > 0
}

func (i *Iterator[K, V]) Next() (K, V) {
	t := i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	i.pushLeft(t.right)
	return t.key, t.val
}

// Seq2 adapts the iterator to a range-over-func sequence.
func (i *Iterator[K, V]) Seq2(yield func(key K, value V) bool) {
	for i.HasNext() {
		k, v := i.Next()
		if !yield(k, v) {
			break
		}
	}
}

// All returns the entries of the tree in ascending key order.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	i := t.Iterator()
	return i.Seq2
}

// From returns the entries with keys greater than or equal to from, in
// ascending key order.
func (t *Tree[K, V]) From(cmp CompareFunc[K], from K) iter.Seq2[K, V] {
	i := t.IteratorFrom(cmp, from)
	return i.Seq2
}
