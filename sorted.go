package avl

// FromSorted builds a tree from entries that are strictly ascending
// under cmp. The build is a midpoint recursion over the slice, so no
// rebalancing is needed. A pair of out-of-order or duplicate adjacent
// keys fails with an *UnsortedError.
//
// Complexity: O(n)
func FromSorted[K, V any](cmp CompareFunc[K], pairs []Entry[K, V]) (*Tree[K, V], error) {
	for i := 1; i < len(pairs); i++ {
		if cmp(pairs[i-1].Key, pairs[i].Key) >= 0 {
			return nil, &UnsortedError[K]{
				Prev: pairs[i-1].Key,
				Next: pairs[i].Key,
			}
		}
	}
	return fromSorted(pairs), nil
}

func fromSorted[K, V any](pairs []Entry[K, V]) *Tree[K, V] {
	if len(pairs) == 0 {
		return nil
	}
	mid := len(pairs) / 2
	return node(
		fromSorted(pairs[:mid]),
		pairs[mid].Key, pairs[mid].Value,
		fromSorted(pairs[mid+1:]))
}
