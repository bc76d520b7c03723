package avl

// Set-style composition. Each operation splits one tree at the root
// key of the other and recurses on the halves, so the cost is
// O(m*log(n/m+1)) for trees of m and n entries rather than the
// O(m*log n) of inserting one side into the other entry by entry.

// Split partitions the tree around key: a balanced tree of the
// strictly smaller entries, the value stored at key and whether it was
// present, and a balanced tree of the strictly larger entries.
//
// Complexity: O(log n)
func (t *Tree[K, V]) Split(cmp CompareFunc[K], key K) (less *Tree[K, V], value V, found bool, greater *Tree[K, V]) {
	if t == nil {
		var zero V
		return nil, zero, false, nil
	}
	c := cmp(key, t.key)
	switch {
	case c < 0:
		ll, v, ok, lr := t.left.Split(cmp, key)
		return ll, v, ok, join(lr, t.key, t.val, t.right)
	case c > 0:
		rl, v, ok, rr := t.right.Split(cmp, key)
		return join(t.left, t.key, t.val, rl), v, ok, rr
	default:
		return t.left, t.val, true, t.right
	}
}

// Union returns a tree holding the entries of both trees. When a key
// is present on both sides its value is onConflict(key, value in t,
// value in other).
func (t *Tree[K, V]) Union(cmp CompareFunc[K], other *Tree[K, V], onConflict func(key K, a, b V) V) *Tree[K, V] {
	if t == nil {
		return other
	}
	if other == nil {
		return t
	}
	l, v, found, r := other.Split(cmp, t.key)
	val := t.val
	if found {
		val = onConflict(t.key, t.val, v)
	}
	return join(
		t.left.Union(cmp, l, onConflict),
		t.key, val,
		t.right.Union(cmp, r, onConflict))
}

// Intersect returns a tree holding the keys present in both trees,
// each with value combine(key, value in t, value in other).
func (t *Tree[K, V]) Intersect(cmp CompareFunc[K], other *Tree[K, V], combine func(key K, a, b V) V) *Tree[K, V] {
	if t == nil || other == nil {
		return nil
	}
	l, v, found, r := other.Split(cmp, t.key)
	il := t.left.Intersect(cmp, l, combine)
	ir := t.right.Intersect(cmp, r, combine)
	if found {
		return join(il, t.key, combine(t.key, t.val, v), ir)
	}
	return join2(il, ir)
}

// Difference returns a tree holding the entries of t whose keys are
// not present in other. When no key is removed the original tree is
// returned unchanged.
func (t *Tree[K, V]) Difference(cmp CompareFunc[K], other *Tree[K, V]) *Tree[K, V] {
	if t == nil {
		return nil
	}
	if other == nil {
		return t
	}
	l, _, found, r := other.Split(cmp, t.key)
	dl := t.left.Difference(cmp, l)
	dr := t.right.Difference(cmp, r)
	if found {
		return join2(dl, dr)
	}
	if dl == t.left && dr == t.right {
		return t
	}
	return join(dl, t.key, t.val, dr)
}
