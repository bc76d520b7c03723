package treemap

import "jsouthworth.net/go/avl"

// DuplicatePolicy selects what FromPairs does when a key repeats.
type DuplicatePolicy uint8

const (
	// Fail rejects the input with an *avl.DuplicateKeyError naming
	// the repeated key. This is the default policy.
	Fail DuplicatePolicy = iota
	// KeepFirst keeps the value of the first occurrence.
	KeepFirst
	// KeepLast keeps the value of the last occurrence.
	KeepLast
)

var duplicatePolicyStrings = [...]string{
	Fail:      "fail",
	KeepFirst: "keep-first",
	KeepLast:  "keep-last",
}

func (p DuplicatePolicy) String() string {
	return duplicatePolicyStrings[p]
}

// FromPairs builds a map from an unordered sequence of entries,
// applying policy to repeated keys.
//
// Complexity: O(n log n)
func FromPairs[K, V any](pairs []avl.Entry[K, V], c avl.Comparator[K], policy DuplicatePolicy) (*Map[K, V], error) {
	var root *avl.Tree[K, V]
	for _, p := range pairs {
		if root.Contains(c.Compare, p.Key) {
			switch policy {
			case KeepFirst:
				continue
			case KeepLast:
			default:
				return nil, &avl.DuplicateKeyError[K]{Key: p.Key}
			}
		}
		root = root.Add(c.Compare, p.Key, p.Value)
	}
	return &Map[K, V]{root: root, cmp: c}, nil
}

// FromSorted builds a map from entries already strictly ascending
// under c. Input that is not strictly ascending fails with an
// *avl.UnsortedError.
//
// Complexity: O(n)
func FromSorted[K, V any](pairs []avl.Entry[K, V], c avl.Comparator[K]) (*Map[K, V], error) {
	root, err := avl.FromSorted(c.Compare, pairs)
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{root: root, cmp: c}, nil
}

// FromNative converts a native go map. Keys in a native map are
// unique, so no duplicate policy applies.
func FromNative[K comparable, V any](native map[K]V, c avl.Comparator[K]) *Map[K, V] {
	var root *avl.Tree[K, V]
	for k, v := range native {
		root = root.Add(c.Compare, k, v)
	}
	return &Map[K, V]{root: root, cmp: c}
}

// AsNative returns the map converted to a go native map type.
func AsNative[K comparable, V any](m *Map[K, V]) map[K]V {
	out := make(map[K]V, m.Len())
	iter := m.Iterator()
	for iter.HasNext() {
		k, v := iter.Next()
		out[k] = v
	}
	return out
}
