package avl

import "cmp"

// Identity names an ordering. Two Comparators with the same Identity
// promise to order keys identically; the treemap and treeset layers
// refuse to combine structures whose identities differ. Behavioural
// equality of the compare functions is never inferred: distinct
// identities mean distinct orderings even when the functions happen to
// agree.
type Identity string

// Comparator is a total order over keys together with the Identity
// naming it. Trees never hold a Comparator; only the wrapper layers
// do, which keeps tree data free of function values.
type Comparator[K any] struct {
	Compare  CompareFunc[K]
	Identity Identity
}

// NewComparator binds a compare function to an identity. Callers must
// use one identity per ordering; reusing an identity for a different
// ordering breaks the guarantees the identity check provides.
func NewComparator[K any](id Identity, compare CompareFunc[K]) Comparator[K] {
	return Comparator[K]{Compare: compare, Identity: id}
}

// Same reports whether two comparators name the same ordering.
func (c Comparator[K]) Same(other Comparator[K]) bool {
	return c.Identity == other.Identity
}

const naturalIdentity Identity = "avl.natural"

// Natural returns the canonical comparator for an ordered key type.
// Every call returns the same identity, so structures built with it
// can always be combined.
func Natural[K cmp.Ordered]() Comparator[K] {
	return Comparator[K]{Compare: cmp.Compare[K], Identity: naturalIdentity}
}

// Reversed returns a comparator for the opposite ordering of c, under
// a derived identity.
func Reversed[K any](c Comparator[K]) Comparator[K] {
	return Comparator[K]{
		Compare:  func(a, b K) int { return c.Compare(b, a) },
		Identity: c.Identity + ".reversed",
	}
}
