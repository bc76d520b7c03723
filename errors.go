package avl

import "fmt"

// MismatchError reports an attempt to combine two structures built
// under different orderings.
type MismatchError struct {
	A, B Identity
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("comparator mismatch: %q vs %q", string(e.A), string(e.B))
}

// DuplicateKeyError reports a repeated key seen by a bulk constructor
// whose duplicate policy is to fail.
type DuplicateKeyError[K any] struct {
	Key K
}

func (e *DuplicateKeyError[K]) Error() string {
	return fmt.Sprintf("duplicate key: %v", e.Key)
}

// UnsortedError reports the first adjacent pair of a sorted-input bulk
// build that is not strictly ascending.
type UnsortedError[K any] struct {
	Prev, Next K
}

func (e *UnsortedError[K]) Error() string {
	return fmt.Sprintf("input not strictly ascending: %v followed by %v", e.Prev, e.Next)
}
