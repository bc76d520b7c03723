// Package treeset implements a persistent ordered set as a thin layer
// over treemap with empty values.
package treeset

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"jsouthworth.net/go/avl"
	"jsouthworth.net/go/avl/treemap"
)

type Set[K any] struct {
	impl *treemap.Map[K, struct{}]
}

// Empty returns an empty set ordered by c.
func Empty[K any](c avl.Comparator[K]) *Set[K] {
	return &Set[K]{impl: treemap.Empty[K, struct{}](c)}
}

// New returns an empty set over the element type's natural ordering.
// Sets built this way always share one comparator identity, so
// combining them can never fail with a mismatch.
func New[K cmp.Ordered]() *Set[K] {
	return Empty(avl.Natural[K]())
}

// FromSlice returns a set of the given elements. Repeated elements
// collapse.
func FromSlice[K any](elems []K, c avl.Comparator[K]) *Set[K] {
	s := Empty(c)
	for _, e := range elems {
		s = s.Add(e)
	}
	return s
}

// Comparator returns the ordering the set was built under.
func (s *Set[K]) Comparator() avl.Comparator[K] {
	return s.impl.Comparator()
}

func (s *Set[K]) Contains(elem K) bool {
	return s.impl.Contains(elem)
}

func (s *Set[K]) Add(elem K) *Set[K] {
	if s.impl.Contains(elem) {
		return s
	}
	return &Set[K]{impl: s.impl.Assoc(elem, struct{}{})}
}

func (s *Set[K]) Remove(elem K) *Set[K] {
	nimpl := s.impl.Delete(elem)
	if nimpl == s.impl {
		return s
	}
	return &Set[K]{impl: nimpl}
}

func (s *Set[K]) Len() int {
	return s.impl.Len()
}

// Min returns the smallest element of the set.
func (s *Set[K]) Min() (K, bool) {
	k, _, ok := s.impl.Min()
	return k, ok
}

// Max returns the largest element of the set.
func (s *Set[K]) Max() (K, bool) {
	k, _, ok := s.impl.Max()
	return k, ok
}

// All returns the elements of the set in ascending order.
func (s *Set[K]) All() iter.Seq[K] {
	i := s.Iterator()
	return i.Seq
}

// From returns the elements greater than or equal to elem, in
// ascending order.
func (s *Set[K]) From(elem K) iter.Seq[K] {
	i := s.IteratorFrom(elem)
	return i.Seq
}

func (s *Set[K]) Iterator() Iterator[K] {
	return Iterator[K]{impl: s.impl.Iterator()}
}

func (s *Set[K]) IteratorFrom(elem K) Iterator[K] {
	return Iterator[K]{impl: s.impl.IteratorFrom(elem)}
}

// Union returns a set holding the elements of both sets. The sets must
// share a comparator identity.
func (s *Set[K]) Union(other *Set[K]) (*Set[K], error) {
	nimpl, err := s.impl.Union(other.impl,
		func(_ K, a, _ struct{}) struct{} { return a })
	if err != nil {
		return nil, err
	}
	return &Set[K]{impl: nimpl}, nil
}

// Intersect returns a set holding the elements present in both sets.
func (s *Set[K]) Intersect(other *Set[K]) (*Set[K], error) {
	nimpl, err := s.impl.Intersect(other.impl,
		func(_ K, a, _ struct{}) struct{} { return a })
	if err != nil {
		return nil, err
	}
	return &Set[K]{impl: nimpl}, nil
}

// Difference returns a set holding the elements of s not present in
// other.
func (s *Set[K]) Difference(other *Set[K]) (*Set[K], error) {
	nimpl, err := s.impl.Difference(other.impl)
	if err != nil {
		return nil, err
	}
	if nimpl == s.impl {
		return s, nil
	}
	return &Set[K]{impl: nimpl}, nil
}

// Subset reports whether every element of s is present in other.
func (s *Set[K]) Subset(other *Set[K]) (bool, error) {
	d, err := s.Difference(other)
	if err != nil {
		return false, err
	}
	return d.Len() == 0, nil
}

// Equal tests if two sets hold the same elements.
func (s *Set[K]) Equal(other *Set[K]) (bool, error) {
	return s.impl.Equal(other.impl,
		func(_, _ struct{}) bool { return true })
}

// Elems returns the elements of the set in ascending order.
func (s *Set[K]) Elems() []K {
	return s.impl.Keys()
}

// String returns a string representation of the set.
func (s *Set[K]) String() string {
	var b strings.Builder
	fmt.Fprint(&b, "( ")
	iter := s.Iterator()
	for iter.HasNext() {
		fmt.Fprintf(&b, "%v ", iter.Next())
	}
	fmt.Fprint(&b, ")")
	return b.String()
}

type Iterator[K any] struct {
	impl avl.Iterator[K, struct{}]
}

func (i *Iterator[K]) Seq(yield func(elem K) bool) {
	for i.HasNext() {
		if !yield(i.Next()) {
			break
		}
	}
}

func (i *Iterator[K]) Next() K {
	k, _ := i.impl.Next()
	return k
}

func (i *Iterator[K]) HasNext() bool {
	return i.impl.HasNext()
}
