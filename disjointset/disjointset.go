// Package disjointset provides a union-find structure over arbitrary
// comparable elements. Sets are identified by a leader element; merging two
// sets keeps the first argument's leader.
package disjointset

import (
	"errors"
)

// ErrElementNotFound is returned when an element was never added.
var ErrElementNotFound = errors.New("element not found in any set")

// Sets tracks a partition of elements into disjoint sets.
//
// Sets is not safe for concurrent use.
type Sets[T comparable] struct {
	leaders map[T]T   // element -> leader of its set
	members map[T][]T // leader -> every element of the set
}

// New creates a partition where every given element is its own singleton set.
func New[T comparable](elements ...T) *Sets[T] {
	s := &Sets[T]{
		leaders: make(map[T]T, len(elements)),
		members: make(map[T][]T, len(elements)),
	}
	for _, elem := range elements {
		s.Add(elem)
	}
	return s
}

// Add introduces elem as a singleton set. Adding an existing element is a
// no-op; the return value reports whether the element was new.
func (s *Sets[T]) Add(elem T) bool {
	if _, ok := s.leaders[elem]; ok {
		return false
	}
	s.leaders[elem] = elem
	s.members[elem] = []T{elem}
	return true
}

// Leader returns the leader of elem's set.
func (s *Sets[T]) Leader(elem T) (T, error) {
	leader, ok := s.leaders[elem]
	if !ok {
		var zero T
		return zero, ErrElementNotFound
	}
	return leader, nil
}

// SameSet reports whether a and b are in the same set.
func (s *Sets[T]) SameSet(a, b T) (bool, error) {
	la, err := s.Leader(a)
	if err != nil {
		return false, err
	}
	lb, err := s.Leader(b)
	if err != nil {
		return false, err
	}
	return la == lb, nil
}

// Union merges b's set into a's set. a's leader leads the merged set.
// Merging two elements that already share a set is a no-op.
func (s *Sets[T]) Union(a, b T) error {
	la, err := s.Leader(a)
	if err != nil {
		return err
	}
	lb, err := s.Leader(b)
	if err != nil {
		return err
	}
	if la == lb {
		return nil
	}

	absorbed := s.members[lb]
	for _, elem := range absorbed {
		s.leaders[elem] = la
	}
	s.members[la] = append(s.members[la], absorbed...)
	delete(s.members, lb)
	return nil
}

// Set returns the members of elem's set. The returned slice aliases internal
// state and must not be modified.
func (s *Sets[T]) Set(elem T) ([]T, error) {
	leader, err := s.Leader(elem)
	if err != nil {
		return nil, err
	}
	return s.members[leader], nil
}

// Len returns the number of disjoint sets.
func (s *Sets[T]) Len() int { return len(s.members) }

// Size returns the total number of elements across all sets.
func (s *Sets[T]) Size() int { return len(s.leaders) }
