package types

import (
	"maps"
	"slices"
)

// Set is a generic hash set backed by map[T]struct{}.
//
// Sets are mutable: Add modifies the receiver in place. The zero value is
// a nil map, so sets must be created with NewSet before calling Add.
type Set[T comparable] map[T]struct{}

// NewSet creates a Set holding the given elements.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	set.Add(data...)
	return set
}

// Add inserts one or more elements into the set.
func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

// Has reports whether v is a member of the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of elements in the set.
func (s Set[T]) Len() int {
	return len(s)
}

// Difference returns the elements of values that are not members of s,
// preserving the order in which they appear in values. Duplicates in values
// are reported once.
func (s Set[T]) Difference(values []T) []T {
	var (
		out  = make([]T, 0, len(values))
		seen = make(Set[T], len(values))
	)
	for _, v := range values {
		if s.Has(v) || seen.Has(v) {
			continue
		}

		seen.Add(v)
		out = append(out, v)
	}
	return out
}

// ToSlice returns all elements of the set. The order is not guaranteed.
func (s Set[T]) ToSlice() []T {
	return slices.Collect(maps.Keys(s))
}
