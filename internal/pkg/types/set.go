// Package types holds small generic containers shared across packages.
package types

// Set is a hash set of comparable values. The zero value is not usable,
// build one with NewSet.
type Set[T comparable] map[T]struct{}

// NewSet returns a set holding data.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	set.Add(data...)
	return set
}

// Add inserts values into the set.
func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

// Has reports whether value is in the set.
func (s Set[T]) Has(value T) bool {
	_, ok := s[value]
	return ok
}

// AddNew inserts value and reports whether it was missing before.
func (s Set[T]) AddNew(value T) bool {
	if s.Has(value) {
		return false
	}

	s[value] = struct{}{}
	return true
}
