package types

// Set is a hash set of comparable values.
type Set[T comparable] map[T]struct{}

// NewSet creates a Set holding data.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	for _, d := range data {
		set[d] = struct{}{}
	}
	return set
}

// Has reports whether value is in the set. A nil set holds nothing.
func (s Set[T]) Has(value T) bool {
	_, ok := s[value]
	return ok
}
