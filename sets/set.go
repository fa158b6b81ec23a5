package sets

import (
	"cmp"
	"iter"
	"slices"
)

// Set is an immutable finite set of vertices.
//
// Implementations must treat a nil argument as the empty set and must never
// mutate the receiver or the argument.
type Set[V comparable] interface {
	// Contains reports whether v is a member.
	Contains(v V) bool

	// Len returns the number of members.
	Len() int

	// All iterates the members in unspecified order.
	All() iter.Seq[V]

	// Union returns s ∪ other.
	Union(other Set[V]) Set[V]

	// Difference returns s \ other.
	Difference(other Set[V]) Set[V]

	// SubsetOf reports whether s ⊆ other.
	SubsetOf(other Set[V]) bool
}

// Factory builds a Set holding exactly the given vertices.
type Factory[V comparable] func(vs ...V) Set[V]

// EnumFactory returns the Factory producing *Enum sets.
func EnumFactory[V comparable]() Factory[V] {
	return func(vs ...V) Set[V] { return New(vs...) }
}

// Equal reports whether a and b hold the same members.
// A nil set equals an empty one.
func Equal[V comparable](a, b Set[V]) bool {
	if size(a) != size(b) {
		return false
	}
	if a == nil {
		return true
	}

	return a.SubsetOf(b)
}

// Intersects reports whether a and b share at least one member.
func Intersects[V comparable](a, b Set[V]) bool {
	if a == nil || b == nil {
		return false
	}
	// iterate the smaller side
	if a.Len() > b.Len() {
		a, b = b, a
	}
	for v := range a.All() {
		if b.Contains(v) {
			return true
		}
	}

	return false
}

// Intersection returns a ∩ b expressed with the core capability only.
func Intersection[V comparable](a, b Set[V]) Set[V] {
	if a == nil {
		return New[V]()
	}

	return a.Difference(a.Difference(b))
}

// Sorted returns the members of s in ascending order.
func Sorted[V cmp.Ordered](s Set[V]) []V {
	out := collect(s)
	slices.Sort(out)

	return out
}

// SortedFunc returns the members of s ordered by compare.
func SortedFunc[V comparable](s Set[V], compare func(a, b V) int) []V {
	out := collect(s)
	slices.SortFunc(out, compare)

	return out
}

func collect[V comparable](s Set[V]) []V {
	if s == nil {
		return nil
	}
	out := make([]V, 0, s.Len())
	for v := range s.All() {
		out = append(out, v)
	}

	return out
}

func size[V comparable](s Set[V]) int {
	if s == nil {
		return 0
	}

	return s.Len()
}
