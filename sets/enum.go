package sets

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Enum is the enumerated Set implementation backed by map[V]struct{}.
// The zero value is an empty set.
type Enum[V comparable] struct {
	members map[V]struct{}
}

// New returns an Enum holding vs; duplicates collapse.
// Complexity: O(len(vs)).
func New[V comparable](vs ...V) *Enum[V] {
	e := &Enum[V]{members: make(map[V]struct{}, len(vs))}
	for _, v := range vs {
		e.members[v] = struct{}{}
	}

	return e
}

// Collect returns an Enum holding every vertex yielded by seq.
func Collect[V comparable](seq iter.Seq[V]) *Enum[V] {
	e := New[V]()
	for v := range seq {
		e.members[v] = struct{}{}
	}

	return e
}

// Contains reports whether v is a member. O(1).
func (e *Enum[V]) Contains(v V) bool {
	if e == nil {
		return false
	}
	_, ok := e.members[v]

	return ok
}

// Len returns the number of members. O(1).
func (e *Enum[V]) Len() int {
	if e == nil {
		return 0
	}

	return len(e.members)
}

// All iterates the members in map order.
func (e *Enum[V]) All() iter.Seq[V] {
	if e == nil {
		return func(func(V) bool) {}
	}

	return maps.Keys(e.members)
}

// Union returns e ∪ other as a fresh Enum. O(|e| + |other|).
func (e *Enum[V]) Union(other Set[V]) Set[V] {
	out := e.clone(e.Len() + size(other))
	if other != nil {
		for v := range other.All() {
			out.members[v] = struct{}{}
		}
	}

	return out
}

// Difference returns e \ other as a fresh Enum. O(|e|).
func (e *Enum[V]) Difference(other Set[V]) Set[V] {
	out := New[V]()
	for v := range e.All() {
		if other == nil || !other.Contains(v) {
			out.members[v] = struct{}{}
		}
	}

	return out
}

// SubsetOf reports whether e ⊆ other. O(|e|).
func (e *Enum[V]) SubsetOf(other Set[V]) bool {
	if e.Len() > size(other) {
		return false
	}
	for v := range e.All() {
		if !other.Contains(v) {
			return false
		}
	}

	return true
}

// String renders the members as {a, b, c}, sorted by their printed form.
func (e *Enum[V]) String() string {
	parts := make([]string, 0, e.Len())
	for v := range e.All() {
		parts = append(parts, fmt.Sprint(v))
	}
	slices.Sort(parts)

	return "{" + strings.Join(parts, ", ") + "}"
}

func (e *Enum[V]) clone(capacity int) *Enum[V] {
	out := &Enum[V]{members: make(map[V]struct{}, capacity)}
	for v := range e.All() {
		out.members[v] = struct{}{}
	}

	return out
}
