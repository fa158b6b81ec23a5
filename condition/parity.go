package condition

import (
	"fmt"
	"maps"

	"github.com/katalvlaran/lvgames/arena"
	"github.com/katalvlaran/lvgames/sets"
)

// Parity is won by Player 0 iff the largest color seen infinitely often is
// even.
//
//	PARITY(Ω) = {ρ : max Inf(Ω(ρ)) is even}
//
// Only compatibility checking is available; both winning-region queries fail
// with ErrNotImplemented and Complement with ErrUnsupportedOperation.
type Parity[V comparable] struct {
	coloring map[V]int
}

// NewParity returns the parity condition for coloring. The map is copied.
func NewParity[V comparable](coloring map[V]int) *Parity[V] {
	return &Parity[V]{coloring: maps.Clone(coloring)}
}

// Color returns Ω(v).
func (c *Parity[V]) Color(v V) (int, bool) {
	color, ok := c.coloring[v]

	return color, ok
}

// Colors returns a copy of the coloring.
func (c *Parity[V]) Colors() map[V]int { return maps.Clone(c.coloring) }

// MaxColor returns the largest assigned color, or -1 for an empty coloring.
func (c *Parity[V]) MaxColor() int {
	highest := -1
	for _, color := range c.coloring {
		highest = max(highest, color)
	}

	return highest
}

// Kind implements Condition.
func (c *Parity[V]) Kind() Kind { return KindParity }

// Check requires every arena vertex to carry a non-negative color.
// Colors of vertices outside the arena are ignored.
func (c *Parity[V]) Check(a *arena.Arena[V]) error {
	if a == nil {
		return fmt.Errorf("%w: arena is nil", ErrIncompatibleArena)
	}
	for v := range a.Vertices().All() {
		color, ok := c.coloring[v]
		if !ok {
			return fmt.Errorf("%w: every vertex must be assigned a color, %v has none", ErrIncompatibleArena, v)
		}
		if color < 0 {
			return fmt.Errorf("%w: vertex %v has negative color %d", ErrIncompatibleArena, v, color)
		}
	}

	return nil
}

// Complement is not defined for Parity.
func (c *Parity[V]) Complement(*arena.Arena[V]) (Condition[V], error) {
	return nil, fmt.Errorf("%w: complement of %s", ErrUnsupportedOperation, KindParity)
}

// WinningRegion0 always fails with ErrNotImplemented.
func (c *Parity[V]) WinningRegion0(*arena.Arena[V]) (sets.Set[V], error) {
	return nil, fmt.Errorf("%w: %s winning region of %s", ErrNotImplemented, KindParity, arena.Player0)
}

// WinningRegion1 always fails with ErrNotImplemented.
func (c *Parity[V]) WinningRegion1(*arena.Arena[V]) (sets.Set[V], error) {
	return nil, fmt.Errorf("%w: %s winning region of %s", ErrNotImplemented, KindParity, arena.Player1)
}

// String implements fmt.Stringer.
func (c *Parity[V]) String() string { return fmt.Sprintf("Parity(%v)", c.coloring) }
