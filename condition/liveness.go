package condition

import (
	"fmt"

	"github.com/katalvlaran/lvgames/arena"
	"github.com/katalvlaran/lvgames/sets"
)

// Recurrence (Büchi) is won by Player 0 iff the accepting set F is visited
// infinitely often.
//
//	BÜCHI(F) = {ρ : Inf(ρ) ∩ F ≠ ∅}     LTL: GF(v ∈ F)
type Recurrence[V comparable] struct {
	accepting sets.Set[V]
}

// NewRecurrence returns the recurrence condition for accepting; nil means ∅.
func NewRecurrence[V comparable](accepting sets.Set[V]) *Recurrence[V] {
	return &Recurrence[V]{accepting: orEmpty(accepting)}
}

// Accepting returns F.
func (c *Recurrence[V]) Accepting() sets.Set[V] { return c.accepting }

// Kind implements Condition.
func (c *Recurrence[V]) Kind() Kind { return KindRecurrence }

// Check implements Condition.
func (c *Recurrence[V]) Check(a *arena.Arena[V]) error {
	return checkSubset(a, c.accepting, "accepting")
}

// Complement is Persistence(V \ F): eventually avoid F forever.
func (c *Recurrence[V]) Complement(a *arena.Arena[V]) (Condition[V], error) {
	if err := c.Check(a); err != nil {
		return nil, err
	}

	return NewPersistence(a.Vertices().Difference(c.accepting)), nil
}

// WinningRegion0 is V \ WinningRegion1.
func (c *Recurrence[V]) WinningRegion0(a *arena.Arena[V]) (sets.Set[V], error) {
	w1, err := c.WinningRegion1(a)
	if err != nil {
		return nil, err
	}

	return a.Vertices().Difference(w1), nil
}

// WinningRegion1 shrinks a working copy of F. Each round, the vertices from
// which Player 0 cannot force a visit to the working set form a trap Player 1
// can hold; accepting vertices from which Player 1 can force the play into
// that trap are useless to Player 0 and leave the working set. The trap of the
// round in which nothing changes is Player 1's winning region.
func (c *Recurrence[V]) WinningRegion1(a *arena.Arena[V]) (sets.Set[V], error) {
	if err := c.Check(a); err != nil {
		return nil, err
	}

	return shrink(a, c.accepting, a.Attractor0, a.ControlledPredecessors1), nil
}

// String implements fmt.Stringer.
func (c *Recurrence[V]) String() string { return fmt.Sprintf("Recurrence(%v)", c.accepting) }

// Persistence (co-Büchi) is won by Player 0 iff from some point on every
// visited vertex lies in the safe set C.
//
//	coBÜCHI(C) = {ρ : Inf(ρ) ⊆ C}      LTL: FG(v ∈ C)
type Persistence[V comparable] struct {
	safe sets.Set[V]
}

// NewPersistence returns the persistence condition for safe; nil means ∅.
func NewPersistence[V comparable](safe sets.Set[V]) *Persistence[V] {
	return &Persistence[V]{safe: orEmpty(safe)}
}

// Safe returns C.
func (c *Persistence[V]) Safe() sets.Set[V] { return c.safe }

// Kind implements Condition.
func (c *Persistence[V]) Kind() Kind { return KindPersistence }

// Check implements Condition.
func (c *Persistence[V]) Check(a *arena.Arena[V]) error {
	return checkSubset(a, c.safe, "safe")
}

// Complement is Recurrence(V \ C): visit an unsafe vertex infinitely often.
func (c *Persistence[V]) Complement(a *arena.Arena[V]) (Condition[V], error) {
	if err := c.Check(a); err != nil {
		return nil, err
	}

	return NewRecurrence(a.Vertices().Difference(c.safe)), nil
}

// WinningRegion0 mirrors Recurrence.WinningRegion1 with the players swapped:
// it shrinks a working copy of the unsafe set V \ C, dropping unsafe vertices
// from which Player 0 can force the play into the current trap of Player 1's
// attractor complement.
func (c *Persistence[V]) WinningRegion0(a *arena.Arena[V]) (sets.Set[V], error) {
	if err := c.Check(a); err != nil {
		return nil, err
	}
	unsafe := a.Vertices().Difference(c.safe)

	return shrink(a, unsafe, a.Attractor1, a.ControlledPredecessors0), nil
}

// WinningRegion1 is V \ WinningRegion0.
func (c *Persistence[V]) WinningRegion1(a *arena.Arena[V]) (sets.Set[V], error) {
	w0, err := c.WinningRegion0(a)
	if err != nil {
		return nil, err
	}

	return a.Vertices().Difference(w0), nil
}

// String implements fmt.Stringer.
func (c *Persistence[V]) String() string { return fmt.Sprintf("Persistence(%v)", c.safe) }

// shrink is the outer loop shared by Recurrence and Persistence:
//
//	repeat
//	    current = V \ attract(working)
//	    working = working \ force(current)
//	until current repeats
//
// working only loses vertices, so current only grows and the loop ends after
// at most |V| + 1 rounds.
func shrink[V comparable](
	a *arena.Arena[V],
	working sets.Set[V],
	attract func(sets.Set[V]) sets.Set[V],
	force func(sets.Set[V]) sets.Set[V],
) sets.Set[V] {
	var previous sets.Set[V]
	for {
		current := a.Vertices().Difference(attract(working))
		working = working.Difference(force(current))
		if previous != nil && sets.Equal(previous, current) {
			return current
		}
		previous = current
	}
}
