package condition

import (
	"fmt"

	"github.com/katalvlaran/lvgames/arena"
	"github.com/katalvlaran/lvgames/sets"
)

// Safety is won by Player 0 iff every visited vertex lies in the safe set S.
//
//	SAFETY(S) = {ρ : Occ(ρ) ⊆ S}        LTL: G(v ∈ S)
type Safety[V comparable] struct {
	safe sets.Set[V]
}

// NewSafety returns the safety condition for safe; nil means ∅.
func NewSafety[V comparable](safe sets.Set[V]) *Safety[V] {
	return &Safety[V]{safe: orEmpty(safe)}
}

// Safe returns S.
func (c *Safety[V]) Safe() sets.Set[V] { return c.safe }

// Kind implements Condition.
func (c *Safety[V]) Kind() Kind { return KindSafety }

// Check implements Condition.
func (c *Safety[V]) Check(a *arena.Arena[V]) error {
	return checkSubset(a, c.safe, "safe")
}

// Complement is Reachability(V \ S): reach an unsafe vertex.
func (c *Safety[V]) Complement(a *arena.Arena[V]) (Condition[V], error) {
	if err := c.Check(a); err != nil {
		return nil, err
	}

	return NewReachability(a.Vertices().Difference(c.safe)), nil
}

// WinningRegion0 is V \ WinningRegion1.
func (c *Safety[V]) WinningRegion0(a *arena.Arena[V]) (sets.Set[V], error) {
	w1, err := c.WinningRegion1(a)
	if err != nil {
		return nil, err
	}

	return a.Vertices().Difference(w1), nil
}

// WinningRegion1 is Attr1(V \ S): Player 1 forces a visit to an unsafe vertex.
func (c *Safety[V]) WinningRegion1(a *arena.Arena[V]) (sets.Set[V], error) {
	if err := c.Check(a); err != nil {
		return nil, err
	}

	return a.Attractor1(a.Vertices().Difference(c.safe)), nil
}

// String implements fmt.Stringer.
func (c *Safety[V]) String() string { return fmt.Sprintf("Safety(%v)", c.safe) }

// Reachability is won by Player 0 iff some visited vertex lies in the goal set R.
//
//	REACH(R) = {ρ : Occ(ρ) ∩ R ≠ ∅}     LTL: F(v ∈ R)
type Reachability[V comparable] struct {
	goal sets.Set[V]
}

// NewReachability returns the reachability condition for goal; nil means ∅.
func NewReachability[V comparable](goal sets.Set[V]) *Reachability[V] {
	return &Reachability[V]{goal: orEmpty(goal)}
}

// Goal returns R.
func (c *Reachability[V]) Goal() sets.Set[V] { return c.goal }

// Kind implements Condition.
func (c *Reachability[V]) Kind() Kind { return KindReachability }

// Check implements Condition.
func (c *Reachability[V]) Check(a *arena.Arena[V]) error {
	return checkSubset(a, c.goal, "goal")
}

// Complement is Safety(V \ R): never reach the goal.
func (c *Reachability[V]) Complement(a *arena.Arena[V]) (Condition[V], error) {
	if err := c.Check(a); err != nil {
		return nil, err
	}

	return NewSafety(a.Vertices().Difference(c.goal)), nil
}

// WinningRegion0 is Attr0(R).
func (c *Reachability[V]) WinningRegion0(a *arena.Arena[V]) (sets.Set[V], error) {
	if err := c.Check(a); err != nil {
		return nil, err
	}

	return a.Attractor0(c.goal), nil
}

// WinningRegion1 is V \ WinningRegion0.
func (c *Reachability[V]) WinningRegion1(a *arena.Arena[V]) (sets.Set[V], error) {
	w0, err := c.WinningRegion0(a)
	if err != nil {
		return nil, err
	}

	return a.Vertices().Difference(w0), nil
}

// String implements fmt.Stringer.
func (c *Reachability[V]) String() string { return fmt.Sprintf("Reachability(%v)", c.goal) }
