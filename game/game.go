package game

import (
	"fmt"

	"github.com/katalvlaran/lvgames/arena"
	"github.com/katalvlaran/lvgames/condition"
	"github.com/katalvlaran/lvgames/sets"
)

// Game pairs an arena with a winning condition for Player 0.
// A Game is immutable; it is safe for concurrent use.
type Game[V comparable] struct {
	arena *arena.Arena[V]
	cond  condition.Condition[V]
	opts  Options
}

// New validates c against a and returns the game.
//
// Errors:
//   - ErrArenaNil, ErrConditionNil for missing inputs.
//   - the condition's Check error (condition.ErrIncompatibleArena).
//   - ErrOptionViolation for a bad Option.
func New[V comparable](a *arena.Arena[V], c condition.Condition[V], opts ...Option) (*Game[V], error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return build(a, c, o)
}

func build[V comparable](a *arena.Arena[V], c condition.Condition[V], o Options) (*Game[V], error) {
	if a == nil {
		return nil, ErrArenaNil
	}
	if c == nil {
		return nil, ErrConditionNil
	}
	if err := c.Check(a); err != nil {
		return nil, fmt.Errorf("game: %s: %w", c.Kind(), err)
	}

	return &Game[V]{arena: a, cond: c, opts: o}, nil
}

// Arena returns the arena the game is played on.
func (g *Game[V]) Arena() *arena.Arena[V] { return g.arena }

// Condition returns Player 0's winning condition.
func (g *Game[V]) Condition() condition.Condition[V] { return g.cond }

// WinningRegion0 returns the vertices from which Player 0 wins.
func (g *Game[V]) WinningRegion0() (sets.Set[V], error) {
	return g.cond.WinningRegion0(g.arena)
}

// WinningRegion1 returns the vertices from which Player 1 wins.
func (g *Game[V]) WinningRegion1() (sets.Set[V], error) {
	return g.cond.WinningRegion1(g.arena)
}

// Dual returns the game on the dual arena with the complemented condition,
// in which the former Player 1 plays as Player 0. Instrumentation options are
// carried over. Fails with condition.ErrUnsupportedOperation for Parity.
func (g *Game[V]) Dual() (*Game[V], error) {
	comp, err := g.cond.Complement(g.arena)
	if err != nil {
		return nil, fmt.Errorf("game: dual of %s: %w", g.cond.Kind(), err)
	}

	return build(g.arena.Dual(), comp, g.opts)
}

// String implements fmt.Stringer.
func (g *Game[V]) String() string {
	return fmt.Sprintf("Game(%v, %d vertices, %d edges)", g.cond, g.arena.VertexCount(), g.arena.EdgeCount())
}
