// Package arena defines the Arena type, its players, edges, options and
// sentinel errors.
//
// Errors:
//
//	ErrInvalidArena     - construction input violates the arena invariants.
//	ErrVertexNotFound   - adjacency query for a vertex outside the arena.
//	ErrOptionViolation  - an Option carried an unusable value.
package arena

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvgames/sets"
)

// Sentinel errors for arena construction and queries.
var (
	// ErrInvalidArena indicates that V₀ and V₁ overlap, do not cover V,
	// an edge leaves V, or some vertex has no successor.
	ErrInvalidArena = errors.New("arena: invalid arena")

	// ErrVertexNotFound indicates a query referenced a vertex outside V.
	ErrVertexNotFound = errors.New("arena: vertex not found")

	// ErrOptionViolation indicates an invalid Option was supplied to New.
	ErrOptionViolation = errors.New("arena: invalid option supplied")
)

// Player identifies one of the two players.
type Player uint8

const (
	// Player0 is the protagonist: winning conditions are stated for it.
	Player0 Player = iota
	// Player1 is the antagonist.
	Player1
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == Player0 {
		return Player1
	}

	return Player0
}

// String implements fmt.Stringer.
func (p Player) String() string {
	switch p {
	case Player0:
		return "player0"
	case Player1:
		return "player1"
	default:
		return fmt.Sprintf("player(%d)", uint8(p))
	}
}

// Edge is a directed move From → To.
type Edge[V comparable] struct {
	From V
	To   V
}

// Strategy selects the attractor algorithm used by the player-bound
// helpers (Attractor0, Attractor1, AttractorOf).
type Strategy uint8

const (
	// Worklist is the linear-time counter algorithm. Default.
	Worklist Strategy = iota
	// Fixpoint is the naive repeated-union reference algorithm.
	Fixpoint
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Worklist:
		return "worklist"
	case Fixpoint:
		return "fixpoint"
	default:
		return fmt.Sprintf("strategy(%d)", uint8(s))
	}
}

// ParseStrategy maps "worklist" / "fixpoint" (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "worklist", "":
		return Worklist, nil
	case "fixpoint":
		return Fixpoint, nil
	default:
		return Worklist, fmt.Errorf("%w: unknown attractor strategy %q", ErrOptionViolation, name)
	}
}

// Option configures an Arena at construction time.
// Invalid options are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the resolved construction parameters.
type Options struct {
	// Strategy is the attractor algorithm behind the player-bound helpers.
	Strategy Strategy

	// factory is a sets.Factory[V] for the arena's vertex type, or nil.
	factory any

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the worklist attractor and
// enumerated sets.
func DefaultOptions() Options {
	return Options{Strategy: Worklist}
}

// WithAttractor selects the attractor algorithm.
func WithAttractor(s Strategy) Option {
	return func(o *Options) {
		if s != Worklist && s != Fixpoint {
			o.err = fmt.Errorf("%w: unknown attractor strategy %d", ErrOptionViolation, uint8(s))
			return
		}
		o.Strategy = s
	}
}

// WithSetFactory substitutes the set representation produced by the arena.
// The factory's vertex type must match the arena's, otherwise New fails
// with ErrOptionViolation.
func WithSetFactory[V comparable](f sets.Factory[V]) Option {
	return func(o *Options) {
		if f == nil {
			o.err = fmt.Errorf("%w: set factory is nil", ErrOptionViolation)
			return
		}
		o.factory = f
	}
}
