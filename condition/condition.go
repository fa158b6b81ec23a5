package condition

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvgames/arena"
	"github.com/katalvlaran/lvgames/sets"
)

// Sentinel errors for condition operations.
var (
	// ErrIncompatibleArena indicates the condition references vertices the
	// arena does not have (or, for Parity, leaves arena vertices uncolored).
	ErrIncompatibleArena = errors.New("condition: incompatible arena")

	// ErrUnsupportedOperation indicates Complement was requested from a
	// variant that has none.
	ErrUnsupportedOperation = errors.New("condition: unsupported operation")

	// ErrNotImplemented indicates a winning-region algorithm that is
	// deliberately absent (Parity).
	ErrNotImplemented = errors.New("condition: not implemented")
)

// Kind names a winning-condition variant.
type Kind uint8

const (
	// KindSafety: stay inside S forever.
	KindSafety Kind = iota
	// KindReachability: visit R at least once.
	KindReachability
	// KindRecurrence: visit F infinitely often (Büchi).
	KindRecurrence
	// KindPersistence: eventually stay inside C forever (co-Büchi).
	KindPersistence
	// KindParity: the largest color seen infinitely often is even.
	KindParity
)

var kindNames = [...]string{
	KindSafety:       "safety",
	KindReachability: "reachability",
	KindRecurrence:   "recurrence",
	KindPersistence:  "persistence",
	KindParity:       "parity",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Condition is a winning condition for Player 0, stated over vertex sets and
// bound to an arena only when one of its methods is called.
//
// Every method validates compatibility first, so a query on a foreign arena
// fails with ErrIncompatibleArena instead of computing on unknown vertices.
type Condition[V comparable] interface {
	// Kind reports the variant.
	Kind() Kind

	// Check returns ErrIncompatibleArena unless the parameters fit a.
	Check(a *arena.Arena[V]) error

	// Complement returns the condition Player 1 wins with on the dual arena.
	Complement(a *arena.Arena[V]) (Condition[V], error)

	// WinningRegion0 returns the vertices from which Player 0 wins.
	WinningRegion0(a *arena.Arena[V]) (sets.Set[V], error)

	// WinningRegion1 returns the vertices from which Player 1 wins.
	WinningRegion1(a *arena.Arena[V]) (sets.Set[V], error)
}

// checkSubset verifies s ⊆ V(a).
func checkSubset[V comparable](a *arena.Arena[V], s sets.Set[V], role string) error {
	if a == nil {
		return fmt.Errorf("%w: arena is nil", ErrIncompatibleArena)
	}
	if !s.SubsetOf(a.Vertices()) {
		return fmt.Errorf("%w: %s vertices must be a subset of the arena vertices", ErrIncompatibleArena, role)
	}

	return nil
}

// orEmpty normalizes a nil parameter set to the empty set.
func orEmpty[V comparable](s sets.Set[V]) sets.Set[V] {
	if s == nil {
		return sets.New[V]()
	}

	return s
}
