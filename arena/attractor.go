package arena

import (
	"github.com/katalvlaran/lvgames/sets"
)

// ControlledPredecessors is one step of the attractor operator:
//
//	{v ∈ own : succ(v) ∩ targets ≠ ∅} ∪ {v ∈ other : succ(v) ⊆ targets}
//
// An own vertex joins if it can move into targets; an other vertex joins only
// if every move leads into targets. Only vertices of the arena are considered.
// Complexity: O(V + E).
func (a *Arena[V]) ControlledPredecessors(targets, own, other sets.Set[V]) sets.Set[V] {
	if targets == nil {
		targets = a.newSet()
	}
	var out []V
	for _, v := range a.vertices {
		succ := a.successors(v)
		switch {
		case in(own, v) && sets.Intersects(succ, targets):
			out = append(out, v)
		case in(other, v) && succ.SubsetOf(targets):
			out = append(out, v)
		}
	}

	return a.newSet(out...)
}

// Attractor returns the set of vertices from which own can force a visit to
// targets in finitely many steps, whatever other does: the least fixpoint of
// X ↦ targets ∪ ControlledPredecessors(X, own, other).
//
// Implementation (worklist):
//   - Stage 1: give every vertex a counter: 0 in targets, 1 if owned by own,
//     |succ(v)| if owned by other. Vertices of neither side never join.
//   - Stage 2: seed the frontier with targets. Pop a vertex, decrement the
//     counter of each predecessor still positive; a counter reaching 0 adds
//     that predecessor to the result and the frontier.
//
// Target vertices outside the arena are ignored.
// Complexity: O(V + E) after the adjacency caches are warm.
func (a *Arena[V]) Attractor(targets, own, other sets.Set[V]) sets.Set[V] {
	counter := make(map[V]int, len(a.vertices))
	frontier := make([]V, 0, len(a.vertices))
	for _, v := range a.vertices {
		switch {
		case in(targets, v):
			counter[v] = 0
			frontier = append(frontier, v)
		case in(own, v):
			counter[v] = 1
		case in(other, v):
			counter[v] = a.successors(v).Len()
		default:
			counter[v] = -1
		}
	}

	attracted := make([]V, len(frontier), len(a.vertices))
	copy(attracted, frontier)
	for len(frontier) > 0 {
		v := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for p := range a.predecessors(v).All() {
			if counter[p] <= 0 {
				continue
			}
			counter[p]--
			if counter[p] == 0 {
				attracted = append(attracted, p)
				frontier = append(frontier, p)
			}
		}
	}

	return a.newSet(attracted...)
}

// AttractorFixpoint computes the same set as Attractor by the reference
// definition: start from targets and add ControlledPredecessors until
// nothing changes. At most |V| rounds of O(V + E) each.
func (a *Arena[V]) AttractorFixpoint(targets, own, other sets.Set[V]) sets.Set[V] {
	current := a.restrict(targets)
	for {
		next := current.Union(a.ControlledPredecessors(current, own, other))
		// next ⊇ current, so equal sizes mean equal sets
		if next.Len() == current.Len() {
			return current
		}
		current = next
	}
}

// AttractorOf is the attractor of targets for player p, using the arena's
// configured Strategy.
func (a *Arena[V]) AttractorOf(p Player, targets sets.Set[V]) sets.Set[V] {
	own, other := a.sides(p)
	if a.opts.Strategy == Fixpoint {
		return a.AttractorFixpoint(targets, own, other)
	}

	return a.Attractor(targets, own, other)
}

// ControlledPredecessorsOf is ControlledPredecessors for player p.
func (a *Arena[V]) ControlledPredecessorsOf(p Player, targets sets.Set[V]) sets.Set[V] {
	own, other := a.sides(p)

	return a.ControlledPredecessors(targets, own, other)
}

// Attractor0 returns the Player 0 attractor of targets.
func (a *Arena[V]) Attractor0(targets sets.Set[V]) sets.Set[V] {
	return a.AttractorOf(Player0, targets)
}

// Attractor1 returns the Player 1 attractor of targets.
func (a *Arena[V]) Attractor1(targets sets.Set[V]) sets.Set[V] {
	return a.AttractorOf(Player1, targets)
}

// ControlledPredecessors0 returns the Player 0 controlled predecessors of targets.
func (a *Arena[V]) ControlledPredecessors0(targets sets.Set[V]) sets.Set[V] {
	return a.ControlledPredecessorsOf(Player0, targets)
}

// ControlledPredecessors1 returns the Player 1 controlled predecessors of targets.
func (a *Arena[V]) ControlledPredecessors1(targets sets.Set[V]) sets.Set[V] {
	return a.ControlledPredecessorsOf(Player1, targets)
}

// sides returns (own, other) for p.
func (a *Arena[V]) sides(p Player) (own, other sets.Set[V]) {
	if p == Player1 {
		return a.player1, a.player0
	}

	return a.player0, a.player1
}

// restrict returns targets ∩ V in the arena's representation.
func (a *Arena[V]) restrict(targets sets.Set[V]) sets.Set[V] {
	var kept []V
	for _, v := range a.vertices {
		if in(targets, v) {
			kept = append(kept, v)
		}
	}

	return a.newSet(kept...)
}

func in[V comparable](s sets.Set[V], v V) bool {
	return s != nil && s.Contains(v)
}
