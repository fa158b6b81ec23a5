// Package arena provides the game graph on which two-player infinite games
// are played, together with the attractor engine every winning-condition
// solver is built on.
//
// An arena A = (V, V₀, V₁, E) is a finite directed graph whose vertices are
// split between Player 0 (V₀) and Player 1 (V₁). The owner of the current
// vertex picks the next edge. Every vertex must have a successor, so plays
// are infinite.
//
// What:
//
//   - New: validated construction, generic over any comparable vertex type.
//   - Successors / Predecessors: frozen adjacency sets, memoized lazily and
//     safe under concurrent queries.
//   - Dual: the same graph with the players swapped.
//   - ControlledPredecessors: one backward step, "can move into" for own
//     vertices and "is forced into" for the opponent's.
//   - Attractor: linear-time worklist computation of the least fixpoint
//     targets ∪ CPre(X).
//   - AttractorFixpoint: the naive repeated-union reference; it must agree
//     with Attractor on every input.
//   - Attractor0/1, ControlledPredecessors0/1, AttractorOf,
//     ControlledPredecessorsOf: player-bound forms.
//
// Options:
//
//   - WithAttractor(Worklist|Fixpoint)  algorithm behind the bound forms.
//   - WithSetFactory(f)                 vertex-set representation produced by
//     the arena; any sets.Set implementation works.
//
// Complexity:
//
//   - New:                    O(V + E)
//   - ControlledPredecessors: O(V + E)
//   - Attractor:              O(V + E)
//   - AttractorFixpoint:      O(V·(V + E))
//
// Errors:
//
//   - ErrInvalidArena     overlapping or non-covering partition, dead end,
//     or an edge leaving V.
//   - ErrVertexNotFound   adjacency query outside V.
//   - ErrOptionViolation  bad Option value.
package arena
