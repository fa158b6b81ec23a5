// Package condition defines winning conditions for two-player games on an
// arena.Arena and the algorithms computing their winning regions.
//
// A condition is an objective for Player 0. Its parameters are vertex sets
// (or a coloring) and are bound to an arena only when a method is called, so
// one condition value can be evaluated on several arenas.
//
// What:
//
//   - Safety(S):       stay inside S.             W1 = Attr1(V \ S)
//   - Reachability(R): visit R once.              W0 = Attr0(R)
//   - Recurrence(F):   visit F infinitely often.  W1 by shrinking F
//   - Persistence(C):  eventually stay inside C.  W0 by shrinking V \ C
//   - Parity(Ω):       compatibility check only.
//
// The first four are determined: WinningRegion0 and WinningRegion1 partition
// the vertex set. Complement returns the objective of the opponent, so that
// Player 1 winning c on A equals Player 0 winning c.Complement(A) on A.Dual().
//
//	Safety(S)      ⟷ Reachability(V \ S)
//	Recurrence(F)  ⟷ Persistence(V \ F)
//
// Complexity (n = |V|, m = |E|):
//
//   - Safety, Reachability:    O(n + m)
//   - Recurrence, Persistence: O(n·(n + m))
//
// Errors:
//
//   - ErrIncompatibleArena    parameter set not a subset of V, or an
//     uncolored / negatively colored vertex for Parity.
//   - ErrUnsupportedOperation Complement of Parity.
//   - ErrNotImplemented       winning regions of Parity.
package condition
