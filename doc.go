// Package lvgames solves two-player infinite games on finite arenas.
//
// A play is an infinite walk through a directed graph whose vertices are
// owned by Player 0 or Player 1; the owner of the current vertex picks the
// next edge. A winning condition decides which plays Player 0 wins. Solving a
// game means computing the winning region of each player: the vertices from
// which that player can force a win no matter what the opponent does.
//
// Everything is organized in small packages:
//
//	sets/        Set[V] capability and the map-backed Enum implementation
//	arena/       validated Arena[V], duality, controlled predecessors and
//	             the linear-time attractor (with a fixpoint reference)
//	condition/   Safety, Reachability, Recurrence, Persistence, Parity
//	game/        Game pairing, Dual, instrumented Solve and SolveAll
//	config/      YAML settings turned into arena and game options
//	examples/    runnable supervisory-control scenarios
//
// Quick ASCII example:
//
//	a → b → c → a,  b → a        V₀ = {a, b}, V₁ = {c}
//
// Reachability({c}) is won by Player 0 from every vertex: b moves to c, and a
// can only move to b. Safety({a, b}) is lost only at c itself: Player 0
// never has to leave {a, b}.
//
//	go get github.com/katalvlaran/lvgames
package lvgames
