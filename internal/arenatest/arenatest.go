// Package arenatest builds arenas for tests and benchmarks: the small
// hand-written fixtures shared across packages and seeded random arenas for
// property tests.
package arenatest

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvgames/arena"
	"github.com/katalvlaran/lvgames/sets"
)

// Triangle returns the three-vertex arena
//
//	a → b, b → c, c → a, b → a    V₀ = {a, b}, V₁ = {c}
func Triangle(opts ...arena.Option) (*arena.Arena[string], error) {
	return arena.New(
		[]string{"a", "b", "c"},
		[]string{"a", "b"},
		[]string{"c"},
		[]arena.Edge[string]{{From: "a", To: "b"}, {From: "b", To: "c"}, {From: "c", To: "a"}, {From: "b", To: "a"}},
		opts...,
	)
}

// Random returns a valid arena on vertices 0..n-1 where every vertex gets
// between 1 and maxOut successors and owners are drawn uniformly.
func Random(rng *rand.Rand, n, maxOut int, opts ...arena.Option) *arena.Arena[int] {
	if n < 1 {
		n = 1
	}
	if maxOut < 1 {
		maxOut = 1
	}
	vertices := make([]int, n)
	var p0, p1 []int
	var edges []arena.Edge[int]
	for v := 0; v < n; v++ {
		vertices[v] = v
		if rng.Intn(2) == 0 {
			p0 = append(p0, v)
		} else {
			p1 = append(p1, v)
		}
		deg := 1 + rng.Intn(maxOut)
		for i := 0; i < deg; i++ {
			edges = append(edges, arena.Edge[int]{From: v, To: rng.Intn(n)})
		}
	}
	a, err := arena.New(vertices, p0, p1, edges, opts...)
	if err != nil {
		// every vertex has an out-edge and the partition is exact
		panic(fmt.Sprintf("arenatest: random arena rejected: %v", err))
	}

	return a
}

// RandomSubset draws each vertex of a into the result with probability p.
func RandomSubset(rng *rand.Rand, a *arena.Arena[int], p float64) sets.Set[int] {
	var picked []int
	for _, v := range sets.Sorted(a.Vertices()) {
		if rng.Float64() < p {
			picked = append(picked, v)
		}
	}

	return a.NewSet(picked...)
}

// Chain returns 0 → 1 → … → n-1 → n-1 with alternating owners, starting
// with Player 0 at vertex 0.
func Chain(n int, opts ...arena.Option) *arena.Arena[int] {
	vertices := make([]int, n)
	var p0, p1 []int
	var edges []arena.Edge[int]
	for v := 0; v < n; v++ {
		vertices[v] = v
		if v%2 == 0 {
			p0 = append(p0, v)
		} else {
			p1 = append(p1, v)
		}
		next := v + 1
		if next == n {
			next = v
		}
		edges = append(edges, arena.Edge[int]{From: v, To: next})
	}
	a, err := arena.New(vertices, p0, p1, edges, opts...)
	if err != nil {
		panic(fmt.Sprintf("arenatest: chain arena rejected: %v", err))
	}

	return a
}
