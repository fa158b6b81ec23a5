package arena

import (
	"fmt"
	"slices"
	"sync"

	"github.com/katalvlaran/lvgames/sets"
)

// Arena is an immutable game graph A = (V, V₀, V₁, E).
//
// Raw adjacency lists are built once in New. The frozen successor and
// predecessor sets are materialized lazily and memoized; muCache guards only
// those two caches, which never affect what the Arena reports.
type Arena[V comparable] struct {
	// Structure, never mutated after New
	vertices []V         // insertion order, deduplicated
	universe sets.Set[V] // V
	player0  sets.Set[V] // V₀
	player1  sets.Set[V] // V₁
	edges    []Edge[V]   // deduplicated E
	out      map[V][]V   // raw successor lists
	in       map[V][]V   // raw predecessor lists

	opts    Options
	newSet  sets.Factory[V]
	muCache sync.RWMutex // guards succCache and predCache

	succCache map[V]sets.Set[V]
	predCache map[V]sets.Set[V]
}

// New builds and validates an arena.
//
// Duplicate vertices and edges collapse. Validation fails with
// ErrInvalidArena on the first violated rule, checked in this order:
//
//  1. V₀ ∩ V₁ = ∅
//  2. V₀ ∪ V₁ = V
//  3. every vertex has at least one successor
//  4. every edge endpoint belongs to V
//
// Complexity: O(V + E).
func New[V comparable](vertices, player0, player1 []V, edges []Edge[V], opts ...Option) (*Arena[V], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	newSet := sets.EnumFactory[V]()
	if o.factory != nil {
		f, ok := o.factory.(sets.Factory[V])
		if !ok {
			return nil, fmt.Errorf("%w: set factory does not match the vertex type", ErrOptionViolation)
		}
		newSet = f
	}

	a := &Arena[V]{
		vertices:  dedup(vertices),
		player0:   newSet(player0...),
		player1:   newSet(player1...),
		out:       make(map[V][]V, len(vertices)),
		in:        make(map[V][]V, len(vertices)),
		opts:      o,
		newSet:    newSet,
		succCache: make(map[V]sets.Set[V]),
		predCache: make(map[V]sets.Set[V]),
	}
	a.universe = newSet(a.vertices...)
	a.edges = dedup(edges)
	for _, e := range a.edges {
		a.out[e.From] = append(a.out[e.From], e.To)
		a.in[e.To] = append(a.in[e.To], e.From)
	}

	if err := a.verify(); err != nil {
		return nil, err
	}

	return a, nil
}

// verify checks the arena invariants in the documented order.
func (a *Arena[V]) verify() error {
	for v := range a.player0.All() {
		if a.player1.Contains(v) {
			return fmt.Errorf("%w: player 0 and player 1 vertices are not disjoint (%v)", ErrInvalidArena, v)
		}
	}
	if !sets.Equal(a.player0.Union(a.player1), a.universe) {
		return fmt.Errorf("%w: player 0 and player 1 vertices do not partition the vertices", ErrInvalidArena)
	}
	for _, v := range a.vertices {
		if len(a.out[v]) == 0 {
			return fmt.Errorf("%w: vertex %v has no successors", ErrInvalidArena, v)
		}
	}
	for _, e := range a.edges {
		if !a.universe.Contains(e.From) || !a.universe.Contains(e.To) {
			return fmt.Errorf("%w: edge %v -> %v leaves the vertex set", ErrInvalidArena, e.From, e.To)
		}
	}

	return nil
}

// Vertices returns V.
func (a *Arena[V]) Vertices() sets.Set[V] { return a.universe }

// Player0 returns V₀.
func (a *Arena[V]) Player0() sets.Set[V] { return a.player0 }

// Player1 returns V₁.
func (a *Arena[V]) Player1() sets.Set[V] { return a.player1 }

// VerticesOf returns the vertices controlled by p.
func (a *Arena[V]) VerticesOf(p Player) sets.Set[V] {
	if p == Player1 {
		return a.player1
	}

	return a.player0
}

// Edges returns a copy of E in first-seen order.
func (a *Arena[V]) Edges() []Edge[V] { return slices.Clone(a.edges) }

// VertexCount returns |V|.
func (a *Arena[V]) VertexCount() int { return len(a.vertices) }

// EdgeCount returns |E|.
func (a *Arena[V]) EdgeCount() int { return len(a.edges) }

// HasVertex reports whether v ∈ V.
func (a *Arena[V]) HasVertex(v V) bool { return a.universe.Contains(v) }

// Owner returns the player controlling v; ok is false when v ∉ V.
func (a *Arena[V]) Owner(v V) (p Player, ok bool) {
	switch {
	case a.player0.Contains(v):
		return Player0, true
	case a.player1.Contains(v):
		return Player1, true
	default:
		return Player0, false
	}
}

// Options returns the options the arena was built with.
func (a *Arena[V]) Options() Options { return a.opts }

// NewSet builds a set of the arena's representation.
func (a *Arena[V]) NewSet(vs ...V) sets.Set[V] { return a.newSet(vs...) }

// Successors returns {w : (v, w) ∈ E}.
// Returns ErrVertexNotFound if v ∉ V.
// Complexity: O(out-degree) on first call, O(1) afterwards.
func (a *Arena[V]) Successors(v V) (sets.Set[V], error) {
	if !a.HasVertex(v) {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}

	return a.successors(v), nil
}

// Predecessors returns {u : (u, v) ∈ E}.
// Returns ErrVertexNotFound if v ∉ V.
// Complexity: O(in-degree) on first call, O(1) afterwards.
func (a *Arena[V]) Predecessors(v V) (sets.Set[V], error) {
	if !a.HasVertex(v) {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}

	return a.predecessors(v), nil
}

// Dual returns the arena with the player roles swapped. V and E are shared
// (both immutable); caches start empty.
func (a *Arena[V]) Dual() *Arena[V] {
	return &Arena[V]{
		vertices:  a.vertices,
		universe:  a.universe,
		player0:   a.player1,
		player1:   a.player0,
		edges:     a.edges,
		out:       a.out,
		in:        a.in,
		opts:      a.opts,
		newSet:    a.newSet,
		succCache: make(map[V]sets.Set[V]),
		predCache: make(map[V]sets.Set[V]),
	}
}

func (a *Arena[V]) successors(v V) sets.Set[V] {
	return a.memo(a.succCache, a.out, v)
}

func (a *Arena[V]) predecessors(v V) sets.Set[V] {
	return a.memo(a.predCache, a.in, v)
}

// memo returns cache[v], freezing raw[v] into a set on a miss.
// Concurrent misses on the same slot build equal sets; the first stored wins.
func (a *Arena[V]) memo(cache map[V]sets.Set[V], raw map[V][]V, v V) sets.Set[V] {
	a.muCache.RLock()
	s, ok := cache[v]
	a.muCache.RUnlock()
	if ok {
		return s
	}

	s = a.newSet(raw[v]...)

	a.muCache.Lock()
	defer a.muCache.Unlock()
	if cached, ok := cache[v]; ok {
		return cached
	}
	cache[v] = s

	return s
}

// dedup drops repeated items, keeping first occurrences.
func dedup[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}

	return out
}
