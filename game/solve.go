package game

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvgames/arena"
	"github.com/katalvlaran/lvgames/condition"
	"github.com/katalvlaran/lvgames/sets"
)

// Solution holds both winning regions of a solved game.
type Solution[V comparable] struct {
	// Kind is the solved condition's variant.
	Kind condition.Kind

	// Region0 is the set of vertices from which Player 0 wins.
	Region0 sets.Set[V]

	// Region1 is the set of vertices from which Player 1 wins.
	Region1 sets.Set[V]

	// Duration is the time spent computing the regions.
	Duration time.Duration
}

// Winner reports which player wins from v, or false if v is not an arena vertex.
func (s *Solution[V]) Winner(v V) (arena.Player, bool) {
	switch {
	case s.Region0.Contains(v):
		return arena.Player0, true
	case s.Region1.Contains(v):
		return arena.Player1, true
	default:
		return arena.Player0, false
	}
}

// Solve computes both winning regions once. Region1 is derived as V \ Region0,
// which is exact for every determined condition.
//
// Each call records a "game.Solve" span, one metrics sample and a debug log
// line. ctx is checked before solving; a started computation runs to the end.
func (g *Game[V]) Solve(ctx context.Context) (*Solution[V], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	kind := g.cond.Kind().String()
	logger := g.opts.logger()

	ctx, span := g.opts.tracer().Start(ctx, "game.Solve",
		trace.WithAttributes(
			attribute.String("condition", kind),
			attribute.Int("vertices", g.arena.VertexCount()),
			attribute.Int("edges", g.arena.EdgeCount()),
		),
	)
	defer span.End()

	start := time.Now()
	region0, err := g.cond.WinningRegion0(g.arena)
	elapsed := time.Since(start)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "solve failed")
		g.opts.Metrics.observe(kind, resultError, elapsed)
		logger.WarnContext(ctx, "game solve failed",
			slog.String("condition", kind),
			slog.String("error", err.Error()),
		)

		return nil, fmt.Errorf("game: solve %s: %w", kind, err)
	}
	region1 := g.arena.Vertices().Difference(region0)

	span.SetAttributes(
		attribute.Int("region0", region0.Len()),
		attribute.Int("region1", region1.Len()),
	)
	g.opts.Metrics.observe(kind, resultSuccess, elapsed)
	if logger.Enabled(ctx, slog.LevelDebug) {
		logger.DebugContext(ctx, "game solved",
			slog.String("condition", kind),
			slog.Int("vertices", g.arena.VertexCount()),
			slog.Int("region0", region0.Len()),
			slog.Int("region1", region1.Len()),
			slog.Duration("duration", elapsed),
		)
	}

	return &Solution[V]{
		Kind:     g.cond.Kind(),
		Region0:  region0,
		Region1:  region1,
		Duration: elapsed,
	}, nil
}

// SolveAll solves games concurrently with at most limit workers and returns
// the solutions in input order. limit < 1 means GOMAXPROCS.
//
// The first failure cancels the shared context, so no further games are
// started, and is returned wrapped with the game's index.
func SolveAll[V comparable](ctx context.Context, games []*Game[V], limit int) ([]*Solution[V], error) {
	if limit < 1 {
		limit = runtime.GOMAXPROCS(0)
	}
	out := make([]*Solution[V], len(games))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, gm := range games {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if gm == nil {
				return fmt.Errorf("%w: index %d", ErrGameNil, i)
			}
			sol, err := gm.Solve(gctx)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			out[i] = sol

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
