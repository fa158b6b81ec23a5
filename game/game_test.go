package game_test

import (
	"bytes"
	"context"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/lvgames/arena"
	"github.com/katalvlaran/lvgames/condition"
	"github.com/katalvlaran/lvgames/game"
	"github.com/katalvlaran/lvgames/internal/arenatest"
	"github.com/katalvlaran/lvgames/sets"
)

type GameSuite struct {
	suite.Suite

	arena    *arena.Arena[string]
	recorder *tracetest.SpanRecorder
	provider *sdktrace.TracerProvider
	metrics  *game.Metrics
	logs     *bytes.Buffer
	opts     []game.Option
}

func (s *GameSuite) SetupTest() {
	a, err := arenatest.Triangle()
	s.Require().NoError(err)
	s.arena = a

	s.recorder = tracetest.NewSpanRecorder()
	s.provider = sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(s.recorder))
	s.metrics = game.NewMetrics(prometheus.NewRegistry(), "lvgames")
	s.logs = &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(s.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s.opts = []game.Option{
		game.WithLogger(logger),
		game.WithTracerProvider(s.provider),
		game.WithMetrics(s.metrics),
	}
}

func (s *GameSuite) TearDownTest() {
	s.Require().NoError(s.provider.Shutdown(context.Background()))
}

func (s *GameSuite) TestNew_Errors() {
	_, err := game.New[string](nil, condition.NewSafety(sets.New("a")))
	s.ErrorIs(err, game.ErrArenaNil)

	_, err = game.New[string](s.arena, nil)
	s.ErrorIs(err, game.ErrConditionNil)

	_, err = game.New(s.arena, condition.NewReachability(sets.New("zz")))
	s.ErrorIs(err, condition.ErrIncompatibleArena)

	_, err = game.New(s.arena, condition.NewParity(map[string]int{"a": 1}))
	s.ErrorIs(err, condition.ErrIncompatibleArena)

	_, err = game.New(s.arena, condition.NewSafety(sets.New("a")), game.WithLogger(nil))
	s.ErrorIs(err, game.ErrOptionViolation)
	_, err = game.New(s.arena, condition.NewSafety(sets.New("a")), game.WithTracerProvider(nil))
	s.ErrorIs(err, game.ErrOptionViolation)
}

func (s *GameSuite) TestWinningRegions_Delegate() {
	g, err := game.New(s.arena, condition.NewReachability(sets.New("c")), s.opts...)
	s.Require().NoError(err)
	s.Same(s.arena, g.Arena())
	s.Equal(condition.KindReachability, g.Condition().Kind())

	w0, err := g.WinningRegion0()
	s.Require().NoError(err)
	s.Equal([]string{"a", "b", "c"}, sets.Sorted(w0))
	w1, err := g.WinningRegion1()
	s.Require().NoError(err)
	s.Empty(sets.Sorted(w1))

	g, err = game.New(s.arena, condition.NewSafety(sets.New("a", "b")))
	s.Require().NoError(err)
	w1, err = g.WinningRegion1()
	s.Require().NoError(err)
	s.Equal([]string{"c"}, sets.Sorted(w1))
	s.Equal("Game(Safety({a, b}), 3 vertices, 4 edges)", g.String())
}

func (s *GameSuite) TestDual() {
	g, err := game.New(s.arena, condition.NewSafety(sets.New("a", "b")), s.opts...)
	s.Require().NoError(err)

	d, err := g.Dual()
	s.Require().NoError(err)
	s.Equal(condition.KindReachability, d.Condition().Kind())
	s.True(sets.Equal(s.arena.Player1(), d.Arena().Player0()))

	w1, err := g.WinningRegion1()
	s.Require().NoError(err)
	dw0, err := d.WinningRegion0()
	s.Require().NoError(err)
	s.True(sets.Equal(w1, dw0))

	// the dual keeps the instrumentation
	_, err = d.Solve(context.Background())
	s.Require().NoError(err)
	s.Len(s.recorder.Ended(), 1)

	p, err := game.New(s.arena, condition.NewParity(map[string]int{"a": 0, "b": 1, "c": 2}))
	s.Require().NoError(err)
	_, err = p.Dual()
	s.ErrorIs(err, condition.ErrUnsupportedOperation)
}

func (s *GameSuite) TestSolve_Instrumented() {
	g, err := game.New(s.arena, condition.NewReachability(sets.New("c")), s.opts...)
	s.Require().NoError(err)

	sol, err := g.Solve(context.Background())
	s.Require().NoError(err)
	s.Equal(condition.KindReachability, sol.Kind)
	s.Equal([]string{"a", "b", "c"}, sets.Sorted(sol.Region0))
	s.Empty(sets.Sorted(sol.Region1))
	winner, ok := sol.Winner("b")
	s.True(ok)
	s.Equal(arena.Player0, winner)
	_, ok = sol.Winner("zz")
	s.False(ok)

	spans := s.recorder.Ended()
	s.Require().Len(spans, 1)
	s.Equal("game.Solve", spans[0].Name())
	attrs := spans[0].Attributes()
	s.Contains(attrs, attribute.String("condition", "reachability"))
	s.Contains(attrs, attribute.Int("vertices", 3))
	s.Contains(attrs, attribute.Int("region0", 3))
	s.Contains(attrs, attribute.Int("region1", 0))

	s.Equal(1.0, testutil.ToFloat64(s.metrics.SolvesTotal.WithLabelValues("reachability", "success")))
	s.Equal(1, testutil.CollectAndCount(s.metrics.SolveDurationSeconds))

	s.Contains(s.logs.String(), "game solved")
	s.Contains(s.logs.String(), "condition=reachability")
}

func (s *GameSuite) TestSolve_Parity() {
	g, err := game.New(s.arena, condition.NewParity(map[string]int{"a": 0, "b": 1, "c": 2}), s.opts...)
	s.Require().NoError(err)

	_, err = g.Solve(context.Background())
	s.ErrorIs(err, condition.ErrNotImplemented)

	spans := s.recorder.Ended()
	s.Require().Len(spans, 1)
	s.Equal(codes.Error, spans[0].Status().Code)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.SolvesTotal.WithLabelValues("parity", "error")))
	s.Contains(s.logs.String(), "game solve failed")
}

func (s *GameSuite) TestSolve_Canceled() {
	g, err := game.New(s.arena, condition.NewReachability(sets.New("c")), s.opts...)
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = g.Solve(ctx)
	s.ErrorIs(err, context.Canceled)
	s.Empty(s.recorder.Ended())
}

func (s *GameSuite) TestSolve_DebugGated() {
	var logs bytes.Buffer
	quiet := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelInfo}))
	g, err := game.New(s.arena, condition.NewRecurrence(sets.New("c")), game.WithLogger(quiet))
	s.Require().NoError(err)

	_, err = g.Solve(context.Background())
	s.Require().NoError(err)
	s.Empty(logs.String())
}

func TestGameSuite(t *testing.T) {
	suite.Run(t, new(GameSuite))
}

func TestSolveAll_MatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	var games []*game.Game[int]
	for range 40 {
		a := arenatest.Random(rng, 1+rng.Intn(30), 3)
		conds := []condition.Condition[int]{
			condition.NewSafety(arenatest.RandomSubset(rng, a, 0.6)),
			condition.NewReachability(arenatest.RandomSubset(rng, a, 0.2)),
			condition.NewRecurrence(arenatest.RandomSubset(rng, a, 0.3)),
			condition.NewPersistence(arenatest.RandomSubset(rng, a, 0.6)),
		}
		for _, c := range conds {
			g, err := game.New(a, c)
			require.NoError(t, err)
			games = append(games, g)
		}
	}

	got, err := game.SolveAll(context.Background(), games, 4)
	require.NoError(t, err)
	require.Len(t, got, len(games))
	for i, g := range games {
		w0, err := g.WinningRegion0()
		require.NoError(t, err)
		w1, err := g.WinningRegion1()
		require.NoError(t, err)
		assert.True(t, sets.Equal(w0, got[i].Region0), "game %d %v", i, g)
		assert.True(t, sets.Equal(w1, got[i].Region1), "game %d %v", i, g)
	}
}

func TestSolveAll_Errors(t *testing.T) {
	a, err := arenatest.Triangle()
	require.NoError(t, err)
	ok, err := game.New(a, condition.NewReachability(sets.New("c")))
	require.NoError(t, err)
	parity, err := game.New(a, condition.NewParity(map[string]int{"a": 0, "b": 1, "c": 2}))
	require.NoError(t, err)

	_, err = game.SolveAll(context.Background(), []*game.Game[string]{ok, parity, ok}, 2)
	assert.ErrorIs(t, err, condition.ErrNotImplemented)

	_, err = game.SolveAll(context.Background(), []*game.Game[string]{ok, nil}, 0)
	assert.ErrorIs(t, err, game.ErrGameNil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = game.SolveAll(ctx, []*game.Game[string]{ok, ok}, 1)
	assert.ErrorIs(t, err, context.Canceled)

	out, err := game.SolveAll[string](context.Background(), nil, 3)
	require.NoError(t, err)
	assert.Empty(t, out)
}

// Player 1 winning Recurrence(F) on A is Player 0 winning Persistence(V \ F)
// on the dual arena, and the same holds for every determined condition.
func TestDual_Duality(t *testing.T) {
	rng := rand.New(rand.NewSource(29))
	for round := range 100 {
		a := arenatest.Random(rng, 1+rng.Intn(20), 3)
		for _, c := range []condition.Condition[int]{
			condition.NewRecurrence(arenatest.RandomSubset(rng, a, 0.3)),
			condition.NewSafety(arenatest.RandomSubset(rng, a, 0.6)),
		} {
			g, err := game.New(a, c)
			require.NoError(t, err)
			d, err := g.Dual()
			require.NoError(t, err)

			w1, err := g.WinningRegion1()
			require.NoError(t, err)
			dw0, err := d.WinningRegion0()
			require.NoError(t, err)
			require.True(t, sets.Equal(w1, dw0), "round %d %v", round, g)

			w0, err := g.WinningRegion0()
			require.NoError(t, err)
			dw1, err := d.WinningRegion1()
			require.NoError(t, err)
			require.True(t, sets.Equal(w0, dw1), "round %d %v", round, g)
		}
	}
}
