package game

import (
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Sentinel errors for game construction and solving.
var (
	// ErrArenaNil indicates New was called without an arena.
	ErrArenaNil = errors.New("game: arena is nil")

	// ErrConditionNil indicates New was called without a condition.
	ErrConditionNil = errors.New("game: condition is nil")

	// ErrGameNil indicates a nil *Game inside a SolveAll batch.
	ErrGameNil = errors.New("game: game is nil")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("game: option violation")
)

// instrumentationName identifies the tracer of this package.
const instrumentationName = "github.com/katalvlaran/lvgames/game"

// Option configures a Game at construction time.
// Invalid options are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the resolved instrumentation of a Game.
type Options struct {
	// Logger receives solve events. Nil means slog.Default() at solve time.
	Logger *slog.Logger

	// TracerProvider creates the solve spans. Nil means the global provider.
	TracerProvider trace.TracerProvider

	// Metrics records solve counts and durations. Nil disables metrics.
	Metrics *Metrics

	// internal error recorded during option parsing
	err error
}

// WithLogger sets the structured logger used by Solve.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.err = fmt.Errorf("%w: logger is nil", ErrOptionViolation)
			return
		}
		o.Logger = l
	}
}

// WithTracerProvider sets the OpenTelemetry provider used by Solve.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		if tp == nil {
			o.err = fmt.Errorf("%w: tracer provider is nil", ErrOptionViolation)
			return
		}
		o.TracerProvider = tp
	}
}

// WithMetrics attaches Prometheus collectors created by NewMetrics.
// A nil m keeps metrics disabled.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return slog.Default()
}

func (o Options) tracer() trace.Tracer {
	tp := o.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return tp.Tracer(instrumentationName)
}
