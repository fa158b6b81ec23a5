// Package game pairs an arena.Arena with a condition.Condition and solves it.
//
// What:
//
//   - New:       eager compatibility check of the condition against the arena.
//   - Dual:      the game on the dual arena with the complemented condition.
//   - Solve:     both winning regions in one call, instrumented with an
//     OpenTelemetry span, Prometheus metrics and slog debug output.
//   - SolveAll:  bounded concurrent solving of many games (errgroup), results
//     in input order.
//
// Options:
//
//   - WithLogger(l)            *slog.Logger, default slog.Default().
//   - WithTracerProvider(tp)   trace.TracerProvider, default the global one.
//   - WithMetrics(m)           collectors from NewMetrics(reg, namespace).
//
// Metrics (namespace_game_...):
//
//	solves_total{condition, result}
//	solve_duration_seconds{condition}
//
// Errors:
//
//   - ErrArenaNil, ErrConditionNil, ErrGameNil, ErrOptionViolation.
//   - condition errors are wrapped and remain matchable with errors.Is.
package game
