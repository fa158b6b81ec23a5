// Package config loads solver settings from YAML (or HCL, see LoadHCL) and
// turns them into arena and game options.
//
//	attractor: worklist   # or fixpoint
//	parallelism: 4        # SolveAll worker limit
//	log_level: info       # debug | info | warn | error
//	metrics:
//	  enabled: true
//	  namespace: lvgames
//
// Unknown keys are rejected. Every failure wraps ErrInvalidConfig.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvgames/arena"
	"github.com/katalvlaran/lvgames/game"
)

// ErrInvalidConfig indicates an unreadable or semantically invalid configuration.
var ErrInvalidConfig = errors.New("config: invalid config")

// Config is the solver configuration.
//
// Thread Safety: Safe to read concurrently. Not safe to modify after Load.
type Config struct {
	// Attractor selects the attractor algorithm ("worklist" or "fixpoint").
	Attractor string `yaml:"attractor"`

	// Parallelism bounds the workers of game.SolveAll.
	Parallelism int `yaml:"parallelism"`

	// LogLevel is the minimum slog level of Logger.
	LogLevel string `yaml:"log_level"`

	// Metrics controls the Prometheus collectors.
	Metrics MetricsConfig `yaml:"metrics"`
}

// MetricsConfig contains metrics settings.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
}

// Default returns the configuration used for absent keys.
func Default() Config {
	return Config{
		Attractor:   arena.Worklist.String(),
		Parallelism: 4,
		LogLevel:    "info",
		Metrics: MetricsConfig{
			Enabled:   false,
			Namespace: "lvgames",
		},
	}
}

// Load decodes YAML from r over Default and validates the result.
// An empty document yields Default.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFile reads the file at path: LoadHCL for a .hcl extension, Load
// (YAML) otherwise.
func LoadFile(path string) (Config, error) {
	if isHCL(path) {
		src, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}

		return LoadHCL(src, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	defer f.Close()

	return Load(f)
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if _, err := arena.ParseStrategy(c.Attractor); err != nil {
		return fmt.Errorf("%w: attractor: %v", ErrInvalidConfig, err)
	}
	if c.Parallelism < 1 {
		return fmt.Errorf("%w: parallelism must be >= 1, got %d", ErrInvalidConfig, c.Parallelism)
	}
	if _, err := c.level(); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}
	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		return fmt.Errorf("%w: metrics.namespace is required when metrics are enabled", ErrInvalidConfig)
	}

	return nil
}

// ArenaOptions returns the arena options selected by c.
// Call on a validated Config.
func (c Config) ArenaOptions() []arena.Option {
	strategy, _ := arena.ParseStrategy(c.Attractor)

	return []arena.Option{arena.WithAttractor(strategy)}
}

// GameOptions returns the game options selected by c. With metrics enabled
// the collectors are registered with reg, so call it once per registry.
func (c Config) GameOptions(reg prometheus.Registerer) []game.Option {
	if !c.Metrics.Enabled {
		return nil
	}

	return []game.Option{game.WithMetrics(game.NewMetrics(reg, c.Metrics.Namespace))}
}

// Logger returns a text logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, _ := c.level()

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (c Config) level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	err := level.UnmarshalText([]byte(c.LogLevel))

	return level, err
}
