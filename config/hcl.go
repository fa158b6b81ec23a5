package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// hclConfig mirrors Config in HCL syntax:
//
//	attractor   = "fixpoint"
//	parallelism = 2
//	log_level   = "debug"
//	metrics {
//	  enabled   = true
//	  namespace = "lvgames"
//	}
//
// Absent attributes keep their Default values.
type hclConfig struct {
	Attractor   string      `hcl:"attractor,optional"`
	Parallelism int         `hcl:"parallelism,optional"`
	LogLevel    string      `hcl:"log_level,optional"`
	Metrics     *hclMetrics `hcl:"metrics,block"`
}

type hclMetrics struct {
	Enabled   bool   `hcl:"enabled,optional"`
	Namespace string `hcl:"namespace,optional"`
}

// LoadHCL decodes HCL source over Default and validates the result.
// filename only labels diagnostics.
func LoadHCL(src []byte, filename string) (Config, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, diags.Error())
	}

	def := Default()
	parsed := hclConfig{
		Attractor:   def.Attractor,
		Parallelism: def.Parallelism,
		LogLevel:    def.LogLevel,
	}
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, diags.Error())
	}

	cfg := Config{
		Attractor:   parsed.Attractor,
		Parallelism: parsed.Parallelism,
		LogLevel:    parsed.LogLevel,
		Metrics:     def.Metrics,
	}
	if m := parsed.Metrics; m != nil {
		cfg.Metrics.Enabled = m.Enabled
		if m.Namespace != "" {
			cfg.Metrics.Namespace = m.Namespace
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func isHCL(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".hcl")
}
