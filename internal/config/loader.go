package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, an optional file and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if XIAOZHAO_CONFIG is set
//  3. env (prefix XIAOZHAO_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("XIAOZHAO_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Env keys like XIAOZHAO_WORKER_COUNT map to worker_count; underscores
	// are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("XIAOZHAO_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "xiaozhao_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.WorkerCount < 1 {
		return fmt.Errorf("%w: worker_count must be positive", ErrInvalidConfig)
	}
	if c.HistorySize < 1 {
		return fmt.Errorf("%w: history_size must be positive", ErrInvalidConfig)
	}
	if c.PercentPrecision < 0 {
		return fmt.Errorf("%w: percent_precision must not be negative", ErrInvalidConfig)
	}
	if len(c.DomesticTiers) == 0 {
		return fmt.Errorf("%w: domestic_tiers must not be empty", ErrInvalidConfig)
	}
	if len(c.Cohorts) == 0 {
		return fmt.Errorf("%w: cohorts must not be empty", ErrInvalidConfig)
	}
	return nil
}
