// Package config defines engine configuration structures and loading hooks.
//
// The institution-tier marker table, the cohort boundary table and the
// province alias table are external contracts: they live here, not in the
// domain packages, so the recruiting office can update them without a code
// change.
package config

import (
	"runtime"

	"github.com/okian/xiaozhao/internal/domain/enrich"
	"github.com/okian/xiaozhao/internal/domain/stats"
	"github.com/okian/xiaozhao/internal/domain/tier"
)

// TierRule is one marker-table row.
type TierRule struct {
	Precedence int    `koanf:"precedence"`
	Marker     string `koanf:"marker"`
	Tier       string `koanf:"tier"`
}

// CohortRule is one birth-year boundary row.
type CohortRule struct {
	MinYear int    `koanf:"min_year"`
	Label   string `koanf:"label"`
}

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// WorkerCount sets the enrichment fan-out degree.
	WorkerCount int `koanf:"worker_count"`

	// HistorySize bounds the retained batch snapshots.
	HistorySize int `koanf:"history_size"`

	// PercentPrecision is the number of percentage decimal places.
	PercentPrecision int `koanf:"percent_precision"`

	// OverseasGate marks overseas institution-category labels.
	OverseasGate string `koanf:"overseas_gate"`

	// OverseasFallback is the tier for overseas labels matching no rule.
	OverseasFallback string `koanf:"overseas_fallback"`

	// UnclassifiedTier labels institutions matching no marker.
	UnclassifiedTier string `koanf:"unclassified_tier"`

	// OverseasTiers and DomesticTiers are the ranked marker tables.
	OverseasTiers []TierRule `koanf:"overseas_tiers"`
	DomesticTiers []TierRule `koanf:"domestic_tiers"`

	// Cohorts is the birth-year bucket table; CohortFallback buckets years
	// before the earliest rule.
	Cohorts        []CohortRule `koanf:"cohorts"`
	CohortFallback string       `koanf:"cohort_fallback"`

	// ProvinceAliases normalizes origin spellings to province names.
	ProvinceAliases map[string]string `koanf:"province_aliases"`

	// KeySchools are the named key institutions, in report order.
	KeySchools []string `koanf:"key_schools"`
}

// New returns a Config carrying the authoritative defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		WorkerCount:      runtime.NumCPU(),
		HistorySize:      50,
		PercentPrecision: 1,
		OverseasGate:     tier.DefaultOverseasGate,
		OverseasFallback: tier.DefaultOverseasFallback,
		UnclassifiedTier: tier.DefaultFallback,
		OverseasTiers:    tierRules(tier.DefaultOverseasRules()),
		DomesticTiers:    tierRules(tier.DefaultDomesticRules()),
		Cohorts:          cohortRules(enrich.DefaultCohorts()),
		CohortFallback:   enrich.DefaultCohortFallback,
		ProvinceAliases:  enrich.DefaultProvinceAliases(),
		KeySchools:       stats.DefaultKeySchools(),
	}
}

// TierOptions converts the configured tables into classifier options.
func (c *Config) TierOptions() []tier.Option {
	return []tier.Option{
		tier.WithOverseasGate(c.OverseasGate),
		tier.WithOverseasFallback(c.OverseasFallback),
		tier.WithFallback(c.UnclassifiedTier),
		tier.WithOverseasRules(classifierRules(c.OverseasTiers)),
		tier.WithDomesticRules(classifierRules(c.DomesticTiers)),
	}
}

// EnrichOptions converts the configured tables into enricher options.
func (c *Config) EnrichOptions() []enrich.Option {
	rules := make([]enrich.CohortRule, len(c.Cohorts))
	for i, r := range c.Cohorts {
		rules[i] = enrich.CohortRule{MinYear: r.MinYear, Label: r.Label}
	}
	return []enrich.Option{
		enrich.WithClassifier(tier.New(c.TierOptions()...)),
		enrich.WithCohorts(rules),
		enrich.WithCohortFallback(c.CohortFallback),
		enrich.WithProvinceAliases(c.ProvinceAliases),
	}
}

// StatsOptions converts the configured tables into aggregator options.
func (c *Config) StatsOptions() []stats.Option {
	return []stats.Option{
		stats.WithPrecision(c.PercentPrecision),
		stats.WithKeySchools(c.KeySchools),
	}
}

func tierRules(rules []tier.Rule) []TierRule {
	out := make([]TierRule, len(rules))
	for i, r := range rules {
		out[i] = TierRule{Precedence: r.Precedence, Marker: r.Marker, Tier: r.Tier}
	}
	return out
}

func classifierRules(rules []TierRule) []tier.Rule {
	out := make([]tier.Rule, len(rules))
	for i, r := range rules {
		out[i] = tier.Rule{Precedence: r.Precedence, Marker: r.Marker, Tier: r.Tier}
	}
	return out
}

func cohortRules(rules []enrich.CohortRule) []CohortRule {
	out := make([]CohortRule, len(rules))
	for i, r := range rules {
		out[i] = CohortRule{MinYear: r.MinYear, Label: r.Label}
	}
	return out
}
