package enrich

import "github.com/okian/xiaozhao/internal/domain/tier"

// Option applies a configuration option to the Enricher.
type Option func(*Enricher)

// WithClassifier sets the institution tier classifier.
func WithClassifier(c *tier.Classifier) Option {
	return func(e *Enricher) {
		if c != nil {
			e.classifier = c
		}
	}
}

// WithCohorts replaces the birth-year boundary table.
func WithCohorts(rules []CohortRule) Option {
	return func(e *Enricher) {
		if len(rules) > 0 {
			e.cohorts = append([]CohortRule(nil), rules...)
		}
	}
}

// WithCohortFallback sets the bucket for years before the earliest rule.
func WithCohortFallback(label string) Option {
	return func(e *Enricher) {
		if label != "" {
			e.cohortFallback = label
		}
	}
}

// WithProvinceAliases replaces the origin normalization table.
func WithProvinceAliases(aliases map[string]string) Option {
	return func(e *Enricher) {
		if len(aliases) > 0 {
			m := make(map[string]string, len(aliases))
			for k, v := range aliases {
				m[k] = v
			}
			e.aliases = m
		}
	}
}

// WithUnknownProvince sets the label for empty origin cells.
func WithUnknownProvince(label string) Option {
	return func(e *Enricher) {
		if label != "" {
			e.unknownProvince = label
		}
	}
}
