package service

import (
	"github.com/okian/xiaozhao/internal/adapters/repository"
	"github.com/okian/xiaozhao/internal/domain/enrich"
	"github.com/okian/xiaozhao/internal/domain/stats"
	"github.com/okian/xiaozhao/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the enrichment fan-out degree.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithHistorySize bounds the snapshot history of the default store.
func WithHistorySize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.historySize = size
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore replaces the default in-memory snapshot store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithEnricher replaces the default enricher, carrying custom marker,
// cohort or alias tables.
func WithEnricher(e *enrich.Enricher) Option {
	return func(s *Service) {
		if e != nil {
			s.enricher = e
		}
	}
}

// WithAggregatorOptions shapes the aggregator: dimensions, precision,
// cross tabs, series and the key-school list.
func WithAggregatorOptions(opts ...stats.Option) Option {
	return func(s *Service) {
		s.aggOpts = append(s.aggOpts, opts...)
	}
}
