// Package service wires validation, enrichment, aggregation and snapshot
// storage into the single facade the outer surfaces call.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/okian/xiaozhao/internal/adapters/pool"
	"github.com/okian/xiaozhao/internal/adapters/repository"
	"github.com/okian/xiaozhao/internal/domain/enrich"
	"github.com/okian/xiaozhao/internal/domain/model"
	"github.com/okian/xiaozhao/internal/domain/schema"
	"github.com/okian/xiaozhao/internal/domain/stats"
	"github.com/okian/xiaozhao/pkg/logger"
	"github.com/okian/xiaozhao/pkg/metrics"
)

// Service runs the batch pipeline: validate rows, enrich the survivors in
// parallel, aggregate them into a statistics bundle and retain the snapshot.
type Service struct {
	enricher   *enrich.Enricher
	aggregator *stats.Aggregator
	aggOpts    []stats.Option
	pool       *pool.Pool
	store      repository.Store

	workerCount int
	historySize int

	logger logger.Logger
}

// New constructs a Service with default components. Options replace the
// enricher tables, the aggregator shape, the worker fan-out and the store.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount: 0, // pool default
		historySize: 0, // store default
		logger:      nil,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.enricher == nil {
		s.enricher = enrich.New()
	}
	if s.aggregator == nil {
		s.aggregator = stats.New(s.aggOpts...)
	}

	var poolOpts []pool.Option
	if s.workerCount > 0 {
		poolOpts = append(poolOpts, pool.WithWorkers(s.workerCount))
	}
	s.pool = pool.New(poolOpts...)

	if s.store == nil {
		var storeOpts []repository.Option
		if s.historySize > 0 {
			storeOpts = append(storeOpts, repository.WithHistorySize(s.historySize))
		}
		s.store = repository.NewMemoryStore(storeOpts...)
	}

	metrics.UpdateWorkerCount(s.pool.Workers())

	return s
}

// ValidateAndEnrich checks a raw batch against the required-column contract
// and derives the enrichment fields for every surviving row. Rejected rows
// come back as RowErrors; the batch fails as a whole only when nothing
// survives.
func (s *Service) ValidateAndEnrich(ctx context.Context, rows []model.Row) ([]model.EnrichedRecord, []schema.RowError, error) {
	start := time.Now()

	records, rowErrs, err := schema.Validate(rows)
	if err != nil {
		metrics.RecordBatchRejected()
		return nil, rowErrs, err
	}
	metrics.RecordRowsValidated(len(records))
	for _, re := range rowErrs {
		metrics.RecordRowRejected(string(re.Kind))
	}

	enriched, enrichErrs, err := s.pool.Run(ctx, s.enricher, records)
	if err != nil {
		metrics.RecordBatchRejected()
		return nil, rowErrs, err
	}

	kept := make([]model.EnrichedRecord, 0, len(enriched))
	for i, rec := range enriched {
		if enrichErrs[i] != nil {
			rowErrs = append(rowErrs, schema.RowError{
				Row:   records[i].Row,
				Kind:  schema.KindDerivation,
				Field: model.ColBirthDate,
			})
			metrics.RecordRowRejected(string(schema.KindDerivation))
			continue
		}
		kept = append(kept, rec)
	}

	if len(kept) == 0 {
		metrics.RecordBatchRejected()
		return nil, rowErrs, fmt.Errorf("%w: no rows survived enrichment", schema.ErrEmptyBatch)
	}

	metrics.RecordEnrichLatency(float64(time.Since(start).Milliseconds()))
	s.logger.Debug(ctx, "batch enriched",
		logger.Int("input", len(rows)),
		logger.Int("kept", len(kept)),
		logger.Int("rejected", len(rowErrs)),
	)

	return kept, rowErrs, nil
}

// Aggregate folds enriched records into a statistics bundle. Per-call
// options override the service aggregator's shape for this batch only.
func (s *Service) Aggregate(ctx context.Context, records []model.EnrichedRecord, opts ...stats.Option) (*stats.Bundle, error) {
	start := time.Now()

	agg := s.aggregator
	if len(opts) > 0 {
		merged := make([]stats.Option, 0, len(s.aggOpts)+len(opts))
		merged = append(merged, s.aggOpts...)
		merged = append(merged, opts...)
		agg = stats.New(merged...)
	}

	bundle, err := agg.Aggregate(ctx, records)
	if err != nil {
		return nil, err
	}

	metrics.RecordAggregateLatency(float64(time.Since(start).Milliseconds()))
	return bundle, nil
}

// Process is the end-to-end pipeline: validate, enrich, aggregate and store
// a snapshot of the outcome. The row errors are returned alongside the
// snapshot so callers can report partial rejections.
func (s *Service) Process(ctx context.Context, rows []model.Row, description string) (repository.Snapshot, []schema.RowError, error) {
	records, rowErrs, err := s.ValidateAndEnrich(ctx, rows)
	if err != nil {
		return repository.Snapshot{}, rowErrs, err
	}

	bundle, err := s.Aggregate(ctx, records)
	if err != nil {
		return repository.Snapshot{}, rowErrs, err
	}

	snap := repository.Snapshot{
		Description: description,
		UploadedAt:  time.Now().UTC(),
		RecordCount: len(records),
		RowErrors:   rowErrs,
		Bundle:      bundle,
	}
	stored, err := s.store.Put(ctx, snap)
	if err != nil {
		return repository.Snapshot{}, rowErrs, err
	}

	metrics.RecordBatchProcessed()
	metrics.UpdateLastBatchRows(len(records))
	metrics.UpdateSnapshotCount(s.store.Count(ctx))

	s.logger.Info(ctx, "batch processed",
		logger.String("snapshot", stored.ID),
		logger.Int("records", stored.RecordCount),
		logger.Int("rowErrors", len(rowErrs)),
	)

	return stored, rowErrs, nil
}

// Latest returns the most recent snapshot.
func (s *Service) Latest(ctx context.Context) (repository.Snapshot, error) {
	return s.store.Latest(ctx)
}

// Snapshot returns one snapshot by id.
func (s *Service) Snapshot(ctx context.Context, id string) (repository.Snapshot, error) {
	return s.store.Get(ctx, id)
}

// History returns retained snapshots, newest first.
func (s *Service) History(ctx context.Context) []repository.Snapshot {
	return s.store.History(ctx)
}

// Clear drops all retained snapshots.
func (s *Service) Clear(ctx context.Context) {
	s.store.Clear(ctx)
	metrics.UpdateSnapshotCount(0)
}

// IsEmptyBatch reports whether err means the batch had no usable rows.
func IsEmptyBatch(err error) bool {
	return errors.Is(err, schema.ErrEmptyBatch)
}
