// Package pool fans record enrichment out across a bounded set of workers.
//
// Enrichment is record-local, so sharding by index is safe: workers pull
// indices off a channel and write into a preallocated result slice, which
// keeps the output order identical to the input regardless of worker count.
// A pool of one worker degenerates to the sequential pass.
package pool

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/okian/xiaozhao/internal/domain/model"
)

// Enricher derives the analytical fields of one record.
type Enricher interface {
	Enrich(r model.RawRecord) (model.EnrichedRecord, error)
}

// Pool runs enrichment with a fixed degree of parallelism.
type Pool struct {
	workers int
}

// New creates a Pool with configuration options.
func New(opts ...Option) *Pool {
	p := &Pool{
		workers: runtime.NumCPU(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Workers returns the configured degree of parallelism.
func (p *Pool) Workers() int {
	return p.workers
}

// Run enriches every record, preserving input order. The error slice is
// index-aligned with the input: errs[i] is non-nil when record i could not
// be enriched and results[i] must be ignored. The single error return fires
// only on context cancellation.
func (p *Pool) Run(ctx context.Context, enr Enricher, records []model.RawRecord) ([]model.EnrichedRecord, []error, error) {
	results := make([]model.EnrichedRecord, len(records))
	errs := make([]error, len(records))
	if len(records) == 0 {
		return results, errs, nil
	}

	workers := p.workers
	if workers > len(records) {
		workers = len(records)
	}

	indices := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indices {
				results[i], errs[i] = enr.Enrich(records[i])
			}
		}()
	}

	var cancelled error
feed:
	for i := range records {
		if err := ctx.Err(); err != nil {
			cancelled = err
			break feed
		}
		select {
		case <-ctx.Done():
			cancelled = ctx.Err()
			break feed
		case indices <- i:
		}
	}
	close(indices)
	wg.Wait()

	if cancelled != nil {
		return nil, nil, fmt.Errorf("enrichment aborted: %w", cancelled)
	}
	return results, errs, nil
}
