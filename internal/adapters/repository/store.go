// Package repository defines the processed-batch snapshot store and errors.
//
// The store holds the statistics of recently processed uploads so dashboard
// consumers can read the latest bundle and the upload history without
// re-running the engine. It is deliberately in-memory: durable persistence
// of uploads belongs to the excluded storage layer.
package repository

import (
	"context"
	"time"

	"github.com/okian/xiaozhao/internal/domain/schema"
	"github.com/okian/xiaozhao/internal/domain/stats"
)

// Snapshot is one processed batch: its statistics bundle plus upload
// metadata and the consolidated row-error report.
type Snapshot struct {
	ID          string            `json:"id"`
	Description string            `json:"description"`
	UploadedAt  time.Time         `json:"uploaded_at"`
	RecordCount int               `json:"record_count"`
	RowErrors   []schema.RowError `json:"row_errors,omitempty"`
	Bundle      *stats.Bundle     `json:"statistics"`
}

// Store provides read/write access to processed-batch snapshots.
type Store interface {
	// Put records a snapshot and makes it the latest. A missing ID is
	// assigned. Returns the stored snapshot.
	Put(ctx context.Context, s Snapshot) (Snapshot, error)

	// Latest returns the most recently stored snapshot.
	// Returns ErrNoSnapshot when nothing has been processed yet.
	Latest(ctx context.Context) (Snapshot, error)

	// Get returns a snapshot by id. Returns ErrNotFound if unknown.
	Get(ctx context.Context, id string) (Snapshot, error)

	// History returns stored snapshots, newest first, bounded by the
	// configured history size.
	History(ctx context.Context) []Snapshot

	// Clear drops all stored snapshots.
	Clear(ctx context.Context)

	// Count returns the number of stored snapshots.
	Count(ctx context.Context) int
}
