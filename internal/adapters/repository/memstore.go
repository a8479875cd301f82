package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Default store configuration constants.
const (
	defaultHistorySize = 50
)

// MemoryStore implements Store with a mutex-guarded snapshot list.
type MemoryStore struct {
	mu          sync.RWMutex
	snapshots   []Snapshot // oldest first
	byID        map[string]int
	historySize int
}

// NewMemoryStore creates an empty in-memory store with configuration
// options.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		byID:        make(map[string]int),
		historySize: defaultHistorySize,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Put records a snapshot and makes it the latest.
func (s *MemoryStore) Put(_ context.Context, snap Snapshot) (Snapshot, error) {
	if snap.ID == "" {
		snap.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshots = append(s.snapshots, snap)
	if len(s.snapshots) > s.historySize {
		evicted := len(s.snapshots) - s.historySize
		s.snapshots = append([]Snapshot(nil), s.snapshots[evicted:]...)
	}
	s.reindex()

	return snap, nil
}

// Latest returns the most recently stored snapshot.
func (s *MemoryStore) Latest(_ context.Context) (Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.snapshots) == 0 {
		return Snapshot{}, ErrNoSnapshot
	}
	return s.snapshots[len(s.snapshots)-1], nil
}

// Get returns a snapshot by id.
func (s *MemoryStore) Get(_ context.Context, id string) (Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return Snapshot{}, ErrNotFound
	}
	return s.snapshots[i], nil
}

// History returns stored snapshots, newest first.
func (s *MemoryStore) History(_ context.Context) []Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Snapshot, len(s.snapshots))
	for i, snap := range s.snapshots {
		out[len(s.snapshots)-1-i] = snap
	}
	return out
}

// Clear drops all stored snapshots.
func (s *MemoryStore) Clear(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshots = nil
	s.byID = make(map[string]int)
}

// Count returns the number of stored snapshots.
func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.snapshots)
}

// reindex rebuilds the id index; callers hold the write lock.
func (s *MemoryStore) reindex() {
	s.byID = make(map[string]int, len(s.snapshots))
	for i, snap := range s.snapshots {
		s.byID[snap.ID] = i
	}
}
