package repository

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithHistorySize bounds how many snapshots the store retains. The oldest
// snapshots are evicted first. Values below one are ignored.
func WithHistorySize(n int) Option {
	return func(s *MemoryStore) {
		if n > 0 {
			s.historySize = n
		}
	}
}
