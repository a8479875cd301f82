package pool

// Option applies a configuration option to the Pool.
type Option func(*Pool)

// WithWorkers sets the degree of parallelism. Values below one are ignored.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.workers = n
		}
	}
}
