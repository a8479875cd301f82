package pool_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/okian/xiaozhao/internal/adapters/pool"
	"github.com/okian/xiaozhao/internal/domain/enrich"
	"github.com/okian/xiaozhao/internal/domain/schema"
	"github.com/okian/xiaozhao/internal/testrows"
)

func BenchmarkRun(b *testing.B) {
	rows := testrows.New(testrows.WithSeed(42)).Rows(10000)
	records, _, err := schema.Validate(rows)
	if err != nil {
		b.Fatal(err)
	}
	enricher := enrich.New()
	ctx := context.Background()

	for _, workers := range []int{1, 4, 8} {
		p := pool.New(pool.WithWorkers(workers))
		b.Run(fmt.Sprintf("workers-%d", workers), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, _, err := p.Run(ctx, enricher, records); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
