package idgen

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/outofforest/logger"
	"github.com/outofforest/objectid/pkg/oid"
	"github.com/outofforest/parallel"
)

// Stream sends count identifiers produced by the generator to ch.
func Stream(ctx context.Context, gen Generator, count int, ch chan<- oid.ID) error {
	for range count {
		if err := ctx.Err(); err != nil {
			return errors.WithStack(err)
		}
		id := gen.ID()
		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case ch <- id:
		}
	}
	return nil
}

// Batch generates count identifiers using the given number of workers sharing the generator.
// Generator must be safe for concurrent use if workers is greater than 1.
// Identifiers are returned in the order the integrator received them.
func Batch(ctx context.Context, gen Generator, workers, count int) ([]oid.ID, error) {
	if workers < 1 {
		return nil, errors.Errorf("number of workers must be positive, got %d", workers)
	}
	if count < 0 {
		return nil, errors.Errorf("number of identifiers must not be negative, got %d", count)
	}
	workers = min(workers, max(count, 1))

	log := logger.Get(ctx)
	log.Debug("Generating identifiers", zap.Int("count", count), zap.Int("workers", workers))

	results := make([]oid.ID, 0, count)
	err := parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		resultsCh := make(chan oid.ID)

		spawn("integrator", parallel.Exit, func(ctx context.Context) error {
			for id := range resultsCh {
				results = append(results, id)
			}
			return nil
		})

		spawn("workers", parallel.Continue, func(ctx context.Context) error {
			defer close(resultsCh)

			return parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
				for w := range workers {
					n := count / workers
					if w < count%workers {
						n++
					}
					spawn(fmt.Sprintf("worker-%d", w), parallel.Continue, func(ctx context.Context) error {
						return Stream(ctx, gen, n, resultsCh)
					})
				}
				return nil
			})
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug("Identifiers generated", zap.Int("count", len(results)))
	return results, nil
}
