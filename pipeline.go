package depth

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// task splits data in workersCount contiguous chunks and runs fn on every
// element, one goroutine per chunk. The context is checked between elements;
// the first error cancels the remaining chunks and is returned.
func task[T any](ctx context.Context, workersCount int, data []T, fn func(i int, data T) error) error {
	g, ctx := errgroup.WithContext(ctx)
	dataSize := len(data)
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		start, end := workerID*chunkSize, min((workerID+1)*chunkSize, dataSize)
		if start >= end {
			break
		}

		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := fn(i, data[i]); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}
