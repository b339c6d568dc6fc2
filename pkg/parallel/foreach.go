package parallel

import (
	"context"
	"sync"
)

// ForEachN runs fn(ctx, i) for every i in [0, n) across the pool's workers.
// The first error cancels the remaining work and is returned; indices that
// were already submitted still run to completion, so fn must tolerate a
// cancelled context. A nil or done context short-circuits before any work
// is submitted.
func ForEachN(ctx context.Context, workers, n int, fn func(ctx context.Context, i int) error) error {
	if n <= 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	pool, err := NewWorkerPool(workers)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		mu       sync.Mutex
		firstErr error
		wg       sync.WaitGroup
	)

	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			break
		}
		i := i
		wg.Add(1)
		ok := pool.Submit(func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			if err := fn(ctx, i); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				cancel()
			}
		})
		if !ok {
			wg.Done()
			break
		}
	}

	wg.Wait()
	pool.Close()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
