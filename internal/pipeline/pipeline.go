// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"evosim/internal/simrun"
)

// Config controls the replicate pipeline.
type Config struct {
	Threads    int // worker goroutines (>=1)
	Replicates int // independent replicates to run
	Seed       int64
}

// ForEachResult fans cfg.Replicates independent replicates over worker
// goroutines and streams finished results to visit in replicate order.
// Replicate i seeds its own source with cfg.Seed+i, so output is identical
// for any thread count. It returns the first error encountered, including
// context cancellation.
func ForEachResult(
	ctx context.Context,
	cfg Config,
	opts simrun.Options,
	visit func(simrun.Result) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan int, cfg.Threads*2)
	results := make(chan simrun.Result, cfg.Threads*2)

	var (
		mu   sync.Mutex
		werr error
	)
	fail := func(err error) {
		mu.Lock()
		if werr == nil {
			werr = err
		}
		mu.Unlock()
		cancel()
	}

	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case idx, ok := <-jobs:
					if !ok {
						return
					}
					r, err := simrun.Replicate(opts, idx, cfg.Seed+int64(idx))
					if err != nil {
						fail(err)
						return
					}
					select {
					case results <- r:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: reorder by replicate index so downstream output is
	// stable regardless of which worker finishes first.
	var cwg sync.WaitGroup
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		next := 0
		pending := make(map[int]simrun.Result, cfg.Threads*2)
		for r := range results {
			pending[r.Index] = r
			for {
				p, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				if err := visit(p); err != nil {
					fail(err)
					return
				}
				next++
			}
		}
	}()

feed:
	for i := 0; i < cfg.Replicates; i++ {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if werr != nil {
		return werr
	}
	return ctx.Err()
}
