package dynamo

import "sync"

// ParallelFor executes fn over chunks of the half-open range [0, n),
// fanning out across a fixed worker count and joining before returning.
// This is the sole parallelism primitive used by the kernel (spec.md
// §5): the parallel hash grid's key and gather passes and BaseSolver's
// gravity/drag, integration and collision passes call it once per
// phase; SPH density update, SPH force accumulation and the commit copy
// do not. Each call is a join barrier -- no later phase's callbacks are
// invoked until every worker from the current call has returned.
//
// Callers must write only to indices in [start, end) from within fn;
// cross-worker ordering inside a single call is unspecified.
func ParallelFor(n, minChunk int, fn func(start, end int)) {
	const numWorkers = 4
	if n <= minChunk || numWorkers <= 1 {
		fn(0, n)
		return
	}

	workers := numWorkers
	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}

		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}
