// Package worker provides a generic worker pool for processing items concurrently
// while keeping results in input order.
package worker

import (
	"context"
	"sync"
)

// Job represents a unit of work with an index for ordering.
type Job[T any] struct {
	Index int
	Data  T
}

// Result represents the outcome of processing a Job.
type Result[T any] struct {
	Index int
	Value T
	Err   error
}

// ProcessFunc processes a job and returns a result.
type ProcessFunc[I, O any] func(ctx context.Context, job Job[I]) (O, error)

// ProgressFunc is called after each job completes.
type ProgressFunc func(completed, total int)

// Pool manages concurrent job processing with a fixed number of workers.
type Pool[I, O any] struct {
	workers    int
	process    ProcessFunc[I, O]
	onProgress ProgressFunc
}

// NewPool creates a new worker pool. workers below 1 is treated as 1.
func NewPool[I, O any](workers int, process ProcessFunc[I, O]) *Pool[I, O] {
	if workers < 1 {
		workers = 1
	}
	return &Pool[I, O]{
		workers: workers,
		process: process,
	}
}

// SetProgressCallback sets a callback to be called after each job completes.
func (p *Pool[I, O]) SetProgressCallback(fn ProgressFunc) {
	p.onProgress = fn
}

// Run processes all items and returns one result per item, in input order.
// Items not started before ctx is done get ctx.Err() as their error.
func (p *Pool[I, O]) Run(ctx context.Context, items []I) []Result[O] {
	total := len(items)
	results := make([]Result[O], total)
	if total == 0 {
		return results
	}

	workers := p.workers
	if workers > total {
		workers = total
	}

	jobs := make(chan Job[I])
	done := make(chan Result[O], total)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				value, err := p.process(ctx, job)
				done <- Result[O]{Index: job.Index, Value: value, Err: err}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i, item := range items {
			select {
			case <-ctx.Done():
				for j := i; j < total; j++ {
					done <- Result[O]{Index: j, Err: ctx.Err()}
				}
				return
			case jobs <- Job[I]{Index: i, Data: item}:
			}
		}
	}()

	for completed := 1; completed <= total; completed++ {
		r := <-done
		results[r.Index] = r
		if p.onProgress != nil {
			p.onProgress(completed, total)
		}
	}
	wg.Wait()

	return results
}

// Process is a helper that creates a pool and runs all items through it.
func Process[I, O any](ctx context.Context, items []I, workers int, process ProcessFunc[I, O], onProgress ProgressFunc) []Result[O] {
	pool := NewPool(workers, process)
	pool.SetProgressCallback(onProgress)
	return pool.Run(ctx, items)
}
