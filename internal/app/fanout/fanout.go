// Package fanout provides a generic fan-out/join-all helper for
// application-layer orchestration. It runs a function across a slice of items
// on concurrent goroutines, optionally bounded by a semaphore, and collects
// results in input order.
//
// The readiness aggregator uses it with one worker per item so that no
// probe's start is gated on another's completion; the join guarantees every
// item has produced a result before Run returns.
package fanout

import (
	"context"
	"sync"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item in items using at most maxWorkers concurrent
// goroutines. Results are returned in the same order as the input items.
//
// If ctx is canceled while a goroutine is waiting for a semaphore slot, that
// goroutine records ctx.Err() and does not call fn. Goroutines that have
// already acquired a slot run to completion; fn is responsible for honoring
// ctx internally if it supports cancellation.
//
// Run blocks until all goroutines complete. If items is empty, it returns an
// empty non-nil slice immediately. maxWorkers must be >= 1; when maxWorkers
// >= len(items) every item runs concurrently with no semaphore contention.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}

	results := make([]Result[R], len(items))
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func(idx int, it T) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[idx] = Result[R]{Err: ctx.Err()}
				return
			}

			val, err := fn(ctx, it)
			results[idx] = Result[R]{Value: val, Err: err}
		}(i, item)
	}

	wg.Wait()
	return results
}
