package fanout_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dcc-platform/healthgate/internal/app/fanout"
)

func TestRun_EmptyItems(t *testing.T) {
	t.Parallel()

	results := fanout.Run(context.Background(), 1, []string{}, func(_ context.Context, _ string) (int, error) {
		t.Fatal("fn should not be called for empty items")
		return 0, nil
	})

	if results == nil {
		t.Fatal("expected non-nil slice for empty items")
	}
	if len(results) != 0 {
		t.Fatalf("len(results) = %d, want 0", len(results))
	}
}

func TestRun_PreservesInputOrder(t *testing.T) {
	t.Parallel()

	// Varying delays to encourage out-of-order completion.
	items := []time.Duration{
		30 * time.Millisecond,
		10 * time.Millisecond,
		20 * time.Millisecond,
	}

	results := fanout.Run(context.Background(), len(items), items, func(_ context.Context, d time.Duration) (time.Duration, error) {
		time.Sleep(d)
		return d, nil
	})

	for i, r := range results {
		if r.Err != nil {
			t.Errorf("results[%d].Err = %v", i, r.Err)
		}
		if r.Value != items[i] {
			t.Errorf("results[%d].Value = %v, want %v", i, r.Value, items[i])
		}
	}
}

func TestRun_PartialFailuresRecordedPerSlot(t *testing.T) {
	t.Parallel()

	errProbe := errors.New("probe failed")
	items := []string{"database", "api", "cache"}

	results := fanout.Run(context.Background(), len(items), items, func(_ context.Context, name string) (string, error) {
		if name == "api" {
			return "", errProbe
		}
		return name + ":ok", nil
	})

	if results[0].Err != nil || results[0].Value != "database:ok" {
		t.Errorf("results[0] = {%q, %v}, want {\"database:ok\", nil}", results[0].Value, results[0].Err)
	}
	if !errors.Is(results[1].Err, errProbe) {
		t.Errorf("results[1].Err = %v, want %v", results[1].Err, errProbe)
	}
	if results[2].Err != nil || results[2].Value != "cache:ok" {
		t.Errorf("results[2] = {%q, %v}, want {\"cache:ok\", nil}", results[2].Value, results[2].Err)
	}
}

func TestRun_AllItemsRunConcurrently_WhenWorkersMatchItems(t *testing.T) {
	t.Parallel()

	const delay = 60 * time.Millisecond
	items := []int{1, 2, 3, 4, 5}

	start := time.Now()
	fanout.Run(context.Background(), len(items), items, func(_ context.Context, _ int) (int, error) {
		time.Sleep(delay)
		return 0, nil
	})
	elapsed := time.Since(start)

	// A serial run would take len(items)*delay. Allow generous scheduling
	// overhead while still catching accidental serialization.
	if elapsed >= time.Duration(len(items))*delay {
		t.Errorf("elapsed = %v, want well under %v (items must not be serialized)", elapsed, time.Duration(len(items))*delay)
	}
}

func TestRun_BoundedConcurrency(t *testing.T) {
	t.Parallel()

	const maxWorkers = 2
	var peak, active atomic.Int32

	items := make([]int, 10)
	results := fanout.Run(context.Background(), maxWorkers, items, func(_ context.Context, _ int) (int, error) {
		cur := active.Add(1)
		defer active.Add(-1)

		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}

		time.Sleep(5 * time.Millisecond)
		return 0, nil
	})

	if len(results) != len(items) {
		t.Fatalf("got %d results, want %d", len(results), len(items))
	}
	if p := peak.Load(); p > maxWorkers {
		t.Fatalf("peak concurrency %d exceeded maxWorkers %d", p, maxWorkers)
	}
}

func TestRun_ContextCancellation_BeforeAcquire(t *testing.T) {
	t.Parallel()

	// One worker, three items: cancel while later items wait on the semaphore.
	ctx, cancel := context.WithCancel(context.Background())

	items := []int{1, 2, 3}
	results := fanout.Run(ctx, 1, items, func(_ context.Context, n int) (int, error) {
		if n == 1 {
			cancel()
			time.Sleep(50 * time.Millisecond)
		}
		return n, nil
	})

	var canceled int
	for _, r := range results {
		if errors.Is(r.Err, context.Canceled) {
			canceled++
		}
	}
	if canceled == 0 {
		t.Error("expected at least one result with context.Canceled error")
	}
}
