package bulk

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"
)

// DefaultMaxConcurrent is the in-flight operation limit used when callers do
// not specify one.
const DefaultMaxConcurrent = 5

// CreateFunc performs the operation for a single batch item.
type CreateFunc[I Item, T any] func(ctx context.Context, item I) (T, error)

// RunSequential processes items strictly in input order. Each item is
// validated against the required fields first; items that fail validation are
// recorded as failed without calling create. Item i+1 is never started before
// item i has settled, which bounds load on the remote service without any
// concurrency control. An empty input returns an empty Result with no calls
// issued.
func RunSequential[I Item, T any](ctx context.Context, items []I, required []string, create CreateFunc[I, T]) Result[T] {
	var res Result[T]
	for i, item := range items {
		vals := item.Values()
		if err := ValidateRequired(vals, required); err != nil {
			res.Failed = append(res.Failed, CreateError{Index: i, Input: vals, Message: err.Error()})
			continue
		}

		created, err := create(ctx, item)
		if err != nil {
			res.Failed = append(res.Failed, CreateError{Index: i, Input: vals, Message: err.Error()})
			continue
		}
		res.Successful = append(res.Successful, created)
	}
	return res
}

// RunConcurrent processes all items in parallel, with at most maxConcurrent
// create calls in flight at any instant. Validation runs inside each item's
// goroutine, outside the semaphore, so an invalid item neither consumes a
// slot nor blocks other items. Outcomes are tagged with their input index and
// assembled with Collect, so the returned ordering is deterministic and
// independent of completion timing.
//
// A maxConcurrent below 1 is a caller error and fails fast before any
// processing. If ctx is cancelled mid-batch, items that have not yet acquired
// a slot fail with the context error; outcomes that already settled are kept,
// and the Result still accounts for every input item.
func RunConcurrent[I Item, T any](ctx context.Context, items []I, required []string, maxConcurrent int, create CreateFunc[I, T]) (Result[T], error) {
	if maxConcurrent < 1 {
		return Result[T]{}, fmt.Errorf("maxConcurrent must be at least 1, got %d", maxConcurrent)
	}
	if len(items) == 0 {
		return Result[T]{}, nil
	}

	sem := semaphore.NewWeighted(int64(maxConcurrent))
	outcomes := make([]Outcome[T], len(items))

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcomes[i] = processOne(ctx, i, item, required, sem, create)
		}()
	}
	wg.Wait()

	return Collect(outcomes), nil
}

func processOne[I Item, T any](ctx context.Context, index int, item I, required []string, sem *semaphore.Weighted, create CreateFunc[I, T]) Outcome[T] {
	vals := item.Values()
	if err := ValidateRequired(vals, required); err != nil {
		return failed[T](index, vals, err)
	}

	if err := sem.Acquire(ctx, 1); err != nil {
		return failed[T](index, vals, err)
	}
	defer sem.Release(1)

	created, err := create(ctx, item)
	if err != nil {
		return failed[T](index, vals, err)
	}
	return Outcome[T]{Index: index, Value: created}
}

func failed[T any](index int, vals Values, err error) Outcome[T] {
	return Outcome[T]{
		Index: index,
		Err:   &CreateError{Index: index, Input: vals, Message: err.Error()},
	}
}

// idItem adapts a numeric identifier to the Item interface for the Get
// executors.
type idItem int64

func (id idItem) Values() Values {
	return Values{"id": int64(id)}
}

// GetFunc fetches a single record by ID.
type GetFunc[T any] func(ctx context.Context, id int64) (T, error)

// GetSequential fetches records one at a time in input order, with the same
// partial-failure semantics as RunSequential.
func GetSequential[T any](ctx context.Context, ids []int64, get GetFunc[T]) Result[T] {
	return RunSequential(ctx, wrapIDs(ids), nil, func(ctx context.Context, item idItem) (T, error) {
		return get(ctx, int64(item))
	})
}

// GetConcurrent fetches records in parallel with bounded concurrency, with
// the same semantics as RunConcurrent.
func GetConcurrent[T any](ctx context.Context, ids []int64, maxConcurrent int, get GetFunc[T]) (Result[T], error) {
	return RunConcurrent(ctx, wrapIDs(ids), nil, maxConcurrent, func(ctx context.Context, item idItem) (T, error) {
		return get(ctx, int64(item))
	})
}

func wrapIDs(ids []int64) []idItem {
	items := make([]idItem, len(ids))
	for i, id := range ids {
		items[i] = idItem(id)
	}
	return items
}
