// Package scheduler runs independent tasks with a cap on how many are in
// flight at once, reporting per-task outcomes in submission order.
package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

var ErrInvalidLimit = errors.New("concurrency limit must be positive")

type (
	Task interface {
		Run(ctx context.Context) error
	}

	TaskFunc func(ctx context.Context) error
)

func (f TaskFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// Run executes tasks with at most limit of them in flight at any moment.
// The returned slice holds the outcome of tasks[i] at index i regardless of
// completion order. The error result is the first task failure observed;
// a failure does not cancel sibling workers, which keep claiming and
// finishing the remaining tasks before Run returns. Outcomes produced after
// the run has already failed stay in the slice but never replace the run's
// error.
func Run(ctx context.Context, tasks []Task, limit int) ([]error, error) {
	if limit < 1 {
		return nil, ErrInvalidLimit
	}

	results := make([]error, len(tasks))

	if len(tasks) == 0 {
		return results, nil
	}

	workers := limit

	if len(tasks) < workers {
		workers = len(tasks)
	}

	var (
		cursor   int64
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)

	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()

			for {
				index := int(atomic.AddInt64(&cursor, 1)) - 1

				if index >= len(tasks) {
					return
				}

				err := tasks[index].Run(ctx)
				results[index] = err

				if err != nil {
					once.Do(func() {
						firstErr = err
					})
				}
			}
		}()
	}

	wg.Wait()

	return results, firstErr
}
