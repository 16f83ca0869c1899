package coeffs

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ufxr/minimax/utils"
)

// BatchOptions configures a Batch.
type BatchOptions struct {
	// Workers is the number of orders fitted concurrently.
	// runtime.GOMAXPROCS(0) is used if zero or negative.
	Workers int
	// SkipFailed records failed orders in BatchResult.Failures instead of
	// aborting the batch on the first failure.
	SkipFailed bool
	// Debug logs the progress of the exchange algorithm.
	Debug bool
}

// Failure is an order whose fit failed.
type Failure struct {
	Order int
	Err   error
}

// BatchResult holds the results of a Batch, sorted by order.
type BatchResult struct {
	Results  []Result
	Failures []Failure
}

// fit is replaced in tests.
var fit = Fit

// Batch fits fn for every order from its minimum order up to maxOrder.
// Orders are independent and fitted concurrently. Unless opts.SkipFailed
// is set, the first failure cancels the remaining fits, which stop at
// their next iteration boundary, and is returned.
func Batch(ctx context.Context, fn Function, maxOrder int, opts BatchOptions) (BatchResult, error) {

	d, err := fn.Descriptor()
	if err != nil {
		return BatchResult{}, err
	}

	if maxOrder < d.MinOrder {
		return BatchResult{}, fmt.Errorf("%w: %s requires order >= %d but maximum order is %d", ErrOrderTooLow, d.Name, d.MinOrder, maxOrder)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var mutex sync.Mutex
	results := map[int]Result{}
	failures := map[int]error{}

	for order := d.MinOrder; order <= maxOrder; order++ {

		order := order

		g.Go(func() error {

			res, err := fit(ctx, Request{Function: fn, Order: order, Debug: opts.Debug})

			mutex.Lock()
			defer mutex.Unlock()

			if err != nil {
				if opts.SkipFailed && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
					failures[order] = err
					return nil
				}
				return fmt.Errorf("%s order %d: %w", d.Name, order, err)
			}

			results[order] = res
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return BatchResult{}, err
	}

	var br BatchResult

	for _, order := range utils.GetSortedKeys(results) {
		br.Results = append(br.Results, results[order])
	}

	for _, order := range utils.GetSortedKeys(failures) {
		br.Failures = append(br.Failures, Failure{Order: order, Err: failures[order]})
	}

	return br, nil
}
