package lifecycle

import (
	"context"

	"github.com/sourcegraph/conc/pool"
)

type BatchResult struct {
	Result *Result
	Err    error
}

// ExecuteBatch runs the gasless lifecycle of every quote concurrently, at most
// maxConcurrency at a time. Results keep the order of the quotes.
func (c *Controller) ExecuteBatch(ctx context.Context, quotes []Quotable, maxConcurrency int) []BatchResult {
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}

	results := make([]BatchResult, len(quotes))
	p := pool.New().WithMaxGoroutines(maxConcurrency)
	for i, quote := range quotes {
		i, quote := i, quote
		p.Go(func() {
			result, err := c.Execute(ctx, quote)
			results[i] = BatchResult{Result: result, Err: err}
		})
	}
	p.Wait()

	return results
}
