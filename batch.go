package matrix

import (
	"context"
	"sync"

	"github.com/Jeffail/tunny"
	"github.com/cockroachdb/errors"
)

// ErrClientClosed is returned by Batch after Close.
var ErrClientClosed = errors.New("[Matrix] client is closed")

// BatchCall is one call of a Batch.
type BatchCall struct {
	Method string
	Params *Params
}

// BatchResult is the outcome of the BatchCall at the same index.
type BatchResult struct {
	Result any
	Err    error
}

func (c *Client) pool() *tunny.Pool {
	c.poolOnce.Do(func() {
		c.workerPool = tunny.NewCallback(c.options.workerNum)
	})
	return c.workerPool
}

// Batch runs independent calls concurrently, at most WithWorkerNum at a time,
// and returns their results in input order.
func (c *Client) Batch(ctx context.Context, calls []BatchCall) []BatchResult {
	results := make([]BatchResult, len(calls))
	if len(calls) == 0 {
		return results
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	var pool *tunny.Pool
	if !c.closed.Load() {
		pool = c.pool()
	}
	if pool == nil {
		for i, call := range calls {
			results[i].Err = &TransportError{Method: call.Method, Err: ErrClientClosed}
		}
		return results
	}

	var wg sync.WaitGroup
	for i, call := range calls {
		wg.Add(1)
		go func(i int, call BatchCall) {
			defer wg.Done()
			pool.Process(func() {
				results[i].Result, results[i].Err = c.Call(ctx, call.Method, call.Params)
			})
		}(i, call)
	}
	wg.Wait()

	return results
}
