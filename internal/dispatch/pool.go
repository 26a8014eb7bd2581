// SPDX-License-Identifier: MPL-2.0

package dispatch

import (
	"context"
	"runtime"
	"sync"

	"overlock-cli/internal/pin"
	"overlock-cli/internal/prefetch"
)

// Pool runs descriptor fetches with bounded parallelism.
type Pool struct {
	// Limit is the maximum number of concurrent fetches.
	// Zero or negative means runtime.NumCPU().
	Limit int
}

func (p *Pool) limit() int {
	if p.Limit > 0 {
		return p.Limit
	}
	return runtime.NumCPU()
}

// Fetch runs desc.Fetch for every descriptor and returns one result per
// descriptor, in descriptor order. It blocks until every submitted unit has
// returned.
//
// When a unit fails, the shared context is canceled: in-flight tools are
// interrupted and not-yet-started units return a canceled result without
// spawning a process. Callers pick the surfaced failure by scanning the
// returned slice in order, so the choice is deterministic for a given
// input even though completion order is not.
func (p *Pool) Fetch(ctx context.Context, r *prefetch.Runner, descs []pin.Descriptor) []*prefetch.Result {
	results := make([]*prefetch.Result, len(descs))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sem := make(chan struct{}, p.limit())
	var wg sync.WaitGroup

	for i, d := range descs {
		wg.Add(1)
		go func(i int, d pin.Descriptor) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = prefetch.NewErrorResult(1, ctx.Err())
				return
			}

			if err := ctx.Err(); err != nil {
				results[i] = prefetch.NewErrorResult(1, err)
				return
			}

			res := d.Fetch(ctx, r)
			results[i] = res
			if !res.Success() {
				cancel()
			}
		}(i, d)
	}

	wg.Wait()
	return results
}

// FirstFailure returns the index of the failure to surface, or -1 if every
// result succeeded. Genuine tool failures (the process ran and exited
// non-zero) take precedence over cancellation fallout, and among those the
// lowest index wins.
func FirstFailure(results []*prefetch.Result) int {
	for i, res := range results {
		if !res.Success() && res.Err == nil {
			return i
		}
	}
	for i, res := range results {
		if !res.Success() {
			return i
		}
	}
	return -1
}
