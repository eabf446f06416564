// Package sweep runs the window optimizer across many curve sizes with
// a bounded worker pool. Per-size computations are independent, so the
// pool needs no coordination beyond an indexed results slice.
package sweep

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/microsoft/QuantumEllipticCurves/prof"
	"github.com/microsoft/QuantumEllipticCurves/shor"
)

// Options tunes a Run.
type Options struct {
	// Workers bounds concurrent per-size computations; 0 means one per
	// CPU.
	Workers int
	// Progress, when non-nil, is advanced once per completed size.
	Progress *Progress
	// Label names the run in the timing registry.
	Label string
}

// Run computes the optimal window schedules for every size, returning
// results in the order the sizes were given regardless of completion
// order. Any per-size failure (a table miss, an out-of-domain size)
// aborts the whole run: partial sweeps would silently produce
// incomplete published tables.
func Run(ctx context.Context, src shor.AdditionSource, sizes []int, opts Options) ([]shor.Result, error) {
	if len(sizes) == 0 {
		return nil, fmt.Errorf("sweep: no sizes to run")
	}
	label := opts.Label
	if label == "" {
		label = "sweep"
	}
	defer prof.Track(time.Now(), label)

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]shor.Result, len(sizes))
	var done atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, size := range sizes {
		i, size := i, size
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			addition, err := src.PointAddition(size)
			if err != nil {
				return fmt.Errorf("sweep: size %d: %w", size, err)
			}
			res, err := shor.OptimizeWindows(addition, size)
			if err != nil {
				return fmt.Errorf("sweep: size %d: %w", size, err)
			}
			results[i] = res
			if opts.Progress != nil {
				opts.Progress.Update(int(done.Add(1)))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Range returns the inclusive size range lo..hi.
func Range(lo, hi int) []int {
	if hi < lo {
		return nil
	}
	sizes := make([]int, 0, hi-lo+1)
	for n := lo; n <= hi; n++ {
		sizes = append(sizes, n)
	}
	return sizes
}
