// Package sampler runs the statistics smoke test over many independent
// streams in parallel.
package sampler

import (
	"context"
	"errors"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/msws"
	"github.com/lox/msws/internal/statistics"
)

// chunkSize is how many outputs a worker draws between cancellation checks.
const chunkSize = 4096

// DefaultMaxPeriod bounds the cycle search in each stream.
const DefaultMaxPeriod = 1024

// Options configures Run
type Options struct {
	Streams   int    // Number of independent streams
	Samples   int    // Outputs drawn per stream
	Workers   int    // Concurrent streams; 0 means runtime.NumCPU()
	BaseSeed  uint64 // Stream i uses msws.Seed(BaseSeed + i)
	MaxPeriod int    // Longest cycle searched for; 0 means DefaultMaxPeriod

	Clock  quartz.Clock
	Logger *log.Logger
}

// Result holds the outcome for one stream
type Result struct {
	Stream  int
	Seed    uint64
	Summary statistics.Summary
	Elapsed time.Duration
}

// Run samples every stream and returns results ordered by stream index.
// Each stream's generator is created and owned by the worker that drains it.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Streams <= 0 {
		return nil, errors.New("streams must be > 0")
	}
	if opts.Samples <= 0 {
		return nil, errors.New("samples must be > 0")
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	maxPeriod := opts.MaxPeriod
	if maxPeriod <= 0 {
		maxPeriod = DefaultMaxPeriod
	}
	clock := opts.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	results := make([]Result, opts.Streams)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < opts.Streams; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			seed := msws.Seed(opts.BaseSeed + uint64(i))
			start := clock.Now()

			stream, err := sample(gctx, msws.MustNew(seed), opts.Samples)
			if err != nil {
				return err
			}

			results[i] = Result{
				Stream:  i,
				Seed:    seed,
				Summary: stream.Summarize(maxPeriod),
				Elapsed: clock.Since(start),
			}
			logger.Debug("Stream sampled",
				"stream", i,
				"seed", seed,
				"samples", opts.Samples,
				"elapsed", results[i].Elapsed)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func sample(ctx context.Context, r *msws.Rand, n int) (*statistics.Stream, error) {
	stream := &statistics.Stream{Values: make([]uint32, 0, n)}
	for drawn := 0; drawn < n; {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := min(drawn+chunkSize, n)
		for ; drawn < end; drawn++ {
			stream.Add(r.Uint32())
		}
	}
	return stream, nil
}

// Failures returns the results whose summaries fail validation.
func Failures(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if r.Summary.Validate() != nil {
			failed = append(failed, r)
		}
	}
	return failed
}
