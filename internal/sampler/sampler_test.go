package sampler

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/msws"
	"github.com/lox/msws/internal/statistics"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.DebugLevel})
}

func TestRunDeterministicAcrossWorkerCounts(t *testing.T) {
	mockClock := quartz.NewMock(t)

	run := func(workers int) []Result {
		results, err := Run(context.Background(), Options{
			Streams:  6,
			Samples:  5000,
			Workers:  workers,
			BaseSeed: 100,
			Clock:    mockClock,
			Logger:   testLogger(),
		})
		require.NoError(t, err)
		return results
	}

	serial := run(1)
	parallel := run(4)
	require.Len(t, serial, 6)
	assert.Equal(t, serial, parallel)

	for i, r := range serial {
		assert.Equal(t, i, r.Stream)
		assert.Equal(t, msws.Seed(100+uint64(i)), r.Seed)
		assert.Equal(t, 5000, r.Summary.Count)
		assert.Zero(t, r.Elapsed, "mock clock never advances")
		assert.NoError(t, r.Summary.Validate())
	}
	assert.Empty(t, Failures(serial))
}

func TestRunMatchesDirectSampling(t *testing.T) {
	results, err := Run(context.Background(), Options{
		Streams:  1,
		Samples:  2000,
		BaseSeed: 42,
		Clock:    quartz.NewMock(t),
	})
	require.NoError(t, err)

	r := msws.MustNew(msws.Seed(42))
	s := &statistics.Stream{}
	for i := 0; i < 2000; i++ {
		s.Add(r.Uint32())
	}
	assert.Equal(t, s.Summarize(DefaultMaxPeriod), results[0].Summary)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := Run(ctx, Options{Streams: 3, Samples: 100_000})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, results)
}

func TestRunValidatesOptions(t *testing.T) {
	_, err := Run(context.Background(), Options{Streams: 0, Samples: 10})
	assert.EqualError(t, err, "streams must be > 0")

	_, err = Run(context.Background(), Options{Streams: 1, Samples: 0})
	assert.EqualError(t, err, "samples must be > 0")
}

func TestFailures(t *testing.T) {
	results := []Result{
		{Stream: 0, Summary: statistics.Summary{Count: 10, LongestRun: 1}},
		{Stream: 1, Summary: statistics.Summary{Count: 10, LongestRun: 9}},
		{Stream: 2, Summary: statistics.Summary{Count: 10, LongestRun: 1, Period: 2}},
	}

	failed := Failures(results)
	require.Len(t, failed, 2)
	assert.Equal(t, 1, failed[0].Stream)
	assert.Equal(t, 2, failed[1].Stream)
}
