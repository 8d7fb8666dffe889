package statistics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/msws"
)

func TestStream_Empty(t *testing.T) {
	s := &Stream{}

	assert.Zero(t, s.Mean())
	assert.Zero(t, s.Variance())
	assert.Zero(t, s.StdDev())
	assert.Zero(t, s.ChiSquare())
	assert.Zero(t, s.LongestRun())
	assert.Zero(t, s.Period(10))
	assert.Error(t, s.Summarize(10).Validate())
}

func TestStream_SingleValue(t *testing.T) {
	s := &Stream{}
	s.Add(1 << 31)

	assert.Equal(t, 1, s.Count)
	assert.Equal(t, 0.5, s.Mean())
	assert.Zero(t, s.Variance())
	assert.Equal(t, 1, s.LongestRun())
	assert.Equal(t, 1, s.Buckets[8])
}

func TestStream_LongestRun(t *testing.T) {
	s := &Stream{}
	for _, v := range []uint32{1, 1, 2, 3, 3, 3, 3, 4, 3} {
		s.Add(v)
	}
	assert.Equal(t, 4, s.LongestRun())

	sum := s.Summarize(0)
	require.NoError(t, sum.Validate())

	s.Add(3)
	s.Add(3)
	s.Add(3)
	s.Add(3)
	s.Add(3)
	assert.Equal(t, 6, s.LongestRun())
	assert.Error(t, s.Summarize(0).Validate())
}

func TestStream_RunStartsWithZero(t *testing.T) {
	// A zero first output must not count as continuing a run.
	s := &Stream{}
	s.Add(0)
	s.Add(7)
	assert.Equal(t, 1, s.LongestRun())
}

func TestStream_Period(t *testing.T) {
	s := &Stream{}
	// Warm-up noise followed by a cycle of length 3.
	for _, v := range []uint32{9, 8, 7, 6, 5} {
		s.Add(v)
	}
	for i := 0; i < 20; i++ {
		s.Add(uint32(i % 3))
	}

	assert.Equal(t, 3, s.Period(10))
	assert.Zero(t, s.Period(2))

	sum := s.Summarize(10)
	assert.EqualError(t, sum.Validate(), "outputs cycle with period 3")
}

func TestStream_ChiSquare(t *testing.T) {
	flat := &Stream{}
	for b := 0; b < BucketCount; b++ {
		for i := 0; i < 100; i++ {
			flat.Add(uint32(b) << 28)
		}
	}
	assert.Zero(t, flat.ChiSquare())

	skewed := &Stream{}
	for i := 0; i < 1600; i++ {
		skewed.Add(0)
	}
	// All samples in one bucket: (1600-100)^2/100 + 15*100.
	assert.InDelta(t, 24000, skewed.ChiSquare(), 1e-9)
	assert.False(t, skewed.Summarize(0).Uniform())
}

func TestStream_GeneratorOutputPasses(t *testing.T) {
	r := msws.MustNew(0xb5ad4eceda1ce2a9)
	s := &Stream{}
	for i := 0; i < 100_000; i++ {
		s.Add(r.Uint32())
	}

	sum := s.Summarize(1000)
	require.NoError(t, sum.Validate())
	assert.InDelta(t, 0.5, sum.Mean, 0.01)
	assert.InDelta(t, math.Sqrt(1.0/12), sum.StdDev, 0.01)
	assert.True(t, sum.Uniform(), "chi-square %.2f", sum.ChiSquare)
}
