// Package statistics provides smoke tests for generator output quality.
// None of these are proofs; they catch broken arithmetic and short cycles.
package statistics

import (
	"fmt"
	"math"
)

// BucketCount is the number of equal-width buckets outputs are binned into,
// one per value of the top nibble.
const BucketCount = 16

// ChiSquareCritical is the chi-square value for BucketCount-1 degrees of
// freedom at p = 0.001.
const ChiSquareCritical = 37.697

// MaxRun is the longest run of identical consecutive outputs considered normal.
const MaxRun = 4

// Stream accumulates 32-bit generator outputs.
type Stream struct {
	Count   int
	Sum     float64 // Sum of outputs scaled to [0,1)
	SumSq   float64 // Sum of squares for variance calculation
	Buckets [BucketCount]int
	Values  []uint32 // Every output, for period detection

	last    uint32
	run     int
	longest int
}

// Add incorporates one output.
func (s *Stream) Add(v uint32) {
	f := float64(v) / (1 << 32)
	s.Count++
	s.Sum += f
	s.SumSq += f * f
	s.Buckets[v>>28]++
	s.Values = append(s.Values, v)

	if s.Count > 1 && v == s.last {
		s.run++
	} else {
		s.run = 1
	}
	s.last = v
	if s.run > s.longest {
		s.longest = s.run
	}
}

// Mean returns the mean of the scaled outputs; 0.5 for a uniform source.
func (s *Stream) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / float64(s.Count)
}

// Variance returns the sample variance of the scaled outputs; 1/12 for a
// uniform source.
func (s *Stream) Variance() float64 {
	if s.Count < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumSq - float64(s.Count)*mean*mean) / float64(s.Count-1)
}

func (s *Stream) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// ChiSquare returns Pearson's statistic of the bucket counts against a
// uniform distribution.
func (s *Stream) ChiSquare() float64 {
	if s.Count == 0 {
		return 0
	}
	expected := float64(s.Count) / BucketCount
	var chi float64
	for _, observed := range s.Buckets {
		d := float64(observed) - expected
		chi += d * d / expected
	}
	return chi
}

// LongestRun returns the longest run of identical consecutive outputs.
func (s *Stream) LongestRun() int {
	return s.longest
}

// Period returns the smallest p <= maxPeriod for which the second half of
// the recorded outputs repeats with period p, or 0 when there is none. The
// first half is skipped so warm-up outputs do not hide a cycle.
func (s *Stream) Period(maxPeriod int) int {
	n := len(s.Values)
	start := n / 2
	for p := 1; p <= maxPeriod && start+p < n; p++ {
		if repeatsWith(s.Values[start:], p) {
			return p
		}
	}
	return 0
}

func repeatsWith(vals []uint32, p int) bool {
	for i := p; i < len(vals); i++ {
		if vals[i] != vals[i-p] {
			return false
		}
	}
	return true
}

// Summary is a reportable snapshot of a Stream.
type Summary struct {
	Count      int
	Mean       float64
	StdDev     float64
	ChiSquare  float64
	LongestRun int
	Period     int
}

// Summarize computes a Summary, looking for cycles up to maxPeriod.
func (s *Stream) Summarize(maxPeriod int) Summary {
	return Summary{
		Count:      s.Count,
		Mean:       s.Mean(),
		StdDev:     s.StdDev(),
		ChiSquare:  s.ChiSquare(),
		LongestRun: s.LongestRun(),
		Period:     s.Period(maxPeriod),
	}
}

// Validate reports the first smoke test the summary fails.
func (sum Summary) Validate() error {
	if sum.Count == 0 {
		return fmt.Errorf("no outputs recorded")
	}
	if sum.LongestRun > MaxRun {
		return fmt.Errorf("run of %d identical outputs exceeds %d", sum.LongestRun, MaxRun)
	}
	if sum.Period != 0 {
		return fmt.Errorf("outputs cycle with period %d", sum.Period)
	}
	return nil
}

// Uniform reports whether the bucket counts pass the chi-square test.
func (sum Summary) Uniform() bool {
	return sum.ChiSquare <= ChiSquareCritical
}
