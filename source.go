package msws

import (
	"math/bits"
	rand "math/rand/v2"
)

// Uint64 combines two consecutive outputs, the first in the high word.
func (r *Rand) Uint64() uint64 {
	hi := uint64(r.Uint32())
	lo := uint64(r.Uint32())
	return hi<<32 | lo
}

// IntN returns a uniformly distributed int in [0, n). It panics if n <= 0.
func (r *Rand) IntN(n int) int {
	if n <= 0 {
		panic("msws: invalid argument to IntN")
	}
	if uint64(n) <= 1<<32-1 {
		return int(r.uint32n(uint32(n)))
	}
	return int(r.uint64n(uint64(n)))
}

// Float64 returns a float64 in [0.0, 1.0) built from 53 random bits.
func (r *Rand) Float64() float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}

// uint32n uses Lemire's multiply-shift with rejection of the biased low range.
func (r *Rand) uint32n(n uint32) uint32 {
	m := uint64(r.Uint32()) * uint64(n)
	if low := uint32(m); low < n {
		thresh := -n % n
		for low < thresh {
			m = uint64(r.Uint32()) * uint64(n)
			low = uint32(m)
		}
	}
	return uint32(m >> 32)
}

func (r *Rand) uint64n(n uint64) uint64 {
	hi, lo := bits.Mul64(r.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(r.Uint64(), n)
		}
	}
	return hi
}

// source adapts Rand to the math/rand/v2 Source interface.
type source struct {
	rng *Rand
}

func (s *source) Uint64() uint64 {
	return s.rng.Uint64()
}

// NewSource returns a math/rand/v2 Source backed by a generator for seed.
func NewSource(seed uint64) (rand.Source, error) {
	r, err := New(seed)
	if err != nil {
		return nil, err
	}
	return &source{rng: r}, nil
}

// NewRand returns a math/rand/v2 Rand over an MSWS stream for seed.
func NewRand(seed uint64) (*rand.Rand, error) {
	src, err := NewSource(seed)
	if err != nil {
		return nil, err
	}
	return rand.New(src), nil
}
