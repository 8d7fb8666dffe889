// Package msws implements the Middle Square Weyl Sequence pseudorandom
// number generator.
//
// A generator is a plain value owned by its caller. It is fully determined
// by its seed and is not safe for concurrent use; give every goroutine its
// own generator instead.
//
// Pseudorandom number generators should not be used for crypto.
package msws

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrInvalidSeed is matched by every error returned for a rejected seed.
var ErrInvalidSeed = errors.New("invalid seed")

// InvalidSeedError reports a seed that cannot be used as a Weyl increment.
type InvalidSeedError struct {
	Seed   uint64
	Reason string
}

func (e *InvalidSeedError) Error() string {
	return fmt.Sprintf("invalid seed 0x%016x: %s", e.Seed, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidSeed) succeed.
func (e *InvalidSeedError) Is(target error) bool {
	return target == ErrInvalidSeed
}

// Rand holds the generator state. Keep calling Uint32 on the same value.
type Rand struct {
	x uint64 // running square
	w uint64 // Weyl sequence
	s uint64 // increment, odd and never mutated
}

// New creates a generator from seed, which must be odd and greater than 1.
func New(seed uint64) (*Rand, error) {
	if err := validate(seed); err != nil {
		return nil, err
	}
	return &Rand{s: seed}, nil
}

// MustNew is like New but panics on an invalid seed.
func MustNew(seed uint64) *Rand {
	r, err := New(seed)
	if err != nil {
		panic(err)
	}
	return r
}

func validate(seed uint64) error {
	switch {
	case seed&1 == 0:
		return &InvalidSeedError{Seed: seed, Reason: "seed must be odd"}
	case seed == 1:
		return &InvalidSeedError{Seed: seed, Reason: "seed must be greater than 1"}
	}
	return nil
}

// Seed returns the Weyl increment the generator was built with.
func (r *Rand) Seed() uint64 {
	return r.s
}

// Uint32 advances the generator and returns the middle 32 bits of the square.
func (r *Rand) Uint32() uint32 {
	r.x *= r.x
	r.w += r.s
	r.x += r.w
	r.x = swapHalves(r.x)
	return uint32(r.x)
}

// swapHalves rotates x left by 32, exchanging its high and low words.
func swapHalves(x uint64) uint64 {
	return bits.RotateLeft64(x, 32)
}
