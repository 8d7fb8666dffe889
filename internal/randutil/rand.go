package randutil

import (
	rand "math/rand/v2"

	"github.com/lox/msws"
)

// New returns a *rand.Rand over an MSWS stream seeded deterministically from
// the provided int64. Every call site derives its increment the same way so
// all of them get reproducible sequences, including for zero and negative
// seeds.
func New(seed int64) *rand.Rand {
	return rand.New(Source(seed))
}

// Source returns the raw generator behind New for callers that only need
// 32-bit outputs.
func Source(seed int64) *msws.Rand {
	return msws.MustNew(msws.Seed(uint64(seed)))
}
