// Package randutil centralises how seeded generators are built so that every
// game, strategy and batch derives its randomness the same way.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper centralises how we derive the two 64-bit seeds required by rand/v2
// so that all call sites get reproducible sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Resolve returns seed unchanged unless it is zero, in which case a seed is
// taken from now. Zero means "pick one for me" on every command line flag.
func Resolve(seed int64, now time.Time) int64 {
	if seed != 0 {
		return seed
	}
	if s := now.UnixNano(); s != 0 {
		return s
	}
	return 1
}

// Seeds derives n independent game seeds from a master seed. The i-th seed
// depends only on the master seed and i, so batches can be split or resumed.
func Seeds(master int64, n int) []int64 {
	seeds := make([]int64, n)
	rng := New(master)
	for i := range seeds {
		seeds[i] = rng.Int64()
	}
	return seeds
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
