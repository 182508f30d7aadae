package randutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(7), New(7)
	for range 10 {
		assert.Equal(t, a.Float64(), b.Float64())
	}

	assert.NotEqual(t, New(7).Uint64(), New(8).Uint64())
}

func TestResolve(t *testing.T) {
	now := time.Unix(0, 123456789)

	assert.Equal(t, int64(99), Resolve(99, now))
	assert.Equal(t, int64(123456789), Resolve(0, now))
	assert.Equal(t, int64(1), Resolve(0, time.Unix(0, 0)))
}

func TestSeeds(t *testing.T) {
	seeds := Seeds(42, 5)
	assert.Len(t, seeds, 5)
	assert.Equal(t, seeds, Seeds(42, 5))

	// a longer batch starts with the same seeds
	assert.Equal(t, seeds, Seeds(42, 8)[:5])

	unique := make(map[int64]bool)
	for _, s := range seeds {
		unique[s] = true
	}
	assert.Len(t, unique, 5)
}
