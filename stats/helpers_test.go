package stats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustPanicIs runs fn and asserts that it panics with an error wrapping
// sentinel. Registration and access faults in this package panic rather
// than return, so tests classify them through the recovered value.
func mustPanicIs(t *testing.T, sentinel error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic wrapping %v", sentinel)
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)
		assert.True(t, errors.Is(err, sentinel), "panic %v should wrap %v", err, sentinel)
	}()
	fn()
}

// newCacheTree builds the canonical test schema:
//
//	cache.hits    Scalar[uint64]   offset 0, size 8
//	cache.misses  Scalar[uint64]   offset 8, size 8
//	cache.lat     Array[uint64]x4  offset 16, size 32
//
// and returns the registry plus the declared counters.
func newCacheTree(t *testing.T) (*Registry, *Scalar[uint64], *Scalar[uint64], *Array[uint64]) {
	t.Helper()
	reg := New(nil)
	cache := reg.NewNode("cache")
	hits := NewScalar[uint64](cache, "hits")
	misses := NewScalar[uint64](cache, "misses")
	lat := NewArray[uint64](cache, "lat", 4)
	return reg, hits, misses, lat
}
