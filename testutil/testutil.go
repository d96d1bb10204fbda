// Package testutil provides deterministic dataset generators for tests and
// benchmarks.
package testutil

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/youdz/propfilter"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Items generates n items shaped like a small fleet inventory: a unique
// "name" ("node-0001", ...), a "state" drawn uniformly from states, and a
// numeric "size" in [0, sizeRange).
// Locks only once per call (preferred over drawing values in a loop).
func (r *RNG) Items(n int, states []string, sizeRange int) []propfilter.Item {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]propfilter.Item, n)
	for i := range n {
		items[i] = propfilter.Item{
			"name":  fmt.Sprintf("node-%04d", i),
			"state": states[r.rand.Intn(len(states))],
			"size":  float64(r.rand.Intn(sizeRange)),
		}
	}

	return items
}

// BucketItems generates n items carrying a single property whose values are
// "<key>-<bucket>" with Zipf-distributed buckets. Returns the items along
// with the bucket assignment per item.
// ~20% of buckets hold ~80% of items when s=1.5, which is how real-world
// label distributions look (power law).
func (r *RNG) BucketItems(n int, key string, bucketCount int, s float64) ([]propfilter.Item, []int64) {
	buckets := r.ZipfBuckets(n, bucketCount, s)

	items := make([]propfilter.Item, n)
	for i := range n {
		items[i] = propfilter.Item{
			key: fmt.Sprintf("%s-%d", key, buckets[i]),
		}
	}

	return items, buckets
}

// Sparsify removes key from items with probability missingRate (0.3 = 30%
// missing). Items are modified in place.
func (r *RNG) Sparsify(items []propfilter.Item, key string, missingRate float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		if r.rand.Float64() < missingRate {
			delete(item, key)
		}
	}
}

// Zipf returns a Zipfian-distributed value in [0, n).
// Uses Zipf's law: P(k) ∝ 1/k^s where s is the skew parameter.
// s=1.0 gives standard Zipf, s=1.5 gives heavy-tail (80/20 rule).
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	// Compute normalization constant (harmonic number with exponent s)
	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	// Sample from uniform and use inverse transform
	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1 // 0-indexed
		}
	}

	return n - 1
}

// ZipfBuckets generates n bucket assignments with Zipfian distribution.
// Returns slice where ~20% of buckets contain ~80% of values (when s=1.5).
func (r *RNG) ZipfBuckets(n, bucketCount int, s float64) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	buckets := make([]int64, n)
	for i := range n {
		buckets[i] = int64(r.zipfLocked(bucketCount, s))
	}

	return buckets
}

// SparseMask generates a presence mask with missing entries.
// missingRate is the probability that an entry is missing (0.3 = 30% missing).
func (r *RNG) SparseMask(n int, missingRate float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	present := make([]bool, n)
	for i := range n {
		present[i] = r.rand.Float64() >= missingRate
	}

	return present
}
