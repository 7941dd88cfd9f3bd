package benchmark_test

import (
	"testing"

	"github.com/hupe1980/vptree"
	"github.com/hupe1980/vptree/metric"
	"github.com/hupe1980/vptree/testutil"
)

// ============================================================================
// Benchmark Configuration
// ============================================================================

// Metric trees lose their pruning power as the intrinsic dimension grows, so
// the dimensions stay small compared to ANN benchmarks.
const (
	dimSmall  = 2
	dimMedium = 8
	dimLarge  = 32
)

// Standard dataset sizes.
const (
	sizeSmall  = 10_000
	sizeMedium = 50_000
	sizeLarge  = 100_000
)

// Seed for deterministic benchmarks - enables reproducible comparisons.
const benchSeed = 42

// ============================================================================
// Benchmark Helpers
// ============================================================================

// MakeVectors generates n uniform vectors.
func MakeVectors(n, dim int) []metric.Vector {
	rng := testutil.NewRNG(benchSeed)
	raw := rng.UniformVectors(n, dim)
	out := make([]metric.Vector, n)
	for i, v := range raw {
		out[i] = metric.Vector(v)
	}
	return out
}

// MakeQueries generates n random query vectors.
func MakeQueries(n, dim int) []metric.Vector {
	rng := testutil.NewRNG(benchSeed + 1) // Different seed from data
	raw := rng.UniformVectors(n, dim)
	out := make([]metric.Vector, n)
	for i, v := range raw {
		out[i] = metric.Vector(v)
	}
	return out
}

// BuildTree builds a seeded tree over a copy of data.
func BuildTree(b *testing.B, data []metric.Vector, workers int) *vptree.Tree[metric.Vector] {
	b.Helper()
	return vptree.NewParallel(append([]metric.Vector(nil), data...), workers, vptree.WithSeed(benchSeed))
}

// exactTopK returns the ground truth k nearest input positions.
func exactTopK(data []metric.Vector, q metric.Vector, k int) []testutil.SearchResult {
	return testutil.BruteForceKNN(len(data), k, func(i int) float64 { return q.Distance(data[i]) })
}

func toResults(res []vptree.Neighbor[metric.Vector]) []testutil.SearchResult {
	out := make([]testutil.SearchResult, len(res))
	for i, r := range res {
		out[i] = testutil.SearchResult{ID: r.Index, Distance: r.Distance}
	}
	return out
}
