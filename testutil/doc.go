// Package testutil provides testing utilities for vptree.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random data, computing exact
// answers by linear scan, and comparing result sets.
//
// # Random Data Generation
//
//	rng := testutil.NewRNG(seed)
//	values := rng.Float64s(1000, 0, 1000) // uniform [0, 1000)
//	points := rng.Points(1000, 3)         // uniform [0, 1)^3
//
// # Exact Search (Ground Truth)
//
//	truth := testutil.BruteForceKNN(len(items), k, func(i int) float64 {
//	    return target.Distance(items[i])
//	})
//
// # Recall Verification
//
//	recall := testutil.ComputeRecall(truth, results)
package testutil
