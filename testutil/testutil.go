package testutil

import (
	"cmp"
	"math"
	"math/rand"
	"slices"
	"sync"
)

// SearchResult is an item identified by its original input position.
type SearchResult struct {
	ID       int
	Distance float64
}

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
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
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

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Float64s returns n values uniform in [minVal, maxVal).
func (r *RNG) Float64s(n int, minVal, maxVal float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal
	out := make([]float64, n)
	for i := range out {
		out[i] = minVal + r.rand.Float64()*span
	}
	return out
}

// Ints returns n integers uniform in [0, maxVal). Small maxVal values produce
// many duplicates, which is useful for exercising ties.
func (r *RNG) Ints(n, maxVal int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(maxVal)
	}
	return out
}

// Points generates num points with coordinates uniform in [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) Points(num, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	points := make([][]float64, num)

	for i := range num {
		p := data[i*dimensions : (i+1)*dimensions]
		for j := range p {
			p[j] = r.rand.Float64()
		}
		points[i] = p
	}

	return points
}

// UniformVectors generates random float32 vectors with values in range [0, 1).
func (r *RNG) UniformVectors(num, dimensions int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dimensions)
	vectors := make([][]float32, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.Float32()
		}
		vectors[i] = vec
	}

	return vectors
}

// ClusteredPoints generates points around random centers with Gaussian noise.
// Clustered data is where metric trees prune best and where ties between
// distances are rare.
func (r *RNG) ClusteredPoints(num, dimensions, clusters int, spread float64) [][]float64 {
	centers := r.Points(clusters, dimensions)

	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	points := make([][]float64, num)

	for i := range num {
		center := centers[i%clusters]
		p := data[i*dimensions : (i+1)*dimensions]
		for j := range p {
			p[j] = center[j] + r.rand.NormFloat64()*spread
		}
		points[i] = p
	}

	return points
}

// BruteForce scores all n items with dist and returns them sorted by
// ascending distance. Ties keep input order.
func BruteForce(n int, dist func(i int) float64) []SearchResult {
	results := make([]SearchResult, n)
	for i := range n {
		results[i] = SearchResult{ID: i, Distance: dist(i)}
	}

	slices.SortStableFunc(results, func(a, b SearchResult) int {
		return cmp.Compare(a.Distance, b.Distance)
	})

	return results
}

// BruteForceKNN returns the k closest of n items by linear scan.
func BruteForceKNN(n, k int, dist func(i int) float64) []SearchResult {
	results := BruteForce(n, dist)
	if len(results) > k {
		results = results[:k]
	}
	return results
}

// BruteForceRadius returns every item within radius by linear scan, sorted by
// ascending distance. With exclusive set, zero-distance items are dropped.
func BruteForceRadius(n int, radius float64, exclusive bool, dist func(i int) float64) []SearchResult {
	var out []SearchResult
	for _, r := range BruteForce(n, dist) {
		if r.Distance > radius {
			break
		}
		if exclusive && r.Distance == 0 {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Distances extracts the distances of results in order.
func Distances(results []SearchResult) []float64 {
	out := make([]float64, len(results))
	for i, r := range results {
		out[i] = r.Distance
	}
	return out
}

// IDs extracts the ids of results, sorted ascending, for multiset comparison.
func IDs(results []SearchResult) []int {
	out := make([]int, len(results))
	for i, r := range results {
		out[i] = r.ID
	}
	slices.Sort(out)
	return out
}

// SameDistances reports whether two result sets have identical sorted
// distance profiles. This is the right equality for kNN answers when several
// items tie at the k-th distance and either may legitimately be returned.
func SameDistances(a, b []SearchResult) bool {
	if len(a) != len(b) {
		return false
	}
	da := Distances(a)
	db := Distances(b)
	slices.Sort(da)
	slices.Sort(db)
	for i := range da {
		if math.Abs(da[i]-db[i]) > 1e-12 {
			return false
		}
	}
	return true
}

// ComputeRecall computes recall@k by comparing a result set against ground truth.
func ComputeRecall(groundTruth, approximate []SearchResult) float64 {
	if len(groundTruth) == 0 || len(approximate) == 0 {
		if len(groundTruth) == 0 && len(approximate) == 0 {
			return 1.0
		}
		return 0.0
	}

	k := min(len(approximate), len(groundTruth))

	truthSet := make(map[int]struct{}, k)
	for i := range k {
		truthSet[groundTruth[i].ID] = struct{}{}
	}

	hits := 0
	for _, r := range approximate {
		if _, ok := truthSet[r.ID]; ok {
			hits++
		}
	}

	return float64(hits) / float64(k)
}
