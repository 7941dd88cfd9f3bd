//go:build arm64

package metric

import "github.com/viant/vec/search"

func cosineDistance(a, b []float32, m1, m2 float32) float32 {
	// The NEON and SVE kernels read the first element unconditionally, so the
	// degenerate cases follow the portable implementation here.
	if m1 == 0 || m2 == 0 {
		return 1
	}
	if len(a) != len(b) {
		return 0
	}
	return search.Float32s(a).CosineDistanceWithMagnitude(b, m1, m2)
}
