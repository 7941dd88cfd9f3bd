//go:build !arm64

package metric

import "github.com/viant/vec/search"

func cosineDistance(a, b []float32, m1, m2 float32) float32 {
	return search.Float32s(a).CosineDistanceWithMagnitudesNeon(b, m1, m2)
}
