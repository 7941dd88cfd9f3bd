package metric

import (
	"math"

	"github.com/viant/vec/search"
)

// Vector is a float32 embedding under Euclidean (L2) distance.
type Vector []float32

// Distance implements vptree.Item.
func (v Vector) Distance(other Vector) float64 {
	return float64(search.Float32s(v).EuclideanDistance(search.Float32s(other)))
}

// CosineVector is a float32 embedding under cosine distance (1 - cosine
// similarity) with its magnitude cached.
//
// Cosine distance does not satisfy the triangle inequality in general, so
// trees over CosineVector answer approximately. For exact answers over
// normalized embeddings use Vector: L2 order equals cosine order on the unit
// sphere.
type CosineVector struct {
	Vec       []float32
	Magnitude float32
}

// NewCosineVector wraps v and precomputes its magnitude.
func NewCosineVector(v []float32) CosineVector {
	return CosineVector{
		Vec:       v,
		Magnitude: magnitude(v),
	}
}

// Distance implements vptree.Item.
func (c CosineVector) Distance(other CosineVector) float64 {
	m1 := c.Magnitude
	if m1 == 0 {
		m1 = magnitude(c.Vec)
	}
	m2 := other.Magnitude
	if m2 == 0 {
		m2 = magnitude(other.Vec)
	}
	d := float64(cosineDistance(c.Vec, other.Vec, m1, m2))
	if d < 0 {
		// Rounding can push identical vectors slightly below zero.
		return 0
	}
	return d
}

func magnitude(v []float32) float32 {
	if len(v) == 0 {
		return 0
	}
	return search.Float32s(v).Magnitude()
}

// Point is a float64 point under Euclidean distance.
// Its heuristic is the squared distance, which avoids the square root while
// ranking during construction.
type Point []float64

// Distance implements vptree.Item.
func (p Point) Distance(other Point) float64 {
	return math.Sqrt(p.DistanceHeuristic(other))
}

// DistanceHeuristic implements vptree.Heuristic.
func (p Point) DistanceHeuristic(other Point) float64 {
	var sum float64
	for i := range p {
		d := p[i] - other[i]
		sum += d * d
	}
	return sum
}
