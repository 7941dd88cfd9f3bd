package metric

import "math"

// Float is a real number under absolute difference.
type Float float64

// Distance implements vptree.Item.
func (f Float) Distance(other Float) float64 {
	return math.Abs(float64(f) - float64(other))
}

// Int is an integer under absolute difference.
type Int int64

// Distance implements vptree.Item.
func (i Int) Distance(other Int) float64 {
	d := float64(i) - float64(other)
	if d < 0 {
		return -d
	}
	return d
}
