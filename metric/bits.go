package metric

import "math/bits"

// Hamming is a 64-bit fingerprint (for example a perceptual hash) under
// Hamming distance.
type Hamming uint64

// Distance implements vptree.Item.
func (h Hamming) Distance(other Hamming) float64 {
	return float64(bits.OnesCount64(uint64(h ^ other)))
}
