// Package conv provides bounds-checked integer conversions.
//
// Use these where an out-of-range value is possible (sizes supplied by the
// caller); use plain casts where the range is already guaranteed.
package conv
