// Package bitmap provides compressed allow-lists of original input positions.
//
// A Bitmap restricts which items a query may return without changing how the
// tree is traversed. Ids are the positions items had in the slice handed to
// vptree.New, which is why they are 32-bit.
package bitmap
