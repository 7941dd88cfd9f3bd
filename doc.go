// Package vptree provides an in-memory vantage-point tree for similarity
// search in any metric space.
//
// A tree is built once from a slice of items whose type measures its own
// distance to other items, and then answers nearest-neighbour, k-nearest,
// radius and combined queries without touching most of the data.
//
// # Quick Start
//
//	points := []metric.Point{{0, 0}, {1, 1}, {3, 4}}
//	tree := vptree.New(points)
//
//	nn, ok := tree.Nearest(metric.Point{0.9, 1.2})
//	top, err := tree.KNearest(metric.Point{0, 0}, 2)
//	near, err := tree.InRadius(metric.Point{0, 0}, 1.5)
//
// # Queries
//
// The general entry point takes a Query value built with fluent modifiers:
//
//	q := vptree.KNearestWithinRadius(10, 0.5).Exclusive().Sorted()
//	res, err := tree.Query(target, q)
//
// Invalid arguments (k < 1, a negative or NaN radius) are kept in the Query
// and reported as an error matching ErrInvalidArgument before any search work
// happens.
//
// Results can be restricted to a subset of the input with an allow-list of
// input positions:
//
//	res, err := tree.Query(target, vptree.KNearest(5).Filter(bitmap.Of(1, 4, 9)))
//
// # Distances
//
// Stored types implement Item: Distance must be non-negative and obey the
// triangle inequality. Types with a cheaper distance of the same ordering,
// such as squared Euclidean distance, may also implement Heuristic to speed up
// construction. Package metric contains ready-made item types.
//
// # Concurrency
//
// NewParallel spreads construction over several goroutines; the resulting tree
// answers every query exactly like one built by New. A built tree is
// read-only and may be queried from any number of goroutines at once.
//
// # Ownership
//
// New and NewParallel take ownership of the slice they are given and reorder
// it in place. IntoItems returns it to the caller and empties the tree.
package vptree
