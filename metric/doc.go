// Package metric provides ready-made distance types for vptree.
//
// Every type implements Distance against itself and can therefore be stored
// in a tree and used as a query target. Types with a cheaper order-preserving
// form also implement DistanceHeuristic, which construction uses for ranking.
//
// Vectors of different lengths are a caller error; the distance of such a
// pair is undefined.
package metric
