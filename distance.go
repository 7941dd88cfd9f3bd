package vptree

// Item is the constraint on stored types: an item must measure its distance
// to another item of the same type.
//
// Distance must be non-negative and should satisfy the metric axioms. The
// tree never checks this; a function breaking the triangle inequality makes
// queries silently miss results but never makes them fail.
type Item[T any] interface {
	Distance(other T) float64
}

// Target is anything that can measure its distance to a stored item. Every
// Item[T] is a Target[T], but a lighter type (for example a bare coordinate
// for items that carry payloads) may be used as well.
type Target[T any] interface {
	Distance(item T) float64
}

// Heuristic is optionally implemented by stored types that have a cheaper
// distance with the same ordering against a fixed reference, such as squared
// Euclidean distance. Construction uses it to rank candidates; thresholds are
// always computed with Distance.
type Heuristic[T any] interface {
	DistanceHeuristic(other T) float64
}

// TargetFunc adapts a plain function to Target.
type TargetFunc[T any] func(item T) float64

// Distance implements Target.
func (f TargetFunc[T]) Distance(item T) float64 {
	return f(item)
}

// heuristicOf returns the ranking distance from pivot to other.
func heuristicOf[T Item[T]](pivot T) func(other T) float64 {
	if h, ok := any(pivot).(Heuristic[T]); ok {
		return h.DistanceHeuristic
	}
	return pivot.Distance
}
