package vptree

import (
	"fmt"
	"math"

	"github.com/hupe1980/vptree/bitmap"
)

// Query describes what a search should return. It is an immutable value:
// every modifier returns a changed copy, so a Query can be shared and reused.
//
// Invalid arguments do not panic. The first one is remembered and returned by
// Err and by every tree method the Query is passed to.
//
// The zero value asks for zero items and is rejected; start from NewQuery,
// KNearest, KNearestWithinRadius or WithinRadius.
type Query struct {
	maxItems    int
	maxDistance float64
	exclusive   bool
	sorted      bool
	allow       *bitmap.Bitmap
	err         error
}

// NewQuery returns a query for every item at any distance, unsorted.
func NewQuery() Query {
	return Query{
		maxItems:    math.MaxInt,
		maxDistance: math.Inf(1),
	}
}

// KNearest returns a query for the k closest items.
func KNearest(k int) Query {
	return NewQuery().MaxItems(k)
}

// KNearestWithinRadius returns a query for the k closest items no farther
// than r.
func KNearestWithinRadius(k int, r float64) Query {
	return NewQuery().MaxItems(k).WithinRadius(r)
}

// WithinRadius returns a query for every item no farther than r.
func WithinRadius(r float64) Query {
	return NewQuery().WithinRadius(r)
}

// Exclusive drops items at distance exactly zero from the target, which
// excludes the target itself when it is a stored item.
func (q Query) Exclusive() Query {
	q.exclusive = true
	return q
}

// Sorted orders results by ascending distance. Without it the order is
// arbitrary.
func (q Query) Sorted() Query {
	q.sorted = true
	return q
}

// WithinRadius limits results to items no farther than r. r must be
// non-negative and not NaN; +Inf removes the limit.
func (q Query) WithinRadius(r float64) Query {
	if math.IsNaN(r) || r < 0 {
		q.fail(&InvalidMaxDistanceError{MaxDistance: r})
		return q
	}
	q.maxDistance = r
	return q
}

// MaxItems limits results to the k closest matches. k must be at least 1.
func (q Query) MaxItems(k int) Query {
	if k < 1 {
		q.fail(&InvalidMaxItemsError{MaxItems: k})
		return q
	}
	q.maxItems = k
	return q
}

// Filter restricts results to items whose input index is in allow. Items
// outside the set still guide the traversal but are never returned. A nil
// bitmap removes the filter.
func (q Query) Filter(allow *bitmap.Bitmap) Query {
	q.allow = allow
	return q
}

// Limit returns the maximum number of results.
func (q Query) Limit() int { return q.maxItems }

// Radius returns the maximum result distance.
func (q Query) Radius() float64 { return q.maxDistance }

// IsExclusive reports whether zero-distance items are dropped.
func (q Query) IsExclusive() bool { return q.exclusive }

// IsSorted reports whether results are ordered by distance.
func (q Query) IsSorted() bool { return q.sorted }

// Err returns the first invalid argument given while building q.
func (q Query) Err() error {
	if q.err != nil {
		return q.err
	}
	if q.maxItems < 1 {
		return &InvalidMaxItemsError{MaxItems: q.maxItems}
	}
	return nil
}

// String implements fmt.Stringer.
func (q Query) String() string {
	return fmt.Sprintf("Query{limit: %d, radius: %v, exclusive: %t, sorted: %t, filtered: %t}",
		q.maxItems, q.maxDistance, q.exclusive, q.sorted, q.allow != nil)
}

func (q *Query) fail(err error) {
	if q.err == nil {
		q.err = err
	}
}

func (q Query) allows(index int32) bool {
	return q.allow == nil || q.allow.Contains(uint32(index))
}
