package vptree

import (
	"cmp"
	"context"
	"math"
	"slices"
	"time"

	"github.com/hupe1980/vptree/searcher"
)

// Neighbor is a single search result.
type Neighbor[T any] struct {
	// Item is a copy of the stored item.
	Item T

	// Distance is the true distance from the target to Item.
	Distance float64

	// Index is the position of Item in the slice the tree was built from.
	Index int
}

// Nearest returns the item closest to target. It reports false only for an
// empty tree.
func (t *Tree[T]) Nearest(target Target[T]) (Neighbor[T], bool) {
	return t.nearest(target, false)
}

// NearestExclusive returns the closest item at a non-zero distance from
// target. It reports false if the tree is empty or every item is at distance
// zero.
func (t *Tree[T]) NearestExclusive(target Target[T]) (Neighbor[T], bool) {
	return t.nearest(target, true)
}

// KNearest returns the k closest items ordered by distance.
func (t *Tree[T]) KNearest(target Target[T], k int) ([]Neighbor[T], error) {
	return t.Query(target, KNearest(k).Sorted())
}

// InRadius returns every item no farther than r ordered by distance.
func (t *Tree[T]) InRadius(target Target[T], r float64) ([]Neighbor[T], error) {
	return t.Query(target, WithinRadius(r).Sorted())
}

// Query runs q against the tree. It fails only if q carries an invalid
// argument, in which case the tree is not touched.
func (t *Tree[T]) Query(target Target[T], q Query) ([]Neighbor[T], error) {
	start := time.Now()
	ctx := context.Background()

	if err := q.Err(); err != nil {
		t.opts.metricsCollector.RecordSearch(0, 0, time.Since(start), err)
		t.opts.logger.LogSearch(ctx, q.maxItems, 0, 0, err)
		return nil, err
	}

	if len(t.nodes) == 0 {
		t.opts.metricsCollector.RecordSearch(0, 0, time.Since(start), nil)
		return nil, nil
	}

	s := searcher.AcquireSearcher(min(q.maxItems, len(t.items)))
	defer searcher.ReleaseSearcher(s)

	st := &searchState[T]{
		target:   target,
		q:        q,
		s:        s,
		tau:      q.maxDistance,
		capacity: q.maxItems,
	}
	t.search(0, st)

	candidates := s.Candidates.Items()
	res := make([]Neighbor[T], len(candidates))
	for i, c := range candidates {
		res[i] = t.neighbor(c.Pos, c.Distance)
	}

	if q.sorted {
		slices.SortFunc(res, func(a, b Neighbor[T]) int {
			return cmp.Compare(a.Distance, b.Distance)
		})
	}

	t.opts.metricsCollector.RecordSearch(len(res), s.OpsPerformed, time.Since(start), nil)
	t.opts.logger.LogSearch(ctx, q.maxItems, len(res), s.OpsPerformed, nil)

	return res, nil
}

type searchState[T any] struct {
	target   Target[T]
	q        Query
	s        *searcher.Searcher
	tau      float64 // current search radius
	capacity int
}

func (t *Tree[T]) search(pos int32, st *searchState[T]) {
	n := t.nodes[pos]
	dist := st.target.Distance(t.items[pos])
	st.s.OpsPerformed++

	if dist <= st.tau && (!st.q.exclusive || dist > 0) && st.q.allows(t.origin[pos]) {
		cand := st.s.Candidates
		cand.PushItemBounded(searcher.PriorityQueueItem{Pos: pos, Distance: dist}, st.capacity)
		if cand.Len() >= st.capacity {
			top, _ := cand.TopItem()
			st.tau = top.Distance
		}
	}

	if n.isLeaf() {
		return
	}

	// Each subtree is visited only while the ball of radius tau around the
	// target may still intersect it; tau is re-read after the first descent.
	if dist <= n.threshold {
		if n.left != noChild {
			t.search(n.left, st)
		}
		if n.right != noChild && dist+st.tau >= n.threshold {
			t.search(n.right, st)
		}
	} else {
		if n.right != noChild {
			t.search(n.right, st)
		}
		if n.left != noChild && dist-st.tau <= n.threshold {
			t.search(n.left, st)
		}
	}
}

type nearestState[T any] struct {
	target    Target[T]
	exclusive bool
	best      int32
	tau       float64
	visited   int
}

func (t *Tree[T]) nearest(target Target[T], exclusive bool) (Neighbor[T], bool) {
	start := time.Now()

	st := &nearestState[T]{
		target:    target,
		exclusive: exclusive,
		best:      noChild,
		tau:       math.Inf(1),
	}
	if len(t.nodes) > 0 {
		t.searchNearest(0, st)
	}

	found := st.best != noChild
	results := 0
	if found {
		results = 1
	}
	t.opts.metricsCollector.RecordSearch(results, st.visited, time.Since(start), nil)
	t.opts.logger.LogSearch(context.Background(), 1, results, st.visited, nil)

	if !found {
		return Neighbor[T]{}, false
	}
	return t.neighbor(st.best, st.tau), true
}

func (t *Tree[T]) searchNearest(pos int32, st *nearestState[T]) {
	n := t.nodes[pos]
	dist := st.target.Distance(t.items[pos])
	st.visited++

	if (!st.exclusive || dist > 0) && (st.best == noChild || dist < st.tau) {
		st.best = pos
		st.tau = dist
	}

	if n.isLeaf() {
		return
	}

	if dist <= n.threshold {
		if n.left != noChild {
			t.searchNearest(n.left, st)
		}
		if n.right != noChild && dist+st.tau >= n.threshold {
			t.searchNearest(n.right, st)
		}
	} else {
		if n.right != noChild {
			t.searchNearest(n.right, st)
		}
		if n.left != noChild && dist-st.tau <= n.threshold {
			t.searchNearest(n.left, st)
		}
	}
}
