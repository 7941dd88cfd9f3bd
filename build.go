package vptree

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/vptree/internal/conv"
	"github.com/hupe1980/vptree/resource"
)

// parallelCutoff is the smallest subtree that is handed to another goroutine.
// Smaller subtrees still split their budget but are built in place.
const parallelCutoff = 512

// New builds a tree sequentially.
//
// The tree takes ownership of items: the slice is permuted in place and must
// not be used by the caller afterwards. Use IntoItems to get it back.
func New[T Item[T]](items []T, opts ...Option) *Tree[T] {
	return NewParallel(items, 1, opts...)
}

// Collect builds a tree sequentially from the values of seq. Neighbor.Index
// refers to the order in which seq yielded the items.
func Collect[T Item[T]](seq iter.Seq[T], opts ...Option) *Tree[T] {
	return New(slices.Collect(seq), opts...)
}

// NewParallel builds a tree using up to workers goroutines. The budget is
// split ceil/floor between the two halves of every partition; a budget of 1
// or less builds sequentially. The resulting tree answers every query exactly
// like a sequentially built one.
//
// Ownership of items transfers to the tree as with New.
func NewParallel[T Item[T]](items []T, workers int, opts ...Option) *Tree[T] {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if workers < 1 {
		workers = 1
	}

	n := len(items)
	if _, err := conv.IntToInt32(n); err != nil {
		panic(fmt.Sprintf("vptree: too many items: %v", err))
	}

	start := time.Now()

	t := &Tree[T]{
		items:  items,
		origin: make([]int32, n),
		nodes:  make([]node, n),
		opts:   o,
	}
	for i := range t.origin {
		t.origin[i] = int32(i)
	}

	if n > 0 {
		b := &builder[T]{controller: o.controller}
		root := partition[T]{
			items:  t.items,
			origin: t.origin,
			nodes:  t.nodes,
			dists:  make([]float64, n),
		}
		b.build(root, newRand(o.seed), workers)
	}

	duration := time.Since(start)
	o.metricsCollector.RecordBuild(n, workers, duration)

	ctx := context.Background()
	if o.logger.Enabled(ctx, slog.LevelDebug) {
		o.logger.WithCount(n).WithWorkers(workers).LogBuild(ctx, t.Stats(), duration)
	}

	return t
}

func newRand(seed *uint64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewPCG(*seed, *seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// partition is an exclusively owned view of one contiguous subtree range.
// The four slices are parallel and offset is the absolute storage position of
// their first element.
type partition[T any] struct {
	offset int32
	items  []T
	origin []int32
	nodes  []node
	dists  []float64
}

// sub returns the view [from, to). The capacity is clipped so the view can
// never reach into a sibling range.
func (p partition[T]) sub(from, to int) partition[T] {
	return partition[T]{
		offset: p.offset + int32(from),
		items:  p.items[from:to:to],
		origin: p.origin[from:to:to],
		nodes:  p.nodes[from:to:to],
		dists:  p.dists[from:to:to],
	}
}

func (p partition[T]) swap(i, j int) {
	p.items[i], p.items[j] = p.items[j], p.items[i]
	p.origin[i], p.origin[j] = p.origin[j], p.origin[i]
	p.dists[i], p.dists[j] = p.dists[j], p.dists[i]
}

// selectNth partially orders the view by dists so that position k holds the
// element of rank k, everything before it is <= and everything after it is >=.
// Three-way partitioning keeps runs of equal distances linear.
func (p partition[T]) selectNth(k int, rng *rand.Rand) {
	lo, hi := 0, len(p.dists)
	for hi-lo > 1 {
		pv := p.dists[lo+rng.IntN(hi-lo)]

		// [lo, lt) < pv, [lt, i) == pv, [gt, hi) > pv
		lt, i, gt := lo, lo, hi
		for i < gt {
			switch d := p.dists[i]; {
			case d < pv:
				p.swap(lt, i)
				lt++
				i++
			case d > pv:
				gt--
				p.swap(i, gt)
			default:
				i++
			}
		}

		switch {
		case k < lt:
			hi = lt
		case k >= gt:
			lo = gt
		default:
			return
		}
	}
}

type builder[T Item[T]] struct {
	controller *resource.Controller
}

func (b *builder[T]) build(p partition[T], rng *rand.Rand, workers int) {
	n := len(p.items)
	switch n {
	case 0:
		return
	case 1:
		p.nodes[0] = node{left: noChild, right: noChild}
		return
	}

	p.swap(0, rng.IntN(n))
	pivot := p.items[0]
	rank := heuristicOf(pivot)

	rest := p.sub(1, n)
	for i, item := range rest.items {
		rest.dists[i] = rank(item)
	}

	m := (n - 1) / 2
	rest.selectNth(m, rng)

	p.nodes[0] = node{
		threshold: pivot.Distance(rest.items[m]),
		left:      noChild,
		right:     rest.offset + int32(m),
	}
	if m > 0 {
		p.nodes[0].left = rest.offset
	}

	left := rest.sub(0, m)
	right := rest.sub(m, n-1)

	if workers <= 1 {
		b.build(left, rng, 1)
		b.build(right, rng, 1)
		return
	}

	// The left half always gets its own stream so that the layout depends
	// only on the seed and the budget, not on whether a goroutine was granted.
	leftRng := rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64()))
	leftWorkers, rightWorkers := (workers+1)/2, workers/2

	if len(left.items) < parallelCutoff || !b.controller.TryAcquireWorker() {
		b.build(left, leftRng, leftWorkers)
		b.build(right, rng, rightWorkers)
		return
	}

	var g errgroup.Group
	g.Go(func() (err error) {
		defer b.controller.ReleaseWorker()
		defer func() {
			if r := recover(); r != nil {
				err = &buildPanic{value: r}
			}
		}()
		b.build(left, leftRng, leftWorkers)
		return nil
	})
	b.build(right, rng, rightWorkers)

	// A panicking Distance surfaces in the caller exactly as in a
	// sequential build.
	if err := g.Wait(); err != nil {
		var p *buildPanic
		if errors.As(err, &p) {
			panic(p.value)
		}
		panic(err)
	}
}

// buildPanic carries a panic out of a helper goroutine.
type buildPanic struct {
	value any
}

func (p *buildPanic) Error() string {
	return fmt.Sprintf("vptree: panic during build: %v", p.value)
}
