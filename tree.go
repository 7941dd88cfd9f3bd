package vptree

import (
	"iter"
)

// noChild marks an absent child link.
const noChild int32 = -1

// node is the partition metadata of the subtree rooted at the same storage
// position. Items closer to the pivot than threshold live under left, items
// farther under right; items exactly at threshold may be on either side.
type node struct {
	threshold float64
	left      int32
	right     int32
}

func (n node) isLeaf() bool {
	return n.left == noChild && n.right == noChild
}

// Tree is an immutable vantage-point tree over items of type T.
//
// Items are stored depth-first with every pivot in front of its subtrees, so
// the root is at position 0. A Tree is safe for concurrent queries; it has no
// mutating methods other than IntoItems.
type Tree[T Item[T]] struct {
	items  []T
	origin []int32 // original input position of items[i]
	nodes  []node  // nodes[i] describes the subtree pivoted at items[i]
	opts   options
}

// Len returns the number of items in the tree.
func (t *Tree[T]) Len() int {
	return len(t.items)
}

// Items returns the stored items in storage order, which is unrelated to the
// order they were passed in.
func (t *Tree[T]) Items() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range t.items {
			if !yield(item) {
				return
			}
		}
	}
}

// IntoItems hands the item storage back to the caller and leaves the tree
// empty. The order of the returned slice is arbitrary.
func (t *Tree[T]) IntoItems() []T {
	items := t.items
	t.items = nil
	t.origin = nil
	t.nodes = nil
	return items
}

// neighbor materializes the result for storage position pos.
func (t *Tree[T]) neighbor(pos int32, dist float64) Neighbor[T] {
	return Neighbor[T]{
		Item:     t.items[pos],
		Distance: dist,
		Index:    int(t.origin[pos]),
	}
}
