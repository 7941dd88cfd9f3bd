package vptree

// Stats describes the shape of a tree.
type Stats struct {
	Len    int // number of items
	Leaves int // nodes without children
	Depth  int // nodes on the longest root-to-leaf path
}

// Stats walks the tree and returns its shape. Because every split is by
// rank, Depth is ceil(log2(Len+1)) regardless of the data.
func (t *Tree[T]) Stats() Stats {
	s := Stats{Len: len(t.items)}
	if len(t.nodes) > 0 {
		t.walkStats(0, 1, &s)
	}
	return s
}

func (t *Tree[T]) walkStats(pos int32, depth int, s *Stats) {
	if depth > s.Depth {
		s.Depth = depth
	}
	n := t.nodes[pos]
	if n.isLeaf() {
		s.Leaves++
		return
	}
	if n.left != noChild {
		t.walkStats(n.left, depth+1, s)
	}
	if n.right != noChild {
		t.walkStats(n.right, depth+1, s)
	}
}
