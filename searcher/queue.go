package searcher

// PriorityQueueItem is a candidate found during traversal.
type PriorityQueueItem struct {
	Pos      int32   // Pos is the storage position of the candidate item.
	Distance float64 // Distance is the priority of the item in the queue.
}

// PriorityQueue is a max-heap of PriorityQueueItems: the top is the largest
// distance, i.e. the worst retained candidate.
// Storage is value based for cache locality and zero per-push allocations.
type PriorityQueue struct {
	items []PriorityQueueItem
}

// NewMax creates an empty max-heap that holds capacity items without growing.
func NewMax(capacity int) *PriorityQueue {
	return &PriorityQueue{
		items: make([]PriorityQueueItem, 0, capacity),
	}
}

// TopItem returns the top element of the heap.
func (pq *PriorityQueue) TopItem() (PriorityQueueItem, bool) {
	if len(pq.items) == 0 {
		return PriorityQueueItem{}, false
	}
	return pq.items[0], true
}

// PushItem inserts an item while maintaining the heap invariant.
func (pq *PriorityQueue) PushItem(item PriorityQueueItem) {
	pq.items = append(pq.items, item)
	pq.siftUp(len(pq.items) - 1)
}

// PushItemBounded inserts an item into a heap holding at most capacity items.
// If the heap is full and the new item is not strictly closer than the top,
// it is skipped; otherwise the top is replaced. It reports whether the item
// was kept.
func (pq *PriorityQueue) PushItemBounded(item PriorityQueueItem, capacity int) bool {
	if len(pq.items) < capacity {
		pq.PushItem(item)
		return true
	}

	top, ok := pq.TopItem()
	if !ok || item.Distance >= top.Distance {
		return false
	}
	pq.items[0] = item
	pq.siftDown(0)
	return true
}

// Items returns the backing slice in heap order. The slice is only valid
// until the next mutation.
func (pq *PriorityQueue) Items() []PriorityQueueItem {
	return pq.items
}

// Len returns the number of elements in the heap.
func (pq *PriorityQueue) Len() int {
	return len(pq.items)
}

func (pq *PriorityQueue) less(i, j int) bool {
	return pq.items[i].Distance > pq.items[j].Distance
}

func (pq *PriorityQueue) swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
}

// siftUp moves the element at index i up the heap until the heap invariant is restored.
func (pq *PriorityQueue) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !pq.less(i, parent) {
			break
		}
		pq.swap(i, parent)
		i = parent
	}
}

// siftDown moves the element at index i down the heap until the heap invariant is restored.
func (pq *PriorityQueue) siftDown(i int) {
	n := len(pq.items)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		child := left
		right := left + 1
		if right < n && pq.less(right, left) {
			child = right
		}
		if !pq.less(child, i) {
			break
		}
		pq.swap(i, child)
		i = child
	}
}

// EnsureCapacity grows the backing slice so that n items fit without reallocation.
func (pq *PriorityQueue) EnsureCapacity(n int) {
	if cap(pq.items) < n {
		items := make([]PriorityQueueItem, len(pq.items), n)
		copy(items, pq.items)
		pq.items = items
	}
}

// Reset clears the priority queue.
func (pq *PriorityQueue) Reset() {
	pq.items = pq.items[:0]
}
