// Package searcher holds the reusable scratch state of a single tree query.
package searcher

import (
	"sync"
)

// maxRetainedCapacity caps the buffer kept alive in the pool so that one
// unbounded radius query does not pin a huge slice forever.
const maxRetainedCapacity = 1 << 16

// Searcher is a reusable execution context for tree queries.
// It owns the retention buffer so that steady-state queries do not allocate
// beyond their result slice.
//
// Searcher is NOT thread-safe. It is intended to be owned by a single goroutine
// during a search operation.
type Searcher struct {
	// Candidates is a max-heap holding the best items found so far; its top is
	// the worst retained candidate.
	Candidates *PriorityQueue

	// OpsPerformed counts distance computations during the traversal.
	OpsPerformed int
}

var searcherPool = sync.Pool{
	New: func() interface{} {
		return NewSearcher(64)
	},
}

// AcquireSearcher retrieves a Searcher from the pool and prepares it for use.
// capacityHint is the expected number of retained candidates.
func AcquireSearcher(capacityHint int) *Searcher {
	s := searcherPool.Get().(*Searcher)
	if capacityHint > 0 && capacityHint <= maxRetainedCapacity {
		s.Candidates.EnsureCapacity(capacityHint)
	}
	s.OpsPerformed = 0
	return s
}

// ReleaseSearcher resets the Searcher and returns it to the pool.
func ReleaseSearcher(s *Searcher) {
	if cap(s.Candidates.items) > maxRetainedCapacity {
		return
	}
	s.Reset()
	searcherPool.Put(s)
}

// NewSearcher creates a new Searcher whose buffer can hold capacity items
// without growing.
func NewSearcher(capacity int) *Searcher {
	return &Searcher{
		Candidates: NewMax(capacity),
	}
}

// Reset clears the searcher state for reuse without freeing memory.
func (s *Searcher) Reset() {
	s.Candidates.Reset()
	s.OpsPerformed = 0
}
