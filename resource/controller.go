package resource

import (
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// Config holds resource limits.
type Config struct {
	// MaxWorkers is the maximum number of helper goroutines that may run
	// concurrently across all builds sharing the controller.
	// If 0, defaults to 1.
	MaxWorkers int64
}

// Controller hands out worker slots for parallel construction.
//
// A nil *Controller is valid and never limits anything.
type Controller struct {
	cfg Config

	workerSem *semaphore.Weighted
	active    atomic.Int64
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 1
	}

	return &Controller{
		cfg:       cfg,
		workerSem: semaphore.NewWeighted(cfg.MaxWorkers),
	}
}

// TryAcquireWorker attempts to reserve a worker slot without blocking.
// Construction uses this exclusively: when no slot is free the split simply
// runs in the calling goroutine.
func (c *Controller) TryAcquireWorker() bool {
	if c == nil {
		return true
	}
	if !c.workerSem.TryAcquire(1) {
		return false
	}
	c.active.Add(1)
	return true
}

// ReleaseWorker releases a worker slot.
func (c *Controller) ReleaseWorker() {
	if c == nil {
		return
	}
	c.active.Add(-1)
	c.workerSem.Release(1)
}

// ActiveWorkers returns the number of slots currently held.
func (c *Controller) ActiveWorkers() int64 {
	if c == nil {
		return 0
	}
	return c.active.Load()
}
