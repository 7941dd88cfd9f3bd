package resource

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_Workers(t *testing.T) {
	c := NewController(Config{MaxWorkers: 2})

	require.True(t, c.TryAcquireWorker())
	require.True(t, c.TryAcquireWorker())
	assert.Equal(t, int64(2), c.ActiveWorkers())

	// Third slot is not available
	assert.False(t, c.TryAcquireWorker())

	c.ReleaseWorker()
	assert.Equal(t, int64(1), c.ActiveWorkers())
	assert.True(t, c.TryAcquireWorker())

	c.ReleaseWorker()
	c.ReleaseWorker()
	assert.Equal(t, int64(0), c.ActiveWorkers())
}

func TestController_DefaultLimit(t *testing.T) {
	c := NewController(Config{})

	require.True(t, c.TryAcquireWorker())
	assert.False(t, c.TryAcquireWorker())
	c.ReleaseWorker()
}

func TestController_NilChecks(t *testing.T) {
	var c *Controller
	assert.True(t, c.TryAcquireWorker())
	c.ReleaseWorker() // Should not panic
	assert.Equal(t, int64(0), c.ActiveWorkers())
}

func TestController_ConcurrentUse(t *testing.T) {
	c := NewController(Config{MaxWorkers: 4})

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.TryAcquireWorker() {
				assert.LessOrEqual(t, c.ActiveWorkers(), int64(4))
				c.ReleaseWorker()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(0), c.ActiveWorkers())
}
