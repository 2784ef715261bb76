package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPool(t *testing.T) {
	for _, workers := range []int{0, 1, 4} {
		var n atomic.Int64
		pool := Start(workers)
		for i := 0; i < 100; i++ {
			pool.Do(func() { n.Add(1) })
		}
		pool.Wait()
		assert.Equal(t, int64(100), n.Load(), "workers=%d", workers)
	}
}

func TestPoolWaitTwice(t *testing.T) {
	pool := Start(2)
	pool.Do(func() {})
	pool.Wait()
	assert.NotPanics(t, pool.Wait)
}
