package parallel

import (
	"runtime"
	"sync"
)

// Pool fans work out to a fixed set of goroutines. With a single worker it
// degenerates to running tasks inline, which keeps callers free of
// goroutine overhead for small inputs.
type Pool struct {
	wg   sync.WaitGroup
	work chan func()
	stop sync.Once
}

// Start launches a pool with the given number of workers. Zero or negative
// means one worker per available CPU.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{}
	if numWorkers > 1 {
		pool.work = make(chan func(), numWorkers)
		for i := 0; i < numWorkers; i++ {
			pool.wg.Add(1)
			go func() {
				defer pool.wg.Done()
				for f := range pool.work {
					f()
				}
			}()
		}
	}

	return pool
}

// Do schedules f on the pool, or runs it inline for a single-worker pool.
// Must not be called after Wait.
func (p *Pool) Do(f func()) {
	if p.work == nil {
		f()
		return
	}
	p.work <- f
}

// Wait stops accepting work and blocks until all scheduled tasks finish.
func (p *Pool) Wait() {
	p.stop.Do(func() {
		if p.work != nil {
			close(p.work)
		}
	})
	p.wg.Wait()
}
