// Package workerpool runs statically partitioned parallel loops on a fixed
// set of long-lived goroutines.
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(rows, func(first, last int) {
//	    for y := first; y < last; y++ {
//	        processRow(y)
//	    }
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed-size set of worker goroutines. Workers start in New and
// run until Close.
type Pool struct {
	numWorkers int
	work       chan job
	closeOnce  sync.Once
	closed     atomic.Bool
}

type job struct {
	fn   func()
	done *sync.WaitGroup
}

// New starts a pool with numWorkers goroutines. numWorkers <= 0 means
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		work:       make(chan job, numWorkers),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for j := range p.work {
		j.fn()
		j.done.Done()
	}
}

// NumWorkers returns the pool size.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers once queued work has drained. Safe to call more
// than once. ParallelFor on a closed pool runs inline.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.work)
	})
}

// ParallelFor splits [0, n) into at most NumWorkers contiguous chunks of
// ceil(n/workers) indices and calls fn(first, last) for each chunk on its
// own worker, returning when all chunks are done. Chunks never overlap and
// together cover the range exactly once.
//
// ParallelFor must not be called concurrently with Close.
func (p *Pool) ParallelFor(n int, fn func(first, last int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for first := 0; first < n; first += chunk {
		last := min(first+chunk, n)
		wg.Add(1)
		p.work <- job{
			fn:   func() { fn(first, last) },
			done: &wg,
		}
	}
	wg.Wait()
}
