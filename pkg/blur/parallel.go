package blur

import (
	"time"

	"github.com/rklaeser/go-blur3x3/pkg/workerpool"
)

// Parallel computes the same result as Sequential with the interior split
// across a fixed pool of workers. Every output pixel belongs to exactly one
// worker's range and the input is only read, so workers share nothing and
// need no locking.
func Parallel(src *Buffer, opts ...Option) *Buffer {
	o := newOptions(opts)
	start := time.Now()

	dst := prepareOutput(src, o.border)
	innerW, innerH := src.Width-2, src.Height-2
	if innerW <= 0 || innerH <= 0 {
		return dst
	}

	pool := o.pool
	if pool == nil {
		pool = workerpool.New(o.workers)
		defer pool.Close()
	}

	switch o.partition {
	case PartitionRows:
		pool.ParallelFor(innerH, func(first, last int) {
			for y := first + 1; y <= last; y++ {
				for x := 1; x <= innerW; x++ {
					convolvePixel(src, dst, x, y)
				}
			}
		})
	default:
		pool.ParallelFor(innerW*innerH, func(first, last int) {
			for i := first; i < last; i++ {
				convolvePixel(src, dst, i%innerW+1, i/innerW+1)
			}
		})
	}

	Logger().Debug("parallel blur",
		"width", src.Width, "height", src.Height,
		"workers", pool.NumWorkers(), "partition", o.partition,
		"border", o.border, "elapsed", time.Since(start))
	return dst
}
