package metrics

import (
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// calculator implements Calculator. Row-independent passes are split into
// horizontal strips, one goroutine per strip; every output sample is summed in a
// fixed order so results do not depend on the worker count.
type calculator struct {
	workers int
	kernel  []float64
}

// NewCalculator creates a calculator using up to workers goroutines per pass.
// workers <= 0 means runtime.NumCPU().
func NewCalculator(workers int) Calculator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &calculator{
		workers: workers,
		kernel:  GaussianKernel1D(WindowSize, WindowSigma),
	}
}

// parallelRows calls fn over [0,n) split into contiguous strips
func (c *calculator) parallelRows(n int, fn func(start, end int)) {
	workers := c.workers
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(0, n)
		return
	}
	rowsPerWorker := (n + workers - 1) / workers // ceil division

	var wg sync.WaitGroup
	for start := 0; start < n; start += rowsPerWorker {
		end := min(start+rowsPerWorker, n)
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}

// correlateValid correlates src with the separable window kernel, keeping only
// positions where the window lies fully inside src.
func (c *calculator) correlateValid(src *Grid) *Grid {
	k := c.kernel
	w, h := src.Dx(), src.Dy()
	ow, oh := w-len(k)+1, h-len(k)+1

	// horizontal pass over every input row
	tmp := NewGrid(ow, h)
	c.parallelRows(h, func(start, end int) {
		for y := start; y < end; y++ {
			in, out := src.Row(y), tmp.Row(y)
			for x := range out {
				var s float64
				for i, kv := range k {
					s += kv * in[x+i]
				}
				out[x] = s
			}
		}
	})

	// vertical pass
	dst := NewGrid(ow, oh)
	c.parallelRows(oh, func(start, end int) {
		for y := start; y < end; y++ {
			out := dst.Row(y)
			for j, kv := range k {
				floats.AddScaled(out, kv, tmp.Row(y+j))
			}
		}
	})
	return dst
}
