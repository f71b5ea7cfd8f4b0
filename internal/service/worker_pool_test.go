package service

import (
	"sync/atomic"
	"testing"
)

func TestWorkerPool_RunsEveryJob(t *testing.T) {
	testCases := []struct {
		name    string
		workers int
		jobs    int
	}{
		{"Single worker", 1, 10},
		{"More jobs than queue", 2, 50},
		{"Default workers", 0, 20},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pool := NewWorkerPool(tc.workers)
			pool.Start()
			defer pool.Close()

			var count int64
			for i := 0; i < tc.jobs; i++ {
				pool.Submit(func() { atomic.AddInt64(&count, 1) })
			}
			pool.Wait()

			if got := atomic.LoadInt64(&count); got != int64(tc.jobs) {
				t.Errorf("Expected %d jobs to run, got %d", tc.jobs, got)
			}
		})
	}
}

func TestWorkerPool_StartIsIdempotent(t *testing.T) {
	pool := NewWorkerPool(3)
	pool.Start()
	pool.Start()
	defer pool.Close()

	results := make([]int, 8)
	for i := range results {
		i := i
		pool.Submit(func() { results[i] = i * i })
	}
	pool.Wait()

	for i, v := range results {
		if v != i*i {
			t.Errorf("Expected results[%d]=%d, got %d", i, i*i, v)
		}
	}
}
