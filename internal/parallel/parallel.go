// Package parallel runs independent work items across goroutines.
//
// Autodiff graphs are single-goroutine, so callers hand each chunk its own
// graph and combine results after For or ForChunks returns.
package parallel

import (
	"runtime"
	"sync"

	"github.com/klauspost/cpuid/v2"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on the logical core count.
//
// Workers are capped at GOMAXPROCS: goroutines beyond it cannot run at the
// same time, and GOMAXPROCS already honors CPU affinity and cgroup limits.
func DefaultConfig() Config {
	procs := runtime.GOMAXPROCS(0)
	n := cpuid.CPU.LogicalCores
	if n <= 0 || n > procs {
		n = procs
	}
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64, // Typical cache line aware chunk.
	}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	ForChunks(n, func(start, end int) {
		for i := start; i < end; i++ {
			f(i)
		}
	}, cfg)
}

// ForChunks splits [0, n) into contiguous chunks and executes f(start, end)
// for each, one goroutine per chunk. Chunks never overlap, so f may own
// per-chunk state such as a reusable graph.
func ForChunks(n int, f func(start, end int), cfg Config) {
	if n <= 0 {
		return
	}
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < cfg.MinChunkSize {
		// Sequential fallback.
		f(0, n)
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f(s, e)
		}(start, end)
	}
	wg.Wait()
}
