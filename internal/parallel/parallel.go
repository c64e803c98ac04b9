// Package parallel provides goroutine-level lane dispatch for the engine's
// forward loops.
//
// Every transform in this framework is lane-independent: no lane reads or
// writes another lane, so lanes may execute concurrently with no ordering
// requirement. Narrow vectors stay sequential; wide ones fan out in chunks.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel lane execution.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum lanes per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 256, // Activations are cheap; favor big chunks.
	}
}

// Sequential returns a config that disables fan-out entirely.
func Sequential() Config {
	return Config{}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is
// below the chunk threshold. f must be safe to call concurrently for
// distinct i; lane-independent transforms satisfy this by construction.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
