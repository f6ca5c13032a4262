// Package benchmarks compares the sequential path with both parallel
// backends on CPU-bound workloads.
package benchmarks

import (
	"math/big"

	"github.com/utkarsh5026/splitwork/internal/fib"
	"github.com/utkarsh5026/splitwork/pool"
)

// backendConfig defines a benchmark configuration for a backend
type backendConfig struct {
	name string
	opts []pool.Option
}

// getAllBackends returns every backend configuration to benchmark
func getAllBackends() []backendConfig {
	return []backendConfig{
		{
			name: "Manual",
			opts: []pool.Option{pool.WithBackend(pool.BackendManual)},
		},
		{
			name: "ManualUnpinned",
			opts: []pool.Option{pool.WithBackend(pool.BackendManual), pool.WithAffinity(false)},
		},
		{
			name: "Library",
			opts: []pool.Option{pool.WithBackend(pool.BackendLibrary)},
		},
	}
}

// cpuBoundWork simulates a CPU-intensive operation
func cpuBoundWork(iterations int) pool.MapFunc[int, int] {
	return func(task int) int {
		result := 0
		for i := 0; i < iterations; i++ {
			result += i * task
		}
		return result
	}
}

// skewedWork makes every eighth item much more expensive than the rest, the
// case round-robin assignment handles worst.
func skewedWork(iterations int) pool.MapFunc[int, int] {
	heavy := cpuBoundWork(iterations * 16)
	light := cpuBoundWork(iterations)
	return func(task int) int {
		if task%8 == 0 {
			return heavy(task)
		}
		return light(task)
	}
}

// fibWork is the demo payload.
func fibWork(n uint) *big.Int {
	return fib.Fib(n)
}

// fibItems returns count Fibonacci indices starting at start, step apart.
func fibItems(start, step uint, count int) []uint {
	items := make([]uint, count)
	for i := range items {
		items[i] = start + uint(i)*step
	}
	return items
}

func intItems(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}
