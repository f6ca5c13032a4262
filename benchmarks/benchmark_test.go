package benchmarks

import (
	"fmt"
	"testing"

	"github.com/utkarsh5026/splitwork/pool"
)

// =============================================================================
// Sequential baseline vs. backends
// =============================================================================

func BenchmarkFib_Demo(b *testing.B) {
	items := fibItems(1000, 100, 10)

	b.Run("Sequential", func(b *testing.B) {
		for b.Loop() {
			if _, err := pool.SplitWork(items, fibWork, len(items)+1); err != nil {
				b.Fatal(err)
			}
		}
	})

	for _, bc := range getAllBackends() {
		b.Run(bc.name, func(b *testing.B) {
			for b.Loop() {
				if _, err := pool.SplitWork(items, fibWork, 0, bc.opts...); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkFib_Large(b *testing.B) {
	items := fibItems(10_000, 500, 64)

	for _, bc := range getAllBackends() {
		b.Run(bc.name, func(b *testing.B) {
			for b.Loop() {
				if _, err := pool.SplitWork(items, fibWork, 0, bc.opts...); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// =============================================================================
// Input size scaling
// =============================================================================

func BenchmarkCPUBound_Sizes(b *testing.B) {
	work := cpuBoundWork(2000)

	for _, size := range []int{16, 256, 4096} {
		items := intItems(size)
		for _, bc := range getAllBackends() {
			b.Run(fmt.Sprintf("%s/n=%d", bc.name, size), func(b *testing.B) {
				for b.Loop() {
					if _, err := pool.SplitWork(items, work, 0, bc.opts...); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkSkewed(b *testing.B) {
	items := intItems(1024)
	work := skewedWork(500)

	for _, bc := range getAllBackends() {
		b.Run(bc.name, func(b *testing.B) {
			for b.Loop() {
				if _, err := pool.SplitWork(items, work, 0, bc.opts...); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
