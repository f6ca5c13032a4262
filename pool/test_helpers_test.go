package pool

import "testing"

// backendConfig defines a test configuration for a backend
type backendConfig struct {
	name string
	opts []Option
}

// getAllBackends returns every backend, plus the manual pool with pinning
// disabled, so each property is checked against all of them.
func getAllBackends() []backendConfig {
	return []backendConfig{
		{
			name: "Manual",
			opts: []Option{WithBackend(BackendManual)},
		},
		{
			name: "ManualUnpinned",
			opts: []Option{WithBackend(BackendManual), WithAffinity(false)},
		},
		{
			name: "Library",
			opts: []Option{WithBackend(BackendLibrary)},
		},
	}
}

// getAllBackendsWithOpts returns all backends with additional options
func getAllBackendsWithOpts(additionalOpts ...Option) []backendConfig {
	backends := getAllBackends()
	for i := range backends {
		backends[i].opts = append(backends[i].opts, additionalOpts...)
	}
	return backends
}

func runBackendTest(t *testing.T, testFunc func(t *testing.T, b backendConfig), additionalOpts ...Option) {
	for _, backend := range getAllBackendsWithOpts(additionalOpts...) {
		t.Run(backend.name, func(t *testing.T) {
			testFunc(t, backend)
		})
	}
}

func double(n int) int { return n * 2 }

func sequence(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}
