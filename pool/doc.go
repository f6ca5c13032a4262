// Package pool provides an order-preserving parallel map for pure,
// CPU-bound functions.
//
// SplitWork applies a function to every item of a slice and returns the
// results in input order. Short inputs (fewer items than the threshold) are
// mapped sequentially on the calling goroutine; longer inputs are spread over
// a pool of workers that exists only for the duration of the call.
//
// # Basic Usage
//
//	items := []uint{1000, 1100, 1200}
//	results, err := pool.SplitWork(items, fib.Fib, 2)
//	// results[i] == fib.Fib(items[i])
//
// # Backends
//
// Two backends share the same contract and return identical results:
//
//   - ManualPool (default): one worker per available core, each pinned to its
//     core on Linux and fed through a private unbounded inbox. Item i goes to
//     worker i mod n. Workers send index-tagged results over one shared
//     channel; the results are sorted by index once every worker has exited.
//   - LibraryPool: the index range is split recursively by pargo and the
//     batches run on ordinary goroutines; results are written in place.
//
// Pick one with WithBackend, or construct it directly:
//
//	m := pool.NewLibraryPool[uint, *big.Int](8)
//	results, err := m.Map(items, fib.Fib)
//
// # Worker Count and Affinity
//
// The manual pool sizes itself as min(len(items), cores) where cores is the
// set of logical CPUs the process may run on. When that set cannot be read
// (any platform other than Linux, or a failing syscall) it uses
// min(len(items), DefaultWorkers) and does not pin. Pinning failures are
// logged and ignored. WithAffinity(false) keeps the sizing but skips pinning.
//
// # Configuration Options
//
//   - WithBackend(b): BackendManual (default) or BackendLibrary
//   - WithLogger(l): zap logger for per-call diagnostics (default: no-op)
//   - WithAffinity(enabled): pin manual-pool workers to cores (default: true)
//   - WithRateLimit(itemsPerSecond, burst): throttle manual-pool workers
//   - WithSequentialHook(fn): called once per call that runs sequentially
//
// # Error Handling
//
// There is no partial result. If the function panics for any item the whole
// call returns a *PanicError (matching ErrWorkerPanic) and nil results;
// workers that have not started further items stop early. MustSplitWork
// panics instead of returning the error. ErrIndexMismatch signals a pool
// that lost or duplicated a result and should never be seen.
//
// There is no cancellation: once dispatched, every item runs to completion
// unless another item has already failed.
package pool
