package pool

// parallelFunc is the backend-specific branch the gate delegates to.
type parallelFunc[T, R any] func(items []T, fn MapFunc[T, R]) ([]R, error)

// gate runs fn sequentially on the calling goroutine when the input is
// shorter than threshold (or empty), and delegates to parallel otherwise.
func gate[T, R any](
	items []T,
	fn MapFunc[T, R],
	threshold int,
	conf *config,
	parallel parallelFunc[T, R],
) ([]R, error) {
	if len(items) == 0 || len(items) < threshold {
		if conf.onSequential != nil {
			conf.onSequential()
		}
		return sequential(items, fn)
	}

	return parallel(items, fn)
}

// sequential maps items in order on the calling goroutine.
func sequential[T, R any](items []T, fn MapFunc[T, R]) ([]R, error) {
	results := make([]R, len(items))
	for i, item := range items {
		r, err := applyWithRecovery(fn, item, i, noWorker)
		if err != nil {
			return nil, err
		}
		results[i] = r
	}
	return results, nil
}

// SplitWork applies fn to every item and returns the results in input order.
//
// Inputs shorter than threshold are mapped sequentially on the calling
// goroutine. Longer inputs are spread over a fresh pool of workers, one per
// available core (DefaultWorkers when cores cannot be enumerated), using the
// backend chosen with WithBackend.
//
// fn must be pure: it is called concurrently and must not share mutable
// state between calls. A panic in fn fails the whole call with a
// *PanicError and no results.
//
// Example:
//
//	squares, err := pool.SplitWork([]int{1, 2, 3}, func(n int) int { return n * n }, 2)
//	// squares: [1 4 9]
func SplitWork[T, R any](items []T, fn MapFunc[T, R], threshold int, opts ...Option) ([]R, error) {
	return New[T, R](threshold, opts...).Map(items, fn)
}

// MustSplitWork is like SplitWork but panics if the call fails.
func MustSplitWork[T, R any](items []T, fn MapFunc[T, R], threshold int, opts ...Option) []R {
	results, err := SplitWork(items, fn, threshold, opts...)
	if err != nil {
		panic(err)
	}
	return results
}

// New returns the Mapper for the backend selected in opts.
func New[T, R any](threshold int, opts ...Option) Mapper[T, R] {
	cfg := newConfig(opts...)
	if cfg.backend == BackendLibrary {
		return &LibraryPool[T, R]{threshold: max(threshold, 0), conf: cfg}
	}
	return &ManualPool[T, R]{threshold: max(threshold, 0), conf: cfg}
}
