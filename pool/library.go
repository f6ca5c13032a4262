package pool

import (
	"runtime"
	"sync"
	"time"

	"github.com/exascience/pargo/parallel"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LibraryPool is the library-scheduled backend. Its parallel branch hands
// the index range to pargo, which splits it recursively into batches run on
// goroutines; the Go runtime's work-stealing scheduler balances them. Each
// result is written straight into its slot, so no reordering is needed.
//
// The gate, the ordering guarantee and the failure rules are the same as
// ManualPool's. Affinity and rate limiting do not apply.
type LibraryPool[T any, R any] struct {
	threshold int
	conf      *config
}

// NewLibraryPool creates a library-backed mapper that parallelises inputs
// of at least threshold items.
func NewLibraryPool[T any, R any](threshold int, opts ...Option) *LibraryPool[T, R] {
	return &LibraryPool[T, R]{
		threshold: max(threshold, 0),
		conf:      newConfig(opts...),
	}
}

// Threshold returns the parallelisation cutoff.
func (p *LibraryPool[T, R]) Threshold() int {
	return p.threshold
}

// Map applies fn to every item and returns the results in input order.
func (p *LibraryPool[T, R]) Map(items []T, fn MapFunc[T, R]) ([]R, error) {
	return gate(items, fn, p.threshold, p.conf, p.parallel)
}

func (p *LibraryPool[T, R]) parallel(items []T, fn MapFunc[T, R]) ([]R, error) {
	start := time.Now()
	batches := min(len(items), runtime.GOMAXPROCS(0))

	log := p.conf.logger.With(
		zap.String("invocation", uuid.NewString()),
		zap.String("backend", BackendLibrary.String()),
	)
	log.Debug("splitting range", zap.Int("items", len(items)), zap.Int("batches", batches))

	results := make([]R, len(items))

	var (
		once     sync.Once
		firstErr error
	)

	parallel.Range(0, len(items), batches, func(low, high int) {
		for i := low; i < high; i++ {
			r, err := applyWithRecovery(fn, items[i], i, noWorker)
			if err != nil {
				once.Do(func() { firstErr = err })
				return
			}
			results[i] = r
		}
	})

	if firstErr != nil {
		log.Debug("invocation failed", zap.Error(firstErr))
		return nil, firstErr
	}

	log.Debug("invocation finished", zap.Duration("elapsed", time.Since(start)))
	return results, nil
}
