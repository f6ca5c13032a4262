package pool

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/utkarsh5026/splitwork/internal/cpu"
	"github.com/utkarsh5026/splitwork/internal/inbox"
)

// ManualPool is the hand-rolled backend. Every parallel call spawns a fresh
// set of workers, each pinned (best effort) to its own core and fed through
// a private inbox. Results flow back over one shared channel and are put
// back in input order before the call returns. Workers never outlive the
// call that created them.
//
// Type parameters:
//   - T: The input item type
//   - R: The result type
type ManualPool[T any, R any] struct {
	threshold int
	conf      *config
}

// NewManualPool creates a manual-pool mapper that parallelises inputs of at
// least threshold items.
//
// Example:
//
//	m := NewManualPool[uint, *big.Int](8, WithLogger(logger))
//	results, err := m.Map(items, fib.Fib)
func NewManualPool[T any, R any](threshold int, opts ...Option) *ManualPool[T, R] {
	return &ManualPool[T, R]{
		threshold: max(threshold, 0),
		conf:      newConfig(opts...),
	}
}

// Threshold returns the parallelisation cutoff.
func (p *ManualPool[T, R]) Threshold() int {
	return p.threshold
}

// Map applies fn to every item and returns the results in input order.
// See SplitWork for the gating and failure rules.
func (p *ManualPool[T, R]) Map(items []T, fn MapFunc[T, R]) ([]R, error) {
	return gate(items, fn, p.threshold, p.conf, p.parallel)
}

// parallel resolves cores, spawns the workers, dispatches every item and
// waits for the ordered results.
func (p *ManualPool[T, R]) parallel(items []T, fn MapFunc[T, R]) ([]R, error) {
	start := time.Now()
	cores, ok := cpu.Resolve()
	n := workerCount(len(items), cores, ok)

	if !ok || !p.conf.pin {
		cores = nil
	}

	log := p.conf.logger.With(
		zap.String("invocation", uuid.NewString()),
		zap.String("backend", BackendManual.String()),
	)
	log.Debug("spawning workers",
		zap.Int("items", len(items)),
		zap.Int("workers", n),
		zap.Bool("cores_resolved", ok),
		zap.Bool("pinned", cores != nil),
	)

	run := spawn(n, fn, cores, len(items), p.conf, log)
	run.dispatch(items)

	results, err := run.shutdown()
	if err != nil {
		log.Debug("invocation failed", zap.Error(err))
		return nil, err
	}

	log.Debug("invocation finished", zap.Duration("elapsed", time.Since(start)))
	return results, nil
}

// invocation is the state of one parallel call: the per-worker inboxes, the
// shared result channel and the group that joins the workers.
type invocation[T, R any] struct {
	inboxes []*inbox.Inbox[workItem[T]]
	results chan resultItem[R]
	group   *errgroup.Group
	size    int
	log     *zap.Logger
}

// spawn starts n workers. Worker i reads from its own inbox and, when cores
// is non-nil, is pinned to cores[i]. The result channel is buffered for all
// size results so workers never block on send.
func spawn[T, R any](
	n int,
	fn MapFunc[T, R],
	cores []int,
	size int,
	conf *config,
	log *zap.Logger,
) *invocation[T, R] {
	g, ctx := errgroup.WithContext(context.Background())

	inv := &invocation[T, R]{
		inboxes: make([]*inbox.Inbox[workItem[T]], n),
		results: make(chan resultItem[R], size),
		group:   g,
		size:    size,
		log:     log,
	}

	for i := range n {
		in := inbox.New[workItem[T]]()
		inv.inboxes[i] = in

		w := &worker[T, R]{
			id:          i,
			core:        -1,
			tasks:       in,
			results:     inv.results,
			fn:          fn,
			rateLimiter: conf.rateLimiter,
			log:         log,
		}
		if cores != nil {
			w.core = cores[i]
		}

		g.Go(func() error {
			return w.run(ctx)
		})
	}

	return inv
}

// dispatch sends item i to worker i mod n, then closes every inbox so each
// worker exits once it has drained its share.
func (inv *invocation[T, R]) dispatch(items []T) {
	n := len(inv.inboxes)
	for i, item := range items {
		if err := inv.inboxes[i%n].Push(workItem[T]{index: i, payload: item}); err != nil {
			// Inboxes are only closed below.
			panic(fmt.Sprintf("dispatch: inbox %d closed early: %v", i%n, err))
		}
	}

	for _, in := range inv.inboxes {
		in.Close()
	}
}

// shutdown joins every worker, closes the shared channel and collects the
// ordered results. The first worker failure is returned instead of results.
func (inv *invocation[T, R]) shutdown() ([]R, error) {
	err := inv.group.Wait()
	close(inv.results)

	if err != nil {
		// Drop whatever was produced; a failed call has no partial result.
		for range inv.results {
		}
		return nil, err
	}

	return collect(inv.results, inv.size)
}
