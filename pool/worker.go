package pool

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/utkarsh5026/splitwork/internal/cpu"
	"github.com/utkarsh5026/splitwork/internal/inbox"
)

// worker owns one inbox and a send handle on the shared result channel.
type worker[T any, R any] struct {
	id          int
	core        int // -1 when not pinned
	tasks       *inbox.Inbox[workItem[T]]
	results     chan<- resultItem[R]
	fn          MapFunc[T, R]
	rateLimiter *rate.Limiter
	log         *zap.Logger
}

// run pins the goroutine if a core was assigned, then maps items until the
// inbox is closed and drained. A panic in fn ends the worker with a
// *PanicError. When another worker has already failed, ctx is done and the
// remaining items are left unprocessed.
func (w *worker[T, R]) run(ctx context.Context) error {
	if w.core >= 0 {
		release, err := cpu.Pin(w.core)
		if err != nil {
			w.log.Warn("pinning failed, running unpinned",
				zap.Int("worker", w.id),
				zap.Int("core", w.core),
				zap.Error(err),
			)
		} else {
			defer release()
		}
	}

	for {
		t, ok := w.tasks.Pop()
		if !ok {
			return nil
		}

		if ctx.Err() != nil {
			return nil
		}

		if w.rateLimiter != nil {
			if err := w.rateLimiter.Wait(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
		}

		value, err := applyWithRecovery(w.fn, t.payload, t.index, w.id)
		if err != nil {
			return err
		}

		w.results <- resultItem[R]{index: t.index, value: value}
	}
}
