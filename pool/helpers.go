package pool

import (
	"errors"
	"fmt"
	"runtime"
)

var (
	// ErrWorkerPanic matches every *PanicError via errors.Is.
	ErrWorkerPanic = errors.New("worker panic")

	// ErrIndexMismatch means the collected results do not cover every input
	// index exactly once. It indicates a broken pool, not a bad function.
	ErrIndexMismatch = errors.New("result indices do not match input")
)

// noWorker is the Worker id reported for panics raised outside the manual
// pool's workers.
const noWorker = -1

// PanicError is returned when the map function panics. The whole call fails;
// no partial results are returned.
type PanicError struct {
	Value  any    // value passed to panic
	Index  int    // input index being processed
	Worker int    // manual pool worker slot, or -1
	Stack  []byte // stack of the panicking goroutine
}

func (e *PanicError) Error() string {
	if e.Worker == noWorker {
		return fmt.Sprintf("worker panic: item %d: %v", e.Index, e.Value)
	}
	return fmt.Sprintf("worker panic: item %d on worker %d: %v", e.Index, e.Worker, e.Value)
}

// Is reports whether target is ErrWorkerPanic.
func (e *PanicError) Is(target error) bool {
	return target == ErrWorkerPanic
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

func newPanicError(r any, index, worker int) *PanicError {
	buf := make([]byte, 4096)
	n := runtime.Stack(buf, false)
	return &PanicError{Value: r, Index: index, Worker: worker, Stack: buf[:n]}
}

// applyWithRecovery runs fn on item and converts a panic into a *PanicError.
func applyWithRecovery[T, R any](fn MapFunc[T, R], item T, index, worker int) (result R, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newPanicError(r, index, worker)
		}
	}()

	return fn(item), nil
}

// workerCount sizes a pool: one worker per available core, or DefaultWorkers
// when cores are unknown, never more than there are items.
func workerCount(items int, cores []int, ok bool) int {
	if ok && len(cores) > 0 {
		return min(items, len(cores))
	}
	return min(items, DefaultWorkers)
}
