// Package inbox provides the unbounded inbound queue that feeds a single
// worker. One producer pushes, one consumer pops, and Close tells the
// consumer that no more work is coming.
package inbox

import (
	"errors"
	"sync"

	"github.com/eapache/queue"
)

// ErrClosed is returned by Push after Close.
var ErrClosed = errors.New("inbox: push on closed inbox")

// Inbox is an unbounded FIFO. Push never blocks; Pop blocks until an item is
// available or the inbox is closed and drained.
type Inbox[T any] struct {
	mu     sync.Mutex
	ready  *sync.Cond
	items  *queue.Queue
	closed bool
}

// New returns an empty, open inbox.
func New[T any]() *Inbox[T] {
	in := &Inbox[T]{items: queue.New()}
	in.ready = sync.NewCond(&in.mu)
	return in
}

// Push appends v to the tail.
func (in *Inbox[T]) Push(v T) error {
	in.mu.Lock()
	defer in.mu.Unlock()

	if in.closed {
		return ErrClosed
	}

	in.items.Add(v)
	in.ready.Signal()
	return nil
}

// Pop removes the head item. ok is false once the inbox is closed and empty.
func (in *Inbox[T]) Pop() (v T, ok bool) {
	in.mu.Lock()
	defer in.mu.Unlock()

	for in.items.Length() == 0 {
		if in.closed {
			return v, false
		}
		in.ready.Wait()
	}

	return in.items.Remove().(T), true
}

// Close marks the end of input. Items already pushed are still delivered.
// Calling Close more than once is a no-op.
func (in *Inbox[T]) Close() {
	in.mu.Lock()
	defer in.mu.Unlock()

	if in.closed {
		return
	}
	in.closed = true
	in.ready.Broadcast()
}

// Len returns the number of queued items.
func (in *Inbox[T]) Len() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.items.Length()
}
