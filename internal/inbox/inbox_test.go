package inbox

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInbox_FIFO(t *testing.T) {
	in := New[int]()
	for i := range 1000 {
		require.NoError(t, in.Push(i))
	}
	assert.Equal(t, 1000, in.Len())

	for i := range 1000 {
		v, ok := in.Pop()
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
	assert.Equal(t, 0, in.Len())
}

func TestInbox_CloseDrainsBeforeStopping(t *testing.T) {
	in := New[string]()
	require.NoError(t, in.Push("a"))
	require.NoError(t, in.Push("b"))
	in.Close()

	v, ok := in.Pop()
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = in.Pop()
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	v, ok = in.Pop()
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestInbox_PushAfterClose(t *testing.T) {
	in := New[int]()
	in.Close()
	in.Close()

	assert.ErrorIs(t, in.Push(1), ErrClosed)
}

func TestInbox_PopBlocksUntilPush(t *testing.T) {
	in := New[int]()
	got := make(chan int, 1)

	go func() {
		v, _ := in.Pop()
		got <- v
	}()

	select {
	case <-got:
		t.Fatal("Pop returned before anything was pushed")
	case <-time.After(20 * time.Millisecond):
	}

	require.NoError(t, in.Push(7))

	select {
	case v := <-got:
		assert.Equal(t, 7, v)
	case <-time.After(time.Second):
		t.Fatal("Pop did not wake up after Push")
	}
}

func TestInbox_CloseWakesBlockedConsumer(t *testing.T) {
	in := New[int]()
	done := make(chan bool, 1)

	go func() {
		_, ok := in.Pop()
		done <- ok
	}()

	time.Sleep(10 * time.Millisecond)
	in.Close()

	select {
	case ok := <-done:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("Close did not wake the consumer")
	}
}

func TestInbox_ConcurrentProducerConsumer(t *testing.T) {
	const n = 10000
	in := New[int]()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range n {
			_ = in.Push(i)
		}
		in.Close()
	}()

	next := 0
	for {
		v, ok := in.Pop()
		if !ok {
			break
		}
		require.Equal(t, next, v)
		next++
	}
	wg.Wait()

	assert.Equal(t, n, next)
}
