package step

import (
	"sync"
	"sync/atomic"
)

// Token is a one-way stop flag for a run. The reader side is a single atomic
// load; the writer never waits on the reader.
type Token struct {
	stopped atomic.Bool

	mu     sync.Mutex
	done   chan struct{}
	closed bool
}

func NewToken() *Token {
	return &Token{done: make(chan struct{})}
}

// RequestStop marks the token stopped. Safe to call repeatedly from any
// goroutine.
func (t *Token) RequestStop() {
	if t.stopped.Swap(true) {
		return
	}
	t.mu.Lock()
	if !t.closed {
		close(t.done)
		t.closed = true
	}
	t.mu.Unlock()
}

// Stopped polls the flag without blocking.
func (t *Token) Stopped() bool {
	return t.stopped.Load()
}

// Done returns a channel closed once a stop has been requested.
func (t *Token) Done() <-chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done
}

// Reset returns the token to running. Only valid while no run polls it.
func (t *Token) Reset() {
	t.mu.Lock()
	if t.closed {
		t.done = make(chan struct{})
		t.closed = false
	}
	t.stopped.Store(false)
	t.mu.Unlock()
}
