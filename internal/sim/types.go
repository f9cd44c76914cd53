package sim

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/algoviz/internal/step"
)

// RunRequest names a catalog algorithm and the values to run it on.
type RunRequest struct {
	Algorithm string
	Values    []int
}

func (r RunRequest) clone() RunRequest {
	c := RunRequest{Algorithm: r.Algorithm, Values: make([]int, len(r.Values))}
	copy(c.Values, r.Values)
	return c
}

// RunHandle is the caller's view of one run.
type RunHandle struct {
	id      string
	sched   *Scheduler
	req     RunRequest
	started time.Time
	done    chan struct{}

	mu      sync.Mutex
	outcome *step.Outcome
}

func newHandle(s *Scheduler, req RunRequest) *RunHandle {
	return &RunHandle{
		id:      uuid.NewString(),
		sched:   s,
		req:     req.clone(),
		started: time.Now(),
		done:    make(chan struct{}),
	}
}

func (h *RunHandle) ID() string        { return h.id }
func (h *RunHandle) Algorithm() string { return h.req.Algorithm }

// Request returns a copy of the submitted request.
func (h *RunHandle) Request() RunRequest { return h.req.clone() }

// Done is closed once the run has reached a terminal state.
func (h *RunHandle) Done() <-chan struct{} { return h.done }

func (h *RunHandle) State() step.RunState {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.outcome == nil {
		return step.Active
	}
	return h.outcome.State
}

// Outcome reports the terminal outcome, or false while the run is active.
func (h *RunHandle) Outcome() (step.Outcome, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.outcome == nil {
		return step.Outcome{}, false
	}
	return *h.outcome, true
}

// Wait blocks until the run ends.
func (h *RunHandle) Wait() step.Outcome {
	<-h.done
	o, _ := h.Outcome()
	return o
}

// Stop asks the run to end. No-op once it has.
func (h *RunHandle) Stop() {
	h.sched.Stop(h)
}

func (h *RunHandle) finish(o step.Outcome) {
	h.mu.Lock()
	h.outcome = &o
	h.mu.Unlock()
	close(h.done)
}
