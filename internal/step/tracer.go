package step

import "time"

// DefaultDelay is the pause after every emitted frame.
const DefaultDelay = 500 * time.Millisecond

// Tracer carries a run's token, renderer and pacing. Algorithms call Emit at
// every step they want to surface and stop as soon as it returns false.
type Tracer struct {
	token     *Token
	renderer  Renderer
	delay     time.Duration
	observers []Observer
	frames    int
	halted    bool
}

// NewTracer builds a tracer. A nil token never stops; a delay <= 0 disables
// pacing.
func NewTracer(token *Token, r Renderer, delay time.Duration) *Tracer {
	if token == nil {
		token = NewToken()
	}
	if r == nil {
		r = RendererFunc(func(Frame) {})
	}
	return &Tracer{token: token, renderer: r, delay: delay}
}

func (t *Tracer) AddObserver(o Observer) { t.observers = append(t.observers, o) }

// Stopped reports whether the run must end. Once it has returned true the
// tracer counts the run as halted.
func (t *Tracer) Stopped() bool {
	if t.token.Stopped() {
		t.halted = true
	}
	return t.halted
}

// Halted reports whether the algorithm saw a stop request.
func (t *Tracer) Halted() bool { return t.halted }

// Frames is the number of frames emitted so far.
func (t *Tracer) Frames() int { return t.frames }

// Emit snapshots values with the given highlights.
func (t *Tracer) Emit(values []int, highlighted ...int) bool {
	if t.Stopped() {
		return false
	}
	return t.emit(NewFrame(values, highlighted...))
}

// EmitColor snapshots values with a color override on one index.
func (t *Tracer) EmitColor(values []int, idx int, c Color) bool {
	if t.Stopped() {
		return false
	}
	return t.emit(NewColorFrame(values, idx, c))
}

func (t *Tracer) emit(f Frame) bool {
	t.renderer.Emit(f)
	t.frames++
	for _, o := range t.observers {
		o.Observe(f)
	}
	t.pause()
	return !t.Stopped()
}

func (t *Tracer) pause() {
	if t.delay <= 0 {
		return
	}
	timer := time.NewTimer(t.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-t.token.Done():
	}
}
