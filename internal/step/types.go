package step

import (
	"sync"
	"time"
)

// Color is a presentation tag attached to a bar. Renderers decide what it
// looks like.
type Color string

const (
	ColorDefault   Color = "blue"
	ColorHighlight Color = "red"

	ColorOdd  Color = "green"
	ColorEven Color = "red"

	ColorPrime     Color = "blue"
	ColorComposite Color = "orange"
)

// Frame is one visualization moment. Values is owned by the frame; nothing
// else holds a reference to it.
type Frame struct {
	Values      []int
	Highlighted []int
	Colors      map[int]Color
}

// NewFrame copies values and records the highlighted indices as a set,
// keeping the order of first appearance.
func NewFrame(values []int, highlighted ...int) Frame {
	f := Frame{Values: cloneInts(values)}
	if len(highlighted) == 0 {
		return f
	}
	f.Highlighted = make([]int, 0, len(highlighted))
	for _, idx := range highlighted {
		if !f.IsHighlighted(idx) {
			f.Highlighted = append(f.Highlighted, idx)
		}
	}
	return f
}

// NewColorFrame copies values and tags a single index with c.
func NewColorFrame(values []int, idx int, c Color) Frame {
	return Frame{
		Values: cloneInts(values),
		Colors: map[int]Color{idx: c},
	}
}

func (f Frame) Clone() Frame {
	c := Frame{Values: cloneInts(f.Values)}
	if f.Highlighted != nil {
		c.Highlighted = cloneInts(f.Highlighted)
	}
	if f.Colors != nil {
		c.Colors = make(map[int]Color, len(f.Colors))
		for k, v := range f.Colors {
			c.Colors[k] = v
		}
	}
	return c
}

func (f Frame) IsHighlighted(idx int) bool {
	for _, h := range f.Highlighted {
		if h == idx {
			return true
		}
	}
	return false
}

// ColorAt resolves the tag for idx: an override wins over a highlight, which
// wins over the default.
func (f Frame) ColorAt(idx int) Color {
	if c, ok := f.Colors[idx]; ok {
		return c
	}
	if f.IsHighlighted(idx) {
		return ColorHighlight
	}
	return ColorDefault
}

// Validate reports the first annotation that does not address a value.
func (f Frame) Validate() error {
	n := len(f.Values)
	for _, idx := range f.Highlighted {
		if idx < 0 || idx >= n {
			return &FrameError{Index: idx, Len: n}
		}
	}
	for idx := range f.Colors {
		if idx < 0 || idx >= n {
			return &FrameError{Index: idx, Len: n}
		}
	}
	return nil
}

// Renderer consumes frames. Emit is called sequentially for a run and must
// not retain or mutate the frame's slices beyond reading them.
type Renderer interface {
	Emit(f Frame)
}

// Finisher is implemented by renderers that want to know when a run ends.
type Finisher interface {
	Finish(o Outcome)
}

// RendererFunc adapts a function to a Renderer.
type RendererFunc func(Frame)

func (fn RendererFunc) Emit(f Frame) { fn(f) }

// Observer sees every emitted frame after the renderer does.
type Observer interface {
	Observe(f Frame)
}

// Algorithm steps through input on a private copy, emitting frames through
// tr. It returns the working copy as it stood when the run ended.
type Algorithm interface {
	Name() string
	Run(input []int, tr *Tracer) []int
}

// RunState is the lifecycle position of a run.
type RunState int

const (
	Idle RunState = iota
	Active
	Completed
	Cancelled
)

func (s RunState) String() string {
	switch s {
	case Active:
		return "active"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	default:
		return "idle"
	}
}

// Outcome describes a finished run.
type Outcome struct {
	State   RunState
	Frames  int
	Values  []int
	Metrics map[string]float64
	Elapsed time.Duration
}

// Recorder is a Renderer that keeps every frame. Safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	frames  []Frame
	outcome *Outcome
}

func (r *Recorder) Emit(f Frame) {
	r.mu.Lock()
	r.frames = append(r.frames, f)
	r.mu.Unlock()
}

func (r *Recorder) Finish(o Outcome) {
	r.mu.Lock()
	r.outcome = &o
	r.mu.Unlock()
}

// Frames returns a copy of the recorded frame list.
func (r *Recorder) Frames() []Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Frame, len(r.frames))
	copy(out, r.frames)
	return out
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

// Outcome returns the outcome passed to Finish, if any.
func (r *Recorder) Outcome() (Outcome, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.outcome == nil {
		return Outcome{}, false
	}
	return *r.outcome, true
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	r.frames = nil
	r.outcome = nil
	r.mu.Unlock()
}

func cloneInts(s []int) []int {
	c := make([]int, len(s))
	copy(c, s)
	return c
}
