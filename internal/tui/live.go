package tui

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/san-kum/algoviz/internal/input"
	"github.com/san-kum/algoviz/internal/step"
	"github.com/san-kum/algoviz/internal/viz"
)

const (
	barRows     = 12
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer redraws the whole terminal on every frame. It is safe to use
// from the run goroutine while the caller owns Start and Stop.
type LiveRenderer struct {
	w     io.Writer
	title string
	theme viz.Theme
	rows  int

	mu    sync.Mutex
	steps int
}

func NewLiveRenderer(w io.Writer, title string, theme viz.Theme) *LiveRenderer {
	return &LiveRenderer{w: w, title: title, theme: theme, rows: barRows}
}

func (r *LiveRenderer) Emit(f step.Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps++
	r.render(f, fmt.Sprintf("step %d", r.steps))
}

func (r *LiveRenderer) Finish(o step.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	status := fmt.Sprintf("%s after %d steps in %s", o.State, o.Frames, o.Elapsed.Round(time.Millisecond))
	if o.State == step.Completed && o.Values != nil {
		r.render(step.NewFrame(o.Values), status)
	} else {
		fmt.Fprintf(r.w, "  %s\n", status)
	}
	if o.Values != nil {
		fmt.Fprintf(r.w, "  result: %s\n", input.Format(o.Values))
	}
}

func (r *LiveRenderer) render(f step.Frame, status string) {
	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  %s  %s\n", r.title, status))
	b.WriteString("  " + strings.Repeat("-", 60) + "\n")
	for _, line := range strings.Split(viz.Bars(f, r.theme, r.rows), "\n") {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("  " + strings.Repeat("-", 60) + "\n")
	fmt.Fprint(r.w, b.String())
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.w, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.w, showCursor) }
