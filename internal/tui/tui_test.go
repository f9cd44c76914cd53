package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/algoviz/internal/catalog"
	"github.com/san-kum/algoviz/internal/sim"
	"github.com/san-kum/algoviz/internal/step"
	"github.com/san-kum/algoviz/internal/viz"
)

type fakeRunner struct {
	starts []sim.RunRequest
	stops  []*sim.RunHandle
	err    error
}

func (f *fakeRunner) Start(req sim.RunRequest) (*sim.RunHandle, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.starts = append(f.starts, req)
	return &sim.RunHandle{}, nil
}

func (f *fakeRunner) Stop(h *sim.RunHandle) { f.stops = append(f.stops, h) }

func send(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(model)
}

func openInsertion(t *testing.T, r *fakeRunner) model {
	t.Helper()
	m := NewInteractiveApp(catalog.New(), r, "3, 1, 2", viz.ThemeMono)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != stateAlgo || m.entry.ID != "insertion" {
		t.Fatalf("expected insertion screen, got state=%d entry=%q", m.state, m.entry.ID)
	}
	return m
}

func TestMenuNavigation(t *testing.T) {
	m := NewInteractiveApp(catalog.New(), &fakeRunner{}, "1", viz.ThemeMono)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor moved above the first entry: %d", m.cursor)
	}
	for i := 0; i < 20; i++ {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	}
	if m.cursor != len(m.entries)-1 {
		t.Errorf("cursor should stop at the last entry, got %d", m.cursor)
	}
	if !strings.Contains(m.View(), "Quick Sort") {
		t.Error("menu should list every algorithm")
	}
}

func TestStartParsesInput(t *testing.T) {
	r := &fakeRunner{}
	m := openInsertion(t, r)

	if m.input.Value() != "3, 1, 2" {
		t.Errorf("numbers field should start with the configured input, got %q", m.input.Value())
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if len(r.starts) != 1 {
		t.Fatalf("expected one start, got %d", len(r.starts))
	}
	req := r.starts[0]
	if req.Algorithm != "insertion" || len(req.Values) != 3 || req.Values[0] != 3 {
		t.Errorf("unexpected request %+v", req)
	}
	if m.handle == nil {
		t.Error("expected an active handle")
	}
}

func TestInvalidInputShowsError(t *testing.T) {
	r := &fakeRunner{}
	m := openInsertion(t, r)
	m.input.SetValue("1, x, 3")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if len(r.starts) != 0 {
		t.Error("invalid input must not start a run")
	}
	if !strings.Contains(m.View(), "Invalid Input") {
		t.Error("expected the invalid input message")
	}

	m.input.SetValue("1, 2")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.errMsg != "" {
		t.Errorf("error should clear on a valid start, got %q", m.errMsg)
	}
}

func TestAlreadyRunningStatus(t *testing.T) {
	r := &fakeRunner{err: step.ErrAlreadyRunning}
	m := openInsertion(t, r)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(m.status, "already running") {
		t.Errorf("unexpected status %q", m.status)
	}
	if m.errMsg != "" {
		t.Errorf("a busy scheduler is not an input error: %q", m.errMsg)
	}
}

func TestStopAndDone(t *testing.T) {
	r := &fakeRunner{}
	m := openInsertion(t, r)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	h := m.handle

	m = send(t, m, frameMsg(step.NewFrame([]int{1, 3, 2}, 1)))
	m = send(t, m, frameMsg(step.NewFrame([]int{1, 2, 3}, 0)))
	if m.steps != 2 || len(m.disorder) != 2 {
		t.Fatalf("expected 2 steps recorded, got steps=%d disorder=%d", m.steps, len(m.disorder))
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlX})
	if len(r.stops) != 1 || r.stops[0] != h {
		t.Fatal("ctrl+x should stop the active run")
	}

	m = send(t, m, doneMsg(step.Outcome{State: step.Cancelled, Frames: 2}))
	if m.handle != nil {
		t.Error("handle should clear once the run is done")
	}
	if m.status != "cancelled after 2 steps" {
		t.Errorf("unexpected status %q", m.status)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlX})
	if len(r.stops) != 1 {
		t.Error("stop without a run should do nothing")
	}
}

func TestCompletedShowsFinalValues(t *testing.T) {
	m := openInsertion(t, &fakeRunner{})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = send(t, m, doneMsg(step.Outcome{State: step.Completed, Frames: 3, Values: []int{1, 2, 3}}))
	if m.frame == nil || len(m.frame.Highlighted) != 0 || m.frame.Values[2] != 3 {
		t.Errorf("expected settled final frame, got %+v", m.frame)
	}
}

func TestFramesIgnoredOutsideRun(t *testing.T) {
	m := NewInteractiveApp(catalog.New(), &fakeRunner{}, "1", viz.ThemeMono)
	m = send(t, m, frameMsg(step.NewFrame([]int{1})))
	if m.steps != 0 || m.frame != nil {
		t.Error("menu should ignore frames")
	}
}

func TestEscStopsAndReturns(t *testing.T) {
	r := &fakeRunner{}
	m := openInsertion(t, r)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != stateMenu {
		t.Error("esc should return to the menu")
	}
	if len(r.stops) != 1 {
		t.Error("esc should stop the active run")
	}
}

func TestDoneAfterBackIsIgnored(t *testing.T) {
	r := &fakeRunner{}
	m := openInsertion(t, r)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != stateAlgo {
		t.Fatal("expected the algorithm screen again")
	}
	m = send(t, m, doneMsg(step.Outcome{State: step.Completed, Frames: 9, Values: []int{7, 8, 9}}))
	if m.status != "" {
		t.Errorf("abandoned run overwrote the status: %q", m.status)
	}
	if m.frame != nil {
		t.Errorf("abandoned run overwrote the frame: %+v", m.frame)
	}
}

func TestCtrlCQuits(t *testing.T) {
	r := &fakeRunner{}
	m := openInsertion(t, r)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
	if len(r.stops) != 1 {
		t.Error("ctrl+c should stop the active run first")
	}
}

func TestSparkline(t *testing.T) {
	if sparkline(nil, 10) != "" {
		t.Error("empty data should render nothing")
	}
	s := []rune(sparkline([]float64{0, 1, 2, 3, 4, 5, 6, 7}, 4))
	if len(s) != 4 {
		t.Fatalf("expected width 4, got %d", len(s))
	}
	if s[3] != '█' {
		t.Errorf("last point should be the tallest, got %q", s[3])
	}
}

func TestLiveRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewLiveRenderer(&buf, "Bubble Sort", viz.ThemeMono)

	r.Start()
	r.Emit(step.NewFrame([]int{2, 1}, 0, 1))
	r.Finish(step.Outcome{State: step.Completed, Frames: 1, Values: []int{1, 2}, Elapsed: time.Millisecond})
	r.Stop()

	out := buf.String()
	for _, want := range []string{hideCursor, "Bubble Sort", "step 1", "completed after 1 steps", "result: 1, 2", showCursor} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
