package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/san-kum/algoviz/internal/catalog"
	"github.com/san-kum/algoviz/internal/input"
	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/sim"
	"github.com/san-kum/algoviz/internal/step"
	"github.com/san-kum/algoviz/internal/viz"
)

type state int

const (
	stateMenu state = iota
	stateAlgo
)

const historyCapacity = 60

type frameMsg step.Frame

type doneMsg step.Outcome

// programRenderer forwards run events into the Bubble Tea program. send is
// set before the program starts.
type programRenderer struct {
	send func(tea.Msg)
}

func (r *programRenderer) Emit(f step.Frame)     { r.send(frameMsg(f)) }
func (r *programRenderer) Finish(o step.Outcome) { r.send(doneMsg(o)) }

// Runner is the part of the scheduler the app drives.
type Runner interface {
	Start(req sim.RunRequest) (*sim.RunHandle, error)
	Stop(h *sim.RunHandle)
}

type model struct {
	state   state
	cursor  int
	entries []catalog.Entry
	entry   catalog.Entry

	runner       Runner
	handle       *sim.RunHandle
	input        textinput.Model
	defaultInput string

	frame    *step.Frame
	steps    int
	disorder []float64
	status   string
	errMsg   string

	theme  viz.Theme
	styles styles
	width  int
	height int
}

type styles struct {
	title  lipgloss.Style
	text   lipgloss.Style
	dim    lipgloss.Style
	dimmer lipgloss.Style
	accent lipgloss.Style
	err    lipgloss.Style
}

func newStyles(t viz.Theme) styles {
	return styles{
		title:  lipgloss.NewStyle().Foreground(t.Title).Bold(true),
		text:   lipgloss.NewStyle().Foreground(t.Text),
		dim:    lipgloss.NewStyle().Foreground(t.Muted),
		dimmer: lipgloss.NewStyle().Foreground(t.Muted).Faint(true),
		accent: lipgloss.NewStyle().Foreground(t.Accent),
		err:    lipgloss.NewStyle().Foreground(t.Error).Bold(true),
	}
}

// NewInteractiveApp builds the menu model. defaultInput seeds the numbers
// field on every algorithm screen.
func NewInteractiveApp(cat *catalog.Catalog, runner Runner, defaultInput string, theme viz.Theme) model {
	ti := textinput.New()
	ti.Placeholder = input.Default
	ti.CharLimit = 256
	ti.Width = 50

	return model{
		state:        stateMenu,
		entries:      cat.List(),
		runner:       runner,
		input:        ti,
		defaultInput: defaultInput,
		theme:        theme,
		styles:       newStyles(theme),
		disorder:     make([]float64, 0, historyCapacity),
		width:        80,
		height:       24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case frameMsg:
		if m.state != stateAlgo || m.handle == nil {
			return m, nil
		}
		f := step.Frame(msg)
		m.frame = &f
		m.steps++
		m.disorder = append(m.disorder, float64(metrics.Inversions(f.Values)))
		if len(m.disorder) > historyCapacity {
			m.disorder = m.disorder[1:]
		}
		return m, nil
	case doneMsg:
		if m.handle == nil {
			return m, nil
		}
		o := step.Outcome(msg)
		m.handle = nil
		m.status = fmt.Sprintf("%s after %d steps", o.State, o.Frames)
		if m.state == stateAlgo && o.State == step.Completed && o.Values != nil {
			f := step.NewFrame(o.Values)
			m.frame = &f
		}
		return m, nil
	}

	if m.state == stateAlgo {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateAlgo:
		return m.algoKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.entry = m.entries[m.cursor]
		m.state = stateAlgo
		m.input.SetValue(m.defaultInput)
		m.input.CursorEnd()
		m.resetRun()
		m.status = ""
		return m, m.input.Focus()
	}
	return m, nil
}

func (m model) algoKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.stop()
		return m, tea.Quit
	case "enter":
		m.start()
		return m, nil
	case "ctrl+x":
		m.stop()
		return m, nil
	case "esc":
		m.stop()
		m.handle = nil
		m.input.Blur()
		m.state = stateMenu
		return m, tea.ClearScreen
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) start() {
	values, err := input.Parse(m.input.Value())
	if err != nil {
		m.errMsg = "Invalid Input: please enter valid integers separated by commas."
		return
	}
	m.errMsg = ""

	h, err := m.runner.Start(sim.RunRequest{Algorithm: m.entry.ID, Values: values})
	if err != nil {
		if errors.Is(err, step.ErrAlreadyRunning) {
			m.status = "already running, stop it first"
			return
		}
		m.errMsg = err.Error()
		return
	}
	m.resetRun()
	m.handle = h
	m.status = "running"
	f := step.NewFrame(values)
	m.frame = &f
}

func (m *model) stop() {
	if m.handle == nil {
		return
	}
	m.runner.Stop(m.handle)
	m.status = "stopping"
}

func (m *model) resetRun() {
	m.frame = nil
	m.steps = 0
	m.disorder = m.disorder[:0]
	m.errMsg = ""
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateAlgo:
		return m.viewAlgo()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder
	s := m.styles

	b.WriteString("\n")
	b.WriteString(s.dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("        " + s.title.Render("Algorithm Visualizer") + "\n")
	b.WriteString(s.dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")
	b.WriteString("    " + s.text.Render("Select an algorithm to visualize:") + "\n\n")

	for i, e := range m.entries {
		if i == m.cursor {
			b.WriteString("      " + s.accent.Render("▸ ") + s.title.Render(fmt.Sprintf("%-22s", e.Title)) + s.dim.Render(e.Kind.String()) + "\n")
		} else {
			b.WriteString("        " + s.dim.Render(fmt.Sprintf("%-22s", e.Title)) + s.dimmer.Render(e.Kind.String()) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(s.dim.Render("      ↑↓ select   enter open   q quit") + "\n")

	return b.String()
}

func (m model) viewAlgo() string {
	var b strings.Builder
	s := m.styles

	b.WriteString("\n")
	b.WriteString("    " + s.title.Render(m.entry.Title) + "\n")
	b.WriteString("    " + s.dim.Render(m.entry.Description) + "\n")
	b.WriteString(s.dimmer.Render("    "+strings.Repeat("─", 50)) + "\n\n")

	b.WriteString("    " + s.text.Render("Enter numbers separated by commas:") + "\n")
	b.WriteString("    " + m.input.View() + "\n\n")

	if m.frame != nil {
		for _, line := range strings.Split(viz.Bars(*m.frame, m.theme, m.barRows()), "\n") {
			b.WriteString("    " + line + "\n")
		}
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("    " + s.err.Render(m.errMsg) + "\n")
	}

	status := m.status
	if status == "" {
		status = "idle"
	}
	line := fmt.Sprintf("step %d  %s", m.steps, status)
	if len(m.disorder) > 1 {
		line += "  disorder " + sparkline(m.disorder, 30)
	}
	b.WriteString("    " + s.accent.Render(line) + "\n\n")

	b.WriteString(s.dim.Render("    enter start   ctrl+x stop   esc back   ctrl+c quit") + "\n")

	return b.String()
}

func (m model) barRows() int {
	rows := m.height - 16
	if rows < 5 {
		rows = 5
	}
	if rows > 15 {
		rows = 15
	}
	return rows
}

func sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	rang := maxVal - minVal
	if rang == 0 {
		rang = 1
	}
	start := 0
	if len(data) > width {
		start = len(data) - width
	}
	var sb strings.Builder
	for _, v := range data[start:] {
		idx := int((v - minVal) / rang * 7)
		if idx > 7 {
			idx = 7
		}
		if idx < 0 {
			idx = 0
		}
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}

// RunInteractive starts the full-screen app and blocks until it quits. Any
// run still active at exit is stopped.
func RunInteractive(cat *catalog.Catalog, defaultInput string, delay time.Duration, theme viz.Theme, logger *log.Logger) error {
	r := &programRenderer{}
	sched := sim.New(cat, r, sim.WithDelay(delay), sim.WithLogger(logger))

	p := tea.NewProgram(NewInteractiveApp(cat, sched, defaultInput, theme), tea.WithAltScreen())
	r.send = p.Send

	_, err := p.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if serr := sched.Shutdown(ctx); serr != nil {
		logger.Warn("run did not stop in time", "err", serr)
	}
	return err
}
