package sim

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/san-kum/algoviz/internal/catalog"
	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/step"
)

type Option func(*Scheduler)

// WithDelay sets the pause after each frame. Zero runs unpaced.
func WithDelay(d time.Duration) Option {
	return func(s *Scheduler) { s.delay = d }
}

func WithLogger(l *log.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the factory for per-run metrics. Nil disables them.
func WithMetrics(fn func() []metrics.Metric) Option {
	return func(s *Scheduler) { s.metrics = fn }
}

// Scheduler runs at most one algorithm at a time on its own goroutine and
// feeds its frames to a renderer.
type Scheduler struct {
	catalog  *catalog.Catalog
	renderer step.Renderer
	delay    time.Duration
	logger   *log.Logger
	metrics  func() []metrics.Metric
	token    *step.Token

	mu     sync.Mutex
	active *RunHandle
}

func New(cat *catalog.Catalog, r step.Renderer, opts ...Option) *Scheduler {
	if cat == nil {
		cat = catalog.New()
	}
	s := &Scheduler{
		catalog:  cat,
		renderer: r,
		delay:    step.DefaultDelay,
		logger:   log.Default(),
		metrics:  metrics.Defaults,
		token:    step.NewToken(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start launches req. It fails with step.ErrAlreadyRunning while another run
// is active and with step.ErrUnknownAlgorithm for ids outside the catalog.
func (s *Scheduler) Start(req RunRequest) (*RunHandle, error) {
	alg, err := s.catalog.NewAlgorithm(req.Algorithm)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.active != nil {
		id := s.active.id
		s.mu.Unlock()
		s.logger.Warn("start ignored, run in progress", "active", id, "algorithm", req.Algorithm)
		return nil, fmt.Errorf("%w (run %s)", step.ErrAlreadyRunning, id)
	}
	s.token.Reset()
	h := newHandle(s, req)
	s.active = h
	s.mu.Unlock()

	go s.run(h, alg)
	return h, nil
}

// Stop requests cancellation of h if it is still the active run.
func (s *Scheduler) Stop(h *RunHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if h == nil || s.active != h {
		return
	}
	s.token.RequestStop()
	s.logger.Debug("stop requested", "run", h.id)
}

// Active returns the running handle, or nil when idle.
func (s *Scheduler) Active() *RunHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Shutdown stops the active run, if any, and waits for it to end.
func (s *Scheduler) Shutdown(ctx context.Context) error {
	h := s.Active()
	if h == nil {
		return nil
	}
	s.Stop(h)
	select {
	case <-h.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) run(h *RunHandle, alg step.Algorithm) {
	tr := step.NewTracer(s.token, s.renderer, s.delay)

	var ms []metrics.Metric
	if s.metrics != nil {
		ms = s.metrics()
	}
	for _, m := range ms {
		m.Reset()
		tr.AddObserver(m)
	}

	s.logger.Info("run started", "run", h.id, "algorithm", alg.Name(), "values", len(h.req.Values))

	final := alg.Run(h.req.Values, tr)

	o := step.Outcome{
		State:   step.Completed,
		Frames:  tr.Frames(),
		Values:  final,
		Metrics: make(map[string]float64, len(ms)),
		Elapsed: time.Since(h.started),
	}
	if tr.Halted() {
		o.State = step.Cancelled
	}
	for _, m := range ms {
		o.Metrics[m.Name()] = m.Value()
	}

	if f, ok := s.renderer.(step.Finisher); ok {
		f.Finish(o)
	}

	s.logger.Info("run "+o.State.String(), "run", h.id, "algorithm", alg.Name(),
		"frames", o.Frames, "elapsed", o.Elapsed.Round(time.Millisecond))

	// Done must be the last thing the run goroutine does.
	s.mu.Lock()
	s.active = nil
	s.mu.Unlock()
	h.finish(o)
}

// Trace runs req to completion without pacing and returns every frame.
func Trace(cat *catalog.Catalog, req RunRequest, opts ...Option) ([]step.Frame, step.Outcome, error) {
	rec := &step.Recorder{}
	s := New(cat, rec, append([]Option{WithDelay(0)}, opts...)...)
	h, err := s.Start(req)
	if err != nil {
		return nil, step.Outcome{}, err
	}
	o := h.Wait()
	return rec.Frames(), o, nil
}
