package sim

import (
	"bytes"
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algoviz/internal/catalog"
	"github.com/san-kum/algoviz/internal/step"
)

var quiet = log.New(io.Discard)

// lockedBuffer lets a test read log output while the run goroutine writes.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// gate is a renderer that reports each frame on a channel.
type gate struct {
	step.Recorder
	seen chan struct{}
}

func newGate() *gate {
	return &gate{seen: make(chan struct{}, 1024)}
}

func (g *gate) Emit(f step.Frame) {
	g.Recorder.Emit(f)
	g.seen <- struct{}{}
}

var _ = Describe("Scheduler", func() {
	var cat *catalog.Catalog

	BeforeEach(func() {
		cat = catalog.New()
	})

	Context("running to completion", func() {
		It("emits the bubble sort trace and reports the sorted values", func() {
			rec := &step.Recorder{}
			s := New(cat, rec, WithDelay(0), WithLogger(quiet))

			h, err := s.Start(RunRequest{Algorithm: "bubble", Values: []int{5, 3, 8, 1}})
			Expect(err).NotTo(HaveOccurred())
			Expect(h.ID()).NotTo(BeEmpty())

			o := h.Wait()
			Expect(o.State).To(Equal(step.Completed))
			Expect(o.Frames).To(Equal(6))
			Expect(o.Values).To(Equal([]int{1, 3, 5, 8}))
			Expect(o.Metrics).To(HaveKeyWithValue("frames", 6.0))
			Expect(o.Metrics).To(HaveKeyWithValue("disorder", 0.0))

			frames := rec.Frames()
			Expect(frames).To(HaveLen(6))
			Expect(frames[5].Values).To(Equal([]int{1, 3, 5, 8}))

			finished, ok := rec.Outcome()
			Expect(ok).To(BeTrue())
			Expect(finished.State).To(Equal(step.Completed))
		})

		It("sorts with every sorting algorithm", func() {
			for _, e := range cat.List() {
				if e.Kind != catalog.Sort {
					continue
				}
				_, o, err := Trace(cat, RunRequest{Algorithm: e.ID, Values: []int{64, 34, 25, 12, 22, 11, 90}}, WithLogger(quiet))
				Expect(err).NotTo(HaveOccurred())
				Expect(o.Values).To(Equal([]int{11, 12, 22, 25, 34, 64, 90}), e.ID)
			}
		})

		It("produces identical traces for identical requests", func() {
			req := RunRequest{Algorithm: "quick", Values: []int{3, -1, 4, 1, -5, 9, 2, 6}}
			first, _, err := Trace(cat, req, WithLogger(quiet))
			Expect(err).NotTo(HaveOccurred())
			second, _, err := Trace(cat, req, WithLogger(quiet))
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(Equal(first))
		})

		It("completes an empty run without frames", func() {
			frames, o, err := Trace(cat, RunRequest{Algorithm: "prime", Values: nil}, WithLogger(quiet))
			Expect(err).NotTo(HaveOccurred())
			Expect(frames).To(BeEmpty())
			Expect(o.State).To(Equal(step.Completed))
			Expect(o.Frames).To(BeZero())
		})

		It("does not retain the caller's slice", func() {
			values := []int{2, 1}
			g := newGate()
			s := New(cat, g, WithDelay(time.Minute), WithLogger(quiet))

			h, err := s.Start(RunRequest{Algorithm: "bubble", Values: values})
			Expect(err).NotTo(HaveOccurred())
			values[0] = 100

			Eventually(g.seen).Should(Receive())
			h.Stop()
			h.Wait()
			Expect(h.Request().Values).To(Equal([]int{2, 1}))
			Expect(g.Frames()[0].Values).To(Equal([]int{1, 2}))
		})

		It("has logged the outcome by the time Done is closed", func() {
			out := &lockedBuffer{}
			s := New(cat, nil, WithDelay(0), WithLogger(log.New(out)))

			h, err := s.Start(RunRequest{Algorithm: "bubble", Values: []int{2, 1}})
			Expect(err).NotTo(HaveOccurred())
			<-h.Done()

			Expect(out.String()).To(ContainSubstring("run completed"))
		})

		It("is idle again once Done is closed", func() {
			s := New(cat, nil, WithDelay(0), WithLogger(quiet))
			h, err := s.Start(RunRequest{Algorithm: "odd", Values: []int{1, 2, 3}})
			Expect(err).NotTo(HaveOccurred())

			Eventually(h.Done()).Should(BeClosed())
			Expect(s.Active()).To(BeNil())
			Expect(h.State()).To(Equal(step.Completed))

			h2, err := s.Start(RunRequest{Algorithm: "prime", Values: []int{1, 2, 3}})
			Expect(err).NotTo(HaveOccurred())
			Expect(h2.Wait().State).To(Equal(step.Completed))
		})
	})

	Context("rejecting requests", func() {
		It("returns ErrUnknownAlgorithm for ids outside the catalog", func() {
			s := New(cat, nil, WithLogger(quiet))
			_, err := s.Start(RunRequest{Algorithm: "bogo", Values: []int{1}})
			Expect(err).To(MatchError(step.ErrUnknownAlgorithm))
			Expect(s.Active()).To(BeNil())
		})

		It("returns ErrAlreadyRunning while a run is active", func() {
			g := newGate()
			s := New(cat, g, WithDelay(time.Minute), WithLogger(quiet))

			h, err := s.Start(RunRequest{Algorithm: "bubble", Values: []int{3, 2, 1}})
			Expect(err).NotTo(HaveOccurred())
			Eventually(g.seen).Should(Receive())

			_, err = s.Start(RunRequest{Algorithm: "quick", Values: []int{1}})
			Expect(err).To(MatchError(step.ErrAlreadyRunning))
			Expect(s.Active()).To(Equal(h))

			h.Stop()
			Expect(h.Wait().State).To(Equal(step.Cancelled))
		})
	})

	Context("cancellation", func() {
		It("stops after the in-flight frame and keeps a prefix of the full trace", func() {
			req := RunRequest{Algorithm: "selection", Values: []int{9, 7, 5, 3, 1}}
			full, _, err := Trace(cat, req, WithLogger(quiet))
			Expect(err).NotTo(HaveOccurred())

			g := newGate()
			s := New(cat, g, WithDelay(time.Minute), WithLogger(quiet))
			h, err := s.Start(req)
			Expect(err).NotTo(HaveOccurred())

			Eventually(g.seen).Should(Receive())
			s.Stop(h)
			o := h.Wait()

			Expect(o.State).To(Equal(step.Cancelled))
			Expect(o.Frames).To(Equal(1))
			Expect(g.Frames()).To(Equal(full[:1]))
			Expect(h.State()).To(Equal(step.Cancelled))
		})

		It("ignores stop on a finished handle", func() {
			s := New(cat, nil, WithDelay(0), WithLogger(quiet))
			old, err := s.Start(RunRequest{Algorithm: "odd", Values: []int{1}})
			Expect(err).NotTo(HaveOccurred())
			old.Wait()

			g := newGate()
			s.renderer = g
			s.delay = 5 * time.Millisecond
			h, err := s.Start(RunRequest{Algorithm: "odd", Values: []int{1, 2, 3}})
			Expect(err).NotTo(HaveOccurred())

			old.Stop()
			old.Stop()
			Expect(h.Wait().State).To(Equal(step.Completed))
			Expect(g.Len()).To(Equal(3))
		})

		It("shuts down an active run", func() {
			g := newGate()
			s := New(cat, g, WithDelay(time.Minute), WithLogger(quiet))
			h, err := s.Start(RunRequest{Algorithm: "shell", Values: []int{5, 4, 3, 2, 1}})
			Expect(err).NotTo(HaveOccurred())
			Eventually(g.seen).Should(Receive())

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			Expect(s.Shutdown(ctx)).To(Succeed())
			Expect(h.State()).To(Equal(step.Cancelled))
			Expect(s.Shutdown(ctx)).To(Succeed())
		})
	})
})
