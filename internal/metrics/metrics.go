package metrics

import "github.com/san-kum/algoviz/internal/step"

// Metric accumulates a number over the frames of one run.
type Metric interface {
	Name() string
	Observe(f step.Frame)
	Value() float64
	Reset()
}

// Defaults returns a fresh set of the standard run metrics.
func Defaults() []Metric {
	return []Metric{
		NewFrameCount(),
		NewMutations(),
		NewDisorder(),
	}
}

type FrameCount struct {
	name  string
	count int
}

func NewFrameCount() *FrameCount {
	return &FrameCount{name: "frames"}
}

func (c *FrameCount) Name() string {
	return c.name
}

func (c *FrameCount) Observe(f step.Frame) {
	c.count++
}

func (c *FrameCount) Value() float64 {
	return float64(c.count)
}

func (c *FrameCount) Reset() {
	c.count = 0
}
