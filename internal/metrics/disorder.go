package metrics

import "github.com/san-kum/algoviz/internal/step"

// Disorder is the inversion count of the latest frame. It reaches zero once
// a sort's visible array is in order.
type Disorder struct {
	name  string
	value int
}

func NewDisorder() *Disorder {
	return &Disorder{name: "disorder"}
}

func (d *Disorder) Name() string {
	return d.name
}

func (d *Disorder) Observe(f step.Frame) {
	d.value = Inversions(f.Values)
}

func (d *Disorder) Value() float64 {
	return float64(d.value)
}

func (d *Disorder) Reset() {
	d.value = 0
}

// Inversions counts pairs i < j with values[i] > values[j]. Quadratic; the
// inputs are sized for a screen.
func Inversions(values []int) int {
	n := 0
	for i := 0; i < len(values); i++ {
		for j := i + 1; j < len(values); j++ {
			if values[i] > values[j] {
				n++
			}
		}
	}
	return n
}

// Series maps each frame to its inversion count.
func Series(frames []step.Frame) []float64 {
	out := make([]float64, len(frames))
	for i, f := range frames {
		out[i] = float64(Inversions(f.Values))
	}
	return out
}
