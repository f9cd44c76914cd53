package metrics

import "github.com/san-kum/algoviz/internal/step"

// Mutations counts frames whose values differ from the frame before. The
// first frame never counts.
type Mutations struct {
	name  string
	prev  []int
	seen  bool
	count int
}

func NewMutations() *Mutations {
	return &Mutations{name: "mutations"}
}

func (m *Mutations) Name() string {
	return m.name
}

func (m *Mutations) Observe(f step.Frame) {
	if m.seen && !equal(m.prev, f.Values) {
		m.count++
	}
	m.prev = append(m.prev[:0], f.Values...)
	m.seen = true
}

func (m *Mutations) Value() float64 {
	return float64(m.count)
}

func (m *Mutations) Reset() {
	m.prev = m.prev[:0]
	m.seen = false
	m.count = 0
}

func equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
