package catalog

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/step"
)

type Kind int

const (
	Classify Kind = iota
	Sort
)

func (k Kind) String() string {
	if k == Sort {
		return "sort"
	}
	return "classify"
}

type Entry struct {
	ID          string
	Title       string
	Description string
	Kind        Kind
	New         func() step.Algorithm
}

// Catalog maps algorithm ids to factories. The set is fixed at construction.
type Catalog struct {
	entries map[string]Entry
	order   []string
}

func New() *Catalog {
	c := &Catalog{entries: make(map[string]Entry)}

	c.add(Entry{
		ID: "odd", Title: "Odd Numbers", Kind: Classify,
		Description: "This algorithm identifies odd numbers in the list.",
		New:         func() step.Algorithm { return algo.NewParity() },
	})
	c.add(Entry{
		ID: "prime", Title: "Prime and Composite", Kind: Classify,
		Description: "This algorithm identifies prime and composite numbers in the list.",
		New:         func() step.Algorithm { return algo.NewPrimes() },
	})
	c.add(Entry{
		ID: "insertion", Title: "Insertion Sort", Kind: Sort,
		Description: "Sorts the numbers using the Insertion Sort algorithm.",
		New:         func() step.Algorithm { return algo.NewInsertion() },
	})
	c.add(Entry{
		ID: "bubble", Title: "Bubble Sort", Kind: Sort,
		Description: "Sorts the numbers using the Bubble Sort algorithm.",
		New:         func() step.Algorithm { return algo.NewBubble() },
	})
	c.add(Entry{
		ID: "selection", Title: "Selection Sort", Kind: Sort,
		Description: "Sorts the numbers using the Selection Sort algorithm.",
		New:         func() step.Algorithm { return algo.NewSelection() },
	})
	c.add(Entry{
		ID: "shell", Title: "Shell Sort", Kind: Sort,
		Description: "Sorts the numbers using the Shell Sort algorithm.",
		New:         func() step.Algorithm { return algo.NewShell() },
	})
	c.add(Entry{
		ID: "quick", Title: "Quick Sort", Kind: Sort,
		Description: "Sorts the numbers using the Quick Sort algorithm.",
		New:         func() step.Algorithm { return algo.NewQuick() },
	})

	return c
}

func (c *Catalog) add(e Entry) {
	c.entries[e.ID] = e
	c.order = append(c.order, e.ID)
}

func (c *Catalog) Get(id string) (Entry, error) {
	e, ok := c.entries[id]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", step.ErrUnknownAlgorithm, id)
	}
	return e, nil
}

// NewAlgorithm builds a fresh algorithm for id.
func (c *Catalog) NewAlgorithm(id string) (step.Algorithm, error) {
	e, err := c.Get(id)
	if err != nil {
		return nil, err
	}
	return e.New(), nil
}

// List returns entries in menu order.
func (c *Catalog) List() []Entry {
	out := make([]Entry, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.entries[id])
	}
	return out
}

func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.order))
	copy(ids, c.order)
	return ids
}
