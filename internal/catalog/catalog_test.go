package catalog

import (
	"errors"
	"testing"

	"github.com/san-kum/algoviz/internal/step"
)

func TestCatalogOrder(t *testing.T) {
	c := New()
	expected := []string{"odd", "prime", "insertion", "bubble", "selection", "shell", "quick"}

	ids := c.IDs()
	if len(ids) != len(expected) {
		t.Fatalf("expected %d entries, got %d", len(expected), len(ids))
	}
	for i, id := range expected {
		if ids[i] != id {
			t.Errorf("position %d: expected %s, got %s", i, id, ids[i])
		}
	}

	list := c.List()
	if list[0].Title != "Odd Numbers" || list[6].Title != "Quick Sort" {
		t.Errorf("unexpected titles: %s ... %s", list[0].Title, list[6].Title)
	}
}

func TestCatalogFactories(t *testing.T) {
	c := New()
	for _, e := range c.List() {
		a, err := c.NewAlgorithm(e.ID)
		if err != nil {
			t.Fatalf("%s: %v", e.ID, err)
		}
		if a.Name() != e.ID {
			t.Errorf("entry %s builds algorithm named %s", e.ID, a.Name())
		}
		if e.Description == "" {
			t.Errorf("entry %s has no description", e.ID)
		}
	}
}

func TestCatalogKinds(t *testing.T) {
	c := New()
	tests := map[string]Kind{
		"odd":    Classify,
		"prime":  Classify,
		"bubble": Sort,
		"quick":  Sort,
	}
	for id, want := range tests {
		e, err := c.Get(id)
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		if e.Kind != want {
			t.Errorf("%s: expected kind %s, got %s", id, want, e.Kind)
		}
	}
}

func TestCatalogUnknown(t *testing.T) {
	_, err := New().Get("bogo")
	if !errors.Is(err, step.ErrUnknownAlgorithm) {
		t.Errorf("expected ErrUnknownAlgorithm, got %v", err)
	}
}
