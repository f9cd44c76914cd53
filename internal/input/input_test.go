package input

import (
	"errors"
	"reflect"
	"testing"

	"github.com/san-kum/algoviz/internal/step"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []int
	}{
		{"default", Default, []int{64, 34, 25, 12, 22, 11, 90}},
		{"no spaces", "1,2,3", []int{1, 2, 3}},
		{"negatives and zero", " -5 , 0,  7 ", []int{-5, 0, 7}},
		{"single", "42", []int{42}},
		{"blank", "   ", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.text)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		text     string
		position int
	}{
		{"1, two, 3", 1},
		{"1,,3", 1},
		{"1.5", 0},
		{"4, 5,", 2},
	}

	for _, tt := range tests {
		_, err := Parse(tt.text)
		if !errors.Is(err, step.ErrInvalidInput) {
			t.Errorf("Parse(%q): expected ErrInvalidInput, got %v", tt.text, err)
			continue
		}
		var ie *Error
		if !errors.As(err, &ie) || ie.Position != tt.position {
			t.Errorf("Parse(%q): expected position %d, got %v", tt.text, tt.position, err)
		}
	}
}

func TestFormat(t *testing.T) {
	if got := Format([]int{64, -3, 0}); got != "64, -3, 0" {
		t.Errorf("Format = %q", got)
	}
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
}
