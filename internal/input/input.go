// Package input turns the comma-separated numbers field into values.
package input

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/algoviz/internal/step"
)

// Default is the value the numbers field starts with.
const Default = "64, 34, 25, 12, 22, 11, 90"

// Error points at the element that failed to parse.
type Error struct {
	Position int
	Text     string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: element %d %q", step.ErrInvalidInput, e.Position+1, e.Text)
}

func (e *Error) Unwrap() error {
	return step.ErrInvalidInput
}

// Parse reads integers separated by commas. Whitespace around each element
// is ignored; a blank field yields an empty slice.
func Parse(text string) ([]int, error) {
	if strings.TrimSpace(text) == "" {
		return []int{}, nil
	}
	parts := strings.Split(text, ",")
	values := make([]int, 0, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, &Error{Position: i, Text: p}
		}
		values = append(values, v)
	}
	return values, nil
}

// Format is the inverse of Parse.
func Format(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
