package step

import (
	"errors"
	"fmt"
)

// Domain errors for trace operations.
var (
	// ErrInvalidInput indicates a numbers field that could not be parsed.
	ErrInvalidInput = errors.New("step: invalid input (expected integers separated by commas)")

	// ErrAlreadyRunning indicates a start request while a run is active.
	ErrAlreadyRunning = errors.New("step: a run is already active")

	// ErrUnknownAlgorithm indicates an id outside the algorithm catalog.
	ErrUnknownAlgorithm = errors.New("step: unknown algorithm")

	// ErrInvalidFrame indicates a frame annotation pointing past the values.
	ErrInvalidFrame = errors.New("step: frame index out of range")
)

// FrameError wraps ErrInvalidFrame with the offending index.
type FrameError struct {
	Index int
	Len   int
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("%s: index %d, len %d", ErrInvalidFrame, e.Index, e.Len)
}

func (e *FrameError) Unwrap() error {
	return ErrInvalidFrame
}
