package puzzle

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned for a day outside 1-25 or a part outside 1-2.
	ErrOutOfRange = errors.New("day or part out of range")

	// ErrUnsupported is returned for a valid day that has no solver.
	ErrUnsupported = errors.New("puzzle not implemented")

	// ErrInvalidInput wraps every puzzle-format failure.
	ErrInvalidInput = errors.New("invalid input")
)

// Invalidf returns an error wrapping ErrInvalidInput.
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
