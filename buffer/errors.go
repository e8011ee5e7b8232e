package buffer

import (
	"errors"
	"fmt"
)

// Errors returned by buffer operations. Call sites wrap them with the
// offending values; use errors.Is to test.
var (
	// ErrInvalidArgument indicates a precondition on a plain argument failed
	// (e.g. a negative capacity).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfBounds indicates an offset, range, or length outside the
	// buffer's valid bounds.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
)

func indexError(index, length int) error {
	return fmt.Errorf("%w: index=%d, length=%d", ErrIndexOutOfBounds, index, length)
}

func rangeError(start, end, length int) error {
	return fmt.Errorf("%w: start=%d, end=%d, length=%d", ErrIndexOutOfBounds, start, end, length)
}
