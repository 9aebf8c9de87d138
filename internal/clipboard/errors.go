package clipboard

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned by Read when the clipboard holds no usable text
var ErrEmpty = errors.New("clipboard is empty")

// ErrUnsupported is returned when the platform has no clipboard utility
var ErrUnsupported = errors.New("no clipboard utility available")

// Error wraps a failure of the underlying clipboard facility
type Error struct {
	Op    string // "read" or "write"
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("clipboard %s failed: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("clipboard %s failed", e.Op)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
