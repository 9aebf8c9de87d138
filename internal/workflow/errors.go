package workflow

import (
	"errors"
	"fmt"
)

// ErrOperationInProgress is wrapped in a PreconditionError when an operation is
// triggered while another one is still running.
var ErrOperationInProgress = errors.New("another operation is in progress")

// ValidationError represents missing or malformed user input caught before any call
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// PreconditionError represents a business rule that blocks an operation
type PreconditionError struct {
	Message string
	Cause   error
}

func (e *PreconditionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("precondition failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("precondition failed: %s", e.Message)
}

func (e *PreconditionError) Unwrap() error {
	return e.Cause
}

// ExtractionError represents a failed or unusable job-details extraction
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// GenerationError represents a failed rewrite, cover letter or résumé import call
type GenerationError struct {
	Op    Op
	Cause error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation error: %s: %v", e.Op, e.Cause)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// ExportError represents a failure writing a buffer to a file, the clipboard or PDF
type ExportError struct {
	Message string
	Cause   error
}

func (e *ExportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("export error: %s", e.Message)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}
