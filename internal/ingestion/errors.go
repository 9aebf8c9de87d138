package ingestion

import "fmt"

// UnsupportedFormatError is returned for files that are neither PDF nor an image
type UnsupportedFormatError struct {
	Name     string
	MIMEType string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("unsupported file format %q for %s: only PDF and image files can be imported", e.MIMEType, e.Name)
	}
	return fmt.Sprintf("unsupported file format %q: only PDF and image files can be imported", e.MIMEType)
}

// PayloadTooLargeError is returned when a file exceeds the configured upload cap
type PayloadTooLargeError struct {
	Name  string
	Size  int64
	Limit int64
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("file %s is %d bytes, larger than the %d byte limit", e.Name, e.Size, e.Limit)
}

// ReadError wraps failures reading a file from disk
type ReadError struct {
	Path  string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Cause)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}
