// Package clipboard abstracts the system clipboard for résumé import and export.
package clipboard

import (
	"strings"
	"sync"

	"github.com/atotto/clipboard"
)

// Reader reads plain text from a clipboard
type Reader interface {
	ReadText() (string, error)
}

// Writer writes plain text to a clipboard
type Writer interface {
	WriteText(text string) error
}

// RichWriter writes a plain and an HTML representation in a single operation.
// Writers that cannot hold more than one representation do not implement it.
type RichWriter interface {
	Writer
	WriteRich(plain, html string) error
}

// ReadWriter is a clipboard that can be both read and written
type ReadWriter interface {
	Reader
	Writer
}

// System is the OS clipboard. It carries plain text only.
type System struct{}

// NewSystem returns the OS clipboard, or an error when no clipboard utility is available
func NewSystem() (*System, error) {
	if clipboard.Unsupported {
		return nil, &Error{Op: "open", Cause: ErrUnsupported}
	}
	return &System{}, nil
}

// ReadText returns the clipboard text, or ErrEmpty when it is blank.
func (s *System) ReadText() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", &Error{Op: "read", Cause: err}
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmpty
	}
	return text, nil
}

// WriteText replaces the clipboard contents
func (s *System) WriteText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return &Error{Op: "write", Cause: err}
	}
	return nil
}

// Memory is an in-process clipboard holding both representations.
// It backs headless runs and tests.
type Memory struct {
	mu    sync.Mutex
	plain string
	html  string

	// ReadErr and WriteErr, when set, are returned by the matching operations
	ReadErr  error
	WriteErr error
}

// NewMemory returns a Memory clipboard preloaded with text
func NewMemory(text string) *Memory {
	return &Memory{plain: text}
}

// ReadText returns the stored plain text, or ErrEmpty when it is blank.
func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ReadErr != nil {
		return "", &Error{Op: "read", Cause: m.ReadErr}
	}
	if strings.TrimSpace(m.plain) == "" {
		return "", ErrEmpty
	}
	return m.plain, nil
}

// WriteText stores plain text and clears any HTML representation
func (m *Memory) WriteText(text string) error {
	return m.WriteRich(text, "")
}

// WriteRich stores both representations
func (m *Memory) WriteRich(plain, html string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.WriteErr != nil {
		return &Error{Op: "write", Cause: m.WriteErr}
	}
	m.plain = plain
	m.html = html
	return nil
}

// Plain returns the stored plain text
func (m *Memory) Plain() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.plain
}

// HTML returns the stored HTML representation
func (m *Memory) HTML() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.html
}
