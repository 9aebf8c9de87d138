// Package types provides type definitions for structured data used throughout the cv-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// DocumentKind identifies one of the two editable documents of a session
type DocumentKind string

const (
	// KindResume is the résumé buffer
	KindResume DocumentKind = "resume"
	// KindCoverLetter is the cover-letter buffer
	KindCoverLetter DocumentKind = "cover_letter"
)

// DocumentKinds lists every buffer kind in tab order
func DocumentKinds() []DocumentKind {
	return []DocumentKind{KindResume, KindCoverLetter}
}

// Title returns a human-readable name for the kind
func (k DocumentKind) Title() string {
	switch k {
	case KindResume:
		return "Resume"
	case KindCoverLetter:
		return "Cover Letter"
	default:
		return string(k)
	}
}

// ParseDocumentKind converts user input (flags, config) into a DocumentKind
func ParseDocumentKind(s string) (DocumentKind, error) {
	switch s {
	case "resume", "cv":
		return KindResume, nil
	case "cover_letter", "cover-letter", "coverletter", "letter":
		return KindCoverLetter, nil
	default:
		return "", fmt.Errorf("unknown document kind %q", s)
	}
}

// Buffer is an editable text document held in session state
type Buffer struct {
	Kind    DocumentKind `json:"kind"`
	Content string       `json:"content"`
}

// ViewMode controls whether the active buffer is edited or previewed
type ViewMode string

const (
	// ViewEditing shows the raw, editable buffer text
	ViewEditing ViewMode = "editing"
	// ViewPreviewing shows the rendered buffer
	ViewPreviewing ViewMode = "previewing"
)
