// Package export serializes session buffers to files, the clipboard and PDF.
package export

import (
	"os"
	"path/filepath"

	"github.com/jonathan/cv-tailor/internal/types"
)

// ContentType is the media type of exported buffer files
const ContentType = "text/markdown"

// FileName returns the fixed download name for a buffer kind
func FileName(kind types.DocumentKind) string {
	if kind == types.KindCoverLetter {
		return "cover_letter.md"
	}
	return "optimized_cv.md"
}

// PDFFileName returns the fixed name of the printed document for a buffer kind
func PDFFileName(kind types.DocumentKind) string {
	if kind == types.KindCoverLetter {
		return "cover_letter.pdf"
	}
	return "optimized_cv.pdf"
}

// ToFile writes the buffer content into dir under its fixed name and returns the path.
// An existing file with the same name is overwritten. dir is created when missing.
func ToFile(dir string, buf types.Buffer) (string, error) {
	return writeFile(dir, FileName(buf.Kind), []byte(buf.Content))
}

func writeFile(dir, name string, data []byte) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", &WriteError{Path: dir, Cause: err}
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", &WriteError{Path: path, Cause: err}
	}
	return path, nil
}
