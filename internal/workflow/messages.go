package workflow

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/cv-tailor/internal/clipboard"
	"github.com/jonathan/cv-tailor/internal/ingestion"
	"github.com/jonathan/cv-tailor/internal/llm"
)

// UserMessage turns an operation error into the text of its notification
func UserMessage(err error) string {
	var (
		validationErr   *ValidationError
		preconditionErr *PreconditionError
		formatErr       *ingestion.UnsupportedFormatError
		tooLargeErr     *ingestion.PayloadTooLargeError
		readErr         *ingestion.ReadError
		clipErr         *clipboard.Error
		emptyErr        *llm.EmptyResponseError
		transportErr    *llm.TransportError
		extractionErr   *ExtractionError
		generationErr   *GenerationError
		exportErr       *ExportError
	)

	switch {
	case errors.Is(err, ErrOperationInProgress):
		return "Please wait for the current operation to finish."
	case errors.As(err, &validationErr):
		return validationErr.Message
	case errors.As(err, &preconditionErr):
		return preconditionErr.Message
	case errors.As(err, &formatErr):
		return "Unsupported file type. Please upload a PDF or an image."
	case errors.As(err, &tooLargeErr):
		return fmt.Sprintf("The file is too large (%d bytes, limit %d).", tooLargeErr.Size, tooLargeErr.Limit)
	case errors.As(err, &readErr):
		return fmt.Sprintf("Could not read %s.", readErr.Path)
	case errors.Is(err, clipboard.ErrEmpty):
		return "The clipboard is empty. Copy your resume text first."
	case errors.As(err, &exportErr) && errors.As(err, &clipErr):
		return "Could not copy to the clipboard. Please select the text and copy it manually."
	case errors.As(err, &clipErr):
		return "Could not read the clipboard. Please check clipboard permissions."
	case errors.As(err, &exportErr):
		return exportErr.Message + "."
	case errors.As(err, &extractionErr):
		return "Could not extract job details. Please check the URL and try again."
	case errors.As(err, &generationErr):
		return generationMessage(generationErr.Op, err)
	case errors.As(err, &emptyErr), errors.As(err, &transportErr):
		return "The generation service failed. Please try again."
	default:
		return "Something went wrong. Please try again."
	}
}

func generationMessage(op Op, err error) string {
	var emptyErr *llm.EmptyResponseError
	suffix := "Please try again."
	if errors.As(err, &emptyErr) {
		suffix = "The service returned no text. Please try again."
	}

	switch op {
	case OpOptimizeResume:
		return "Failed to optimize the resume. " + suffix
	case OpGenerateCoverLetter:
		return "Failed to generate the cover letter. " + suffix
	case OpImportFile, OpImportClipboard:
		return "Failed to parse the resume. " + suffix
	default:
		return "The generation service failed. " + suffix
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// truncate shortens s to at most n bytes for debug logs, cutting on a rune boundary
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
