package workflow

import (
	"context"
	"time"

	"github.com/jonathan/cv-tailor/internal/clipboard"
	"github.com/jonathan/cv-tailor/internal/export"
	"github.com/jonathan/cv-tailor/internal/types"
)

// ExportFile writes a buffer to the output directory under its fixed file name
func (c *Coordinator) ExportFile(kind types.DocumentKind) Result {
	start := time.Now()

	path, err := export.ToFile(c.outputDir, c.session.Buffer(kind))
	if err != nil {
		return c.fail(OpExportFile, start, &ExportError{Message: "Could not save " + export.FileName(kind), Cause: err})
	}

	res := c.succeed(OpExportFile, start, "Saved "+path)
	res.Path = path
	return res
}

// ExportClipboard copies a buffer to the clipboard, with a rendered HTML representation
// when the clipboard can hold one.
func (c *Coordinator) ExportClipboard(kind types.DocumentKind) Result {
	start := time.Now()

	if c.clipboard == nil {
		return c.fail(OpExportClipboard, start, &ExportError{
			Message: "Could not copy to the clipboard",
			Cause:   &clipboard.Error{Op: "write", Cause: clipboard.ErrUnsupported},
		})
	}

	mode, err := export.ToClipboard(c.clipboard, c.session.Buffer(kind))
	if err != nil {
		return c.fail(OpExportClipboard, start, &ExportError{Message: "Could not copy to the clipboard", Cause: err})
	}

	text := "Copied to clipboard with formatting."
	if mode == export.ModePlain {
		text = "Copied to clipboard as plain text (formatting is not supported here)."
	}
	res := c.succeed(OpExportClipboard, start, text)
	res.ClipboardMode = mode
	return res
}

// ExportPDF switches to preview and prints the buffer to PDF in the output directory
func (c *Coordinator) ExportPDF(ctx context.Context, kind types.DocumentKind) Result {
	start := time.Now()

	if c.printer == nil {
		return c.fail(OpExportPDF, start, &ExportError{Message: "PDF export is not available"})
	}

	c.session.setActiveTab(kind)
	c.session.setViewMode(types.ViewPreviewing)

	path, err := c.printer.Print(ctx, c.session.Buffer(kind), c.outputDir)
	if err != nil {
		return c.fail(OpExportPDF, start, &ExportError{Message: "Could not print " + export.PDFFileName(kind), Cause: err})
	}

	res := c.succeed(OpExportPDF, start, "Saved "+path)
	res.Path = path
	return res
}
