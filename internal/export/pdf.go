package export

import (
	"context"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"github.com/jonathan/cv-tailor/internal/fetch"
	"github.com/jonathan/cv-tailor/internal/types"
)

// DefaultPrintTimeout bounds a single PDF rendering
const DefaultPrintTimeout = 30 * time.Second

// A4 page size in inches
const (
	paperWidth  = 8.27
	paperHeight = 11.69
	margin      = 0.6
)

// Printer renders a buffer to a PDF file and returns its path
type Printer interface {
	Print(ctx context.Context, buf types.Buffer, dir string) (string, error)
}

// PDFPrinter prints the previewed document through headless Chrome.
// Requires Chrome/Chromium to be installed on the system.
type PDFPrinter struct {
	Timeout time.Duration
	Logger  *zap.Logger
}

// NewPDFPrinter creates a printer with the default timeout
func NewPDFPrinter(logger *zap.Logger) *PDFPrinter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PDFPrinter{Timeout: DefaultPrintTimeout, Logger: logger}
}

// Print renders buf as a styled HTML page and writes it as PDF into dir
func (p *PDFPrinter) Print(ctx context.Context, buf types.Buffer, dir string) (string, error) {
	document, err := RenderDocument(buf)
	if err != nil {
		return "", err
	}

	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultPrintTimeout
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, fetch.ExecAllocatorOptions()...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, document).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithMarginTop(margin).
				WithMarginBottom(margin).
				WithMarginLeft(margin).
				WithMarginRight(margin).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = data
			return nil
		}),
	)
	if err != nil {
		return "", &PrintError{Message: "headless browser failed", Cause: err}
	}

	path, err := writeFile(dir, PDFFileName(buf.Kind), pdf)
	if err != nil {
		return "", err
	}
	p.Logger.Debug("printed document", zap.String("kind", string(buf.Kind)), zap.String("path", path), zap.Int("bytes", len(pdf)))
	return path, nil
}
