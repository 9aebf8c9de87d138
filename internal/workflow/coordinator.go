// Package workflow coordinates the long-running tailoring operations of a session:
// job extraction, résumé rewriting, cover-letter generation and résumé import,
// plus the export of finished buffers.
package workflow

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/jonathan/cv-tailor/internal/clipboard"
	"github.com/jonathan/cv-tailor/internal/export"
	"github.com/jonathan/cv-tailor/internal/ingestion"
	"github.com/jonathan/cv-tailor/internal/llm"
	"github.com/jonathan/cv-tailor/internal/notify"
	"github.com/jonathan/cv-tailor/internal/types"
)

// Op names a coordinator operation
type Op string

const (
	OpExtractJob          Op = "extract_job"
	OpOptimizeResume      Op = "optimize_resume"
	OpGenerateCoverLetter Op = "generate_cover_letter"
	OpImportFile          Op = "import_resume_file"
	OpImportClipboard     Op = "import_resume_clipboard"
	OpExportFile          Op = "export_file"
	OpExportClipboard     Op = "export_clipboard"
	OpExportPDF           Op = "export_pdf"
)

// Result is the outcome of one operation. Err is nil on success.
// NotificationID names the single notification pushed for the outcome.
type Result struct {
	Op             Op
	Err            error
	NotificationID string
	Path           string              // written file, for file and PDF exports
	ClipboardMode  export.ClipboardMode // representations written, for clipboard exports
}

// OK reports whether the operation succeeded
func (r Result) OK() bool {
	return r.Err == nil
}

// PageSource supplies the text of a job posting page to ground extraction
type PageSource interface {
	PageText(ctx context.Context, url string) (string, error)
}

// StatusListener is called after every status transition
type StatusListener func(types.OperationStatus)

// Coordinator runs session operations one at a time against the generation service.
// A second long-running operation triggered while one is in flight is rejected.
type Coordinator struct {
	session   *Session
	client    llm.Client
	notifier  *notify.Manager
	pages     PageSource
	clipboard clipboard.ReadWriter
	printer   export.Printer
	outputDir string
	limits    ingestion.Limits
	logger    *zap.Logger
	onStatus  StatusListener

	guard *semaphore.Weighted
}

// Option configures a Coordinator
type Option func(*Coordinator)

// WithPageSource grounds job extraction on fetched page text
func WithPageSource(p PageSource) Option {
	return func(c *Coordinator) { c.pages = p }
}

// WithClipboard sets the clipboard used for paste-import and copy-export
func WithClipboard(cb clipboard.ReadWriter) Option {
	return func(c *Coordinator) { c.clipboard = cb }
}

// WithPrinter sets the PDF printer
func WithPrinter(p export.Printer) Option {
	return func(c *Coordinator) { c.printer = p }
}

// WithOutputDir sets the directory exported files are written to
func WithOutputDir(dir string) Option {
	return func(c *Coordinator) { c.outputDir = dir }
}

// WithLimits sets the upload limits applied to imported files
func WithLimits(l ingestion.Limits) Option {
	return func(c *Coordinator) { c.limits = l }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(c *Coordinator) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithStatusListener registers a callback for status transitions
func WithStatusListener(l StatusListener) Option {
	return func(c *Coordinator) { c.onStatus = l }
}

// NewCoordinator creates a coordinator for session. notifier receives exactly one
// notification per operation outcome.
func NewCoordinator(session *Session, client llm.Client, notifier *notify.Manager, opts ...Option) *Coordinator {
	if session == nil {
		session = NewSession()
	}
	if notifier == nil {
		notifier = notify.NewManager()
	}
	c := &Coordinator{
		session:   session,
		client:    client,
		notifier:  notifier,
		outputDir: ".",
		logger:    zap.NewNop(),
		guard:     semaphore.NewWeighted(1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the coordinated session
func (c *Coordinator) Session() *Session {
	return c.session
}

// Notifications returns the notification manager
func (c *Coordinator) Notifications() *notify.Manager {
	return c.notifier
}

// SetStatusListener replaces the status listener. Call it before running operations.
func (c *Coordinator) SetStatusListener(l StatusListener) {
	c.onStatus = l
}

// Busy reports whether a long-running operation is in flight
func (c *Coordinator) Busy() bool {
	return c.session.Status().Busy()
}

// SetActiveTab focuses a buffer. It returns false for unknown kinds.
func (c *Coordinator) SetActiveTab(kind types.DocumentKind) bool {
	return c.session.setActiveTab(kind)
}

// SetViewMode switches the active buffer between editing and previewing
func (c *Coordinator) SetViewMode(mode types.ViewMode) {
	c.session.setViewMode(mode)
}

// ToggleViewMode flips the view mode and returns the new one
func (c *Coordinator) ToggleViewMode() types.ViewMode {
	return c.session.toggleViewMode()
}

// begin claims the single operation slot and moves the session into status.
// The returned func must be deferred; it returns the session to Idle and frees the slot.
func (c *Coordinator) begin(op Op, status types.OperationStatus) (func(), error) {
	if !c.guard.TryAcquire(1) {
		return nil, &PreconditionError{Message: string(op) + " rejected", Cause: ErrOperationInProgress}
	}

	start := time.Now()
	c.transition(status)
	c.logger.Info("operation started", zap.String("op", string(op)), zap.Stringer("status", status))

	return func() {
		c.transition(types.StatusIdle)
		c.guard.Release(1)
		c.logger.Debug("operation slot released", zap.String("op", string(op)), zap.Duration("duration", time.Since(start)))
	}, nil
}

func (c *Coordinator) transition(status types.OperationStatus) {
	c.session.setStatus(status)
	if c.onStatus != nil {
		c.onStatus(status)
	}
}

// succeed pushes the success notification for op
func (c *Coordinator) succeed(op Op, start time.Time, text string) Result {
	c.logger.Info("operation finished",
		zap.String("op", string(op)),
		zap.Duration("duration", time.Since(start)))
	return Result{Op: op, NotificationID: c.notifier.Success(text)}
}

// fail converts err into the single error notification for op
func (c *Coordinator) fail(op Op, start time.Time, err error) Result {
	c.logger.Warn("operation failed",
		zap.String("op", string(op)),
		zap.Duration("duration", time.Since(start)),
		zap.Error(err))
	return Result{Op: op, Err: err, NotificationID: c.notifier.Error(UserMessage(err))}
}

// generate issues one request and treats blank output as a failure
func (c *Coordinator) generate(ctx context.Context, req llm.Request) (string, error) {
	if c.client == nil {
		return "", &llm.TransportError{Operation: req.Operation, Message: "no generation client configured"}
	}
	c.logger.Debug("generation request",
		zap.String("op", req.Operation),
		zap.String("model", c.client.GetModel(req.Tier)),
		zap.String("prompt", truncate(req.Prompt, 200)))

	resp, err := c.client.Generate(ctx, req)
	if err != nil {
		return "", err
	}
	if resp == nil || isBlank(resp.Text) {
		return "", &llm.EmptyResponseError{Operation: req.Operation, Reason: "blank text"}
	}

	c.logger.Debug("generation response",
		zap.String("op", req.Operation),
		zap.String("model", resp.Model),
		zap.Int("chars", len(resp.Text)),
		zap.String("text", truncate(resp.Text, 200)))
	return resp.Text, nil
}
