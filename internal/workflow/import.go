package workflow

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/cv-tailor/internal/clipboard"
	"github.com/jonathan/cv-tailor/internal/ingestion"
	"github.com/jonathan/cv-tailor/internal/llm"
	"github.com/jonathan/cv-tailor/internal/prompts"
	"github.com/jonathan/cv-tailor/internal/types"
)

// ImportResumeFile transcribes a PDF or image résumé into the résumé buffer.
// The buffer is left in edit mode for review.
func (c *Coordinator) ImportResumeFile(ctx context.Context, file ingestion.FileInput) Result {
	start := time.Now()

	payload, err := ingestion.Encode(file, c.limits)
	if err != nil {
		return c.fail(OpImportFile, start, err)
	}

	done, err := c.begin(OpImportFile, types.StatusParsingResume)
	if err != nil {
		return c.fail(OpImportFile, start, err)
	}
	defer done()

	c.logger.Debug("encoded resume file",
		zap.String("name", payload.Name),
		zap.String("mime_type", payload.MIMEType),
		zap.Int64("bytes", payload.Size),
		zap.String("sha256", payload.Hash))

	text, err := c.generate(ctx, llm.Request{
		Operation: string(OpImportFile),
		Prompt:    prompts.Render(prompts.KeyParseResumeFile, map[string]string{"MIMEType": payload.MIMEType}),
		Tier:      llm.TierLite,
		Attachment: &llm.Attachment{
			MIMEType: payload.MIMEType,
			Data:     payload.Data,
		},
	})
	if err != nil {
		return c.fail(OpImportFile, start, &GenerationError{Op: OpImportFile, Cause: err})
	}

	c.session.applyDocument(types.KindResume, text, types.ViewEditing)
	return c.succeed(OpImportFile, start, "Resume imported from "+payload.Name+". Please review it.")
}

// ImportResumePath reads a résumé file from disk and imports it like ImportResumeFile
func (c *Coordinator) ImportResumePath(ctx context.Context, path string) Result {
	start := time.Now()
	if isBlank(path) {
		return c.fail(OpImportFile, start, &ValidationError{Field: "path", Message: "Please enter the path of a PDF or image file."})
	}

	file, err := ingestion.ReadFile(strings.TrimSpace(path))
	if err != nil {
		return c.fail(OpImportFile, start, err)
	}
	return c.ImportResumeFile(ctx, file)
}

// ImportResumeClipboard reformats résumé text pasted from the clipboard into the résumé buffer.
// The buffer is left in edit mode for review.
func (c *Coordinator) ImportResumeClipboard(ctx context.Context) Result {
	start := time.Now()

	if c.clipboard == nil {
		return c.fail(OpImportClipboard, start, &clipboard.Error{Op: "read", Cause: clipboard.ErrUnsupported})
	}
	raw, err := c.clipboard.ReadText()
	if err != nil {
		return c.fail(OpImportClipboard, start, err)
	}
	cleaned := ingestion.CleanText(raw)
	if cleaned == "" {
		return c.fail(OpImportClipboard, start, clipboard.ErrEmpty)
	}

	done, err := c.begin(OpImportClipboard, types.StatusParsingResume)
	if err != nil {
		return c.fail(OpImportClipboard, start, err)
	}
	defer done()

	text, err := c.generate(ctx, llm.Request{
		Operation: string(OpImportClipboard),
		Prompt:    prompts.Render(prompts.KeyReformatResumeText, map[string]string{"Text": cleaned}),
		Tier:      llm.TierLite,
	})
	if err != nil {
		return c.fail(OpImportClipboard, start, &GenerationError{Op: OpImportClipboard, Cause: err})
	}

	c.session.applyDocument(types.KindResume, text, types.ViewEditing)
	return c.succeed(OpImportClipboard, start, "Resume imported from clipboard. Please review it.")
}
