package workflow

import (
	"context"
	"strings"
	"time"

	"github.com/jonathan/cv-tailor/internal/llm"
	"github.com/jonathan/cv-tailor/internal/prompts"
	"github.com/jonathan/cv-tailor/internal/types"
)

// OptimizeResume rewrites the résumé buffer for the current job and shows it in preview
func (c *Coordinator) OptimizeResume(ctx context.Context) Result {
	return c.tailor(ctx, OpOptimizeResume, types.StatusOptimizing, prompts.KeyOptimizeResume,
		types.KindResume, "Resume optimized.")
}

// GenerateCoverLetter writes a cover letter from the résumé buffer for the current job
// into the cover-letter buffer and shows it in preview
func (c *Coordinator) GenerateCoverLetter(ctx context.Context) Result {
	return c.tailor(ctx, OpGenerateCoverLetter, types.StatusGeneratingCoverLetter, prompts.KeyGenerateCoverLetter,
		types.KindCoverLetter, "Cover letter generated.")
}

func (c *Coordinator) tailor(ctx context.Context, op Op, status types.OperationStatus, promptKey string, target types.DocumentKind, successText string) Result {
	start := time.Now()
	snap := c.session.Snapshot()

	if err := checkTailoringInputs(snap); err != nil {
		return c.fail(op, start, err)
	}

	done, err := c.begin(op, status)
	if err != nil {
		return c.fail(op, start, err)
	}
	defer done()

	text, err := c.generate(ctx, llm.Request{
		Operation: string(op),
		Prompt: prompts.Render(promptKey, map[string]string{
			"CompanyProfile": snap.CompanyProfile,
			"JobDescription": snap.JobDescription,
			"OtherDetails":   otherDetailsOrNone(snap.OtherDetails),
			"Content":        snap.Resume,
		}),
		Tier: llm.TierAdvanced,
	})
	if err != nil {
		return c.fail(op, start, &GenerationError{Op: op, Cause: err})
	}

	c.session.applyDocument(target, text, types.ViewPreviewing)
	return c.succeed(op, start, successText)
}

// checkTailoringInputs requires the job fields and a résumé to work from
func checkTailoringInputs(snap Snapshot) error {
	if isBlank(snap.CompanyProfile) || isBlank(snap.JobDescription) {
		return &PreconditionError{Message: "Please extract or enter the company profile and job description first."}
	}
	if isBlank(snap.Resume) {
		return &PreconditionError{Message: "Please import or paste your resume first."}
	}
	return nil
}

func otherDetailsOrNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "None provided."
	}
	return s
}
