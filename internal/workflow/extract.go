package workflow

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/cv-tailor/internal/llm"
	"github.com/jonathan/cv-tailor/internal/prompts"
	"github.com/jonathan/cv-tailor/internal/schemas"
	"github.com/jonathan/cv-tailor/internal/types"
)

// pageTextUnavailable fills the page-text slot of the prompt when no page could be fetched
const pageTextUnavailable = "(page text unavailable; rely on the URL and public information)"

// ExtractJobDetails researches the posting at url and overwrites the company profile,
// job description and other-details fields with the result.
func (c *Coordinator) ExtractJobDetails(ctx context.Context, url string) Result {
	start := time.Now()
	url = strings.TrimSpace(url)
	if url == "" {
		return c.fail(OpExtractJob, start, &ValidationError{Field: "url", Message: "Please enter a job posting URL."})
	}

	done, err := c.begin(OpExtractJob, types.StatusExtractingJob)
	if err != nil {
		return c.fail(OpExtractJob, start, err)
	}
	defer done()

	details, err := c.extract(ctx, url)
	if err != nil {
		return c.fail(OpExtractJob, start, err)
	}

	c.session.applyJobDetails(details)
	return c.succeed(OpExtractJob, start, "Job details extracted.")
}

func (c *Coordinator) extract(ctx context.Context, url string) (*types.JobDetails, error) {
	pageText := c.pageText(ctx, url)

	schema := llm.JobDetailsSchema()
	text, err := c.generate(ctx, llm.Request{
		Operation: string(OpExtractJob),
		Prompt: llm.BuildExtractionPrompt(schema, prompts.Render(prompts.KeyExtractJobDetails, map[string]string{
			"URL":      url,
			"PageText": pageText,
		})),
		Tier:   llm.TierStandard,
		Schema: &schema,
	})
	if err != nil {
		return nil, &ExtractionError{Message: "generation failed", Cause: err}
	}

	text = llm.CleanJSONBlock(text)
	if err := schemas.ValidateJobDetails(text); err != nil {
		return nil, &ExtractionError{Message: "response does not match the job details schema", Cause: err}
	}

	var details types.JobDetails
	if err := json.Unmarshal([]byte(text), &details); err != nil {
		return nil, &ExtractionError{Message: "failed to parse job details", Cause: err}
	}
	return &details, nil
}

// pageText fetches the posting to ground the prompt. A fetch failure is not fatal.
func (c *Coordinator) pageText(ctx context.Context, url string) string {
	if c.pages == nil {
		return pageTextUnavailable
	}
	text, err := c.pages.PageText(ctx, url)
	if err != nil {
		c.logger.Warn("job page fetch failed, extracting from URL only", zap.String("url", url), zap.Error(err))
		return pageTextUnavailable
	}
	if isBlank(text) {
		return pageTextUnavailable
	}
	return text
}
