package fetch

import (
	"context"

	"go.uber.org/zap"
)

// Page is the readable text of a job posting page.
type Page struct {
	URL         string
	Platform    Platform
	Text        string
	FromBrowser bool
}

// JobPage fetches a job posting and extracts its main text using board-specific selectors.
// When useBrowser is set and the HTTP text is too short, the page is re-rendered in headless Chrome.
// A browser failure is not fatal; the HTTP text is kept.
func JobPage(ctx context.Context, urlStr string, opts *Options, useBrowser bool, logger *zap.Logger) (*Page, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	platform := DetectPlatform(urlStr)
	contentSelectors := PlatformContentSelectors(platform)
	noiseSelectors := PlatformNoiseSelectors(platform)

	result, err := URL(ctx, urlStr, opts)
	if err != nil {
		return nil, err
	}

	text, err := ExtractMainText(result.HTML, contentSelectors, noiseSelectors...)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "content extraction failed", Cause: err}
	}

	page := &Page{URL: urlStr, Platform: platform, Text: text}
	if !useBrowser || !ShouldUseBrowser(text) {
		return page, nil
	}

	logger.Info("job page text too short, rendering in browser",
		zap.String("url", urlStr), zap.Int("chars", len(text)))

	html, err := WithBrowser(ctx, urlStr, opts.Timeout, logger)
	if err != nil {
		logger.Warn("browser rendering failed, using HTTP content", zap.Error(err))
		return page, nil
	}
	rendered, err := ExtractMainText(html, contentSelectors, noiseSelectors...)
	if err != nil {
		logger.Warn("browser content extraction failed", zap.Error(err))
		return page, nil
	}

	page.Text = rendered
	page.FromBrowser = true
	return page, nil
}
